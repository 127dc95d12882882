package llm

import (
	"fmt"
	"time"
)

// Дни в начале месяца, когда месячный отчёт считается отчётом за прошлый месяц
const monthRollbackDays = 5

// monthNames содержит русские названия месяцев для заголовков
var monthNames = map[time.Month]string{
	time.January:   "январь",
	time.February:  "февраль",
	time.March:     "март",
	time.April:     "апрель",
	time.May:       "май",
	time.June:      "июнь",
	time.July:      "июль",
	time.August:    "август",
	time.September: "сентябрь",
	time.October:   "октябрь",
	time.November:  "ноябрь",
	time.December:  "декабрь",
}

// DailyHeader строит заголовок дневного отчёта с приветствием по времени суток
func DailyHeader(now time.Time) string {
	return fmt.Sprintf(FormatDailyHeader, greeting(now), now.Day(), int(now.Month()))
}

// MonthlyHeader строит заголовок месячного отчёта.
// Первые дни месяца отчёт обычно пишут за прошедший месяц, поэтому
// при дне <= 5 месяц (и при необходимости год) откатываются назад.
func MonthlyHeader(now time.Time) string {
	month, year := ReportMonth(now)
	return fmt.Sprintf(FormatMonthlyHeader, monthNames[month], year)
}

// ReportMonth возвращает месяц и год, за которые строится месячный отчёт
func ReportMonth(now time.Time) (time.Month, int) {
	month := now.Month()
	year := now.Year()

	if now.Day() <= monthRollbackDays {
		if month == time.January {
			return time.December, year - 1
		}
		return month - 1, year
	}
	return month, year
}

// greeting выбирает приветствие по местному времени
func greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return GreetingMorning
	case hour >= 12 && hour < 18:
		return GreetingDay
	default:
		return GreetingEvening
	}
}
