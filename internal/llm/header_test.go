package llm

import (
	"strings"
	"testing"
	"time"
)

func TestReportMonthRollback(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantMonth time.Month
		wantYear  int
	}{
		{"january rolls back across year", date(2026, time.January, 3), time.December, 2025},
		{"march rolls back within year", date(2026, time.March, 3), time.February, 2026},
		{"mid-month keeps current month", date(2026, time.March, 20), time.March, 2026},
		{"boundary day 5 rolls back", date(2026, time.July, 5), time.June, 2026},
		{"day 6 keeps current month", date(2026, time.July, 6), time.July, 2026},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			month, year := ReportMonth(tc.now)
			if month != tc.wantMonth || year != tc.wantYear {
				t.Fatalf("expected %v %d, got %v %d", tc.wantMonth, tc.wantYear, month, year)
			}
		})
	}
}

func TestMonthlyHeader(t *testing.T) {
	got := MonthlyHeader(date(2026, time.January, 3))
	if !strings.Contains(got, "декабрь") || !strings.Contains(got, "2025") {
		t.Fatalf("expected december 2025 header, got %q", got)
	}

	got = MonthlyHeader(date(2026, time.March, 20))
	if !strings.Contains(got, "март") || !strings.Contains(got, "2026") {
		t.Fatalf("expected march 2026 header, got %q", got)
	}
}

func TestDailyHeader(t *testing.T) {
	got := DailyHeader(time.Date(2026, time.March, 7, 9, 30, 0, 0, time.UTC))
	if got != "Доброе утро, отчёт 07.03" {
		t.Fatalf("unexpected daily header: %q", got)
	}

	got = DailyHeader(time.Date(2026, time.March, 7, 21, 0, 0, 0, time.UTC))
	if !strings.HasPrefix(got, GreetingEvening) {
		t.Fatalf("expected evening greeting, got %q", got)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
