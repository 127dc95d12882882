package bot

import (
	"sort"

	tele "gopkg.in/telebot.v3"

	"todoist-helper/internal/models"
	"todoist-helper/internal/report"
	"todoist-helper/internal/session"
)

// tokenKeyboard строит клавиатуру со ссылкой на страницу токена Todoist
func (b *Bot) tokenKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{{Text: BtnGetToken, URL: TodoistTokenURL}},
		},
	}
}

// mainMenuKeyboard строит главное меню выбора периода
func (b *Bot) mainMenuKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				{Text: BtnToday, Data: encodeCallback(CallbackReport, string(models.PeriodToday), "")},
				{Text: BtnWeek, Data: encodeCallback(CallbackReport, string(models.PeriodWeek), "")},
			},
			{
				{Text: BtnMonth, Data: encodeCallback(CallbackReport, string(models.PeriodMonth), "")},
				{Text: BtnPending, Data: encodeCallback(CallbackReport, string(models.PeriodPending), "")},
			},
			{
				{Text: BtnProjects, Data: encodeCallback(CallbackMenu, ScopeProjects, "")},
			},
		},
	}
}

// backKeyboard строит клавиатуру с возвратом в главное меню
func (b *Bot) backKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{{Text: BtnMainMenu, Data: encodeCallback(CallbackMenu, ScopeMain, "")}},
		},
	}
}

// browseKeyboard строит клавиатуру под списком задач. Для периодов
// "сегодня" и "месяц" добавляется кнопка AI-отчёта с префиксом метки
// версии кэша: по нему отсекается отчёт по устаревшей выборке.
func (b *Bot) browseKeyboard(period models.Period, entry *session.Entry) *tele.ReplyMarkup {
	var rows [][]tele.InlineButton

	stamp := entry.Stamp
	if len(stamp) > StampPrefixLen {
		stamp = stamp[:StampPrefixLen]
	}

	switch period {
	case models.PeriodToday:
		rows = append(rows, []tele.InlineButton{
			{Text: BtnAIReport, Data: encodeCallback(CallbackAI, string(models.ReportDaily), stamp)},
		})
	case models.PeriodMonth:
		rows = append(rows, []tele.InlineButton{
			{Text: BtnAIReport, Data: encodeCallback(CallbackAI, string(models.ReportMonthly), stamp)},
		})
	}

	rows = append(rows, []tele.InlineButton{
		{Text: BtnMainMenu, Data: encodeCallback(CallbackMenu, ScopeMain, "")},
	})

	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// projectsKeyboard строит клавиатуру выбора проекта, по кнопке на проект.
// Названия урезаются до допустимой длины callback payload.
func (b *Bot) projectsKeyboard(projects map[string]string) *tele.ReplyMarkup {
	names := make([]string, 0, len(projects))
	for _, name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows [][]tele.InlineButton
	for _, name := range names {
		key := report.TruncateProject(name)
		rows = append(rows, []tele.InlineButton{
			{Text: name, Data: encodeCallback(CallbackProject, key, "")},
		})
	}
	rows = append(rows, []tele.InlineButton{
		{Text: BtnMainMenu, Data: encodeCallback(CallbackMenu, ScopeMain, "")},
	})

	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

// projectMenuKeyboard строит меню периодов для одного проекта
func (b *Bot) projectMenuKeyboard(projectKey string) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{
				{Text: BtnToday, Data: encodeCallback(CallbackReport, string(models.PeriodToday), projectKey)},
				{Text: BtnWeek, Data: encodeCallback(CallbackReport, string(models.PeriodWeek), projectKey)},
			},
			{
				{Text: BtnMonth, Data: encodeCallback(CallbackReport, string(models.PeriodMonth), projectKey)},
				{Text: BtnPending, Data: encodeCallback(CallbackReport, string(models.PeriodPending), projectKey)},
			},
			{
				{Text: BtnBackProjects, Data: encodeCallback(CallbackMenu, ScopeProjects, "")},
			},
		},
	}
}

// aiResultKeyboard строит клавиатуру под готовым AI-отчётом:
// перегенерация по тому же callback payload и возврат в меню
func (b *Bot) aiResultKeyboard(retryData string) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{
			{{Text: BtnRetry, Data: retryData}},
			{{Text: BtnMainMenu, Data: encodeCallback(CallbackMenu, ScopeMain, "")}},
		},
	}
}
