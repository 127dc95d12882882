package bot

import (
	"strings"

	tele "gopkg.in/telebot.v3"

	"todoist-helper/internal/models"
)

// encodeCallback собирает callback payload из частей через двоеточие.
// Пустые хвостовые части опускаются.
func encodeCallback(action, scope, project string) string {
	parts := []string{action, scope}
	if project != "" {
		parts = append(parts, project)
	}
	return strings.Join(parts, ":")
}

// parseCallback разбирает payload на действие, область и параметр.
// Параметр не разбивается дальше: урезанное название проекта может
// содержать двоеточие.
func parseCallback(data string) (action, scope, param string) {
	parts := strings.SplitN(data, ":", 3)
	action = parts[0]
	if len(parts) > 1 {
		scope = parts[1]
	}
	if len(parts) > 2 {
		param = parts[2]
	}
	return action, scope, param
}

// handleCallback маршрутизирует нажатия inline-кнопок.
// Таблица маршрутов статична и не зависит от состояния диалога.
func (b *Bot) handleCallback(c tele.Context) error {
	data := strings.TrimPrefix(c.Callback().Data, "\f")
	action, scope, param := parseCallback(data)

	switch action {
	case CallbackMenu:
		if scope == ScopeProjects {
			return b.showProjects(c)
		}
		_ = c.Respond(&tele.CallbackResponse{})
		return c.Edit(MsgMainMenu, b.mainMenuKeyboard())

	case CallbackProject:
		// Название проекта — всё после первого двоеточия
		name := scope
		if param != "" {
			name = scope + ":" + param
		}
		_ = c.Respond(&tele.CallbackResponse{})
		return b.showProjectMenu(c, name)

	case CallbackReport:
		_ = c.Respond(&tele.CallbackResponse{Text: MsgLoadingTasks})
		return b.browse(c, models.Period(scope), param, true)

	case CallbackAI:
		return b.generateAIReport(c, scope, param, data)
	}

	return c.Respond(&tele.CallbackResponse{})
}
