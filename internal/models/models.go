package models

import (
	"time"
)

// Period представляет период выборки задач
type Period string

const (
	PeriodPending Period = "pending" // Активные задачи, без ограничения по времени
	PeriodToday   Period = "today"   // Выполненные с начала дня
	PeriodWeek    Period = "week"    // Выполненные за последние 7 дней
	PeriodMonth   Period = "month"   // Выполненные за последние 30 дней
)

// ReportKind представляет тип AI-отчёта
type ReportKind string

const (
	ReportDaily   ReportKind = "daily"
	ReportMonthly ReportKind = "monthly"
)

// TaskInfo представляет задачу из Todoist в нормализованном виде.
// Задачи живут только в рамках одного запроса и никогда не сохраняются локально.
type TaskInfo struct {
	Content     string     // Текст задачи
	ProjectName string     // Название проекта
	CompletedAt *time.Time // Время выполнения (только для выполненных)
	DueDate     string     // Срок в текстовом виде (только для активных)
}

// IsCompleted проверяет, выполнена ли задача
func (t *TaskInfo) IsCompleted() bool {
	return t.CompletedAt != nil
}

// UserCredential представляет сохраненный доступ пользователя к Todoist.
// Единственная долговременная сущность системы.
type UserCredential struct {
	TelegramID  int64     // Telegram User ID, уникальный ключ
	AccessToken string    // Персональный API токен Todoist
	State       string    // Состояние диалога: "awaiting_token" или "ready"
	CreatedAt   time.Time // Дата создания записи
}

// Состояния диалога пользователя
const (
	StateAwaitingToken = "awaiting_token"
	StateReady         = "ready"
)
