package llm

import (
	"todoist-helper/internal/models"
)

// Client представляет интерфейс AI-суммаризатора
type Client interface {
	// GenerateReport отправляет промпт модели и возвращает готовый к показу
	// текст отчёта с заголовком. Второе значение false означает, что отчёт
	// недоступен (нет ключа, ошибка сети или неожиданный ответ) — наружу
	// ошибки не поднимаются, диагностика уходит в лог.
	GenerateReport(prompt string, kind models.ReportKind) (string, bool)
}
