package report

import (
	"fmt"
	"os"
	"strings"

	"todoist-helper/internal/models"
)

// TasksBlock сериализует задачи в текстовый блок для промпта,
// по строке на задачу, в исходном порядке. Группировку по проектам
// здесь не делаем — она делегирована модели через инструкции промпта.
func TasksBlock(tasks []models.TaskInfo) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf(FormatPromptTaskLine, task.Content, task.ProjectName))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt собирает полный промпт для модели: выбирает шаблон по типу
// отчёта и буквально подставляет блок задач вместо плейсхолдера
func BuildPrompt(tasks []models.TaskInfo, kind models.ReportKind) string {
	var template string
	if kind == models.ReportDaily {
		template = dailyPromptTemplate()
	} else {
		template = monthlyPromptTemplate()
	}
	return strings.Replace(template, TasksPlaceholder, TasksBlock(tasks), 1)
}

// dailyPromptTemplate возвращает шаблон дневного отчёта.
// Переменная окружения полностью заменяет шаблон по умолчанию.
func dailyPromptTemplate() string {
	if override := os.Getenv(EnvDailyPrompt); override != "" {
		return override
	}
	return DefaultDailyPrompt
}

// monthlyPromptTemplate возвращает шаблон месячного отчёта
func monthlyPromptTemplate() string {
	if override := os.Getenv(EnvMonthlyPrompt); override != "" {
		return override
	}
	return DefaultMonthlyPrompt
}
