package report

// Максимальная длина названия проекта внутри callback payload (байты).
// Telegram ограничивает callback data 64 байтами, поэтому длинные названия
// урезаются и при фильтрации сопоставляются по префиксу.
const ProjectKeyMaxLen = 32

// Переменные окружения для переопределения промптов
const (
	EnvDailyPrompt   = "DAILY_REPORT_PROMPT"
	EnvMonthlyPrompt = "MONTHLY_REPORT_PROMPT"
)

// Плейсхолдер для подстановки списка задач в шаблон промпта.
// Подстановка — буквальный find-and-replace, без шаблонизатора.
const TasksPlaceholder = "{tasks}"

// Сообщения для пустых выборок
const (
	MsgNoPendingTasks          = "Нет активных задач. Отлично!"
	MsgNoPendingTasksProject   = "Нет активных задач в проекте «%s»."
	MsgNoCompletedTasks        = "Нет выполненных задач за %s."
	MsgNoCompletedTasksProject = "Нет выполненных задач за %s в проекте «%s»."
)

// Форматы отчётов
const (
	FormatPendingHeader   = "Активные задачи: %d\n"
	FormatCompletedHeader = "Выполнено за %s: %d\n"
	FormatProjectHeader   = "\n%s (%d):\n"
	FormatTaskLine        = "  - %s%s\n"
	FormatDueSuffix       = " [срок: %s]"
	FormatPromptTaskLine  = "- %s (проект: %s)"
)

// Шаблоны промптов по умолчанию
const DefaultDailyPrompt = `Ты помощник по анализу продуктивности. Проанализируй список выполненных задач за день и сделай краткий отчёт на русском языке.

Формат отчёта:
1. Сколько задач выполнено
2. По каким проектам работал
3. Основные достижения дня
4. Краткий вывод (1-2 предложения)

Будь кратким и конкретным. Максимум 200 слов. Не используй markdown-разметку.

Задачи:
{tasks}`

const DefaultMonthlyPrompt = `Ты помощник по анализу продуктивности. Проанализируй список выполненных задач за месяц и сделай отчёт на русском языке.

Формат отчёта:
1. Общая статистика (количество задач, проекты)
2. Ключевые достижения месяца
3. Какие направления были в приоритете
4. Рекомендации на следующий месяц

Будь структурированным. Максимум 400 слов. Не используй markdown-разметку.

Задачи:
{tasks}`
