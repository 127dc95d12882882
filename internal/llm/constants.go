package llm

// API endpoint
const (
	GeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-lite:generateContent"
)

// Настройки генерации — константы системы, пользователем не настраиваются
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
	DefaultTimeout     = 30 // секунды
)

// Символы markdown-разметки, которые вычищаются из ответа модели.
// Модели запрещено их использовать, но убираем и на своей стороне.
const MarkdownChars = "*_`#"

// Сообщения для логирования
const (
	LogAPIKeyMissing = "GEMINI_API_KEY не установлен, отчёт недоступен"
	LogGeminiError   = "Gemini API вернул ошибку: %s - %s"
	LogRequestError  = "Ошибка при запросе к Gemini: %v"
	LogMarshalError  = "Ошибка при маршалинге запроса к Gemini: %v"
	LogReadError     = "Ошибка при чтении ответа Gemini: %v"
	LogParseError    = "Ошибка при парсинге ответа Gemini: %v"
	LogEmptyResponse = "Gemini вернул ответ без candidates или parts"
)

// Форматы заголовков отчётов
const (
	FormatDailyHeader   = "%s, отчёт %02d.%02d"
	FormatMonthlyHeader = "Отчёт за %s %d"
)

// Приветствия для дневного заголовка
const (
	GreetingMorning = "Доброе утро"
	GreetingDay     = "Добрый день"
	GreetingEvening = "Добрый вечер"
)
