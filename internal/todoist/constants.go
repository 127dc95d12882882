package todoist

// API endpoints
const (
	RestBaseURL = "https://api.todoist.com/rest/v2"
	SyncBaseURL = "https://api.todoist.com/sync/v9"
)

// Настройки клиента
const (
	DefaultTimeout     = 30 // секунды
	DefaultProjectName = "Inbox"
)

// Сообщения для логирования
const (
	LogSyncAPIError = "Todoist Sync API вернул ошибку: %s - %s"
)
