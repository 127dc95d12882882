package bot

import "time"

// Команды бота
const (
	CmdStart    = "/start"
	CmdHelp     = "/help"
	CmdSetKey   = "/setkey"
	CmdToday    = "/today"
	CmdWeek     = "/week"
	CmdMonth    = "/month"
	CmdPending  = "/pending"
	CmdProjects = "/projects"
	CmdAdd      = "/add"
	CmdLogout   = "/logout"
)

// Действия callback-кнопок. Payload — строка вида "action:scope[:project]",
// разделитель двоеточие, название проекта урезано до report.ProjectKeyMaxLen.
const (
	CallbackMenu    = "menu"
	CallbackProject = "project"
	CallbackReport  = "report"
	CallbackAI      = "ai"

	ScopeMain     = "main"
	ScopeProjects = "projects"
)

// Настройки бота
const (
	BotPollerTimeout = 10 * time.Second
	SessionTTL       = 30 * time.Minute

	// Минимальная длина строки, похожей на токен Todoist.
	// Короче — отклоняем без сетевого вызова.
	MinTokenLength = 20

	// Длина префикса метки версии кэша, зашиваемого в callback кнопки AI-отчёта
	StampPrefixLen = 8

	// Сколько символов сырого списка задач показывать при недоступном AI
	AIFallbackLimit = 2000
)

// Страница настроек Todoist, где пользователь берет API токен
const TodoistTokenURL = "https://app.todoist.com/app/settings/integrations/developer"

// Тексты кнопок
const (
	BtnGetToken     = "🔑 Получить API Token"
	BtnToday        = "📅 Сегодня"
	BtnWeek         = "📆 Неделя"
	BtnMonth        = "🗓 Месяц"
	BtnPending      = "📌 Активные задачи"
	BtnProjects     = "📁 Проекты"
	BtnAIReport     = "🤖 AI-отчёт"
	BtnRetry        = "🔄 Заново"
	BtnMainMenu     = "🏠 Главное меню"
	BtnBackProjects = "◀️ К проектам"
)

// Сообщения пользователю
const (
	MsgWelcome = `👋 Привет! Это бот для отчётов по Todoist.

Для начала нужен твой API токен:
1. Нажми кнопку ниже
2. Скопируй API token
3. Отправь его сюда`

	MsgSetKeyPrompt   = "🔑 Отправь новый API токен:"
	MsgTokenTooShort  = "❌ Это не похоже на токен. Попробуй ещё раз."
	MsgVerifyingToken = "🔄 Проверяю токен..."
	MsgTokenInvalid   = "❌ Неверный токен. Проверь и попробуй снова."
	MsgTokenSaved     = "✅ Готово! Выбери период:"

	MsgMainMenu = "📊 Отчёты по Todoist\n\nВыбери период:"

	MsgHelp = `📖 Команды:

/today [проект] - выполненные сегодня
/week [проект] - выполненные за неделю
/month [проект] - выполненные за месяц
/pending [проект] - активные задачи
/projects - список проектов
/add <текст> - добавить задачу в Inbox
/setkey - сменить токен Todoist
/logout - отключить аккаунт
/help - эта справка`

	MsgNotConnected = "Аккаунт Todoist не подключен.\nИспользуй /start, чтобы настроить API токен."
	MsgLoggedOut    = "Аккаунт отключен. Токен удален. /start — подключить заново."

	MsgLoadingTasks     = "⏳ Загружаю задачи из Todoist..."
	MsgChooseProject    = "📁 Проекты\n\nВыбери проект:"
	MsgProjectScope     = "📁 %s\n\nВыбери период:"
	MsgGeneratingReport = "🤖 Генерирую отчёт по %d задачам..."

	MsgAddUsage    = "Использование: /add <текст задачи>\n\nПример: /add Купить продукты"
	MsgTaskAdded   = "Добавлено в Inbox: %s"
	MsgTaskFailed  = "Не удалось добавить задачу. Попробуй ещё раз."
	MsgErrorFetch  = "Не удалось получить задачи из Todoist. Попробуй позже."
	MsgErrorSave   = "Не удалось сохранить данные. Попробуй ещё раз."
	MsgNoProjects  = "В аккаунте нет проектов."
	MsgHelpDefault = "Не понимаю. Используй /help для списка команд."

	MsgNoCachedData = "Нет данных для отчёта. Сначала открой список задач, например /today."
	MsgStaleCache   = "Данные устарели: после этого списка был новый запрос. Открой список заново."
	MsgNoTasksForAI = "После исключения служебных проектов задач не осталось."

	MsgAIUnavailable = `❌ Не удалось сгенерировать отчёт.

Проверь GEMINI_API_KEY в настройках окружения.

Задачи (%d):
%s`
)
