package bot

import (
	"fmt"
	"log"
	"strings"

	tele "gopkg.in/telebot.v3"

	"todoist-helper/internal/llm"
	"todoist-helper/internal/models"
	"todoist-helper/internal/report"
	"todoist-helper/internal/repository"
	"todoist-helper/internal/session"
	"todoist-helper/internal/todoist"
)

// Bot представляет Telegram-бота для отчётов по Todoist
type Bot struct {
	bot              *tele.Bot
	repo             repository.Repository
	llmClient        llm.Client
	sessions         *session.Store
	excludedProjects []string // Проекты, исключаемые из AI-отчётов
}

// NewBot создает нового бота
func NewBot(token string, repo repository.Repository, llmClient llm.Client, excludedProjects []string) *Bot {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: BotPollerTimeout},
	}

	botAPI, err := tele.NewBot(pref)
	if err != nil {
		log.Fatal(err)
	}

	b := &Bot{
		bot:              botAPI,
		repo:             repo,
		llmClient:        llmClient,
		sessions:         session.NewStore(SessionTTL),
		excludedProjects: excludedProjects,
	}

	b.registerHandlers()

	return b
}

// Start запускает бота
func (b *Bot) Start() error {
	log.Println("Bot started...")
	b.bot.Start()
	return nil
}

// registerHandlers регистрирует все обработчики команд и callback-кнопок
func (b *Bot) registerHandlers() {
	b.bot.Handle(CmdStart, b.handleStart)
	b.bot.Handle(CmdHelp, b.handleHelp)
	b.bot.Handle(CmdSetKey, b.handleSetKey)
	b.bot.Handle(CmdLogout, b.handleLogout)
	b.bot.Handle(CmdToday, b.browseCommand(models.PeriodToday))
	b.bot.Handle(CmdWeek, b.browseCommand(models.PeriodWeek))
	b.bot.Handle(CmdMonth, b.browseCommand(models.PeriodMonth))
	b.bot.Handle(CmdPending, b.browseCommand(models.PeriodPending))
	b.bot.Handle(CmdProjects, b.handleProjects)
	b.bot.Handle(CmdAdd, b.handleAdd)

	b.bot.Handle(tele.OnText, b.handleText)
	b.bot.Handle(tele.OnCallback, b.handleCallback)
}

// handleStart обрабатывает команду /start: подключенным пользователям
// показывает меню, остальных переводит в режим ввода токена
func (b *Bot) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	token, err := b.repo.GetToken(userID)
	if err != nil {
		log.Printf("Ошибка чтения токена: %v", err)
		return c.Send(MsgErrorSave)
	}

	if token != "" {
		if err := b.repo.SetState(userID, models.StateReady); err != nil {
			log.Printf("Ошибка сохранения состояния: %v", err)
		}
		return c.Send(MsgMainMenu, b.mainMenuKeyboard())
	}

	if err := b.repo.SetState(userID, models.StateAwaitingToken); err != nil {
		log.Printf("Ошибка сохранения состояния: %v", err)
		return c.Send(MsgErrorSave)
	}
	return c.Send(MsgWelcome, b.tokenKeyboard())
}

// handleHelp обрабатывает команду /help
func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(MsgHelp)
}

// handleSetKey обрабатывает команду /setkey: возврат в режим ввода токена
func (b *Bot) handleSetKey(c tele.Context) error {
	if err := b.repo.SetState(c.Sender().ID, models.StateAwaitingToken); err != nil {
		log.Printf("Ошибка сохранения состояния: %v", err)
		return c.Send(MsgErrorSave)
	}
	return c.Send(MsgSetKeyPrompt, b.tokenKeyboard())
}

// handleLogout обрабатывает команду /logout: удаляет токен и кэш выборок
func (b *Bot) handleLogout(c tele.Context) error {
	userID := c.Sender().ID
	if err := b.repo.DeleteUser(userID); err != nil {
		log.Printf("Ошибка удаления пользователя: %v", err)
		return c.Send(MsgErrorSave)
	}
	b.sessions.Delete(userID)
	return c.Send(MsgLoggedOut)
}

// handleText обрабатывает свободный текст. В режиме ввода токена текст
// трактуется как токен, иначе показывается подсказка.
func (b *Bot) handleText(c tele.Context) error {
	userID := c.Sender().ID

	state, err := b.repo.GetState(userID)
	if err != nil {
		log.Printf("Ошибка чтения состояния: %v", err)
		return c.Send(MsgErrorSave)
	}

	if state != models.StateAwaitingToken {
		return c.Send(MsgHelpDefault)
	}

	return b.processToken(c, strings.TrimSpace(c.Text()))
}

// processToken проверяет присланный токен и сохраняет его.
// Слишком короткие строки отклоняются без сетевого вызова;
// при неудачной проверке пользователь остается в режиме ввода токена.
func (b *Bot) processToken(c tele.Context, token string) error {
	if len(token) < MinTokenLength {
		return c.Send(MsgTokenTooShort)
	}

	_ = c.Send(MsgVerifyingToken)

	client := todoist.NewClient(token)
	if !client.VerifyToken() {
		return c.Send(MsgTokenInvalid, b.tokenKeyboard())
	}

	if err := b.repo.SaveToken(c.Sender().ID, token); err != nil {
		log.Printf("Ошибка сохранения токена: %v", err)
		return c.Send(MsgErrorSave)
	}

	return c.Send(MsgTokenSaved, b.mainMenuKeyboard())
}

// browseCommand строит обработчик команды просмотра задач.
// Аргумент команды — необязательный фильтр по проекту.
func (b *Bot) browseCommand(period models.Period) tele.HandlerFunc {
	return func(c tele.Context) error {
		projectFilter := strings.TrimSpace(c.Message().Payload)
		_ = c.Send(MsgLoadingTasks)
		return b.browse(c, period, projectFilter, false)
	}
}

// browse выбирает задачи за период, записывает выборку в кэш
// и показывает отформатированный отчёт
func (b *Bot) browse(c tele.Context, period models.Period, projectFilter string, edit bool) error {
	client := b.client(c)
	if client == nil {
		return b.reply(c, MsgNotConnected, nil, edit)
	}

	var tasks []models.TaskInfo
	var err error
	switch period {
	case models.PeriodPending:
		tasks, err = client.GetActiveTasks()
	case models.PeriodToday:
		tasks, err = client.GetTodayCompleted()
	case models.PeriodWeek:
		tasks, err = client.GetWeekCompleted()
	case models.PeriodMonth:
		tasks, err = client.GetMonthCompleted()
	default:
		return b.reply(c, MsgHelpDefault, nil, edit)
	}
	if err != nil {
		log.Printf("Ошибка получения задач: %v", err)
		return b.reply(c, MsgErrorFetch, nil, edit)
	}

	filtered := report.FilterByProject(tasks, projectFilter)
	entry := b.sessions.Put(c.Sender().ID, filtered, period, projectFilter)

	var text string
	if period == models.PeriodPending {
		text = report.FormatPending(tasks, projectFilter)
	} else {
		text = report.FormatCompleted(tasks, period, projectFilter)
	}

	return b.reply(c, text, b.browseKeyboard(period, entry), edit)
}

// handleProjects обрабатывает команду /projects
func (b *Bot) handleProjects(c tele.Context) error {
	return b.showProjectsReply(c, false)
}

// showProjects показывает список проектов по callback-кнопке
func (b *Bot) showProjects(c tele.Context) error {
	_ = c.Respond(&tele.CallbackResponse{})
	return b.showProjectsReply(c, true)
}

// showProjectsReply выбирает проекты пользователя и показывает их список
func (b *Bot) showProjectsReply(c tele.Context, edit bool) error {
	client := b.client(c)
	if client == nil {
		return b.reply(c, MsgNotConnected, nil, edit)
	}

	projects, err := client.GetProjects()
	if err != nil {
		log.Printf("Ошибка получения проектов: %v", err)
		return b.reply(c, MsgErrorFetch, nil, edit)
	}

	if len(projects) == 0 {
		return b.reply(c, MsgNoProjects, b.backKeyboard(), edit)
	}

	return b.reply(c, MsgChooseProject, b.projectsKeyboard(projects), edit)
}

// showProjectMenu показывает меню периодов для выбранного проекта.
// Название приходит из callback payload уже урезанным.
func (b *Bot) showProjectMenu(c tele.Context, projectKey string) error {
	return c.Edit(fmt.Sprintf(MsgProjectScope, projectKey), b.projectMenuKeyboard(projectKey))
}

// handleAdd обрабатывает команду /add: создание задачи в Inbox
func (b *Bot) handleAdd(c tele.Context) error {
	client := b.client(c)
	if client == nil {
		return c.Send(MsgNotConnected)
	}

	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return c.Send(MsgAddUsage)
	}

	if err := client.AddTask(text, ""); err != nil {
		log.Printf("Ошибка создания задачи: %v", err)
		return c.Send(MsgTaskFailed)
	}

	return c.Send(fmt.Sprintf(MsgTaskAdded, text))
}

// generateAIReport строит AI-отчёт по последней выборке пользователя.
// Выборка читается из кэша и не очищается; отсутствие данных и устаревшая
// метка версии дают явные сообщения вместо повторного запроса к Todoist.
func (b *Bot) generateAIReport(c tele.Context, kindStr, stampPrefix, retryData string) error {
	userID := c.Sender().ID

	entry, ok := b.sessions.Get(userID)
	if !ok {
		_ = c.Respond(&tele.CallbackResponse{})
		return c.Edit(MsgNoCachedData, b.backKeyboard())
	}

	if stampPrefix != "" && !strings.HasPrefix(entry.Stamp, stampPrefix) {
		_ = c.Respond(&tele.CallbackResponse{})
		return c.Edit(MsgStaleCache, b.backKeyboard())
	}

	tasks := report.ExcludeProjects(entry.Tasks, b.excludedProjects)
	if len(tasks) == 0 {
		_ = c.Respond(&tele.CallbackResponse{})
		return c.Edit(MsgNoTasksForAI, b.backKeyboard())
	}

	kind := models.ReportDaily
	if kindStr == string(models.ReportMonthly) {
		kind = models.ReportMonthly
	}

	_ = c.Respond(&tele.CallbackResponse{})
	_ = c.Edit(fmt.Sprintf(MsgGeneratingReport, len(tasks)))

	prompt := report.BuildPrompt(tasks, kind)
	text, ok := b.llmClient.GenerateReport(prompt, kind)
	if !ok {
		fallback := truncateRunes(report.TasksBlock(tasks), AIFallbackLimit)
		return c.Edit(fmt.Sprintf(MsgAIUnavailable, len(tasks), fallback), b.backKeyboard())
	}

	return c.Edit(text, b.aiResultKeyboard(retryData))
}

// client возвращает Todoist клиент с токеном пользователя
// или nil, если аккаунт не подключен
func (b *Bot) client(c tele.Context) *todoist.Client {
	token, err := b.repo.GetToken(c.Sender().ID)
	if err != nil {
		log.Printf("Ошибка чтения токена: %v", err)
		return nil
	}
	if token == "" {
		return nil
	}
	return todoist.NewClient(token)
}

// reply отправляет новое сообщение или редактирует текущее —
// команды отвечают новым сообщением, callback-кнопки правят свое
func (b *Bot) reply(c tele.Context, text string, markup *tele.ReplyMarkup, edit bool) error {
	if markup == nil {
		if edit {
			return c.Edit(text)
		}
		return c.Send(text)
	}
	if edit {
		return c.Edit(text, markup)
	}
	return c.Send(text, markup)
}

// truncateRunes обрезает строку до limit рун
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
