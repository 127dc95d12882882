package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"todoist-helper/internal/bot"
	"todoist-helper/internal/llm"
	"todoist-helper/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	// Загружаем переменные окружения из .env файла
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Получаем токен бота из переменных окружения
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	// Путь к БД с токенами пользователей
	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "data/bot.db"
	}
	if err := os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Инициализируем репозиторий для работы с данными
	repo, err := repository.NewSQLiteRepository(databasePath)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	defer repo.Close()

	// Инициализируем Gemini клиент. Пустой ключ допустим:
	// AI-отчёты тогда будут отвечать "недоступно".
	llmClient := llm.NewClient(os.Getenv("GEMINI_API_KEY"))

	// Проекты, исключаемые из AI-отчётов
	excluded := splitProjects(os.Getenv("AI_EXCLUDED_PROJECTS"))

	// Создаем и запускаем бота
	botInstance := bot.NewBot(botToken, repo, llmClient, excluded)

	log.Println("Starting Todoist Helper bot...")
	if err := botInstance.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}
}

// splitProjects разбирает список названий проектов через запятую
func splitProjects(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, name := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
