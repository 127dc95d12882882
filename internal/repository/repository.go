package repository

import (
	"todoist-helper/internal/models"
)

// Repository определяет интерфейс для работы с данными пользователей
// Это позволяет легко заменить SQLite на другую БД
type Repository interface {
	// Токены
	GetToken(telegramID int64) (string, error)
	SaveToken(telegramID int64, token string) error
	DeleteUser(telegramID int64) error

	// Состояние диалога
	GetState(telegramID int64) (string, error)
	SetState(telegramID int64, state string) error

	// Полная запись пользователя
	GetUser(telegramID int64) (*models.UserCredential, error)

	// Утилиты
	Close() error
}
