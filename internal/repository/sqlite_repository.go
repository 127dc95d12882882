package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"todoist-helper/internal/models"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrUserNotFound возвращается, когда записи пользователя нет в БД
var ErrUserNotFound = errors.New("user not found")

// SQLiteRepository реализует Repository интерфейс поверх SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository открывает БД и применяет схему
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	if _, err := db.Exec(string(schemaSQL)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// GetToken возвращает токен пользователя или пустую строку, если токена нет
func (r *SQLiteRepository) GetToken(telegramID int64) (string, error) {
	var token string
	err := r.db.QueryRow(
		"SELECT todoist_token FROM users WHERE telegram_id = ?", telegramID,
	).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token, nil
}

// SaveToken сохраняет токен (upsert) и переводит пользователя в состояние "ready".
// В таблице всегда не больше одной записи на telegram_id.
func (r *SQLiteRepository) SaveToken(telegramID int64, token string) error {
	_, err := r.db.Exec(`
		INSERT INTO users (telegram_id, todoist_token, state)
		VALUES (?, ?, ?)
		ON CONFLICT(telegram_id) DO UPDATE SET
			todoist_token = excluded.todoist_token,
			state = excluded.state`,
		telegramID, token, models.StateReady,
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// DeleteUser удаляет запись пользователя (отключение аккаунта)
func (r *SQLiteRepository) DeleteUser(telegramID int64) error {
	_, err := r.db.Exec("DELETE FROM users WHERE telegram_id = ?", telegramID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetState возвращает состояние диалога пользователя.
// Отсутствие записи означает, что настройка еще не пройдена.
func (r *SQLiteRepository) GetState(telegramID int64) (string, error) {
	var state string
	err := r.db.QueryRow(
		"SELECT state FROM users WHERE telegram_id = ?", telegramID,
	).Scan(&state)
	if err == sql.ErrNoRows {
		return models.StateAwaitingToken, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get state: %w", err)
	}
	return state, nil
}

// SetState сохраняет состояние диалога, не трогая токен
func (r *SQLiteRepository) SetState(telegramID int64, state string) error {
	_, err := r.db.Exec(`
		INSERT INTO users (telegram_id, state)
		VALUES (?, ?)
		ON CONFLICT(telegram_id) DO UPDATE SET state = excluded.state`,
		telegramID, state,
	)
	if err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}

// GetUser возвращает полную запись пользователя
func (r *SQLiteRepository) GetUser(telegramID int64) (*models.UserCredential, error) {
	user := &models.UserCredential{}
	err := r.db.QueryRow(
		"SELECT telegram_id, todoist_token, state, created_at FROM users WHERE telegram_id = ?",
		telegramID,
	).Scan(&user.TelegramID, &user.AccessToken, &user.State, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Close закрывает соединение с БД
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
