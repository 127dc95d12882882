package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"todoist-helper/internal/models"
)

// Entry представляет результат последнего просмотра задач пользователем.
// Хранится, чтобы запрос AI-отчёта сразу после просмотра не перезапрашивал
// Todoist. До перезапуска процесса, следующего просмотра или истечения TTL.
type Entry struct {
	Tasks         []models.TaskInfo
	Period        models.Period
	ProjectFilter string
	Stamp         string // Метка версии: по ней отсекаются устаревшие запросы отчёта
	storedAt      time.Time
}

// Store хранит кэш последних выборок по пользователям.
// Запись перетирает предыдущую (last-writer-wins), записи истекают по TTL.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int64]*Entry
}

// NewStore создает новый кэш с заданным временем жизни записей
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int64]*Entry),
	}
}

// Put сохраняет выборку пользователя и возвращает запись с новой меткой версии
func (s *Store) Put(userID int64, tasks []models.TaskInfo, period models.Period, projectFilter string) *Entry {
	entry := &Entry{
		Tasks:         tasks,
		Period:        period,
		ProjectFilter: projectFilter,
		Stamp:         uuid.New().String(),
		storedAt:      s.now(),
	}

	s.mu.Lock()
	s.entries[userID] = entry
	s.mu.Unlock()

	return entry
}

// Get возвращает последнюю выборку пользователя. Запись не очищается:
// отчёт можно перегенерировать по тем же данным. Истекшие записи удаляются.
func (s *Store) Get(userID int64) (*Entry, bool) {
	s.mu.RLock()
	entry, exists := s.entries[userID]
	s.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if s.now().Sub(entry.storedAt) > s.ttl {
		s.Delete(userID)
		return nil, false
	}

	return entry, true
}

// Delete удаляет выборку пользователя
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
}
