// internal/app/client/notifications.go
package client

import (
	"context"
	"encoding/json"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"vedamatch/internal/domain/notification"
)

// kvStorage - одиночные долговременные записи локального хранилища.
type kvStorage interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// NotificationStore - ограниченный персистентный журнал уведомлений.
// Список упорядочен от новых к старым по порядку вставки и никогда
// не длиннее notification.MaxNotifications. Все мутации сериализуются
// одним мьютексом: потерянных обновлений при параллельных вызовах нет.
type NotificationStore struct {
	storage kvStorage
	log     *slog.Logger

	mu           gosync.Mutex
	items        []notification.AppNotification
	loaded       bool
	panelVisible bool
}

// NewNotificationStore создает журнал и один раз читает сохраненную
// историю. Испорченный JSON или не-массив трактуется как отсутствие
// истории: доступность важнее, чем ошибка о битом хранилище.
func NewNotificationStore(ctx context.Context, storage kvStorage, log *slog.Logger) *NotificationStore {
	s := &NotificationStore{
		storage: storage,
		log:     log.With("component", "notifications"),
	}

	raw, err := storage.GetValue(ctx, notification.HistoryKey)
	if err != nil {
		s.log.Warn("Не удалось прочитать историю уведомлений", "error", err)
	} else if raw != "" {
		var items []notification.AppNotification
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			s.log.Warn("История уведомлений повреждена, начинаем с пустой", "error", err)
		} else {
			s.items = items
		}
	}

	s.loaded = true
	return s
}

// Add добавляет уведомление в начало журнала, обрезает журнал до лимита
// и сохраняет результат. Ошибка сохранения проглатывается: журнал в
// памяти остается авторитетным для текущей сессии.
func (s *NotificationStore) Add(ctx context.Context, input notification.Input) notification.AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := notification.AppNotification{
		ID:         notification.NewID(),
		Type:       input.Type,
		Title:      input.Title,
		Body:       input.Body,
		Data:       input.Data,
		ReceivedAt: time.Now().UnixMilli(),
		IsRead:     false,
	}

	s.items = append([]notification.AppNotification{item}, s.items...)
	if len(s.items) > notification.MaxNotifications {
		s.items = s.items[:notification.MaxNotifications]
	}

	s.persistLocked(ctx)
	return item
}

// MarkAsRead помечает уведомление прочитанным; неизвестный id - no-op.
func (s *NotificationStore) MarkAsRead(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.items {
		if s.items[i].ID == id && !s.items[i].IsRead {
			s.items[i].IsRead = true
			changed = true
			break
		}
	}

	if changed {
		s.persistLocked(ctx)
	}
}

// MarkAllAsRead помечает прочитанными все уведомления.
func (s *NotificationStore) MarkAllAsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].IsRead = true
	}

	s.persistLocked(ctx)
}

// ClearAll очищает журнал и удаляет сохраненный ключ целиком:
// отсутствующий ключ и пустой массив эквивалентны при загрузке.
func (s *NotificationStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	if err := s.storage.DeleteValue(ctx, notification.HistoryKey); err != nil {
		s.log.Warn("Не удалось удалить историю уведомлений", "error", err)
	}
}

// List возвращает снимок журнала от новых к старым.
func (s *NotificationStore) List() []notification.AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]notification.AppNotification, len(s.items))
	copy(items, s.items)
	return items
}

// UnreadCount вычисляется заново при каждом чтении, не хранится.
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		if !s.items[i].IsRead {
			count++
		}
	}
	return count
}

// Len возвращает текущую длину журнала.
func (s *NotificationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Loaded сообщает, прочитана ли сохраненная история в память.
func (s *NotificationStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// SetPanelVisible переключает видимость панели; флаг не зависит от журнала.
func (s *NotificationStore) SetPanelVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panelVisible = visible
}

// IsPanelVisible возвращает текущую видимость панели.
func (s *NotificationStore) IsPanelVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panelVisible
}

func (s *NotificationStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warn("Не удалось сериализовать историю уведомлений", "error", err)
		return
	}

	if err := s.storage.SetValue(ctx, notification.HistoryKey, string(data)); err != nil {
		s.log.Warn("Не удалось сохранить историю уведомлений", "error", err)
	}
}
