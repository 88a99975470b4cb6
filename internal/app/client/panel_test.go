package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vedamatch/internal/domain/notification"
)

func newTestPanel(t *testing.T, action ActionHandler) (*Panel, *NotificationStore) {
	t.Helper()
	store := NewNotificationStore(context.Background(), NewMemoryStorage(), testLogger())
	panel := NewPanel(store, action, testLogger())
	panel.delay = 5 * time.Millisecond
	return panel, store
}

func TestPanel_OpenClose(t *testing.T) {
	panel, _ := newTestPanel(t, nil)

	assert.False(t, panel.IsVisible())
	panel.Open()
	assert.True(t, panel.IsVisible())
	panel.Close()
	assert.False(t, panel.IsVisible())

	panel.Open()
	panel.BackdropTap()
	assert.False(t, panel.IsVisible())
}

func TestPanel_DragSlop(t *testing.T) {
	panel, _ := newTestPanel(t, nil)
	panel.Open()

	// Смещение в пределах зоны нечувствительности жестом не считается
	panel.DragMove(5)
	assert.Equal(t, 0.0, panel.DragOffset())

	panel.DragMove(50)
	assert.Equal(t, 50.0, panel.DragOffset())

	// После начала жеста панель следует за пальцем, но не выше открытой позиции
	panel.DragMove(-20)
	assert.Equal(t, 0.0, panel.DragOffset())
}

func TestPanel_DragRelease(t *testing.T) {
	tests := []struct {
		name    string
		dy, vy  float64
		dismiss bool
	}{
		{"короткое медленное - возврат", 50, 0.1, false},
		{"ровно на пороге дистанции - возврат", 80, 0, false},
		{"за порогом дистанции", 100, 0, true},
		{"короткий быстрый свайп", 20, 0.8, true},
		{"ровно на пороге скорости - возврат", 20, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel, _ := newTestPanel(t, nil)
			panel.Open()

			panel.DragMove(tt.dy)
			closed := panel.DragRelease(tt.dy, tt.vy)

			assert.Equal(t, tt.dismiss, closed)
			assert.Equal(t, !tt.dismiss, panel.IsVisible())
			// Смещение сбрасывается в любом случае
			assert.Equal(t, 0.0, panel.DragOffset())
		})
	}
}

func TestPanel_Tap(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var got map[string]any
	done := make(chan struct{})

	panel, store := newTestPanel(t, func(data map[string]any) {
		mu.Lock()
		got = data
		mu.Unlock()
		close(done)
	})

	n := store.Add(ctx, notification.Input{
		Type:  notification.TypeNewMessage,
		Title: "Сообщение",
		Data:  map[string]any{"roomId": "7"},
	})
	panel.Open()

	panel.Tap(ctx, n.ID)

	// Прочитано и закрыто сразу
	assert.Equal(t, 0, store.UnreadCount())
	assert.False(t, panel.IsVisible())

	// Обработчик вызывается после задержки
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("обработчик действия не был вызван")
	}
	mu.Lock()
	assert.Equal(t, "7", got["roomId"])
	mu.Unlock()
}

func TestPanel_TapUnknownID(t *testing.T) {
	ctx := context.Background()
	called := false
	panel, store := newTestPanel(t, func(map[string]any) { called = true })

	store.Add(ctx, notification.Input{Type: notification.TypeNews, Title: "a"})
	panel.Open()

	panel.Tap(ctx, "нет-такого")

	// Неизвестный id ничего не меняет
	assert.True(t, panel.IsVisible())
	assert.Equal(t, 1, store.UnreadCount())
	time.Sleep(20 * time.Millisecond)
	assert.False(t, called)
}

func TestPanel_ActionAvailability(t *testing.T) {
	ctx := context.Background()
	panel, store := newTestPanel(t, nil)

	assert.False(t, panel.CanMarkAllRead())
	assert.False(t, panel.CanClearAll())

	n := store.Add(ctx, notification.Input{Type: notification.TypeNews, Title: "a"})
	assert.True(t, panel.CanMarkAllRead())
	assert.True(t, panel.CanClearAll())

	store.MarkAsRead(ctx, n.ID)
	assert.False(t, panel.CanMarkAllRead())
	assert.True(t, panel.CanClearAll())
}
