package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedamatch/internal/app/client/config"
	"vedamatch/internal/domain/notification"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Env:           config.EnvLocal,
		ServerAddress: "localhost:8080",
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
		DataPath:      filepath.Join(dir, "library.db"),
		Languages:     "ru,en",
	}

	app, err := New(cfg, testLogger(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestApp_AddNotification(t *testing.T) {
	ctx := context.Background()

	shakes := 0
	app := newTestApp(t, Options{OnBellShake: func() { shakes++ }})

	item := app.AddNotification(ctx, notification.Input{
		Type:  notification.TypeNews,
		Title: "Новости общины",
		Data:  map[string]any{"newsId": "42"},
	})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, app.Notifications().UnreadCount())
	assert.Equal(t, 1, shakes)

	app.AddNotification(ctx, notification.Input{Type: notification.TypeNewMessage, Title: "Сообщение"})
	assert.Equal(t, 2, shakes)

	// Прочтение уменьшает счетчик, индикатор не дергается
	app.Notifications().MarkAllAsRead(ctx)
	app.UnreadBell().Update(app.Notifications().UnreadCount())
	assert.Equal(t, 2, shakes)
}
