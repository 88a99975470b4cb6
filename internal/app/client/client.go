package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"vedamatch/internal/app/client/config"
	"vedamatch/internal/domain/library"
	"vedamatch/internal/domain/notification"
)

// Storage - полный контракт локального хранилища клиента.
type Storage interface {
	bookStorage
	kvStorage
	CountSavedBooks(ctx context.Context) (int, error)
	Close() error
}

// App - корень клиентского приложения. Владеет жизненным циклом
// хранилища и сервисов: явная инициализация при старте, явное
// закрытие при завершении, без ленивых глобальных синглтонов.
type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	storage       Storage
	offline       *OfflineService
	notifications *NotificationStore
	panel         *Panel
	bell          *Bell
	state         *AppState
	authenticated bool
	mu            gosync.RWMutex
}

// AppState хранит состояние приложения
type AppState struct {
	Initialized     bool      `json:"initialized"`
	DeviceID        string    `json:"device_id"`
	LastSave        time.Time `json:"last_save"`
	SavedBooksCount int       `json:"saved_books_count"`
}

// Options - внешние коллабораторы приложения.
type Options struct {
	// OnNotificationAction получает data-нагрузку нажатого уведомления
	// (маршрутизация диплинков вне зоны ответственности клиента).
	OnNotificationAction ActionHandler

	// OnBellShake вызывается при росте счетчика непрочитанных.
	OnBellShake func()
}

func New(cfg *config.Config, log *slog.Logger, opts Options) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	// Постоянный идентификатор установки
	if state.DeviceID == "" {
		state.DeviceID = uuid.NewString()
	}

	// Инициализируем HTTP клиент
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	// Инициализируем локальное хранилище (используем SQLite)
	var storage Storage
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
		state:      state,
	}

	app.offline = NewOfflineService(httpCl, storage, log)
	app.notifications = NewNotificationStore(context.Background(), storage, log)
	app.panel = NewPanel(app.notifications, opts.OnNotificationAction, log)
	app.bell = NewBell(opts.OnBellShake)

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.mu.Lock()
		app.authenticated = true
		app.mu.Unlock()
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	statePath := filepath.Join(cfg.ConfigDir, "state.json")

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	statePath := filepath.Join(a.config.ConfigDir, "state.json")
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(statePath, data, 0600)
}

// Config возвращает конфигурацию приложения.
func (a *App) Config() *config.Config {
	return a.config
}

// Offline возвращает сервис офлайн-библиотеки.
func (a *App) Offline() *OfflineService {
	return a.offline
}

// Notifications возвращает журнал уведомлений.
func (a *App) Notifications() *NotificationStore {
	return a.notifications
}

// AddNotification кладет уведомление в журнал и передает индикатору
// новое значение счетчика непрочитанных.
func (a *App) AddNotification(ctx context.Context, input notification.Input) notification.AppNotification {
	item := a.notifications.Add(ctx, input)
	a.bell.Update(a.notifications.UnreadCount())
	return item
}

// NotificationPanel возвращает панель уведомлений.
func (a *App) NotificationPanel() *Panel {
	return a.panel
}

// UnreadBell возвращает индикатор непрочитанных.
func (a *App) UnreadBell() *Bell {
	return a.bell
}

// IsInitialized проверяет, инициализирован ли клиент
func (a *App) IsInitialized() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.Initialized
}

// Init выполняет первоначальную настройку клиента.
func (a *App) Init() error {
	if _, err := a.storage.CountSavedBooks(context.Background()); err != nil {
		return fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	a.mu.Lock()
	a.state.Initialized = true
	if err := a.saveAppState(); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	a.mu.Unlock()

	return nil
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated проверяет, установлен ли токен
func (a *App) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		token, err := a.GetToken()
		if err == nil && token != "" {
			a.authenticated = true
		}
	}

	return a.authenticated
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("токен не найден. Выполните вход: vedamatch auth token")
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return string(tokenBytes), nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	return nil
}

// ClearToken удаляет токен
func (a *App) ClearToken() error {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	a.httpClient.SetToken("")
	return nil
}

// ==================== Library Operations ====================

// Catalog - каталог книг: удаленный список плюс локальные метаданные.
type Catalog struct {
	Books       []library.Book
	Saved       []library.SavedBookInfo
	OfflineOnly bool
}

// GetCatalog возвращает каталог библиотеки. При недоступности сети
// деградирует до локально сохраненных книг: пустой удаленный результат
// сливается с офлайн-метаданными вместо полного отказа.
func (a *App) GetCatalog(ctx context.Context) (*Catalog, error) {
	saved, err := a.offline.GetSavedBooks(ctx)
	if err != nil {
		a.log.Warn("Не удалось прочитать сохраненные книги", "error", err)
	}

	books, err := a.httpClient.GetBooks(ctx)
	if err != nil {
		a.log.Warn("Каталог недоступен, показываем только офлайн-книги", "error", err)
		return &Catalog{Saved: saved, OfflineOnly: true}, nil
	}

	return &Catalog{Books: books, Saved: saved}, nil
}

// GetOfflineCatalog возвращает только локально сохраненные книги,
// не обращаясь к серверу.
func (a *App) GetOfflineCatalog(ctx context.Context) (*Catalog, error) {
	saved, err := a.offline.GetSavedBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения сохраненных книг: %w", err)
	}
	return &Catalog{Saved: saved, OfflineOnly: true}, nil
}

// GetBookDetails возвращает одну книгу по id или code.
func (a *App) GetBookDetails(ctx context.Context, idOrCode string) (*library.Book, error) {
	return a.httpClient.GetBookDetails(ctx, idOrCode)
}

// GetChapters возвращает структуру книги с сервера.
func (a *App) GetChapters(ctx context.Context, bookCode string) ([]library.ChapterInfo, error) {
	return a.httpClient.GetChapters(ctx, bookCode)
}

// GetVerses возвращает стихи главы с сервера.
func (a *App) GetVerses(ctx context.Context, bookCode string, chapter, canto int, language string) ([]library.Verse, error) {
	return a.httpClient.GetVerses(ctx, bookCode, chapter, canto, language)
}

// Search выполняет серверный поиск по стихам.
func (a *App) Search(ctx context.Context, query string) ([]library.Verse, error) {
	return a.httpClient.Search(ctx, query)
}

// SaveBookOffline сохраняет книгу офлайн и обновляет состояние приложения.
func (a *App) SaveBookOffline(ctx context.Context, book library.Book, languages []string, onProgress ProgressFunc) bool {
	saved := a.offline.SaveBookOffline(ctx, book, languages, onProgress)
	if !saved {
		return false
	}

	a.mu.Lock()
	a.state.LastSave = time.Now()
	if count, err := a.storage.CountSavedBooks(ctx); err == nil {
		a.state.SavedBooksCount = count
	}
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return true
}

// Close освобождает ресурсы приложения.
func (a *App) Close() error {
	return a.storage.Close()
}
