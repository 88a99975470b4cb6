// Dev-сервер библиотеки: отдает тестовый корпус по тому же HTTP
// контракту, что и боевой сервер VedaMatch.

// GET /api/v1/health                      # Проверка доступности
// GET /library/books                      # Каталог книг
// GET /library/books/{idOrCode}           # Одна книга
// GET /library/books/{code}/chapters      # Структура книги
// GET /library/books/{code}/export        # Экспорт всех стихов
// GET /library/verses                     # Стихи главы
// GET /library/search                     # Поиск по стихам

package api

import (
	healthAPI "vedamatch/internal/app/devserver/api/http/health"
	libraryAPI "vedamatch/internal/app/devserver/api/http/library"
	"vedamatch/internal/app/devserver/api/http/middleware/logger"
	"vedamatch/internal/app/devserver/store"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Library *libraryAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(st *store.Store, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("VedaMatch Dev API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(st, log)
	h.Health.SetupRoutes(API)
	h.Library.SetupRoutes(API)

	return mux
}

func handlers(st *store.Store, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := huma.Middlewares{loggerMW.Middleware()}

	return &Handlers{
		Health:  healthAPI.NewHandler(log, middlewares),
		Library: libraryAPI.NewHandler(st, log, middlewares),
	}
}
