package library

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) booksOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-books",
		Method:      http.MethodGet,
		Path:        "/library/books",
		Summary:     "Каталог книг",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) bookOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-book",
		Method:      http.MethodGet,
		Path:        "/library/books/{idOrCode}",
		Summary:     "Одна книга по id или коду",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) chaptersOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-chapters",
		Method:      http.MethodGet,
		Path:        "/library/books/{code}/chapters",
		Summary:     "Структура книги: песни и главы",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) versesOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-verses",
		Method:      http.MethodGet,
		Path:        "/library/verses",
		Summary:     "Стихи одной главы",
		Description: "Возвращает стихи главы с необязательными фильтрами по песни и языку.",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-search",
		Method:      http.MethodGet,
		Path:        "/library/search",
		Summary:     "Поиск по стихам",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "library-export",
		Method:      http.MethodGet,
		Path:        "/library/books/{code}/export",
		Summary:     "Экспорт всех стихов книги",
		Description: "Выгружает все стихи книги одним запросом для офлайн-сохранения.",
		Tags:        []string{"library"},
		Middlewares: h.middleware,
	}
}
