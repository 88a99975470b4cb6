package library

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vedamatch/internal/app/devserver/store"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store *store.Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.booksOp(), h.books)
	huma.Register(api, h.bookOp(), h.book)
	huma.Register(api, h.chaptersOp(), h.chapters)
	huma.Register(api, h.versesOp(), h.verses)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.exportOp(), h.export)
}

func (h *Handler) books(_ context.Context, _ *struct{}) (*booksOutput, error) {
	return &booksOutput{Body: h.store.Books()}, nil
}

func (h *Handler) book(_ context.Context, input *bookInput) (*bookOutput, error) {
	book, ok := h.store.FindBook(input.IDOrCode)
	if !ok {
		return nil, huma.Error404NotFound("книга не найдена")
	}
	return &bookOutput{Body: *book}, nil
}

func (h *Handler) chapters(_ context.Context, input *chaptersInput) (*chaptersOutput, error) {
	chapters := h.store.Chapters(input.Code)
	if chapters == nil {
		return nil, huma.Error404NotFound("книга не найдена")
	}
	return &chaptersOutput{Body: chapters}, nil
}

func (h *Handler) verses(_ context.Context, input *versesInput) (*versesOutput, error) {
	verses := h.store.Verses(input.BookCode, input.Chapter, input.Canto, input.Language)
	return &versesOutput{Body: verses}, nil
}

func (h *Handler) search(_ context.Context, input *searchInput) (*versesOutput, error) {
	return &versesOutput{Body: h.store.Search(input.Query)}, nil
}

func (h *Handler) export(_ context.Context, input *exportInput) (*versesOutput, error) {
	if _, ok := h.store.FindBook(input.Code); !ok {
		return nil, huma.Error404NotFound("книга не найдена")
	}
	return &versesOutput{Body: h.store.Export(input.Code, input.Language)}, nil
}
