package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"vedamatch/internal/app/client/config"
	"vedamatch/internal/domain/library"
)

// httpClient - тонкий клиент удаленного API библиотеки.
// Все операции только читают; ошибки транспорта и не-2xx статусы
// возвращаются вызывающему без повторных попыток.
type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "VedaMatch-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// GetBooks возвращает полный каталог книг.
func (h *httpClient) GetBooks(ctx context.Context) ([]library.Book, error) {
	var books []library.Book
	if err := h.get(ctx, "/library/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBookDetails возвращает одну книгу по числовому id или по code.
func (h *httpClient) GetBookDetails(ctx context.Context, idOrCode string) (*library.Book, error) {
	var book library.Book
	if err := h.get(ctx, "/library/books/"+url.PathEscape(idOrCode), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetChapters возвращает упорядоченный список пар (canto, chapter) книги.
func (h *httpClient) GetChapters(ctx context.Context, bookCode string) ([]library.ChapterInfo, error) {
	var chapters []library.ChapterInfo
	path := "/library/books/" + url.PathEscape(bookCode) + "/chapters"
	if err := h.get(ctx, path, nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetVerses возвращает стихи одной главы. Canto и language - необязательные
// фильтры: нулевые значения не попадают в запрос.
func (h *httpClient) GetVerses(ctx context.Context, bookCode string, chapter, canto int, language string) ([]library.Verse, error) {
	params := url.Values{}
	params.Set("bookCode", bookCode)
	params.Set("chapter", strconv.Itoa(chapter))
	if canto > 0 {
		params.Set("canto", strconv.Itoa(canto))
	}
	if language != "" {
		params.Set("language", language)
	}

	var verses []library.Verse
	if err := h.get(ctx, "/library/verses", params, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}

// Search выполняет полнотекстовый поиск по стихам на сервере.
func (h *httpClient) Search(ctx context.Context, query string) ([]library.Verse, error) {
	params := url.Values{}
	params.Set("q", query)

	var verses []library.Verse
	if err := h.get(ctx, "/library/search", params, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}

// ExportBook выгружает ВСЕ стихи книги одним запросом, опционально
// отфильтрованные по языку. Это примитив, на который опирается
// офлайн-синхронизация вместо постраничной загрузки по главам.
func (h *httpClient) ExportBook(ctx context.Context, bookCode, language string) ([]library.Verse, error) {
	params := url.Values{}
	if language != "" {
		params.Set("language", language)
	}

	var verses []library.Verse
	path := "/library/books/" + url.PathEscape(bookCode) + "/export"
	if err := h.get(ctx, path, params, &verses); err != nil {
		return nil, err
	}
	return verses, nil
}

func (h *httpClient) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	fullURL := h.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", "GET",
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return h.parseResponse(resp, result)
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("ошибка сервера: %s", errResp.Error)
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
