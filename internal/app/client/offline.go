// internal/app/client/offline.go
package client

import (
	"context"
	"fmt"
	"strings"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"vedamatch/internal/domain/library"
)

// bytesPerVerse - фиксированная оценка размера одного стиха.
// Это сознательное приближение вместо сериализации всего содержимого
// ради измерения; значение sizeBytes показывается в UI как есть.
const bytesPerVerse = 1000

// ProgressFunc получает процент выполнения и человекочитаемый статус.
// Вызывающая сторона показывает статус напрямую.
type ProgressFunc func(progress int, status string)

// libraryFetcher - операции удаленного API, нужные офлайн-синхронизации.
type libraryFetcher interface {
	GetChapters(ctx context.Context, bookCode string) ([]library.ChapterInfo, error)
	ExportBook(ctx context.Context, bookCode, language string) ([]library.Verse, error)
}

// bookStorage - операции локального хранилища книг.
type bookStorage interface {
	SaveBook(ctx context.Context, info *library.SavedBookInfo, data *library.OfflineBookData) error
	DeleteBook(ctx context.Context, code string) error
	GetSavedBook(ctx context.Context, code string) (*library.SavedBookInfo, error)
	ListSavedBooks(ctx context.Context) ([]library.SavedBookInfo, error)
	GetBookData(ctx context.Context, code string) (*library.OfflineBookData, error)
}

// OfflineService управляет зеркалированием книг в локальное хранилище:
// скачивание с прогрессом, атомарная запись, чтение офлайн-данных.
type OfflineService struct {
	remote  libraryFetcher
	storage bookStorage
	log     *slog.Logger

	// Сохранения одной и той же книги сериализуются: параллельные
	// вызовы SaveBookOffline для одного code ждут друг друга, чтобы
	// их транзакции не перемежались.
	mu     gosync.Mutex
	saving map[string]*gosync.Mutex
}

// NewOfflineService создает сервис офлайн-библиотеки
func NewOfflineService(remote libraryFetcher, storage bookStorage, log *slog.Logger) *OfflineService {
	return &OfflineService{
		remote:  remote,
		storage: storage,
		log:     log.With("component", "offline"),
		saving:  make(map[string]*gosync.Mutex),
	}
}

func (s *OfflineService) lockBook(code string) func() {
	s.mu.Lock()
	lock, ok := s.saving[code]
	if !ok {
		lock = &gosync.Mutex{}
		s.saving[code] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SaveBookOffline скачивает книгу целиком и записывает ее в локальное
// хранилище. Прогресс: 5% структура, интервал [10,50] поровну между
// языками (экспорт - доминирующая стоимость), 92% запись, 100% готово.
// Любая ошибка превращается в прогресс 0% со статусом ошибки и false;
// до финальной транзакции ничего не пишется, полусохраненная книга
// в хранилище появиться не может.
func (s *OfflineService) SaveBookOffline(ctx context.Context, book library.Book, languages []string, onProgress ProgressFunc) bool {
	report := func(progress int, status string) {
		if onProgress != nil {
			onProgress(progress, status)
		}
	}

	unlock := s.lockBook(book.Code)
	defer unlock()

	saved, err := s.saveBook(ctx, book, languages, report)
	if err != nil {
		s.log.Error("Ошибка сохранения книги", "code", book.Code, "error", err)
		report(0, "Ошибка сохранения")
		return false
	}

	return saved
}

func (s *OfflineService) saveBook(ctx context.Context, book library.Book, languages []string, report ProgressFunc) (bool, error) {
	report(5, "Загрузка структуры...")

	chapters, err := s.remote.GetChapters(ctx, book.Code)
	if err != nil {
		return false, fmt.Errorf("ошибка загрузки глав: %w", err)
	}
	if len(chapters) == 0 {
		s.log.Warn("Книга не содержит глав", "code", book.Code)
		report(100, "Книга не содержит глав")
		return false, nil
	}

	data := &library.OfflineBookData{
		Book:     book,
		Chapters: chapters,
		Verses:   make(map[string]map[int][]library.Verse, len(languages)),
	}

	totalVerses := 0

	// Пакетная выгрузка по каждому запрошенному языку, строго в порядке
	// вызывающей стороны. Языки обрабатываются последовательно: прогресс
	// опирается на то, какой язык сейчас "текущий".
	for i, lang := range languages {
		report(10+i*40/len(languages), fmt.Sprintf("Загрузка данных (%s)...", strings.ToUpper(lang)))

		verses, err := s.remote.ExportBook(ctx, book.Code, lang)
		if err != nil {
			return false, fmt.Errorf("ошибка экспорта книги (%s): %w", lang, err)
		}

		// Раскладываем стихи по главам в порядке ответа сервера,
		// без пересортировки на клиенте.
		byChapter := data.Verses[lang]
		if byChapter == nil {
			byChapter = make(map[int][]library.Verse)
			data.Verses[lang] = byChapter
		}
		for _, verse := range verses {
			byChapter[verse.Chapter] = append(byChapter[verse.Chapter], verse)
		}

		totalVerses += len(verses)
	}

	report(92, "Сохранение данных...")

	info := &library.SavedBookInfo{
		Code:          book.Code,
		NameRu:        book.NameRu,
		NameEn:        book.NameEn,
		DescriptionRu: book.DescriptionRu,
		DescriptionEn: book.DescriptionEn,
		SavedAt:       time.Now(),
		SizeBytes:     int64(totalVerses) * bytesPerVerse,
		ChaptersCount: len(chapters),
		VersesCount:   totalVerses,
	}

	if err := s.storage.SaveBook(ctx, info, data); err != nil {
		return false, fmt.Errorf("ошибка записи в хранилище: %w", err)
	}

	report(100, "Готово!")
	s.log.Info("Книга сохранена офлайн",
		"code", book.Code,
		"chapters", len(chapters),
		"verses", totalVerses,
	)

	return true, nil
}

// RemoveBook удаляет метаданные и содержимое книги одной транзакцией.
// Удаление несохраненной книги - не ошибка.
func (s *OfflineService) RemoveBook(ctx context.Context, code string) bool {
	if err := s.storage.DeleteBook(ctx, code); err != nil {
		s.log.Error("Ошибка удаления книги", "code", code, "error", err)
		return false
	}

	s.log.Info("Книга удалена из офлайн-хранилища", "code", code)
	return true
}

// GetSavedBooks возвращает метаданные всех сохраненных книг,
// не читая содержимое.
func (s *OfflineService) GetSavedBooks(ctx context.Context) ([]library.SavedBookInfo, error) {
	return s.storage.ListSavedBooks(ctx)
}

// IsBookSaved проверяет, скачана ли книга.
func (s *OfflineService) IsBookSaved(ctx context.Context, code string) bool {
	info, err := s.storage.GetSavedBook(ctx, code)
	if err != nil {
		s.log.Warn("Ошибка проверки книги", "code", code, "error", err)
		return false
	}
	return info != nil
}

// GetSavedBookSize возвращает оценку размера книги в байтах, 0 если не сохранена.
func (s *OfflineService) GetSavedBookSize(ctx context.Context, code string) int64 {
	info, err := s.storage.GetSavedBook(ctx, code)
	if err != nil || info == nil {
		return 0
	}
	return info.SizeBytes
}

// TotalOfflineSize возвращает суммарную оценку размера всех сохраненных книг.
func (s *OfflineService) TotalOfflineSize(ctx context.Context) int64 {
	books, err := s.storage.ListSavedBooks(ctx)
	if err != nil {
		s.log.Warn("Ошибка подсчета размера", "error", err)
		return 0
	}

	var total int64
	for _, b := range books {
		total += b.SizeBytes
	}
	return total
}

// GetBookData возвращает полное содержимое книги, nil если не сохранена.
func (s *OfflineService) GetBookData(ctx context.Context, code string) *library.OfflineBookData {
	data, err := s.storage.GetBookData(ctx, code)
	if err != nil {
		s.log.Warn("Ошибка чтения книги", "code", code, "error", err)
		return nil
	}
	return data
}

// GetOfflineVerses возвращает стихи одной главы на одном языке.
// Отсутствие книги, языка или главы - нормальный пустой результат.
func (s *OfflineService) GetOfflineVerses(ctx context.Context, code string, chapter int, language string) []library.Verse {
	data := s.GetBookData(ctx, code)
	if data == nil {
		return []library.Verse{}
	}

	verses := data.VersesFor(language, chapter)
	if verses == nil {
		return []library.Verse{}
	}
	return verses
}

// GetOfflineChapters возвращает список глав сохраненной книги,
// пустой список если книга не скачана.
func (s *OfflineService) GetOfflineChapters(ctx context.Context, code string) []library.ChapterInfo {
	data := s.GetBookData(ctx, code)
	if data == nil {
		return []library.ChapterInfo{}
	}
	return data.Chapters
}
