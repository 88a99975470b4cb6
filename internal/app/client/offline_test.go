package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vedamatch/internal/domain/library"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRemote - подменный клиент библиотеки для тестов.
type fakeRemote struct {
	chapters map[string][]library.ChapterInfo
	exports  map[string][]library.Verse // ключ: code/language
	err      error
}

func (f *fakeRemote) GetChapters(_ context.Context, bookCode string) ([]library.ChapterInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chapters[bookCode], nil
}

func (f *fakeRemote) ExportBook(_ context.Context, bookCode, language string) ([]library.Verse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exports[bookCode+"/"+language], nil
}

func makeVerses(code, language string, chapter, count int) []library.Verse {
	verses := make([]library.Verse, 0, count)
	for i := 1; i <= count; i++ {
		verses = append(verses, library.Verse{
			ID:          chapter*1000 + i,
			BookCode:    code,
			Chapter:     chapter,
			Verse:       fmt.Sprintf("%d.%d", chapter, i),
			Language:    language,
			Translation: fmt.Sprintf("текст %s %d.%d", language, chapter, i),
		})
	}
	return verses
}

type progressEntry struct {
	progress int
	status   string
}

func TestSaveBookOffline(t *testing.T) {
	book := library.Book{
		ID:     1,
		Code:   "bg",
		NameRu: "Бхагавад-гита",
		NameEn: "Bhagavad-gita",
	}

	remote := &fakeRemote{
		chapters: map[string][]library.ChapterInfo{
			"bg": {{Canto: 0, Chapter: 1}, {Canto: 0, Chapter: 2}},
		},
		exports: map[string][]library.Verse{
			"bg/ru": append(makeVerses("bg", "ru", 1, 6), makeVerses("bg", "ru", 2, 4)...),
			"bg/en": append(makeVerses("bg", "en", 1, 6), makeVerses("bg", "en", 2, 4)...),
		},
	}

	storage := NewMemoryStorage()
	svc := NewOfflineService(remote, storage, testLogger())
	ctx := context.Background()

	var progress []progressEntry
	saved := svc.SaveBookOffline(ctx, book, []string{"ru", "en"}, func(p int, status string) {
		progress = append(progress, progressEntry{p, status})
	})
	require.True(t, saved)

	// Прогресс: структура, по контрольной точке на язык, запись, готово
	require.Len(t, progress, 5)
	assert.Equal(t, progressEntry{5, "Загрузка структуры..."}, progress[0])
	assert.Equal(t, progressEntry{10, "Загрузка данных (RU)..."}, progress[1])
	assert.Equal(t, progressEntry{30, "Загрузка данных (EN)..."}, progress[2])
	assert.Equal(t, progressEntry{92, "Сохранение данных..."}, progress[3])
	assert.Equal(t, progressEntry{100, "Готово!"}, progress[4])

	books, err := svc.GetSavedBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "bg", books[0].Code)
	assert.Equal(t, "Бхагавад-гита", books[0].NameRu)
	assert.Equal(t, 2, books[0].ChaptersCount)
	assert.Equal(t, 20, books[0].VersesCount)
	assert.Equal(t, int64(20*bytesPerVerse), books[0].SizeBytes)
	assert.WithinDuration(t, time.Now(), books[0].SavedAt, time.Minute)

	// Стихи главы 1 на русском - ровно то, что вернул экспорт, в том же порядке
	verses := svc.GetOfflineVerses(ctx, "bg", 1, "ru")
	require.Len(t, verses, 6)
	for i, v := range verses {
		assert.Equal(t, remote.exports["bg/ru"][i], v)
	}

	chapters := svc.GetOfflineChapters(ctx, "bg")
	assert.Equal(t, remote.chapters["bg"], chapters)

	assert.True(t, svc.IsBookSaved(ctx, "bg"))
	assert.Equal(t, int64(20000), svc.GetSavedBookSize(ctx, "bg"))
	assert.Equal(t, int64(20000), svc.TotalOfflineSize(ctx))
}

func TestSaveBookOffline_NoChapters(t *testing.T) {
	book := library.Book{Code: "empty", NameRu: "Пустая"}
	remote := &fakeRemote{chapters: map[string][]library.ChapterInfo{}}
	storage := NewMemoryStorage()
	svc := NewOfflineService(remote, storage, testLogger())
	ctx := context.Background()

	var progress []progressEntry
	saved := svc.SaveBookOffline(ctx, book, []string{"ru"}, func(p int, status string) {
		progress = append(progress, progressEntry{p, status})
	})

	assert.False(t, saved)
	require.NotEmpty(t, progress)
	assert.Equal(t, progressEntry{100, "Книга не содержит глав"}, progress[len(progress)-1])

	// Ничего не записано
	books, err := svc.GetSavedBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.False(t, svc.IsBookSaved(ctx, "empty"))
}

func TestSaveBookOffline_ExportError(t *testing.T) {
	book := library.Book{Code: "bg"}
	// Ошибка возникает после успешной загрузки глав
	failing := &failingExportRemote{
		chapters: map[string][]library.ChapterInfo{"bg": {{Chapter: 1}}},
	}
	storage := NewMemoryStorage()
	svc := NewOfflineService(failing, storage, testLogger())
	ctx := context.Background()

	var progress []progressEntry
	saved := svc.SaveBookOffline(ctx, book, []string{"ru"}, func(p int, status string) {
		progress = append(progress, progressEntry{p, status})
	})

	assert.False(t, saved)
	require.NotEmpty(t, progress)
	assert.Equal(t, progressEntry{0, "Ошибка сохранения"}, progress[len(progress)-1])

	// Частичное состояние не фиксируется
	books, err := svc.GetSavedBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

type failingExportRemote struct {
	chapters map[string][]library.ChapterInfo
}

func (f *failingExportRemote) GetChapters(_ context.Context, bookCode string) ([]library.ChapterInfo, error) {
	return f.chapters[bookCode], nil
}

func (f *failingExportRemote) ExportBook(context.Context, string, string) ([]library.Verse, error) {
	return nil, errors.New("сеть недоступна")
}

func TestSaveBookOffline_Resave(t *testing.T) {
	book := library.Book{Code: "bg", NameRu: "Бхагавад-гита"}
	remote := &fakeRemote{
		chapters: map[string][]library.ChapterInfo{"bg": {{Chapter: 1}}},
		exports: map[string][]library.Verse{
			"bg/ru": makeVerses("bg", "ru", 1, 3),
		},
	}
	storage := NewMemoryStorage()
	svc := NewOfflineService(remote, storage, testLogger())
	ctx := context.Background()

	require.True(t, svc.SaveBookOffline(ctx, book, []string{"ru"}, nil))

	// Повторное сохранение целиком заменяет содержимое, без дублей
	remote.exports["bg/ru"] = makeVerses("bg", "ru", 1, 5)
	require.True(t, svc.SaveBookOffline(ctx, book, []string{"ru"}, nil))

	verses := svc.GetOfflineVerses(ctx, "bg", 1, "ru")
	assert.Len(t, verses, 5)

	books, err := svc.GetSavedBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 5, books[0].VersesCount)
}

func TestRemoveBook(t *testing.T) {
	book := library.Book{Code: "bg"}
	remote := &fakeRemote{
		chapters: map[string][]library.ChapterInfo{"bg": {{Chapter: 1}}},
		exports:  map[string][]library.Verse{"bg/ru": makeVerses("bg", "ru", 1, 2)},
	}
	storage := NewMemoryStorage()
	svc := NewOfflineService(remote, storage, testLogger())
	ctx := context.Background()

	require.True(t, svc.SaveBookOffline(ctx, book, []string{"ru"}, nil))
	require.True(t, svc.RemoveBook(ctx, "bg"))

	books, err := svc.GetSavedBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Empty(t, svc.GetOfflineVerses(ctx, "bg", 1, "ru"))
	assert.Empty(t, svc.GetOfflineChapters(ctx, "bg"))

	// Удаление отсутствующей книги идемпотентно
	assert.True(t, svc.RemoveBook(ctx, "bg"))
}

func TestGetOfflineVerses_AbsentBook(t *testing.T) {
	svc := NewOfflineService(&fakeRemote{}, NewMemoryStorage(), testLogger())
	ctx := context.Background()

	verses := svc.GetOfflineVerses(ctx, "missing", 1, "ru")
	assert.NotNil(t, verses)
	assert.Empty(t, verses)

	assert.Empty(t, svc.GetOfflineChapters(ctx, "missing"))
	assert.Equal(t, int64(0), svc.GetSavedBookSize(ctx, "missing"))
}

func TestSaveBookOffline_AbsentLanguageBucket(t *testing.T) {
	book := library.Book{Code: "bg"}
	remote := &fakeRemote{
		chapters: map[string][]library.ChapterInfo{"bg": {{Chapter: 1}}},
		exports:  map[string][]library.Verse{"bg/ru": makeVerses("bg", "ru", 1, 2)},
	}
	storage := NewMemoryStorage()
	svc := NewOfflineService(remote, storage, testLogger())
	ctx := context.Background()

	require.True(t, svc.SaveBookOffline(ctx, book, []string{"ru"}, nil))

	// Незапрошенный язык и отсутствующая глава - пустой результат, не ошибка
	assert.Empty(t, svc.GetOfflineVerses(ctx, "bg", 1, "en"))
	assert.Empty(t, svc.GetOfflineVerses(ctx, "bg", 99, "ru"))
}
