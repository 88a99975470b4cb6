package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedamatch/internal/domain/library"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return storage
}

func testBook(code string) (*library.SavedBookInfo, *library.OfflineBookData) {
	info := &library.SavedBookInfo{
		Code:          code,
		NameRu:        "Бхагавад-гита",
		NameEn:        "Bhagavad-gita",
		SavedAt:       time.Now().Truncate(time.Second),
		SizeBytes:     2000,
		ChaptersCount: 1,
		VersesCount:   2,
	}
	data := &library.OfflineBookData{
		Book:     library.Book{Code: code, NameRu: "Бхагавад-гита"},
		Chapters: []library.ChapterInfo{{Canto: 0, Chapter: 1}},
		Verses: map[string]map[int][]library.Verse{
			"ru": {
				1: {
					{ID: 1, BookCode: code, Chapter: 1, Verse: "1.1", Language: "ru", Translation: "первый"},
					{ID: 2, BookCode: code, Chapter: 1, Verse: "1.2", Language: "ru", Translation: "второй"},
				},
			},
		},
	}
	return info, data
}

func TestSQLiteStorage_SaveAndGet(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	info, data := testBook("bg")
	require.NoError(t, storage.SaveBook(ctx, info, data))

	gotInfo, err := storage.GetSavedBook(ctx, "bg")
	require.NoError(t, err)
	require.NotNil(t, gotInfo)
	assert.Equal(t, info.Code, gotInfo.Code)
	assert.Equal(t, info.VersesCount, gotInfo.VersesCount)
	assert.Equal(t, info.SizeBytes, gotInfo.SizeBytes)

	gotData, err := storage.GetBookData(ctx, "bg")
	require.NoError(t, err)
	require.NotNil(t, gotData)
	assert.Equal(t, data.Chapters, gotData.Chapters)
	// Порядок стихов переживает сериализацию
	assert.Equal(t, data.Verses["ru"][1], gotData.Verses["ru"][1])

	count, err := storage.CountSavedBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_GetAbsent(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	info, err := storage.GetSavedBook(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, info)

	data, err := storage.GetBookData(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLiteStorage_Upsert(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	info, data := testBook("bg")
	require.NoError(t, storage.SaveBook(ctx, info, data))

	info.VersesCount = 5
	info.SizeBytes = 5000
	require.NoError(t, storage.SaveBook(ctx, info, data))

	got, err := storage.GetSavedBook(ctx, "bg")
	require.NoError(t, err)
	assert.Equal(t, 5, got.VersesCount)

	count, err := storage.CountSavedBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_Delete(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	info, data := testBook("bg")
	require.NoError(t, storage.SaveBook(ctx, info, data))
	require.NoError(t, storage.DeleteBook(ctx, "bg"))

	// Обе коллекции очищены: метаданные и содержимое живут парой
	gotInfo, err := storage.GetSavedBook(ctx, "bg")
	require.NoError(t, err)
	assert.Nil(t, gotInfo)

	gotData, err := storage.GetBookData(ctx, "bg")
	require.NoError(t, err)
	assert.Nil(t, gotData)

	// Повторное удаление не ошибка
	require.NoError(t, storage.DeleteBook(ctx, "bg"))
}

func TestSQLiteStorage_ListOrder(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	for _, code := range []string{"sb", "bg", "cc"} {
		info, data := testBook(code)
		require.NoError(t, storage.SaveBook(ctx, info, data))
	}

	books, err := storage.ListSavedBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "bg", books[0].Code)
	assert.Equal(t, "cc", books[1].Code)
	assert.Equal(t, "sb", books[2].Code)
}

func TestSQLiteStorage_KV(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	// Отсутствующий ключ - пустая строка без ошибки
	value, err := storage.GetValue(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, storage.SetValue(ctx, "k", "v1"))
	require.NoError(t, storage.SetValue(ctx, "k", "v2"))

	value, err = storage.GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	require.NoError(t, storage.DeleteValue(ctx, "k"))
	value, err = storage.GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, storage.DeleteValue(ctx, "k"))
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.db")
	ctx := context.Background()

	storage, err := NewSQLiteStorage(path)
	require.NoError(t, err)

	info, data := testBook("bg")
	require.NoError(t, storage.SaveBook(ctx, info, data))
	require.NoError(t, storage.SetValue(ctx, "k", "v"))
	require.NoError(t, storage.Close())

	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetSavedBook(ctx, "bg")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bg", got.Code)

	value, err := reopened.GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
