// Package store - in-memory хранилище dev-сервера библиотеки.
// Наполняется один раз при старте и дальше только читается.
package store

import (
	"strconv"
	"strings"

	"vedamatch/internal/domain/library"
)

type Store struct {
	books    []library.Book
	chapters map[string][]library.ChapterInfo
	// Стихи книги в каноническом порядке: язык, песнь, глава, стих.
	verses map[string][]library.Verse
}

func New() *Store {
	return &Store{
		chapters: make(map[string][]library.ChapterInfo),
		verses:   make(map[string][]library.Verse),
	}
}

// AddBook добавляет книгу вместе с ее главами и стихами.
func (s *Store) AddBook(book library.Book, chapters []library.ChapterInfo, verses []library.Verse) {
	s.books = append(s.books, book)
	s.chapters[book.Code] = chapters
	s.verses[book.Code] = verses
}

// Books возвращает каталог целиком.
func (s *Store) Books() []library.Book {
	books := make([]library.Book, len(s.books))
	copy(books, s.books)
	return books
}

// FindBook ищет книгу по числовому id или по code.
func (s *Store) FindBook(idOrCode string) (*library.Book, bool) {
	id, byID := 0, false
	if parsed, err := strconv.Atoi(idOrCode); err == nil {
		id, byID = parsed, true
	}

	for i := range s.books {
		if s.books[i].Code == idOrCode || (byID && s.books[i].ID == id) {
			book := s.books[i]
			return &book, true
		}
	}
	return nil, false
}

// Chapters возвращает структуру книги; nil для неизвестного кода.
func (s *Store) Chapters(code string) []library.ChapterInfo {
	return s.chapters[code]
}

// Verses возвращает стихи одной главы с необязательными фильтрами
// по песни и языку.
func (s *Store) Verses(code string, chapter, canto int, language string) []library.Verse {
	result := make([]library.Verse, 0)
	for _, v := range s.verses[code] {
		if v.Chapter != chapter {
			continue
		}
		if canto > 0 && v.Canto != canto {
			continue
		}
		if language != "" && v.Language != language {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Export возвращает все стихи книги, опционально отфильтрованные по языку.
func (s *Store) Export(code, language string) []library.Verse {
	result := make([]library.Verse, 0)
	for _, v := range s.verses[code] {
		if language != "" && v.Language != language {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Search ищет подстроку запроса в переводе, транслитерации и ссылке
// стиха, без учета регистра, по всем книгам.
func (s *Store) Search(query string) []library.Verse {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]library.Verse, 0)
	if query == "" {
		return result
	}

	for _, book := range s.books {
		for _, v := range s.verses[book.Code] {
			if strings.Contains(strings.ToLower(v.Translation), query) ||
				strings.Contains(strings.ToLower(v.Transliteration), query) ||
				strings.Contains(strings.ToLower(v.VerseReference), query) {
				result = append(result, v)
			}
		}
	}
	return result
}
