package library

import "time"

// Book - том писания из каталога библиотеки.
// Код книги (code) - естественный ключ, используется локально вместо id.
type Book struct {
	ID            int       `json:"id"`
	Code          string    `json:"code"`
	NameEn        string    `json:"name_en"`
	NameRu        string    `json:"name_ru"`
	DescriptionEn string    `json:"description_en,omitempty"`
	DescriptionRu string    `json:"description_ru,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ChapterInfo - координата главы внутри книги.
// Canto равен нулю для книг без песен.
type ChapterInfo struct {
	Canto   int `json:"canto"`
	Chapter int `json:"chapter"`
}

// Verse - один стих: оригинал, транслитерация, перевод и комментарий.
// Стих неизменяем и принадлежит ровно одной тройке (book_code, language, chapter).
type Verse struct {
	ID              int       `json:"id"`
	BookCode        string    `json:"book_code"`
	Canto           int       `json:"canto"`
	Chapter         int       `json:"chapter"`
	Verse           string    `json:"verse"`
	Language        string    `json:"language"`
	Devanagari      string    `json:"devanagari,omitempty"`
	Transliteration string    `json:"transliteration,omitempty"`
	Synonyms        string    `json:"synonyms,omitempty"`
	Translation     string    `json:"translation,omitempty"`
	Purport         string    `json:"purport,omitempty"`
	SourceURL       string    `json:"source_url,omitempty"`
	VerseReference  string    `json:"verse_reference,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Title возвращает название книги для указанного языка.
func (b *Book) Title(language string) string {
	if language == "en" && b.NameEn != "" {
		return b.NameEn
	}
	if b.NameRu != "" {
		return b.NameRu
	}
	return b.NameEn
}
