package library

import "time"

// SavedBookInfo - локальная метаданная запись о скачанной книге.
// Существует тогда и только тогда, когда для того же code сохранен OfflineBookData:
// обе записи пишутся и удаляются в одной транзакции хранилища.
type SavedBookInfo struct {
	Code          string    `json:"code"`
	NameRu        string    `json:"name_ru"`
	NameEn        string    `json:"name_en"`
	DescriptionRu string    `json:"description_ru,omitempty"`
	DescriptionEn string    `json:"description_en,omitempty"`
	SavedAt       time.Time `json:"savedAt"`
	SizeBytes     int64     `json:"sizeBytes"`
	ChaptersCount int       `json:"chaptersCount"`
	VersesCount   int       `json:"versesCount"`
}

// OfflineBookData - полное содержимое книги для офлайн-чтения.
// Собирается с нуля при каждом сохранении: повторное сохранение книги
// целиком заменяет прежнее содержимое, без инкрементального слияния.
type OfflineBookData struct {
	Book     Book                       `json:"book"`
	Chapters []ChapterInfo              `json:"chapters"`
	Verses   map[string]map[int][]Verse `json:"verses"`
}

// VersesFor возвращает стихи одной главы на одном языке.
// Отсутствие языка или главы - нормальный пустой результат, не ошибка.
func (d *OfflineBookData) VersesFor(language string, chapter int) []Verse {
	if d == nil {
		return nil
	}
	byChapter, ok := d.Verses[language]
	if !ok {
		return nil
	}
	return byChapter[chapter]
}
