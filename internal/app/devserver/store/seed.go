package store

import (
	"fmt"
	"time"

	"vedamatch/internal/domain/library"
)

// Seed создает хранилище с небольшим тестовым корпусом:
// Бхагавад-гита на двух языках, две главы.
func Seed() *Store {
	s := New()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	bg := library.Book{
		ID:            1,
		Code:          "bg",
		NameEn:        "Bhagavad-gita As It Is",
		NameRu:        "Бхагавад-гита как она есть",
		DescriptionEn: "The Song of God: dialogue between Krishna and Arjuna.",
		DescriptionRu: "Песнь Бога: диалог Кришны и Арджуны.",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	chapters := []library.ChapterInfo{
		{Canto: 0, Chapter: 1},
		{Canto: 0, Chapter: 2},
	}

	var verses []library.Verse
	id := 1
	add := func(chapter int, verse, language, transliteration, translation string) {
		reference := fmt.Sprintf("BG %s", verse)
		if language == "ru" {
			reference = fmt.Sprintf("БГ %s", verse)
		}
		verses = append(verses, library.Verse{
			ID:              id,
			BookCode:        bg.Code,
			Canto:           0,
			Chapter:         chapter,
			Verse:           verse,
			Language:        language,
			Transliteration: transliteration,
			Translation:     translation,
			VerseReference:  reference,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		id++
	}

	add(1, "1.1", "ru",
		"дхритараштра увача / дхарма-кшетре куру-кшетре",
		"Дхритараштра спросил: О Санджая, что стали делать мои сыновья и сыновья Панду, собравшись в месте паломничества Курукшетре?")
	add(1, "1.2", "ru",
		"санджая увача / дриштва ту пандаваникам",
		"Санджая сказал: Оглядев боевые порядки армии Пандавов, царь Дурьйодхана подошел к своему учителю.")
	add(2, "2.13", "ru",
		"дехино 'смин йатха дехе",
		"Воплотившаяся в теле душа постепенно меняет тело ребенка на тело юноши, а затем на тело старика.")
	add(2, "2.20", "ru",
		"на джайате мрийате ва кадачин",
		"Душа не рождается и не умирает. Она нерожденная, вечная, всегда существующая и изначальная.")

	add(1, "1.1", "en",
		"dhritarashtra uvacha / dharma-kshetre kuru-kshetre",
		"Dhritarashtra said: O Sanjaya, what did my sons and the sons of Pandu do, assembled at the place of pilgrimage Kurukshetra?")
	add(1, "1.2", "en",
		"sanjaya uvacha / drishtva tu pandavanikam",
		"Sanjaya said: Having looked over the army of the Pandavas, King Duryodhana approached his teacher.")
	add(2, "2.13", "en",
		"dehino 'smin yatha dehe",
		"The embodied soul continuously passes, in this body, from boyhood to youth to old age.")
	add(2, "2.20", "en",
		"na jayate mriyate va kadachin",
		"The soul is never born nor dies. It is unborn, eternal, ever-existing and primeval.")

	s.AddBook(bg, chapters, verses)
	return s
}
