package library

import (
	lib "vedamatch/internal/domain/library"
)

type booksOutput struct {
	Body []lib.Book
}

type bookInput struct {
	IDOrCode string `path:"idOrCode" doc:"Числовой id или код книги"`
}

type bookOutput struct {
	Body lib.Book
}

type chaptersInput struct {
	Code string `path:"code" doc:"Код книги"`
}

type chaptersOutput struct {
	Body []lib.ChapterInfo
}

type versesInput struct {
	BookCode string `query:"bookCode" required:"true" doc:"Код книги"`
	Chapter  int    `query:"chapter" required:"true" doc:"Номер главы"`
	Canto    int    `query:"canto" required:"false" doc:"Номер песни, 0 - без фильтра"`
	Language string `query:"language" required:"false" doc:"Язык, пусто - все языки"`
}

type versesOutput struct {
	Body []lib.Verse
}

type searchInput struct {
	Query string `query:"q" required:"true" doc:"Поисковый запрос"`
}

type exportInput struct {
	Code     string `path:"code" doc:"Код книги"`
	Language string `query:"language" required:"false" doc:"Язык, пусто - все языки"`
}
