// cmd/client/cmd/library/read.go
package library

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vedamatch/internal/domain/library"
)

var (
	readChapter  int
	readCanto    int
	readLanguage string
	readFull     bool
	readOnline   bool
)

var ReadCmd = &cobra.Command{
	Use:   "read <code>",
	Short: "Читать главу книги",
	Long: `Выводит стихи главы. Сохраненная книга читается из локального
хранилища, иначе стихи запрашиваются с сервера.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		code := args[0]

		var verses []library.Verse
		if !readOnline && app.Offline().IsBookSaved(cmd.Context(), code) {
			verses = app.Offline().GetOfflineVerses(cmd.Context(), code, readChapter, readLanguage)
		} else {
			verses, err = app.GetVerses(cmd.Context(), code, readChapter, readCanto, readLanguage)
			if err != nil {
				return fmt.Errorf("ошибка получения стихов: %w", err)
			}
		}

		if len(verses) == 0 {
			fmt.Printf("Стихи не найдены: %s, глава %d (%s)\n", code, readChapter, readLanguage)
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		for _, v := range verses {
			bold.Printf("%s %s\n", code, v.Verse)
			if v.Devanagari != "" {
				fmt.Println(v.Devanagari)
			}
			if v.Transliteration != "" {
				faint.Println(v.Transliteration)
			}
			if v.Translation != "" {
				fmt.Println(v.Translation)
			}
			if readFull && v.Purport != "" {
				fmt.Println()
				fmt.Println(v.Purport)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	ReadCmd.Flags().IntVarP(&readChapter, "chapter", "c", 1, "номер главы")
	ReadCmd.Flags().IntVar(&readCanto, "canto", 0, "номер песни (для книг с песнями)")
	ReadCmd.Flags().StringVarP(&readLanguage, "language", "l", "ru", "язык текста")
	ReadCmd.Flags().BoolVar(&readFull, "full", false, "показывать комментарии")
	ReadCmd.Flags().BoolVar(&readOnline, "online", false, "читать с сервера, игнорируя локальную копию")
}
