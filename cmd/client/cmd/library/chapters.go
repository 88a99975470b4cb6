// cmd/client/cmd/library/chapters.go
package library

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ChaptersCmd = &cobra.Command{
	Use:   "chapters <code>",
	Short: "Список глав книги",
	Long: `Показывает структуру книги: песни и главы.

Для сохраненной книги структура читается из локального хранилища.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		code := args[0]

		chapters := app.Offline().GetOfflineChapters(cmd.Context(), code)
		source := "офлайн"
		if len(chapters) == 0 {
			chapters, err = app.GetChapters(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("ошибка получения глав: %w", err)
			}
			source = "сервер"
		}

		if len(chapters) == 0 {
			fmt.Printf("Книга %s не содержит глав\n", code)
			return nil
		}

		fmt.Printf("Глав: %d (источник: %s)\n\n", len(chapters), source)
		for _, ch := range chapters {
			if ch.Canto > 0 {
				fmt.Printf("  Песнь %d, глава %d\n", ch.Canto, ch.Chapter)
			} else {
				fmt.Printf("  Глава %d\n", ch.Chapter)
			}
		}

		return nil
	},
}
