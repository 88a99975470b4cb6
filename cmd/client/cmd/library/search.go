// cmd/client/cmd/library/search.go
package library

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var SearchCmd = &cobra.Command{
	Use:   "search <запрос>",
	Short: "Поиск по библиотеке",
	Long:  `Полнотекстовый поиск по стихам на сервере.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")

		verses, err := app.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		if len(verses) == 0 {
			fmt.Println("Ничего не найдено")
			return nil
		}

		fmt.Printf("Найдено стихов: %d\n\n", len(verses))
		for i, v := range verses {
			fmt.Printf("%d. %s %s (%s)\n", i+1, v.BookCode, v.Verse, v.Language)
			if v.Translation != "" {
				fmt.Printf("   %s\n", truncate(v.Translation, 120))
			}
		}

		return nil
	},
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}
