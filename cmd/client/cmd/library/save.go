// cmd/client/cmd/library/save.go
package library

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var saveLanguages []string

var SaveCmd = &cobra.Command{
	Use:   "save <code>",
	Short: "Сохранить книгу офлайн",
	Long: `Скачивает книгу целиком и сохраняет в локальное хранилище.

Книга становится доступна для чтения без сети. Повторное сохранение
полностью заменяет локальную копию свежими данными.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		code := args[0]

		book, err := app.GetBookDetails(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("ошибка получения книги: %w", err)
		}

		languages := saveLanguages
		if len(languages) == 0 {
			languages = app.Config().LanguageList()
		}

		fmt.Printf("=== Сохранение: %s ===\n\n", book.Title("ru"))
		start := time.Now()

		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)

		saved := app.SaveBookOffline(cmd.Context(), *book, languages, func(progress int, status string) {
			line := fmt.Sprintf("[%3d%%] %s", progress, status)
			if progress == 100 {
				green.Println(line)
			} else {
				yellow.Println(line)
			}
		})
		if !saved {
			return fmt.Errorf("книга не была сохранена")
		}

		size := app.Offline().GetSavedBookSize(cmd.Context(), code)
		fmt.Println()
		fmt.Printf("✅ Книга сохранена за %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Размер: %s | Всего офлайн: %s\n",
			formatSize(size),
			formatSize(app.Offline().TotalOfflineSize(cmd.Context())))

		return nil
	},
}

func init() {
	SaveCmd.Flags().StringSliceVarP(&saveLanguages, "languages", "l", nil, "языки загрузки (по умолчанию из конфигурации)")
}
