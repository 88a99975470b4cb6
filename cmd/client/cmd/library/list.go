// cmd/client/cmd/library/list.go
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vedamatch/internal/app/client"
)

var (
	listFormat  string
	offlineOnly bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Каталог книг",
	Long: `Список книг библиотеки с отметками о сохраненных офлайн.

При недоступном сервере показываются только сохраненные книги.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var catalog *client.Catalog
		if offlineOnly {
			catalog, err = app.GetOfflineCatalog(cmd.Context())
		} else {
			catalog, err = app.GetCatalog(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("ошибка получения каталога: %w", err)
		}

		switch effectiveFormat(cmd, listFormat) {
		case "json":
			return printCatalogJSON(catalog)
		case "table":
			return printCatalogTable(catalog)
		default:
			return printCatalogSimple(catalog)
		}
	},
}

// effectiveFormat учитывает глобальный флаг --json: он задает формат
// по умолчанию, явный --format важнее.
func effectiveFormat(cmd *cobra.Command, format string) string {
	if !cmd.Flags().Changed("format") && viper.GetBool("output.json") {
		return "json"
	}
	return format
}

func savedCodes(catalog *client.Catalog) map[string]int64 {
	saved := make(map[string]int64, len(catalog.Saved))
	for _, s := range catalog.Saved {
		saved[s.Code] = s.SizeBytes
	}
	return saved
}

func printCatalogSimple(catalog *client.Catalog) error {
	if catalog.OfflineOnly {
		fmt.Println("⚠️  Сервер недоступен, показаны только сохраненные книги")
		fmt.Println()

		if len(catalog.Saved) == 0 {
			fmt.Println("Сохраненных книг нет")
			return nil
		}

		for i, s := range catalog.Saved {
			fmt.Printf("%d. %s (%s)\n", i+1, s.NameRu, s.Code)
			fmt.Printf("   Глав: %d | Стихов: %d | Размер: %s\n",
				s.ChaptersCount, s.VersesCount, formatSize(s.SizeBytes))
		}
		return nil
	}

	if len(catalog.Books) == 0 {
		fmt.Println("Каталог пуст")
		return nil
	}

	saved := savedCodes(catalog)
	fmt.Printf("Книг в каталоге: %d\n\n", len(catalog.Books))

	for i, book := range catalog.Books {
		mark := " "
		if _, ok := saved[book.Code]; ok {
			mark = "⬇"
		}
		fmt.Printf("%d. [%s] %s (%s)\n", i+1, mark, book.Title("ru"), book.Code)
	}

	fmt.Println()
	fmt.Println("⬇ - книга сохранена офлайн")
	return nil
}

func printCatalogTable(catalog *client.Catalog) error {
	saved := savedCodes(catalog)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Код\tНазвание\tОфлайн\tРазмер\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	if catalog.OfflineOnly {
		for _, s := range catalog.Saved {
			fmt.Fprintf(w, "%s\t%s\tда\t%s\t\n", s.Code, s.NameRu, formatSize(s.SizeBytes))
		}
	} else {
		for _, book := range catalog.Books {
			status := "-"
			size := "-"
			if bytes, ok := saved[book.Code]; ok {
				status = "да"
				size = formatSize(bytes)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", book.Code, book.Title("ru"), status, size)
		}
	}

	return w.Flush()
}

func printCatalogJSON(catalog *client.Catalog) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(catalog)
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
	ListCmd.Flags().BoolVar(&offlineOnly, "offline", false, "только сохраненные книги, без запроса к серверу")
}
