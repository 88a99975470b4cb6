package library

import (
	"fmt"

	"github.com/spf13/cobra"

	"vedamatch/cmd/client/cmd/types"
	"vedamatch/internal/app/client"
)

// LibraryCmd - родительская команда для операций с библиотекой
var LibraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Работа с библиотекой",
	Long:    `Каталог книг, офлайн-сохранение, чтение и поиск.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// formatSize переводит байты в человекочитаемый размер.
func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f МБ", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f КБ", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d Б", bytes)
	}
}
