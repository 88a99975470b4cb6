// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"vedamatch/cmd/client/cmd/types"
	"vedamatch/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Удалить сохраненный токен",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.ClearToken(); err != nil {
			return fmt.Errorf("ошибка удаления токена: %w", err)
		}

		fmt.Println("✅ Токен удален. Сохраненные книги остаются доступны офлайн.")
		return nil
	},
}
