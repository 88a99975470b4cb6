// cmd/client/cmd/auth/token.go
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vedamatch/cmd/client/cmd/types"
	"vedamatch/internal/app/client"
)

var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Сохранить токен доступа",
	Long: `Сохраняет токен доступа к серверу VedaMatch.

Токен выдается при входе через мобильное приложение или портал
и подставляется клиентом в заголовок Authorization.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Сохранение токена ===")
		fmt.Println()

		// Токен не должен оставаться в истории терминала
		fmt.Print("Токен: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения токена: %w", err)
		}
		fmt.Println()

		token := strings.TrimSpace(string(raw))
		if token == "" {
			return fmt.Errorf("токен не может быть пустым")
		}

		if err := app.SaveToken(token); err != nil {
			return fmt.Errorf("ошибка сохранения токена: %w", err)
		}

		fmt.Println("✅ Токен сохранен")

		// Сразу проверяем, принимает ли сервер запросы
		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(); err != nil {
			fmt.Printf("⚠️  Предупреждение: сервер недоступен: %v\n", err)
			fmt.Println("Токен сохранен, проверка будет выполнена при первом запросе.")
		} else {
			fmt.Println("✓ Сервер доступен")
		}

		return nil
	},
}
