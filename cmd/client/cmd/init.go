// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"vedamatch/cmd/client/cmd/auth"
	"vedamatch/cmd/client/cmd/library"
	"vedamatch/cmd/client/cmd/notify"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент VedaMatch",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию для локальных данных
	2. Инициализирует офлайн-хранилище
	3. Проверяет соединение с сервером`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.IsInitialized() {
			fmt.Println("Клиент уже инициализирован.")
			return nil
		}

		fmt.Println("=== Инициализация VedaMatch ===")
		fmt.Println()

		fmt.Println("Создание структуры данных...")
		if err := app.Init(); err != nil {
			return fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}

		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(); err != nil {
			fmt.Printf("⚠️  Предупреждение: не удалось подключиться к серверу: %v\n", err)
			fmt.Println("Вы можете читать сохраненные книги офлайн, но каталог будет недоступен.")
		} else {
			fmt.Println("✓ Соединение с сервером установлено")
		}

		fmt.Println()
		fmt.Println("✅ Инициализация успешно завершена!")
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Сохраните токен доступа: vedamatch auth token")
		fmt.Println("2. Посмотрите каталог: vedamatch library list")
		fmt.Println("3. Сохраните книгу офлайн: vedamatch library save bg")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.TokenCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Команды библиотеки
	rootCmd.AddCommand(library.LibraryCmd)
	library.LibraryCmd.AddCommand(library.ListCmd)
	library.LibraryCmd.AddCommand(library.SaveCmd)
	library.LibraryCmd.AddCommand(library.RemoveCmd)
	library.LibraryCmd.AddCommand(library.ChaptersCmd)
	library.LibraryCmd.AddCommand(library.ReadCmd)
	library.LibraryCmd.AddCommand(library.SearchCmd)

	// Команды журнала уведомлений
	rootCmd.AddCommand(notify.NotifyCmd)
	notify.NotifyCmd.AddCommand(notify.ListCmd)
	notify.NotifyCmd.AddCommand(notify.AddCmd)
	notify.NotifyCmd.AddCommand(notify.ReadCmd)
	notify.NotifyCmd.AddCommand(notify.ClearCmd)
}
