// cmd/client/cmd/notify/clear.go
package notify

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить журнал уведомлений",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		store := app.Notifications()
		if store.Len() == 0 {
			fmt.Println("Журнал уже пуст")
			return nil
		}

		store.ClearAll(cmd.Context())
		fmt.Println("✅ Журнал уведомлений очищен")
		return nil
	},
}
