// cmd/client/cmd/notify/read.go
package notify

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readAll bool

var ReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Пометить уведомление прочитанным",
	Long:  `Помечает уведомление прочитанным по id, либо все сразу с флагом --all.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		store := app.Notifications()

		if readAll {
			store.MarkAllAsRead(cmd.Context())
			fmt.Println("✅ Все уведомления прочитаны")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("укажите id уведомления или флаг --all")
		}

		store.MarkAsRead(cmd.Context(), args[0])
		fmt.Printf("Непрочитанных: %d\n", store.UnreadCount())
		return nil
	},
}

func init() {
	ReadCmd.Flags().BoolVarP(&readAll, "all", "a", false, "пометить все уведомления")
}
