// cmd/client/cmd/library/remove.go
package library

import (
	"fmt"

	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <code>",
	Short: "Удалить сохраненную книгу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		code := args[0]

		if !app.Offline().IsBookSaved(cmd.Context(), code) {
			fmt.Printf("Книга %s не сохранена офлайн\n", code)
			return nil
		}

		if !app.Offline().RemoveBook(cmd.Context(), code) {
			return fmt.Errorf("ошибка удаления книги %s", code)
		}

		fmt.Printf("✅ Книга %s удалена из офлайн-хранилища\n", code)
		return nil
	},
}
