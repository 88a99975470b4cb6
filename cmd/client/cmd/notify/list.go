// cmd/client/cmd/notify/list.go
package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vedamatch/internal/app/client"
)

var (
	listFormat string
	unreadOnly bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список уведомлений",
	Long:  `Журнал уведомлений от новых к старым.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		store := app.Notifications()
		items := store.List()

		if effectiveFormat(cmd, listFormat) == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		unread := store.UnreadCount()
		badge := client.Badge(unread)
		if badge == "" {
			fmt.Printf("Уведомлений: %d, непрочитанных нет\n\n", len(items))
		} else {
			fmt.Printf("Уведомлений: %d, непрочитанных: %s\n\n", len(items), badge)
		}

		if len(items) == 0 {
			fmt.Println("Журнал пуст")
			return nil
		}

		bold := color.New(color.Bold)
		shown := 0
		for _, item := range items {
			if unreadOnly && item.IsRead {
				continue
			}
			shown++

			mark := " "
			if !item.IsRead {
				mark = "●"
			}

			received := time.UnixMilli(item.ReceivedAt).Format("2006-01-02 15:04")
			bold.Printf("%s %s\n", mark, item.Title)
			if item.Body != "" {
				fmt.Printf("  %s\n", item.Body)
			}
			fmt.Printf("  %s | %s | id: %s\n\n", received, item.Type, item.ID)
		}

		if unreadOnly && shown == 0 {
			fmt.Println("Непрочитанных уведомлений нет")
		}

		return nil
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

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, json)")
	ListCmd.Flags().BoolVarP(&unreadOnly, "unread", "u", false, "только непрочитанные")
}
