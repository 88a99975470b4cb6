// cmd/client/cmd/notify/add.go
package notify

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vedamatch/internal/app/client"
	"vedamatch/internal/domain/notification"
)

var (
	addType string
	addBody string
	addData []string
)

var AddCmd = &cobra.Command{
	Use:   "add <заголовок>",
	Short: "Добавить уведомление в журнал",
	Long: `Кладет уведомление в локальный журнал. Основной поток уведомлений
приходит от push-доставки; команда дает журналу источник для отладки
панели и индикатора непрочитанных.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var data map[string]any
		if len(addData) > 0 {
			data = make(map[string]any, len(addData))
			for _, pair := range addData {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("неверный формат данных %q, ожидается ключ=значение", pair)
				}
				data[key] = value
			}
		}

		item := app.AddNotification(cmd.Context(), notification.Input{
			Type:  addType,
			Title: args[0],
			Body:  addBody,
			Data:  data,
		})

		fmt.Printf("✅ Уведомление добавлено: %s\n", item.ID)
		if badge := client.Badge(app.Notifications().UnreadCount()); badge != "" {
			fmt.Printf("Непрочитанных: %s\n", badge)
		}
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addType, "type", "t", notification.TypeNews, "тип уведомления")
	AddCmd.Flags().StringVarP(&addBody, "body", "b", "", "текст уведомления")
	AddCmd.Flags().StringSliceVarP(&addData, "data", "d", nil, "данные уведомления, ключ=значение")
}
