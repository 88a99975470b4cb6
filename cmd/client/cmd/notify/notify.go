package notify

import (
	"fmt"

	"github.com/spf13/cobra"

	"vedamatch/cmd/client/cmd/types"
	"vedamatch/internal/app/client"
)

// NotifyCmd - родительская команда журнала уведомлений
var NotifyCmd = &cobra.Command{
	Use:     "notify",
	Aliases: []string{"notifications"},
	Short:   "Журнал уведомлений",
	Long:    `Просмотр и управление локальным журналом уведомлений.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
