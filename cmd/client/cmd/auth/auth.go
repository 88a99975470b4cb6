package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для операций с токеном доступа
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление токеном доступа",
	Long:  `Сохранение и удаление токена доступа к серверу VedaMatch.`,
}
