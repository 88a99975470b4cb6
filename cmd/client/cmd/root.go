// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"vedamatch/cmd/client/cmd/types"
	"vedamatch/internal/app/client"
	"vedamatch/internal/app/client/config"
	"vedamatch/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
	languages string
)

var rootCmd = &cobra.Command{
	Use:   "vedamatch",
	Short: "VedaMatch - клиент ведической библиотеки",
	Long: `VedaMatch - клиентское приложение ведической библиотеки.

Каталог книг загружается с сервера, отдельные книги можно сохранить
целиком для чтения без сети. Уведомления сообщества складываются
в локальный журнал и доступны офлайн.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if languages != "" {
		cfg.Languages = languages
	}

	// Настраиваем логгер
	log = logger.New(effectiveEnv(cfg.Env, debug))

	// Создаем приложение. Нажатие на уведомление в CLI просто
	// печатает полезную нагрузку: диплинков у терминала нет.
	app, err = client.New(cfg, log, client.Options{
		OnNotificationAction: func(data map[string]any) {
			if len(data) > 0 {
				fmt.Printf("Данные уведомления: %v\n", data)
			}
		},
		OnBellShake: func() {
			fmt.Println("🔔 Новое уведомление")
		},
	})
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

// effectiveEnv: флаг --debug переключает логгер в режим local
// (подробный текстовый вывод) независимо от окружения.
func effectiveEnv(env string, debug bool) string {
	if debug {
		return config.EnvLocal
	}
	return env
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".vedamatch")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	// Загружаем конфигурацию через стандартный метод
	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "подробное логирование")
	rootCmd.PersistentFlags().Bool("json", false, "вывод списков в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера VedaMatch")
	rootCmd.PersistentFlags().StringVar(&languages, "languages", "", "языки загрузки книг, через запятую")

	// Флаг --json задает формат списков по умолчанию; явный --format важнее
	_ = viper.BindPFlag("output.json", rootCmd.PersistentFlags().Lookup("json"))

	// Команды будут добавлены в init() соответствующих файлов
}
