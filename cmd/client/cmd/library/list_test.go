package library

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatCmd(t *testing.T, explicit string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "list"}
	cmd.Flags().String("format", "simple", "")
	if explicit != "" {
		require.NoError(t, cmd.Flags().Set("format", explicit))
	}
	return cmd
}

func TestEffectiveFormat(t *testing.T) {
	t.Cleanup(func() { viper.Set("output.json", false) })

	viper.Set("output.json", false)
	assert.Equal(t, "simple", effectiveFormat(newFormatCmd(t, ""), "simple"))

	// --json задает формат по умолчанию
	viper.Set("output.json", true)
	assert.Equal(t, "json", effectiveFormat(newFormatCmd(t, ""), "simple"))

	// Явный --format важнее глобального --json
	assert.Equal(t, "table", effectiveFormat(newFormatCmd(t, "table"), "table"))
}
