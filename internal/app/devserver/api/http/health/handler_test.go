package health

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHealthCheck(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(log, nil)

	out, err := h.healthCheck(context.Background(), &Input{})

	require.NoError(t, err)
	assert.Equal(t, "OK", out.Body.Status)
}
