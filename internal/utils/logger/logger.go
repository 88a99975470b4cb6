package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"vedamatch/internal/app/client/config"
)

// New создает логгер в зависимости от окружения:
// local - человекочитаемый вывод с уровнем Debug,
// dev   - JSON с уровнем Debug,
// prod  - JSON с уровнем Info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stderr, slog.LevelDebug))
}

// prettyHandler - компактный цветной обработчик для локальной разработки.
type prettyHandler struct {
	out   *os.File
	level slog.Level
	attrs []slog.Attr
}

func newPrettyHandler(out *os.File, level slog.Level) *prettyHandler {
	return &prettyHandler{out: out, level: level}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()
	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05.000"))
	b.WriteString(" ")
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		b.WriteString(" ")
		b.WriteString(color.CyanString(a.Key))
		b.WriteString("=")
		b.WriteString(fmt.Sprintf("%v", a.Value.Any()))
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &prettyHandler{out: h.out, level: h.level, attrs: merged}
}

func (h *prettyHandler) WithGroup(_ string) slog.Handler {
	return h
}
