package log

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Handler prints human-friendly coloured log lines. A "module" attribute,
// when present, is shown between the level and the message.
type Handler struct {
	level  slog.Level
	module string
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func NewHandler(opts *slog.HandlerOptions) *Handler {
	h := &Handler{level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	for _, a := range attrs {
		if a.Key == "module" {
			nh.module = a.Value.String()
		}
	}
	return &nh
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = colorize(darkGray, level)
	case slog.LevelInfo:
		level = colorize(cyan, level)
	case slog.LevelWarn:
		level = colorize(lightYellow, level)
	case slog.LevelError:
		level = colorize(lightRed, level)
	}

	module := h.module
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "module" {
			module = a.Value.String()
		}
		return true
	})

	fmt.Print(colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	fmt.Print(level)
	if module != "" {
		fmt.Print(colorize(lightGray, fmt.Sprintf("[%s] ", module)))
	}
	fmt.Println(r.Message)
	return nil
}
