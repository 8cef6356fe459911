package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// redactedKeys hold commit text typed by the user. Only their size is logged.
var redactedKeys = map[string]struct{}{
	"answer":  {},
	"message": {},
	"value":   {},
}

var levelLabels = map[slog.Level]func(format string, a ...interface{}) string{
	slog.LevelDebug: color.HiBlackString,
	slog.LevelInfo:  color.CyanString,
	slog.LevelWarn:  color.YellowString,
	slog.LevelError: color.RedString,
}

// PrettyHandler writes one colored line per record. It shares stderr with the
// prompts, so records stay on a single line.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	attrs  []string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{mu: &sync.Mutex{}, w: w}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{formatLevel(r.Level), r.Message}
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, a)
		return true
	})

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			parts = append(parts, color.HiBlackString("(%s:%d)", filepath.Base(frame.File), frame.Line))
		}
	}

	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		opts:   h.opts,
		mu:     h.mu,
		w:      h.w,
		prefix: h.prefix,
		attrs:  append([]string(nil), h.attrs...),
	}
}

func formatLevel(level slog.Level) string {
	label := fmt.Sprintf("%-7s", "["+level.String()+"]")
	if paint, ok := levelLabels[level]; ok {
		return paint("%s", label)
	}
	return label
}

// appendAttr renders a, flattening group values into dotted keys.
func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, groupPrefix, ga)
		}
		return parts
	}

	key := prefix + a.Key
	val := a.Value.String()
	if _, ok := redactedKeys[a.Key]; ok {
		val = fmt.Sprintf("<%d chars>", len([]rune(val)))
	} else if strings.ContainsAny(val, " \t\n\"") {
		val = strconv.Quote(val)
	}

	switch a.Key {
	case "error", "err", "stderr":
		return append(parts, color.RedString("%s=%s", key, val))
	case "state", "from", "to":
		return append(parts, color.MagentaString("%s=%s", key, val))
	case "types", "templates", "prompts", "status":
		return append(parts, color.GreenString("%s=%s", key, val))
	default:
		return append(parts, color.HiBlackString("%s=%s", key, val))
	}
}
