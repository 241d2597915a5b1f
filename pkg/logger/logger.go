package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	Reset      = "\033[0m"
	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Cyan       = "\033[36m"
	White      = "\033[37m"
	Magenta    = "\033[35m"
	BoldBlue   = "\033[1;34m"
	BoldWhite  = "\033[1;37m"
	BoldYellow = "\033[1;33m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: Cyan,
	slog.LevelInfo:  Green,
	slog.LevelWarn:  Yellow,
	slog.LevelError: Red,
}

type RequestKey string

const (
	RequestIDKey RequestKey = "requestID"
)

// ColoredHandler renders one log line per record with ANSI colors, pulling the
// request_id attribute into its own bracketed lane.
type ColoredHandler struct {
	h   slog.Handler
	out io.Writer
}

func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &ColoredHandler{
		h:   slog.NewTextHandler(w, opts),
		out: w,
	}
}

func (h *ColoredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = White
	}

	var line strings.Builder
	line.WriteString(fmt.Sprintf("%s%s%s ", Magenta, r.Time.Format("15:04:05.000"), Reset))
	line.WriteString(fmt.Sprintf("%s%-6s%s ", levelColor, strings.ToUpper(r.Level.String()), Reset))

	var hasRequestID bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "request_id" && a.Value.Kind() == slog.KindString {
			line.WriteString(fmt.Sprintf("%s[%s]%s ", BoldBlue, a.Value.String(), Reset))
			hasRequestID = true
		}
		return true
	})

	line.WriteString(fmt.Sprintf("%s%s%s ", BoldWhite, r.Message, Reset))

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "request_id" && hasRequestID {
			return true
		}
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		line.WriteString(fmt.Sprintf("%s%s%s=%s ", Yellow, a.Key, Reset, val))
		return true
	})

	fmt.Fprintln(h.out, line.String())

	return nil
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ColoredHandler{
		h:   h.h.WithAttrs(attrs),
		out: h.out,
	}
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	return &ColoredHandler{
		h:   h.h.WithGroup(name),
		out: h.out,
	}
}

func Setup() *ColoredHandler {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}

	handler := NewColoredHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	return handler
}

func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
