package elev

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"liftsim/src/types"
)

// InitLogger installs the default slog logger. Every record carries the run id so logs from
// several simulator runs appended to one file can be told apart.
func InitLogger(w io.Writer, level slog.Level) string {
	runID := uuid.New().String()

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	logger := slog.New(handler).With("run", runID)
	slog.SetDefault(logger)
	return runID
}

// FormatCall renders a hall call for log lines, e.g. "Up(3)" or "Down(3->0)".
func FormatCall(floor int, dir types.Direction, destination *int) string {
	name := dir.String()
	name = name[:1] + strings.ToLower(name[1:])
	if destination == nil {
		return fmt.Sprintf("%s(%d)", name, floor)
	}
	return fmt.Sprintf("%s(%d->%d)", name, floor, *destination)
}
