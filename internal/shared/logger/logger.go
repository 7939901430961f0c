package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"bugtrail/internal/shared/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
)

// Init builds the process-wide logger from config. Console output goes
// through tint; `format: json` switches to the slog JSON handler.
func Init(cfg *config.LoggerConfig) error {
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(parseLevel(cfg.Level))

	writer, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: atomicLevel,
		})
	} else {
		handler = tintHandler(writer, atomicLevel)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	return nil
}

// Get returns the logger, building a default console logger on first use if
// Init has not run (tests, early startup failures).
func Get() *slog.Logger {
	if Logger == nil {
		Logger = slog.New(tintHandler(os.Stdout, slog.LevelInfo))
		slog.SetDefault(Logger)
	}
	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(outputPath string) (io.Writer, error) {
	switch strings.ToLower(outputPath) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	}
}

func tintHandler(writer io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(writer, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(writer),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}
