package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/speakstore/internal/env"
	"github.com/ekisa-team/speakstore/internal/xfs"
)

type options struct {
	writer    io.Writer
	logFile   string
	level     slog.Level
	logToFile bool
	levelSet  bool
}

// Option configures the logger.
type Option func(*options)

// WithLogToFile enables or disables the rotating file sink.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the path of the rotating log file.
func WithLogFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// WithLevel overrides the environment's default level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
		o.levelSet = true
	}
}

// WithWriter replaces stderr as the console sink.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New builds a slog.Logger for the given environment.
// Development logs are colored text, production logs are JSON so CloudWatch can index them.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	o := &options{
		writer:  os.Stderr,
		logFile: filepath.Join("logs", "speakstore.log"),
		level:   slog.LevelDebug,
	}
	if environment.IsProduction() {
		o.level = slog.LevelInfo
	}
	for _, opt := range opts {
		opt(o)
	}

	console := consoleHandler(environment, o)
	if !o.logToFile {
		return slog.New(console)
	}

	file := &lumberjack.Logger{
		Filename:   xfs.ExpandTilde(o.logFile),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	return slog.New(&fanout{
		handlers: []slog.Handler{
			console,
			slog.NewJSONHandler(file, &slog.HandlerOptions{Level: o.level}),
		},
	})
}

func consoleHandler(environment env.Environment, o *options) slog.Handler {
	if environment.IsProduction() {
		return slog.NewJSONHandler(o.writer, &slog.HandlerOptions{Level: o.level})
	}

	return tint.NewHandler(o.writer, &tint.Options{
		Level:      o.level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(o.writer),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
