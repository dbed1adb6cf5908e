package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op until Initialize runs so
// packages can log safely from tests and early startup.
var Logger = zap.NewNop().Sugar()

// Output formats accepted by Initialize
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Initialize replaces Logger with one writing to stderr
func Initialize(level, format string) error {
	return InitializeTo(os.Stderr, level, format)
}

// InitializeTo replaces Logger with one writing to w.
// The TUI uses this to keep log lines off the alternate screen.
func InitializeTo(w io.Writer, level, format string) error {
	l, err := New(w, level, format)
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// New builds a sugared logger without touching the global one
func New(w io.Writer, level, format string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "", FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.ConsoleSeparator = " "
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, errors.Newf("invalid log format %q (expected %s or %s)", format, FormatConsole, FormatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core).Sugar(), nil
}

// ComponentLogger returns a named child of the global logger
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Sync flushes buffered log entries
func Sync() {
	_ = Logger.Sync()
}
