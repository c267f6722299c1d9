// Package debug writes diagnostic logs to $XINT_HOME/debug.log. The dashboard
// owns the terminal, so nothing is ever logged to stdout or stderr.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xint/pkg/config"
)

// FileName is the log file inside the xint home directory.
const FileName = "debug.log"

// Logger is a file-backed zap logger.
type Logger struct {
	base    *zap.Logger
	sugar   *zap.SugaredLogger
	logFile *os.File
}

// NewLogger opens path for appending and returns a debug-level logger on it.
func NewLogger(path string) (*Logger, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.DebugLevel,
	)
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	l := &Logger{base: base, sugar: base.Sugar(), logFile: logFile}
	l.sugar.Debug("=== Debug session started ===")
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	base := zap.NewNop()
	return &Logger{base: base, sugar: base.Sugar()}
}

// Log writes a printf-style debug line.
func (l *Logger) Log(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Zap exposes the structured logger for callers that attach fields.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// Close flushes and closes the log file.
func (l *Logger) Close() {
	if l.logFile == nil {
		return
	}
	l.sugar.Debug("=== Debug session ended ===")
	_ = l.base.Sync()
	_ = l.logFile.Close()
	l.logFile = nil
	l.base = zap.NewNop()
	l.sugar = l.base.Sugar()
}

var (
	mu     sync.RWMutex
	global = Nop()
)

// Init installs the global logger. When enabled is false, or the log file
// cannot be opened, logging is a no-op.
func Init(enabled bool) *Logger {
	l := Nop()
	if enabled {
		if opened, err := open(); err == nil {
			l = opened
		}
	}
	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

func open() (*Logger, error) {
	if err := config.EnsureXintDir(); err != nil {
		return nil, err
	}
	xintDir, err := config.GetXintDir()
	if err != nil {
		return nil, err
	}
	return NewLogger(filepath.Join(xintDir, FileName))
}

// Log writes to the global logger.
func Log(format string, args ...interface{}) {
	L().Log(format, args...)
}

// L returns the global logger.
func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
