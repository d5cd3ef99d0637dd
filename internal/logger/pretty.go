// internal/logger/pretty.go
package logger

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where the application log goes. The terminal belongs to the
// dashboard, so output is always a rotated file.
type Config struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	Debug      bool
}

// PrettyEncoder creates a readable line encoder for the log file
func PrettyEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewConsoleEncoder(config)
}

// customLevelEncoder formats log levels as bracketed tags
func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("[%s]", level.CapitalString()))
}

// customTimeEncoder formats time in a readable way
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05"))
}

// New creates the application logger backed by a lumberjack rotating file.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("log file path is required")
	}

	path, err := filepath.Abs(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("resolve log file path: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(PrettyEncoder(), zapcore.AddSync(rotator), level)
	return zap.New(core), nil
}
