// Package logger configures the process-wide zap logger. The cue and
// tracklist packages are pure and never log; everything with side
// effects (scanner, catalog, commands) goes through here.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	global *zap.Logger = zap.NewNop()
	once   sync.Once
)

// Config controls destination and verbosity.
type Config struct {
	Level      string // debug, info, warn or error
	OutputPath string // when set, also log to this file with rotation
}

// Init builds the global logger. The first call wins; later calls
// are ignored so tests can install their own logger up front.
func Init(cfg Config) {
	once.Do(func() {
		level := zapcore.InfoLevel
		if err := level.Set(cfg.Level); err != nil {
			level = zapcore.InfoLevel
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.RFC3339TimeEncoder

		cores := []zapcore.Core{
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), level),
		}
		if cfg.OutputPath != "" {
			sink := &lumberjack.Logger{
				Filename:   cfg.OutputPath,
				MaxSize:    50, // MB
				MaxBackups: 3,
				MaxAge:     30, // days
			}
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level))
		}

		global = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	})
}

// L returns the global logger. Before Init it is a nop logger.
func L() *zap.Logger {
	return global
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	_ = global.Sync()
}
