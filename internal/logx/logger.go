// Package logx builds the process-wide structured logger.
package logx

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a zap logger writing JSON to stdout and to a size-rotated
// file under dir. When the directory cannot be created the logger falls
// back to stdout only.
func New(level string, dir string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	sink := zapcore.AddSync(os.Stdout)
	if err := os.MkdirAll(dir, 0755); err == nil {
		fileLogger := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "pricefeed.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(fileLogger))
	}

	return zap.New(zapcore.NewCore(encoder, sink, lvl))
}
