// Package logger builds the process-wide zap logger. JSON to stdout by
// default; when LOG_DIR is set the same events also go to a rotated file
// via Lumberjack, so no external log-rotate job is needed.
package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.SugaredLogger and installs it as the global default.
func New() *zap.SugaredLogger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		),
	}

	if dir := os.Getenv("LOG_DIR"); dir != "" {
		fileSink := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "api.log"),
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			zap.InfoLevel,
		))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	zap.ReplaceGlobals(z.Desugar())
	return z
}
