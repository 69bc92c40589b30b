package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//ExitOnFatal is switched off by tests to observe Fatal
var ExitOnFatal = true

//Init replaces the global zap logger with a production one of the given level
func Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}

func Fatal(v ...interface{}) {
	zap.S().Error(v...)
	_ = zap.L().Sync()
	if ExitOnFatal {
		os.Exit(1)
	}
}

func WarnIfErr(description string, err error) {
	if err != nil {
		zap.L().Warn(description, zap.Error(err))
	}
}

func ErrIfErr(description string, err error) {
	if err != nil {
		zap.L().Error(description, zap.Error(err))
	}
}
