package relay

import (
	"go.uber.org/zap"
)

var Log *zap.Logger = initLog()

func initLog() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	return logger
}

// SetLogger replaces the package logger.
func SetLogger(logger *zap.Logger) {
	if logger != nil {
		Log = logger
	}
}
