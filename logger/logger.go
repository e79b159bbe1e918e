package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Production gets JSON output, everything
// else a human readable text format.
func New(appEnv, level string) *logrus.Logger {
	log := logrus.New()
	if appEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL '%s', using 'info'", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)
	return log
}
