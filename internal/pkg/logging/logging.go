package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  *logrus.Logger
)

// L returns the shared application logger. The first call configures it
// from LOG_LEVEL and LOG_FORMAT (text or json, json by default outside
// development).
func L() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)

		format := strings.ToLower(os.Getenv("LOG_FORMAT"))
		if format == "" && os.Getenv("ENVIRONMENT") != "development" {
			format = "json"
		}
		if format == "json" {
			log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
		} else {
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	})
	return log
}
