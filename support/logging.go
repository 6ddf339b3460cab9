package support

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
)

// ConfigureLogging installs the service logger as the zerolog global and returns it.
// Development gets a human readable console; everything else logs JSON.
func ConfigureLogging(config Config) *zerolog.Logger {
	logger := NewLogger(config, os.Stderr)
	log.Logger = logger

	return &logger
}

func NewLogger(config Config, out io.Writer) zerolog.Logger {
	writer := out
	if config.Environment == Development {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).
		Level(config.LogLevel).
		With().
		Timestamp().
		Str("service", ServiceName).
		Str("env", string(config.Environment)).
		Logger()
}

// AccessLogger builds the request log used by the HTTP middleware.
func AccessLogger(config Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if config.Environment == Development {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if config.Environment == Test {
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}
