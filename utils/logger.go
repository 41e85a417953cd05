package utils

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger builds a logger from the config. When no log file is set, output
// goes to fallback; pass io.Discard while a full-screen UI owns the terminal.
// The returned closer must be called once the logger is no longer used.
func NewLogger(cfg Config, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] bad log level: %+v", cfg.LogLevel)
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		if fallback == nil {
			fallback = os.Stderr
		}
		log.SetOutput(fallback)
		return log, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", cfg.LogFile)
	}
	log.SetOutput(f)
	return log, f, nil
}
