// Package logging builds the process logger from the -d/--debug count.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LevelForVerbosity maps the number of -d flags to a log level.
//
//	0  error
//	1  warn
//	2  info
//	3+ debug
func LevelForVerbosity(count int) logrus.Level {
	switch {
	case count <= 0:
		return logrus.ErrorLevel
	case count == 1:
		return logrus.WarnLevel
	case count == 2:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// New returns a logger writing to w at the level for verbosity.
func New(w io.Writer, verbosity int) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(LevelForVerbosity(verbosity))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
