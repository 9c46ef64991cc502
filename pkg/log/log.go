// Package log provides the logging interface shared by the emulator
// packages, along with a logrus backed implementation.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the CPU and the MMU.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text lines to stderr at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithOutput is the same as New, but writes to w and only emits
// entries at or above level.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}
