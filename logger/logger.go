// Package logger provides the prefixed, coloured loggers used by every
// component. Each component gets its own prefix, e.g. [SOLVER] or [AUTH].
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/sirupsen/logrus"
)

const timeLayout = "2006-01-02 15:04:05"

var ErrEmptyPrefix = errors.New("logger prefix is empty")

// Logger writes leveled messages under a fixed prefix.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger writing to w. The prefix is printed in the given
// terminal colour in front of every message.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{prefix: prefix, color: color})

	return &Logger{log: l}, nil
}

// SetLevel parses and sets the minimum level that is written.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.log.SetLevel(lvl)
	return nil
}

func (l *Logger) Debug(msg string) {
	l.log.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

// formatter renders "[PREFIX] [LEVEL] time message".
type formatter struct {
	prefix string
	color  string
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s[%s]%s %s[%s]%s %s %s\n",
		f.color, f.prefix, config.ColorReset,
		levelColor(e.Level), levelName(e.Level), config.LogColorReset,
		e.Time.Format(timeLayout), e.Message)
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.PanicLevel, logrus.FatalLevel:
		return "FATAL"
	default:
		return strings.ToUpper(l.String())
	}
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarningColor
	case logrus.InfoLevel:
		return config.LogInfoColor
	default:
		return config.LogDebugColor
	}
}
