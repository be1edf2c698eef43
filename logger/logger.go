package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init sets the log level and, when file is not empty, tees every entry into
// that file next to stderr.
func Init(level, file string) error {
	if len(level) == 0 {
		level = logrus.InfoLevel.String()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetLevel(lvl)
	if len(file) == 0 {
		log.SetOutput(os.Stderr)
		return nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", file)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}

// SetOutput redirects all entries, used by tests to capture output.
func SetOutput(out io.Writer) {
	log.SetOutput(out)
}

func entry(action string, data interface{}) *logrus.Entry {
	e := log.WithField("action", action)
	if data != nil {
		e = e.WithField("data", data)
	}
	return e
}

func Debug(action string, data interface{}) {
	entry(action, data).Debug()
}

func Info(action string, data interface{}) {
	entry(action, data).Info()
}

func Warn(action string, data interface{}) {
	entry(action, data).Warn()
}

func Error(action string, data interface{}, err error) {
	e := entry(action, data)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error()
}
