package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents severity.
type LogLevel = logrus.Level

const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

var baseLogger = newBaseLogger(os.Stderr)

func newBaseLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(LevelInfo)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	return l
}

// SetLogLevel parses and sets global log level. Unknown names leave the level unchanged.
func SetLogLevel(s string) {
	l, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return
	}
	baseLogger.SetLevel(l)
}

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return baseLogger.GetLevel() }

// SetOutput redirects log output (tests capture it into a buffer).
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l LogLevel, format string, args ...interface{}) {
	if !baseLogger.IsLevelEnabled(l) {
		return
	}
	// Without args the input is a finished message; formatting it again would turn
	// literal % characters into %!x(MISSING) artifacts.
	if len(args) == 0 {
		baseLogger.Log(l, format)
		return
	}
	baseLogger.Logf(l, format, args...)
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// Info logs a finished message verbatim at info level.
func Info(msg string) {
	if baseLogger.IsLevelEnabled(LevelInfo) {
		baseLogger.Log(LevelInfo, msg)
	}
}

// WithField returns an entry carrying one structured field, for call sites that log
// several lines about the same scenario or file.
func WithField(key string, value interface{}) *logrus.Entry {
	return baseLogger.WithField(key, value)
}

// Timing helper for phases.
func TimeTrack(start time.Time, label string) {
	dur := time.Since(start)
	Debugf("%s took %s", label, dur)
}
