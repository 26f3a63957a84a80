// Package stdlogger adapts the global zerolog logger to printf style
// logger interfaces such as the one gorm writes to.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes printf style messages to the global zerolog logger.
type Logger struct {
	level     zerolog.Level
	component string
}

// New returns a Logger whose Printf logs at info level.
func New() *Logger {
	return NewWithLevel(zerolog.InfoLevel, "")
}

// NewWithLevel returns a Logger whose Printf logs at level.
// A non empty component is added to every message.
func NewWithLevel(level zerolog.Level, component string) *Logger {
	return &Logger{level: level, component: component}
}

// Printf implements gorm.io/gorm/logger.Writer.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.msgf(log.WithLevel(l.level), format, args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.msgf(log.Debug(), format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.msgf(log.Info(), format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.msgf(log.Warn(), format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.msgf(log.Error(), format, args...)
}

func (l *Logger) msgf(event *zerolog.Event, format string, args ...interface{}) {
	if event == nil {
		return
	}

	if l.component != "" {
		event = event.Str("component", l.component)
	}

	// gorm puts the caller and the statement on separate lines
	event.Msgf(strings.ReplaceAll(format, "\n", " "), args...)
}
