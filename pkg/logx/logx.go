// Package logx provides structured, component-tagged logging for the
// Director and its engines.
package logx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelOrder = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Logger tags every line with a component name (e.g. "director",
// "engine:bmc") and a minimum level below which lines are suppressed.
type Logger struct {
	component string
	minLevel  Level
	out       *log.Logger
}

var (
	globalMinLevel Level = LevelInfo
	globalMu       sync.RWMutex
)

func init() { //nolint:gochecknoinits // mirrors the env-driven init the teacher repo uses
	initFromEnv()
}

func initFromEnv() {
	globalMu.Lock()
	defer globalMu.Unlock()

	switch strings.ToUpper(os.Getenv("VERICORE_LOG_LEVEL")) {
	case "DEBUG":
		globalMinLevel = LevelDebug
	case "WARN":
		globalMinLevel = LevelWarn
	case "ERROR":
		globalMinLevel = LevelError
	case "":
		// leave default
	default:
		globalMinLevel = LevelInfo
	}
}

// NewLogger creates a Logger tagged with component, writing to stderr.
func NewLogger(component string) *Logger {
	globalMu.RLock()
	min := globalMinLevel
	globalMu.RUnlock()

	return &Logger{
		component: component,
		minLevel:  min,
		out:       log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetMinLevel overrides this logger's minimum level, independent of the
// process-wide environment default.
func (l *Logger) SetMinLevel(level Level) {
	l.minLevel = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if levelOrder[level] < levelOrder[l.minLevel] {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("[%s] %s: %s", level, l.component, msg)
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Wrap attaches a contextual message to err, or returns nil unchanged.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(fmt.Sprintf(format, args...)+": %w", err)
}
