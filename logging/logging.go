// Package logging provides line-oriented console logging for simulation
// runs: LEVEL TIMESTAMP [component] message key=value ...
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vinayprograms/simkit/errors"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelPriority[level]; !ok {
		return "", errors.InvalidInput(fmt.Sprintf("unknown log level %q", s))
	}
	return level, nil
}

// Logger writes one line per entry and is safe for concurrent use. Loggers
// derived with WithComponent or WithTraceID share the parent's lock but take
// a snapshot of its level and output.
type Logger struct {
	mu        *sync.Mutex
	output    io.Writer
	minLevel  Level
	component string
	traceID   string
}

// New creates a Logger writing INFO and above to stdout.
func New() *Logger {
	return &Logger{
		mu:       &sync.Mutex{},
		output:   os.Stdout,
		minLevel: LevelInfo,
	}
}

// WithComponent returns a new logger with the given component name.
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *l
	c.component = component
	return &c
}

// WithTraceID returns a new logger that tags every line with trace=<id>.
func (l *Logger) WithTraceID(traceID string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *l
	c.traceID = traceID
	return &c
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetOutput sets the output writer (default: stdout).
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.log(LevelError, msg, fields...)
}

// formatFields renders fields as key=value pairs sorted by key.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " " + strings.Join(parts, " ")
}

func (l *Logger) log(level Level, msg string, fields ...map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if levelPriority[level] < levelPriority[l.minLevel] {
		return
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	var fieldStr string
	if len(fields) > 0 && fields[0] != nil {
		fieldStr = formatFields(fields[0])
	}
	if l.traceID != "" {
		fieldStr += " trace=" + l.traceID
	}

	var line string
	if l.component != "" {
		line = fmt.Sprintf("%-5s %s [%s] %s%s\n", level, timestamp, l.component, msg, fieldStr)
	} else {
		line = fmt.Sprintf("%-5s %s %s%s\n", level, timestamp, msg, fieldStr)
	}

	l.output.Write([]byte(line))
}

// --- Simulation events ---

// ConfigLoaded logs where the configuration came from.
func (l *Logger) ConfigLoaded(path string) {
	if path == "" {
		path = "defaults"
	}
	l.Info("config_loaded", map[string]interface{}{
		"path": path,
	})
}

// GroupRoster logs the size of a group at setup.
func (l *Logger) GroupRoster(group string, count int) {
	l.Debug("group_roster", map[string]interface{}{
		"group": group,
		"count": count,
	})
}

// Shortfall logs an agent running short of a good.
func (l *Logger) Shortfall(short *errors.NotEnoughGoods) {
	if short == nil {
		return
	}
	l.Warn("not_enough_goods", map[string]interface{}{
		"agent":   short.Agent,
		"good":    short.Good,
		"missing": errors.FormatAmount(short.AmountMissing),
	})
}

// Failure logs err with whatever context its chain carries: code,
// category, metadata, agent, round and the root cause.
func (l *Logger) Failure(msg string, err error) {
	if err == nil {
		return
	}
	fields := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.Code(err); code != "" {
		for k, v := range errors.GetMetadata(err) {
			fields[k] = v
		}
		fields["code"] = code
		fields["category"] = errors.Category(err)
	}
	var simErr *errors.Error
	if errors.As(err, &simErr) {
		if simErr.Agent() != "" {
			fields["agent"] = simErr.Agent()
		}
		if simErr.Round() != 0 {
			fields["round"] = simErr.Round()
		}
	}
	if root := errors.Cause(err); root != err {
		fields["cause"] = root.Error()
	}
	l.Error(msg, fields)
}
