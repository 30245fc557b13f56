// Package logger is a small structured JSON logger. Components bind
// their identity once with With, so every line they write carries it
// without repeating it at each call site.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string onto a Level. Unknown values fall
// back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is one key-value pair on a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field    { return Field{Key: key, Value: value} }
func Int(key string, value int) Field   { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err renders an error under the "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration renders a duration in its string form.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Domain field helpers, so IDs land under stable keys everywhere.
func UserID(id string) Field         { return String("user_id", id) }
func MentorID(id string) Field       { return String("mentor_id", id) }
func MenteeID(id string) Field       { return String("mentee_id", id) }
func MatchRequestID(id string) Field { return String("match_request_id", id) }
func MentorshipID(id string) Field   { return String("mentorship_id", id) }
func Email(email string) Field       { return String("email", email) }
func Score(score int) Field          { return Int("score", score) }
func Component(name string) Field    { return String("component", name) }
func Operation(name string) Field    { return String("operation", name) }

// Options configures a root logger.
type Options struct {
	// Output receives one JSON object per line. Defaults to stdout.
	Output io.Writer

	// Level is the minimum severity emitted.
	Level Level

	// AddCaller records the file:line of the log call.
	AddCaller bool

	// CallerSkip adjusts the caller frame for wrapping helpers.
	CallerSkip int
}

// Logger writes structured JSON lines. Derived loggers share the
// parent's writer and mutex, so concurrent writes never interleave.
type Logger struct {
	mu         *sync.Mutex
	out        io.Writer
	level      Level
	addCaller  bool
	callerSkip int
	bound      []Field
}

// New creates a root logger.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		mu:         &sync.Mutex{},
		out:        out,
		level:      opts.Level,
		addCaller:  opts.AddCaller,
		callerSkip: opts.CallerSkip,
	}
}

// Default returns an info-level logger on stdout.
func Default() *Logger {
	return New(Options{Level: LevelInfo})
}

// With returns a logger that carries the given fields on every line.
func (l *Logger) With(fields ...Field) *Logger {
	clone := *l
	clone.bound = make([]Field, 0, len(l.bound)+len(fields))
	clone.bound = append(clone.bound, l.bound...)
	clone.bound = append(clone.bound, fields...)
	return &clone
}

func (l *Logger) Debug(msg string, fields ...Field) { l.write(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.write(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.write(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.write(LevelError, msg, fields) }

func (l *Logger) write(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := make(map[string]any, len(l.bound)+len(fields)+4)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.addCaller {
		if _, file, line, ok := runtime.Caller(2 + l.callerSkip); ok {
			entry["caller"] = fmt.Sprintf("%s:%d", file[strings.LastIndexByte(file, '/')+1:], line)
		}
	}
	for _, f := range l.bound {
		entry[f.Key] = f.Value
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		// A field value resisted marshalling; keep the line minimal.
		line = []byte(fmt.Sprintf(`{"ts":%q,"level":%q,"msg":%q}`, entry["ts"], level.String(), msg))
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(line)
}
