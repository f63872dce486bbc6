// Package logging provides the bracket-tagged diagnostic lines used across
// the cards backend.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level orders diagnostic severities.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// ParseLevel maps a config string to a Level. Unknown values yield LevelInfo.
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

// Logger is what components log through. Resolvers take one so they stay
// free of global state. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
}

var levelColors = map[zapcore.Level]func(a ...any) string{
	zapcore.DebugLevel: color.New(color.FgHiBlack).SprintFunc(),
	zapcore.InfoLevel:  color.New(color.FgCyan).SprintFunc(),
	zapcore.WarnLevel:  color.New(color.FgYellow).SprintFunc(),
	zapcore.ErrorLevel: color.New(color.FgRed, color.Bold).SprintFunc(),
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if paint, ok := levelColors[l]; ok {
		enc.AppendString(paint(l.CapitalString()))
		return
	}
	enc.AppendString(l.CapitalString())
}

func encodeName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + name + "]")
}

// New creates a logger writing "LEVEL [tag] message" lines to out. A nil
// writer means stderr; an empty tag drops the bracket.
func New(out io.Writer, tag string, level Level) *zap.SugaredLogger {
	if out == nil {
		out = os.Stderr
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeLevel,
		EncodeName:       encodeName,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)
	l := zap.New(core)
	if tag != "" {
		l = l.Named(tag)
	}
	return l.Sugar()
}

// Nop discards everything.
func Nop() Logger { return zap.NewNop().Sugar() }
