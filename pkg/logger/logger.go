package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the marketplace services.
// - package-level Debugf/Infof/Warnf/Errorf/Fatalf plus structured *w variants
// - backed by zap; Init(level) and SetFormat("json"|"console") reconfigure it

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	format = "console"
	out    zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	sugar  *zap.SugaredLogger
)

func init() {
	rebuild()
}

// rebuild must be called with mu held (or during init).
func rebuild() {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	sugar = zap.New(zapcore.NewCore(enc, out, level)).Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown values select info.
func Init(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level.SetLevel(zapcore.FatalLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// SetFormat switches between the console and json encoders.
func SetFormat(f string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.EqualFold(strings.TrimSpace(f), "json") {
		format = "json"
	} else {
		format = "console"
	}
	rebuild()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = zapcore.Lock(zapcore.AddSync(w))
	rebuild()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }

// Fatalf logs and exits the process with status 1.
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

// Structured variants take alternating key/value pairs.
func Debugw(msg string, kv ...interface{}) { get().Debugw(msg, kv...) }
func Infow(msg string, kv ...interface{})  { get().Infow(msg, kv...) }
func Warnw(msg string, kv ...interface{})  { get().Warnw(msg, kv...) }
func Errorw(msg string, kv ...interface{}) { get().Errorw(msg, kv...) }

// Sync flushes buffered output; call before exit.
func Sync() { _ = get().Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	switch level.Level() {
	case zapcore.DebugLevel:
		return "debug"
	case zapcore.WarnLevel:
		return "warn"
	case zapcore.ErrorLevel:
		return "error"
	case zapcore.FatalLevel:
		return "fatal"
	}
	return "info"
}
