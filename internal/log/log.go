package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "sagebox-lab"

var (
	initOnce    sync.Once
	initialized atomic.Bool
	panicDir    atomic.Pointer[string]
)

// Setup installs a JSON slog handler writing to a rotated file. Only the
// first call has any effect. Panic reports land next to the log file.
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		logRotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		handler := slog.NewJSONHandler(logRotator, &slog.HandlerOptions{
			Level:     level,
			AddSource: debug,
		})

		slog.SetDefault(slog.New(handler).With("app", appName))
		dir := filepath.Dir(logFile)
		panicDir.Store(&dir)
		initialized.Store(true)
	})
}

// FilePath is where Setup is pointed at for a given library directory.
func FilePath(libraryDir string) string {
	return filepath.Join(libraryDir, "logs", appName+".log")
}

func Initialized() bool {
	return initialized.Load()
}

// RecoverPanic is deferred at the top of a goroutine. A recovered panic is
// written to a report file and logged, then cleanup runs.
func RecoverPanic(scope string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}
	dir := os.TempDir()
	if p := panicDir.Load(); p != nil {
		dir = *p
	}
	report, err := writePanicReport(dir, scope, r, debug.Stack(), time.Now())
	if err != nil {
		slog.Error("Could not write panic report", "scope", scope, "panic", r, "error", err)
	} else {
		slog.Error("Recovered from panic", "scope", scope, "panic", r, "report", report)
	}
	if cleanup != nil {
		cleanup()
	}
}

func writePanicReport(dir, scope string, r any, stack []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-panic-%s-%s.log", appName, scope, now.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	body := fmt.Sprintf("Panic in %s: %v\n\nTime: %s\n\nStack Trace:\n%s\n",
		scope, r, now.Format(time.RFC3339), stack)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
