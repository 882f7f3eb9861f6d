package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the per-run audit sink. Every entry is written to the run's
// log file with a timestamp; a verbosity-filtered subset is echoed to
// stderr. The file is created lazily on the first entry, so a run that
// fails before scanning leaves nothing behind.
type Logger struct {
	path string
	file *os.File

	fileLog *logrus.Logger // always records everything
	echo    *logrus.Logger // filtered by verbosity
}

// DefaultLogPath derives the run's log file location from the user's
// home directory and a timestamp.
func DefaultLogPath(now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	name := fmt.Sprintf("clean_%s.log", now.Format("20060102_150405"))
	return filepath.Join(home, ".buildsweep", name), nil
}

// New returns a Logger that will append to path once the first entry is
// written. echoLevel controls what is mirrored to stderr; the file
// always receives every entry.
func New(path string, echoLevel logrus.Level) *Logger {
	fileLog := logrus.New()
	fileLog.SetOutput(io.Discard) // swapped for the file on first write
	fileLog.SetLevel(logrus.DebugLevel)
	fileLog.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	echo := logrus.New()
	echo.SetOutput(os.Stderr)
	echo.SetLevel(echoLevel)
	echo.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &Logger{path: path, fileLog: fileLog, echo: echo}
}

// NewNop returns a Logger that discards everything. Useful for tests
// and for callers that manage their own reporting.
func NewNop() *Logger {
	l := New("", logrus.PanicLevel)
	l.echo.SetOutput(io.Discard)
	return l
}

// Path returns the log file location.
func (l *Logger) Path() string { return l.path }

// Created reports whether the log file has been written.
func (l *Logger) Created() bool { return l.file != nil }

func (l *Logger) ensureFile() {
	if l.file != nil || l.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	l.file = f
	l.fileLog.SetOutput(f)
}

func (l *Logger) log(level logrus.Level, format string, args ...any) {
	l.ensureFile()
	l.fileLog.Logf(level, format, args...)
	l.echo.Logf(level, format, args...)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(logrus.DebugLevel, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(logrus.InfoLevel, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(logrus.WarnLevel, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(logrus.ErrorLevel, format, args...) }

// RunRecord is the machine-readable footer appended to the log file at
// the end of a run.
type RunRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	Root           string    `json:"root"`
	DryRun         bool      `json:"dry_run"`
	Matched        int       `json:"matched"`
	Succeeded      int       `json:"succeeded"`
	Failed         int       `json:"failed"`
	AlreadyGone    int       `json:"skipped_already_gone"`
	ParentDeleted  int       `json:"skipped_parent_deleted"`
	BytesReclaimed int64     `json:"bytes_reclaimed"`
	Duration       string    `json:"duration"`
}

// WriteRecord appends the run record as a single JSON line.
func (l *Logger) WriteRecord(rec RunRecord) error {
	l.ensureFile()
	if l.file == nil {
		return nil
	}
	enc := json.NewEncoder(l.file)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return nil
}

// Close releases the log file, if one was created.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
