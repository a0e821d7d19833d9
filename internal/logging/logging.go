// Package logging configures the logrus logger for a run. Log lines go to a
// file under the log directory; the terminal belongs to the dashboard, so
// console output is opt-in and always goes through the locked console.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	filePrefix      = "esports-stream_"
	fileStampLayout = "2006-01-02_15-04-05"
	timestampLayout = "2006-01-02 15:04:05"
)

// Options controls Setup.
type Options struct {
	Dir   string
	Level string
	// Console, when set, also receives every entry. Pass the shared
	// console so writes take RefreshLock.
	Console io.Writer
	// Now stamps the file name. Defaults to time.Now.
	Now func() time.Time
}

// Run is a configured logger for one process run.
type Run struct {
	*logrus.Entry
	ID   string
	Path string
	file *os.File
}

// Close flushes and closes the log file.
func (r *Run) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Setup opens a fresh log file and returns a logger tagged with a run id.
func Setup(opts Options) (*Run, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	path := filepath.Join(opts.Dir, filePrefix+now().Format(fileStampLayout)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(level)
	logger.SetFormatter(FileFormatter())
	if opts.Console != nil {
		logger.AddHook(NewConsoleHook(opts.Console))
	}

	id := uuid.NewString()
	return &Run{
		Entry: logger.WithField("run", id),
		ID:    id,
		Path:  path,
		file:  f,
	}, nil
}

// FileFormatter is the plain text format used in log files.
func FileFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampLayout,
		DisableColors:   true,
	}
}

// ConsoleHook copies entries to a terminal writer.
type ConsoleHook struct {
	out       io.Writer
	formatter logrus.Formatter
}

// NewConsoleHook returns a hook writing to out in a compact colored format.
func NewConsoleHook(out io.Writer) *ConsoleHook {
	return &ConsoleHook{
		out: out,
		formatter: &logrus.TextFormatter{
			ForceColors:     true,
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		},
	}
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ConsoleHook) Fire(e *logrus.Entry) error {
	b, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = h.out.Write(b)
	return err
}
