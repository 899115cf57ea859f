// Package logging builds the zerolog logger used across modetoggle.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/modetoggle/internal/config"
)

// StderrFile is the log.file value that selects stderr.
const StderrFile = "-"

// New returns a logger for cfg and a closer for its destination.
// The TUI owns the terminal, so logs go to a file unless cfg.File is "-".
// The file and its directory are created on the first write, so commands
// that log nothing leave no trace on disk.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" && cfg.File != StderrFile {
		file := &lazyFile{path: cfg.File}
		out = file
		closer = file
	}

	return newLogger(out, cfg.Format, level), closer, nil
}

func newLogger(out io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// lazyFile opens path for appending on the first Write.
type lazyFile struct {
	path string

	mu   sync.Mutex
	file *os.File
}

func (f *lazyFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return 0, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return 0, fmt.Errorf("failed to open log file: %w", err)
		}
		f.file = file
	}
	return f.file.Write(p)
}

func (f *lazyFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
