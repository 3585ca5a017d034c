// Package logging provides the conversion log sink: timestamped, leveled
// records appended to a log file and mirrored to the console unless
// quieted. The logger is an explicit value constructed by the entry point
// and passed down; there is no package-level state.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

type Options struct {
	FilePath string
	Console  io.Writer
	Quiet    bool
	Verbose  bool
}

type Logger struct {
	sl      *slog.Logger
	file    *os.File
	Verbose bool
}

// New opens the log file (append mode, created if missing) and builds the
// combined sink. The zero Logger discards everything, which is what tests
// want.
func New(opts Options) (Logger, error) {
	var writers []io.Writer
	var file *os.File

	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return Logger{}, err
		}
		file = f
		writers = append(writers, f)
	}
	if !opts.Quiet && opts.Console != nil {
		writers = append(writers, opts.Console)
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	return Logger{sl: slog.New(handler), file: file, Verbose: opts.Verbose}, nil
}

func (l Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l Logger) Infof(format string, args ...any) {
	if l.sl == nil {
		return
	}
	l.sl.Info(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	if l.sl == nil {
		return
	}
	l.sl.Error(fmt.Sprintf(format, args...))
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.Infof("Verbose: "+format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
