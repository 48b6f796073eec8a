package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/convert"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if c.Interval <= 0 {
		return chatdocx.Errorf(chatdocx.EINVALID, "interval must be positive")
	}

	w := &Watcher{
		Converter: deps.Converter,
		Read: func() (string, error) {
			data, err := os.ReadFile(c.Input)
			return string(data), err
		},
		OutputPath:   c.Output,
		Interval:     c.Interval,
		ErrorBackoff: c.ErrorBackoff,
		Logger:       deps.Logger,
		Stdout:       deps.Stdout,
		Stderr:       deps.Stderr,
	}

	fmt.Fprintf(deps.Stdout, "Watching %s, writing %s (Ctrl+C to stop)\n", c.Input, c.Output)
	return w.Run(deps.Ctx)
}

// Watcher polls a source for HTML and converts each new version once.
// Content is remembered by hash; a failed conversion forgets it so the same
// content is retried on the next poll.
type Watcher struct {
	Converter    chatdocx.Converter
	Read         func() (string, error)
	OutputPath   string
	Interval     time.Duration
	ErrorBackoff time.Duration
	Logger       *slog.Logger
	Stdout       io.Writer
	Stderr       io.Writer

	last uint64
	seen bool
}

// Run polls until ctx is canceled. Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		wait := w.Interval
		if _, err := w.Poll(); err != nil && w.ErrorBackoff > 0 {
			wait = w.ErrorBackoff
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// Poll reads the source once and converts it if it holds HTML that differs
// from the last converted content. It reports whether a document was
// written. Read failures and non-HTML content are skipped silently.
func (w *Watcher) Poll() (bool, error) {
	content, err := w.Read()
	if err != nil {
		w.debug("read failed", "err", err)
		return false, nil
	}
	if !chatdocx.IsLikelyHTML(content) {
		return false, nil
	}

	sum := xxhash.Sum64String(content)
	if w.seen && sum == w.last {
		return false, nil
	}
	w.last, w.seen = sum, true

	if err := w.Converter.Convert(content, w.OutputPath); err != nil {
		w.seen = false
		fmt.Fprintf(w.Stderr, "error: %s\n", convert.Describe(err, w.OutputPath))
		return false, err
	}

	fmt.Fprintf(w.Stdout, "Saved %s\n", w.OutputPath)
	return true, nil
}

func (w *Watcher) debug(msg string, args ...any) {
	if w.Logger != nil {
		w.Logger.Debug(msg, args...)
	}
}
