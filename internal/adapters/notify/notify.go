// Package notify delivers admin core notifications to an operator terminal
// and to the structured log.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Terminal prints one line per notification and mirrors it to the logger.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewTerminal creates a Terminal notifier. logger may be nil.
func NewTerminal(out io.Writer, logger *slog.Logger) *Terminal {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Terminal{out: out, logger: logger}
}

func (t *Terminal) Success(ctx context.Context, message string) {
	t.logger.InfoContext(ctx, "notification", slog.String("kind", "success"), slog.String("message", message))
	t.print("✓", message)
}

func (t *Terminal) Failure(ctx context.Context, message string) {
	t.logger.ErrorContext(ctx, "notification", slog.String("kind", "failure"), slog.String("message", message))
	t.print("✗", message)
}

func (t *Terminal) Warning(ctx context.Context, message string) {
	t.logger.WarnContext(ctx, "notification", slog.String("kind", "warning"), slog.String("message", message))
	t.print("!", message)
}

func (t *Terminal) print(mark, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", mark, message)
}
