package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/currency_admin/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetLoggerFromCtx(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	logger := slogDiscard()
	ctx := middleware.WithLogger(context.Background(), logger)
	assert.Same(t, logger, middleware.GetLoggerFromCtx(ctx))
}
