package kafka

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublish_KeysByCurrency(t *testing.T) {
	w := new(mockWriter)
	p := newPublisher(w, slog.New(slog.NewTextHandler(io.Discard, nil)))
	at := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	var sent []kafka.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	err := p.Publish(context.Background(), domain.CurrencyEvent{
		Type: domain.EventCurrencyCreated, CurrencyID: 9, Code: "EUR", OccurredAt: at,
	})

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "currency_9", string(sent[0].Key))
	assert.JSONEq(t, `{"type":"currency.created","currencyId":9,"code":"EUR","occurredAt":"2025-03-02T10:00:00Z"}`, string(sent[0].Value))
	assert.Equal(t, at, sent[0].Time)
}

func TestPublish_RatesRefreshedKeyedByType(t *testing.T) {
	w := new(mockWriter)
	p := newPublisher(w, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var sent []kafka.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	require.NoError(t, p.Publish(context.Background(), domain.CurrencyEvent{Type: domain.EventRatesRefreshed, Updated: 3}))
	assert.Equal(t, "rates.refreshed", string(sent[0].Key))
}

func TestPublish_WriteError(t *testing.T) {
	w := new(mockWriter)
	p := newPublisher(w, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	err := p.Publish(context.Background(), domain.CurrencyEvent{Type: domain.EventCurrencyDeleted, CurrencyID: 1})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), domain.CurrencyEvent{}))
	assert.NoError(t, p.Close())
}
