package domain

import "time"

// CurrencyEventType names a change published by the currency store.
type CurrencyEventType string

const (
	EventCurrencyCreated     CurrencyEventType = "currency.created"
	EventCurrencyUpdated     CurrencyEventType = "currency.updated"
	EventCurrencyDeleted     CurrencyEventType = "currency.deleted"
	EventCurrencyActivated   CurrencyEventType = "currency.activated"
	EventCurrencyDeactivated CurrencyEventType = "currency.deactivated"
	EventRatesRefreshed      CurrencyEventType = "rates.refreshed"
)

// CurrencyEvent is published after a successful write.
// CurrencyID and Code are empty for rates.refreshed.
type CurrencyEvent struct {
	Type       CurrencyEventType `json:"type"`
	CurrencyID int64             `json:"currencyId,omitempty"`
	Code       string            `json:"code,omitempty"`
	Updated    int               `json:"updated,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
