package services

import (
	"github.com/shopspring/decimal"
)

// CartEvent is published after every committed cart mutation.
type CartEvent struct {
	HotelID string
	Count   int
	Total   decimal.Decimal
}

// EventSink receives cart change events. Dispatch is synchronous and
// at-least-once; the sink must not block.
type EventSink interface {
	CartChanged(evt CartEvent)
}

// Notifier shows ephemeral guest-facing feedback (toasts). Side effects
// only; never part of the cart contract.
type Notifier interface {
	Toast(hotelID, level, message string)
}
