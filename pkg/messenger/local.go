package messenger

import (
	"context"
	"log/slog"
)

// Local is the stand-in used outside the host container (browser mode): the
// relay only logs, the confirm outcome still arrives through the registry,
// so the checkout flow keeps the same guarantees.
type Local struct {
	confirms *ConfirmRegistry
	log      *slog.Logger
}

func NewLocal(confirms *ConfirmRegistry, log *slog.Logger) *Local {
	return &Local{confirms: confirms, log: log}
}

func (l *Local) RequestConfirmation(ctx context.Context, hotelID, message string) (bool, error) {
	l.log.Info("awaiting guest confirmation (local mode)", "hotelId", hotelID, "prompt", message)
	return l.confirms.Wait(ctx, hotelID)
}

func (l *Local) Relay(ctx context.Context, text string) error {
	l.log.Info("relay (local mode)", "text", text)
	return nil
}

func (l *Local) GuestName(ctx context.Context) string {
	return GuestNameFromContext(ctx)
}
