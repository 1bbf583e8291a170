package messenger

import (
	"context"
	"errors"
	"sync"
)

// Messenger is the host-platform collaborator: confirm dialog outcome,
// fire-and-forget staff relay, best-effort guest identity.
type Messenger interface {
	RequestConfirmation(ctx context.Context, hotelID, message string) (bool, error)
	Relay(ctx context.Context, text string) error
	GuestName(ctx context.Context) string
}

var (
	ErrRelayUnavailable = errors.New("host messaging unavailable")
	ErrConfirmPending   = errors.New("confirmation already pending")
)

// ConfirmRegistry parks one checkout flow per hotel until the mini-app posts
// the outcome of the host confirm dialog. A dialog that never resolves keeps
// the waiter parked; there is deliberately no timeout.
type ConfirmRegistry struct {
	mu      sync.Mutex
	waiting map[string]chan bool
}

func NewConfirmRegistry() *ConfirmRegistry {
	return &ConfirmRegistry{waiting: make(map[string]chan bool)}
}

func (r *ConfirmRegistry) Wait(ctx context.Context, hotelID string) (bool, error) {
	r.mu.Lock()
	if _, ok := r.waiting[hotelID]; ok {
		r.mu.Unlock()
		return false, ErrConfirmPending
	}
	ch := make(chan bool, 1)
	r.waiting[hotelID] = ch
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.waiting, hotelID)
		r.mu.Unlock()
	}()

	select {
	case confirmed := <-ch:
		return confirmed, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Resolve delivers the dialog outcome. Returns false when nobody is waiting
// for this hotel, so callers can report a stray confirm.
func (r *ConfirmRegistry) Resolve(hotelID string, confirmed bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.waiting[hotelID]
	if !ok {
		return false
	}
	ch <- confirmed
	delete(r.waiting, hotelID)
	return true
}

func (r *ConfirmRegistry) Pending(hotelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.waiting[hotelID]
	return ok
}

type guestNameKey struct{}

// WithGuestName stores the guest display name the mini-app sent with the
// request (from the host platform's init data).
func WithGuestName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, guestNameKey{}, name)
}

func GuestNameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(guestNameKey{}).(string); ok && v != "" {
		return v
	}
	return "Guest"
}
