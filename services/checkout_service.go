package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/pkg/messenger"
	"github.com/yunus-I/Hotel-App/pkg/orders"
	"github.com/yunus-I/Hotel-App/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

type CheckoutState string

const (
	StateIdle                 CheckoutState = "idle"
	StateAwaitingConfirmation CheckoutState = "awaiting_confirmation"
	StateSubmitting           CheckoutState = "submitting"
	StateRelaying             CheckoutState = "relaying"
)

// CheckoutService runs the confirm → submit → relay → clear sequence. It is
// the only component allowed to clear a cart as a side effect of a remote
// operation, and it runs at most one flow per hotel at a time.
type CheckoutService struct {
	DB        *gorm.DB
	Carts     *CartService
	OrderRepo *repository.OrderRepository
	Store     orders.Client
	Msgr      messenger.Messenger
	Confirms  *messenger.ConfirmRegistry
	Notify    Notifier
	Log       *slog.Logger

	TaxRate      decimal.Decimal
	StrictSubmit bool

	mu    sync.Mutex
	flows map[string]*checkoutFlow
}

type checkoutFlow struct {
	mu    sync.Mutex
	state CheckoutState
}

func (f *checkoutFlow) set(s CheckoutState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *checkoutFlow) get() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func NewCheckoutService(
	db *gorm.DB,
	carts *CartService,
	orderRepo *repository.OrderRepository,
	store orders.Client,
	msgr messenger.Messenger,
	confirms *messenger.ConfirmRegistry,
	notify Notifier,
	log *slog.Logger,
	taxRate decimal.Decimal,
	strictSubmit bool,
) *CheckoutService {
	return &CheckoutService{
		DB:           db,
		Carts:        carts,
		OrderRepo:    orderRepo,
		Store:        store,
		Msgr:         msgr,
		Confirms:     confirms,
		Notify:       notify,
		Log:          log,
		TaxRate:      taxRate,
		StrictSubmit: strictSubmit,
		flows:        make(map[string]*checkoutFlow),
	}
}

// Begin starts a checkout for the hotel. An empty cart is a no-op error
// (nothing transitions, no confirmation opens); a flow already in flight is
// rejected, not queued. On success the returned prompt is what the mini-app
// shows in the host confirm dialog, and the flow goroutine waits for
// Resolve.
func (s *CheckoutService) Begin(ctx context.Context, hotelID string) (string, error) {
	entries, err := s.Carts.Snapshot(hotelID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrEmptyCart
	}

	s.mu.Lock()
	if _, ok := s.flows[hotelID]; ok {
		s.mu.Unlock()
		return "", ErrCheckoutInProgress
	}
	flow := &checkoutFlow{state: StateAwaitingConfirmation}
	s.flows[hotelID] = flow
	s.mu.Unlock()

	_, subtotal := summarize(entries)
	tax := subtotal.Mul(s.TaxRate).Round(2)
	total := subtotal.Round(2).Add(tax)
	prompt := fmt.Sprintf("Place order for $%s?", total.StringFixed(2))

	// The request context dies with the HTTP response; the flow outlives it.
	guestName := s.Msgr.GuestName(ctx)

	go s.run(flow, hotelID, guestName, prompt, entries, subtotal, tax, total)

	return prompt, nil
}

// Resolve feeds the host confirm dialog's outcome to the waiting flow.
// Returns false when no flow is awaiting confirmation for this hotel.
func (s *CheckoutService) Resolve(hotelID string, confirmed bool) bool {
	return s.Confirms.Resolve(hotelID, confirmed)
}

// State reports the hotel's current flow state, StateIdle when none.
func (s *CheckoutService) State(hotelID string) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if flow, ok := s.flows[hotelID]; ok {
		return flow.get()
	}
	return StateIdle
}

func (s *CheckoutService) run(flow *checkoutFlow, hotelID, guestName, prompt string, entries []entity.CartEntry, subtotal, tax, total decimal.Decimal) {
	ctx := context.Background()

	defer func() {
		s.mu.Lock()
		delete(s.flows, hotelID)
		s.mu.Unlock()
	}()

	confirmed, err := s.Msgr.RequestConfirmation(ctx, hotelID, prompt)
	if err != nil {
		s.Log.Error("confirmation failed", "hotelId", hotelID, "error", err)
		return
	}
	if !confirmed {
		// Declined: back to idle with no side effects.
		s.toast(hotelID, "info", "Order cancelled")
		return
	}

	flow.set(StateSubmitting)

	order := s.buildOrder(hotelID, guestName, entries, subtotal, tax, total)

	remoteID, err := s.Store.Submit(ctx, order)
	if err != nil {
		s.Log.Error("order store write failed", "hotelId", hotelID, "orderUid", order.OrderUID, "error", err)
		s.toast(hotelID, "error", "Order could not be saved, staff will be notified directly")
		if s.StrictSubmit {
			// Strict policy: abort before the relay, keep the cart.
			s.toast(hotelID, "error", "Order not placed, please try again")
			return
		}
	} else {
		order.RemoteID = remoteID
	}

	flow.set(StateRelaying)

	if err := s.Msgr.Relay(ctx, orderText(order)); err != nil {
		s.Log.Warn("staff relay failed", "hotelId", hotelID, "orderUid", order.OrderUID, "error", err)
	} else {
		order.Relayed = true
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.OrderRepo.Create(tx, order)
	}); err != nil {
		s.Log.Error("order audit write failed", "hotelId", hotelID, "orderUid", order.OrderUID, "error", err)
	}

	if err := s.Carts.Clear(hotelID); err != nil {
		s.Log.Error("cart clear failed", "hotelId", hotelID, "error", err)
		return
	}

	s.toast(hotelID, "success", "Order placed successfully!")
	s.Log.Info("checkout completed", "hotelId", hotelID, "orderUid", order.OrderUID,
		"total", total.StringFixed(2), "remoteId", order.RemoteID, "relayed", order.Relayed)
}

func (s *CheckoutService) buildOrder(hotelID, guestName string, entries []entity.CartEntry, subtotal, tax, total decimal.Decimal) *entity.Order {
	items := make([]entity.OrderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, entity.OrderItem{
			ItemID:    e.ItemID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
			Qty:       e.Qty,
			Total:     e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Qty))).Round(2),
		})
	}

	return &entity.Order{
		OrderUID:    uuid.NewString(),
		HotelID:     hotelID,
		GuestName:   guestName,
		Subtotal:    subtotal.Round(2),
		Tax:         tax,
		Total:       total,
		SubmittedAt: time.Now(),
		Items:       items,
	}
}

func orderText(o *entity.Order) string {
	var b strings.Builder
	b.WriteString("🛎️ New Order\n\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%dx %s - $%s\n", it.Qty, it.Name, it.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nGuest: %s\nTotal: $%s", o.GuestName, o.Total.StringFixed(2))
	return b.String()
}

func (s *CheckoutService) toast(hotelID, level, message string) {
	if s.Notify == nil {
		return
	}
	s.Notify.Toast(hotelID, level, message)
}
