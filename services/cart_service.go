package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/repository"
	"gorm.io/gorm"
)

var ErrInvalidArgument = errors.New("invalid argument")

// CartService is the single source of truth for cart contents across every
// hotel this device has touched. All reads and writes are scoped by hotel;
// nothing else writes the persisted cart rows.
type CartService struct {
	DB     *gorm.DB
	Repo   *repository.CartRepository
	Events EventSink
	Notify Notifier
	Log    *slog.Logger
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, events EventSink, notify Notifier, log *slog.Logger) *CartService {
	return &CartService{DB: db, Repo: repo, Events: events, Notify: notify, Log: log}
}

// Add merges into the existing (hotel, item) row or inserts a new one.
// Rejects a negative price or non-positive quantity without touching state.
func (s *CartService) Add(hotelID, itemID, name string, unitPrice decimal.Decimal, qty int) error {
	if qty < 1 || unitPrice.IsNegative() {
		return ErrInvalidArgument
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.Find(tx, hotelID, itemID)
		if err == nil {
			existing.Qty += qty
			return s.Repo.Save(tx, existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.Repo.Create(tx, &entity.CartEntry{
			HotelID:   hotelID,
			ItemID:    itemID,
			Name:      name,
			UnitPrice: unitPrice,
			Qty:       qty,
			AddedAt:   time.Now(),
		})
	})
	if err != nil {
		return err
	}

	s.emit(hotelID)
	s.toast(hotelID, "success", name+" added to cart")
	return nil
}

// Remove deletes the matching entry; absent is a no-op, not an error.
func (s *CartService) Remove(hotelID, itemID string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Remove(tx, hotelID, itemID)
	})
	if err != nil {
		return err
	}

	s.emit(hotelID)
	s.toast(hotelID, "info", "Item removed from cart")
	return nil
}

// SetQty overwrites the quantity; qty <= 0 removes the entry instead.
func (s *CartService) SetQty(hotelID, itemID string, qty int) error {
	if qty <= 0 {
		return s.Remove(hotelID, itemID)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.Find(tx, hotelID, itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		existing.Qty = qty
		return s.Repo.Save(tx, existing)
	})
	if err != nil {
		return err
	}

	s.emit(hotelID)
	return nil
}

// Snapshot is a read-only view in insertion order.
func (s *CartService) Snapshot(hotelID string) ([]entity.CartEntry, error) {
	return s.Repo.ListByHotel(hotelID)
}

func (s *CartService) Total(hotelID string) (decimal.Decimal, error) {
	entries, err := s.Repo.ListByHotel(hotelID)
	if err != nil {
		return decimal.Zero, err
	}
	_, total := summarize(entries)
	return total, nil
}

func (s *CartService) ItemCount(hotelID string) (int, error) {
	entries, err := s.Repo.ListByHotel(hotelID)
	if err != nil {
		return 0, err
	}
	count, _ := summarize(entries)
	return count, nil
}

// Clear empties this hotel's cart only.
func (s *CartService) Clear(hotelID string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearHotel(tx, hotelID)
	})
	if err != nil {
		return err
	}

	s.emit(hotelID)
	return nil
}

func summarize(entries []entity.CartEntry) (int, decimal.Decimal) {
	count := 0
	total := decimal.Zero
	for _, e := range entries {
		count += e.Qty
		total = total.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Qty))))
	}
	return count, total
}

func (s *CartService) emit(hotelID string) {
	if s.Events == nil {
		return
	}
	entries, err := s.Repo.ListByHotel(hotelID)
	if err != nil {
		s.Log.Error("cart event read failed", "hotelId", hotelID, "error", err)
		return
	}
	count, total := summarize(entries)
	s.Events.CartChanged(CartEvent{HotelID: hotelID, Count: count, Total: total})
}

func (s *CartService) toast(hotelID, level, message string) {
	if s.Notify == nil {
		return
	}
	s.Notify.Toast(hotelID, level, message)
}
