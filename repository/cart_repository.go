package repository

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yunus-I/Hotel-App/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListByHotel returns the hotel's entries in insertion order. A hotel that
// was never written reads as an empty slice, not an error.
func (r *CartRepository) ListByHotel(hotelID string) ([]entity.CartEntry, error) {
	var rows []entity.CartEntry
	err := r.DB.Where("hotel_id = ?", hotelID).Order("added_at, id").Find(&rows).Error
	return rows, err
}

func (r *CartRepository) Find(tx *gorm.DB, hotelID, itemID string) (*entity.CartEntry, error) {
	var row entity.CartEntry
	err := tx.Where("hotel_id = ? AND item_id = ?", hotelID, itemID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) Create(tx *gorm.DB, row *entity.CartEntry) error {
	return tx.Create(row).Error
}

func (r *CartRepository) Save(tx *gorm.DB, row *entity.CartEntry) error {
	return tx.Save(row).Error
}

func (r *CartRepository) Remove(tx *gorm.DB, hotelID, itemID string) error {
	return tx.Where("hotel_id = ? AND item_id = ?", hotelID, itemID).
		Delete(&entity.CartEntry{}).Error
}

// ClearHotel deletes this hotel's entries only; other hotels on the same
// device share the table and stay untouched.
func (r *CartRepository) ClearHotel(tx *gorm.DB, hotelID string) error {
	return tx.Where("hotel_id = ?", hotelID).Delete(&entity.CartEntry{}).Error
}

// legacyEntry is the flat-array record shape the portal used to keep in
// local storage. Unknown fields are ignored, missing ones default.
type legacyEntry struct {
	ItemID    string  `json:"itemId"`
	TenantID  string  `json:"tenantId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	AddedAt   string  `json:"addedAt"`
}

// ImportLegacy loads a legacy serialized cart into the table. Unparsable
// payloads are discarded as an empty cart; individual bad rows are skipped.
// Duplicate (tenant, item) pairs merge their quantities.
func (r *CartRepository) ImportLegacy(raw []byte, log *slog.Logger) error {
	var rows []legacyEntry
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Warn("legacy cart payload unparsable, treating as empty", "error", err)
		return nil
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.ItemID == "" || row.TenantID == "" || row.Quantity < 1 || row.UnitPrice < 0 {
				log.Warn("skipping invalid legacy cart row", "itemId", row.ItemID, "tenantId", row.TenantID)
				continue
			}
			addedAt, err := time.Parse(time.RFC3339, row.AddedAt)
			if err != nil {
				addedAt = time.Now()
			}

			existing, err := r.Find(tx, row.TenantID, row.ItemID)
			if err == nil {
				existing.Qty += row.Quantity
				if err := r.Save(tx, existing); err != nil {
					return err
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			entry := entity.CartEntry{
				HotelID:   row.TenantID,
				ItemID:    row.ItemID,
				Name:      row.Name,
				UnitPrice: decimal.NewFromFloat(row.UnitPrice),
				Qty:       row.Quantity,
				AddedAt:   addedAt,
			}
			if err := r.Create(tx, &entry); err != nil {
				return err
			}
		}
		return nil
	})
}
