package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartEntry is one line item of a hotel's cart. The unique index on
// (hotel_id, item_id) is what guarantees a second add merges into the
// existing row instead of creating a duplicate.
type CartEntry struct {
	gorm.Model
	HotelID string `json:"tenantId" gorm:"index;uniqueIndex:idx_hotel_item"`
	ItemID  string `json:"itemId" gorm:"uniqueIndex:idx_hotel_item"`

	// Captured at add-time, never re-fetched from the menu.
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`

	Qty     int       `json:"quantity"`
	AddedAt time.Time `json:"addedAt"`
}
