package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	HotelID string `json:"hotelId" gorm:"index;uniqueIndex:idx_hotel_menu_item"`
	ItemID  string `json:"itemId" gorm:"uniqueIndex:idx_hotel_menu_item"`

	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}
