package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is the local audit copy of a submitted order. The remote order store
// keeps the authoritative record; RemoteID is its identifier when the write
// succeeded.
type Order struct {
	gorm.Model
	OrderUID  string `json:"orderUid" gorm:"uniqueIndex"`
	HotelID   string `json:"hotelId" gorm:"index"`
	GuestName string `json:"guestName"`

	Subtotal decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Tax      decimal.Decimal `json:"tax" gorm:"type:decimal(10,2)"`
	Total    decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`

	RemoteID    string    `json:"remoteId"`
	Relayed     bool      `json:"relayed"`
	SubmittedAt time.Time `json:"submittedAt"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
