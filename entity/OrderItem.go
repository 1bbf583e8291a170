package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	Qty       int             `json:"quantity"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
}
