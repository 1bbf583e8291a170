package entity

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Slug     string `json:"slug" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Location string `json:"location"`

	MenuItems []MenuItem `json:"-" gorm:"foreignKey:HotelID;references:Slug"`
}
