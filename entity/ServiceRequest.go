package entity

import (
	"gorm.io/gorm"
)

type ServiceRequest struct {
	gorm.Model
	HotelID   string `json:"hotelId" gorm:"index"`
	Service   string `json:"service"`
	GuestName string `json:"guestName"`
	Relayed   bool   `json:"relayed"`
}
