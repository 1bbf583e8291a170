package repository

import (
	"github.com/yunus-I/Hotel-App/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) ListByHotel(hotelID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("hotel_id = ?", hotelID).
		Preload("Items").
		Order("submitted_at DESC").
		Find(&orders).Error
	return orders, err
}
