package repository

import (
	"github.com/yunus-I/Hotel-App/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListAvailable(hotelID, category string) ([]entity.MenuItem, error) {
	q := r.DB.Where("hotel_id = ? AND available = ?", hotelID, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []entity.MenuItem
	err := q.Order("category, name").Find(&items).Error
	return items, err
}
