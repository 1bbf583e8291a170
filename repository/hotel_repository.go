package repository

import (
	"github.com/yunus-I/Hotel-App/entity"
	"gorm.io/gorm"
)

type HotelRepository struct{ DB *gorm.DB }

func NewHotelRepository(db *gorm.DB) *HotelRepository { return &HotelRepository{DB: db} }

func (r *HotelRepository) GetBySlug(slug string) (*entity.Hotel, error) {
	var h entity.Hotel
	if err := r.DB.Where("slug = ?", slug).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
