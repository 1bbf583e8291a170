package services

import (
	"errors"

	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/repository"
	"gorm.io/gorm"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelService struct {
	Repo *repository.HotelRepository
}

func NewHotelService(repo *repository.HotelRepository) *HotelService {
	return &HotelService{Repo: repo}
}

// Get loads the hotel profile; an unknown slug is a hard failure, never a
// silent default property.
func (s *HotelService) Get(slug string) (*entity.Hotel, error) {
	h, err := s.Repo.GetBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHotelNotFound
	}
	return h, err
}
