package services

import (
	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(hotelID, category string) ([]entity.MenuItem, error) {
	return s.Repo.ListAvailable(hotelID, category)
}
