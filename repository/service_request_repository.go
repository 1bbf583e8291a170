package repository

import (
	"github.com/yunus-I/Hotel-App/entity"
	"gorm.io/gorm"
)

type ServiceRequestRepository struct{ DB *gorm.DB }

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{DB: db}
}

func (r *ServiceRequestRepository) Create(tx *gorm.DB, req *entity.ServiceRequest) error {
	return tx.Create(req).Error
}
