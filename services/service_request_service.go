package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/pkg/messenger"
	"github.com/yunus-I/Hotel-App/repository"
	"gorm.io/gorm"
)

var knownServices = []string{"Room Cleaning", "Fresh Towels", "Wake-up Call", "Late Checkout"}

type ServiceRequestService struct {
	DB     *gorm.DB
	Repo   *repository.ServiceRequestRepository
	Msgr   messenger.Messenger
	Notify Notifier
	Log    *slog.Logger
}

func NewServiceRequestService(db *gorm.DB, repo *repository.ServiceRequestRepository, msgr messenger.Messenger, notify Notifier, log *slog.Logger) *ServiceRequestService {
	return &ServiceRequestService{DB: db, Repo: repo, Msgr: msgr, Notify: notify, Log: log}
}

func (s *ServiceRequestService) Request(ctx context.Context, hotelID, service string) error {
	if !slices.Contains(knownServices, service) {
		return fmt.Errorf("%w: unknown service %q", ErrInvalidArgument, service)
	}

	guest := s.Msgr.GuestName(ctx)
	req := &entity.ServiceRequest{HotelID: hotelID, Service: service, GuestName: guest}

	text := fmt.Sprintf("🔔 Service request at %s: %s (guest: %s)", hotelID, service, guest)
	if err := s.Msgr.Relay(ctx, text); err != nil {
		s.Log.Warn("service request relay failed", "hotelId", hotelID, "service", service, "error", err)
	} else {
		req.Relayed = true
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, req)
	}); err != nil {
		return err
	}

	if s.Notify != nil {
		s.Notify.Toast(hotelID, "success", service+" requested!")
	}
	return nil
}
