package service

import (
	"context"

	"danubio/internal/domain"
	"danubio/internal/events"
	"danubio/internal/models"

	"github.com/rs/zerolog"
)

// InquiryService owns customer inquiries and their status transitions.
type InquiryService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewInquiryService(store domain.Store, eventBus domain.EventPublisher, logger *zerolog.Logger) *InquiryService {
	return &InquiryService{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, input models.NewInquiry) (*models.Inquiry, error) {
	inquiry, err := s.store.CreateInquiry(ctx, input)
	if err != nil {
		return nil, err
	}

	s.publishInquiryEvent(events.EventInquiryCreated, inquiry)
	return inquiry, nil
}

func (s *InquiryService) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	return s.store.GetInquiry(ctx, id)
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]*models.Inquiry, error) {
	return s.store.GetInquiries(ctx)
}

// UpdateStatus transitions an inquiry. An unknown id comes back as (nil, nil).
func (s *InquiryService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	if !models.ValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.store.UpdateInquiryStatus(ctx, id, status)
}

func (s *InquiryService) publishInquiryEvent(eventType string, inquiry *models.Inquiry) {
	if s.eventBus == nil {
		return
	}

	payload := events.InquiryEventPayload{
		InquiryID: inquiry.ID,
		Email:     inquiry.Email,
		Status:    inquiry.Status,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("inquiry_id", inquiry.ID).Msg("publish event error")
	}
}
