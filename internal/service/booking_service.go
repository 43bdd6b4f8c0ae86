package service

import (
	"context"
	"errors"

	"danubio/internal/domain"
	"danubio/internal/events"
	"danubio/internal/models"
	"danubio/internal/pricing"

	"github.com/rs/zerolog"
)

var (
	// ErrUnknownItem means the booking references a destination or experience
	// id that does not exist.
	ErrUnknownItem = errors.New("unknown booking item")

	// ErrInvalidStatus means a status transition targeted an undeclared status.
	ErrInvalidStatus = errors.New("invalid status")
)

// BookingService owns booking creation and status transitions. It is the one
// caller of the pricing rule: client-supplied totals are ignored and the total
// is recomputed from the referenced item's price.
type BookingService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewBookingService(store domain.Store, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateBooking resolves the referenced item, prices the booking and stores it
// with status pending.
func (s *BookingService) CreateBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error) {
	price, err := s.itemPrice(ctx, input.ItemType, input.ItemID)
	if err != nil {
		return nil, err
	}

	guests := input.Guests
	if guests <= 0 {
		guests = 1
	}
	input.Guests = guests
	input.TotalPrice = pricing.BookingTotal(input.ItemType, price, input.CheckinDate, input.CheckoutDate, guests)

	booking, err := s.store.CreateBooking(ctx, input)
	if err != nil {
		return nil, err
	}

	s.publishBookingEvent(events.EventBookingCreated, booking)
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.store.GetBookings(ctx)
}

// UpdateStatus transitions a booking. An unknown id comes back as (nil, nil);
// the caller decides how to surface that.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.store.UpdateBookingStatus(ctx, id, status)
	if err != nil || booking == nil {
		return booking, err
	}

	s.publishBookingEvent(events.EventBookingStatusChanged, booking)
	return booking, nil
}

// itemPrice resolves the price of the tagged item a booking references.
func (s *BookingService) itemPrice(ctx context.Context, itemType string, itemID int64) (int64, error) {
	switch itemType {
	case models.ItemTypeDestination:
		destination, err := s.store.GetDestination(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if destination == nil {
			return 0, ErrUnknownItem
		}
		return destination.Price, nil
	case models.ItemTypeExperience:
		experience, err := s.store.GetExperience(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if experience == nil {
			return 0, ErrUnknownItem
		}
		return experience.Price, nil
	default:
		return 0, ErrUnknownItem
	}
}

func (s *BookingService) publishBookingEvent(eventType string, booking *models.Booking) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		ItemType:   booking.ItemType,
		Status:     booking.Status,
		Guests:     booking.Guests,
		TotalPrice: booking.TotalPrice,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("booking_id", booking.ID).Msg("publish event error")
	}
}
