package storage

import (
	"context"
	"time"

	"danubio/internal/models"
)

// GetBookings returns all bookings in insertion order.
func (s *Store) GetBookings(ctx context.Context) ([]*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Booking, 0, len(s.bookingOrder))
	for _, id := range s.bookingOrder {
		b := s.bookings[id]
		out = append(out, &b)
	}
	return out, nil
}

// GetBooking returns the booking with the given id, or nil when unknown.
func (s *Store) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// CreateBooking stores a new booking. Status always starts pending and guests
// default to 1 when omitted. The referenced item id is stored as-is.
func (s *Store) CreateBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Booking{
		ID:            s.nextID(),
		ItemID:        input.ItemID,
		ItemType:      input.ItemType,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		CheckinDate:   input.CheckinDate,
		CheckoutDate:  input.CheckoutDate,
		Guests:        input.Guests,
		TotalPrice:    input.TotalPrice,
		Status:        models.BookingStatusPending,
		CreatedAt:     time.Now(),
	}
	if b.Guests <= 0 {
		b.Guests = 1
	}

	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	return &b, nil
}

// UpdateBookingStatus transitions a booking to the given status. Returns nil
// when id is unknown; the caller decides how to surface that.
func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}

	b.Status = status
	s.bookings[id] = b
	return &b, nil
}
