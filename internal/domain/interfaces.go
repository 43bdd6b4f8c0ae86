package domain

import (
	"context"
	"time"

	"danubio/internal/models"
)

// Store is the catalog store surface consumed by services and handlers.
// Lookups return (nil, nil) when the id is unknown; absence is a normal
// return value, not an error.
type Store interface {
	GetDestinations(ctx context.Context) ([]*models.Destination, error)
	GetFeaturedDestinations(ctx context.Context) ([]*models.Destination, error)
	GetDestination(ctx context.Context, id int64) (*models.Destination, error)
	CreateDestination(ctx context.Context, input models.NewDestination) (*models.Destination, error)
	UpdateDestination(ctx context.Context, id int64, upd models.DestinationUpdate) (*models.Destination, error)
	SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error)

	GetExperiences(ctx context.Context) ([]*models.Experience, error)
	GetExperience(ctx context.Context, id int64) (*models.Experience, error)
	CreateExperience(ctx context.Context, input models.NewExperience) (*models.Experience, error)

	GetBookings(ctx context.Context) ([]*models.Booking, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) (*models.Booking, error)

	GetInquiries(ctx context.Context) ([]*models.Inquiry, error)
	GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error)
	CreateInquiry(ctx context.Context, input models.NewInquiry) (*models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error)

	GetTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	GetFeaturedTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, input models.NewTestimonial) (*models.Testimonial, error)

	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, input models.NewUser) (*models.User, error)
}

// ThrottleRepository counts submissions per client key within a rolling window.
type ThrottleRepository interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// EventPublisher publishes domain events with a JSON payload.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}
