package service

import (
	"context"

	"danubio/internal/models"

	"github.com/stretchr/testify/mock"
)

// mockStore is a testify mock of the domain.Store interface.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetDestinations(ctx context.Context) ([]*models.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *mockStore) GetFeaturedDestinations(ctx context.Context) ([]*models.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *mockStore) GetDestination(ctx context.Context, id int64) (*models.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *mockStore) CreateDestination(ctx context.Context, input models.NewDestination) (*models.Destination, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *mockStore) UpdateDestination(ctx context.Context, id int64, upd models.DestinationUpdate) (*models.Destination, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *mockStore) SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *mockStore) GetExperiences(ctx context.Context) ([]*models.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Experience), args.Error(1)
}

func (m *mockStore) GetExperience(ctx context.Context, id int64) (*models.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *mockStore) CreateExperience(ctx context.Context, input models.NewExperience) (*models.Experience, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *mockStore) GetBookings(ctx context.Context) ([]*models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func (m *mockStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockStore) CreateBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockStore) UpdateBookingStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockStore) GetInquiries(ctx context.Context) ([]*models.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Inquiry), args.Error(1)
}

func (m *mockStore) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *mockStore) CreateInquiry(ctx context.Context, input models.NewInquiry) (*models.Inquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *mockStore) UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *mockStore) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *mockStore) GetFeaturedTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *mockStore) CreateTestimonial(ctx context.Context, input models.NewTestimonial) (*models.Testimonial, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *mockStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockStore) CreateUser(ctx context.Context, input models.NewUser) (*models.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
