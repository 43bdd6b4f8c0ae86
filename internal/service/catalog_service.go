package service

import (
	"context"

	"danubio/internal/domain"
	"danubio/internal/models"

	"github.com/rs/zerolog"
)

// CatalogService serves the read-side of the catalog: destinations,
// experiences and testimonials.
type CatalogService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewCatalogService(store domain.Store, logger *zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

func (s *CatalogService) Destinations(ctx context.Context) ([]*models.Destination, error) {
	return s.store.GetDestinations(ctx)
}

func (s *CatalogService) FeaturedDestinations(ctx context.Context) ([]*models.Destination, error) {
	return s.store.GetFeaturedDestinations(ctx)
}

func (s *CatalogService) Destination(ctx context.Context, id int64) (*models.Destination, error) {
	return s.store.GetDestination(ctx, id)
}

func (s *CatalogService) UpdateDestination(ctx context.Context, id int64, upd models.DestinationUpdate) (*models.Destination, error) {
	return s.store.UpdateDestination(ctx, id, upd)
}

// SearchDestinations filters available destinations by a free-text query.
// Checkin/checkout parameters are accepted upstream for forward compatibility
// but do not filter against existing bookings.
func (s *CatalogService) SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error) {
	return s.store.SearchDestinations(ctx, query)
}

func (s *CatalogService) Experiences(ctx context.Context) ([]*models.Experience, error) {
	return s.store.GetExperiences(ctx)
}

func (s *CatalogService) Experience(ctx context.Context, id int64) (*models.Experience, error) {
	return s.store.GetExperience(ctx, id)
}

func (s *CatalogService) Testimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.store.GetTestimonials(ctx)
}

func (s *CatalogService) FeaturedTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.store.GetFeaturedTestimonials(ctx)
}
