package storage

import (
	"context"
	"time"

	"danubio/internal/models"
)

// GetTestimonials returns all testimonials in insertion order.
func (s *Store) GetTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Testimonial, 0, len(s.testimonialOrder))
	for _, id := range s.testimonialOrder {
		t := s.testimonials[id]
		out = append(out, &t)
	}
	return out, nil
}

// GetFeaturedTestimonials returns exactly the testimonials with Featured set.
func (s *Store) GetFeaturedTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Testimonial
	for _, id := range s.testimonialOrder {
		if t := s.testimonials[id]; t.Featured {
			out = append(out, &t)
		}
	}
	return out, nil
}

// CreateTestimonial assigns an id and creation time and stores the record.
func (s *Store) CreateTestimonial(ctx context.Context, input models.NewTestimonial) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Testimonial{
		ID:        s.nextID(),
		Author:    input.Author,
		Location:  input.Location,
		Content:   input.Content,
		Rating:    input.Rating,
		ImageURL:  input.ImageURL,
		Featured:  false,
		CreatedAt: time.Now(),
	}
	if input.Featured != nil {
		t.Featured = *input.Featured
	}

	s.testimonials[t.ID] = t
	s.testimonialOrder = append(s.testimonialOrder, t.ID)
	return &t, nil
}
