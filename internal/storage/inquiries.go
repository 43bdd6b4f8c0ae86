package storage

import (
	"context"
	"time"

	"danubio/internal/models"
)

// GetInquiries returns all inquiries in insertion order.
func (s *Store) GetInquiries(ctx context.Context) ([]*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Inquiry, 0, len(s.inquiryOrder))
	for _, id := range s.inquiryOrder {
		q := s.inquiries[id]
		out = append(out, &q)
	}
	return out, nil
}

// GetInquiry returns the inquiry with the given id, or nil when unknown.
func (s *Store) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.inquiries[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

// CreateInquiry stores a new inquiry. Status always starts new.
func (s *Store) CreateInquiry(ctx context.Context, input models.NewInquiry) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := models.Inquiry{
		ID:        s.nextID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Interests: input.Interests,
		Message:   input.Message,
		Status:    models.InquiryStatusNew,
		CreatedAt: time.Now(),
	}

	s.inquiries[q.ID] = q
	s.inquiryOrder = append(s.inquiryOrder, q.ID)
	return &q, nil
}

// UpdateInquiryStatus transitions an inquiry to the given status. Returns nil
// when id is unknown.
func (s *Store) UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.inquiries[id]
	if !ok {
		return nil, nil
	}

	q.Status = status
	s.inquiries[id] = q
	return &q, nil
}
