package storage

import (
	"context"
	"time"

	"danubio/internal/models"
)

// GetExperiences returns all experiences in insertion order.
func (s *Store) GetExperiences(ctx context.Context) ([]*models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Experience, 0, len(s.experienceOrder))
	for _, id := range s.experienceOrder {
		e := s.experiences[id]
		out = append(out, &e)
	}
	return out, nil
}

// GetExperience returns the experience with the given id, or nil when unknown.
func (s *Store) GetExperience(ctx context.Context, id int64) (*models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.experiences[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// CreateExperience assigns an id and creation time and stores the record.
func (s *Store) CreateExperience(ctx context.Context, input models.NewExperience) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.Experience{
		ID:          s.nextID(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		GroupSize:   input.GroupSize,
		Category:    input.Category,
		Icon:        input.Icon,
		Available:   true,
		CreatedAt:   time.Now(),
	}
	if input.Available != nil {
		e.Available = *input.Available
	}

	s.experiences[e.ID] = e
	s.experienceOrder = append(s.experienceOrder, e.ID)
	return &e, nil
}
