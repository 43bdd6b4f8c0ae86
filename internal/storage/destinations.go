package storage

import (
	"context"
	"strings"
	"time"

	"danubio/internal/models"
)

// GetDestinations returns all destinations in insertion order.
func (s *Store) GetDestinations(ctx context.Context) ([]*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Destination, 0, len(s.destinationOrder))
	for _, id := range s.destinationOrder {
		d := s.destinations[id]
		out = append(out, &d)
	}
	return out, nil
}

// GetFeaturedDestinations returns exactly the destinations with Featured set.
func (s *Store) GetFeaturedDestinations(ctx context.Context) ([]*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Destination
	for _, id := range s.destinationOrder {
		if d := s.destinations[id]; d.Featured {
			out = append(out, &d)
		}
	}
	return out, nil
}

// GetDestination returns the destination with the given id, or nil when
// unknown. Absence is not an error.
func (s *Store) GetDestination(ctx context.Context, id int64) (*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// CreateDestination assigns an id and creation time, applies defaults for
// omitted optional fields and stores the record.
func (s *Store) CreateDestination(ctx context.Context, input models.NewDestination) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := models.Destination{
		ID:          s.nextID(),
		Name:        input.Name,
		Country:     input.Country,
		Description: input.Description,
		Price:       input.Price,
		Rating:      input.Rating,
		ImageURL:    input.ImageURL,
		Featured:    false,
		Available:   true,
		CreatedAt:   time.Now(),
	}
	if input.Featured != nil {
		d.Featured = *input.Featured
	}
	if input.Available != nil {
		d.Available = *input.Available
	}

	s.destinations[d.ID] = d
	s.destinationOrder = append(s.destinationOrder, d.ID)
	return &d, nil
}

// UpdateDestination merges the non-nil fields of upd into the stored record.
// ID and CreatedAt are never overwritten. Returns nil when id is unknown.
func (s *Store) UpdateDestination(ctx context.Context, id int64, upd models.DestinationUpdate) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, nil
	}

	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Country != nil {
		d.Country = *upd.Country
	}
	if upd.Description != nil {
		d.Description = *upd.Description
	}
	if upd.Price != nil {
		d.Price = *upd.Price
	}
	if upd.Rating != nil {
		d.Rating = *upd.Rating
	}
	if upd.ImageURL != nil {
		d.ImageURL = *upd.ImageURL
	}
	if upd.Featured != nil {
		d.Featured = *upd.Featured
	}
	if upd.Available != nil {
		d.Available = *upd.Available
	}

	s.destinations[id] = d
	return &d, nil
}

// SearchDestinations returns available destinations whose name, country or
// description contains query, case-insensitively. An empty query matches all
// available destinations.
func (s *Store) SearchDestinations(ctx context.Context, query string) ([]*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	var out []*models.Destination
	for _, id := range s.destinationOrder {
		d := s.destinations[id]
		if !d.Available {
			continue
		}
		if q != "" && !destinationMatches(&d, q) {
			continue
		}
		out = append(out, &d)
	}
	return out, nil
}

func destinationMatches(d *models.Destination, q string) bool {
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Country), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}
