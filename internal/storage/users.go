package storage

import (
	"context"

	"danubio/internal/models"
)

// GetUser returns the user with the given id, or nil when unknown.
func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username, or nil when
// unknown.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if u := s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user. Usernames are expected unique; the caller
// checks with GetUserByUsername first.
func (s *Store) CreateUser(ctx context.Context, input models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:       s.nextID(),
		Username: input.Username,
		Password: input.Password,
	}

	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return &u, nil
}
