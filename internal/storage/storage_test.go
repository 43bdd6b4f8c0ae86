package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"danubio/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := zerolog.Nop()
	return NewStore(&logger)
}

func TestSeedRunsOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	destinations, err := s.GetDestinations(ctx)
	require.NoError(t, err)
	require.Len(t, destinations, 3)

	experiences, err := s.GetExperiences(ctx)
	require.NoError(t, err)
	assert.Len(t, experiences, 4)

	testimonials, err := s.GetTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 3)

	// Seeded records went through the normal create path.
	for _, d := range destinations {
		assert.NotZero(t, d.ID)
		assert.False(t, d.CreatedAt.IsZero())
		assert.True(t, d.Featured)
		assert.True(t, d.Available)
	}
}

func TestIDsUniqueAcrossKinds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booking, err := s.CreateBooking(ctx, models.NewBooking{ItemID: 1, ItemType: models.ItemTypeDestination, CustomerName: "Anna", CustomerEmail: "anna@example.com"})
	require.NoError(t, err)
	inquiry, err := s.CreateInquiry(ctx, models.NewInquiry{Name: "Ben", Email: "ben@example.com", Message: "hi"})
	require.NoError(t, err)
	user, err := s.CreateUser(ctx, models.NewUser{Username: "carol", Password: "secret"})
	require.NoError(t, err)

	seen := make(map[int64]string)
	record := func(id int64, kind string) {
		prev, dup := seen[id]
		assert.Falsef(t, dup, "id %d assigned to both %s and %s", id, prev, kind)
		seen[id] = kind
	}

	destinations, _ := s.GetDestinations(ctx)
	for _, d := range destinations {
		record(d.ID, "destination")
	}
	experiences, _ := s.GetExperiences(ctx)
	for _, e := range experiences {
		record(e.ID, "experience")
	}
	testimonials, _ := s.GetTestimonials(ctx)
	for _, tm := range testimonials {
		record(tm.ID, "testimonial")
	}
	record(booking.ID, "booking")
	record(inquiry.ID, "inquiry")
	record(user.ID, "user")
}

func TestConcurrentCreatesProduceDistinctIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q, err := s.CreateInquiry(ctx, models.NewInquiry{
					Name:    fmt.Sprintf("w%d-%d", w, i),
					Email:   "load@example.com",
					Message: "ping",
				})
				if err == nil {
					ids <- q.ID
				}
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestUserLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.NewUser{Username: "dora", Password: "pw"})
	require.NoError(t, err)

	byID, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "dora", byID.Username)

	byName, err := s.GetUserByUsername(ctx, "dora")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
