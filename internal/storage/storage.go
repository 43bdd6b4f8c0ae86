package storage

import (
	"sync"

	"danubio/internal/models"

	"github.com/rs/zerolog"
)

// Store is the process-wide in-memory catalog store. All entity kinds share a
// single identity sequence, so ids never collide across kinds. State lives for
// the process lifetime only; there is no persistence.
//
// Handlers run on Go's concurrent HTTP server, so every operation takes the
// store lock.
type Store struct {
	mu     sync.RWMutex
	lastID int64

	destinations     map[int64]models.Destination
	destinationOrder []int64

	experiences     map[int64]models.Experience
	experienceOrder []int64

	bookings     map[int64]models.Booking
	bookingOrder []int64

	inquiries    map[int64]models.Inquiry
	inquiryOrder []int64

	testimonials     map[int64]models.Testimonial
	testimonialOrder []int64

	users     map[int64]models.User
	userOrder []int64

	logger *zerolog.Logger
}

// NewStore constructs a store and seeds the fixed catalog dataset before any
// caller can observe it.
func NewStore(logger *zerolog.Logger) *Store {
	s := &Store{
		destinations: make(map[int64]models.Destination),
		experiences:  make(map[int64]models.Experience),
		bookings:     make(map[int64]models.Booking),
		inquiries:    make(map[int64]models.Inquiry),
		testimonials: make(map[int64]models.Testimonial),
		users:        make(map[int64]models.User),
		logger:       logger,
	}
	s.seed()

	logger.Info().
		Int("destinations", len(s.destinations)).
		Int("experiences", len(s.experiences)).
		Int("testimonials", len(s.testimonials)).
		Msg("in-memory store seeded")
	return s
}

// nextID returns the next identity in the shared sequence, starting at 1.
// Callers must hold mu.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}
