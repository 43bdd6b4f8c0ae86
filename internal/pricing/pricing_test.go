package pricing

import (
	"testing"

	"danubio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkin  string
		checkout string
		want     int64
	}{
		{"three nights", "2025-06-01", "2025-06-04", 3},
		{"single night", "2025-06-01", "2025-06-02", 1},
		{"missing checkin", "", "2025-06-04", 1},
		{"missing checkout", "2025-06-01", "", 1},
		{"both missing", "", "", 1},
		{"same day", "2025-06-01", "2025-06-01", 1},
		{"checkout before checkin", "2025-06-04", "2025-06-01", 1},
		{"malformed date", "june 1st", "2025-06-04", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkin, tt.checkout))
		})
	}
}

func TestDestinationTotal(t *testing.T) {
	// 89/night, 3 nights, 2 guests.
	assert.Equal(t, int64(534), DestinationTotal(89, 3, 2))
}

func TestExperienceTotal(t *testing.T) {
	assert.Equal(t, int64(477), ExperienceTotal(159, 3))
}

func TestBookingTotal(t *testing.T) {
	total := BookingTotal(models.ItemTypeDestination, 89, "2025-06-01", "2025-06-04", 2)
	assert.Equal(t, int64(534), total)

	// Missing dates bill a single night.
	total = BookingTotal(models.ItemTypeDestination, 89, "", "", 2)
	assert.Equal(t, int64(178), total)

	total = BookingTotal(models.ItemTypeExperience, 159, "", "", 3)
	assert.Equal(t, int64(477), total)
}
