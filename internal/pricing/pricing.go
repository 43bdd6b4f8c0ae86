// Package pricing holds the single authoritative booking price rule. Every
// call site computes totals through here rather than re-deriving the formula.
package pricing

import (
	"math"
	"time"

	"danubio/internal/models"
)

// Nights returns the billable night count for a stay. Missing or malformed
// dates count as a single night, and a stay never bills below one night.
func Nights(checkin, checkout string) int64 {
	if checkin == "" || checkout == "" {
		return 1
	}

	in, err := time.Parse(models.DateLayout, checkin)
	if err != nil {
		return 1
	}
	out, err := time.Parse(models.DateLayout, checkout)
	if err != nil {
		return 1
	}

	nights := int64(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// DestinationTotal prices a destination stay: nightly rate times nights times
// guests. Guests are trusted as given; the input layer bounds them.
func DestinationTotal(nightlyPrice int64, nights int64, guests int) int64 {
	return nightlyPrice * nights * int64(guests)
}

// ExperienceTotal prices an experience: flat rate times guests.
func ExperienceTotal(flatPrice int64, guests int) int64 {
	return flatPrice * int64(guests)
}

// BookingTotal dispatches on the booking item tag. Unknown tags price as an
// experience (flat), which keeps the rule total; callers validate the tag
// before reaching here.
func BookingTotal(itemType string, price int64, checkin, checkout string, guests int) int64 {
	if itemType == models.ItemTypeDestination {
		return DestinationTotal(price, Nights(checkin, checkout), guests)
	}
	return ExperienceTotal(price, guests)
}
