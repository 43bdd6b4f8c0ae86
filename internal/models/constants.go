package models

const (
	ItemTypeDestination = "destination"
	ItemTypeExperience  = "experience"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	InquiryStatusNew       = "new"
	InquiryStatusResponded = "responded"
	InquiryStatusClosed    = "closed"
)

const (
	// DateLayout is the wire format for checkin/checkout dates.
	DateLayout = "2006-01-02"

	// MinGuests and MaxGuests bound the guests field at the input layer.
	MinGuests = 1
	MaxGuests = 10

	// DefaultThrottleLimit is the number of public submissions allowed per window.
	DefaultThrottleLimit = 10

	// DefaultThrottleWindow is the throttle window in seconds.
	DefaultThrottleWindow = 60
)

// ValidItemType reports whether t is a known booking item tag.
func ValidItemType(t string) bool {
	return t == ItemTypeDestination || t == ItemTypeExperience
}

// ValidBookingStatus reports whether s is a status a booking may transition to.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidInquiryStatus reports whether s is a status an inquiry may transition to.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusResponded, InquiryStatusClosed:
		return true
	}
	return false
}
