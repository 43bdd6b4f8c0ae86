package models

import "time"

type Booking struct {
	ID            int64     `json:"id"`
	ItemID        int64     `json:"item_id"`
	ItemType      string    `json:"item_type"` // destination, experience
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	CheckinDate   string    `json:"checkin_date,omitempty"`  // YYYY-MM-DD
	CheckoutDate  string    `json:"checkout_date,omitempty"` // YYYY-MM-DD
	Guests        int       `json:"guests"`
	TotalPrice    int64     `json:"total_price"`
	Status        string    `json:"status"` // pending, confirmed, cancelled
	CreatedAt     time.Time `json:"created_at"`
}

// NewBooking carries the caller-settable fields for booking creation.
// Status is not settable; every booking starts pending. The store does not
// verify that ItemID references an existing record, that is the caller's job.
type NewBooking struct {
	ItemID        int64
	ItemType      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CheckinDate   string
	CheckoutDate  string
	Guests        int
	TotalPrice    int64
}
