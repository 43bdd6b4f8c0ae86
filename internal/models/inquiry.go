package models

import "time"

type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Interests string    `json:"interests,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // new, responded, closed
	CreatedAt time.Time `json:"created_at"`
}

// NewInquiry carries the caller-settable fields for inquiry creation.
// Status is not settable; every inquiry starts new.
type NewInquiry struct {
	Name      string
	Email     string
	Phone     string
	Interests string
	Message   string
}
