package models

import "time"

type Destination struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // per night, whole currency units
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Experience struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // flat, per guest
	Duration    string    `json:"duration"`
	GroupSize   string    `json:"group_size"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Testimonial struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Location  string    `json:"location"`
	Content   string    `json:"content"`
	Rating    float64   `json:"rating"`
	ImageURL  string    `json:"image_url"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDestination carries the caller-settable fields for destination creation.
// Nil Featured defaults to false, nil Available to true.
type NewDestination struct {
	Name        string
	Country     string
	Description string
	Price       int64
	Rating      float64
	ImageURL    string
	Featured    *bool
	Available   *bool
}

// DestinationUpdate is a partial update; only non-nil fields are merged.
type DestinationUpdate struct {
	Name        *string
	Country     *string
	Description *string
	Price       *int64
	Rating      *float64
	ImageURL    *string
	Featured    *bool
	Available   *bool
}

type NewExperience struct {
	Title       string
	Description string
	Price       int64
	Duration    string
	GroupSize   string
	Category    string
	Icon        string
	Available   *bool
}

type NewTestimonial struct {
	Author   string
	Location string
	Content  string
	Rating   float64
	ImageURL string
	Featured *bool
}
