package storage

import (
	"context"

	"danubio/internal/models"
)

// seed inserts the fixed catalog dataset through the normal create path, so
// seeded records consume ids from the shared sequence and receive creation
// timestamps. It runs exactly once, from NewStore.
func (s *Store) seed() {
	ctx := context.Background()
	featured := true

	destinations := []models.NewDestination{
		{
			Name:        "Budapest",
			Country:     "Hungary",
			Description: "Pearl of the Danube with stunning architecture and thermal baths",
			Price:       89,
			Rating:      4.8,
			ImageURL:    "https://images.unsplash.com/photo-1541849546-216549ae216d?auto=format&fit=crop&w=800&h=600",
			Featured:    &featured,
		},
		{
			Name:        "Bratislava",
			Country:     "Slovakia",
			Description: "Medieval charm meets modern culture in Slovakia's capital",
			Price:       65,
			Rating:      4.6,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=800&h=600",
			Featured:    &featured,
		},
		{
			Name:        "Vienna",
			Country:     "Austria",
			Description: "Imperial city of music, art, and coffee culture",
			Price:       120,
			Rating:      4.9,
			ImageURL:    "https://images.unsplash.com/photo-1516550893923-42d28e5677af?auto=format&fit=crop&w=800&h=600",
			Featured:    &featured,
		},
	}
	for _, d := range destinations {
		_, _ = s.CreateDestination(ctx, d)
	}

	experiences := []models.NewExperience{
		{
			Title:       "Danube River Cruise",
			Description: "Luxury 7-day cruise through 4 countries with premium dining and entertainment",
			Price:       1299,
			Duration:    "7 days",
			GroupSize:   "Max 20",
			Category:    "cruise",
			Icon:        "ship",
		},
		{
			Title:       "Photography Tour",
			Description: "Capture stunning landscapes and architecture with professional guidance",
			Price:       159,
			Duration:    "1 day",
			GroupSize:   "Max 8",
			Category:    "photography",
			Icon:        "camera",
		},
		{
			Title:       "Culinary Journey",
			Description: "Taste authentic regional cuisine and local wines with expert guides",
			Price:       459,
			Duration:    "3 days",
			GroupSize:   "Max 12",
			Category:    "culinary",
			Icon:        "utensils",
		},
		{
			Title:       "Cultural Heritage",
			Description: "Explore castles, museums, and UNESCO World Heritage sites",
			Price:       299,
			Duration:    "2 days",
			GroupSize:   "Max 15",
			Category:    "culture",
			Icon:        "landmark",
		},
	}
	for _, e := range experiences {
		_, _ = s.CreateExperience(ctx, e)
	}

	testimonials := []models.NewTestimonial{
		{
			Author:   "Sarah Johnson",
			Location: "New York, USA",
			Content:  "Every destination was perfectly curated to our interests. The Danube cruise was absolutely magical.",
			Rating:   5.0,
			ImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=150&h=150",
			Featured: &featured,
		},
		{
			Author:   "Michael Chen",
			Location: "Singapore",
			Content:  "Exceptional service and unforgettable experiences. The platform made booking seamless and the local insights were invaluable.",
			Rating:   5.0,
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=150&h=150",
			Featured: &featured,
		},
		{
			Author:   "Emma Rodriguez",
			Location: "Madrid, Spain",
			Content:  "A perfect blend of culture, history, and luxury. The recommendations helped us discover hidden gems we never would have found.",
			Rating:   5.0,
			ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=150&h=150",
			Featured: &featured,
		},
	}
	for _, t := range testimonials {
		_, _ = s.CreateTestimonial(ctx, t)
	}
}
