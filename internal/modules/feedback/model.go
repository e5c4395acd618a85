// README: User feedback rows and validation sentinels.
package feedback

import (
	"errors"
	"time"
)

var (
	ErrBadRequest = errors.New("bad feedback request")
)

// Feedback is one user's verdict on a generated itinerary.
type Feedback struct {
	ItineraryID    string    `json:"itinerary_id"`
	Destination    string    `json:"destination"`
	Rating         int       `json:"rating"` // 1..5
	Comments       string    `json:"comments"`
	LikedPlaces    []string  `json:"liked_places"`
	DislikedPlaces []string  `json:"disliked_places"`
	BudgetAccuracy int       `json:"budget_accuracy"` // 1..5
	CreatedAt      time.Time `json:"created_at"`
}

// Insight aggregates feedback for one liked place at a destination.
type Insight struct {
	Place               string  `json:"place"`
	RecommendationCount int     `json:"recommendation_count"`
	AvgRating           float64 `json:"avg_rating"`
	BudgetAccuracyScore float64 `json:"budget_accuracy_score"`
}
