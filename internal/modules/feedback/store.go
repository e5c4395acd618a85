// README: Feedback persistence backed by Postgres.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles feedback persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one feedback row.
func (s *Store) Insert(ctx context.Context, fb *Feedback) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO feedback
			(itinerary_id, destination, rating, comments,
			 liked_places, disliked_places, budget_accuracy, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, fb.ItineraryID, fb.Destination, fb.Rating, fb.Comments,
		fb.LikedPlaces, fb.DislikedPlaces, fb.BudgetAccuracy, time.Now())
	if err != nil {
		return fmt.Errorf("feedback insert: %w", err)
	}
	return nil
}

// DestinationInsights returns the ten most-recommended liked places for a
// destination with their average rating and budget-accuracy score.
func (s *Store) DestinationInsights(ctx context.Context, destination string) ([]Insight, error) {
	rows, err := s.db.Query(ctx, `
		SELECT place,
		       COUNT(*)             AS recommendation_count,
		       AVG(rating)          AS avg_rating,
		       AVG(budget_accuracy) AS budget_accuracy_score
		FROM feedback, unnest(liked_places) AS place
		WHERE LOWER(destination) = LOWER($1)
		GROUP BY place
		ORDER BY recommendation_count DESC
		LIMIT 10
	`, destination)
	if err != nil {
		return nil, fmt.Errorf("feedback insights: %w", err)
	}
	defer rows.Close()

	var out []Insight
	for rows.Next() {
		var in Insight
		if err := rows.Scan(&in.Place, &in.RecommendationCount, &in.AvgRating, &in.BudgetAccuracyScore); err != nil {
			return nil, fmt.Errorf("feedback insights scan: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
