// README: Warehouse queries for influencer recommendations.
package tips

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

const recommendationsTable = "influencer_recommendations"

// Store reads influencer recommendation rows from BigQuery.
type Store struct {
	bq      *bigquery.Client
	dataset string
}

// NewStore returns a Store reading from the given dataset.
func NewStore(bq *bigquery.Client, dataset string) *Store {
	return &Store{bq: bq, dataset: dataset}
}

// ByDestination returns up to limit tip rows for the destination,
// case-insensitive.
func (s *Store) ByDestination(ctx context.Context, destination string, limit int) ([]Tip, error) {
	q := s.bq.Query(fmt.Sprintf(`
		SELECT platform, influencer_name, place_name, recommendation,
		       category, budget_range, best_time, latitude, longitude
		FROM `+"`%s.%s.%s`"+`
		WHERE LOWER(destination) = LOWER(@destination)
		LIMIT @lim
	`, s.bq.Project(), s.dataset, recommendationsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "destination", Value: destination},
		{Name: "lim", Value: int64(limit)},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("tips query: %w", err)
	}

	var out []Tip
	for {
		var t Tip
		err := it.Next(&t)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tips row: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}
