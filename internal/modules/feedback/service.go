// README: Feedback service; validates and persists user verdicts.
package feedback

import (
	"context"
	"strings"
)

// Service validates and stores feedback, and serves destination insights.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Store(ctx context.Context, fb *Feedback) error {
	if strings.TrimSpace(fb.ItineraryID) == "" || strings.TrimSpace(fb.Destination) == "" {
		return ErrBadRequest
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return ErrBadRequest
	}
	if fb.BudgetAccuracy != 0 && (fb.BudgetAccuracy < 1 || fb.BudgetAccuracy > 5) {
		return ErrBadRequest
	}
	return s.store.Insert(ctx, fb)
}

func (s *Service) DestinationInsights(ctx context.Context, destination string) ([]Insight, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, ErrBadRequest
	}
	return s.store.DestinationInsights(ctx, destination)
}
