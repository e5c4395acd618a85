// README: Feedback validation tests (no database required).
package feedback

import (
	"context"
	"errors"
	"testing"
)

// Validation happens before any store access, so a nil store is safe here.
func TestStore_Validation(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		fb   Feedback
	}{
		{"missing itinerary id", Feedback{Destination: "Goa", Rating: 4}},
		{"missing destination", Feedback{ItineraryID: "abc", Rating: 4}},
		{"rating too low", Feedback{ItineraryID: "abc", Destination: "Goa", Rating: 0}},
		{"rating too high", Feedback{ItineraryID: "abc", Destination: "Goa", Rating: 6}},
		{"budget accuracy out of range", Feedback{ItineraryID: "abc", Destination: "Goa", Rating: 3, BudgetAccuracy: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Store(ctx, &tc.fb); !errors.Is(err, ErrBadRequest) {
				t.Errorf("got %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestDestinationInsights_EmptyDestination(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.DestinationInsights(context.Background(), "  "); !errors.Is(err, ErrBadRequest) {
		t.Errorf("got %v, want ErrBadRequest", err)
	}
}
