// README: Tips service; warehouse failures degrade to an empty tip list.
package tips

import (
	"context"
	"log"
	"strings"
)

const defaultLimit = 10

// RowSource supplies tip rows for a destination.
type RowSource interface {
	ByDestination(ctx context.Context, destination string, limit int) ([]Tip, error)
}

// Service serves influencer recommendations for itinerary prompts and the
// read-only API. Warehouse errors are logged and swallowed: tips are an
// auxiliary signal, never a reason to fail a generation.
type Service struct {
	store RowSource
}

func NewService(store RowSource) *Service {
	return &Service{store: store}
}

// ByDestination returns tips for the destination, or nil when the warehouse
// is unreachable or has no rows.
func (s *Service) ByDestination(ctx context.Context, destination string) []Tip {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil
	}
	rows, err := s.store.ByDestination(ctx, destination, defaultLimit)
	if err != nil {
		log.Printf("tips: fetch for %q failed: %v", destination, err)
		return nil
	}
	return rows
}
