// README: Redis-backed session store for generated itineraries.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripdeck/internal/types"
)

const sessionTTL = 24 * time.Hour

// Store keeps generated itineraries in Redis so follow-up modification
// requests can retrieve them by id. Entries expire after a day.
type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

func sessionKey(id types.ID) string {
	return "itinerary:" + string(id)
}

func (s *Store) Save(ctx context.Context, it *Itinerary) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("marshal itinerary %s: %w", it.ID, err)
	}
	if err := s.redis.Set(ctx, sessionKey(it.ID), raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save itinerary %s: %w", it.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Itinerary, error) {
	raw, err := s.redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load itinerary %s: %w", id, err)
	}
	var it Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, fmt.Errorf("decode itinerary %s: %w", id, err)
	}
	return &it, nil
}
