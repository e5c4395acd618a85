// README: Video content store: Redis cache plus warehouse archive.
package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/redis/go-redis/v9"
)

// cacheTTL matches the original seven-day freshness window for vlog metadata.
const cacheTTL = 7 * 24 * time.Hour

const archiveTable = "youtube_content"

// ErrCacheMiss is returned when no fresh cached content exists.
var ErrCacheMiss = errors.New("video content not cached")

// Store caches fetched vlog metadata in Redis and archives it to the
// warehouse for offline analytics.
type Store struct {
	redis   *redis.Client
	bq      *bigquery.Client
	dataset string
}

func NewStore(redis *redis.Client, bq *bigquery.Client, dataset string) *Store {
	return &Store{redis: redis, bq: bq, dataset: dataset}
}

func cacheKey(destination string) string {
	return "videos:" + strings.ToLower(strings.TrimSpace(destination))
}

// Cached returns previously fetched content for the destination, or
// ErrCacheMiss when absent or expired.
func (s *Store) Cached(ctx context.Context, destination string) ([]Content, error) {
	raw, err := s.redis.Get(ctx, cacheKey(destination)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("video cache get: %w", err)
	}
	var contents []Content
	if err := json.Unmarshal(raw, &contents); err != nil {
		return nil, fmt.Errorf("video cache decode: %w", err)
	}
	return contents, nil
}

// SaveCache stores the contents under the destination key with the standard TTL.
func (s *Store) SaveCache(ctx context.Context, destination string, contents []Content) error {
	raw, err := json.Marshal(contents)
	if err != nil {
		return fmt.Errorf("video cache encode: %w", err)
	}
	return s.redis.Set(ctx, cacheKey(destination), raw, cacheTTL).Err()
}

// archiveRow is the warehouse shape of one vlog fetch.
type archiveRow struct {
	Location    string    `bigquery:"location"`
	VideoID     string    `bigquery:"video_id"`
	Title       string    `bigquery:"title"`
	Channel     string    `bigquery:"channel"`
	Thumbnail   string    `bigquery:"thumbnail_url"`
	PublishedAt string    `bigquery:"published_at"`
	ViewCount   int64     `bigquery:"view_count"`
	LikeCount   int64     `bigquery:"like_count"`
	Locations   string    `bigquery:"locations"`
	CreatedAt   time.Time `bigquery:"created_at"`
}

// Archive streams the fetched contents into the warehouse table.
func (s *Store) Archive(ctx context.Context, destination string, contents []Content) error {
	if len(contents) == 0 {
		return nil
	}
	rows := make([]*archiveRow, 0, len(contents))
	now := time.Now()
	for _, c := range contents {
		locs, err := json.Marshal(c.Locations)
		if err != nil {
			return fmt.Errorf("video archive encode: %w", err)
		}
		rows = append(rows, &archiveRow{
			Location:    destination,
			VideoID:     c.VideoID,
			Title:       c.Title,
			Channel:     c.Channel,
			Thumbnail:   c.Thumbnail,
			PublishedAt: c.PublishedAt,
			ViewCount:   int64(c.ViewCount),
			LikeCount:   int64(c.LikeCount),
			Locations:   string(locs),
			CreatedAt:   now,
		})
	}
	ins := s.bq.Dataset(s.dataset).Table(archiveTable).Inserter()
	if err := ins.Put(ctx, rows); err != nil {
		return fmt.Errorf("video archive insert: %w", err)
	}
	return nil
}
