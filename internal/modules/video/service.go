// README: Travel-vlog lookup via the YouTube Data API with cached results.
package video

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const searchLimit = 5

// capSeq matches a run of capitalized words on one line ("Fort Aguada").
const capSeq = `[A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)*`

// locationPatterns pull capitalized place mentions out of video descriptions.
// Best-effort scraping: short matches are discarded later.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`visit(?:ing)?\s+(` + capSeq + `)`),
	regexp.MustCompile(`\bat\s+(` + capSeq + `)`),
	regexp.MustCompile(`\bin\s+(` + capSeq + `)`),
	regexp.MustCompile(`[Ll]ocation:[ \t]*(` + capSeq + `)`),
	regexp.MustCompile(`[Pp]laces?(?:\s+to\s+visit)?:[ \t]*(` + capSeq + `)`),
}

// Service fetches travel-vlog metadata for a destination. Results are served
// from the cache when fresh; API failures degrade to an empty list.
type Service struct {
	yt    *youtube.Service
	store *Store
}

// NewService builds the YouTube client with the given API key.
func NewService(ctx context.Context, apiKey string, store *Store) (*Service, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &Service{yt: yt, store: store}, nil
}

// TravelContent returns vlog metadata for the destination. Cache first, then
// a live search; every failure path returns whatever partial data exists.
func (s *Service) TravelContent(ctx context.Context, destination string) []Content {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil
	}

	cached, err := s.store.Cached(ctx, destination)
	if err == nil {
		return cached
	}
	if err != ErrCacheMiss {
		log.Printf("video: cache lookup for %q failed: %v", destination, err)
	}

	contents, err := s.search(ctx, destination)
	if err != nil {
		log.Printf("video: search for %q failed: %v", destination, err)
		return nil
	}
	if len(contents) == 0 {
		return nil
	}

	if err := s.store.SaveCache(ctx, destination, contents); err != nil {
		log.Printf("video: cache save for %q failed: %v", destination, err)
	}
	if err := s.store.Archive(ctx, destination, contents); err != nil {
		log.Printf("video: archive for %q failed: %v", destination, err)
	}
	return contents
}

func (s *Service) search(ctx context.Context, destination string) ([]Content, error) {
	resp, err := s.yt.Search.List([]string{"snippet"}).
		Q(fmt.Sprintf("travel vlog %s places to visit", destination)).
		MaxResults(searchLimit).
		Type("video").
		VideoDefinition("high").
		RelevanceLanguage("en").
		VideoDuration("medium").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	var contents []Content
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		c := Content{
			VideoID:     item.Id.VideoId,
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			PublishedAt: item.Snippet.PublishedAt,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			c.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		if err := s.fillDetails(ctx, &c); err != nil {
			log.Printf("video: details for %s failed: %v", c.VideoID, err)
			continue
		}
		contents = append(contents, c)
	}
	return contents, nil
}

// fillDetails loads statistics and extracts location mentions from the full
// description (search snippets truncate it).
func (s *Service) fillDetails(ctx context.Context, c *Content) error {
	resp, err := s.yt.Videos.List([]string{"statistics", "snippet"}).
		Id(c.VideoID).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("youtube videos: %w", err)
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("video %s not found", c.VideoID)
	}

	item := resp.Items[0]
	if item.Statistics != nil {
		c.ViewCount = item.Statistics.ViewCount
		c.LikeCount = item.Statistics.LikeCount
	}
	if item.Snippet != nil {
		c.Locations = extractLocations(item.Snippet.Description)
	}
	return nil
}

// extractLocations scrapes place mentions from a video description.
func extractLocations(description string) []string {
	seen := make(map[string]bool)
	var locations []string
	for _, re := range locationPatterns {
		for _, m := range re.FindAllStringSubmatch(description, -1) {
			loc := strings.TrimSpace(m[1])
			if len(loc) <= 3 {
				continue
			}
			key := strings.ToLower(loc)
			if seen[key] {
				continue
			}
			seen[key] = true
			locations = append(locations, loc)
		}
	}
	return locations
}
