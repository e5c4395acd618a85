package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteInfo is the first driving route between two points.
type RouteInfo struct {
	Duration time.Duration `json:"duration_ns"`
	Distance string        `json:"distance"`
	Summary  string        `json:"summary"`
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// GetRouteInfo returns duration and human-readable distance for a driving
// trip from origin to destination.
func (s *RouteService) GetRouteInfo(ctx context.Context, origin, destination string) (*RouteInfo, error) {
	routes, _, err := s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
	})
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return &RouteInfo{
		Duration: leg.Duration,
		Distance: leg.Distance.HumanReadable,
		Summary:  routes[0].Summary,
	}, nil
}
