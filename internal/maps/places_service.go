package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Attraction represents a simplified tourist-attraction result.
type Attraction struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rating           float32 `json:"rating"`
	PlaceID          string  `json:"place_id"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

const attractionRadiusMeters = 5000

// PlacesService handles interactions with the Google Geocoding and Places APIs.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Geocode resolves a free-text location to coordinates.
func (s *PlacesService) Geocode(ctx context.Context, location string) (float64, float64, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", location)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// NearbyAttractions geocodes the location and returns tourist attractions
// within a 5 km radius.
func (s *PlacesService) NearbyAttractions(ctx context.Context, location string) ([]Attraction, error) {
	lat, lng, err := s.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   attractionRadiusMeters,
		Type:     maps.PlaceTypeTouristAttraction,
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	attractions := make([]Attraction, 0, len(resp.Results))
	for _, r := range resp.Results {
		attractions = append(attractions, Attraction{
			Name:             r.Name,
			Address:          r.Vicinity,
			Rating:           r.Rating,
			PlaceID:          r.PlaceID,
			UserRatingsTotal: r.UserRatingsTotal,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
		})
	}
	return attractions, nil
}

// PlacePhotos returns up to 3 photo references for a place. Rendering the
// actual images is left to the caller.
func (s *PlacesService) PlacePhotos(ctx context.Context, placeID string) ([]string, error) {
	resp, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskPhotos},
	})
	if err != nil {
		return nil, fmt.Errorf("place details api error: %w", err)
	}

	var refs []string
	for _, photo := range resp.Photos {
		refs = append(refs, photo.PhotoReference)
		if len(refs) >= 3 {
			break
		}
	}
	return refs, nil
}
