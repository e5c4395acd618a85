// README: Destination content handlers (tips, videos, attractions, insights).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/maps"
	"tripdeck/internal/modules/feedback"
	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/modules/tips"
	"tripdeck/internal/modules/video"
)

const destinationTimeout = 30 * time.Second

type DestinationHandler struct {
	tips        *tips.Service
	videos      *video.Service
	places      *maps.PlacesService
	routes      *maps.RouteService
	itineraries *itinerary.Service
	feedback    *feedback.Service
}

func NewDestinationHandler(
	tipSvc *tips.Service,
	videoSvc *video.Service,
	placesSvc *maps.PlacesService,
	routeSvc *maps.RouteService,
	itinerarySvc *itinerary.Service,
	feedbackSvc *feedback.Service,
) *DestinationHandler {
	return &DestinationHandler{
		tips:        tipSvc,
		videos:      videoSvc,
		places:      placesSvc,
		routes:      routeSvc,
		itineraries: itinerarySvc,
		feedback:    feedbackSvc,
	}
}

func destinationParam(c *gin.Context) (string, bool) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return "", false
	}
	return name, true
}

// Tips handles GET /api/destinations/:name/tips.
func (h *DestinationHandler) Tips(c *gin.Context) {
	name, ok := destinationParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), destinationTimeout)
	defer cancel()

	rows := h.tips.ByDestination(ctx, name)
	writeJSON(c, http.StatusOK, gin.H{"destination": name, "tips": rows})
}

// Videos handles GET /api/destinations/:name/videos.
func (h *DestinationHandler) Videos(c *gin.Context) {
	name, ok := destinationParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), destinationTimeout)
	defer cancel()

	content := h.videos.TravelContent(ctx, name)
	writeJSON(c, http.StatusOK, gin.H{"destination": name, "videos": content})
}

// Attractions handles GET /api/destinations/:name/attractions. Places API
// results come first; when that fails the model-sourced name list still
// gives the client something to show.
func (h *DestinationHandler) Attractions(c *gin.Context) {
	name, ok := destinationParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), destinationTimeout)
	defer cancel()

	if h.places != nil {
		if found, err := h.places.NearbyAttractions(ctx, name); err == nil && len(found) > 0 {
			writeJSON(c, http.StatusOK, gin.H{
				"destination": name,
				"attractions": found,
				"photos":      h.attractionPhotos(ctx, found),
			})
			return
		}
	}
	names := h.itineraries.Attractions(ctx, name)
	writeJSON(c, http.StatusOK, gin.H{"destination": name, "attractions": names})
}

// attractionPhotos collects photo references for the top results. Best
// effort; a Places failure just means fewer photos.
func (h *DestinationHandler) attractionPhotos(ctx context.Context, found []maps.Attraction) map[string][]string {
	photos := make(map[string][]string)
	for i, a := range found {
		if i >= 3 {
			break
		}
		refs, err := h.places.PlacePhotos(ctx, a.PlaceID)
		if err != nil || len(refs) == 0 {
			continue
		}
		photos[a.Name] = refs
	}
	return photos
}

// Route handles GET /api/routes?origin=..&destination=.. with driving
// duration and distance between two places.
func (h *DestinationHandler) Route(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), destinationTimeout)
	defer cancel()

	info, err := h.routes.GetRouteInfo(ctx, origin, destination)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, info)
}

// Insights handles GET /api/destinations/:name/insights.
func (h *DestinationHandler) Insights(c *gin.Context) {
	name, ok := destinationParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), destinationTimeout)
	defer cancel()

	insights, err := h.feedback.DestinationInsights(ctx, name)
	if err != nil {
		writeFeedbackError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"destination": name, "insights": insights})
}
