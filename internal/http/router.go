// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/http/handlers"
	"tripdeck/internal/http/middleware"
	"tripdeck/internal/maps"
	"tripdeck/internal/modules/feedback"
	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/modules/tips"
	"tripdeck/internal/modules/video"
)

type RouterDeps struct {
	Itinerary *itinerary.Service
	Tips      *tips.Service
	Video     *video.Service
	Places    *maps.PlacesService
	Routes    *maps.RouteService
	Feedback  *feedback.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary)
	r.POST("/api/itineraries", itineraryHandler.Create)
	r.GET("/api/itineraries/:id", itineraryHandler.Get)
	r.POST("/api/itineraries/:id/modify", itineraryHandler.Modify)

	destinationHandler := handlers.NewDestinationHandler(deps.Tips, deps.Video, deps.Places, deps.Routes, deps.Itinerary, deps.Feedback)
	r.GET("/api/destinations/:name/tips", destinationHandler.Tips)
	r.GET("/api/destinations/:name/videos", destinationHandler.Videos)
	r.GET("/api/destinations/:name/attractions", destinationHandler.Attractions)
	r.GET("/api/destinations/:name/insights", destinationHandler.Insights)
	r.GET("/api/routes", destinationHandler.Route)

	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback)
	r.POST("/api/feedback", feedbackHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
