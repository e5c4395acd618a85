// README: Itinerary handlers for generate/get/modify.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/types"
)

// Generation fans out to the model once per budget tier, so it gets a much
// longer deadline than a lookup.
const (
	generateTimeout = 90 * time.Second
	modifyTimeout   = 60 * time.Second
	lookupTimeout   = 5 * time.Second
)

type ItineraryHandler struct {
	itineraries *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{itineraries: svc}
}

type createItineraryReq struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      int      `json:"budget"`
	Themes      []string `json:"themes"`
}

type createItineraryResp struct {
	Recommended types.ID               `json:"recommended"`
	Options     []*itinerary.Itinerary `json:"options"`
}

// Create handles POST /api/itineraries. It returns all three budget-tier
// options plus the id of the one best matching the requested budget.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req createItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if req.Duration < 1 || req.Duration > 30 {
		writeError(c, http.StatusBadRequest, "duration must be between 1 and 30 days")
		return
	}
	if req.Budget <= 0 {
		writeError(c, http.StatusBadRequest, "budget must be positive")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	options, err := h.itineraries.GenerateOptions(ctx, req.Destination, req.Duration, types.Rupees(req.Budget), req.Themes)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	best := itinerary.SelectBest(options, types.Rupees(req.Budget))

	writeJSON(c, http.StatusCreated, createItineraryResp{
		Recommended: best.ID,
		Options:     options,
	})
}

// Get handles GET /api/itineraries/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing itinerary id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	it, err := h.itineraries.Load(ctx, types.ID(id))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

type modifyItineraryReq struct {
	Request string `json:"request"`
}

// Modify handles POST /api/itineraries/:id/modify.
func (h *ItineraryHandler) Modify(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing itinerary id")
		return
	}
	var req modifyItineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Request) == "" {
		writeError(c, http.StatusBadRequest, "missing modification request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), modifyTimeout)
	defer cancel()

	it, err := h.itineraries.Modify(ctx, types.ID(id), req.Request)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}
