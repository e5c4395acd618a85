// README: Itinerary generation, selection and modification orchestration.
package itinerary

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"tripdeck/internal/ai"
	"tripdeck/internal/modules/tips"
	"tripdeck/internal/modules/video"
	"tripdeck/internal/types"
)

// TipSource supplies influencer recommendations for a destination.
type TipSource interface {
	ByDestination(ctx context.Context, destination string) []tips.Tip
}

// VideoSource supplies travel-vlog insights for a destination.
type VideoSource interface {
	TravelContent(ctx context.Context, destination string) []video.Content
}

// Geocoder resolves a place name to coordinates. Optional: a nil Geocoder
// skips coordinate enrichment.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (float64, float64, error)
}

// SessionStore persists itineraries between the generate and modify calls.
type SessionStore interface {
	Save(ctx context.Context, it *Itinerary) error
	Get(ctx context.Context, id types.ID) (*Itinerary, error)
}

// Service builds itineraries from model output, falling back to templates
// whenever the model is unavailable or its output is unusable. Every public
// method that returns an itinerary returns a structurally valid one.
type Service struct {
	llm    ai.Provider
	tips   TipSource
	videos VideoSource
	geo    Geocoder
	store  SessionStore
}

func NewService(llm ai.Provider, tipSrc TipSource, videoSrc VideoSource, geo Geocoder, store SessionStore) *Service {
	return &Service{llm: llm, tips: tipSrc, videos: videoSrc, geo: geo, store: store}
}

type budgetVariation struct {
	budget types.Rupees
	tier   BudgetType
	style  string
}

func budgetVariations(budget types.Rupees) []budgetVariation {
	return []budgetVariation{
		{budget * 8 / 10, BudgetFriendly, "economical"},
		{budget, BudgetStandard, "balanced"},
		{budget * 13 / 10, BudgetPremium, "luxury"},
	}
}

func validateRequest(destination string, duration int, budget types.Rupees) error {
	switch {
	case strings.TrimSpace(destination) == "":
		return ErrBadRequest
	case duration < 1 || duration > 30:
		return ErrBadRequest
	case budget <= 0:
		return ErrBadRequest
	}
	return nil
}

// GenerateOptions produces one itinerary per budget tier. A tier whose
// generation or parse fails is skipped; when every tier fails the whole set
// degrades to template fallbacks, so callers always get options back.
func (s *Service) GenerateOptions(ctx context.Context, destination string, duration int, budget types.Rupees, themes []string) ([]*Itinerary, error) {
	if err := validateRequest(destination, duration, budget); err != nil {
		return nil, err
	}

	var (
		tipRows []tips.Tip
		videos  []video.Content
	)
	if s.tips != nil {
		tipRows = s.tips.ByDestination(ctx, destination)
	}
	if s.videos != nil {
		videos = s.videos.TravelContent(ctx, destination)
	}

	var options []*Itinerary
	for _, v := range budgetVariations(budget) {
		it, err := s.generateOne(ctx, destination, duration, v, themes, tipRows, videos)
		if err != nil {
			log.Printf("itinerary: %s tier for %s skipped: %v", v.tier, destination, err)
			continue
		}
		options = append(options, it)
	}
	if len(options) == 0 {
		options = fallbackOptions(destination, duration, budget)
	}

	for _, it := range options {
		it.ID = types.ID(uuid.NewString())
		s.enrich(ctx, it)
		if err := s.store.Save(ctx, it); err != nil {
			log.Printf("itinerary: save %s: %v", it.ID, err)
		}
	}
	return options, nil
}

// Generate returns the single best-fitting option for the requested budget.
func (s *Service) Generate(ctx context.Context, destination string, duration int, budget types.Rupees, themes []string) (*Itinerary, error) {
	options, err := s.GenerateOptions(ctx, destination, duration, budget, themes)
	if err != nil {
		return nil, err
	}
	return SelectBest(options, budget), nil
}

// Load retrieves a previously generated itinerary by id.
func (s *Service) Load(ctx context.Context, id types.ID) (*Itinerary, error) {
	return s.store.Get(ctx, id)
}

var errUnparsable = errors.New("no day structure in model response")

func (s *Service) generateOne(ctx context.Context, destination string, duration int, v budgetVariation, themes []string, tipRows []tips.Tip, videos []video.Content) (*Itinerary, error) {
	text, err := s.generateText(ctx, buildGenerationPrompt(destination, duration, v.budget, themes, v.style, tipRows, videos))
	if err != nil {
		return nil, err
	}

	plans := parseResponse(text, duration)
	if len(plans) == 0 {
		return nil, errUnparsable
	}
	markRecommendations(plans, tipRows, videos)

	return &Itinerary{
		Destination: destination,
		Duration:    duration,
		Budget:      v.budget,
		BudgetType:  v.tier,
		TotalCost:   totalCost(plans),
		DailyPlans:  plans,
		AIGenerated: true,
		DataSources: DataSources{
			AIPowered:      true,
			InfluencerTips: len(tipRows),
			VideoContent:   len(videos),
		},
	}, nil
}

func (s *Service) generateText(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil {
		return "", ai.ErrNoProvider
	}
	return s.llm.GenerateText(ctx, prompt)
}

// SelectBest prefers the option closest to the requested budget among those
// within 110% of it, otherwise the cheapest overall.
func SelectBest(options []*Itinerary, budget types.Rupees) *Itinerary {
	if len(options) == 0 {
		return nil
	}
	limit := budget * 11 / 10
	var best, cheapest *Itinerary
	for _, opt := range options {
		if cheapest == nil || opt.TotalCost < cheapest.TotalCost {
			cheapest = opt
		}
		if opt.TotalCost > limit {
			continue
		}
		if best == nil || absRupees(budget-opt.TotalCost) < absRupees(budget-best.TotalCost) {
			best = opt
		}
	}
	if best != nil {
		return best
	}
	return cheapest
}

func absRupees(r types.Rupees) types.Rupees {
	if r < 0 {
		return -r
	}
	return r
}

// Modify regenerates a stored itinerary according to a free-form request.
// Any failure past the initial lookup returns the original unchanged.
func (s *Service) Modify(ctx context.Context, id types.ID, request string) (*Itinerary, error) {
	original, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(request) == "" {
		return original, nil
	}

	intent := s.analyzeIntent(ctx, original, request)
	budget, tier, themes := applyIntent(original, intent)

	text, err := s.generateText(ctx, buildModificationPrompt(original, request, intent, budget, tier, themes))
	if err != nil {
		log.Printf("itinerary: modify %s: keeping original: %v", id, err)
		return original, nil
	}

	plans := parseResponse(text, original.Duration)
	aiGenerated := true
	sources := original.DataSources
	if len(plans) == 0 {
		plans = fallbackPlans(original.Destination, original.Duration, budget, tier)
		aiGenerated = false
		sources = DataSources{TemplateBased: true}
	}

	modified := &Itinerary{
		ID:                  original.ID,
		Destination:         original.Destination,
		Duration:            original.Duration,
		Budget:              budget,
		BudgetType:          tier,
		TotalCost:           totalCost(plans),
		DailyPlans:          plans,
		AIGenerated:         aiGenerated,
		DataSources:         sources,
		ModificationApplied: request,
	}
	s.enrich(ctx, modified)
	if err := s.store.Save(ctx, modified); err != nil {
		log.Printf("itinerary: save modified %s: %v", id, err)
	}
	return modified, nil
}

// analyzeIntent restates the request as key:value fields. An empty map
// means analysis failed and the modification proceeds on the raw request.
func (s *Service) analyzeIntent(ctx context.Context, it *Itinerary, request string) map[string]string {
	text, err := s.generateText(ctx, buildIntentPrompt(it, request))
	if err != nil {
		log.Printf("itinerary: intent analysis failed: %v", err)
		return map[string]string{}
	}
	return parseIntent(text)
}

// applyIntent maps analysed fields onto concrete generation parameters:
// budget moves by 20% on increase/decrease, accommodation preference picks
// the tier, NEW_THEMES replaces the theme list.
func applyIntent(it *Itinerary, intent map[string]string) (types.Rupees, BudgetType, []string) {
	// Substring match: the model often elaborates ("increase by 20%").
	budget := it.Budget
	adjust := strings.ToLower(intent["BUDGET_ADJUSTMENT"])
	switch {
	case strings.Contains(adjust, "increase"):
		budget = budget * 12 / 10
	case strings.Contains(adjust, "decrease"):
		budget = budget * 8 / 10
	}

	tier := it.BudgetType
	switch strings.ToLower(intent["ACCOMMODATION_PREFERENCE"]) {
	case "budget":
		tier = BudgetFriendly
	case "standard":
		tier = BudgetStandard
	case "premium":
		tier = BudgetPremium
	}

	var themes []string
	if raw := intent["NEW_THEMES"]; raw != "" && !strings.EqualFold(raw, "none") {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				themes = append(themes, t)
			}
		}
	}
	return budget, tier, themes
}

// Attractions lists named sights for a destination, asking the model first
// and topping up from curated defaults.
func (s *Service) Attractions(ctx context.Context, destination string) []string {
	var text string
	if s.llm != nil {
		var err error
		text, err = s.llm.GenerateText(ctx,
			"List the top tourist attractions in "+destination+", one per line, names only.")
		if err != nil {
			log.Printf("itinerary: attractions for %s: %v", destination, err)
		}
	}
	return extractAttractions(text, destination)
}

// markRecommendations flags activities that mention an influencer tip's
// place or a location surfaced from travel videos.
func markRecommendations(plans []DailyPlan, tipRows []tips.Tip, videos []video.Content) {
	var videoPlaces []string
	for _, v := range videos {
		videoPlaces = append(videoPlaces, v.Locations...)
	}
	for di := range plans {
		for j := range plans[di].Activities {
			act := &plans[di].Activities[j]
			haystack := strings.ToLower(act.Title + " " + act.Place + " " + act.Details)
			for _, t := range tipRows {
				if t.Place != "" && strings.Contains(haystack, strings.ToLower(t.Place)) {
					act.InfluencerRecommended = true
					break
				}
			}
			for _, p := range videoPlaces {
				if len(p) > 3 && strings.Contains(haystack, strings.ToLower(p)) {
					act.VideoRecommended = true
					break
				}
			}
		}
	}
}

// enrich resolves coordinates for activity places, best effort and capped
// so a long itinerary does not fan out into dozens of geocoding calls.
func (s *Service) enrich(ctx context.Context, it *Itinerary) {
	if s.geo == nil {
		return
	}
	const maxLookups = 12
	resolved := make(map[string][2]float64)
	lookups := 0
	for di := range it.DailyPlans {
		for j := range it.DailyPlans[di].Activities {
			act := &it.DailyPlans[di].Activities[j]
			if act.Place == "" || act.Place == defaultPlace {
				continue
			}
			key := strings.ToLower(act.Place)
			if coords, ok := resolved[key]; ok {
				act.Lat, act.Lng = coords[0], coords[1]
				continue
			}
			if lookups >= maxLookups {
				continue
			}
			lookups++
			lat, lng, err := s.geo.Geocode(ctx, act.Place+", "+it.Destination)
			if err != nil {
				continue
			}
			resolved[key] = [2]float64{lat, lng}
			act.Lat, act.Lng = lat, lng
		}
	}
}
