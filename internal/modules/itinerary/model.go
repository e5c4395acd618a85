// README: Itinerary aggregate: daily plans, activities, budget tiers.
package itinerary

import (
	"errors"

	"tripdeck/internal/types"
)

var (
	ErrNotFound   = errors.New("itinerary not found")
	ErrBadRequest = errors.New("bad itinerary request")
)

// BudgetType is the named tier used to generate itinerary variants.
type BudgetType string

const (
	BudgetFriendly BudgetType = "Budget-Friendly"
	BudgetStandard BudgetType = "Standard"
	BudgetPremium  BudgetType = "Premium"
)

// Defaults substituted when extraction finds nothing. Costs get a random
// value instead (see applyDefaults).
const (
	defaultTime     = "9:00 AM"
	defaultDuration = "2-3 hours"
	defaultPlace    = "Local Area"
)

// Activity is one scheduled item within a day. It is a loosely-typed record:
// every field is best-effort scraped text with an ad hoc default when absent.
type Activity struct {
	Time     string       `json:"time"`
	Title    string       `json:"activity"`
	Duration string       `json:"duration"`
	Cost     types.Rupees `json:"cost"`
	Place    string       `json:"place,omitempty"`
	Details  string       `json:"details"`
	Lat      float64      `json:"lat,omitempty"`
	Lng      float64      `json:"lng,omitempty"`

	InfluencerRecommended   bool `json:"influencer_recommended"`
	VideoRecommended        bool `json:"video_recommended"`
	HotelRecommendation     bool `json:"hotel_recommendation"`
	TransportRecommendation bool `json:"transport_recommendation"`
	FlightRecommendation    bool `json:"flight_recommendation"`
}

// DailyPlan holds the ordered activities of one day.
type DailyPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// DataSources records where an itinerary's content came from.
type DataSources struct {
	AIPowered      bool `json:"ai_powered"`
	TemplateBased  bool `json:"template_based"`
	InfluencerTips int  `json:"influencer_tips"`
	VideoContent   int  `json:"video_content"`
}

// Itinerary is the full multi-day travel plan.
type Itinerary struct {
	ID                  types.ID     `json:"id"`
	Destination         string       `json:"destination"`
	Duration            int          `json:"duration"`
	Budget              types.Rupees `json:"budget"`
	BudgetType          BudgetType   `json:"budget_type"`
	TotalCost           types.Rupees `json:"total_cost"`
	DailyPlans          []DailyPlan  `json:"daily_plans"`
	AIGenerated         bool         `json:"ai_generated"`
	DataSources         DataSources  `json:"data_sources"`
	ModificationApplied string       `json:"modification_applied,omitempty"`
}

// totalCost sums every activity cost across all days.
func totalCost(plans []DailyPlan) types.Rupees {
	var sum types.Rupees
	for _, day := range plans {
		for _, a := range day.Activities {
			sum += a.Cost
		}
	}
	return sum
}
