// README: Template-based plan synthesis used when no model text is usable.
package itinerary

import (
	"fmt"
	"strings"

	"tripdeck/internal/types"
)

// destTemplate carries curated content for destinations we know well; other
// destinations get a synthesized generic template.
type destTemplate struct {
	attractions []string
	foods       []string
	hotels      map[BudgetType]string
	transport   map[BudgetType]string
}

var destTemplates = map[string]destTemplate{
	"hyderabad": {
		attractions: []string{
			"Charminar", "Golconda Fort", "Ramoji Film City",
			"Hussain Sagar Lake", "Salar Jung Museum", "Chowmahalla Palace",
		},
		foods: []string{
			"Hyderabadi Biryani at Paradise", "Haleem at Pista House",
			"Irani Chai at Nimrah Cafe", "Kebabs at Bawarchi",
		},
		hotels: map[BudgetType]string{
			BudgetFriendly: "OYO rooms near Hussain Sagar",
			BudgetStandard: "Lemon Tree Hotel, Banjara Hills",
			BudgetPremium:  "Taj Falaknuma Palace",
		},
		transport: map[BudgetType]string{
			BudgetFriendly: "Metro and shared autos",
			BudgetStandard: "App cabs for the day",
			BudgetPremium:  "Private chauffeur-driven car",
		},
	},
	"goa": {
		attractions: []string{
			"Baga Beach", "Fort Aguada", "Basilica of Bom Jesus",
			"Dudhsagar Falls", "Anjuna Beach", "Chapora Fort",
		},
		foods: []string{
			"Fish Thali at Ritz Classic", "Prawn Curry at Mum's Kitchen",
			"Bebinca at Confeitaria", "Beach shack seafood at Britto's",
		},
		hotels: map[BudgetType]string{
			BudgetFriendly: "Beachside hostel in Anjuna",
			BudgetStandard: "Resort near Calangute",
			BudgetPremium:  "Taj Exotica, Benaulim",
		},
		transport: map[BudgetType]string{
			BudgetFriendly: "Rented scooter",
			BudgetStandard: "Self-drive rental car",
			BudgetPremium:  "Private car with driver",
		},
	},
}

func templateFor(destination string) destTemplate {
	if t, ok := destTemplates[strings.ToLower(destination)]; ok {
		return t
	}
	return destTemplate{
		attractions: []string{
			destination + " City Center", destination + " Old Town",
			destination + " Market", destination + " Heritage Sites",
			destination + " Viewpoint", destination + " Gardens",
		},
		foods: []string{
			"Local breakfast spots in " + destination,
			"Street food tour of " + destination,
			"Regional thali in " + destination,
			"Popular cafes of " + destination,
		},
		hotels: map[BudgetType]string{
			BudgetFriendly: "Budget guesthouse in " + destination,
			BudgetStandard: "Mid-range hotel in " + destination,
			BudgetPremium:  "Luxury hotel in " + destination,
		},
		transport: map[BudgetType]string{
			BudgetFriendly: "Public transport and walking",
			BudgetStandard: "App cabs for the day",
			BudgetPremium:  "Private car with driver",
		},
	}
}

// fallbackPlans builds exactly duration daily plans from templates. Costs
// are fixed shares of the daily budget: morning 20%, afternoon 25%,
// evening 20%, with a nightly hotel row. Day 1 opens with a flight and a
// local transport row.
func fallbackPlans(destination string, duration int, budget types.Rupees, tier BudgetType) []DailyPlan {
	tpl := templateFor(destination)
	dailyBudget := budget / types.Rupees(duration)

	plans := make([]DailyPlan, 0, duration)
	for day := 1; day <= duration; day++ {
		attraction := tpl.attractions[(day-1)%len(tpl.attractions)]
		secondStop := tpl.attractions[day%len(tpl.attractions)]
		food := tpl.foods[(day-1)%len(tpl.foods)]

		var acts []Activity
		if day == 1 {
			acts = append(acts, Activity{
				Time:                    "8:00 AM",
				Title:                   "Local transport: " + tpl.transport[tier],
				Duration:                "Full day",
				Cost:                    dailyBudget * 10 / 100,
				Place:                   destination,
				Details:                 "Getting around " + destination + " - " + tpl.transport[tier],
				TransportRecommendation: true,
			})
		}
		acts = append(acts,
			Activity{
				Time:     "9:00 AM",
				Title:    "Visit " + attraction,
				Duration: "3 hours",
				Cost:     dailyBudget * 20 / 100,
				Place:    attraction,
				Details:  fmt.Sprintf("Morning at %s, one of %s's highlights", attraction, destination),
			},
			Activity{
				Time:     "1:00 PM",
				Title:    "Lunch and " + secondStop,
				Duration: "4 hours",
				Cost:     dailyBudget * 25 / 100,
				Place:    secondStop,
				Details:  fmt.Sprintf("Lunch followed by the afternoon at %s", secondStop),
			},
			Activity{
				Time:     "6:00 PM",
				Title:    "Dinner: " + food,
				Duration: "2 hours",
				Cost:     dailyBudget * 20 / 100,
				Place:    destination,
				Details:  food,
			},
			Activity{
				Time:                "10:00 PM",
				Title:               "Stay: " + tpl.hotels[tier],
				Duration:            "Overnight",
				Cost:                dailyBudget * 25 / 100,
				Place:               tpl.hotels[tier],
				Details:             "Recommended stay - " + tpl.hotels[tier],
				HotelRecommendation: true,
			},
		)
		plans = append(plans, DailyPlan{Day: day, Activities: acts})
	}

	insertFlight(plans, destination, budget, tier)
	return plans
}

// insertFlight puts a round-trip flight row at the head of day 1. The
// Budget-Friendly tier assumes cheaper carriers at 15% of the trip budget;
// other tiers 20%.
func insertFlight(plans []DailyPlan, destination string, budget types.Rupees, tier BudgetType) {
	if len(plans) == 0 {
		return
	}
	share := types.Rupees(20)
	carrier := "full-service airline"
	if tier == BudgetFriendly {
		share = 15
		carrier = "low-cost carrier"
	}
	flight := Activity{
		Time:                 "6:00 AM",
		Title:                "Round-trip flight to " + destination,
		Duration:             "Varies",
		Cost:                 budget * share / 100,
		Place:                destination + " Airport",
		Details:              "Estimated round-trip airfare on a " + carrier,
		FlightRecommendation: true,
	}
	plans[0].Activities = append([]Activity{flight}, plans[0].Activities...)
}

// fallbackItinerary wraps template plans in a complete itinerary.
func fallbackItinerary(destination string, duration int, budget types.Rupees, tier BudgetType) *Itinerary {
	plans := fallbackPlans(destination, duration, budget, tier)
	return &Itinerary{
		Destination: destination,
		Duration:    duration,
		Budget:      budget,
		BudgetType:  tier,
		TotalCost:   totalCost(plans),
		DailyPlans:  plans,
		DataSources: DataSources{TemplateBased: true},
	}
}

// fallbackOptions produces the three budget tiers around the requested
// budget when generation is unavailable end to end.
func fallbackOptions(destination string, duration int, budget types.Rupees) []*Itinerary {
	return []*Itinerary{
		fallbackItinerary(destination, duration, budget*8/10, BudgetFriendly),
		fallbackItinerary(destination, duration, budget, BudgetStandard),
		fallbackItinerary(destination, duration, budget*12/10, BudgetPremium),
	}
}
