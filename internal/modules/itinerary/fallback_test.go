package itinerary

import (
	"strings"
	"testing"
)

func TestFallbackPlansExactDuration(t *testing.T) {
	for _, duration := range []int{1, 2, 3, 7, 14} {
		plans := fallbackPlans("Hyderabad", duration, 50000, BudgetStandard)
		if len(plans) != duration {
			t.Errorf("duration %d: got %d plans", duration, len(plans))
			continue
		}
		for i, p := range plans {
			if p.Day != i+1 {
				t.Errorf("duration %d: plan %d numbered day %d", duration, i, p.Day)
			}
			if len(p.Activities) == 0 {
				t.Errorf("duration %d: day %d has no activities", duration, p.Day)
			}
		}
	}
}

func TestFallbackFlightLeadsDayOne(t *testing.T) {
	tests := []struct {
		tier  BudgetType
		share int
	}{
		{BudgetFriendly, 15},
		{BudgetStandard, 20},
		{BudgetPremium, 20},
	}
	for _, tt := range tests {
		plans := fallbackPlans("Goa", 3, 30000, tt.tier)
		first := plans[0].Activities[0]
		if !first.FlightRecommendation {
			t.Errorf("%s: day 1 does not start with a flight: %+v", tt.tier, first)
		}
		want := 30000 * tt.share / 100
		if int(first.Cost) != want {
			t.Errorf("%s: flight cost = %d, want %d", tt.tier, first.Cost, want)
		}
	}
}

func TestFallbackDayStructure(t *testing.T) {
	plans := fallbackPlans("Goa", 2, 20000, BudgetPremium)

	// Day 1 additionally carries the flight and local transport rows.
	var transport int
	for _, a := range plans[0].Activities {
		if a.TransportRecommendation {
			transport++
		}
	}
	if transport != 1 {
		t.Errorf("day 1 has %d transport rows, want 1", transport)
	}

	for _, p := range plans {
		var hotels int
		for _, a := range p.Activities {
			if a.HotelRecommendation {
				hotels++
				if !strings.Contains(a.Title, "Taj Exotica") {
					t.Errorf("day %d: premium hotel = %q", p.Day, a.Title)
				}
			}
		}
		if hotels != 1 {
			t.Errorf("day %d has %d hotel rows, want 1", p.Day, hotels)
		}
	}
}

func TestFallbackGenericDestination(t *testing.T) {
	it := fallbackItinerary("Jaipur", 2, 10000, BudgetFriendly)
	if len(it.DailyPlans) != 2 {
		t.Fatalf("got %d plans, want 2", len(it.DailyPlans))
	}
	if !it.DataSources.TemplateBased || it.DataSources.AIPowered {
		t.Errorf("data sources = %+v, want template based", it.DataSources)
	}
	if it.TotalCost != totalCost(it.DailyPlans) {
		t.Errorf("total cost %d does not match plan sum %d", it.TotalCost, totalCost(it.DailyPlans))
	}
	found := false
	for _, a := range it.DailyPlans[0].Activities {
		if strings.Contains(a.Title+a.Details, "Jaipur") {
			found = true
		}
	}
	if !found {
		t.Error("generic template never mentions the destination on day 1")
	}
}

func TestFallbackOptionsTiers(t *testing.T) {
	options := fallbackOptions("Goa", 3, 10000)
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}
	wantBudgets := []int{8000, 10000, 12000}
	wantTiers := []BudgetType{BudgetFriendly, BudgetStandard, BudgetPremium}
	for i, opt := range options {
		if int(opt.Budget) != wantBudgets[i] {
			t.Errorf("option %d budget = %d, want %d", i, opt.Budget, wantBudgets[i])
		}
		if opt.BudgetType != wantTiers[i] {
			t.Errorf("option %d tier = %s, want %s", i, opt.BudgetType, wantTiers[i])
		}
		if len(opt.DailyPlans) != 3 {
			t.Errorf("option %d has %d plans, want 3", i, len(opt.DailyPlans))
		}
	}
}
