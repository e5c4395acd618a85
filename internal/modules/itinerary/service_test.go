package itinerary

import (
	"context"
	"errors"
	"testing"

	"tripdeck/internal/types"
)

type memStore struct {
	items map[types.ID]*Itinerary
}

func newMemStore() *memStore {
	return &memStore{items: make(map[types.ID]*Itinerary)}
}

func (m *memStore) Save(_ context.Context, it *Itinerary) error {
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, id types.ID) (*Itinerary, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

// scriptedLLM returns queued responses in order; once exhausted or when err
// is set, every call fails.
type scriptedLLM struct {
	responses []string
	err       error
	calls     int
}

func (s *scriptedLLM) GenerateText(context.Context, string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", errors.New("script exhausted")
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func (s *scriptedLLM) Name() string { return "scripted" }

const modelText = `Day 1:
9:00 AM - Visit Charminar (2 hours, ₹300)
1:00 PM - Lunch at Paradise (1 hour, ₹500)

Day 2:
10:00 AM - Explore Golconda Fort (3 hours, ₹400)
`

func TestGenerateOptionsValidation(t *testing.T) {
	svc := NewService(&scriptedLLM{}, nil, nil, nil, newMemStore())
	tests := []struct {
		name        string
		destination string
		duration    int
		budget      types.Rupees
	}{
		{"empty destination", "  ", 3, 10000},
		{"zero duration", "Goa", 0, 10000},
		{"duration too long", "Goa", 31, 10000},
		{"zero budget", "Goa", 3, 0},
		{"negative budget", "Goa", 3, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateOptions(context.Background(), tt.destination, tt.duration, tt.budget, nil)
			if !errors.Is(err, ErrBadRequest) {
				t.Fatalf("err = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestGenerateOptionsFallsBackToTemplates(t *testing.T) {
	store := newMemStore()
	svc := NewService(&scriptedLLM{err: errors.New("model offline")}, nil, nil, nil, store)

	options, err := svc.GenerateOptions(context.Background(), "Goa", 4, 20000, nil)
	if err != nil {
		t.Fatalf("GenerateOptions: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}
	for _, opt := range options {
		if opt.AIGenerated {
			t.Errorf("%s: marked AI generated despite model failure", opt.BudgetType)
		}
		if !opt.DataSources.TemplateBased {
			t.Errorf("%s: not marked template based", opt.BudgetType)
		}
		if len(opt.DailyPlans) != 4 {
			t.Errorf("%s: %d daily plans, want 4", opt.BudgetType, len(opt.DailyPlans))
		}
		if opt.ID == "" {
			t.Errorf("%s: missing id", opt.BudgetType)
		}
		if _, err := store.Get(context.Background(), opt.ID); err != nil {
			t.Errorf("%s: not stored: %v", opt.BudgetType, err)
		}
	}
}

func TestGenerateParsesModelText(t *testing.T) {
	llm := &scriptedLLM{responses: []string{modelText, modelText, modelText}}
	svc := NewService(llm, nil, nil, nil, newMemStore())

	it, err := svc.Generate(context.Background(), "Hyderabad", 2, 5000, []string{"heritage"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !it.AIGenerated {
		t.Error("itinerary not marked AI generated")
	}
	if len(it.DailyPlans) != 2 {
		t.Fatalf("got %d daily plans, want 2", len(it.DailyPlans))
	}
	if got := it.DailyPlans[0].Activities[0].Place; got != "Charminar" {
		t.Errorf("first place = %q, want Charminar", got)
	}
	if it.TotalCost != totalCost(it.DailyPlans) {
		t.Errorf("total cost %d does not match plan sum", it.TotalCost)
	}
}

func TestSelectBest(t *testing.T) {
	opt := func(cost types.Rupees) *Itinerary {
		return &Itinerary{TotalCost: cost}
	}
	tests := []struct {
		name   string
		costs  []types.Rupees
		budget types.Rupees
		want   types.Rupees
	}{
		{"closest within limit wins", []types.Rupees{8000, 9800, 10900}, 10000, 9800},
		{"slightly over budget still allowed", []types.Rupees{7000, 10900}, 10000, 10900},
		{"all over limit picks cheapest", []types.Rupees{15000, 12000, 18000}, 10000, 12000},
		{"single option", []types.Rupees{4000}, 10000, 4000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var options []*Itinerary
			for _, c := range tt.costs {
				options = append(options, opt(c))
			}
			got := SelectBest(options, tt.budget)
			if got.TotalCost != tt.want {
				t.Fatalf("SelectBest picked cost %d, want %d", got.TotalCost, tt.want)
			}
		})
	}
	if SelectBest(nil, 1000) != nil {
		t.Error("SelectBest(nil) != nil")
	}
}

func TestModifyUnknownID(t *testing.T) {
	svc := NewService(&scriptedLLM{}, nil, nil, nil, newMemStore())
	_, err := svc.Modify(context.Background(), "missing", "add beaches")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestModifyReturnsOriginalOnModelFailure(t *testing.T) {
	store := newMemStore()
	original := fallbackItinerary("Goa", 3, 15000, BudgetStandard)
	original.ID = "trip-1"
	if err := store.Save(context.Background(), original); err != nil {
		t.Fatal(err)
	}

	svc := NewService(&scriptedLLM{err: errors.New("model offline")}, nil, nil, nil, store)
	got, err := svc.Modify(context.Background(), "trip-1", "make it cheaper")
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got.ModificationApplied != "" {
		t.Errorf("modification recorded despite failure: %q", got.ModificationApplied)
	}
	if got.TotalCost != original.TotalCost || len(got.DailyPlans) != len(original.DailyPlans) {
		t.Errorf("original itinerary was altered: got total %d, want %d", got.TotalCost, original.TotalCost)
	}
}

func TestModifyAppliesIntent(t *testing.T) {
	store := newMemStore()
	original := fallbackItinerary("Goa", 3, 10000, BudgetStandard)
	original.ID = "trip-2"
	if err := store.Save(context.Background(), original); err != nil {
		t.Fatal(err)
	}

	// First call answers the intent analysis; the second returns prose the
	// parser cannot use, forcing template regeneration with the new budget.
	llm := &scriptedLLM{responses: []string{
		"BUDGET_ADJUSTMENT: increase\nACCOMMODATION_PREFERENCE: premium\nNEW_THEMES: none",
		"happy travels!",
	}}
	svc := NewService(llm, nil, nil, nil, store)

	got, err := svc.Modify(context.Background(), "trip-2", "upgrade the hotels")
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got.Budget != 12000 {
		t.Errorf("budget = %d, want 12000", got.Budget)
	}
	if got.BudgetType != BudgetPremium {
		t.Errorf("tier = %s, want %s", got.BudgetType, BudgetPremium)
	}
	if got.ModificationApplied != "upgrade the hotels" {
		t.Errorf("modification applied = %q", got.ModificationApplied)
	}
	if len(got.DailyPlans) != 3 {
		t.Errorf("got %d daily plans, want 3", len(got.DailyPlans))
	}
	// The regeneration came from templates, so AI markers must be gone.
	if got.AIGenerated {
		t.Error("template-regenerated itinerary marked AI generated")
	}
	if !got.DataSources.TemplateBased || got.DataSources.AIPowered {
		t.Errorf("data sources = %+v, want template based", got.DataSources)
	}
	if llm.calls != 2 {
		t.Errorf("model called %d times, want 2", llm.calls)
	}

	stored, err := store.Get(context.Background(), "trip-2")
	if err != nil {
		t.Fatalf("modified itinerary not stored: %v", err)
	}
	if stored.Budget != 12000 {
		t.Errorf("stored budget = %d, want 12000", stored.Budget)
	}
}

func TestModifyKeepsAIMarkersOnParsedText(t *testing.T) {
	store := newMemStore()
	original := fallbackItinerary("Hyderabad", 2, 5000, BudgetStandard)
	original.ID = "trip-3"
	original.AIGenerated = true
	original.DataSources = DataSources{AIPowered: true, InfluencerTips: 4}
	if err := store.Save(context.Background(), original); err != nil {
		t.Fatal(err)
	}

	llm := &scriptedLLM{responses: []string{"MODIFICATION_TYPE: activities", modelText}}
	svc := NewService(llm, nil, nil, nil, store)

	got, err := svc.Modify(context.Background(), "trip-3", "swap in more food stops")
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if !got.AIGenerated {
		t.Error("parsed modification lost the AI generated flag")
	}
	if !got.DataSources.AIPowered || got.DataSources.InfluencerTips != 4 {
		t.Errorf("data sources = %+v, want the original's carried over", got.DataSources)
	}
}

func TestParseIntent(t *testing.T) {
	text := `Sure, here is the breakdown:
MODIFICATION_TYPE: budget
BUDGET_ADJUSTMENT: decrease
ACCOMMODATION_PREFERENCE: budget
NEW_THEMES: beaches, nightlife
IRRELEVANT: skip me
not a field line
`
	got := parseIntent(text)
	want := map[string]string{
		"MODIFICATION_TYPE":        "budget",
		"BUDGET_ADJUSTMENT":        "decrease",
		"ACCOMMODATION_PREFERENCE": "budget",
		"NEW_THEMES":               "beaches, nightlife",
	}
	if len(got) != len(want) {
		t.Fatalf("parseIntent returned %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestApplyIntent(t *testing.T) {
	it := &Itinerary{Budget: 10000, BudgetType: BudgetStandard}

	budget, tier, themes := applyIntent(it, map[string]string{
		"BUDGET_ADJUSTMENT":        "decrease slightly",
		"ACCOMMODATION_PREFERENCE": "budget",
		"NEW_THEMES":               "food, markets",
	})
	if budget != 8000 {
		t.Errorf("budget = %d, want 8000", budget)
	}
	if tier != BudgetFriendly {
		t.Errorf("tier = %s, want %s", tier, BudgetFriendly)
	}
	if len(themes) != 2 || themes[0] != "food" || themes[1] != "markets" {
		t.Errorf("themes = %v", themes)
	}

	// Elaborated replies still match by substring.
	budget, _, _ = applyIntent(it, map[string]string{"BUDGET_ADJUSTMENT": "increase by 20%"})
	if budget != 12000 {
		t.Errorf("budget = %d, want 12000", budget)
	}

	budget, tier, themes = applyIntent(it, map[string]string{"NEW_THEMES": "none"})
	if budget != 10000 || tier != BudgetStandard || themes != nil {
		t.Errorf("neutral intent changed parameters: %d %s %v", budget, tier, themes)
	}
}

func TestAttractionsWithoutModel(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, newMemStore())
	got := svc.Attractions(context.Background(), "Goa")
	if len(got) == 0 {
		t.Fatal("no attractions returned")
	}
	found := false
	for _, name := range got {
		if name == "Baga Beach" {
			found = true
		}
	}
	if !found {
		t.Errorf("attractions %v missing Baga Beach", got)
	}
}
