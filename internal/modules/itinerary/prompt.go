// README: Prompt assembly for generation, intent analysis and modification.
package itinerary

import (
	"fmt"
	"strings"

	"tripdeck/internal/modules/tips"
	"tripdeck/internal/modules/video"
	"tripdeck/internal/types"
)

// buildGenerationPrompt asks for a day-by-day plan in the exact textual
// shape the parser understands, enriched with influencer tips and video
// insights when available.
func buildGenerationPrompt(destination string, duration int, budget types.Rupees, themes []string, style string, tipRows []tips.Tip, videos []video.Content) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s with a total budget of ₹%d.\n", duration, destination, budget)
	fmt.Fprintf(&b, "Travel style: %s.\n", style)
	if len(themes) > 0 {
		fmt.Fprintf(&b, "Focus on these themes: %s.\n", strings.Join(themes, ", "))
	}

	if len(tipRows) > 0 {
		b.WriteString("\nRecommendations from travel influencers:\n")
		for i, t := range tipRows {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s (%s): %s", t.Place, t.Influencer, t.Tip)
			if t.BestTime != "" {
				fmt.Fprintf(&b, " Best time: %s.", t.BestTime)
			}
			b.WriteString("\n")
		}
	}

	if len(videos) > 0 {
		b.WriteString("\nPlaces featured in popular travel videos:\n")
		for i, v := range videos {
			if i >= 3 {
				break
			}
			locs := v.Locations
			if len(locs) > 2 {
				locs = locs[:2]
			}
			if len(locs) > 0 {
				fmt.Fprintf(&b, "- %s (from \"%s\")\n", strings.Join(locs, ", "), v.Title)
			}
		}
	}

	fmt.Fprintf(&b, `
Format the answer exactly like this, one block per day:

Day 1:
9:00 AM - Activity name at Place Name (2 hours, ₹500)
1:00 PM - Next activity in Place Name (3 hours, ₹800)

Rules:
- Exactly %d days, labelled Day 1 through Day %d.
- Every activity needs a time, a named place, a duration and a cost in ₹.
- Daily spend should total roughly ₹%d.
- Include meals, one hotel suggestion per day and local transport.
`, duration, duration, budget/types.Rupees(duration))

	return b.String()
}

// intentFields is the fixed key set the intent analysis must answer with.
var intentFields = []string{
	"MODIFICATION_TYPE",
	"SPECIFIC_CHANGES",
	"NEW_THEMES",
	"BUDGET_ADJUSTMENT",
	"DAY_FOCUS",
	"ACTIVITY_DISTRIBUTION",
	"ACCOMMODATION_PREFERENCE",
	"ADDITIONAL_CONTEXT",
}

// buildIntentPrompt restates a free-form modification request as key:value
// lines so it can be parsed deterministically.
func buildIntentPrompt(it *Itinerary, request string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A traveller has a %d-day itinerary for %s (budget ₹%d, %s tier) and asks:\n\n%q\n\n",
		it.Duration, it.Destination, it.Budget, it.BudgetType, request)
	b.WriteString("Restate the request as one line per field, in the form KEY: value. Use \"none\" when a field does not apply.\nFields:\n")
	for _, f := range intentFields {
		b.WriteString(f + ":\n")
	}
	b.WriteString("\nFor BUDGET_ADJUSTMENT answer exactly one of: increase, decrease, none.\nFor ACCOMMODATION_PREFERENCE answer one of: budget, standard, premium, none.\n")
	return b.String()
}

// buildModificationPrompt asks the model to regenerate the itinerary with
// the analysed changes applied, in the same parseable day/time format.
func buildModificationPrompt(it *Itinerary, request string, intent map[string]string, budget types.Rupees, tier BudgetType, themes []string) string {
	var b strings.Builder
	b.WriteString("Here is an existing travel itinerary:\n\n")
	b.WriteString(itineraryText(it))
	fmt.Fprintf(&b, "\nThe traveller asked: %q\n", request)
	if changes := intent["SPECIFIC_CHANGES"]; changes != "" && changes != "none" {
		fmt.Fprintf(&b, "Apply these changes: %s\n", changes)
	}
	if focus := intent["DAY_FOCUS"]; focus != "" && focus != "none" {
		fmt.Fprintf(&b, "Pay particular attention to: %s\n", focus)
	}
	if dist := intent["ACTIVITY_DISTRIBUTION"]; dist != "" && dist != "none" {
		fmt.Fprintf(&b, "Preferred activity pacing: %s\n", dist)
	}
	if len(themes) > 0 {
		fmt.Fprintf(&b, "Themes to emphasise: %s\n", strings.Join(themes, ", "))
	}
	fmt.Fprintf(&b, "\nRewrite the full %d-day itinerary for %s with a total budget of ₹%d (%s tier).\n",
		it.Duration, it.Destination, budget, tier)
	fmt.Fprintf(&b, `Keep everything the traveller did not ask to change.

Format one block per day:

Day 1:
9:00 AM - Activity name at Place Name (2 hours, ₹500)

Every activity needs a time, a named place, a duration and a cost in ₹.
`)
	return b.String()
}

// itineraryText renders an itinerary as plain text for inclusion in prompts.
func itineraryText(it *Itinerary) string {
	var b strings.Builder
	for _, day := range it.DailyPlans {
		fmt.Fprintf(&b, "Day %d:\n", day.Day)
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "%s - %s at %s (%s, ₹%d)\n", a.Time, a.Title, a.Place, a.Duration, a.Cost)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// parseIntent reads KEY: value lines produced by the intent analysis.
// Unknown keys and malformed lines are skipped.
func parseIntent(text string) map[string]string {
	known := make(map[string]bool, len(intentFields))
	for _, f := range intentFields {
		known[f] = true
	}
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "*- \t"))
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		if !known[key] {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			out[key] = value
		}
	}
	return out
}
