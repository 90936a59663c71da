package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// Currency is appended to the budget in the prompt.
const Currency = "INR"

// Sections lists, in order, the headings the model is asked to produce.
var Sections = []string{
	"Overview",
	"Itinerary",
	"Transportation",
	"Accommodation",
	"Activities",
	"Dining",
	"Budget Breakdown",
	"Tips",
}

// BuildPrompt formats req into the instruction sent to the model. It is pure: the same
// request and route always yield the same bytes. route may be nil.
func BuildPrompt(req TripRequest, route *RouteEstimate) string {
	budget := string(req.Budget) + " " + Currency

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a trip from %s to %s starting on %s and ending on %s for %s traveller(s) "+
		"with a total budget of %s and a travel theme of %s.\n",
		req.Origin, req.Destination, req.StartDate, req.EndDate, req.Travellers, budget, req.Theme)
	if route != nil {
		fmt.Fprintf(&b, "For reference, the driving route from %s to %s is about %s and takes roughly %s.\n",
			req.Origin, req.Destination, route.Distance, formatDuration(route.Duration))
	}
	b.WriteString("\nRespond in Markdown. Use headings, bullet points and a table, and structure the response with exactly these sections:\n\n")

	section := func(title, body string) {
		fmt.Fprintf(&b, "## %s\n%s\n\n", title, body)
	}
	section("Overview",
		fmt.Sprintf("A short summary of the trip from %s to %s, the %s theme and what makes it worthwhile.",
			req.Origin, req.Destination, req.Theme))
	section("Itinerary",
		fmt.Sprintf("A day-by-day plan from %s to %s. Use a \"### Day N\" heading per day with Morning, Afternoon and Evening bullet points.",
			req.StartDate, req.EndDate))
	section("Transportation",
		fmt.Sprintf("How to travel from %s to %s and get around %s, with approximate costs in %s.",
			req.Origin, req.Destination, req.Destination, Currency))
	section("Accommodation",
		fmt.Sprintf("Where %s traveller(s) should stay, with nightly prices that fit within %s.",
			req.Travellers, budget))
	section("Activities",
		fmt.Sprintf("Activities and sights that match the %s theme, with entry costs where relevant.", req.Theme))
	section("Dining",
		fmt.Sprintf("Local food and restaurant suggestions in %s with typical prices.", req.Destination))
	section("Budget Breakdown",
		fmt.Sprintf("A Markdown table with the columns Category and Estimated Cost (%s) covering transportation, "+
			"accommodation, activities, dining and miscellaneous, followed by a Total row. The total must not exceed %s.",
			Currency, budget))
	section("Tips",
		fmt.Sprintf("Practical tips for %s: weather for the dates, packing, local customs and safety.", req.Destination))

	return strings.TrimRight(b.String(), "\n")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}
