package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

const noCuisinePreference = "no specific"

const itineraryLayout = "Present the itinerary in a structured format, with clear headings for each day. " +
	"Use bullet points or numbered lists for activities and dining recommendations. " +
	"Include estimated times for each activity and brief descriptions. For each day, provide total estimated cost. " +
	"Format the itinerary as:\n" +
	"**Day 1:**\n" +
	"- Morning (9:00 AM - 12:00 PM): [Activity] - [Brief description] - [Estimated cost]\n" +
	"- Lunch (12:00 PM - 1:00 PM): [Dining recommendation] - [Estimated cost]\n" +
	"- Afternoon (1:00 PM - 5:00 PM): [Activity] - [Brief description] - [Estimated cost]\n" +
	"- Evening (7:00 PM onwards): [Activity/Dinner] - [Estimated cost]\n" +
	"**Total Estimated Day 1 Cost:** [Total Cost]\n\n" +
	"**Day 2:**\n" +
	"... and so on for each day."

// BuildPrompt renders the instruction sent to the model for a trip. It
// returns types.ErrInvalidTrip instead of dividing by a zero day or party count.
func BuildPrompt(req types.TripRequest) (string, error) {
	if req.Days <= 0 || req.PeopleNumber <= 0 {
		return "", fmt.Errorf("days=%d people=%d: %w", req.Days, req.PeopleNumber, types.ErrInvalidTrip)
	}

	cuisine := req.CuisinePreference
	if cuisine == "" {
		cuisine = noCuisinePreference
	}

	return fmt.Sprintf(
		"Generate a visually appealing and easy-to-read %d-day travel itinerary for %s. "+
			"The budget is $%s for %d people, so approximately $%.2f per person per day. "+
			"The user prefers %s cuisine and is interested in %s. ",
		req.Days, req.Destination,
		formatBudget(req.Budget), req.PeopleNumber, req.BudgetPerPersonPerDay(),
		cuisine, req.Interests,
	) + itineraryLayout, nil
}

// formatBudget prints the shortest exact decimal, always with a fractional
// part: 900 -> "900.0", 1234.5 -> "1234.5".
func formatBudget(budget float64) string {
	s := strconv.FormatFloat(budget, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
