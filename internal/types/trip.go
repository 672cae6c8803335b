package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidTrip is returned when a trip cannot be priced per person per day.
	ErrInvalidTrip = errors.New("trip must have at least one day and one person")
	// ErrMissingAPIKey is returned when no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")
)

// TripRequest holds one form submission. It is never persisted.
type TripRequest struct {
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	Days              int     `json:"days"`
	Budget            float64 `json:"budget"`
	CuisinePreference string  `json:"cuisine_preference"`
	PeopleNumber      int     `json:"people_number"`
	Interests         string  `json:"interests"`
}

// BudgetPerPersonPerDay splits the total budget across days and people.
// Callers must check Days and PeopleNumber are positive first.
func (t TripRequest) BudgetPerPersonPerDay() float64 {
	return t.Budget / float64(t.Days) / float64(t.PeopleNumber)
}

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a submission.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Error())
	}
	return "invalid trip request: " + strings.Join(msgs, "; ")
}

// Fields maps field name to its first error message.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Names returns the sorted list of invalid field names.
func (v ValidationErrors) Names() []string {
	fields := v.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
