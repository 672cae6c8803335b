package itinerary

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// Form field names, shared with templates/index.html.
const (
	fieldOrigin       = "origin"
	fieldDestination  = "destination"
	fieldDays         = "days"
	fieldBudget       = "budget"
	fieldCuisine      = "cuisine_preference"
	fieldPeopleNumber = "people_number"
	fieldInterests    = "interests"
)

const (
	msgRequired    = "is required"
	msgWholeNumber = "must be a whole number"
	msgNumber      = "must be a number"
	msgPositive    = "must be greater than zero"
)

// ParseTripForm coerces a submitted form into a TripRequest. Every invalid
// field is reported in the returned types.ValidationErrors.
func ParseTripForm(values url.Values) (types.TripRequest, error) {
	var verrs types.ValidationErrors
	req := types.TripRequest{
		Origin:            strings.TrimSpace(values.Get(fieldOrigin)),
		Destination:       strings.TrimSpace(values.Get(fieldDestination)),
		CuisinePreference: strings.TrimSpace(values.Get(fieldCuisine)),
		Interests:         strings.TrimSpace(values.Get(fieldInterests)),
	}

	req.Days = parseInt(values, fieldDays, &verrs)
	req.PeopleNumber = parseInt(values, fieldPeopleNumber, &verrs)

	budgetRaw := strings.TrimSpace(values.Get(fieldBudget))
	budget, err := strconv.ParseFloat(budgetRaw, 64)
	switch {
	case budgetRaw == "":
		verrs = append(verrs, types.FieldError{Field: fieldBudget, Message: msgRequired})
	case err != nil || math.IsNaN(budget) || math.IsInf(budget, 0):
		verrs = append(verrs, types.FieldError{Field: fieldBudget, Message: msgNumber})
	default:
		req.Budget = budget
	}

	// only range-check fields that parsed
	parsed := verrs.Fields()
	for _, fe := range validateTrip(req) {
		if _, failed := parsed[fe.Field]; !failed {
			verrs = append(verrs, fe)
		}
	}

	if len(verrs) > 0 {
		return req, verrs
	}
	return req, nil
}

// ValidateTrip checks an already typed TripRequest, e.g. one decoded from JSON.
func ValidateTrip(req types.TripRequest) error {
	if verrs := validateTrip(req); len(verrs) > 0 {
		return verrs
	}
	return nil
}

func validateTrip(req types.TripRequest) types.ValidationErrors {
	var verrs types.ValidationErrors
	if strings.TrimSpace(req.Destination) == "" {
		verrs = append(verrs, types.FieldError{Field: fieldDestination, Message: msgRequired})
	}
	if req.Days <= 0 {
		verrs = append(verrs, types.FieldError{Field: fieldDays, Message: msgPositive})
	}
	if math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) {
		verrs = append(verrs, types.FieldError{Field: fieldBudget, Message: msgNumber})
	} else if req.Budget <= 0 {
		verrs = append(verrs, types.FieldError{Field: fieldBudget, Message: msgPositive})
	}
	if req.PeopleNumber <= 0 {
		verrs = append(verrs, types.FieldError{Field: fieldPeopleNumber, Message: msgPositive})
	}
	return verrs
}

func parseInt(values url.Values, field string, verrs *types.ValidationErrors) int {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		*verrs = append(*verrs, types.FieldError{Field: field, Message: msgRequired})
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*verrs = append(*verrs, types.FieldError{Field: field, Message: msgWholeNumber})
		return 0
	}
	return n
}
