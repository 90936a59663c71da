package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxTravellers caps the traveller count accepted from the form.
const MaxTravellers = 50

// FieldErrors maps a form field name (e.g. "start_date") to a message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid trip request: " + strings.Join(parts, "; ")
}

var formNames = map[string]string{
	"Origin":      "from",
	"Destination": "to",
	"StartDate":   "start_date",
	"EndDate":     "end_date",
	"Budget":      "budget",
	"Theme":       "traveltheme",
	"Travellers":  "travellers",
}

var fieldLabels = map[string]string{
	"from":        "Origin",
	"to":          "Destination",
	"start_date":  "Start date",
	"end_date":    "End date",
	"budget":      "Budget",
	"traveltheme": "Travel theme",
	"travellers":  "Travellers",
}

// FieldErrorsFrom converts a gin binding error into per-field messages.
// A JSON value of the wrong type is reported under its field; anything else that is
// not a validation error (malformed body) is reported under "form".
func FieldErrorsFrom(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if _, known := fieldLabels[typeErr.Field]; known {
			return FieldErrors{typeErr.Field: messageFor(typeErr.Field, "type", "")}
		}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": "The request could not be read."}
	}
	out := make(FieldErrors, len(verrs))
	for _, v := range verrs {
		name, ok := formNames[v.StructField()]
		if !ok {
			name = strings.ToLower(v.Field())
		}
		out[name] = messageFor(name, v.Tag(), v.Param())
	}
	return out
}

func messageFor(field, tag, param string) string {
	label := fieldLabels[field]
	if label == "" {
		label = field
	}
	switch tag {
	case "required":
		return label + " is required."
	case "datetime":
		return label + " must be a date in YYYY-MM-DD format."
	case "numeric":
		return label + " must be a number."
	case "number":
		return label + " must be a whole number."
	case "type":
		if field == "budget" || field == "travellers" {
			return label + " must be a number."
		}
		return label + " must be text."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, param)
	default:
		return label + " is invalid."
	}
}

// Validate applies the checks struct tags cannot express: blank-after-trim fields,
// date order, a positive budget and the traveller range.
func (r TripRequest) Validate() error {
	errs := FieldErrors{}

	for name, value := range map[string]string{
		"from":        r.Origin,
		"to":          r.Destination,
		"start_date":  r.StartDate,
		"end_date":    r.EndDate,
		"budget":      string(r.Budget),
		"traveltheme": r.Theme,
		"travellers":  string(r.Travellers),
	} {
		if strings.TrimSpace(value) == "" {
			errs[name] = messageFor(name, "required", "")
		}
	}

	start, startErr := time.Parse(time.DateOnly, r.StartDate)
	end, endErr := time.Parse(time.DateOnly, r.EndDate)
	if startErr == nil && endErr == nil && end.Before(start) {
		errs["end_date"] = "End date must be on or after the start date."
	}

	if budget, err := strconv.ParseFloat(string(r.Budget), 64); err == nil && budget <= 0 {
		errs["budget"] = "Budget must be greater than zero."
	}

	if n, err := strconv.Atoi(string(r.Travellers)); err == nil && (n < 1 || n > MaxTravellers) {
		errs["travellers"] = fmt.Sprintf("Travellers must be between 1 and %d.", MaxTravellers)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize trims surrounding whitespace from every field.
func (r TripRequest) Normalize() TripRequest {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Budget = NumericText(strings.TrimSpace(string(r.Budget)))
	r.Theme = strings.TrimSpace(r.Theme)
	r.Travellers = NumericText(strings.TrimSpace(string(r.Travellers)))
	return r
}
