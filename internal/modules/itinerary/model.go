// README: Itinerary module types (trip request, generated plan, failure).
package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"reflect"
	"time"

	"tripplanner/internal/ai"
)

// ErrPlanNotFound is returned when a hand-off id is unknown or has expired.
var ErrPlanNotFound = errors.New("plan not found")

// TripRequest is one form submission. Field values are interpolated into the prompt verbatim.
type TripRequest struct {
	Origin      string      `form:"from" json:"from" binding:"required,max=120"`
	Destination string      `form:"to" json:"to" binding:"required,max=120"`
	StartDate   string      `form:"start_date" json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string      `form:"end_date" json:"end_date" binding:"required,datetime=2006-01-02"`
	Budget      NumericText `form:"budget" json:"budget" binding:"required,numeric,max=15"`
	Theme       string      `form:"traveltheme" json:"traveltheme" binding:"required,max=80"`
	Travellers  NumericText `form:"travellers" json:"travellers" binding:"required,number,max=3"`
}

// NumericText is a number kept as the text the user supplied, so it reaches the
// prompt unchanged. JSON accepts both 2 and "2".
type NumericText string

func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return &json.UnmarshalTypeError{Value: jsonKind(b[0]), Type: reflect.TypeOf(*n)}
	}
	*n = NumericText(num.String())
	return nil
}

func jsonKind(first byte) string {
	switch first {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "value"
	}
}

// RouteEstimate is an optional driving estimate between origin and destination.
type RouteEstimate struct {
	Duration time.Duration
	Distance string
}

// Plan is a rendered itinerary waiting to be shown on the results page.
type Plan struct {
	ID        string        `json:"id"`
	Markdown  string        `json:"markdown"`
	HTML      template.HTML `json:"html"`
	Model     string        `json:"model"`
	CreatedAt time.Time     `json:"created_at"`
}

// Failure explains why no plan was produced. Notice is safe to show to the user.
type Failure struct {
	Reason ai.Reason
	Notice string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Reason.String()
	}
	return f.Reason.String() + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

const (
	NoticeUnavailable  = "The trip planner is not configured right now. Please try again later."
	NoticeServiceError = "We could not reach the trip planner. Please try again."
	NoticeEmpty        = "Could not generate trip plan."
	NoticeRender       = "The trip plan could not be formatted. Please try again."
	NoticeExpired      = "That trip plan has expired. Please submit the form again."
	NoticeStore        = "The trip plan could not be saved for display. Please try again."
)

func noticeFor(reason ai.Reason) string {
	switch reason {
	case ai.ReasonUnavailable:
		return NoticeUnavailable
	case ai.ReasonEmptyResponse:
		return NoticeEmpty
	default:
		return NoticeServiceError
	}
}
