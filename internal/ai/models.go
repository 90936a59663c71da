package ai

import "errors"

var (
	// ErrUnavailable means the model handle was never constructed.
	ErrUnavailable = errors.New("generative model is not configured")
	// ErrEmptyResponse means the service answered without any text fragments.
	ErrEmptyResponse = errors.New("no content received from the AI model")
)

// Reason classifies the outcome of a generation call.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnavailable
	ReasonServiceError
	ReasonEmptyResponse
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnavailable:
		return "unavailable"
	case ReasonServiceError:
		return "service_error"
	case ReasonEmptyResponse:
		return "empty_response"
	default:
		return "unknown"
	}
}

// Result is either generated text (Reason == ReasonNone) or a failure reason with its cause.
type Result struct {
	Text   string
	Reason Reason
	Err    error
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(reason Reason, err error) Result {
	return Result{Reason: reason, Err: err}
}
