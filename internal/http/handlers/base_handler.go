// README: Base handler utilities (JSON helpers, error mapping, flash notices).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/ai"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/modules/itinerary"
)

type errorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg, RequestID: middleware.GetRequestID(c)})
}

func writeFieldErrors(c *gin.Context, fe itinerary.FieldErrors) {
	writeJSON(c, http.StatusBadRequest, errorResponse{
		Error:     "invalid trip request",
		Fields:    fe,
		RequestID: middleware.GetRequestID(c),
	})
}

// failureStatus maps a generation failure onto the JSON API status code.
func failureStatus(f *itinerary.Failure) int {
	switch f.Reason {
	case ai.ReasonUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// NoticeCookie carries a one-shot notice across the redirect back to the form.
const NoticeCookie = "tripplanner_notice"

func setNotice(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(NoticeCookie, msg, 60, "/", "", false, true)
}

// popNotice returns the pending notice, if any, and clears it.
func popNotice(c *gin.Context) string {
	msg, err := c.Cookie(NoticeCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(NoticeCookie, "", -1, "/", "", false, true)
	return msg
}
