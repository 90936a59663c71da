// README: JSON API for itinerary generation (POST /api/itineraries).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/modules/itinerary"
)

type APIHandler struct {
	planner *itinerary.Service
	log     *zap.Logger
}

func NewAPIHandler(planner *itinerary.Service, log *zap.Logger) *APIHandler {
	return &APIHandler{planner: planner, log: log}
}

type itineraryResponse struct {
	ID         string `json:"id"`
	Markdown   string `json:"markdown"`
	HTML       string `json:"html"`
	Model      string `json:"model"`
	ResultsURL string `json:"results_url,omitempty"`
}

// CreateItinerary handles POST /api/itineraries.
func (h *APIHandler) CreateItinerary(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFieldErrors(c, itinerary.FieldErrorsFrom(err))
		return
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		writeFieldErrors(c, itinerary.FieldErrorsFrom(err))
		return
	}

	plan, failure := h.planner.Plan(c.Request.Context(), req)
	if failure != nil {
		writeError(c, failureStatus(failure), failure.Notice)
		return
	}

	resp := itineraryResponse{
		ID:       plan.ID,
		Markdown: plan.Markdown,
		HTML:     string(plan.HTML),
		Model:    plan.Model,
	}
	if err := h.planner.Save(c.Request.Context(), plan); err != nil {
		h.log.Warn("plan hand-off failed, returning inline only", zap.String("plan_id", plan.ID), zap.Error(err))
	} else {
		resp.ResultsURL = "/results?id=" + plan.ID
	}
	writeJSON(c, http.StatusCreated, resp)
}
