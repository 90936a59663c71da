package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/modules/itinerary"
)

type SystemHandler struct {
	planner *itinerary.Service
}

func NewSystemHandler(planner *itinerary.Service) *SystemHandler {
	return &SystemHandler{planner: planner}
}

// Health reports liveness. A missing model handle is degraded, not down.
func (h *SystemHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":          "ok",
		"model":           h.planner.Model(),
		"model_available": h.planner.Available(),
	})
}
