// README: HTML form flow: GET / (form), POST /submit (generate), GET /results (show plan).
package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/modules/itinerary"
)

type PlannerHandler struct {
	planner *itinerary.Service
	log     *zap.Logger
}

func NewPlannerHandler(planner *itinerary.Service, log *zap.Logger) *PlannerHandler {
	return &PlannerHandler{planner: planner, log: log}
}

// Index handles GET /.
func (h *PlannerHandler) Index(c *gin.Context) {
	h.renderForm(c, http.StatusOK, itinerary.TripRequest{}, nil, popNotice(c))
}

// Submit handles POST /submit. Invalid input re-renders the form with 400; generation
// failures redirect back to the form with a notice.
func (h *PlannerHandler) Submit(c *gin.Context) {
	var req itinerary.TripRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderForm(c, http.StatusBadRequest, req, itinerary.FieldErrorsFrom(err), "")
		return
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		h.renderForm(c, http.StatusBadRequest, req, itinerary.FieldErrorsFrom(err), "")
		return
	}

	plan, failure := h.planner.Plan(c.Request.Context(), req)
	if failure != nil {
		setNotice(c, failure.Notice)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := h.planner.Save(c.Request.Context(), plan); err != nil {
		h.log.Error("plan hand-off failed", zap.String("plan_id", plan.ID), zap.Error(err))
		setNotice(c, itinerary.NoticeStore)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Redirect(http.StatusSeeOther, "/results?id="+url.QueryEscape(plan.ID))
}

// Results handles GET /results?id=<plan id>. The older ?plan=<markdown> form is still
// rendered, through the same Markdown renderer, for links created before the hand-off store.
func (h *PlannerHandler) Results(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		plan, err := h.planner.Load(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, itinerary.ErrPlanNotFound) {
				h.log.Error("plan lookup failed", zap.String("plan_id", id), zap.Error(err))
			}
			setNotice(c, itinerary.NoticeExpired)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.renderResults(c, plan)
		return
	}

	if md := c.Query("plan"); md != "" {
		html, err := h.planner.Render(md)
		if err != nil {
			h.log.Error("render plan query failed", zap.Error(err))
			setNotice(c, itinerary.NoticeRender)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.renderResults(c, &itinerary.Plan{Markdown: md, HTML: html})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PlannerHandler) renderForm(c *gin.Context, status int, form itinerary.TripRequest, errs itinerary.FieldErrors, notice string) {
	c.HTML(status, "index.tmpl", gin.H{
		"Title":     "Trip Planner",
		"Form":      form,
		"Errors":    errs,
		"Notice":    notice,
		"Available": h.planner.Available(),
		"Model":     h.planner.Model(),
	})
}

func (h *PlannerHandler) renderResults(c *gin.Context, plan *itinerary.Plan) {
	model := plan.Model
	if model == "" {
		model = h.planner.Model()
	}
	c.HTML(http.StatusOK, "results.tmpl", gin.H{
		"Title": "Your trip plan",
		"Plan":  plan.HTML,
		"Model": model,
	})
}
