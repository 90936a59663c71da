// README: HTTP server wiring; builds the gin engine and registers routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/http/views"
	"tripplanner/internal/modules/itinerary"
)

type ServerDeps struct {
	Planner     *itinerary.Service
	Logger      *zap.Logger
	CORSOrigins []string
}

type Server struct {
	planner     *itinerary.Service
	log         *zap.Logger
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		planner:     deps.Planner,
		log:         log,
		corsOrigins: deps.CORSOrigins,
	}
}

// Routes returns the fully wired handler. gin's mode must be set by the caller beforehand.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.log), middleware.Recovery(s.log))
	r.SetHTMLTemplate(views.MustLoad())

	registerRoutes(r, s)
	return r
}
