// README: HTTP route registration.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripplanner/internal/http/handlers"
)

func registerRoutes(r *gin.Engine, s *Server) {
	planner := handlers.NewPlannerHandler(s.planner, s.log)
	r.GET("/", planner.Index)
	r.POST("/submit", planner.Submit)
	r.GET("/results", planner.Results)

	api := r.Group("/api")
	api.Use(cors.New(corsConfig(s.corsOrigins)))
	apiHandler := handlers.NewAPIHandler(s.planner, s.log)
	api.POST("/itineraries", apiHandler.CreateItinerary)
	// Preflight requests only reach the group's CORS middleware when a route matches.
	api.OPTIONS("/itineraries", func(c *gin.Context) {})

	system := handlers.NewSystemHandler(s.planner)
	r.GET("/health", system.Health)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
