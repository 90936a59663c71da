package itinerary

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripplanner/internal/ai"
)

// Renderer converts generated Markdown into display HTML.
type Renderer interface {
	Markdown(src string) (template.HTML, error)
}

// RouteEstimator provides an optional driving estimate used as a prompt hint.
type RouteEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error)
}

// routeHintTimeout bounds the Directions lookup that precedes generation.
const routeHintTimeout = 3 * time.Second

// ServiceDeps lists the collaborators of Service. Routes may be nil.
type ServiceDeps struct {
	Generator ai.TextGenerator
	Renderer  Renderer
	Store     Store
	Routes    RouteEstimator
	Logger    *zap.Logger
}

// Service turns a TripRequest into a rendered Plan. Stateless apart from its dependencies.
type Service struct {
	gen      ai.TextGenerator
	renderer Renderer
	store    Store
	routes   RouteEstimator
	log      *zap.Logger
	now      func() time.Time
	newID    func() string

	routeTimeout time.Duration
}

func NewService(deps ServiceDeps) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		gen:      deps.Generator,
		renderer: deps.Renderer,
		store:    deps.Store,
		routes:   deps.Routes,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,

		routeTimeout: routeHintTimeout,
	}
}

// Available reports whether the model handle can serve requests.
func (s *Service) Available() bool {
	return s.gen.Available()
}

func (s *Service) Model() string {
	return s.gen.Model()
}

// Prompt returns the exact prompt Plan would send for req, including the route hint.
func (s *Service) Prompt(ctx context.Context, req TripRequest) string {
	return BuildPrompt(req, s.routeHint(ctx, req))
}

// Plan makes one generation attempt. It never returns a Go error: the outcome is
// either a plan or a Failure carrying a user-facing notice.
func (s *Service) Plan(ctx context.Context, req TripRequest) (*Plan, *Failure) {
	if !s.gen.Available() {
		return nil, &Failure{Reason: ai.ReasonUnavailable, Notice: NoticeUnavailable, Err: ai.ErrUnavailable}
	}

	prompt := s.Prompt(ctx, req)
	res := s.gen.Generate(ctx, prompt)
	if !res.OK() {
		s.log.Warn("trip plan generation failed",
			zap.String("reason", res.Reason.String()),
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.Error(res.Err))
		return nil, &Failure{Reason: res.Reason, Notice: noticeFor(res.Reason), Err: res.Err}
	}

	html, err := s.renderer.Markdown(res.Text)
	if err != nil {
		s.log.Error("trip plan render failed", zap.Error(err))
		return nil, &Failure{Reason: ai.ReasonServiceError, Notice: NoticeRender, Err: err}
	}

	return &Plan{
		ID:        s.newID(),
		Markdown:  res.Text,
		HTML:      html,
		Model:     s.gen.Model(),
		CreatedAt: s.now().UTC(),
	}, nil
}

// Render converts caller-supplied Markdown (the legacy ?plan= results link).
func (s *Service) Render(markdown string) (template.HTML, error) {
	return s.renderer.Markdown(markdown)
}

// Save hands plan to the results page.
func (s *Service) Save(ctx context.Context, plan *Plan) error {
	if err := s.store.Put(ctx, *plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// Load returns a saved plan or ErrPlanNotFound.
func (s *Service) Load(ctx context.Context, id string) (*Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPlanNotFound
	}
	plan, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// routeHint is best effort: any error leaves the prompt without a hint.
func (s *Service) routeHint(ctx context.Context, req TripRequest) *RouteEstimate {
	if s.routes == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.routeTimeout)
	defer cancel()
	dur, dist, err := s.routes.GetTravelEstimate(ctx, req.Origin, req.Destination)
	if err != nil {
		s.log.Info("route hint unavailable", zap.String("origin", req.Origin),
			zap.String("destination", req.Destination), zap.Error(err))
		return nil
	}
	return &RouteEstimate{Duration: dur, Distance: dist}
}
