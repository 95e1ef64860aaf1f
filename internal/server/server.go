// Package server exposes the dashboard views and uploads over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/sells-group/risk-dashboard/internal/config"
	"github.com/sells-group/risk-dashboard/internal/dashboard"
	"github.com/sells-group/risk-dashboard/internal/geo"
)

const defaultMaxUploadBytes = 10 << 20

// Server routes HTTP requests to the dashboard state.
type Server struct {
	state          *dashboard.State
	maxUploadBytes int64
	corsOrigins    []string
	uploadLimiter  *rate.Limiter
}

// New creates a Server over state using the server settings in cfg.
func New(state *dashboard.State, cfg config.ServerConfig) *Server {
	s := &Server{
		state:          state,
		maxUploadBytes: cfg.MaxUploadBytes,
		corsOrigins:    cfg.CORSOrigins,
		uploadLimiter:  rate.NewLimiter(rate.Inf, 0),
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = defaultMaxUploadBytes
	}
	if len(s.corsOrigins) == 0 {
		s.corsOrigins = []string{"*"}
	}
	if cfg.UploadRatePerSec > 0 {
		s.uploadLimiter = rate.NewLimiter(rate.Limit(cfg.UploadRatePerSec), max(cfg.UploadBurst, 1))
	}
	return s
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/kpis", s.handleKPIs)
		r.Get("/top", s.handleTop)
		r.Get("/map", s.handleMap)
		r.Get("/map.geojson", s.handleMapGeoJSON)
		r.Get("/filters", s.handleFilters)
		r.Get("/industries", s.handleIndustries)
		r.Get("/features", s.handleFeatures)

		r.Put("/filter", s.handleSetFilter)
		r.Post("/reset", s.handleReset)

		r.With(rateLimit(s.uploadLimiter)).Post("/upload/{kind}", s.handleUpload)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// view computes the views for the request. An "industry" query parameter
// overrides the active filter for this request only.
func (s *Server) view(r *http.Request) dashboard.View {
	if q := r.URL.Query(); q.Has("industry") {
		return s.state.ViewFor(q.Get("industry"))
	}
	return s.state.View()
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.view(r))
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	v := s.view(r)
	render.JSON(w, r, map[string]any{"filter": v.Filter, "kpi": v.KPI})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	v := s.view(r)
	render.JSON(w, r, map[string]any{"filter": v.Filter, "top": v.Top})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	v := s.view(r)
	render.JSON(w, r, map[string]any{"filter": v.Filter, "points": v.MapPoints})
}

func (s *Server) handleMapGeoJSON(w http.ResponseWriter, r *http.Request) {
	data, err := geo.MarshalGeoJSON(s.view(r).MapPoints)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "map encoding failed"})
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	v := s.state.View()
	render.JSON(w, r, map[string]any{"active": v.Filter, "options": v.FilterOptions})
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.state.View().IndustryBars)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.state.View().Features)
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Industry string `json:"industry"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "invalid request body"})
		return
	}
	s.state.SetFilter(req.Industry)
	render.JSON(w, r, map[string]string{"filter": s.state.Filter()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.state.Reset()
	render.JSON(w, r, s.state.View())
}
