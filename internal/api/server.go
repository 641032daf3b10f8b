// Package api provides the HTTP API server and handlers for Noteful.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/notefulapp/noteful-server/internal/config"
	"github.com/notefulapp/noteful-server/internal/http/response"
	"github.com/notefulapp/noteful-server/internal/ratelimit"
	"github.com/notefulapp/noteful-server/internal/store"
)

// registrationIdleTTL is how long an idle client's registration bucket is kept.
const registrationIdleTTL = 10 * time.Minute

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
	basePath string

	registrationLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		store:    st,
		services: services,
		router:   chi.NewRouter(),
		logger:   logger,
		basePath: cfg.Server.BasePath,
		registrationLimiter: ratelimit.New(
			ratelimit.PerMinute(cfg.RateLimit.RegistrationsPerMinute),
			cfg.RateLimit.RegistrationBurst,
			registrationIdleTTL,
		),
	}

	s.setupMiddleware(cfg.Server.CORSOrigins)

	// Everything, including huma's docs, lives under the base path.
	var r chi.Router = s.router
	if s.basePath != "" {
		sub := chi.NewRouter()
		sub.NotFound(response.NotFound)
		sub.MethodNotAllowed(response.MethodNotAllowed)
		s.router.Mount(s.basePath, sub)
		r = sub
	}

	humaConfig := huma.DefaultConfig("Noteful API", "1.0.0")
	humaConfig.Info.Description = "Notes organised into folders and tags."
	// No $schema links in response bodies.
	humaConfig.CreateHooks = nil
	if s.basePath != "" {
		humaConfig.Servers = []*huma.Server{{URL: s.basePath}}
	}

	s.api = humachi.New(r, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerNoteRoutes()
	s.registerFolderRoutes()
	s.registerTagRoutes()
	s.registerUserRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the huma API, used by tests and OpenAPI export.
func (s *Server) API() huma.API {
	return s.api
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.registrationLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(recoverer(s.logger))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))

	s.router.NotFound(response.NotFound)
	s.router.MethodNotAllowed(response.MethodNotAllowed)
}

// location builds the Location header value for a created resource.
func (s *Server) location(collection, id string) string {
	return s.basePath + "/" + collection + "/" + id
}
