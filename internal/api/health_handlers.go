package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

const (
	statusUp   = "healthy"
	statusDown = "unhealthy"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the document store answers reads. Responds 503 when it does not.",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth is the check result for one dependency.
type ComponentHealth struct {
	Status  string `json:"status" enum:"healthy,unhealthy"`
	Latency string `json:"latency" doc:"Check round trip"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string                     `json:"status" enum:"healthy,unhealthy"`
	Components map[string]ComponentHealth `json:"components"`
}

// HealthOutput carries the status code alongside the body.
type HealthOutput struct {
	Status int
	Body   HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	db := s.checkStore(ctx)

	out := &HealthOutput{
		Status: http.StatusOK,
		Body: HealthResponse{
			Status:     db.Status,
			Components: map[string]ComponentHealth{"database": db},
		},
	}
	if db.Status != statusUp {
		out.Status = http.StatusServiceUnavailable
	}
	return out, nil
}

func (s *Server) checkStore(ctx context.Context) ComponentHealth {
	start := time.Now()
	err := s.store.Ping(ctx)
	h := ComponentHealth{Status: statusUp, Latency: time.Since(start).String()}
	if err != nil {
		s.logger.Warn("health check failed", "error", err)
		h.Status = statusDown
		h.Message = "database unavailable"
	}
	return h
}
