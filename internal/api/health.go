// Copyright (c) 2026 Daleel Balady. All rights reserved.

package api

import (
	"log/slog"
	"net/http"

	"github.com/daleelbalady/daleel/internal/platform/constants"
	"github.com/daleelbalady/daleel/internal/platform/respond"
)

// HealthDependencies holds the pingable backends the /ready endpoint reports on.
// A nil checker means the deployment runs without that backend and the probe
// skips it, which keeps dry-run and cache-less setups green.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health. It answers as long as the process serves
// requests; backends are the readiness probe's concern.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready. Any failing backend degrades the whole
// probe to 503 so the load balancer stops routing here.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	checks := []struct {
		name string
		ping func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	results := make([]checkResult, 0, len(checks))
	ready := true

	for _, check := range checks {
		if check.ping == nil {
			continue
		}

		result := checkResult{Name: check.name, IsOK: true}
		if err := check.ping(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			ready = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", check.name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	status := "ready"
	if !ready {
		status = "degraded"
	}

	body := map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}
	if ready {
		respond.OK(writer, body)
		return
	}
	respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{Data: body})
}