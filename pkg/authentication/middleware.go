// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/tracing"
)

type Middleware struct {
	verifier   TokenVerifierInterface
	adminScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// The operational endpoints need no identity.
var publicEndpoints = []string{
	"/api/v0/status",
	"/api/v0/version",
	"/api/v0/metrics",
}

// isPublic exempts exactly the project browse surface: the catalogue and a
// single project's public view. Everything underneath a project (applications,
// stats) carries applicant data and stays authenticated.
func (m *Middleware) isPublic(r *http.Request) bool {
	if r.Method == http.MethodGet {
		if r.URL.Path == "/api/v0/projects" {
			return true
		}
		if slug, ok := strings.CutPrefix(r.URL.Path, "/api/v0/projects/"); ok && slug != "" && !strings.Contains(slug, "/") {
			return true
		}
	}

	for _, endpoint := range publicEndpoints {
		if r.URL.Path == endpoint {
			return true
		}
	}

	return false
}

// isAdmin marks the routes that decide for others: manual review and project
// management.
func (m *Middleware) isAdmin(r *http.Request) bool {
	if r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/v0/applications/") {
		return true
	}
	if r.Method == http.MethodPost && r.URL.Path == "/api/v0/projects" {
		return true
	}
	if r.Method == http.MethodPatch {
		if slug, ok := strings.CutPrefix(r.URL.Path, "/api/v0/projects/"); ok && slug != "" && !strings.Contains(slug, "/") {
			return true
		}
	}

	return false
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			if m.isAdmin(r) && !principal.HasScope(m.adminScope) {
				m.logger.Security().AuthzFailure(principal.Subject, "admin_access")
				m.forbiddenResponse(w, "missing admin scope")
				return
			}

			ctx = WithUserID(ctx, principal.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func (m *Middleware) forbiddenResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusForbidden,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode forbidden response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, adminScope string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:   verifier,
		adminScope: adminScope,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
