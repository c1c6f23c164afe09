// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package web assembles the HTTP router from the package APIs.
package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ethosgate/access-service/internal/db"
	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/pkg/application"
	"github.com/ethosgate/access-service/pkg/authentication"
	"github.com/ethosgate/access-service/pkg/invite"
	"github.com/ethosgate/access-service/pkg/metrics"
	"github.com/ethosgate/access-service/pkg/project"
	"github.com/ethosgate/access-service/pkg/status"
)

func NewRouter(
	applicationService application.ServiceInterface,
	inviteService invite.ServiceInterface,
	projectService project.ServiceInterface,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		authMiddleware.Authenticate(),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	project.NewAPI(projectService, tracer, monitor, logger).RegisterEndpoints(router)
	application.NewAPI(applicationService, tracer, monitor, logger).RegisterEndpoints(router)
	invite.NewAPI(inviteService, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
