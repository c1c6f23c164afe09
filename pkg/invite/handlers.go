// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/invites/{token}", a.redeem)
}

type redeemResponse struct {
	Status      string     `json:"status"`
	Destination string     `json:"destination,omitempty"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	Message     string     `json:"message,omitempty"`
}

func (a *API) redeem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invite.API.redeem")
	defer span.End()

	identityID, ok := authentication.GetUserID(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	token := chi.URLParam(r, "token")

	result, err := a.service.Redeem(ctx, token, identityID, r.RemoteAddr)
	if err != nil {
		a.logger.Errorf("failed to redeem token: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := redeemResponse{Status: result.Kind}
	var status int

	switch result.Kind {
	case RedemptionSuccess:
		status = http.StatusOK
		resp.Destination = result.Destination
	case RedemptionInvalid:
		status = http.StatusNotFound
		resp.Message = "invite token not found"
	case RedemptionUnauthorized:
		status = http.StatusForbidden
		resp.Message = "invite token belongs to another identity"
	case RedemptionUsed:
		status = http.StatusGone
		resp.Message = "invite token has already been used"
		resp.UsedAt = result.UsedAt
	case RedemptionExpired:
		status = http.StatusGone
		resp.Message = "invite token has expired"
	default:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
