// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ethos wraps the Ethos network reputation API. There is no official
// Go SDK, so this is a thin JSON client over the v2 REST endpoints.
package ethos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
)

// ErrProfileNotFound is returned when the identity has no Ethos profile.
var ErrProfileNotFound = errors.New("reputation profile not found")

const defaultTimeout = 10 * time.Second

type userResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Score  int    `json:"score"`
	Stats  struct {
		Vouch struct {
			Received struct {
				Count int `json:"count"`
			} `json:"received"`
		} `json:"vouch"`
		Review struct {
			Received struct {
				Positive int `json:"positive"`
				Negative int `json:"negative"`
			} `json:"received"`
		} `json:"review"`
	} `json:"stats"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client struct {
	baseURL string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = apiURL
	c.client = &http.Client{
		Timeout:   defaultTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// GetProfile fetches the reputation profile for a userkey, e.g.
// "address:0xabc..." or "service:x.com:username:alice".
func (c *Client) GetProfile(ctx context.Context, identityID string) (*types.ReputationProfile, error) {
	ctx, span := c.tracer.Start(ctx, "ethos.GetProfile")
	defer span.End()

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(identityID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reputation provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrProfileNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("reputation provider returned status %d", resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	profile := &types.ReputationProfile{
		IdentityID:    identityID,
		Score:         user.Score,
		VouchCount:    user.Stats.Vouch.Received.Count,
		ReviewBalance: user.Stats.Review.Received.Positive - user.Stats.Review.Received.Negative,
		Slashed:       user.Status == "SLASHED",
	}

	if !user.CreatedAt.IsZero() {
		profile.AccountAge = int(time.Since(user.CreatedAt).Hours() / 24)
	}

	return profile, nil
}
