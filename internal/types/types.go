// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the records shared between the storage layer and the
// domain services.
package types

import (
	"time"

	"github.com/ethosgate/access-service/pkg/criteria"
)

// Application status values. An application is unique per (project, identity)
// and moves between these states as it is evaluated and reviewed.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Destination types an accepted applicant is invited into.
const (
	DestinationDiscord = "discord"
	DestinationBeta    = "beta"
)

type Project struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Benefits        string            `json:"benefits,omitempty"`
	DestinationURL  string            `json:"destination_url"`
	DestinationType string            `json:"destination_type"`
	Criteria        criteria.Criteria `json:"criteria"`
	ManualReview    bool              `json:"manual_review"`
	Active          bool              `json:"active"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type Application struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	IdentityID string `json:"identity_id"`
	Status     string `json:"status"`
	// Score, FailedRules and CriteriaSnapshot capture what the decision was
	// made against, not the live values: later criteria edits never change a
	// recorded decision.
	Score            int               `json:"score"`
	FailedRules      []string          `json:"failed_rules,omitempty"`
	CriteriaSnapshot criteria.Criteria `json:"criteria_snapshot"`
	// CanReapplyAt is set once at rejection time and read back verbatim while
	// the cooldown is active.
	CanReapplyAt *time.Time `json:"can_reapply_at,omitempty"`
	ReviewedBy   string     `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type InviteToken struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	Token         string `json:"token"`
	Used          bool   `json:"used"`
	// UsedAt and UsedFromIP are set exactly once, by the redemption update.
	UsedAt     *time.Time `json:"used_at,omitempty"`
	UsedFromIP string     `json:"used_from_ip,omitempty"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ReputationProfile is the subset of an identity's reputation the decision
// engine consumes.
type ReputationProfile struct {
	IdentityID    string `json:"identity_id"`
	Score         int    `json:"score"`
	VouchCount    int    `json:"vouch_count"`
	ReviewBalance int    `json:"review_balance"`
	AccountAge    int    `json:"account_age_days"`
	Slashed       bool   `json:"slashed"`
}

type ApplicationStats struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}
