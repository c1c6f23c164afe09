// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package eligibility holds the pure decision engine. It has no storage or
// transport concerns: a reputation snapshot and a rule set go in, a decision
// comes out.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/criteria"
)

// Decision is the outcome of evaluating a profile against a rule set.
// FailedRules is empty exactly when Status is not rejected.
type Decision struct {
	Status      string
	Score       int
	FailedRules []string
}

// Reason joins the failure messages into a single line for API responses.
func (d Decision) Reason() string {
	return strings.Join(d.FailedRules, "; ")
}

// Evaluate applies the rule set to the profile. A slashing record rejects
// immediately and alone; every other failed rule is accumulated so the
// applicant sees the full distance to acceptance. Thresholds are inclusive.
func Evaluate(profile *types.ReputationProfile, c criteria.Criteria, manualReview bool) Decision {
	d := Decision{Score: profile.Score}

	if profile.Slashed {
		d.Status = types.StatusRejected
		d.FailedRules = []string{"profile has an active slashing record"}
		return d
	}

	if profile.Score < c.MinScore {
		d.FailedRules = append(d.FailedRules,
			fmt.Sprintf("score %d is below the required %d", profile.Score, c.MinScore))
	}

	if profile.VouchCount < c.MinVouches {
		d.FailedRules = append(d.FailedRules,
			fmt.Sprintf("%d vouches received, %d required", profile.VouchCount, c.MinVouches))
	}

	if c.RequirePositiveReviews && profile.ReviewBalance <= 0 {
		d.FailedRules = append(d.FailedRules,
			fmt.Sprintf("review balance %d is not positive", profile.ReviewBalance))
	}

	if profile.AccountAge < c.MinAccountAge {
		d.FailedRules = append(d.FailedRules,
			fmt.Sprintf("account is %d days old, %d required", profile.AccountAge, c.MinAccountAge))
	}

	if len(d.FailedRules) > 0 {
		d.Status = types.StatusRejected
		return d
	}

	if manualReview {
		d.Status = types.StatusPending
		return d
	}

	d.Status = types.StatusAccepted
	return d
}
