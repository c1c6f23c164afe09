// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package eligibility

import (
	"strings"
	"testing"

	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/criteria"
)

func standardCriteria() criteria.Criteria {
	return criteria.Criteria{
		MinScore:               1400,
		MinVouches:             1,
		RequirePositiveReviews: true,
		MinAccountAge:          7,
	}
}

func passingProfile() *types.ReputationProfile {
	return &types.ReputationProfile{
		IdentityID:    "address:0xabc",
		Score:         1500,
		VouchCount:    3,
		ReviewBalance: 2,
		AccountAge:    30,
	}
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name           string
		profile        func() *types.ReputationProfile
		criteria       criteria.Criteria
		manualReview   bool
		expectedStatus string
		expectedRules  int
	}{
		{
			name:           "passing profile is accepted",
			profile:        passingProfile,
			criteria:       standardCriteria(),
			expectedStatus: types.StatusAccepted,
		},
		{
			name:           "passing profile goes to review when project requires it",
			profile:        passingProfile,
			criteria:       standardCriteria(),
			manualReview:   true,
			expectedStatus: types.StatusPending,
		},
		{
			name: "slashed profile is rejected with a single rule",
			profile: func() *types.ReputationProfile {
				p := passingProfile()
				p.Slashed = true
				p.Score = 0
				p.VouchCount = 0
				return p
			},
			criteria:       standardCriteria(),
			expectedStatus: types.StatusRejected,
			expectedRules:  1,
		},
		{
			name: "slashed profile stays rejected under manual review",
			profile: func() *types.ReputationProfile {
				p := passingProfile()
				p.Slashed = true
				return p
			},
			criteria:       standardCriteria(),
			manualReview:   true,
			expectedStatus: types.StatusRejected,
			expectedRules:  1,
		},
		{
			name: "multiple failures accumulate",
			profile: func() *types.ReputationProfile {
				return &types.ReputationProfile{
					Score:         1000,
					VouchCount:    0,
					ReviewBalance: -2,
					AccountAge:    1,
				}
			},
			criteria:       standardCriteria(),
			expectedStatus: types.StatusRejected,
			expectedRules:  4,
		},
		{
			name: "thresholds are inclusive",
			profile: func() *types.ReputationProfile {
				return &types.ReputationProfile{
					Score:         1400,
					VouchCount:    1,
					ReviewBalance: 1,
					AccountAge:    7,
				}
			},
			criteria:       standardCriteria(),
			expectedStatus: types.StatusAccepted,
		},
		{
			name: "zero review balance fails the positive reviews rule",
			profile: func() *types.ReputationProfile {
				p := passingProfile()
				p.ReviewBalance = 0
				return p
			},
			criteria:       standardCriteria(),
			expectedStatus: types.StatusRejected,
			expectedRules:  1,
		},
		{
			name: "review balance rule is skipped when not required",
			profile: func() *types.ReputationProfile {
				p := passingProfile()
				p.ReviewBalance = -5
				return p
			},
			criteria: criteria.Criteria{
				MinScore: 1200,
			},
			expectedStatus: types.StatusAccepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.profile(), tc.criteria, tc.manualReview)

			if d.Status != tc.expectedStatus {
				t.Errorf("expected status %q, got %q", tc.expectedStatus, d.Status)
			}

			if len(d.FailedRules) != tc.expectedRules {
				t.Errorf("expected %d failed rules, got %d: %v", tc.expectedRules, len(d.FailedRules), d.FailedRules)
			}
		})
	}
}

func TestEvaluatePresets(t *testing.T) {
	profile := &types.ReputationProfile{
		Score:         1250,
		VouchCount:    0,
		ReviewBalance: 0,
		AccountAge:    3,
	}

	basic := Evaluate(profile, criteria.ResolvePreset(criteria.PresetBasic), false)
	if basic.Status != types.StatusAccepted {
		t.Errorf("expected basic preset to accept, got %q (%v)", basic.Status, basic.FailedRules)
	}

	standard := Evaluate(profile, criteria.ResolvePreset(criteria.PresetStandard), false)
	if standard.Status != types.StatusRejected {
		t.Errorf("expected standard preset to reject, got %q", standard.Status)
	}
	if len(standard.FailedRules) != 4 {
		t.Errorf("expected 4 failed rules under the standard preset, got %d", len(standard.FailedRules))
	}
}

func TestDecisionReason(t *testing.T) {
	d := Decision{FailedRules: []string{"score 1000 is below the required 1400", "0 vouches received, 1 required"}}

	reason := d.Reason()
	if !strings.Contains(reason, "; ") {
		t.Errorf("expected failures joined with a semicolon, got %q", reason)
	}

	if (Decision{}).Reason() != "" {
		t.Error("expected empty reason for a clean decision")
	}
}
