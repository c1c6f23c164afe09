// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package criteria

import (
	"testing"
)

func TestResolvePreset(t *testing.T) {
	testCases := []struct {
		name     string
		preset   string
		expected Criteria
	}{
		{
			name:   "basic preset",
			preset: PresetBasic,
			expected: Criteria{
				MinScore:               1200,
				MinVouches:             0,
				RequirePositiveReviews: false,
				MinAccountAge:          0,
			},
		},
		{
			name:   "standard preset",
			preset: PresetStandard,
			expected: Criteria{
				MinScore:               1400,
				MinVouches:             1,
				RequirePositiveReviews: true,
				MinAccountAge:          7,
			},
		},
		{
			name:   "strict preset",
			preset: PresetStrict,
			expected: Criteria{
				MinScore:               1600,
				MinVouches:             2,
				RequirePositiveReviews: true,
				MinAccountAge:          30,
			},
		},
		{
			name:   "unknown preset falls back to standard",
			preset: "platinum",
			expected: Criteria{
				MinScore:               1400,
				MinVouches:             1,
				RequirePositiveReviews: true,
				MinAccountAge:          7,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ResolvePreset(tc.preset)

			if c != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, c)
			}
		})
	}
}

func TestCriteriaValidate(t *testing.T) {
	testCases := []struct {
		name     string
		criteria Criteria
		wantErr  bool
	}{
		{
			name:     "zero value is valid",
			criteria: Criteria{},
		},
		{
			name: "upper bounds are valid",
			criteria: Criteria{
				MinScore:      3000,
				MinVouches:    100,
				MinAccountAge: 1000,
			},
		},
		{
			name: "score above bound",
			criteria: Criteria{
				MinScore: 3001,
			},
			wantErr: true,
		},
		{
			name: "negative vouches",
			criteria: Criteria{
				MinVouches: -1,
			},
			wantErr: true,
		},
		{
			name: "account age above bound",
			criteria: Criteria{
				MinAccountAge: 1001,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.criteria.Validate()

			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCriteriaDescribe(t *testing.T) {
	c := ResolvePreset(PresetStandard)

	rules := c.Describe()

	if len(rules) != 5 {
		t.Fatalf("expected 5 requirement lines, got %d: %v", len(rules), rules)
	}

	if rules[0] != "Ethos score of at least 1400" {
		t.Errorf("unexpected first rule: %q", rules[0])
	}

	if rules[len(rules)-1] != "no slashing record" {
		t.Errorf("expected slashing rule last, got %q", rules[len(rules)-1])
	}
}

func TestEstimatePassRate(t *testing.T) {
	testCases := []struct {
		name     string
		criteria Criteria
		expected int
	}{
		{
			name:     "open door",
			criteria: Criteria{},
			expected: 70,
		},
		{
			name:     "basic preset",
			criteria: ResolvePreset(PresetBasic),
			expected: 45,
		},
		{
			name:     "standard preset",
			criteria: ResolvePreset(PresetStandard),
			expected: 10,
		},
		{
			name:     "strict preset never drops below one percent",
			criteria: Criteria{MinScore: 1600, MinVouches: 100, RequirePositiveReviews: true, MinAccountAge: 1000},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.criteria.EstimatePassRate(); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}
