// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package criteria defines the admission rule set a project gates access on.
package criteria

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Preset names.
const (
	PresetBasic    = "basic"
	PresetStandard = "standard"
	PresetStrict   = "strict"
)

// Criteria is the rule set evaluated against a reputation profile. All
// thresholds are inclusive.
type Criteria struct {
	MinScore               int  `json:"min_score" validate:"min=0,max=3000"`
	MinVouches             int  `json:"min_vouches" validate:"min=0,max=100"`
	RequirePositiveReviews bool `json:"require_positive_reviews"`
	MinAccountAge          int  `json:"min_account_age" validate:"min=0,max=1000"`
}

var presets = map[string]Criteria{
	PresetBasic: {
		MinScore:               1200,
		MinVouches:             0,
		RequirePositiveReviews: false,
		MinAccountAge:          0,
	},
	PresetStandard: {
		MinScore:               1400,
		MinVouches:             1,
		RequirePositiveReviews: true,
		MinAccountAge:          7,
	},
	PresetStrict: {
		MinScore:               1600,
		MinVouches:             2,
		RequirePositiveReviews: true,
		MinAccountAge:          30,
	},
}

var validate = validator.New()

// ResolvePreset returns the criteria for a named preset. Unknown names fall
// back to the standard preset.
func ResolvePreset(name string) Criteria {
	c, ok := presets[name]
	if !ok {
		return presets[PresetStandard]
	}
	return c
}

// Validate checks the thresholds are within their allowed bounds.
func (c Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid criteria: %w", err)
	}
	return nil
}

// Describe renders the rule set as human readable requirement lines, shown to
// applicants alongside a rejection.
func (c Criteria) Describe() []string {
	rules := []string{
		fmt.Sprintf("Ethos score of at least %d", c.MinScore),
	}
	if c.MinVouches > 0 {
		rules = append(rules, fmt.Sprintf("at least %d vouches received", c.MinVouches))
	}
	if c.RequirePositiveReviews {
		rules = append(rules, "more positive than negative reviews")
	}
	if c.MinAccountAge > 0 {
		rules = append(rules, fmt.Sprintf("account older than %d days", c.MinAccountAge))
	}
	rules = append(rules, "no slashing record")
	return rules
}

// EstimatePassRate is a rough share of Ethos profiles expected to clear the
// rule set, shown as a dashboard hint. It is a heuristic, not a measurement.
func (c Criteria) EstimatePassRate() int {
	var rate int
	switch {
	case c.MinScore >= 1600:
		rate = 10
	case c.MinScore >= 1400:
		rate = 25
	case c.MinScore >= 1200:
		rate = 45
	default:
		rate = 70
	}

	rate -= c.MinVouches * 5
	if c.RequirePositiveReviews {
		rate -= 10
	}
	rate -= c.MinAccountAge / 10

	if rate < 1 {
		rate = 1
	}
	return rate
}
