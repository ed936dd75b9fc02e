// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package advisor is the engine entry point. It runs the hydraulic analysis,
// the seal classification and the mitigation advisor over one profile.
package advisor

import (
	"github.com/pdiddy/seal-advisor/internal/classify"
	"github.com/pdiddy/seal-advisor/internal/hydraulics"
	"github.com/pdiddy/seal-advisor/internal/mitigation"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// Evaluation is the complete engine output for one profile.
type Evaluation struct {
	Hydraulics     types.HydraulicResult    `json:"hydraulics" yaml:"hydraulics"`
	Recommendation types.SealRecommendation `json:"recommendation" yaml:"recommendation"`
	Mitigations    []types.Mitigation       `json:"mitigations" yaml:"mitigations"`
}

// Evaluate analyzes hydraulics, classifies the seal with the hydraulic result
// in hand, and derives mitigations from the same conditions. It is a pure
// function of p.
func Evaluate(p types.SealInputProfile) Evaluation {
	h := hydraulics.Analyze(p)
	c := classify.Derive(p, &h)

	return Evaluation{
		Hydraulics:     h,
		Recommendation: classify.RecommendWith(c, p.Preferences),
		Mitigations:    mitigation.Advise(c, &h),
	}
}

// Recommend classifies p. h is optional.
func Recommend(p types.SealInputProfile, h *types.HydraulicResult) types.SealRecommendation {
	return classify.Recommend(p, h)
}

// AnalyzeHydraulics runs the hydraulic analysis alone.
func AnalyzeHydraulics(p types.SealInputProfile) types.HydraulicResult {
	return hydraulics.Analyze(p)
}
