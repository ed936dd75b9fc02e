// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"maps"
	"slices"
	"time"
)

// RecommendationEntry is an accepted submission: the input profile, what the
// engine produced for it, an identifier and a creation time. Entries are never
// mutated after creation.
type RecommendationEntry struct {
	// ID is a UUID assigned at submission.
	ID string `json:"id" yaml:"id"`

	// CreatedAt is the UTC submission time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	Profile        SealInputProfile   `json:"profile" yaml:"profile"`
	Hydraulics     HydraulicResult    `json:"hydraulics" yaml:"hydraulics"`
	Recommendation SealRecommendation `json:"recommendation" yaml:"recommendation"`
	Mitigations    []Mitigation       `json:"mitigations" yaml:"mitigations"`
}

// Clone returns a deep copy of e. The copy shares no maps, slices or
// pointers with e.
func (e RecommendationEntry) Clone() RecommendationEntry {
	c := e
	c.Profile.Density = cloneFloat(e.Profile.Density)
	c.Profile.UserViscosity = cloneFloat(e.Profile.UserViscosity)
	c.Recommendation.Reasons = maps.Clone(e.Recommendation.Reasons)
	c.Recommendation.ComplianceNotes = slices.Clone(e.Recommendation.ComplianceNotes)
	c.Mitigations = slices.Clone(e.Mitigations)
	return c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}
