// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns engine output into the summaries shown to users:
// preferred-versus-recommended comparison rows, a short narrative and
// metric ratings on a 0..3 scale.
package report

import (
	"strings"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// NoOverride is the comparison reason when the preference stands.
const NoOverride = "No override needed."

var flushPlanDescriptions = map[types.FlushPlan]string{
	types.Plan11:  "discharge to seal chamber",
	types.Plan13:  "seal chamber to suction",
	types.Plan21:  "cooled flush from discharge",
	types.Plan23:  "closed-loop cooling",
	types.Plan31:  "cyclone separator for solids",
	types.Plan32:  "external flush fluid",
	types.Plan51:  "external quench cooling",
	types.Plan52:  "unpressurized buffer fluid",
	types.Plan53A: "pressurized barrier with reservoir",
	types.Plan53B: "pressurized barrier with bladder",
	types.Plan53C: "pressurized barrier with piston",
	types.Plan54:  "external pressurized barrier",
	types.Plan62:  "external quench",
	types.Plan75:  "condensate collection",
	types.Plan76:  "vapor recovery",
}

// FlushPlanDescription returns a short description of plan, or "custom".
func FlushPlanDescription(plan types.FlushPlan) string {
	if d, ok := flushPlanDescriptions[plan]; ok {
		return d
	}
	return "custom"
}

// CategoryLabel returns a one-word gloss for c.
func CategoryLabel(c types.Category) string {
	switch c {
	case types.Category3:
		return "high safety"
	case types.Category2:
		return "robust"
	default:
		return "standard"
	}
}

// TypeLabel returns a short gloss for t.
func TypeLabel(t types.SealType) string {
	switch t {
	case types.TypeC:
		return "metal bellows, high temp"
	case types.TypeB:
		return "bellows, no dynamic O-ring"
	default:
		return "pusher, general use"
	}
}

// ArrangementLabel returns a short gloss for a.
func ArrangementLabel(a types.Arrangement) string {
	switch a {
	case types.Arrangement3:
		return "zero emissions"
	case types.Arrangement2:
		return "low emissions"
	default:
		return "single"
	}
}

// MaterialLabel returns "high durability" for silicon carbide pairs.
func MaterialLabel(m types.Material) string {
	if strings.Contains(string(m), "Silicon Carbide") {
		return "high durability"
	}
	return "standard"
}

// Row is one line of the preference comparison.
type Row struct {
	Parameter   string `json:"parameter" yaml:"parameter"`
	Preferred   string `json:"preferred" yaml:"preferred"`
	Recommended string `json:"recommended" yaml:"recommended"`
	Reason      string `json:"reason" yaml:"reason"`
}

// Overridden reports whether the engine departed from a stated preference.
func (r Row) Overridden() bool {
	return r.Preferred != "" && r.Preferred != r.Recommended
}

// Comparison lists each user-selectable field with the preference, the
// recommendation and, when they differ, the reason for the override.
// A field with no stated preference, or one the engine agreed with, shows
// NoOverride even though rec.Reasons holds a reason for it; the full
// reasons are printed separately by the rationale view.
func Comparison(rec types.SealRecommendation) []Row {
	rows := []Row{
		{"Category", string(rec.PreferredCategory), string(rec.Category), ""},
		{"Type", string(rec.PreferredType), string(rec.Type), ""},
		{"Arrangement", string(rec.PreferredArrangement), string(rec.Arrangement), ""},
		{"Flush Plan", string(rec.PreferredFlushPlan), string(rec.FlushPlan), ""},
		{"Material", string(rec.PreferredMaterial), string(rec.Material), ""},
	}
	fields := []types.Field{
		types.FieldCategory, types.FieldType, types.FieldArrangement,
		types.FieldFlushPlan, types.FieldMaterial,
	}

	for i := range rows {
		rows[i].Reason = NoOverride
		if !rows[i].Overridden() {
			continue
		}
		if reason, ok := rec.Reasons[fields[i]]; ok && reason.Text != "" {
			rows[i].Reason = reason.Text
		}
	}
	return rows
}
