// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns a seal input profile into a seal specification.
//
// Each classified field is decided by an ordered decision table of
// (predicate, outcome, reason) rows; the first matching row wins and rows are
// never combined. Fields are decided in a fixed order, category, type,
// arrangement, flush plan, material, reliability, because the flush plan is
// reconciled against the decided arrangement and reliability reads it too.
package classify

import (
	"fmt"
	"slices"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// validPlans lists the flush plans compatible with each arrangement. The
// first member is the arrangement's default.
var validPlans = map[types.Arrangement][]types.FlushPlan{
	types.Arrangement1: {types.Plan11, types.Plan13, types.Plan21, types.Plan23, types.Plan31, types.Plan32, types.Plan62},
	types.Arrangement2: {types.Plan52, types.Plan75, types.Plan76},
	types.Arrangement3: {types.Plan53C, types.Plan53A, types.Plan53B, types.Plan54},
}

// ValidPlans returns the flush plans allowed for arrangement a.
func ValidPlans(a types.Arrangement) []types.FlushPlan {
	return slices.Clone(validPlans[a])
}

// PlanAllowed reports whether plan is valid for arrangement a.
func PlanAllowed(a types.Arrangement, plan types.FlushPlan) bool {
	return slices.Contains(validPlans[a], plan)
}

// Recommend classifies p into a SealRecommendation. h may be nil; when
// given, it feeds the NPSH margin conditions. Recommend is deterministic and
// never fails: missing inputs leave their conditions false.
func Recommend(p types.SealInputProfile, h *types.HydraulicResult) types.SealRecommendation {
	return RecommendWith(Derive(p, h), p.Preferences)
}

// RecommendWith classifies already-derived conditions. Preferences are
// copied to the preferred* fields and play no part in the decision.
func RecommendWith(c Conditions, prefs types.Preferences) types.SealRecommendation {
	rec := types.SealRecommendation{
		Reasons:              make(map[types.Field]types.Reason, 6),
		ComplianceNotes:      []string{},
		PreferredCategory:    prefs.Category,
		PreferredType:        prefs.Type,
		PreferredArrangement: prefs.Arrangement,
		PreferredFlushPlan:   prefs.FlushPlan,
		PreferredMaterial:    prefs.Material,
	}
	f := facts{Conditions: c}

	category := categoryTable.decide(f)
	rec.Category = category.value
	record(&rec, categoryTable.field, category.reason, category.note)

	sealType := typeTable.decide(f)
	rec.Type = sealType.value
	record(&rec, typeTable.field, sealType.reason, sealType.note)

	arrangement := arrangementTable.decide(f)
	rec.Arrangement = arrangement.value
	record(&rec, arrangementTable.field, arrangement.reason, arrangement.note)
	f.arrangement = rec.Arrangement

	plan := flushPlanTable.decide(f)
	rec.FlushPlan = plan.value
	record(&rec, flushPlanTable.field, plan.reason, plan.note)
	reconcileFlushPlan(&rec)

	material := materialTable.decide(f)
	rec.Material = material.value
	record(&rec, materialTable.field, material.reason, material.note)

	reliability := reliabilityTable.decide(f)
	rec.Reliability = reliability.value
	rec.LeakageRate = leakageFor(rec.Reliability, rec.Arrangement)
	record(&rec, reliabilityTable.field, reliability.reason, reliability.note)

	return rec
}

// reconcileFlushPlan forces the flush plan into the set valid for the decided
// arrangement, replacing it with the arrangement default and noting the
// override.
func reconcileFlushPlan(rec *types.SealRecommendation) {
	allowed, ok := validPlans[rec.Arrangement]
	if !ok || slices.Contains(allowed, rec.FlushPlan) {
		return
	}

	replacement := allowed[0]
	text := fmt.Sprintf("%s is not valid for %s; using %s.", rec.FlushPlan, rec.Arrangement, replacement)
	rec.Reasons[types.FieldFlushPlan] = types.Reason{
		Text:      text + " " + rec.Reasons[types.FieldFlushPlan].Text,
		Reference: RefFlushPlan,
	}
	rec.ComplianceNotes = append(rec.ComplianceNotes,
		fmt.Sprintf("Arrangement consistency: %s (%s)", text, RefFlushPlan))
	rec.FlushPlan = replacement
}

func record(rec *types.SealRecommendation, field types.Field, reason types.Reason, note string) {
	rec.Reasons[field] = reason
	if note != "" {
		rec.ComplianceNotes = append(rec.ComplianceNotes, note)
	}
}
