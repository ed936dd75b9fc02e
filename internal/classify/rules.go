// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// Governing clauses cited in the rationale trail.
const (
	RefCategory    = "API 682 §4.1 Seal categories"
	RefType        = "API 682 §4.2 Seal types"
	RefArrangement = "API 682 §4.3 Seal arrangements"
	RefFlushPlan   = "API 682 Annex G Piping plans"
	RefMaterial    = "API 682 §6.1.6 Seal face materials"
	RefReliability = "API 682 §4.1.3 Emissions and reliability"
)

// facts is what a rule predicate sees: the service conditions plus fields
// already decided earlier in the same call.
type facts struct {
	Conditions
	arrangement types.Arrangement
}

// rule is one row of a decision table. A row that matches decides the field;
// rows after it are not evaluated.
type rule[T ~string] struct {
	when    func(f facts) bool
	outcome T
	reason  string
}

// table is the ordered decision table for one field. fallback applies when
// no row matches and does not add a compliance note.
type table[T ~string] struct {
	field     types.Field
	reference string
	rules     []rule[T]
	fallback  rule[T]
}

// decision is the outcome of evaluating a table.
type decision[T ~string] struct {
	value  T
	reason types.Reason
	note   string // empty when the fallback applied
}

func (tb table[T]) decide(f facts) decision[T] {
	for _, r := range tb.rules {
		if r.when(f) {
			return decision[T]{
				value:  r.outcome,
				reason: types.Reason{Text: r.reason, Reference: tb.reference},
				note:   fmt.Sprintf("%s: %s (%s)", r.outcome, r.reason, tb.reference),
			}
		}
	}
	return decision[T]{
		value:  tb.fallback.outcome,
		reason: types.Reason{Text: tb.fallback.reason, Reference: tb.reference},
	}
}

var categoryTable = table[types.Category]{
	field:     types.FieldCategory,
	reference: RefCategory,
	rules: []rule[types.Category]{
		{func(f facts) bool { return f.Hazardous }, types.Category3, "Hazardous fluid requires the highest duty category."},
		{func(f facts) bool { return f.Flashing }, types.Category3, "Flashing service requires the highest duty category."},
		{func(f facts) bool { return f.VeryHighTemp }, types.Category3, "Temperature above 260 °C exceeds the Category 2 envelope."},
		{func(f facts) bool { return f.VeryHighPressure }, types.Category3, "Pressure above 60 bar exceeds the Category 2 envelope."},
		{func(f facts) bool { return f.ElevatedTemp }, types.Category2, "Temperature above 150 °C exceeds the Category 1 envelope."},
		{func(f facts) bool { return f.HighPressure }, types.Category2, "Pressure above 20 bar exceeds the Category 1 envelope."},
		{func(f facts) bool { return f.Abrasive }, types.Category2, "Abrasive solids call for a heavier duty seal."},
		{func(f facts) bool { return f.Polymerizing }, types.Category2, "Polymerizing fluid calls for a heavier duty seal."},
	},
	fallback: rule[types.Category]{outcome: types.Category1, reason: "Conditions are within the Category 1 envelope."},
}

var typeTable = table[types.SealType]{
	field:     types.FieldType,
	reference: RefType,
	rules: []rule[types.SealType]{
		{func(f facts) bool { return f.VeryHighTemp }, types.TypeC, "Temperature above 260 °C requires a metal bellows seal."},
		{func(f facts) bool { return f.ExtremeViscosity }, types.TypeC, "Viscosity above 2000 cP requires a metal bellows seal."},
		{func(f facts) bool { return f.HighTemp }, types.TypeB, "Temperature above 200 °C favors a bellows design."},
		{func(f facts) bool { return f.HighViscosity }, types.TypeB, "Viscosity above 500 cP favors a bellows design."},
		{func(f facts) bool { return f.Polymerizing }, types.TypeB, "Polymerizing fluid would hang up pusher springs."},
		{func(f facts) bool { return f.Hazardous }, types.TypeB, "Hazardous service favors a bellows design without dynamic O-rings."},
		{func(f facts) bool { return f.Flashing }, types.TypeB, "Flashing service favors a bellows design without dynamic O-rings."},
	},
	fallback: rule[types.SealType]{outcome: types.TypeA, reason: "Standard pusher seal suits general service."},
}

var arrangementTable = table[types.Arrangement]{
	field:     types.FieldArrangement,
	reference: RefArrangement,
	rules: []rule[types.Arrangement]{
		{func(f facts) bool { return f.Hazardous }, types.Arrangement3, "Hazardous fluid requires a dual pressurized seal for zero emissions."},
		{func(f facts) bool { return f.Flashing }, types.Arrangement3, "Flashing fluid requires a dual pressurized seal."},
		{func(f facts) bool { return f.VeryHighPressure }, types.Arrangement3, "Pressure above 60 bar requires a dual pressurized seal."},
		{func(f facts) bool { return f.ElevatedTemp }, types.Arrangement2, "Temperature above 150 °C calls for a dual unpressurized seal."},
		{func(f facts) bool { return f.HighPressure }, types.Arrangement2, "Pressure above 20 bar calls for a dual unpressurized seal."},
		{func(f facts) bool { return f.Abrasive }, types.Arrangement2, "Abrasive service calls for a dual unpressurized seal."},
		{func(f facts) bool { return f.Polymerizing }, types.Arrangement2, "Polymerizing service calls for a dual unpressurized seal."},
	},
	fallback: rule[types.Arrangement]{outcome: types.Arrangement1, reason: "A single seal is sufficient."},
}

var flushPlanTable = table[types.FlushPlan]{
	field:     types.FieldFlushPlan,
	reference: RefFlushPlan,
	rules: []rule[types.FlushPlan]{
		{func(f facts) bool { return f.Hazardous }, types.Plan53C, "Hazardous fluid requires a pressurized barrier."},
		{func(f facts) bool { return f.Flashing }, types.Plan53C, "Flashing fluid requires a pressurized barrier."},
		{func(f facts) bool { return f.VeryHighPressure }, types.Plan53C, "Pressure above 60 bar requires a pressurized barrier."},
		{func(f facts) bool { return f.Abrasive && f.HighPressure }, types.Plan54, "Abrasive fluid at high pressure needs an external pressurized barrier."},
		{func(f facts) bool { return f.Abrasive }, types.Plan32, "Abrasive fluid needs a clean external flush."},
		{func(f facts) bool { return f.HighTemp }, types.Plan23, "Temperature above 200 °C needs closed-loop cooling."},
		{func(f facts) bool { return f.Polymerizing }, types.Plan52, "Polymerizing fluid needs an unpressurized buffer."},
		{func(f facts) bool { return f.HighViscosity }, types.Plan21, "Viscous fluid needs a cooled flush from discharge."},
	},
	fallback: rule[types.FlushPlan]{outcome: types.Plan11, reason: "Discharge recirculation suits clean service."},
}

var materialTable = table[types.Material]{
	field:     types.FieldMaterial,
	reference: RefMaterial,
	rules: []rule[types.Material]{
		{func(f facts) bool { return f.Hazardous }, types.MaterialSiCSiC, "Hazardous service needs hard faces on both sides."},
		{func(f facts) bool { return f.Flashing }, types.MaterialSiCSiC, "Flashing service can run dry, so both faces must be hard."},
		{func(f facts) bool { return f.VeryHighTemp }, types.MaterialSiCSiC, "Temperature above 260 °C exceeds carbon face limits."},
		{func(f facts) bool { return f.Abrasive }, types.MaterialTungstenSiC, "Abrasive solids wear carbon faces."},
		{func(f facts) bool { return f.Corrosive }, types.MaterialReactiveOxideSiC, "Acid or caustic fluid attacks carbon binders."},
		{func(f facts) bool { return f.Polymerizing }, types.MaterialCarbonGraphiteSiC, "Polymerizing fluid needs a self-lubricating graphite face."},
	},
	fallback: rule[types.Material]{outcome: types.MaterialCarbonSiC, reason: "Standard face pair for clean service."},
}

// reliabilityTable decides reliability from the final arrangement first.
// leakageFor maps its outcome to a band.
var reliabilityTable = table[types.Reliability]{
	field:     types.FieldReliability,
	reference: RefReliability,
	rules: []rule[types.Reliability]{
		{func(f facts) bool { return f.arrangement == types.Arrangement3 }, types.ReliabilityHigh, "Dual pressurized arrangement gives zero process emissions."},
		{func(f facts) bool { return f.arrangement == types.Arrangement2 }, types.ReliabilityHigh, "Dual unpressurized arrangement contains process leakage."},
		{func(f facts) bool { return f.Hazardous || f.Flashing }, types.ReliabilityEnhanced, "Hazardous or flashing service needs enhanced monitoring."},
		{func(f facts) bool { return f.ModerateViscosity || f.ElevatedSpeed }, types.ReliabilityModerate, "Viscosity above 100 cP or speed above 2000 RPM loads the faces."},
	},
	fallback: rule[types.Reliability]{outcome: types.ReliabilityStandard, reason: "Standard service conditions."},
}

// leakageFor returns the leakage band that goes with the reliability
// decision. Arrangement 3 and 2 share the High class but differ in band.
func leakageFor(r types.Reliability, a types.Arrangement) types.LeakageRate {
	switch {
	case a == types.Arrangement3:
		return types.LeakageZero
	case a == types.Arrangement2:
		return types.LeakageVeryLow
	case r == types.ReliabilityEnhanced:
		return types.LeakageLow
	case r == types.ReliabilityModerate:
		return types.LeakageModerate
	default:
		return types.LeakageStandard
	}
}
