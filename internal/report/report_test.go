// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seal-advisor/internal/advisor"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

func entryFor(p types.SealInputProfile) types.RecommendationEntry {
	ev := advisor.Evaluate(p)
	return types.RecommendationEntry{
		ID:             "test",
		Profile:        p,
		Hydraulics:     ev.Hydraulics,
		Recommendation: ev.Recommendation,
		Mitigations:    ev.Mitigations,
	}
}

func TestFlushPlanDescriptionCoversEveryPlan(t *testing.T) {
	for _, plan := range types.FlushPlans {
		assert.NotEqual(t, "custom", FlushPlanDescription(plan), "plan %s", plan)
	}
	assert.Equal(t, "pressurized barrier with piston", FlushPlanDescription(types.Plan53C))
	assert.Equal(t, "custom", FlushPlanDescription("Plan 99"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "high safety", CategoryLabel(types.Category3))
	assert.Equal(t, "robust", CategoryLabel(types.Category2))
	assert.Equal(t, "standard", CategoryLabel(types.Category1))
	assert.Equal(t, "zero emissions", ArrangementLabel(types.Arrangement3))
	assert.Equal(t, "single", ArrangementLabel(types.Arrangement1))
	assert.Equal(t, "high durability", MaterialLabel(types.MaterialCarbonSiC))
	assert.Equal(t, "standard", MaterialLabel("Bronze vs. Carbon"))
}

func TestComparison(t *testing.T) {
	rec := types.SealRecommendation{
		Category:          types.Category3,
		Type:              types.TypeB,
		Arrangement:       types.Arrangement3,
		FlushPlan:         types.Plan53C,
		Material:          types.MaterialSiCSiC,
		PreferredCategory: types.Category1,
		PreferredType:     types.TypeB,
		Reasons: map[types.Field]types.Reason{
			types.FieldCategory: {Text: "Hazardous fluid requires the highest duty category."},
			types.FieldType:     {Text: "Hazardous service favors a bellows design."},
		},
	}

	rows := Comparison(rec)
	require.Len(t, rows, 5)

	assert.Equal(t, Row{"Category", "Category 1", "Category 3", "Hazardous fluid requires the highest duty category."}, rows[0])
	assert.True(t, rows[0].Overridden())

	// Preference honored.
	assert.Equal(t, NoOverride, rows[1].Reason)
	assert.False(t, rows[1].Overridden())

	// No preference stated.
	assert.Equal(t, "Flush Plan", rows[3].Parameter)
	assert.Empty(t, rows[3].Preferred)
	assert.Equal(t, NoOverride, rows[3].Reason)
}

func TestComparisonFromEngine(t *testing.T) {
	p := types.SealInputProfile{
		FluidType:   "Crude Oil",
		Temperature: 280,
		Pressure:    30,
		Hazardous:   true,
		Preferences: types.Preferences{
			Arrangement: types.Arrangement1,
			FlushPlan:   types.Plan11,
		},
	}
	rows := Comparison(entryFor(p).Recommendation)

	assert.Equal(t, "Arrangement 3", rows[2].Recommended)
	assert.NotEqual(t, NoOverride, rows[2].Reason)
	assert.Equal(t, "Plan 53C", rows[3].Recommended)
	assert.NotEqual(t, NoOverride, rows[3].Reason)
}

func TestInsightNil(t *testing.T) {
	assert.Equal(t, NoEntry, Insight(nil))
}

func TestInsightReasoningPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		profile types.SealInputProfile
		want    string
	}{
		{"hazardous flag", types.SealInputProfile{FluidType: "Water", Hazardous: true}, "zero-emission sealing (hazardous)"},
		{"toxic name", types.SealInputProfile{FluidType: "Toxic Effluent"}, "zero-emission sealing (hazardous)"},
		{"hydrocarbon name", types.SealInputProfile{FluidType: "Light Hydrocarbon", Temperature: 40}, "low-emission hydrocarbons"},
		{"flashing flag", types.SealInputProfile{FluidType: "Water", Flashing: true}, "low-emission hydrocarbons"},
		{"very hot", types.SealInputProfile{FluidType: "Water", Temperature: 270}, "high temperatures"},
		{"gas", types.SealInputProfile{FluidType: "Nitrogen", FluidState: types.StateGas}, "gaseous fluids"},
		{"solids", types.SealInputProfile{FluidType: "Water", Solids: true}, "prevent solids buildup"},
		{"standard", types.SealInputProfile{FluidType: "Water", Temperature: 20, Pressure: 2}, "standard conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entryFor(tt.profile)
			text := Insight(&e)
			assert.Contains(t, text, string(e.Recommendation.FlushPlan)+" "+planRationale(tt.profile))
			assert.Contains(t, text, tt.want)
		})
	}
}

func TestInsightContent(t *testing.T) {
	e := entryFor(types.SealInputProfile{
		FluidType:       "Water",
		Temperature:     20,
		Pressure:        2,
		SuctionPressure: 1.5,
		PumpType:        types.PumpCentrifugal,
		ShaftSpeed:      3000,
		FlowRate:        50,
		PipeDiameter:    100,
	})
	text := Insight(&e)

	assert.True(t, strings.HasPrefix(text, "Recommendation for Water at 20 °C and 2 bar"))
	assert.Contains(t, text, "Category: Category 1 (standard)")
	assert.Contains(t, text, "Flush Plan: Plan 11 (discharge to seal chamber)")
	assert.Contains(t, text, "Optimized for moderate reliability and 10-15 ppm leakage.")
	assert.Contains(t, text, "cavitation risk Low")
	assert.Contains(t, text, "Mitigations:")
	assert.Contains(t, text, "API 682 compliant configuration.")
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		name string
		e    types.RecommendationEntry
		want []Rating
	}{
		{
			name: "standard service",
			e: types.RecommendationEntry{
				Profile: types.SealInputProfile{Temperature: 20, Pressure: 5},
				Recommendation: types.SealRecommendation{
					Reliability: types.ReliabilityStandard,
					LeakageRate: types.LeakageStandard,
				},
			},
			want: []Rating{RatingLow, RatingModerate, RatingLow, RatingLow, RatingLow},
		},
		{
			name: "severe service",
			e: types.RecommendationEntry{
				Profile: types.SealInputProfile{Temperature: 280, Pressure: 55},
				Recommendation: types.SealRecommendation{
					Reliability:     types.ReliabilityHigh,
					LeakageRate:     types.LeakageZero,
					ComplianceNotes: []string{"Category 3: ..."},
				},
			},
			want: []Rating{RatingHigh, RatingZero, RatingHigh, RatingHigh, RatingHigh},
		},
		{
			name: "threshold boundaries are exclusive",
			e: types.RecommendationEntry{
				Profile: types.SealInputProfile{Temperature: 260, Pressure: 50},
				Recommendation: types.SealRecommendation{
					Reliability: types.ReliabilityModerate,
					LeakageRate: types.LeakageModerate,
				},
			},
			want: []Rating{RatingModerate, RatingHigh, RatingLow, RatingModerate, RatingModerate},
		},
	}

	names := []string{"Reliability", "Leakage", "Compliance", "Temp Impact", "Pressure Impact"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Metrics(tt.e)
			require.Len(t, got, len(names))
			for i, m := range got {
				assert.Equal(t, names[i], m.Name)
				assert.Equal(t, tt.want[i], m.Rating, m.Name)
			}
		})
	}
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "Zero", RatingZero.String())
	assert.Equal(t, "High", RatingHigh.String())
	assert.Equal(t, "Unknown", Rating(7).String())
}
