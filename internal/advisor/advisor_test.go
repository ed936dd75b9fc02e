// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

func TestEvaluateWater(t *testing.T) {
	p := types.SealInputProfile{
		FluidType:       "Water",
		FluidState:      types.StateLiquid,
		Temperature:     20,
		Pressure:        1,
		SuctionPressure: 1,
		PumpType:        types.PumpCentrifugal,
		ShaftSpeed:      3000,
		FlowRate:        50,
		PipeDiameter:    100,
	}

	ev := Evaluate(p)

	assert.Equal(t, types.RiskLow, ev.Hydraulics.CavitationRisk)
	assert.Equal(t, types.Category1, ev.Recommendation.Category)
	assert.Equal(t, types.TypeA, ev.Recommendation.Type)
	assert.Equal(t, types.Arrangement1, ev.Recommendation.Arrangement)
	assert.Equal(t, types.Plan11, ev.Recommendation.FlushPlan)
	assert.Equal(t, types.MaterialCarbonSiC, ev.Recommendation.Material)

	// Only the high speed note applies.
	require.Len(t, ev.Mitigations, 1)
	assert.Contains(t, ev.Mitigations[0].Note, "2500 RPM")
}

func TestEvaluateMatchesStandaloneCalls(t *testing.T) {
	p := types.SealInputProfile{
		FluidType:       "Hydrocarbon",
		Temperature:     60,
		Pressure:        8,
		SuctionPressure: 1.2,
		PumpType:        types.PumpCentrifugal,
		ShaftSpeed:      3550,
		FlowRate:        250,
		PipeDiameter:    75,
	}

	ev := Evaluate(p)
	h := AnalyzeHydraulics(p)

	assert.Equal(t, h, ev.Hydraulics)
	assert.Equal(t, Recommend(p, &h), ev.Recommendation)
	assert.Equal(t, ev, Evaluate(p))
}

func TestEvaluateLowSuctionAddsCavitationNotes(t *testing.T) {
	p := types.SealInputProfile{
		FluidType:       "Water",
		Temperature:     80,
		Pressure:        5,
		SuctionPressure: 0.6,
		PumpType:        types.PumpCentrifugal,
		ShaftSpeed:      2950,
		FlowRate:        300,
		PipeDiameter:    70,
	}

	ev := Evaluate(p)
	require.Equal(t, types.RiskHigh, ev.Hydraulics.CavitationRisk)

	var notes []string
	for _, m := range ev.Mitigations {
		notes = append(notes, m.Note)
	}
	require.Len(t, notes, 4)
	assert.Contains(t, notes[0], "Cavitation risk")
	assert.Contains(t, notes[1], "Shaft speed")
	assert.Contains(t, notes[2], "High flow")
	assert.Contains(t, notes[3], "Low NPSH margin")
}
