// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mitigation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seal-advisor/internal/classify"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

func TestAdviseNone(t *testing.T) {
	got := Advise(classify.Conditions{}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdviseOrder(t *testing.T) {
	c := classify.Conditions{
		CavitationRisk: true,
		HighSpeed:      true,
		Abrasive:       true,
		Polymerizing:   true,
		SmallPipe:      true,
		HighFlow:       true,
		LowNPSHMargin:  true,
	}
	h := &types.HydraulicResult{NPSHa: 2.5, NPSHr: 3.1}

	got := Advise(c, h)
	require.Len(t, got, 6)

	prefixes := []string{"Cavitation risk", "Shaft speed", "Abrasive", "Polymerizing", "High flow", "Low NPSH margin"}
	for i, p := range prefixes {
		assert.True(t, strings.HasPrefix(got[i].Note, p), "entry %d: %q", i, got[i].Note)
		assert.NotEmpty(t, got[i].Reference)
	}
	assert.Contains(t, got[0].Note, "NPSHa 2.50 m, NPSHr 3.10 m")
}

func TestAdviseFlowVelocityNeedsBoth(t *testing.T) {
	assert.Empty(t, Advise(classify.Conditions{SmallPipe: true}, nil))
	assert.Empty(t, Advise(classify.Conditions{HighFlow: true}, nil))
	assert.Len(t, Advise(classify.Conditions{SmallPipe: true, HighFlow: true}, nil), 1)
}

func TestAdviseFromDerivedConditions(t *testing.T) {
	tests := []struct {
		name      string
		npsha     float64
		npshr     float64
		wantCount int
	}{
		{"comfortable margin", 10, 3, 0},
		{"between margins", 4.2, 3, 1},
		{"inside 1.3 margin but above NPSHr", 3.5, 3, 2},
		{"below NPSHr", 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &types.HydraulicResult{NPSHa: tt.npsha, NPSHr: tt.npshr}
			c := classify.Derive(types.SealInputProfile{FluidType: "Water", Temperature: 20, Pressure: 2}, h)
			assert.Len(t, Advise(c, h), tt.wantCount)
		})
	}
}
