// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		fluid     string
		wantName  string
		wantFound bool
	}{
		{"exact match", "Water", "Water", true},
		{"multi-word key", "Crude Oil", "Crude Oil", true},
		{"case sensitive miss", "water", "Generic", false},
		{"unknown fluid", "Molten Salt", "Generic", false},
		{"empty name", "", "Generic", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, found := Lookup(tt.fluid)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantName, c.Name)
		})
	}
}

func TestWaterAt20C(t *testing.T) {
	assert.InDelta(t, 999.3, Density("Water", 20), 1e-9)
	assert.InDelta(t, 0.0234, VaporPressure("Water", 20), 0.0002)
	assert.Greater(t, Viscosity("Water", 20), 0.9)
	assert.Less(t, Viscosity("Water", 20), 1.2)
}

func TestGenericCorrelation(t *testing.T) {
	assert.InDelta(t, 800.0, Density("Slurry X", 0), 1e-9)
	assert.InDelta(t, 730.0, Density("Slurry X", 100), 1e-9)
	assert.InDelta(t, 1.0, Viscosity("Slurry X", 0), 1e-12)
	assert.InDelta(t, math.Exp(-1), Viscosity("Slurry X", 100), 1e-12)

	// At T=0 the exponent is 7.5 − 1500/200 = 0, so P = 1 mmHg.
	assert.InDelta(t, 133.322/100000, VaporPressure("Slurry X", 0), 1e-12)
}

func TestAntoineUsesCelsius(t *testing.T) {
	a := Antoine{A: 8.07131, B: 1730.63, C: 233.426}
	// Water boils near 100 °C, about one atmosphere.
	assert.InDelta(t, 1.013, a.Pressure(100), 0.01)
}

func TestVaporPressureIncreasesWithTemperature(t *testing.T) {
	for _, name := range append(Names(), "Unknown") {
		lo := VaporPressure(name, 20)
		hi := VaporPressure(name, 80)
		assert.Greater(t, hi, lo, name)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		density       *float64
		viscosity     *float64
		wantDensity   float64
		wantViscosity float64
	}{
		{
			name:          "correlation only",
			wantDensity:   999.3,
			wantViscosity: Viscosity("Water", 20),
		},
		{
			name:          "valid overrides win",
			density:       ptr(1200),
			viscosity:     ptr(3.5),
			wantDensity:   1200,
			wantViscosity: 3.5,
		},
		{
			name:          "density below minimum ignored",
			density:       ptr(50),
			wantDensity:   999.3,
			wantViscosity: Viscosity("Water", 20),
		},
		{
			name:          "zero viscosity accepted",
			viscosity:     ptr(0),
			wantDensity:   999.3,
			wantViscosity: 0,
		},
		{
			name:          "negative viscosity ignored",
			viscosity:     ptr(-1),
			wantDensity:   999.3,
			wantViscosity: Viscosity("Water", 20),
		},
		{
			name:          "NaN override ignored",
			density:       ptr(math.NaN()),
			wantDensity:   999.3,
			wantViscosity: Viscosity("Water", 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve("Water", 20, tt.density, tt.viscosity)
			assert.InDelta(t, tt.wantDensity, p.Density, 1e-9)
			assert.InDelta(t, tt.wantViscosity, p.Viscosity, 1e-9)
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "Water")
	assert.IsNonDecreasing(t, names)
}

func ptr(v float64) *float64 { return &v }
