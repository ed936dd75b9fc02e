// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fluid provides temperature correlations for density, viscosity and
// vapor pressure of the fluids the advisor knows by name.
//
// Lookups are exact, case-sensitive matches against the table keys. Any other
// name uses the generic hydrocarbon-like correlation; an unknown fluid is a
// documented default, not an error.
package fluid

import (
	"math"
	"sort"
)

const (
	// mmHgToPa converts the Antoine result to pascals.
	mmHgToPa = 133.322
	paPerBar = 100000.0

	// MinDensity is the lowest user density override accepted, in kg/m³.
	MinDensity = 100.0
)

// Antoine holds the constants of log10(P_mmHg) = A − B/(T + C) with T in °C.
type Antoine struct {
	A, B, C float64
}

// Correlation is the property model for one fluid.
type Correlation struct {
	// Name is the lookup key.
	Name string

	// Density returns kg/m³ at temperature T (°C).
	Density func(t float64) float64

	// Viscosity returns cP at temperature T (°C).
	Viscosity func(t float64) float64

	Antoine Antoine
}

// Generic is the fallback correlation for unrecognized fluids.
var Generic = Correlation{
	Name:      "Generic",
	Density:   func(t float64) float64 { return 800 - 0.7*t },
	Viscosity: func(t float64) float64 { return 1.0 * math.Exp(-0.01*t) },
	Antoine:   Antoine{A: 7.5, B: 1500, C: 200},
}

var correlations = map[string]Correlation{
	"Water": {
		Name:      "Water",
		Density:   func(t float64) float64 { return 1000 - 0.035*t },
		Viscosity: func(t float64) float64 { return 1.79 * math.Exp(-0.0248*t) },
		Antoine:   Antoine{A: 8.07131, B: 1730.63, C: 233.426},
	},
	"Hydrocarbon": {
		Name:      "Hydrocarbon",
		Density:   func(t float64) float64 { return 680 - 0.9*t },
		Viscosity: func(t float64) float64 { return 0.4 * math.Exp(-0.011*t) },
		Antoine:   Antoine{A: 6.87601, B: 1171.17, C: 224.41},
	},
	"Crude Oil": {
		Name:      "Crude Oil",
		Density:   func(t float64) float64 { return 870 - 0.65*t },
		Viscosity: func(t float64) float64 { return 25.0 * math.Exp(-0.03*t) },
		Antoine:   Antoine{A: 7.21745, B: 1693.93, C: 216.459},
	},
	"Methanol": {
		Name:      "Methanol",
		Density:   func(t float64) float64 { return 810 - 0.93*t },
		Viscosity: func(t float64) float64 { return 0.82 * math.Exp(-0.0135*t) },
		Antoine:   Antoine{A: 8.08097, B: 1582.271, C: 239.726},
	},
	"Ammonia": {
		Name:      "Ammonia",
		Density:   func(t float64) float64 { return 638 - 1.4*t },
		Viscosity: func(t float64) float64 { return 0.19 * math.Exp(-0.009*t) },
		Antoine:   Antoine{A: 7.36050, B: 926.132, C: 240.17},
	},
	"Benzene": {
		Name:      "Benzene",
		Density:   func(t float64) float64 { return 900 - 1.07*t },
		Viscosity: func(t float64) float64 { return 0.91 * math.Exp(-0.0145*t) },
		Antoine:   Antoine{A: 6.90565, B: 1211.033, C: 220.79},
	},
	"Toluene": {
		Name:      "Toluene",
		Density:   func(t float64) float64 { return 885 - 0.92*t },
		Viscosity: func(t float64) float64 { return 0.77 * math.Exp(-0.0118*t) },
		Antoine:   Antoine{A: 6.95464, B: 1344.8, C: 219.482},
	},
}

// Lookup returns the correlation registered under name and whether it was
// found. On a miss it returns Generic.
func Lookup(name string) (Correlation, bool) {
	if c, ok := correlations[name]; ok {
		return c, true
	}
	return Generic, false
}

// Names returns the registered fluid names in sorted order.
func Names() []string {
	names := make([]string, 0, len(correlations))
	for n := range correlations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Density returns the correlated density of fluid at t °C in kg/m³.
func Density(fluid string, t float64) float64 {
	c, _ := Lookup(fluid)
	return c.Density(t)
}

// Viscosity returns the correlated viscosity of fluid at t °C in cP.
func Viscosity(fluid string, t float64) float64 {
	c, _ := Lookup(fluid)
	return c.Viscosity(t)
}

// VaporPressure returns the vapor pressure of fluid at t °C in bar.
// The Antoine constants are calibrated for T in °C and P in mmHg.
func VaporPressure(fluid string, t float64) float64 {
	c, _ := Lookup(fluid)
	return c.Antoine.Pressure(t)
}

// Pressure evaluates the Antoine equation at t °C and returns bar.
func (a Antoine) Pressure(t float64) float64 {
	mmHg := math.Pow(10, a.A-a.B/(t+a.C))
	return mmHg * mmHgToPa / paPerBar
}

// Properties are the resolved physical properties used by the hydraulic model.
type Properties struct {
	Density   float64 // kg/m³
	Viscosity float64 // cP
}

// Resolve returns density and viscosity of fluid at t °C, letting valid user
// overrides take precedence over the correlation. A density override below
// MinDensity or a negative viscosity override is ignored.
func Resolve(fluid string, t float64, density, viscosity *float64) Properties {
	c, _ := Lookup(fluid)

	p := Properties{
		Density:   c.Density(t),
		Viscosity: c.Viscosity(t),
	}
	if density != nil && isFinite(*density) && *density >= MinDensity {
		p.Density = *density
	}
	if viscosity != nil && isFinite(*viscosity) && *viscosity >= 0 {
		p.Viscosity = *viscosity
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
