// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "github.com/pdiddy/seal-advisor/pkg/types"

// Service-condition thresholds.
const (
	ElevatedTempC     = 150.0
	HighTempC         = 200.0
	VeryHighTempC     = 260.0
	FlashTempC        = 100.0
	FlashPressureBar  = 1.5
	HighPressureBar   = 20.0
	VeryHighPressure  = 60.0
	ModerateViscosity = 100.0
	HighViscosity     = 500.0
	ExtremeViscosity  = 2000.0
	ElevatedSpeedRPM  = 2000.0
	HighSpeedRPM      = 2500.0
	SmallPipeMM       = 80.0
	HighFlowM3h       = 200.0

	// CavitationMargin and NPSHMargin are the NPSHa/NPSHr ratios below which
	// the design margin is considered insufficient.
	CavitationMargin = 1.3
	NPSHMargin       = 1.5
)

// Conditions are the boolean service-condition flags derived from a profile
// and, optionally, its hydraulic result. A comparison against a missing
// (non-finite) value is false.
type Conditions struct {
	Hazardous    bool
	Flashing     bool
	Abrasive     bool
	Polymerizing bool
	Corrosive    bool // acid or caustic by name

	ElevatedTemp bool // > 150 °C
	HighTemp     bool // > 200 °C
	VeryHighTemp bool // > 260 °C

	HighPressure     bool // > 20 bar
	VeryHighPressure bool // > 60 bar

	ModerateViscosity bool // > 100 cP
	HighViscosity     bool // > 500 cP
	ExtremeViscosity  bool // > 2000 cP

	ElevatedSpeed bool // > 2000 RPM
	HighSpeed     bool // > 2500 RPM

	CavitationRisk bool // NPSHa < 1.3·NPSHr
	LowNPSHMargin  bool // NPSHa < 1.5·NPSHr

	SmallPipe bool // < 80 mm
	HighFlow  bool // > 200 m³/h
}

// Derive computes the service conditions for p. The hydraulic flags stay
// false when h is nil.
func Derive(p types.SealInputProfile, h *types.HydraulicResult) Conditions {
	t, pr := p.Temperature, p.Pressure

	c := Conditions{
		Hazardous:    p.Hazardous || containsAny(p.FluidType, hazardKeywords),
		Abrasive:     p.Solids || containsAny(p.FluidType, abrasiveKeywords),
		Polymerizing: containsAny(p.FluidType, polymerizingKeywords),
		Corrosive:    containsAny(p.FluidType, corrosiveKeywords),

		ElevatedTemp: t > ElevatedTempC,
		HighTemp:     t > HighTempC,
		VeryHighTemp: t > VeryHighTempC,

		HighPressure:     pr > HighPressureBar,
		VeryHighPressure: pr > VeryHighPressure,

		ModerateViscosity: p.Viscosity > ModerateViscosity,
		HighViscosity:     p.Viscosity > HighViscosity,
		ExtremeViscosity:  p.Viscosity > ExtremeViscosity,

		ElevatedSpeed: p.ShaftSpeed > ElevatedSpeedRPM,
		HighSpeed:     p.ShaftSpeed > HighSpeedRPM,

		SmallPipe: p.PipeDiameter > 0 && p.PipeDiameter < SmallPipeMM,
		HighFlow:  p.FlowRate > HighFlowM3h,
	}

	c.Flashing = p.Flashing ||
		(containsAny(p.FluidType, hydrocarbonKeywords) && t > ElevatedTempC) ||
		p.FluidState == types.StateMixed ||
		(t > FlashTempC && pr < FlashPressureBar)

	if h != nil {
		c.CavitationRisk = h.NPSHa < CavitationMargin*h.NPSHr
		c.LowNPSHMargin = h.NPSHa < NPSHMargin*h.NPSHr
	}

	return c
}
