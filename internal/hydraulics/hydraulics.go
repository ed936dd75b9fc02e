// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hydraulics computes the suction-side hydraulic analysis of a pump:
// vapor pressure, friction loss, NPSH available and required, and the
// cavitation verdict.
//
// Every function degrades to a documented default when an input it needs is
// missing (zero, negative or non-finite); none of them fail.
package hydraulics

import (
	"math"

	"github.com/pdiddy/seal-advisor/internal/fluid"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// Conversion constants. These are fixed for reproducibility.
const (
	Gravity    = 9.81     // m/s²
	PaPerBar   = 100000.0 // Pa per bar
	GPMFactor  = 264.172  // US gal per m³
	FeetToM    = 0.3048   // m per ft
	RefLengthM = 10.0     // reference suction pipe length, m

	// DefaultFrictionLoss is returned when flow or diameter is missing, in m.
	DefaultFrictionLoss = 0.5

	// DefaultNPSHr is returned when speed, flow or pump type is missing, in m.
	DefaultNPSHr = 3.0

	turbulentFriction = 0.025
	laminarLimit      = 2000.0

	nssCentrifugal = 9000.0
	nssOther       = 8000.0
)

// Analyze runs the full hydraulic analysis for profile.
//
// Steps: resolve density and viscosity (user overrides first), pressure head,
// friction loss, NPSHa = pressure head − vapor pressure head − friction loss,
// NPSHr from suction specific speed, then the cavitation verdict. Heads are
// rounded to two decimals before the verdict, so CavitationRisk is High
// exactly when the returned NPSHa is below the returned NPSHr.
func Analyze(p types.SealInputProfile) types.HydraulicResult {
	props := fluid.Resolve(p.FluidType, p.Temperature, p.Density, p.UserViscosity)
	density := props.Density

	vapor := fluid.VaporPressure(p.FluidType, p.Temperature)
	if !finite(vapor) || vapor < 0 {
		vapor = 0
	}

	suction := p.SuctionPressure
	if !present(suction) {
		suction = p.Pressure
	}

	friction := round(FrictionLoss(p.FlowRate, p.PipeDiameter, density, props.Viscosity), 2)
	npsha := round(NPSHAvailable(suction, vapor, density, friction), 2)
	npshr := round(NPSHRequired(p.PumpType, p.ShaftSpeed, p.FlowRate), 2)

	return types.HydraulicResult{
		VaporPressure:  round(vapor, 4),
		FrictionLoss:   friction,
		NPSHa:          npsha,
		NPSHr:          npshr,
		CavitationRisk: CavitationRisk(npsha, npshr),
	}
}

// PressureHead converts a pressure in bar to metres of liquid of the given
// density. It returns 0 when either input is missing.
func PressureHead(bar, density float64) float64 {
	if !finite(bar) || bar < 0 || !present(density) {
		return 0
	}
	return bar * PaPerBar / (density * Gravity)
}

// NPSHAvailable returns pressure head minus vapor pressure head minus
// friction loss, all in metres. Pressures are in bar.
func NPSHAvailable(suctionBar, vaporBar, density, frictionLoss float64) float64 {
	return PressureHead(suctionBar, density) - PressureHead(vaporBar, density) - frictionLoss
}

// FrictionLoss estimates suction line head loss in metres with a
// Darcy-Weisbach model over a fixed reference length. Flow is in m³/h,
// diameter in mm, density in kg/m³ and viscosity in cP. The friction factor
// is 0.025 above Re 2000 and 64/Re below it.
func FrictionLoss(flowM3h, diameterMM, density, viscosityCP float64) float64 {
	if !present(flowM3h) || !present(diameterMM) || !present(density) {
		return DefaultFrictionLoss
	}

	d := diameterMM / 1000
	area := math.Pi * d * d / 4
	velocity := (flowM3h / 3600) / area

	f := turbulentFriction
	if finite(viscosityCP) && viscosityCP > 0 {
		re := density * velocity * d / (viscosityCP / 1000)
		if re <= laminarLimit {
			f = 64 / re
		}
	}

	return f * RefLengthM * velocity * velocity / (2 * d * Gravity)
}

// NPSHRequired approximates NPSHr in metres from the suction specific speed:
// NPSHr_ft = (N·√Q_gpm / Nss)^(4/3) with Nss 9000 for centrifugal pumps and
// 8000 otherwise. An empty pump type, or missing speed or flow, returns
// DefaultNPSHr.
func NPSHRequired(pump types.PumpType, speedRPM, flowM3h float64) float64 {
	if pump == "" || !present(speedRPM) || !present(flowM3h) {
		return DefaultNPSHr
	}

	nss := nssOther
	if pump == types.PumpCentrifugal {
		nss = nssCentrifugal
	}

	gpm := flowM3h * GPMFactor / 3600
	feet := math.Pow(speedRPM*math.Sqrt(gpm)/nss, 4.0/3.0)
	return feet * FeetToM
}

// CavitationRisk is High when npsha < npshr and Low otherwise; equality is
// Low. It is the raw comparison, without the design margins the mitigation
// advisor applies.
func CavitationRisk(npsha, npshr float64) types.RiskLevel {
	if npsha < npshr {
		return types.RiskHigh
	}
	return types.RiskLow
}

func present(v float64) bool {
	return finite(v) && v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round(v float64, places int) float64 {
	if !finite(v) {
		return v
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
