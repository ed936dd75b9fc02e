// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the seal-advisor engine.
// Implements: SealInputProfile and preferences (input side);
//
//	HydraulicResult, SealRecommendation, Reason, Mitigation (output side);
//	RecommendationEntry (session and persistence record).
//
// Enumerations are string types whose values are the literal labels shown to
// users, so JSON and YAML round-trips carry them unchanged.
package types

// FluidState describes the phase of the pumped fluid.
type FluidState string

const (
	StateLiquid FluidState = "Liquid"
	StateGas    FluidState = "Gas"
	StateMixed  FluidState = "Mixed"
)

// PumpType identifies the pump design. Only centrifugal pumps carry a
// dedicated suction specific speed; every other value uses the default.
type PumpType string

const (
	PumpCentrifugal PumpType = "Centrifugal"
)

// Preferences holds the seal configuration the user chose before asking for
// a recommendation. The engine never reads these when classifying; they are
// mirrored into the recommendation for preferred-vs-recommended display.
type Preferences struct {
	Category    Category    `json:"category,omitempty" yaml:"category,omitempty"`
	Type        SealType    `json:"type,omitempty" yaml:"type,omitempty"`
	Arrangement Arrangement `json:"arrangement,omitempty" yaml:"arrangement,omitempty"`
	FlushPlan   FlushPlan   `json:"flush_plan,omitempty" yaml:"flush_plan,omitempty"`
	Material    Material    `json:"material,omitempty" yaml:"material,omitempty"`
}

// SealInputProfile is one recommendation request. It is built fresh per
// request and treated as immutable once handed to the engine.
//
// Numeric fields use SI/bar/°C. A zero, negative or non-finite value in a
// field the hydraulic model needs counts as missing; the model then falls
// back to its documented defaults instead of failing.
type SealInputProfile struct {
	// FluidType is the free-text fluid name (e.g. "Water", "Toxic Gas").
	// It selects the property correlation and feeds the keyword heuristics.
	FluidType string `json:"fluid_type" yaml:"fluid_type"`

	// FluidState is Liquid, Gas or Mixed. Empty is read as Liquid.
	FluidState FluidState `json:"fluid_state,omitempty" yaml:"fluid_state,omitempty"`

	Hazardous bool `json:"hazardous" yaml:"hazardous"`
	Flashing  bool `json:"flashing" yaml:"flashing"`
	Solids    bool `json:"solids" yaml:"solids"`

	// Temperature is the pumping temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Pressure is the seal chamber (operating) pressure in bar.
	Pressure float64 `json:"pressure" yaml:"pressure"`

	// SuctionPressure is the absolute pump suction pressure in bar. When
	// missing, the hydraulic model uses Pressure instead.
	SuctionPressure float64 `json:"suction_pressure,omitempty" yaml:"suction_pressure,omitempty"`

	// Viscosity is the process viscosity in cP used by the seal rules.
	Viscosity float64 `json:"viscosity" yaml:"viscosity"`

	// FlowRate is the pump flow in m³/h.
	FlowRate float64 `json:"flow_rate,omitempty" yaml:"flow_rate,omitempty"`

	// PipeDiameter is the suction pipe inner diameter in mm.
	PipeDiameter float64 `json:"pipe_diameter,omitempty" yaml:"pipe_diameter,omitempty"`

	// ShaftSpeed is in RPM.
	ShaftSpeed float64 `json:"shaft_speed" yaml:"shaft_speed"`

	// ShaftDiameter is in mm.
	ShaftDiameter float64 `json:"shaft_diameter,omitempty" yaml:"shaft_diameter,omitempty"`

	// Density and UserViscosity override the fluid correlation in the
	// hydraulic model when set and valid (density ≥ 100 kg/m³,
	// viscosity ≥ 0 cP).
	Density       *float64 `json:"density,omitempty" yaml:"density,omitempty"`
	UserViscosity *float64 `json:"user_viscosity,omitempty" yaml:"user_viscosity,omitempty"`

	PumpType PumpType `json:"pump_type,omitempty" yaml:"pump_type,omitempty"`

	Preferences Preferences `json:"preferences" yaml:"preferences"`
}

// Float returns a pointer to v, for filling the optional override fields.
func Float(v float64) *float64 {
	return &v
}
