// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intake loads and validates seal input profiles before they reach
// the engine. The engine itself never rejects input; range checks and the
// messages shown to users live here.
package intake

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// Range is an inclusive numeric range.
type Range struct {
	Min, Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("%g..%g", r.Min, r.Max)
}

// Declared input ranges.
var (
	TemperatureRange   = Range{-50, 300}
	PressureRange      = Range{0, 400}
	ViscosityRange     = Range{0, 100000}
	FlowRateRange      = Range{0, 5000}
	PipeDiameterRange  = Range{0, 2000}
	ShaftSpeedRange    = Range{0, 20000}
	ShaftDiameterRange = Range{0, 500}
	DensityRange       = Range{100, 25000}
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %s)", e.Field, e.Message, e.Value)
}

// LoadProfile reads a SealInputProfile from a YAML file. It does not
// validate; call Validate on the result.
func LoadProfile(path string) (types.SealInputProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SealInputProfile{}, fmt.Errorf("reading profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a SealInputProfile from YAML bytes. Unknown keys are
// rejected so a misspelled field is not silently dropped.
func ParseProfile(data []byte) (types.SealInputProfile, error) {
	var p types.SealInputProfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return types.SealInputProfile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return p, nil
}

// Validate checks p against the declared ranges and enumerations. It
// reports every violation, joined with errors.Join; each one is a
// *ValidationError. A nil return means the profile can be submitted.
func Validate(p types.SealInputProfile) error {
	var errs []error
	add := func(field, value, msg string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Message: msg})
	}

	if strings.TrimSpace(p.FluidType) == "" {
		add("fluid_type", "", "is required")
	}
	switch p.FluidState {
	case "", types.StateLiquid, types.StateGas, types.StateMixed:
	default:
		add("fluid_state", string(p.FluidState), "must be Liquid, Gas or Mixed")
	}

	checkRange := func(field string, v float64, r Range) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			add(field, fmt.Sprint(v), "must be a finite number")
			return
		}
		if v < r.Min || v > r.Max {
			add(field, fmt.Sprint(v), "must be within "+r.String())
		}
	}

	checkRange("temperature", p.Temperature, TemperatureRange)
	checkRange("pressure", p.Pressure, PressureRange)
	checkRange("suction_pressure", p.SuctionPressure, PressureRange)
	checkRange("viscosity", p.Viscosity, ViscosityRange)
	checkRange("flow_rate", p.FlowRate, FlowRateRange)
	checkRange("pipe_diameter", p.PipeDiameter, PipeDiameterRange)
	checkRange("shaft_speed", p.ShaftSpeed, ShaftSpeedRange)
	checkRange("shaft_diameter", p.ShaftDiameter, ShaftDiameterRange)
	if p.Density != nil {
		checkRange("density", *p.Density, DensityRange)
	}
	if p.UserViscosity != nil {
		checkRange("user_viscosity", *p.UserViscosity, ViscosityRange)
	}

	prefs := p.Preferences
	checkMember("preferences.category", prefs.Category, types.Categories, add)
	checkMember("preferences.type", prefs.Type, types.SealTypes, add)
	checkMember("preferences.arrangement", prefs.Arrangement, types.Arrangements, add)
	checkMember("preferences.flush_plan", prefs.FlushPlan, types.FlushPlans, add)
	checkMember("preferences.material", prefs.Material, types.Materials, add)

	return errors.Join(errs...)
}

func checkMember[T ~string](field string, v T, allowed []T, add func(field, value, msg string)) {
	if v == "" || slices.Contains(allowed, v) {
		return
	}
	add(field, string(v), "is not a recognized value")
}

// Violations unpacks the individual ValidationErrors from an error returned
// by Validate.
func Violations(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var out []*ValidationError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var ve *ValidationError
			if errors.As(e, &ve) {
				out = append(out, ve)
			}
		}
		return out
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		out = append(out, ve)
	}
	return out
}
