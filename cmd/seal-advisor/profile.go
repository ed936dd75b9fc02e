// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seal-advisor/internal/intake"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// addProfileFlags registers the flags that describe a pumping service.
// They are shared by recommend and hydraulics.
func addProfileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("profile", "", "YAML file describing the service; flags set explicitly override its fields")

	f.String("fluid", "", "fluid name, e.g. Water, Crude Oil, Toxic Gas")
	f.String("state", "", "fluid state: Liquid, Gas or Mixed")
	f.Bool("hazardous", false, "fluid is hazardous")
	f.Bool("flashing", false, "fluid flashes at seal faces")
	f.Bool("solids", false, "fluid carries solids")

	f.Float64("temperature", 0, "pumping temperature (°C)")
	f.Float64("pressure", 0, "seal chamber pressure (bar)")
	f.Float64("suction-pressure", 0, "absolute suction pressure (bar); defaults to --pressure")
	f.Float64("viscosity", 0, "process viscosity (cP)")
	f.Float64("flow-rate", 0, "flow rate (m³/h)")
	f.Float64("pipe-diameter", 0, "suction pipe inner diameter (mm)")
	f.Float64("shaft-speed", 0, "shaft speed (RPM)")
	f.Float64("shaft-diameter", 0, "shaft diameter (mm)")
	f.Float64("density", 0, "density override for the hydraulic model (kg/m³)")
	f.Float64("user-viscosity", 0, "viscosity override for the hydraulic model (cP)")
	f.String("pump-type", string(types.PumpCentrifugal), "pump type")

	f.String("pref-category", "", "preferred category, e.g. \"Category 2\"")
	f.String("pref-type", "", "preferred seal type, e.g. \"Type A\"")
	f.String("pref-arrangement", "", "preferred arrangement, e.g. \"Arrangement 1\"")
	f.String("pref-flush-plan", "", "preferred flush plan, e.g. \"Plan 11\"")
	f.String("pref-material", "", "preferred face material")
}

// profileFromFlags builds a profile from --profile (if given) and applies
// every flag the user set on top of it. The result is validated.
func profileFromFlags(cmd *cobra.Command) (types.SealInputProfile, error) {
	var p types.SealInputProfile

	path, _ := cmd.Flags().GetString("profile")
	if path != "" {
		loaded, err := intake.LoadProfile(path)
		if err != nil {
			return types.SealInputProfile{}, err
		}
		p = loaded
	} else {
		p.PumpType = types.PumpCentrifugal
	}

	applyFlags(cmd, &p)

	if err := intake.Validate(p); err != nil {
		for _, v := range intake.Violations(err) {
			fmt.Fprintf(os.Stderr, "invalid %s\n", v)
		}
		return types.SealInputProfile{}, fmt.Errorf("profile rejected: %d invalid field(s)", len(intake.Violations(err)))
	}
	return p, nil
}

func applyFlags(cmd *cobra.Command, p *types.SealInputProfile) {
	f := cmd.Flags()

	setString := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	setFloat := func(name string, dst *float64) {
		if f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}
	setOverride := func(name string, dst **float64) {
		if f.Changed(name) {
			v, _ := f.GetFloat64(name)
			*dst = types.Float(v)
		}
	}
	str := func(name string) (string, bool) {
		if !f.Changed(name) {
			return "", false
		}
		v, _ := f.GetString(name)
		return v, true
	}

	setString("fluid", &p.FluidType)
	setBool("hazardous", &p.Hazardous)
	setBool("flashing", &p.Flashing)
	setBool("solids", &p.Solids)
	setFloat("temperature", &p.Temperature)
	setFloat("pressure", &p.Pressure)
	setFloat("suction-pressure", &p.SuctionPressure)
	setFloat("viscosity", &p.Viscosity)
	setFloat("flow-rate", &p.FlowRate)
	setFloat("pipe-diameter", &p.PipeDiameter)
	setFloat("shaft-speed", &p.ShaftSpeed)
	setFloat("shaft-diameter", &p.ShaftDiameter)
	setOverride("density", &p.Density)
	setOverride("user-viscosity", &p.UserViscosity)

	if v, ok := str("state"); ok {
		p.FluidState = types.FluidState(v)
	}
	if v, ok := str("pump-type"); ok {
		p.PumpType = types.PumpType(v)
	}
	if v, ok := str("pref-category"); ok {
		p.Preferences.Category = types.Category(v)
	}
	if v, ok := str("pref-type"); ok {
		p.Preferences.Type = types.SealType(v)
	}
	if v, ok := str("pref-arrangement"); ok {
		p.Preferences.Arrangement = types.Arrangement(v)
	}
	if v, ok := str("pref-flush-plan"); ok {
		p.Preferences.FlushPlan = types.FlushPlan(v)
	}
	if v, ok := str("pref-material"); ok {
		p.Preferences.Material = types.Material(v)
	}
}
