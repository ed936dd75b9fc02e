//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// sampleProfiles are written by Samples for trying the CLI.
var sampleProfiles = map[string]types.SealInputProfile{
	"water-clean": {
		FluidType:       "Water",
		FluidState:      types.StateLiquid,
		Temperature:     20,
		Pressure:        2,
		SuctionPressure: 1.5,
		Viscosity:       1,
		FlowRate:        50,
		PipeDiameter:    100,
		ShaftSpeed:      1800,
		ShaftDiameter:   50,
		PumpType:        types.PumpCentrifugal,
	},
	"water-low-suction": {
		FluidType:       "Water",
		FluidState:      types.StateLiquid,
		Temperature:     80,
		Pressure:        5,
		SuctionPressure: 0.6,
		Viscosity:       0.4,
		FlowRate:        300,
		PipeDiameter:    70,
		ShaftSpeed:      2950,
		ShaftDiameter:   60,
		PumpType:        types.PumpCentrifugal,
	},
	"crude-hot": {
		FluidType:       "Crude Oil",
		FluidState:      types.StateLiquid,
		Temperature:     280,
		Pressure:        30,
		SuctionPressure: 4,
		Viscosity:       45,
		FlowRate:        180,
		PipeDiameter:    150,
		ShaftSpeed:      3550,
		ShaftDiameter:   75,
		PumpType:        types.PumpCentrifugal,
		Preferences: types.Preferences{
			Category:    types.Category2,
			Arrangement: types.Arrangement1,
			FlushPlan:   types.Plan11,
		},
	},
	"toxic-gas": {
		FluidType:       "Toxic Gas",
		FluidState:      types.StateGas,
		Hazardous:       true,
		Temperature:     40,
		Pressure:        12,
		SuctionPressure: 10,
		FlowRate:        20,
		PipeDiameter:    50,
		ShaftSpeed:      3000,
		PumpType:        types.PumpCentrifugal,
	},
	"catalyst-slurry": {
		FluidType:       "Catalyst Slurry",
		FluidState:      types.StateLiquid,
		Solids:          true,
		Temperature:     90,
		Pressure:        25,
		SuctionPressure: 3,
		Viscosity:       650,
		FlowRate:        120,
		PipeDiameter:    40,
		ShaftSpeed:      1500,
		Density:         types.Float(1350),
		PumpType:        types.PumpCentrifugal,
	},
}

// Samples writes example profiles to samples/ for use with --profile.
func Samples() error {
	mg.Deps(Init)

	for name, p := range sampleProfiles {
		data, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", name, err)
		}
		path := filepath.Join("samples", name+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}
