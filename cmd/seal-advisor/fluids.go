// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seal-advisor/internal/fluid"
)

var fluidsCmd = &cobra.Command{
	Use:   "fluids",
	Short: "List the fluids with property correlations",
	Long: `Fluids prints every fluid the property model knows, with density,
viscosity and vapor pressure at --temperature. Any other fluid name is
evaluated with the generic correlation, shown last.`,
	RunE: runFluids,
}

func runFluids(cmd *cobra.Command, args []string) error {
	t, _ := cmd.Flags().GetFloat64("temperature")
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Properties at %g °C\n\n", t)
	fmt.Fprintf(w, "%-14s  %14s  %14s  %16s\n", "Fluid", "Density kg/m³", "Viscosity cP", "Vapor press. bar")
	fmt.Fprintln(w, strings.Repeat("-", 64))

	for _, name := range fluid.Names() {
		fmt.Fprintf(w, "%-14s  %14.1f  %14.3f  %16.4f\n",
			name, fluid.Density(name, t), fluid.Viscosity(name, t), fluid.VaporPressure(name, t))
	}
	g := fluid.Generic
	fmt.Fprintf(w, "%-14s  %14.1f  %14.3f  %16.4f\n",
		"(generic)", g.Density(t), g.Viscosity(t), g.Antoine.Pressure(t))
	return nil
}

func init() {
	fluidsCmd.Flags().Float64("temperature", 20, "temperature (°C) at which to evaluate properties")

	rootCmd.AddCommand(fluidsCmd)
}
