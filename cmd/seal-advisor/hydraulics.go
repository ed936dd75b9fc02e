// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/seal-advisor/internal/advisor"
)

var hydraulicsCmd = &cobra.Command{
	Use:   "hydraulics",
	Short: "Compute NPSH available, NPSH required and cavitation risk",
	Long: `Hydraulics runs only the suction-side analysis: fluid vapor pressure,
friction loss over a 10 m reference length, NPSH available, NPSH required
from the suction specific speed, and the cavitation verdict. Nothing is
saved.`,
	RunE: runHydraulics,
}

func runHydraulics(cmd *cobra.Command, args []string) error {
	p, err := profileFromFlags(cmd)
	if err != nil {
		return err
	}

	h := advisor.AnalyzeHydraulics(p)

	w := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(w, h)
	}
	writeHydraulics(w, h)
	return nil
}

func init() {
	addProfileFlags(hydraulicsCmd)
	hydraulicsCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(hydraulicsCmd)
}
