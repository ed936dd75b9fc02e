// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seal-advisor/internal/report"
	"github.com/pdiddy/seal-advisor/internal/session"
	"github.com/pdiddy/seal-advisor/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a seal configuration for a pumping service",
	Long: `Recommend runs the hydraulic analysis, classifies the seal (category,
type, arrangement, flush plan, face material, reliability), lists
mitigations, and saves the result to the history.

The service is read from --profile, from flags, or both; flags that are
set explicitly override the profile file. Out-of-range values are
rejected before the engine runs.`,
	Example: `  seal-advisor recommend --profile samples/crude-hot.yaml
  seal-advisor recommend --fluid Water --temperature 80 --pressure 5 \
      --suction-pressure 0.6 --shaft-speed 2950 --flow-rate 300 --pipe-diameter 70`,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	p, err := profileFromFlags(cmd)
	if err != nil {
		return err
	}

	noSave, _ := cmd.Flags().GetBool("no-save")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	insight, _ := cmd.Flags().GetBool("insight")

	cfg := advisorConfig()
	ctx := context.Background()

	var (
		sink session.Sink
		st   *store.Store
	)
	if !noSave {
		st, err = store.NewStore(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		sink = st
	}

	sess := session.New(cfg.History.Limit, sink)
	entry, err := sess.Submit(ctx, p)
	if err != nil {
		return err
	}

	if st != nil {
		fmt.Fprintf(os.Stderr, "saved %s\n", entry.ID)
		pruned, err := st.Prune(ctx, cfg.History.Limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: pruning history failed: %v\n", err)
		} else if pruned > 0 {
			fmt.Fprintf(os.Stderr, "pruned %d old entries\n", pruned)
		}
	}

	w := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		return writeJSON(w, entry)
	case insight:
		fmt.Fprint(w, report.Insight(&entry))
	default:
		writeEntry(w, entry)
	}
	return nil
}

func init() {
	addProfileFlags(recommendCmd)
	recommendCmd.Flags().Bool("json", false, "output the entry as JSON")
	recommendCmd.Flags().Bool("insight", false, "output a narrative summary instead of tables")
	recommendCmd.Flags().Bool("no-save", false, "do not record the result in the history")

	rootCmd.AddCommand(recommendCmd)
}
