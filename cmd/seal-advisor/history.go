// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seal-advisor/internal/report"
	"github.com/pdiddy/seal-advisor/internal/session"
	"github.com/pdiddy/seal-advisor/internal/store"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect, export or reset saved recommendations",
	Long: `History manages the recommendations saved by the recommend command.
Entries are kept newest first and bounded by history.limit.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved recommendations, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(advisorConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.List(context.Background(), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if entries == nil {
			entries = []types.RecommendationEntry{}
		}
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-16s  %-10s  %-13s  %-8s  %s\n",
		"ID", "Created", "Fluid", "Category", "Arrangement", "Plan", "Risk")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for _, e := range entries {
		fluidName := truncate(e.Profile.FluidType, 16)
		rec := e.Recommendation
		fmt.Fprintf(w, "%-8s  %-19s  %-16s  %-10s  %-13s  %-8s  %s\n",
			shortID(e.ID), e.CreatedAt.Local().Format("2006-01-02 15:04:05"), fluidName,
			rec.Category, rec.Arrangement, rec.FlushPlan, e.Hydraulics.CavitationRisk)
	}

	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved recommendation",
	Long: `Show prints one saved entry. The ID may be abbreviated to any unique
prefix, such as the short form printed by history list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(advisorConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	entry, err := st.Find(context.Background(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	insight, _ := cmd.Flags().GetBool("insight")
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

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved recommendations to YAML or JSON",
	Long: `Export writes the history (or a filtered subset) to
<store-dir>/index/export.yaml or export.json.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	st, err := store.NewStore(advisorConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := listOptsFromFlags(cmd)
	ctx := context.Background()

	var path string
	switch format {
	case "yaml", "":
		path, err = st.ExportYAML(ctx, opts)
	case "json":
		path, err = st.ExportJSON(ctx, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- reset subcommand ---

var historyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved recommendation",
	RunE:  runHistoryReset,
}

func runHistoryReset(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(advisorConfig().Store)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := session.New(0, st).Reset(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %d entries\n", n)
	return nil
}

// --- shared helpers ---

func listOptsFromFlags(cmd *cobra.Command) store.ListOptions {
	fluidName, _ := cmd.Flags().GetString("fluid")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	return store.ListOptions{
		FluidType: fluidName,
		Category:  types.Category(category),
		Limit:     limit,
	}
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("fluid", "", "filter by fluid name (case-insensitive)")
		c.Flags().String("category", "", "filter by recommended category, e.g. \"Category 3\"")
		c.Flags().Int("limit", 0, "maximum entries (0 = all)")
	}
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyShowCmd.Flags().Bool("json", false, "output the entry as JSON")
	historyShowCmd.Flags().Bool("insight", false, "output a narrative summary instead of tables")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyResetCmd)

	rootCmd.AddCommand(historyCmd)
}
