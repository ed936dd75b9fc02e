// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/seal-advisor/internal/report"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeHydraulics(w io.Writer, h types.HydraulicResult) {
	fmt.Fprintf(w, "%-16s  %.4f bar\n", "Vapor pressure", h.VaporPressure)
	fmt.Fprintf(w, "%-16s  %.2f m\n", "Friction loss", h.FrictionLoss)
	fmt.Fprintf(w, "%-16s  %.2f m\n", "NPSHa", h.NPSHa)
	fmt.Fprintf(w, "%-16s  %.2f m\n", "NPSHr", h.NPSHr)
	fmt.Fprintf(w, "%-16s  %s\n", "Cavitation risk", h.CavitationRisk)
}

// writeEntry prints the full result of one submission.
func writeEntry(w io.Writer, e types.RecommendationEntry) {
	rec := e.Recommendation

	fmt.Fprintf(w, "Entry %s  (%s, %s)\n\n", e.ID, e.Profile.FluidType, e.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(w, "%-12s  %-36s  %s\n", "Field", "Recommended", "Reason")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	fields := []struct {
		label string
		field types.Field
		value string
	}{
		{"Category", types.FieldCategory, string(rec.Category)},
		{"Type", types.FieldType, string(rec.Type)},
		{"Arrangement", types.FieldArrangement, string(rec.Arrangement)},
		{"Flush Plan", types.FieldFlushPlan, string(rec.FlushPlan)},
		{"Material", types.FieldMaterial, string(rec.Material)},
		{"Reliability", types.FieldReliability, string(rec.Reliability)},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-12s  %-36s  %s\n", f.label, f.value, rec.Reasons[f.field].Text)
	}
	fmt.Fprintf(w, "%-12s  %s\n", "Leakage", rec.LeakageRate)

	fmt.Fprintln(w, "\nHydraulics")
	writeHydraulics(w, e.Hydraulics)

	if rows := report.Comparison(rec); hasPreferences(rows) {
		fmt.Fprintln(w, "\nPreferred vs. recommended")
		for _, r := range rows {
			if r.Preferred == "" {
				continue
			}
			fmt.Fprintf(w, "  %-12s  %-36s  %-36s  %s\n", r.Parameter, r.Preferred, r.Recommended, r.Reason)
		}
	}

	if len(rec.ComplianceNotes) > 0 {
		fmt.Fprintln(w, "\nCompliance notes")
		for _, n := range rec.ComplianceNotes {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}

	if len(e.Mitigations) > 0 {
		fmt.Fprintln(w, "\nMitigations")
		for _, m := range e.Mitigations {
			fmt.Fprintf(w, "  - %s [%s]\n", m.Note, m.Reference)
		}
	}

	fmt.Fprintln(w, "\nMetrics")
	for _, m := range report.Metrics(e) {
		fmt.Fprintf(w, "  %-16s  %d (%s)\n", m.Name, m.Rating, m.Rating)
	}
}

func hasPreferences(rows []report.Row) bool {
	for _, r := range rows {
		if r.Preferred != "" {
			return true
		}
	}
	return false
}

// shortID trims a UUID to its first group for table output.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
