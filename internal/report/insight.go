// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// NoEntry is the narrative returned when there is nothing to summarize.
const NoEntry = "No recommendation available. Submit parameters."

// Insight renders a plain-text narrative of e: the configuration with a
// short gloss per field, the governing reason for the flush plan, and the
// reliability and leakage outcome.
func Insight(e *types.RecommendationEntry) string {
	if e == nil {
		return NoEntry
	}
	p, rec := e.Profile, e.Recommendation

	var b strings.Builder
	fmt.Fprintf(&b, "Recommendation for %s at %g °C and %g bar\n\n", p.FluidType, p.Temperature, p.Pressure)

	b.WriteString("Configuration:\n")
	fmt.Fprintf(&b, "  - Category: %s (%s)\n", rec.Category, CategoryLabel(rec.Category))
	fmt.Fprintf(&b, "  - Type: %s (%s)\n", rec.Type, TypeLabel(rec.Type))
	fmt.Fprintf(&b, "  - Arrangement: %s (%s)\n", rec.Arrangement, ArrangementLabel(rec.Arrangement))
	fmt.Fprintf(&b, "  - Flush Plan: %s (%s)\n", rec.FlushPlan, FlushPlanDescription(rec.FlushPlan))
	fmt.Fprintf(&b, "  - Materials: %s (%s)\n", rec.Material, MaterialLabel(rec.Material))
	fmt.Fprintf(&b, "  - Reliability: %s | Leakage: %s\n", rec.Reliability, rec.LeakageRate)

	b.WriteString("\nReasoning:\n")
	fmt.Fprintf(&b, "  - %s %s\n", rec.FlushPlan, planRationale(p))
	fmt.Fprintf(&b, "  - Optimized for %s reliability and %s leakage.\n",
		strings.ToLower(string(rec.Reliability)), strings.ToLower(string(rec.LeakageRate)))

	h := e.Hydraulics
	fmt.Fprintf(&b, "\nHydraulics: NPSHa %.2f m, NPSHr %.2f m, cavitation risk %s.\n",
		h.NPSHa, h.NPSHr, h.CavitationRisk)

	if len(e.Mitigations) > 0 {
		b.WriteString("\nMitigations:\n")
		for _, m := range e.Mitigations {
			fmt.Fprintf(&b, "  - %s\n", m.Note)
		}
	}

	b.WriteString("\nAPI 682 compliant configuration.\n")
	return b.String()
}

// planRationale picks the single condition that best explains the flush
// plan, most severe first.
func planRationale(p types.SealInputProfile) string {
	name := strings.ToLower(p.FluidType)
	switch {
	case p.Hazardous || strings.Contains(name, "toxic"):
		return "for zero-emission sealing (hazardous)."
	case strings.Contains(name, "hydrocarbon") || p.Flashing:
		return "for low-emission hydrocarbons."
	case p.Temperature > 260:
		return "for high temperatures."
	case p.FluidState == types.StateGas:
		return "for gaseous fluids."
	case p.Solids:
		return "to prevent solids buildup."
	default:
		return "for standard conditions."
	}
}
