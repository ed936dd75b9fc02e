// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Keyword sets for the fluid-name heuristics. Matching is a case-insensitive
// substring test on free text, so it can false-positive: "nontoxic-solvent"
// matches "toxic". The results are treated as hints that raise the service
// severity, never as a hard classification.
var (
	hazardKeywords = []string{
		"acid", "caustic", "toxic", "hazardous", "carcinogen", "radioactive",
	}
	// Only the generic term marks a hot fluid as flashing. Named products
	// such as crude or lube oil rely on the explicit flashing flag.
	hydrocarbonKeywords = []string{"hydrocarbon"}
	abrasiveKeywords = []string{
		"slurry", "particulate", "ash", "catalyst",
	}
	polymerizingKeywords = []string{
		"styrene", "butadiene", "vinyl", "acrylic",
	}
	corrosiveKeywords = []string{
		"acid", "caustic",
	}
)

// normalizeName folds a fluid name for keyword matching: NFKC, trimmed,
// lower case.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
}

// containsAny reports whether the normalized name contains any keyword.
func containsAny(name string, keywords []string) bool {
	n := normalizeName(name)
	if n == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}
