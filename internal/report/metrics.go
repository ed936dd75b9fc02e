// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "github.com/pdiddy/seal-advisor/pkg/types"

// Rating is a metric on the 0..3 scale (Zero, Low, Moderate, High).
type Rating int

const (
	RatingZero Rating = iota
	RatingLow
	RatingModerate
	RatingHigh
)

func (r Rating) String() string {
	switch r {
	case RatingZero:
		return "Zero"
	case RatingLow:
		return "Low"
	case RatingModerate:
		return "Moderate"
	case RatingHigh:
		return "High"
	}
	return "Unknown"
}

// Metric is one named rating.
type Metric struct {
	Name   string `json:"name" yaml:"name"`
	Rating Rating `json:"rating" yaml:"rating"`
}

// Metrics rates e on reliability, leakage, compliance and the temperature
// and pressure load it imposes on the seal.
func Metrics(e types.RecommendationEntry) []Metric {
	return []Metric{
		{"Reliability", reliabilityRating(e.Recommendation.Reliability)},
		{"Leakage", leakageRating(e.Recommendation.LeakageRate)},
		{"Compliance", complianceRating(e.Recommendation.ComplianceNotes)},
		{"Temp Impact", temperatureImpact(e.Profile.Temperature)},
		{"Pressure Impact", pressureImpact(e.Profile.Pressure)},
	}
}

func reliabilityRating(r types.Reliability) Rating {
	switch r {
	case types.ReliabilityHigh, types.ReliabilityEnhanced:
		return RatingHigh
	case types.ReliabilityModerate:
		return RatingModerate
	default:
		return RatingLow
	}
}

func leakageRating(l types.LeakageRate) Rating {
	switch l {
	case types.LeakageZero:
		return RatingZero
	case types.LeakageVeryLow, types.LeakageLow:
		return RatingLow
	case types.LeakageModerate:
		return RatingHigh
	default:
		return RatingModerate
	}
}

func complianceRating(notes []string) Rating {
	if len(notes) > 0 {
		return RatingHigh
	}
	return RatingLow
}

func temperatureImpact(t float64) Rating {
	switch {
	case t > 260:
		return RatingHigh
	case t > 150:
		return RatingModerate
	default:
		return RatingLow
	}
}

func pressureImpact(p float64) Rating {
	switch {
	case p > 50:
		return RatingHigh
	case p > 20:
		return RatingModerate
	default:
		return RatingLow
	}
}
