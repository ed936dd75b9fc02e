// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mitigation maps service-condition flags to actionable suggestions.
package mitigation

import (
	"fmt"

	"github.com/pdiddy/seal-advisor/internal/classify"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

const (
	refNPSHMargin = "API 610 §6.1.8 NPSH margin"
	refHIMargin   = "ANSI/HI 9.6.1 NPSH margin"
	refSealSpeed  = "API 682 §6.1.1 Seal face speed"
	refSolids     = "API 682 Annex G Plan 32/31"
	refPolymer    = "API 682 Annex G Plan 52/53"
	refVelocity   = "ANSI/HI 9.6.6 Suction piping"
)

// Advise returns suggestions for the conditions that apply, always in the
// order cavitation, speed, abrasive, polymerizing, flow velocity, NPSH
// margin. h supplies the head values quoted in the NPSH notes and may be nil.
func Advise(c classify.Conditions, h *types.HydraulicResult) []types.Mitigation {
	out := []types.Mitigation{}

	if c.CavitationRisk {
		out = append(out, types.Mitigation{
			Note:      "Cavitation risk: NPSHa is below 1.3 × NPSHr" + heads(h) + ". Raise suction head, lower the pump elevation or fit a booster/inducer.",
			Reference: refNPSHMargin,
		})
	}
	if c.HighSpeed {
		out = append(out, types.Mitigation{
			Note:      "Shaft speed above 2500 RPM: check seal face velocity and consider a stationary (rotating-seat) design with enhanced cooling.",
			Reference: refSealSpeed,
		})
	}
	if c.Abrasive {
		out = append(out, types.Mitigation{
			Note:      "Abrasive solids: use hard face pairs and a clean external flush (Plan 32) or a cyclone separator (Plan 31).",
			Reference: refSolids,
		})
	}
	if c.Polymerizing {
		out = append(out, types.Mitigation{
			Note:      "Polymerizing fluid: keep seal faces wetted with a buffer or barrier fluid and avoid dead zones in the seal chamber.",
			Reference: refPolymer,
		})
	}
	if c.SmallPipe && c.HighFlow {
		out = append(out, types.Mitigation{
			Note:      "High flow through a suction line under 80 mm: increase pipe diameter to reduce velocity and friction loss.",
			Reference: refVelocity,
		})
	}
	if c.LowNPSHMargin {
		out = append(out, types.Mitigation{
			Note:      "Low NPSH margin: NPSHa is below 1.5 × NPSHr" + heads(h) + ". Review suction conditions before finalizing pump selection.",
			Reference: refHIMargin,
		})
	}

	return out
}

func heads(h *types.HydraulicResult) string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf(" (NPSHa %.2f m, NPSHr %.2f m)", h.NPSHa, h.NPSHr)
}
