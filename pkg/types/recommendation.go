// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category is the seal category (duty class).
type Category string

const (
	Category1 Category = "Category 1"
	Category2 Category = "Category 2"
	Category3 Category = "Category 3"
)

// Categories lists every category in ascending severity.
var Categories = []Category{Category1, Category2, Category3}

// SealType is the seal design type.
type SealType string

const (
	TypeA SealType = "Type A"
	TypeB SealType = "Type B"
	TypeC SealType = "Type C"
)

// SealTypes lists every seal type.
var SealTypes = []SealType{TypeA, TypeB, TypeC}

// Arrangement is the seal redundancy configuration: single,
// dual unpressurized or dual pressurized.
type Arrangement string

const (
	Arrangement1 Arrangement = "Arrangement 1"
	Arrangement2 Arrangement = "Arrangement 2"
	Arrangement3 Arrangement = "Arrangement 3"
)

// Arrangements lists every arrangement.
var Arrangements = []Arrangement{Arrangement1, Arrangement2, Arrangement3}

// FlushPlan is a standardized seal-support piping plan.
type FlushPlan string

const (
	Plan11  FlushPlan = "Plan 11"
	Plan13  FlushPlan = "Plan 13"
	Plan21  FlushPlan = "Plan 21"
	Plan23  FlushPlan = "Plan 23"
	Plan31  FlushPlan = "Plan 31"
	Plan32  FlushPlan = "Plan 32"
	Plan51  FlushPlan = "Plan 51"
	Plan52  FlushPlan = "Plan 52"
	Plan53A FlushPlan = "Plan 53A"
	Plan53B FlushPlan = "Plan 53B"
	Plan53C FlushPlan = "Plan 53C"
	Plan54  FlushPlan = "Plan 54"
	Plan62  FlushPlan = "Plan 62"
	Plan75  FlushPlan = "Plan 75"
	Plan76  FlushPlan = "Plan 76"
)

// FlushPlans lists the fifteen supported plans in catalogue order.
var FlushPlans = []FlushPlan{
	Plan11, Plan13, Plan21, Plan23, Plan31, Plan32,
	Plan51, Plan52, Plan53A, Plan53B, Plan53C, Plan54,
	Plan62, Plan75, Plan76,
}

// Material is a seal face material pair.
type Material string

const (
	MaterialCarbonSiC         Material = "Carbon vs. Silicon Carbide"
	MaterialSiCSiC            Material = "Silicon Carbide vs. Silicon Carbide"
	MaterialTungstenSiC       Material = "Tungsten Carbide vs. Silicon Carbide"
	MaterialReactiveOxideSiC  Material = "Reactive Metal Oxide vs. Silicon Carbide"
	MaterialCarbonGraphiteSiC Material = "Carbon Graphite vs. Silicon Carbide"
)

// Materials lists every supported face pair.
var Materials = []Material{
	MaterialCarbonSiC,
	MaterialSiCSiC,
	MaterialTungstenSiC,
	MaterialReactiveOxideSiC,
	MaterialCarbonGraphiteSiC,
}

// Reliability is the expected reliability class of the configuration.
type Reliability string

const (
	ReliabilityStandard Reliability = "Standard"
	ReliabilityModerate Reliability = "Moderate"
	ReliabilityEnhanced Reliability = "Enhanced"
	ReliabilityHigh     Reliability = "High"
)

// LeakageRate is an expected emission band, e.g. "1-5 ppm".
type LeakageRate string

const (
	LeakageZero     LeakageRate = "0 ppm"
	LeakageVeryLow  LeakageRate = "1-5 ppm"
	LeakageLow      LeakageRate = "2-8 ppm"
	LeakageStandard LeakageRate = "5-10 ppm"
	LeakageModerate LeakageRate = "10-15 ppm"
)

// RiskLevel grades cavitation risk.
type RiskLevel string

const (
	RiskLow  RiskLevel = "Low"
	RiskHigh RiskLevel = "High"
)

// Field names a classified field of a SealRecommendation; it keys the
// Reasons map.
type Field string

const (
	FieldCategory    Field = "category"
	FieldType        Field = "type"
	FieldArrangement Field = "arrangement"
	FieldFlushPlan   Field = "flush_plan"
	FieldMaterial    Field = "material"
	FieldReliability Field = "reliability"
)

// Reason explains one classification decision and cites the governing
// standard clause.
type Reason struct {
	Text      string `json:"text" yaml:"text"`
	Reference string `json:"reference" yaml:"reference"`
}

// HydraulicResult is the suction-side analysis of a profile. Heads are in
// metres rounded to two decimals, vapor pressure in bar rounded to four.
// CavitationRisk is High exactly when NPSHa < NPSHr on the rounded values.
type HydraulicResult struct {
	VaporPressure  float64   `json:"vapor_pressure" yaml:"vapor_pressure"`
	FrictionLoss   float64   `json:"friction_loss" yaml:"friction_loss"`
	NPSHa          float64   `json:"npsha" yaml:"npsha"`
	NPSHr          float64   `json:"npshr" yaml:"npshr"`
	CavitationRisk RiskLevel `json:"cavitation_risk" yaml:"cavitation_risk"`
}

// SealRecommendation is the classified seal specification with its rationale.
type SealRecommendation struct {
	Category    Category    `json:"category" yaml:"category"`
	Type        SealType    `json:"type" yaml:"type"`
	Arrangement Arrangement `json:"arrangement" yaml:"arrangement"`
	FlushPlan   FlushPlan   `json:"flush_plan" yaml:"flush_plan"`
	Material    Material    `json:"material" yaml:"material"`
	Reliability Reliability `json:"reliability" yaml:"reliability"`
	LeakageRate LeakageRate `json:"leakage_rate" yaml:"leakage_rate"`

	// Reasons holds one entry per classified field.
	Reasons map[Field]Reason `json:"reasons" yaml:"reasons"`

	// ComplianceNotes lists the special-case rules that fired, in the order
	// they were applied.
	ComplianceNotes []string `json:"compliance_notes" yaml:"compliance_notes"`

	PreferredCategory    Category    `json:"preferred_category,omitempty" yaml:"preferred_category,omitempty"`
	PreferredType        SealType    `json:"preferred_type,omitempty" yaml:"preferred_type,omitempty"`
	PreferredArrangement Arrangement `json:"preferred_arrangement,omitempty" yaml:"preferred_arrangement,omitempty"`
	PreferredFlushPlan   FlushPlan   `json:"preferred_flush_plan,omitempty" yaml:"preferred_flush_plan,omitempty"`
	PreferredMaterial    Material    `json:"preferred_material,omitempty" yaml:"preferred_material,omitempty"`
}

// Mitigation is one actionable suggestion from the mitigation advisor.
type Mitigation struct {
	Note      string `json:"note" yaml:"note"`
	Reference string `json:"reference" yaml:"reference"`
}
