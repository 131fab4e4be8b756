package entity

// RegionalIngredient describes a traditional ingredient from the regional
// pharmacopoeia (shea, baobab, hibiscus...). Loaded once from the bundled
// reference data and never mutated.
type RegionalIngredient struct {
	Key               string   `json:"key"`
	CommonNames       string   `json:"common_names"` // comma-separated display names
	ScientificName    string   `json:"scientific_name"`
	Origin            string   `json:"origin"`
	LocalNames        []string `json:"local_names"` // may carry a "(language)" suffix
	SkinBenefits      []string `json:"skin_benefits"`
	HairBenefits      []string `json:"hair_benefits"`
	Actives           []string `json:"actives"`
	TraditionalUse    string   `json:"traditional_use"`
	Contraindications string   `json:"contraindications"`
	SkinTypes         []string `json:"skin_types"`
	UsageForms        []string `json:"usage_forms"`
}

// CosmeticIngredient describes a generic cosmetic active (niacinamide,
// retinol...). Matched through the synonym table in pkg/rag/matcher.
type CosmeticIngredient struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Function           string   `json:"function"`
	SkinTypes          []string `json:"skin_types"`
	Contraindications  string   `json:"contraindications"`
	Usage              string   `json:"usage"`
	IdealConcentration string   `json:"ideal_concentration,omitempty"`
}

// Concern is a named skin problem with its recommended routine. Matched
// through the keyword table in pkg/rag/matcher, never by bare key substring.
type Concern struct {
	Key             string   `json:"key"`
	Description     string   `json:"description"`
	Causes          []string `json:"causes"`
	Recommended     []string `json:"recommended_ingredients"`
	Routine         string   `json:"routine"`
	ResultsTimeline string   `json:"results_timeline,omitempty"`
	Advice          string   `json:"advice,omitempty"`
}

// HairType describes one curl-pattern profile (3A..4C). Matched by
// case-insensitive substring of the label in the utterance.
type HairType struct {
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	Needs         []string `json:"needs"`
	KeyProducts   []string `json:"key_products"`
	WashFrequency string   `json:"wash_frequency"`
	Techniques    []string `json:"techniques,omitempty"`
}
