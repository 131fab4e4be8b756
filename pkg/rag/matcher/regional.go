package matcher

import (
	"fmt"
	"strings"

	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
)

// Regional matches traditional regional ingredients against the utterance.
// Matching is a pure lexical pass over the store: no cap, no ranking, one
// section per matched ingredient.
type Regional struct {
	store *knowledge.Store
}

// NewRegional creates a regional ingredient matcher
func NewRegional(store *knowledge.Store) *Regional {
	return &Regional{store: store}
}

// Match returns one formatted section per ingredient whose aliases appear in
// the message. Aliases are tried in order: key (underscores as spaces),
// scientific name, each comma-separated common name, each local name with
// its parenthetical language suffix stripped. First hit wins per ingredient.
func (m *Regional) Match(message string) []string {
	lower := strings.ToLower(message)

	var sections []string
	for _, key := range m.store.RegionalKeys {
		ing := m.store.Regional[key]
		if m.matches(lower, ing) {
			sections = append(sections, formatRegional(ing))
		}
	}
	return sections
}

func (m *Regional) matches(lower string, ing entity.RegionalIngredient) bool {
	if strings.Contains(lower, strings.ReplaceAll(ing.Key, "_", " ")) {
		return true
	}
	if sci := strings.ToLower(ing.ScientificName); sci != "" && strings.Contains(lower, sci) {
		return true
	}
	for _, name := range strings.Split(ing.CommonNames, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" && strings.Contains(lower, name) {
			return true
		}
	}
	for _, local := range ing.LocalNames {
		// "Sii (bambara)" -> "sii"
		if idx := strings.Index(local, "("); idx >= 0 {
			local = local[:idx]
		}
		local = strings.ToLower(strings.TrimSpace(local))
		if local != "" && strings.Contains(lower, local) {
			return true
		}
	}
	return false
}

func formatRegional(ing entity.RegionalIngredient) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Ingrédient traditionnel] %s (%s)\n", ing.CommonNames, ing.ScientificName)
	fmt.Fprintf(&b, "Origine : %s\n", ing.Origin)
	if len(ing.LocalNames) > 0 {
		fmt.Fprintf(&b, "Noms locaux : %s\n", strings.Join(ing.LocalNames, ", "))
	}
	fmt.Fprintf(&b, "Bienfaits peau : %s\n", strings.Join(ing.SkinBenefits, " ; "))
	fmt.Fprintf(&b, "Bienfaits cheveux : %s\n", strings.Join(ing.HairBenefits, " ; "))
	fmt.Fprintf(&b, "Actifs principaux : %s\n", strings.Join(ing.Actives, ", "))
	fmt.Fprintf(&b, "Usage traditionnel : %s\n", ing.TraditionalUse)
	fmt.Fprintf(&b, "Contre-indications : %s\n", ing.Contraindications)
	fmt.Fprintf(&b, "Types de peau conseillés : %s\n", strings.Join(ing.SkinTypes, ", "))
	fmt.Fprintf(&b, "Formes d'usage : %s", strings.Join(ing.UsageForms, ", "))

	return b.String()
}
