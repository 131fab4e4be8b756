package matcher

import (
	"fmt"
	"strings"

	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
)

// cosmeticSynonyms maps an ingredient key to its hand-authored trigger
// phrases. Keys without an entry fall back to the key itself (underscores as
// spaces) plus the lower-cased display name.
var cosmeticSynonyms = map[string][]string{
	"acide_hyaluronique": {"acide hyaluronique", "hyaluronique", "hyaluronic"},
	"niacinamide":        {"niacinamide", "vitamine b3"},
	"retinol":            {"rétinol", "retinol", "rétinoïde"},
	"vitamine_c":         {"vitamine c", "acide ascorbique"},
	"acide_salicylique":  {"acide salicylique", "salicylique", "bha"},
	"acide_glycolique":   {"acide glycolique", "glycolique", "aha"},
	"ceramides":          {"céramide", "ceramide"},
}

// Cosmetic matches generic cosmetic actives through the synonym table.
type Cosmetic struct {
	store *knowledge.Store
}

// NewCosmetic creates a cosmetic active matcher
func NewCosmetic(store *knowledge.Store) *Cosmetic {
	return &Cosmetic{store: store}
}

// Match returns one formatted section per active whose synonyms appear in
// the message. All matches are included, without cap.
func (m *Cosmetic) Match(message string) []string {
	lower := strings.ToLower(message)

	var sections []string
	for _, key := range m.store.CosmeticKeys {
		ing := m.store.Cosmetic[key]
		if containsAny(lower, synonymsFor(ing)) {
			sections = append(sections, formatCosmetic(ing))
		}
	}
	return sections
}

func synonymsFor(ing entity.CosmeticIngredient) []string {
	if syns, ok := cosmeticSynonyms[ing.Key]; ok {
		return syns
	}
	return []string{
		strings.ReplaceAll(ing.Key, "_", " "),
		strings.ToLower(ing.Name),
	}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func formatCosmetic(ing entity.CosmeticIngredient) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Actif cosmétique] %s\n", ing.Name)
	fmt.Fprintf(&b, "Fonction : %s\n", ing.Function)
	fmt.Fprintf(&b, "Types de peau : %s\n", strings.Join(ing.SkinTypes, ", "))
	if ing.IdealConcentration != "" {
		fmt.Fprintf(&b, "Concentration idéale : %s\n", ing.IdealConcentration)
	}
	fmt.Fprintf(&b, "Usage : %s\n", ing.Usage)
	fmt.Fprintf(&b, "Contre-indications : %s", ing.Contraindications)

	return b.String()
}
