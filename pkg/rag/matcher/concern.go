package matcher

import (
	"fmt"
	"strings"
	"unicode"

	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
)

// concernKeywords maps a concern key to its trigger phrases. A concern is
// never matched by bare key substring unless it has no entry here (the
// documented fallback rule).
var concernKeywords = map[string][]string{
	"acne":              {"acné", "acne", "bouton", "points noirs", "point noir", "comédon", "imperfection"},
	"secheresse":        {"sécheresse", "secheresse", "peau sèche", "peau seche", "tiraille", "desquam", "déshydrat", "deshydrat"},
	"hyperpigmentation": {"tache", "hyperpigmentation", "teint irrégulier", "teint irregulier", "masque de grossesse", "dépigment"},
	"rides":             {"ride", "anti-âge", "anti-age", "anti âge", "vieillissement", "fermeté", "relâchement"},
	"peau_grasse":       {"peau grasse", "brille", "brillance", "sébum", "sebum", "pores dilatés", "pores dilates"},
	"peau_sensible":     {"peau sensible", "rougeur", "réactive", "reactive", "irritation", "échauffement"},
}

// Concern matches named skin concerns through the keyword table.
type Concern struct {
	store *knowledge.Store
}

// NewConcern creates a skin concern matcher
func NewConcern(store *knowledge.Store) *Concern {
	return &Concern{store: store}
}

// Match returns one formatted section per concern whose keywords appear in
// the message. All matches are included, without cap.
func (m *Concern) Match(message string) []string {
	lower := strings.ToLower(message)

	var sections []string
	for _, key := range m.store.ConcernKeys {
		keywords, ok := concernKeywords[key]
		if !ok {
			keywords = []string{key}
		}
		if containsAny(lower, keywords) {
			sections = append(sections, formatConcern(m.store.Concerns[key]))
		}
	}
	return sections
}

func formatConcern(c entity.Concern) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Problématique] %s\n", keyTitle(c.Key))
	fmt.Fprintf(&b, "%s\n", c.Description)
	fmt.Fprintf(&b, "Causes fréquentes : %s\n", strings.Join(c.Causes, " ; "))
	fmt.Fprintf(&b, "Actifs recommandés : %s\n", strings.Join(c.Recommended, ", "))
	fmt.Fprintf(&b, "Routine conseillée : %s", c.Routine)
	if c.ResultsTimeline != "" {
		fmt.Fprintf(&b, "\nRésultats attendus : %s", c.ResultsTimeline)
	}
	if c.Advice != "" {
		fmt.Fprintf(&b, "\nConseil : %s", c.Advice)
	}

	return b.String()
}

// keyTitle turns an internal key like "peau_grasse" into "Peau grasse".
func keyTitle(key string) string {
	title := strings.ReplaceAll(key, "_", " ")
	runes := []rune(title)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
