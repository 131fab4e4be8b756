package matcher

import (
	"fmt"
	"strings"

	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
)

// hairTriggers gates the whole hair pass: none of the hair sections are
// emitted unless at least one of these appears in the message.
var hairTriggers = []string{
	"cheveux", "cheveu", "capillaire", "cuir chevelu",
	"crépus", "crepus", "frisés", "frises", "bouclés", "boucles",
	"tresses", "locks", "défrisage", "casse", "chute", "pousse",
	"4a", "4b", "4c",
}

var breakageTriggers = []string{"casse", "cassent", "fragile", "tresses", "traction"}

var hairLossTriggers = []string{"chute", "tombent", "perte de cheveux", "alopécie", "alopecie"}

const breakageSection = `[Cheveux] Casse et alopécie de traction
La casse vient le plus souvent d'un manque d'hydratation, de manipulations trop fréquentes, de coiffures trop serrées (tresses, tissages) ou d'outils chauffants. Une traction répétée sur les tempes peut évoluer en alopécie de traction, réversible seulement si elle est prise tôt.
Réflexes : desserrer les coiffures, espacer les manipulations, hydrater puis sceller avec un beurre, dormir sur du satin.`

const hairLossSection = `[Cheveux] Chute de cheveux
Une chute diffuse peut être saisonnière, liée au stress, à une carence (fer, zinc, vitamine D), à un post-partum ou à un dérèglement hormonal. Une chute localisée ou brutale justifie un avis médical.
Réflexes : masser le cuir chevelu, fortifier avec des soins adaptés, vérifier l'alimentation, consulter si la chute persiste au-delà de trois mois.`

// Hair emits the hand-authored hair sub-case texts and the matching
// hair-type profiles when the message is hair-related.
type Hair struct {
	store *knowledge.Store
}

// NewHair creates a hair topic matcher
func NewHair(store *knowledge.Store) *Hair {
	return &Hair{store: store}
}

// Match returns nothing unless a hair trigger is present. Inside the gate,
// the breakage and hair-loss texts fire independently, then every hair-type
// label found in the message (case-insensitive substring) emits its profile.
func (m *Hair) Match(message string) []string {
	lower := strings.ToLower(message)
	if !containsAny(lower, hairTriggers) {
		return nil
	}

	var sections []string
	if containsAny(lower, breakageTriggers) {
		sections = append(sections, breakageSection)
	}
	if containsAny(lower, hairLossTriggers) {
		sections = append(sections, hairLossSection)
	}
	for _, label := range m.store.HairLabels {
		if strings.Contains(lower, strings.ToLower(label)) {
			sections = append(sections, formatHairType(m.store.HairTypes[label]))
		}
	}
	return sections
}

func formatHairType(h entity.HairType) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Cheveux] Type %s\n", h.Label)
	fmt.Fprintf(&b, "%s\n", h.Description)
	fmt.Fprintf(&b, "Besoins : %s\n", strings.Join(h.Needs, " ; "))
	fmt.Fprintf(&b, "Produits clés : %s\n", strings.Join(h.KeyProducts, ", "))
	fmt.Fprintf(&b, "Fréquence de lavage : %s", h.WashFrequency)
	if len(h.Techniques) > 0 {
		fmt.Fprintf(&b, "\nTechniques : %s", strings.Join(h.Techniques, ", "))
	}

	return b.String()
}
