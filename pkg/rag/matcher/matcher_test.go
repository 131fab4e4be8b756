package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-beautyadvisor-be/pkg/knowledge"
)

func testStore(t *testing.T) *knowledge.Store {
	t.Helper()
	store, err := knowledge.Load()
	require.NoError(t, err)
	return store
}

func TestRegionalMatchAliases(t *testing.T) {
	m := NewRegional(testStore(t))

	tests := []struct {
		name    string
		message string
		want    string // substring expected in one of the sections
	}{
		{"common name", "je cherche du karité pour l'hiver", "Butyrospermum parkii"},
		{"scientific name", "que penses-tu de butyrospermum parkii ?", "Butyrospermum parkii"},
		{"key with underscore replaced", "l'huile argan est-elle adaptée ?", "Argania spinosa"},
		{"local name without parenthetical", "ma grand-mère parlait du bissap", "Hibiscus sabdariffa"},
		{"second common name", "le beurre de karité est-il comédogène ?", "Butyrospermum parkii"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := m.Match(tt.message)
			require.NotEmpty(t, sections)
			assert.Contains(t, strings.Join(sections, "\n"), tt.want)
		})
	}
}

func TestRegionalMatchIsCaseInsensitive(t *testing.T) {
	m := NewRegional(testStore(t))

	lower := m.Match("karité")
	mixed := m.Match("Karité")
	upper := m.Match("KARITÉ")

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, mixed)
	assert.Equal(t, lower, upper)
}

func TestRegionalMatchEmitsOneSectionPerIngredient(t *testing.T) {
	m := NewRegional(testStore(t))

	// Two distinct ingredients, one section each, even though "karité"
	// matches several aliases of the same entry.
	sections := m.Match("du karité et de l'aloe vera")
	assert.Len(t, sections, 2)
}

func TestRegionalNoMatch(t *testing.T) {
	m := NewRegional(testStore(t))
	assert.Empty(t, m.Match("bonjour"))
}

func TestCosmeticSynonyms(t *testing.T) {
	m := NewCosmetic(testStore(t))

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"synonym table entry", "un sérum hyaluronique ?", "Acide hyaluronique"},
		{"accentless synonym", "le retinol me fait peur", "Rétinol"},
		{"shorthand", "un produit avec du bha", "Acide salicylique"},
		{"fallback on key", "le zinc pca est-il efficace ?", "Zinc PCA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := m.Match(tt.message)
			require.NotEmpty(t, sections)
			assert.Contains(t, strings.Join(sections, "\n"), tt.want)
		})
	}
}

func TestConcernKeywords(t *testing.T) {
	m := NewConcern(testStore(t))

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"accented keyword", "j'ai la peau sèche en ce moment", "Secheresse"},
		{"accentless keyword", "ma peau seche tiraille", "Secheresse"},
		{"acne group", "des boutons sur le front", "Problématique] Acne"},
		{"pigmentation group", "des taches après mes boutons", "Hyperpigmentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := m.Match(tt.message)
			require.NotEmpty(t, sections)
			assert.Contains(t, strings.Join(sections, "\n"), tt.want)
		})
	}
}

func TestConcernNotMatchedByBareKey(t *testing.T) {
	m := NewConcern(testStore(t))

	// The key "peau_grasse" itself (with underscore) never appears in
	// natural text; only its keyword table may trigger it.
	assert.Empty(t, m.Match("parle-moi de peau_grasse stp"))
}

func TestHairGate(t *testing.T) {
	m := NewHair(testStore(t))

	// No hair trigger at all: nothing, even if a label-like token appears
	// is impossible since labels are triggers, so use a neutral message.
	assert.Empty(t, m.Match("quelle crème pour mes mains ?"))
}

func TestHairTypeLabel(t *testing.T) {
	m := NewHair(testStore(t))

	sections := m.Match("mes cheveux 4c sont très secs")
	require.NotEmpty(t, sections)
	assert.Contains(t, strings.Join(sections, "\n"), "[Cheveux] Type 4C")
}

func TestHairSubCases(t *testing.T) {
	m := NewHair(testStore(t))

	breakage := m.Match("mes cheveux se cassent depuis mes tresses")
	require.NotEmpty(t, breakage)
	assert.Contains(t, strings.Join(breakage, "\n"), "alopécie de traction")

	loss := m.Match("je constate une chute de cheveux importante")
	require.NotEmpty(t, loss)
	assert.Contains(t, strings.Join(loss, "\n"), "Chute de cheveux")
}

func TestHairCaseInsensitive(t *testing.T) {
	m := NewHair(testStore(t))

	lower := m.Match("routine pour cheveux 4b")
	upper := m.Match("ROUTINE POUR CHEVEUX 4B")
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}
