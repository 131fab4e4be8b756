package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-beautyadvisor-be/internal/entity"
)

func item(name, description string) entity.CatalogItem {
	return entity.CatalogItem{
		Id:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       "15 €",
		Category:    "soin",
	}
}

func TestSearchSplitsRelevantAndRemainder(t *testing.T) {
	s := NewSearcher()

	items := []entity.CatalogItem{
		item("Beurre de karité brut", "karité pur du Mali pour peaux sèches, nourrit en profondeur"),
		item("Savon noir", "savon purifiant traditionnel"),
		item("Baume karité lavande", "baume au karité apaisant"),
		item("Gel d'aloe vera", "hydratant léger"),
		item("Huile de karité fractionnée", "karité liquide pour cheveux"),
	}

	relevant, remainder := s.Search("je cherche du karité pour mes peaux sèches", items)

	require.Len(t, relevant, 3, "only the top 3 scoring items are relevant")
	assert.Equal(t, "Beurre de karité brut", relevant[0].Name)
	require.Len(t, remainder, 2)
	assert.Len(t, relevant, 3)
	for _, r := range remainder {
		assert.NotContains(t, []string{relevant[0].Name, relevant[1].Name, relevant[2].Name}, r.Name)
	}
}

func TestSearchNoMatchReturnsEmptyRelevant(t *testing.T) {
	s := NewSearcher()

	items := []entity.CatalogItem{
		item("Savon noir", "savon purifiant"),
		item("Gel d'aloe", "hydratant"),
	}

	relevant, remainder := s.Search("bonjour", items)
	assert.Empty(t, relevant)
	assert.Len(t, remainder, 2, "the whole catalog goes to the remainder")
}

func TestSearchShortTokensNeverScore(t *testing.T) {
	s := NewSearcher()

	items := []entity.CatalogItem{
		item("Thé bio", "un thé vert bio"),
	}

	// "thé" and "bio" are both <= 3 runes: no token, no match.
	relevant, remainder := s.Search("thé bio", items)
	assert.Empty(t, relevant)
	assert.Len(t, remainder, 1)
}

func TestSearchScoresOnNameAndDescription(t *testing.T) {
	s := NewSearcher()

	items := []entity.CatalogItem{
		item("Sérum éclat", "concentré de vitamine anti-taches"),
		item("Crème neutre", "sans parfum"),
	}

	relevant, remainder := s.Search("un soin anti-taches efficace", items)
	require.Len(t, relevant, 1)
	assert.Equal(t, "Sérum éclat", relevant[0].Name)
	assert.Len(t, remainder, 1)
}

func TestSearchKeepsIdLessItemsInRemainder(t *testing.T) {
	s := NewSearcher()

	// Callers are not required to send ids; the split must not collapse
	// items sharing the zero uuid.
	idLess := func(name, description string) entity.CatalogItem {
		return entity.CatalogItem{Name: name, Description: description, Price: "15 €", Category: "soin"}
	}
	items := []entity.CatalogItem{
		idLess("Beurre de karité", "karité brut du Mali"),
		idLess("Savon noir", "savon purifiant"),
		idLess("Gel d'aloe", "hydratant léger"),
		idLess("Eau florale", "tonique doux"),
	}

	relevant, remainder := s.Search("karité", items)
	require.Len(t, relevant, 1)
	assert.Equal(t, "Beurre de karité", relevant[0].Name)
	require.Len(t, remainder, 3)
	assert.Equal(t, "Savon noir", remainder[0].Name)
	assert.Equal(t, "Gel d'aloe", remainder[1].Name)
	assert.Equal(t, "Eau florale", remainder[2].Name)
}

func TestSearchDuplicateIdsSplitIndependently(t *testing.T) {
	s := NewSearcher()

	shared := uuid.New()
	items := []entity.CatalogItem{
		{Id: shared, Name: "Baume karité", Description: "au karité", Price: "19 €", Category: "soin"},
		{Id: shared, Name: "Brume légère", Description: "rafraîchissante", Price: "9 €", Category: "soin"},
	}

	relevant, remainder := s.Search("karité", items)
	require.Len(t, relevant, 1)
	assert.Equal(t, "Baume karité", relevant[0].Name)
	require.Len(t, remainder, 1)
	assert.Equal(t, "Brume légère", remainder[0].Name)
}

func TestSearchIsStableOnTies(t *testing.T) {
	s := NewSearcher()

	items := []entity.CatalogItem{
		item("Premier baume karité", "au karité"),
		item("Deuxième baume karité", "au karité"),
		item("Troisième baume karité", "au karité"),
		item("Quatrième baume karité", "au karité"),
	}

	relevant, remainder := s.Search("karité", items)
	require.Len(t, relevant, 3)
	assert.Equal(t, "Premier baume karité", relevant[0].Name)
	assert.Equal(t, "Deuxième baume karité", relevant[1].Name)
	assert.Equal(t, "Troisième baume karité", relevant[2].Name)
	require.Len(t, remainder, 1)
	assert.Equal(t, "Quatrième baume karité", remainder[0].Name)
}
