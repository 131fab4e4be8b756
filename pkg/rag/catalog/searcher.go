package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"ai-beautyadvisor-be/internal/entity"
)

// relevantLimit caps the number of items presented with full detail; the
// rest of the catalog is always listed compactly so the model can still
// mention it.
const relevantLimit = 3

type scoredItem struct {
	index int
	score int
}

// Searcher splits the tenant catalog into the items most relevant to an
// utterance and the remainder.
type Searcher struct{}

// NewSearcher creates a catalog searcher
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search scores every item by counting the message tokens (length > 3) found
// in its lower-cased name and description. The top scoring items become
// relevant, every other item is returned as remainder regardless of score.
func (s *Searcher) Search(message string, items []entity.CatalogItem) (relevant, remainder []entity.CatalogItem) {
	tokens := tokenize(message)

	var scored []scoredItem
	for i, item := range items {
		if score := scoreItem(tokens, item); score > 0 {
			scored = append(scored, scoredItem{index: i, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > relevantLimit {
		scored = scored[:relevantLimit]
	}

	// Track kept items by input position: ids are caller-supplied and may be
	// absent or duplicated, so they cannot identify an item.
	kept := make(map[int]bool, len(scored))
	for _, s := range scored {
		relevant = append(relevant, items[s.index])
		kept[s.index] = true
	}
	for i, item := range items {
		if !kept[i] {
			remainder = append(remainder, item)
		}
	}
	return relevant, remainder
}

func scoreItem(tokens []string, item entity.CatalogItem) int {
	haystack := strings.ToLower(item.Name + " " + item.Description)

	score := 0
	for _, tok := range tokens {
		if strings.Contains(haystack, tok) {
			score++
		}
	}
	return score
}

func tokenize(message string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,?!;:")
		if utf8.RuneCountInString(word) > 3 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
