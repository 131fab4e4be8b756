package docrank

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"ai-beautyadvisor-be/internal/entity"
)

const (
	// A document shorter than this is noise (empty drafts, titles saved
	// without a body) and is skipped entirely.
	minContentLength = 30

	// Kept content is bounded so one verbose document cannot eat the whole
	// context window.
	maxContentLength = 2000

	truncationMarker = "... [contenu tronqué]"

	titleWeight        = 3
	maxCountedPerToken = 5
)

// Config encapsulates ranking parameters
type Config struct {
	MaxDocs int
	// KeepAllThreshold is the tenant size at or under which zero-score
	// documents are still returned: small catalogs always get full context.
	KeepAllThreshold int
}

// DefaultConfig returns the default ranking configuration
func DefaultConfig() Config {
	return Config{
		MaxDocs:          7,
		KeepAllThreshold: 5,
	}
}

type scoredDocument struct {
	doc   entity.BrandDocument
	score int
}

// Ranker scores tenant brand documents against an utterance.
type Ranker struct{}

// NewRanker creates a document ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank returns up to cfg.MaxDocs formatted sections for the documents most
// relevant to the message. Inactive and too-short documents are silently
// skipped so one bad tenant document never blocks retrieval. Ties keep the
// input order (stable sort).
func (r *Ranker) Rank(message string, docs []entity.BrandDocument, cfg Config) []string {
	tokens := tokenize(message)

	var eligible []entity.BrandDocument
	for _, doc := range docs {
		if doc.IsActive() && utf8.RuneCountInString(doc.Content) > minContentLength {
			eligible = append(eligible, doc)
		}
	}

	var scored []scoredDocument
	for _, doc := range eligible {
		score := scoreDocument(tokens, doc)
		if score == 0 {
			// Small tenants always get their full knowledge base.
			if len(eligible) > cfg.KeepAllThreshold {
				continue
			}
			score = 1
		}
		scored = append(scored, scoredDocument{doc: doc, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > cfg.MaxDocs {
		scored = scored[:cfg.MaxDocs]
	}

	sections := make([]string, 0, len(scored))
	for _, s := range scored {
		sections = append(sections, formatDocument(s.doc))
	}
	return sections
}

func scoreDocument(tokens []string, doc entity.BrandDocument) int {
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(doc.Content)

	score := 0
	for _, tok := range tokens {
		score += titleWeight * strings.Count(title, tok)

		occurrences := strings.Count(content, tok)
		if occurrences > maxCountedPerToken {
			occurrences = maxCountedPerToken
		}
		score += occurrences
	}
	return score
}

func tokenize(message string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,?!;:")
		if utf8.RuneCountInString(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func formatDocument(doc entity.BrandDocument) string {
	content := doc.Content
	if utf8.RuneCountInString(content) > maxContentLength {
		content = string([]rune(content)[:maxContentLength]) + truncationMarker
	}
	return fmt.Sprintf("[Document marque] %s\n%s", doc.Title, content)
}
