package context

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"ai-beautyadvisor-be/internal/constant"
	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
	"ai-beautyadvisor-be/pkg/rag/catalog"
	"ai-beautyadvisor-be/pkg/rag/docrank"
	"ai-beautyadvisor-be/pkg/rag/matcher"
)

// maxItemDescription bounds the description shown for a relevant item.
const maxItemDescription = 250

// Assembler runs every knowledge source against the utterance and joins the
// non-empty sections in fixed priority order: brand documents, regional
// ingredients, cosmetic actives, concerns, hair topics, catalog.
type Assembler struct {
	ranker   *docrank.Ranker
	regional *matcher.Regional
	cosmetic *matcher.Cosmetic
	concern  *matcher.Concern
	hair     *matcher.Hair
	searcher *catalog.Searcher
	logger   *log.Logger
}

// NewAssembler creates a context assembler over the loaded knowledge store
func NewAssembler(store *knowledge.Store, logger *log.Logger) *Assembler {
	return &Assembler{
		ranker:   docrank.NewRanker(),
		regional: matcher.NewRegional(store),
		cosmetic: matcher.NewCosmetic(store),
		concern:  matcher.NewConcern(store),
		hair:     matcher.NewHair(store),
		searcher: catalog.NewSearcher(),
		logger:   logger,
	}
}

// Assemble returns the context block for one utterance. When nothing
// matches anywhere, the fixed fallback sentence is returned instead.
func (a *Assembler) Assemble(message string, docs []entity.BrandDocument, items []entity.CatalogItem) string {
	var sections []string

	sections = append(sections, a.ranker.Rank(message, docs, docrank.DefaultConfig())...)
	sections = append(sections, a.regional.Match(message)...)
	sections = append(sections, a.cosmetic.Match(message)...)
	sections = append(sections, a.concern.Match(message)...)
	sections = append(sections, a.hair.Match(message)...)

	if catalogSection := a.buildCatalogSection(message, items); catalogSection != "" {
		sections = append(sections, catalogSection)
	}

	a.logger.Printf("[DEBUG] Assembled context: %d sections", len(sections))

	if len(sections) == 0 {
		return constant.FallbackContext
	}
	return strings.Join(sections, constant.SectionSeparator)
}

func (a *Assembler) buildCatalogSection(message string, items []entity.CatalogItem) string {
	if len(items) == 0 {
		return ""
	}

	relevant, remainder := a.searcher.Search(message, items)
	if len(relevant) == 0 {
		// Nothing scored: fall back to the compact listing of the whole
		// catalog so the model still knows what is sellable.
		return "[Catalogue] Produits disponibles :\n" + compactListing(items)
	}

	var b strings.Builder
	b.WriteString("[Catalogue] Produits les plus pertinents :\n\n")
	for i, item := range relevant {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(formatItemDetail(item))
	}
	if len(remainder) > 0 {
		b.WriteString("\n\nAutres produits du catalogue :\n")
		b.WriteString(compactListing(remainder))
	}
	return b.String()
}

func formatItemDetail(item entity.CatalogItem) string {
	description := item.Description
	if utf8.RuneCountInString(description) > maxItemDescription {
		description = string([]rune(description)[:maxItemDescription]) + "..."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "• %s — %s\n", item.Name, item.Price)
	fmt.Fprintf(&b, "  %s\n", description)
	fmt.Fprintf(&b, "  %s", item.URL)
	return b.String()
}

func compactListing(items []entity.CatalogItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s — %s (%s)", item.Name, item.Price, item.Category))
	}
	return strings.Join(lines, "\n")
}
