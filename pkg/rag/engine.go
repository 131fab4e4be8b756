package rag

import (
	"log"

	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
	ragcontext "ai-beautyadvisor-be/pkg/rag/context"
	"ai-beautyadvisor-be/pkg/rag/prompt"
)

// Engine is the retrieval and prompt-assembly facade. It is stateless per
// call: every method is a deterministic transformation of its inputs plus
// the immutable knowledge store, safe for concurrent use.
type Engine struct {
	assembler *ragcontext.Assembler
	logger    *log.Logger
}

// NewEngine creates the retrieval engine over a loaded knowledge store
func NewEngine(store *knowledge.Store, logger *log.Logger) *Engine {
	return &Engine{
		assembler: ragcontext.NewAssembler(store, logger),
		logger:    logger,
	}
}

// GetRelevantContext selects and formats the knowledge relevant to one user
// message: ranked brand documents, matched reference entries and the catalog
// split. Returns the fixed fallback sentence when nothing matched.
func (e *Engine) GetRelevantContext(userMessage string, items []entity.CatalogItem, docs []entity.BrandDocument) string {
	return e.assembler.Assemble(userMessage, docs, items)
}

// BuildExpertPrompt merges the retrieved context with the agent persona and
// the fixed behavior blocks into the final system prompt.
func (e *Engine) BuildExpertPrompt(agent entity.AgentProfile, relevantContext, tenantName string, isFirstMessage bool) string {
	return prompt.NewBuilder(agent, relevantContext, tenantName, isFirstMessage).Build()
}
