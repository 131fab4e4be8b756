package dto

import (
	"github.com/google/uuid"

	"ai-beautyadvisor-be/internal/entity"
)

// BrandDocumentPayload mirrors entity.BrandDocument for the wire. The
// active flag stays a pointer: absent means active.
type BrandDocumentPayload struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Active  *bool     `json:"active,omitempty"`
}

type CatalogItemPayload struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
}

type AgentProfilePayload struct {
	Name           string `json:"name"`
	RoleTitle      string `json:"role_title"`
	WelcomeMessage string `json:"welcome_message"`
	Personality    string `json:"personality"`
}

type ContextRequest struct {
	Message        string                 `json:"message" validate:"required"`
	CatalogItems   []CatalogItemPayload   `json:"catalog_items"`
	BrandDocuments []BrandDocumentPayload `json:"brand_documents"`
}

type ContextResponse struct {
	Context string `json:"context"`
}

type PromptRequest struct {
	Agent           AgentProfilePayload `json:"agent"`
	RelevantContext string              `json:"relevant_context" validate:"required"`
	TenantName      string              `json:"tenant_name"`
	// IsFirstMessage defaults to true when absent.
	IsFirstMessage *bool `json:"is_first_message,omitempty"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

func (p BrandDocumentPayload) ToEntity() entity.BrandDocument {
	return entity.BrandDocument{
		Id:      p.Id,
		Title:   p.Title,
		Content: p.Content,
		Active:  p.Active,
	}
}

func (p CatalogItemPayload) ToEntity() entity.CatalogItem {
	return entity.CatalogItem{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		URL:         p.URL,
	}
}

func (p AgentProfilePayload) ToEntity() entity.AgentProfile {
	return entity.AgentProfile{
		Name:           p.Name,
		RoleTitle:      p.RoleTitle,
		WelcomeMessage: p.WelcomeMessage,
		Personality:    p.Personality,
	}
}

func (r ContextRequest) Documents() []entity.BrandDocument {
	docs := make([]entity.BrandDocument, 0, len(r.BrandDocuments))
	for _, p := range r.BrandDocuments {
		docs = append(docs, p.ToEntity())
	}
	return docs
}

func (r ContextRequest) Items() []entity.CatalogItem {
	items := make([]entity.CatalogItem, 0, len(r.CatalogItems))
	for _, p := range r.CatalogItems {
		items = append(items, p.ToEntity())
	}
	return items
}
