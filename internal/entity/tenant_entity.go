package entity

import "github.com/google/uuid"

// BrandDocument is a tenant-authored knowledge document. Supplied per call
// by the caller, never persisted or mutated by the retrieval engine.
type BrandDocument struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	// Active defaults to true when the caller leaves it nil.
	Active *bool `json:"active,omitempty"`
}

// IsActive resolves the optional active flag (absent means active).
func (d BrandDocument) IsActive() bool {
	return d.Active == nil || *d.Active
}

// CatalogItem is one sellable product of the tenant catalog.
type CatalogItem struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	URL         string    `json:"url"`
}

// AgentProfile configures the persona of the advisor for one tenant.
type AgentProfile struct {
	Name           string `json:"name"`
	RoleTitle      string `json:"role_title"`
	WelcomeMessage string `json:"welcome_message"`
	Personality    string `json:"personality"`
}
