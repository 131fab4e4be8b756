package prompt

import (
	"fmt"
	"strings"

	"ai-beautyadvisor-be/internal/constant"
	"ai-beautyadvisor-be/internal/entity"
)

// Builder renders the full system prompt for one turn: persona, retrieved
// context, static expertise, behavior rules and the response flow guide.
type Builder struct {
	agent          entity.AgentProfile
	context        string
	tenantName     string
	isFirstMessage bool
}

// NewBuilder creates a prompt builder for one turn
func NewBuilder(agent entity.AgentProfile, context, tenantName string, isFirstMessage bool) *Builder {
	return &Builder{
		agent:          agent,
		context:        context,
		tenantName:     tenantName,
		isFirstMessage: isFirstMessage,
	}
}

// Build assembles the prompt. The retrieved context is injected verbatim.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeIdentity(&prompt)
	b.writeContext(&prompt)
	b.writeExpertise(&prompt)
	b.writeRules(&prompt)
	b.writeFlow(&prompt)
	b.writeOpening(&prompt)

	return prompt.String()
}

func (b *Builder) writeIdentity(prompt *strings.Builder) {
	name := b.agent.Name
	if name == "" {
		name = "Awa"
	}
	role := b.agent.RoleTitle
	if role == "" {
		role = "conseillère beauté experte"
	}

	if b.tenantName != "" {
		fmt.Fprintf(prompt, "Tu es %s, %s de la boutique %s.\n", name, role, b.tenantName)
	} else {
		fmt.Fprintf(prompt, "Tu es %s, %s.\n", name, role)
	}
	if b.agent.Personality != "" {
		fmt.Fprintf(prompt, "Personnalité : %s.\n", b.agent.Personality)
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("INFORMATIONS DISPONIBLES POUR CETTE DEMANDE :\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeExpertise(prompt *strings.Builder) {
	prompt.WriteString(constant.ExpertiseBlock)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeRules(prompt *strings.Builder) {
	prompt.WriteString(constant.BehaviorRules)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeFlow(prompt *strings.Builder) {
	prompt.WriteString(constant.ResponseFlow)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeOpening(prompt *strings.Builder) {
	if b.isFirstMessage {
		welcome := b.agent.WelcomeMessage
		if welcome == "" {
			welcome = "Bonjour et bienvenue ! Comment puis-je vous aider aujourd'hui ?"
		}
		prompt.WriteString("PREMIER MESSAGE : commence obligatoirement ta réponse par ce message d'accueil, puis enchaîne naturellement :\n")
		fmt.Fprintf(prompt, "\"%s\"", welcome)
		return
	}
	prompt.WriteString(constant.FollowUpInstruction)
}
