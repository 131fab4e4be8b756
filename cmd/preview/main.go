// Debug tool: assemble the context and prompt for an ad-hoc utterance
// without starting the server.
//
//	go run ./cmd/preview -m "karité pour peau sèche"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"ai-beautyadvisor-be/internal/constant"
	"ai-beautyadvisor-be/internal/entity"
	"ai-beautyadvisor-be/pkg/knowledge"
	"ai-beautyadvisor-be/pkg/rag"
)

func main() {
	message := flag.String("m", "karité pour peau sèche", "utterance to test")
	firstMessage := flag.Bool("first", true, "treat as first message of the conversation")
	flag.Parse()

	store := knowledge.MustLoad()
	engine := rag.NewEngine(store, log.New(os.Stderr, "[RAG] ", log.LstdFlags))

	relevantContext := engine.GetRelevantContext(*message, nil, nil)

	color.Cyan("=== CONTEXTE ASSEMBLÉ ===")
	for i, section := range strings.Split(relevantContext, constant.SectionSeparator) {
		color.Yellow("--- section %d ---", i+1)
		fmt.Println(section)
	}

	agent := entity.AgentProfile{
		Name:           "Awa",
		RoleTitle:      "conseillère beauté experte",
		WelcomeMessage: "Bonjour, je suis Awa, votre conseillère beauté. Comment puis-je vous aider ?",
		Personality:    "chaleureuse et pédagogue",
	}
	prompt := engine.BuildExpertPrompt(agent, relevantContext, "Boutique Démo", *firstMessage)

	color.Cyan("=== PROMPT SYSTÈME ===")
	fmt.Println(prompt)
}
