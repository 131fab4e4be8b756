package service

import (
	"context"
	"strings"

	"ai-beautyadvisor-be/internal/constant"
	"ai-beautyadvisor-be/internal/dto"
	"ai-beautyadvisor-be/internal/pkg/logger"
	"ai-beautyadvisor-be/pkg/rag"
)

// IAdvisorService defines the advisor service interface
type IAdvisorService interface {
	GetRelevantContext(ctx context.Context, request *dto.ContextRequest) (*dto.ContextResponse, error)
	BuildExpertPrompt(ctx context.Context, request *dto.PromptRequest) (*dto.PromptResponse, error)
}

type advisorService struct {
	engine *rag.Engine
	logger logger.ILogger
}

// NewAdvisorService creates the advisor service over the retrieval engine
func NewAdvisorService(engine *rag.Engine, logger logger.ILogger) IAdvisorService {
	return &advisorService{
		engine: engine,
		logger: logger,
	}
}

func (s *advisorService) GetRelevantContext(ctx context.Context, request *dto.ContextRequest) (*dto.ContextResponse, error) {
	relevantContext := s.engine.GetRelevantContext(request.Message, request.Items(), request.Documents())

	sections := 0
	if relevantContext != constant.FallbackContext {
		sections = strings.Count(relevantContext, constant.SectionSeparator) + 1
	}
	s.logger.Info("advisor", "Context assembled", map[string]interface{}{
		"documents": len(request.BrandDocuments),
		"items":     len(request.CatalogItems),
		"sections":  sections,
	})

	return &dto.ContextResponse{Context: relevantContext}, nil
}

func (s *advisorService) BuildExpertPrompt(ctx context.Context, request *dto.PromptRequest) (*dto.PromptResponse, error) {
	isFirst := request.IsFirstMessage == nil || *request.IsFirstMessage

	prompt := s.engine.BuildExpertPrompt(request.Agent.ToEntity(), request.RelevantContext, request.TenantName, isFirst)

	s.logger.Info("advisor", "Prompt built", map[string]interface{}{
		"tenant":           request.TenantName,
		"is_first_message": isFirst,
		"prompt_length":    len(prompt),
	})

	return &dto.PromptResponse{Prompt: prompt}, nil
}
