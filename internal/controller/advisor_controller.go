package controller

import (
	"ai-beautyadvisor-be/internal/dto"
	"ai-beautyadvisor-be/internal/pkg/serverutils"
	"ai-beautyadvisor-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router)
	GetContext(ctx *fiber.Ctx) error
	BuildPrompt(ctx *fiber.Ctx) error
}

type advisorController struct {
	service  service.IAdvisorService
	validate *validator.Validate
}

func NewAdvisorController(service service.IAdvisorService) IAdvisorController {
	return &advisorController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router) {
	advisor := r.Group("/advisor")
	advisor.Post("/context", c.GetContext)
	advisor.Post("/prompt", c.BuildPrompt)
}

// GetContext assembles the retrieved-context block for one utterance. The
// caller supplies the tenant catalog and brand documents in the body; this
// endpoint is stateless.
func (c *advisorController) GetContext(ctx *fiber.Ctx) error {
	var request dto.ContextRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	response, err := c.service.GetRelevantContext(ctx.Context(), &request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(response))
}

// BuildPrompt renders the full system prompt from an already-assembled
// context block and the agent profile.
func (c *advisorController) BuildPrompt(ctx *fiber.Ctx) error {
	var request dto.PromptRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	response, err := c.service.BuildExpertPrompt(ctx.Context(), &request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(response))
}
