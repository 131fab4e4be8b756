package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-beautyadvisor-be/internal/dto"
	"ai-beautyadvisor-be/internal/service"
	"ai-beautyadvisor-be/pkg/knowledge"
	"ai-beautyadvisor-be/pkg/rag"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := knowledge.Load()
	require.NoError(t, err)

	engine := rag.NewEngine(store, log.New(io.Discard, "", 0))
	advisorService := service.NewAdvisorService(engine, noopLogger{})

	app := fiber.New()
	NewAdvisorController(advisorService).RegisterRoutes(app.Group("/api"))
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func TestGetContextEndpoint(t *testing.T) {
	app := testApp(t)

	status, env := postJSON(t, app, "/api/advisor/context", dto.ContextRequest{
		Message: "karité pour peau sèche",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	var response dto.ContextResponse
	require.NoError(t, json.Unmarshal(env.Data, &response))
	assert.Contains(t, response.Context, "Karité")
}

func TestGetContextRequiresMessage(t *testing.T) {
	app := testApp(t)

	status, env := postJSON(t, app, "/api/advisor/context", dto.ContextRequest{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestBuildPromptEndpoint(t *testing.T) {
	app := testApp(t)

	status, env := postJSON(t, app, "/api/advisor/prompt", dto.PromptRequest{
		Agent:           dto.AgentProfilePayload{Name: "Awa", WelcomeMessage: "Bienvenue !"},
		RelevantContext: "CONTEXTE DE TEST",
		TenantName:      "Karité & Co",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, env.Success)

	var response dto.PromptResponse
	require.NoError(t, json.Unmarshal(env.Data, &response))
	assert.Contains(t, response.Prompt, "CONTEXTE DE TEST")
	assert.Contains(t, response.Prompt, "Bienvenue !")
}
