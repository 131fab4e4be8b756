package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"ai-beautyadvisor-be/internal/config"
	"ai-beautyadvisor-be/internal/controller"
	"ai-beautyadvisor-be/internal/pkg/logger"
	"ai-beautyadvisor-be/internal/service"
	"ai-beautyadvisor-be/pkg/knowledge"
	"ai-beautyadvisor-be/pkg/rag"
)

type Container struct {
	// Controllers
	AdvisorController controller.IAdvisorController

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(store *knowledge.Store, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Retrieval Engine
	engine := rag.NewEngine(store, initRagLogger())

	// 3. Services
	advisorService := service.NewAdvisorService(engine, sysLogger)

	return &Container{
		AdvisorController: controller.NewAdvisorController(advisorService),
		Logger:            sysLogger,
	}
}

// initRagLogger writes retrieval debug lines to a dedicated file so the main
// log stays clean.
func initRagLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
