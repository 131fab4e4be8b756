package main

import (
	"context"
	"log"

	"ai-beautyadvisor-be/internal/bootstrap"
	"ai-beautyadvisor-be/internal/config"
	"ai-beautyadvisor-be/internal/server"
	"ai-beautyadvisor-be/internal/tracer"
	"ai-beautyadvisor-be/pkg/knowledge"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load Reference Datasets
	// The engine is non-functional without them, so a parse failure aborts.
	store, err := knowledge.Load()
	if err != nil {
		log.Panicf("Unable to load knowledge datasets: %v", err)
	}
	log.Printf("Knowledge store loaded: %d regional ingredients, %d cosmetic actives, %d concerns, %d hair types",
		len(store.Regional), len(store.Cosmetic), len(store.Concerns), len(store.HairTypes))

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(store, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
