package main

import (
	"context"
	"log"

	"ai-support-be/internal/bootstrap"
	"ai-support-be/internal/config"
	"ai-support-be/internal/server"
	"ai-support-be/internal/tracer"
	"ai-support-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background consumers share the in-process event bus with the
	// request path; both must be running before traffic arrives.
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Failed to start embedding consumer: %v", err)
	}
	if err := container.ActionLoggerService.Consume(context.Background()); err != nil {
		log.Fatalf("Failed to start action logger: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
