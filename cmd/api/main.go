package main

import (
	"log"

	_ "printdesk/docs"
	"printdesk/internal/adapter/http/routes"
	"printdesk/internal/infrastructure/config"
	"printdesk/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Printdesk API
// @version         1.0
// @description     Print shop pricing, production workflow, quotes, invoices, payments and bundles.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("[server] stopped", zap.Error(err))
	}
}
