package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server"
	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/server/config"
)

func main() {
	// A missing .env is fine, real deployments use environment variables.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
