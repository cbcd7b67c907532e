package main

import (
	"log"

	"weddinghub_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
