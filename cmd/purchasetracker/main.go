package main

import (
	"log"

	"github.com/avc/purchase-ledger/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен, переменные окружения процесса имеют приоритет
	_ = godotenv.Load()

	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
