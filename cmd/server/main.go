package main

import (
	"log"

	"github.com/joho/godotenv"

	"ipcr/internal/app/server"
	"ipcr/internal/platform/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
