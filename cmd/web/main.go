package main

import (
	"log"

	"jobportal_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Optional in production; local development keeps secrets in .env
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	app.Run()
}
