package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var server srv

func main() {
	// Missing .env is fine, configuration falls back to the environment.
	godotenv.Load()

	server.loadApp()
	if err := server.app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
