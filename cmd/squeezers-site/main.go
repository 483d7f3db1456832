package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/klabast/wb-services/squeezers-site/internal/commands"
)

//go:embed static/admin.html
var adminHTML []byte

func main() {
	// Optional .env with NEWS_FILE, NEWS_ADMIN_HOST, NEWS_ADMIN_PORT, AUTH_FILE
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Failed to load .env: %v", err)
	}

	if err := commands.NewApp(adminHTML).Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
