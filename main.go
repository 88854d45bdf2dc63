package main

import (
	"log"
	"os"

	"github.com/MadhavMendiratta/vit/internals/initializers"
	"github.com/MadhavMendiratta/vit/internals/routes"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional: in production the variables are injected directly
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}
}

func main() {
	db, err := initializers.ConnectToDb()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	initializers.StartChallengeCleanup(db)

	r := routes.SetupRouter(db)
	if err := r.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
