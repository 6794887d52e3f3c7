// Command seed fills a development database with fake forum content.
package main

import (
	"flag"
	"log"

	"javaconnect/internal/config"
	"javaconnect/internal/database"
	"javaconnect/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	questions := flag.Int("questions", 3, "questions per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, *users, *questions); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users with %d questions each", *users, *questions)
}
