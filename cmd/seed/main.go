// Command seed resets the influencer directory and repopulates it with
// generated profiles.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gongguscout/gonggu-scout/config"
	"github.com/gongguscout/gonggu-scout/models"
	"github.com/gongguscout/gonggu-scout/repository"
	"github.com/gongguscout/gonggu-scout/seeder"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting seed run...")

	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	profileRepo := repository.NewInfluencerProfileRepository(db)

	seed := cfg.Seeder.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := seeder.NewGenerator(seed)

	count := cfg.Seeder.ProfileCount
	if count <= 0 {
		count = seeder.DefaultProfileCount
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seeder.Run(ctx, profileRepo, gen, count); err != nil {
		log.Fatalf("Seed run failed: %v", err)
	}

	log.Printf("Seed run completed: %d profiles", count)
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.InfluencerProfile{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
