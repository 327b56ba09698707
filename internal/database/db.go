package database

import (
	"log"

	"github.com/wadhefa/wadhefa-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: this creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.JobPosting{},
		&models.Profile{},
		&models.Application{},
		&models.Category{},
		&models.ExperienceLevel{},
		&models.NewsItem{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
