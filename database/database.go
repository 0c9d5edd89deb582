package database

import (
	"fmt"
	"log"
	"os"

	"restriction-app/internal/domain/billing"
	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/memberships"
	"restriction-app/internal/domain/menus"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// UUID generation for content rows
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// identity
		&users.User{},
		&users.UserRole{},
		&users.VerificationToken{},

		// restricted resources
		&content.Page{},
		&content.PageBlock{},
		&menus.Menu{},
		&menus.MenuItem{},

		// configuration
		&settings.Settings{},

		// memberships
		&memberships.RolePlan{},
		&billing.Payment{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
