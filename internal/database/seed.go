package database

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/mactanair/airline-backend/internal/models"
)

// SeedDatabase creates the default superuser when no account exists yet.
// Credentials come from SUPERUSER_USERNAME / SUPERUSER_PASSWORD; the seed is
// skipped when either is unset.
func SeedDatabase(db *gorm.DB) {
	username := os.Getenv("SUPERUSER_USERNAME")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	user := models.User{
		Username:    username,
		Email:       os.Getenv("SUPERUSER_EMAIL"),
		Password:    password,
		IsStaff:     true,
		IsActive:    true,
		IsSuperuser: true,
	}
	if err := user.HashPassword(); err != nil {
		log.Printf("warning: failed to hash superuser password: %v", err)
		return
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("warning: failed to create superuser: %v", err)
		return
	}
	log.Println("Default superuser seeded")
}
