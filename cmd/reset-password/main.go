package main

import (
	"flag"
	"fmt"
	"log"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("user", "master", "username to reset")
	password := flag.String("password", "master123", "new password")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Reset
	if err := resetPassword(db, *username, *password); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *username)
}

// resetPassword hashes the new password and rotates the token version.
// Token versions are opaque UUID strings compared for equality, so a fresh
// one invalidates every open session for the user.
func resetPassword(db *gorm.DB, username, password string) error {
	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return fmt.Errorf("user %s not found in database: %w", username, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": uuid.New().String(),
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update password in DB: %w", err)
	}
	return nil
}
