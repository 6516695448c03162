// Command seed creates the initial admin user. Safe to run repeatedly: an
// existing user with the same email is left untouched.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"amc-backend/internal/auth"
	"amc-backend/internal/config"
	"amc-backend/internal/db"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	cfg := config.Load()
	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repositories.NewUserRepository(pool)

	if existing, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists (id %d), nothing to do", existing.Email, existing.ID)
		return
	} else if !repositories.IsNotFound(err) {
		log.Fatalf("Failed to check existing user: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         "admin",
		Status:       "active",
	}

	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s (id %d)", user.Email, user.ID)
}
