package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const bcryptCost = 10

// Seeds the admin identity. Registration never produces an admin; the only
// way to get one is this binary, driven by ADMIN_USERNAME/ADMIN_PASSWORD.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByUsername(ctx, cfg.AdminUsername)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	if existing != nil {
		existing.PasswordHash = string(hashedPassword)
		existing.Roles = model.RoleAdmin
		if err := userRepo.Save(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Admin user %q updated", cfg.AdminUsername)
		return
	}

	admin := &model.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashedPassword),
		Roles:        model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user %q created (id=%d)", cfg.AdminUsername, admin.ID)
}
