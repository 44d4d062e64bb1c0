package main

import (
	"fmt"
	"strings"

	"edumart/internal/entity"
	"edumart/internal/model"
	"edumart/pkg/config"
	"edumart/pkg/database"
	"edumart/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Provisions the admin account from ADMIN_NAME, ADMIN_EMAIL and
// ADMIN_PASSWORD. Admins cannot self-register through the API, so this
// is the only way an admin account comes into existence.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		panic("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment variables")
	}
	if !strings.HasSuffix(strings.ToLower(cfg.AdminEmail), entity.AdminDomain) {
		panic(fmt.Sprintf("ADMIN_EMAIL must use the %s domain", entity.AdminDomain))
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		log.Error("Failed to run migrations: %v", err)
		panic(err)
	}

	if err := seedAdmin(db, cfg, log); err != nil {
		log.Error("Failed to seed admin: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedAdmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing model.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Info("Admin %s already exists, skipping", email)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.UserModel{
		Name:     cfg.AdminName,
		Email:    email,
		Password: string(hashedPassword),
		Role:     string(entity.RoleAdmin),
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info("Created admin: %s (%s)", admin.Name, admin.Email)
	return nil
}
