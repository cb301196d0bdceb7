package database

import (
	"log"

	"coastwatch/config"
	"coastwatch/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all relational models. The
// document half lives in MongoDB and has no migration step.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Citizen{},
		&models.Employee{},
		&models.Volunteer{},
		&models.NGO{},
		&models.Upload{},
		&models.SocialPost{},
	)
}

// SeedEmployee ensures at least one staff account exists so moderation
// routes are reachable on a fresh database.
func SeedEmployee(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		return
	}
	var count int64
	if err := db.Model(&models.Employee{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[database] seed employee lookup failed: %v", err)
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[database] seed employee hash failed: %v", err)
		return
	}
	if err := db.Create(&models.Employee{Email: email, PasswordHash: string(hash)}).Error; err != nil {
		log.Printf("[database] seed employee failed: %v", err)
	}
}
