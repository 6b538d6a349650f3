package database

import (
	"fmt"
	"log"

	"quiz_master_backend/internal/config"
	"quiz_master_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := EnsureAdmin(db, &cfg.Admin); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Score{},
	)
}

// EnsureAdmin guarantees the well-known administrator account exists, so
// there is at least one admin after every startup.
func EnsureAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:    cfg.Email,
		FullName: cfg.FullName,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Bootstrap admin account created")
	return nil
}
