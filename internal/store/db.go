// internal/store/db.go
package store

import (
	"fmt"
	"log"

	"merowoda-service/internal/config"
	"merowoda-service/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func InitDB(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Asia/Kathmandu",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBSSLMode,
	)

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to DB: %v", err)
	}

	// Auto-migrate (safe in dev; use migrations in prod)
	err = db.AutoMigrate(
		&models.User{},
		&models.NoticePreference{},
		&models.Donation{},
		&models.DonationList{},
		&models.Notice{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to migrate: %v", err)
	}

	log.Println("✅ Mero Woda DB connected & migrated")
}

func GetDB() *gorm.DB {
	return db
}
