package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/config"
	"github.com/root-19/UCC-CLINIC-SYSTEM-sub000/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.RequestForm{},
		&models.Registration{},
		&models.MedicalRecord{},
		&models.InventoryItem{},
		&models.Announcement{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
