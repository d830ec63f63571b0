package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem quantity never goes below zero; the reduce endpoint is the
// only writer that decrements it.
type InventoryItem struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	Name           string    `json:"name" gorm:"size:120;not null"`
	Category       string    `json:"category" gorm:"size:60;index;not null"`
	Quantity       int       `json:"quantity" gorm:"not null;default:0"`
	Unit           string    `json:"unit" gorm:"size:20"`
	ExpirationDate string    `json:"expirationDate" gorm:"size:10;not null"` // YYYY-MM-DD
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
