package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationStatusActive   = "active"
	RegistrationStatusInactive = "inactive"
)

var RegistrationStatuses = map[string]bool{
	RegistrationStatusActive:   true,
	RegistrationStatusInactive: true,
}

type Registration struct {
	ID               string `json:"id" gorm:"primaryKey;size:36"`
	Fullname         string `json:"fullname" gorm:"size:120;not null"`
	StudentIDLrn     string `json:"studentIdLrn" gorm:"size:20;not null"`
	SchoolIDNumber   string `json:"schoolIdNumber" gorm:"size:20;index;not null"`
	DepartmentCourse string `json:"departmentCourse" gorm:"size:120;not null"`
	YearSection      string `json:"yearSection" gorm:"size:40;not null"`
	ContactNumber    string `json:"contactNumber" gorm:"size:15;not null"`
	Address          string `json:"address" gorm:"type:text"`
	BirthDate        string `json:"birthDate" gorm:"size:10"` // YYYY-MM-DD or empty
	Gender           string `json:"gender" gorm:"size:20"`

	// Health history, free text as entered on the form.
	Allergies     string `json:"allergies" gorm:"type:text"`
	Medications   string `json:"medications" gorm:"type:text"`
	PastIllnesses string `json:"pastIllnesses" gorm:"type:text"`

	EmergencyContactName   string `json:"emergencyContactName" gorm:"size:120"`
	EmergencyContactNumber string `json:"emergencyContactNumber" gorm:"size:15"`

	Status    string    `json:"status" gorm:"size:20;index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
