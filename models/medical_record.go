package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecord is an append-only visit log. It links to a Registration
// only by the human-entered school ID number; unmatched records are kept.
type MedicalRecord struct {
	ID             string `json:"id" gorm:"primaryKey;size:36"`
	SchoolIDNumber string `json:"schoolIdNumber" gorm:"size:20;index;not null"`
	Fullname       string `json:"fullname" gorm:"size:120;not null"`
	VisitDate      string `json:"visitDate" gorm:"size:10;not null"` // YYYY-MM-DD
	VisitType      string `json:"visitType" gorm:"size:60;not null"` // consultation/first-aid/...
	Diagnosis      string `json:"diagnosis" gorm:"type:text"`

	BloodPressure   string `json:"bloodPressure" gorm:"size:20"`
	Temperature     string `json:"temperature" gorm:"size:10"`
	PulseRate       string `json:"pulseRate" gorm:"size:10"`
	RespiratoryRate string `json:"respiratoryRate" gorm:"size:10"`

	Treatment              string `json:"treatment" gorm:"type:text"`
	Remarks                string `json:"remarks" gorm:"type:text"`
	AttendingPersonnelName string `json:"attendingPersonnelName" gorm:"size:120;not null"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
