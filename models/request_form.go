package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request-form statuses. Any value may overwrite any other; only
// membership in this set is enforced.
const (
	RequestStatusPending    = "pending"
	RequestStatusApproved   = "approved"
	RequestStatusRejected   = "rejected"
	RequestStatusProcessing = "processing"
)

var RequestStatuses = map[string]bool{
	RequestStatusPending:    true,
	RequestStatusApproved:   true,
	RequestStatusRejected:   true,
	RequestStatusProcessing: true,
}

type RequestForm struct {
	ID               string    `json:"id" gorm:"primaryKey;size:36"`
	Fullname         string    `json:"fullname" gorm:"size:120;not null"`
	YearSection      string    `json:"yearSection" gorm:"size:40;not null"`
	SchoolIDNumber   string    `json:"schoolIdNumber" gorm:"size:20;index;not null"`
	DepartmentCourse string    `json:"departmentCourse" gorm:"size:120;not null"`
	Assessment       string    `json:"assessment" gorm:"type:text;not null"` // free text: form/medication/reason
	ReferredTo       string    `json:"referredTo" gorm:"size:120"`
	Status           string    `json:"status" gorm:"size:20;index;not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (r *RequestForm) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
