package entity

import (
	"time"

	"github.com/google/uuid"
)

// Physician represents a doctor who attends appointments
type Physician struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DocumentNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"document_number"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty      string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Physician) TableName() string {
	return "physicians"
}
