package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient represents a person who books appointments
type Patient struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName          string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DocumentNumber    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"document_number"`
	DateOfBirth       time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender            string    `gorm:"type:char(1);not null" json:"gender"`
	PhoneNumber       string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address           string    `gorm:"type:text" json:"address,omitempty"`
	InsuranceProvider string    `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
