package repository

import (
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByPhysicianAndDate(db *gorm.DB, physicianID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	FindUpcoming(db *gorm.DB, from time.Time, until time.Time) ([]entity.Appointment, error)
	// FindActiveByPhysicianAndRange returns appointments in active statuses
	// whose occupied interval could intersect [from, until).
	FindActiveByPhysicianAndRange(db *gorm.DB, physicianID uuid.UUID, from time.Time, until time.Time) ([]entity.Appointment, error)
	// UpdateStatus atomically moves the appointment to the target status only
	// if its current status is one of from. Returns affected rows: 0 means the
	// guard did not hold. A nil observation leaves the stored note untouched.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, observation *string) (int64, error)
}
