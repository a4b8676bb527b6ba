package repository

import (
	"errors"
	"time"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPhysicianAndDate(db *gorm.DB, physicianID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	dayStart := date.Truncate(24 * time.Hour)
	var appointments []entity.Appointment
	err := db.Where("physician_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
		physicianID, dayStart, dayStart.Add(24*time.Hour)).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	dayStart := date.Truncate(24 * time.Hour)
	var appointments []entity.Appointment
	err := db.Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayStart.Add(24*time.Hour)).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(db *gorm.DB, from time.Time, until time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("scheduled_at >= ? AND scheduled_at < ? AND status IN ?",
		from, until, entity.ActiveStatuses).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByPhysicianAndRange(db *gorm.DB, physicianID uuid.UUID, from time.Time, until time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("physician_id = ? AND status IN ? AND scheduled_at >= ? AND scheduled_at < ?",
		physicianID, entity.ActiveStatuses, from, until).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus guards the lifecycle transition in a single UPDATE keyed on
// the permitted source statuses, so concurrent transitions on the same
// appointment cannot both apply. 0 affected rows means the guard failed.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, observation *string) (int64, error) {
	updates := map[string]interface{}{"status": to}
	if observation != nil {
		updates["observation"] = *observation
	}
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}
