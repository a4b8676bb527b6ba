package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"
	"hospital-appointment-api/internal/domain/scheduling"
	"hospital-appointment-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPhysicianNotFound   = errors.New("physician not found")
	ErrPhysicianInactive   = errors.New("physician is not active")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInvalidDateTime     = errors.New("invalid date-time format, use RFC 3339")
)

// conflictFetchPadding widens the appointment fetch around the candidate so
// the resolver sees every interval that could possibly intersect it.
const conflictFetchPadding = 24 * time.Hour

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Start(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByPhysicianAndDate(ctx context.Context, physicianID uuid.UUID, date time.Time) (*dto.AppointmentListResponse, error)
	ListByDate(ctx context.Context, date time.Time) (*dto.AppointmentListResponse, error)
	ListUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	windowRepo      repository.AvailabilityWindowRepository
	patientRepo     repository.PatientRepository
	physicianRepo   repository.PhysicianRepository
	roomRepo        repository.RoomRepository
	locker          service.BookingLocker
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	windowRepo repository.AvailabilityWindowRepository,
	patientRepo repository.PatientRepository,
	physicianRepo repository.PhysicianRepository,
	roomRepo repository.RoomRepository,
	locker service.BookingLocker,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		windowRepo:      windowRepo,
		patientRepo:     patientRepo,
		physicianRepo:   physicianRepo,
		roomRepo:        roomRepo,
		locker:          locker,
		now:             time.Now,
	}
}

// Book validates the foreign references, then runs the conflict check and
// the insert as one unit per physician: a distributed lock keeps concurrent
// bookings for the same physician out of the critical section, and the
// database exclusion constraint backstops the check against any writer that
// slipped past the lock.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	scheduledAt = scheduledAt.Truncate(time.Minute)

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	physician, err := u.physicianRepo.FindByID(db, req.PhysicianID)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", req.PhysicianID, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}
	if physician.IsActive != nil && !*physician.IsActive {
		return nil, ErrPhysicianInactive
	}

	room, err := u.roomRepo.FindByID(db, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", req.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	candidate := scheduling.Candidate{
		PhysicianID: req.PhysicianID,
		StartsAt:    scheduledAt,
	}

	var created *entity.Appointment

	err = u.locker.WithPhysicianLock(ctx, req.PhysicianID, func(lockCtx context.Context) error {
		tx := u.db.WithContext(lockCtx).Begin()
		defer tx.Rollback()

		windows, err := u.windowRepo.FindByPhysicianAndWeekday(tx, req.PhysicianID, entity.ISOWeekday(scheduledAt))
		if err != nil {
			u.log.Warnf("Failed to load availability windows for physician %s: %+v", req.PhysicianID, err)
			return err
		}

		existing, err := u.appointmentRepo.FindActiveByPhysicianAndRange(tx, req.PhysicianID,
			scheduledAt.Add(-conflictFetchPadding), scheduledAt.Add(conflictFetchPadding))
		if err != nil {
			u.log.Warnf("Failed to load active appointments for physician %s: %+v", req.PhysicianID, err)
			return err
		}

		if err := scheduling.CheckBookable(u.now(), candidate, windows, existing); err != nil {
			return err
		}

		appointment := &entity.Appointment{
			PatientID:   req.PatientID,
			PhysicianID: req.PhysicianID,
			RoomID:      req.RoomID,
			ScheduledAt: scheduledAt,
			Reason:      req.Reason,
			Status:      entity.StatusProgramada,
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			return err
		}

		created = appointment
		return nil
	})

	if err != nil {
		if isExclusionViolation(err) {
			// A concurrent writer won the slot between our check and the
			// commit; the constraint is the final arbiter.
			return nil, &scheduling.DoubleBookingError{
				PhysicianID:   req.PhysicianID,
				ConflictStart: scheduledAt,
				ConflictEnd:   scheduledAt.Add(entity.AppointmentDuration),
			}
		}
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, physician=%s, at=%s", created.ID, created.PhysicianID, created.ScheduledAt)
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.EventConfirm, nil)
}

func (u *appointmentUsecase) Start(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.EventStart, nil)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.EventCancel, &observation)
}

func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.EventComplete, &observation)
}

func (u *appointmentUsecase) MarkNoShow(ctx context.Context, id uuid.UUID, observation string) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.EventNoShow, &observation)
}

// transition applies a lifecycle event through a single guarded UPDATE.
// When the compare-and-set touches no row the appointment is re-read so the
// reported error names the status that actually blocked the move.
func (u *appointmentUsecase) transition(ctx context.Context, id uuid.UUID, event entity.AppointmentEvent, observation *string) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	next := *appointment
	if err := next.Apply(event); err != nil {
		return nil, err
	}

	// No-show is only meaningful once the appointment day has arrived.
	if event == entity.EventNoShow && !noShowAllowed(appointment.ScheduledAt, u.now()) {
		return nil, &entity.IllegalTransitionError{AppointmentID: id, Current: appointment.Status, Event: event}
	}

	to, from, _ := entity.TransitionTarget(event)

	affected, err := u.appointmentRepo.UpdateStatus(db, id, from, to, observation)
	if err != nil {
		u.log.Warnf("Failed to apply %s on appointment %s: %+v", event, id, err)
		return nil, err
	}
	if affected == 0 {
		fresh, err := u.appointmentRepo.FindByID(db, id)
		if err != nil {
			return nil, err
		}
		current := appointment.Status
		if fresh != nil {
			current = fresh.Status
		}
		return nil, &entity.IllegalTransitionError{AppointmentID: id, Current: current, Event: event}
	}

	updated, err := u.appointmentRepo.FindByID(db, id)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload appointment %s after %s, responding from the applied transition: %+v", id, event, err)
		if observation != nil {
			next.Observation = *observation
		}
		return converter.AppointmentToResponse(&next), nil
	}

	u.log.Infof("Appointment %s: %s -> %s", id, event, updated.Status)
	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListByPhysicianAndDate(ctx context.Context, physicianID uuid.UUID, date time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPhysicianAndDate(u.db.WithContext(ctx), physicianID, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for physician %s: %+v", physicianID, err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func (u *appointmentUsecase) ListByDate(ctx context.Context, date time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to list appointments by date: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

// ListUpcoming returns active appointments within the next seven days
func (u *appointmentUsecase) ListUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error) {
	from := u.now()
	appointments, err := u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), from, from.Add(7*24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}
	return listResponse(appointments), nil
}

func listResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// noShowAllowed reports whether a no-show may be recorded: only from the
// appointment's calendar day onward, never for a future day.
func noShowAllowed(scheduledAt, now time.Time) bool {
	return !startOfDay(scheduledAt).After(startOfDay(now))
}

// isExclusionViolation checks for a PostgreSQL exclusion constraint
// violation (code 23P01), raised by the no-overlap constraint on active
// appointments per physician.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
