package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentDuration is the fixed length of every appointment. It is not
// stored on the record; the occupied interval is derived from ScheduledAt.
const AppointmentDuration = 30 * time.Minute

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusProgramada AppointmentStatus = "PROGRAMADA"
	StatusConfirmada AppointmentStatus = "CONFIRMADA"
	StatusEnCurso    AppointmentStatus = "EN_CURSO"
	StatusCompletada AppointmentStatus = "COMPLETADA"
	StatusCancelada  AppointmentStatus = "CANCELADA"
	StatusNoAsistio  AppointmentStatus = "NO_ASISTIO"
)

// ActiveStatuses are the statuses that occupy the physician's calendar and
// count toward conflict detection. Terminal statuses never block new bookings.
var ActiveStatuses = []AppointmentStatus{StatusProgramada, StatusConfirmada, StatusEnCurso}

// AppointmentEvent is a requested lifecycle transition
type AppointmentEvent string

const (
	EventConfirm  AppointmentEvent = "confirm"
	EventStart    AppointmentEvent = "start"
	EventComplete AppointmentEvent = "complete"
	EventCancel   AppointmentEvent = "cancel"
	EventNoShow   AppointmentEvent = "mark_no_show"
)

// transition is one row of the lifecycle state machine
type transition struct {
	From []AppointmentStatus
	To   AppointmentStatus
}

// transitions is the single source of truth for which lifecycle moves are
// legal. Every status change goes through this table; call sites never
// compare statuses themselves.
var transitions = map[AppointmentEvent]transition{
	EventConfirm:  {From: []AppointmentStatus{StatusProgramada}, To: StatusConfirmada},
	EventStart:    {From: []AppointmentStatus{StatusConfirmada}, To: StatusEnCurso},
	EventComplete: {From: []AppointmentStatus{StatusConfirmada, StatusEnCurso}, To: StatusCompletada},
	EventCancel:   {From: []AppointmentStatus{StatusProgramada, StatusConfirmada}, To: StatusCancelada},
	EventNoShow:   {From: []AppointmentStatus{StatusProgramada, StatusConfirmada}, To: StatusNoAsistio},
}

// IllegalTransitionError reports a lifecycle event attempted from a status
// that does not permit it.
type IllegalTransitionError struct {
	AppointmentID uuid.UUID
	Current       AppointmentStatus
	Event         AppointmentEvent
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("appointment %s: cannot %s from status %s", e.AppointmentID, e.Event, e.Current)
}

// TransitionTarget returns the destination status for an event and the set
// of statuses the event may be applied from.
func TransitionTarget(event AppointmentEvent) (to AppointmentStatus, from []AppointmentStatus, ok bool) {
	t, ok := transitions[event]
	if !ok {
		return "", nil, false
	}
	return t.To, t.From, true
}

// Appointment binds a patient, a physician and a room to a 30-minute slot
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PhysicianID uuid.UUID         `gorm:"type:uuid;not null;index" json:"physician_id"`
	RoomID      uuid.UUID         `gorm:"type:uuid;not null" json:"room_id"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Reason      string            `gorm:"type:varchar(255);not null" json:"reason"`
	Observation string            `gorm:"type:varchar(500)" json:"observation,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'PROGRAMADA';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndsAt returns the exclusive end of the occupied interval
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(AppointmentDuration)
}

// IsActive reports whether the appointment occupies the physician's calendar
func (a *Appointment) IsActive() bool {
	for _, s := range ActiveStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case StatusCompletada, StatusCancelada, StatusNoAsistio:
		return true
	}
	return false
}

// Apply moves the appointment through the state machine. It returns an
// IllegalTransitionError and leaves the appointment untouched when the
// current status does not permit the event.
func (a *Appointment) Apply(event AppointmentEvent) error {
	t, ok := transitions[event]
	if !ok {
		return &IllegalTransitionError{AppointmentID: a.ID, Current: a.Status, Event: event}
	}
	for _, from := range t.From {
		if a.Status == from {
			a.Status = t.To
			return nil
		}
	}
	return &IllegalTransitionError{AppointmentID: a.ID, Current: a.Status, Event: event}
}
