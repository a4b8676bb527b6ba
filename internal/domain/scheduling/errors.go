package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PastDateError reports a booking request for a moment already behind the clock
type PastDateError struct {
	RequestedAt time.Time
	Now         time.Time
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("cannot book an appointment in the past: requested %s, current time %s",
		e.RequestedAt.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

// ClosedDayError reports a booking request on a Sunday. The clinic is closed
// on Sundays regardless of declared availability windows.
type ClosedDayError struct {
	RequestedAt time.Time
}

func (e *ClosedDayError) Error() string {
	return fmt.Sprintf("clinic is closed on Sundays: requested %s", e.RequestedAt.Format(time.RFC3339))
}

// NoAvailabilityError reports that no single availability window of the
// physician fully contains the candidate interval.
type NoAvailabilityError struct {
	PhysicianID uuid.UUID
	Weekday     int
	StartsAt    time.Time
	EndsAt      time.Time
}

func (e *NoAvailabilityError) Error() string {
	return fmt.Sprintf("physician %s has no availability covering %s-%s (weekday %d)",
		e.PhysicianID, e.StartsAt.Format("15:04"), e.EndsAt.Format("15:04"), e.Weekday)
}

// DoubleBookingError reports a candidate interval that intersects an active
// appointment of the same physician.
type DoubleBookingError struct {
	PhysicianID   uuid.UUID
	ConflictingID uuid.UUID
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *DoubleBookingError) Error() string {
	return fmt.Sprintf("physician %s already has appointment %s from %s to %s",
		e.PhysicianID, e.ConflictingID,
		e.ConflictStart.Format(time.RFC3339), e.ConflictEnd.Format(time.RFC3339))
}
