// Package scheduling decides whether a candidate appointment is bookable.
// The resolver is a pure function over snapshots: it never touches storage
// and never mutates its inputs, so the same decision can be replayed inside
// a transaction or in a test with identical results.
package scheduling

import (
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Candidate is a proposed appointment before it exists. The occupied
// interval is [StartsAt, StartsAt+entity.AppointmentDuration).
type Candidate struct {
	PhysicianID uuid.UUID
	StartsAt    time.Time
}

// EndsAt returns the exclusive end of the candidate interval
func (c Candidate) EndsAt() time.Time {
	return c.StartsAt.Add(entity.AppointmentDuration)
}

// CheckBookable validates a candidate against the physician's availability
// windows for the candidate's weekday and the physician's existing
// appointments. The existing slice may be a superset fetch (e.g. the whole
// surrounding day); filtering by status and interval happens here.
//
// Checks run in order and the first failure wins:
//  1. candidate start before now              -> PastDateError
//  2. candidate falls on a Sunday             -> ClosedDayError
//  3. no single window contains the interval  -> NoAvailabilityError
//  4. an active appointment intersects it     -> DoubleBookingError
//
// Windows must fully contain the interval; an interval straddling two
// adjacent windows is rejected. Overlap uses half-open semantics, so an
// appointment ending exactly when another starts is not a conflict.
func CheckBookable(now time.Time, c Candidate, windows []entity.AvailabilityWindow, existing []entity.Appointment) error {
	if c.StartsAt.Before(now) {
		return &PastDateError{RequestedAt: c.StartsAt, Now: now}
	}

	if c.StartsAt.Weekday() == time.Sunday {
		return &ClosedDayError{RequestedAt: c.StartsAt}
	}

	weekday := entity.ISOWeekday(c.StartsAt)
	startMin := c.StartsAt.Hour()*60 + c.StartsAt.Minute()
	endMin := startMin + int(entity.AppointmentDuration.Minutes())

	covered := false
	for i := range windows {
		if windows[i].Weekday != weekday {
			continue
		}
		if windows[i].Covers(startMin, endMin) {
			covered = true
			break
		}
	}
	if !covered {
		return &NoAvailabilityError{
			PhysicianID: c.PhysicianID,
			Weekday:     weekday,
			StartsAt:    c.StartsAt,
			EndsAt:      c.EndsAt(),
		}
	}

	candEnd := c.EndsAt()
	for i := range existing {
		a := &existing[i]
		if a.PhysicianID != c.PhysicianID || !a.IsActive() {
			continue
		}
		if a.ScheduledAt.Before(candEnd) && a.EndsAt().After(c.StartsAt) {
			return &DoubleBookingError{
				PhysicianID:   c.PhysicianID,
				ConflictingID: a.ID,
				ConflictStart: a.ScheduledAt,
				ConflictEnd:   a.EndsAt(),
			}
		}
	}

	return nil
}
