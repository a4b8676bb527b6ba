package scheduling

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	testPhysician = uuid.MustParse("7f9c24e5-2f86-4a7b-9c3d-1e5b8a6d4c2f")
	otherDoctor   = uuid.MustParse("b1a2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
)

// clock returns a fixed time well before every candidate in these tests:
// Monday 2026-03-02 08:00 UTC.
func clock() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

// monday returns Monday 2026-03-02 at the given wall clock time
func monday(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func window(weekday int, start, end string) entity.AvailabilityWindow {
	return entity.AvailabilityWindow{
		PhysicianID: testPhysician,
		Weekday:     weekday,
		StartTime:   start,
		EndTime:     end,
	}
}

func booked(physicianID uuid.UUID, at time.Time, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:          uuid.New(),
		PhysicianID: physicianID,
		ScheduledAt: at,
		Status:      status,
	}
}

func TestCheckBookable(t *testing.T) {
	mondayMorning := []entity.AvailabilityWindow{window(1, "09:00", "12:00")}

	tests := []struct {
		name     string
		startsAt time.Time
		windows  []entity.AvailabilityWindow
		existing []entity.Appointment
		wantErr  any
	}{
		{
			name:     "slot inside window with empty calendar",
			startsAt: monday(9, 0),
			windows:  mondayMorning,
			wantErr:  nil,
		},
		{
			name:     "slot ending exactly at window close",
			startsAt: monday(11, 30),
			windows:  mondayMorning,
			wantErr:  nil,
		},
		{
			name:     "slot extending past window close",
			startsAt: monday(11, 45),
			windows:  mondayMorning,
			wantErr:  &NoAvailabilityError{},
		},
		{
			name:     "slot straddling two adjacent windows",
			startsAt: monday(11, 45),
			windows: []entity.AvailabilityWindow{
				window(1, "09:00", "12:00"),
				window(1, "12:00", "15:00"),
			},
			wantErr: &NoAvailabilityError{},
		},
		{
			name:     "no window declared for the weekday",
			startsAt: monday(9, 0),
			windows:  []entity.AvailabilityWindow{window(2, "09:00", "12:00")},
			wantErr:  &NoAvailabilityError{},
		},
		{
			name:     "window of another weekday covering same wall clock time",
			startsAt: monday(10, 0),
			windows:  []entity.AvailabilityWindow{window(3, "08:00", "20:00")},
			wantErr:  &NoAvailabilityError{},
		},
		{
			name:     "sunday is rejected before windows are consulted",
			startsAt: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
			windows:  []entity.AvailabilityWindow{window(7, "08:00", "20:00")},
			wantErr:  &ClosedDayError{},
		},
		{
			name:     "start in the past",
			startsAt: monday(7, 0),
			windows:  mondayMorning,
			wantErr:  &PastDateError{},
		},
		{
			name:     "existing active appointment at the same slot",
			startsAt: monday(10, 0),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusProgramada)},
			wantErr:  &DoubleBookingError{},
		},
		{
			name:     "candidate overlapping tail of existing appointment",
			startsAt: monday(9, 59),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(9, 30), entity.StatusConfirmada)},
			wantErr:  &DoubleBookingError{},
		},
		{
			name:     "candidate overlapping head of existing appointment",
			startsAt: monday(9, 45),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusEnCurso)},
			wantErr:  &DoubleBookingError{},
		},
		{
			name:     "back to back after existing appointment",
			startsAt: monday(10, 30),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusConfirmada)},
			wantErr:  nil,
		},
		{
			name:     "back to back before existing appointment",
			startsAt: monday(9, 30),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusConfirmada)},
			wantErr:  nil,
		},
		{
			name:     "cancelled appointment frees the slot",
			startsAt: monday(10, 0),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusCancelada)},
			wantErr:  nil,
		},
		{
			name:     "no-show appointment frees the slot",
			startsAt: monday(10, 0),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusNoAsistio)},
			wantErr:  nil,
		},
		{
			name:     "completed appointment frees the slot",
			startsAt: monday(10, 0),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(testPhysician, monday(10, 0), entity.StatusCompletada)},
			wantErr:  nil,
		},
		{
			name:     "another physician's appointment does not conflict",
			startsAt: monday(10, 0),
			windows:  mondayMorning,
			existing: []entity.Appointment{booked(otherDoctor, monday(10, 0), entity.StatusProgramada)},
			wantErr:  nil,
		},
		{
			name:     "past check wins over closed day",
			startsAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			windows:  nil,
			wantErr:  &PastDateError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{PhysicianID: testPhysician, StartsAt: tt.startsAt}
			err := CheckBookable(clock(), c, tt.windows, tt.existing)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CheckBookable() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("CheckBookable() = nil, want %T", tt.wantErr)
			}

			switch tt.wantErr.(type) {
			case *PastDateError:
				var target *PastDateError
				if !errors.As(err, &target) {
					t.Fatalf("CheckBookable() = %v (%T), want PastDateError", err, err)
				}
			case *ClosedDayError:
				var target *ClosedDayError
				if !errors.As(err, &target) {
					t.Fatalf("CheckBookable() = %v (%T), want ClosedDayError", err, err)
				}
			case *NoAvailabilityError:
				var target *NoAvailabilityError
				if !errors.As(err, &target) {
					t.Fatalf("CheckBookable() = %v (%T), want NoAvailabilityError", err, err)
				}
			case *DoubleBookingError:
				var target *DoubleBookingError
				if !errors.As(err, &target) {
					t.Fatalf("CheckBookable() = %v (%T), want DoubleBookingError", err, err)
				}
			}
		})
	}
}

func TestCheckBookableErrorFields(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(1, "09:00", "12:00")}

	t.Run("no availability carries the rejected interval", func(t *testing.T) {
		c := Candidate{PhysicianID: testPhysician, StartsAt: monday(14, 0)}
		err := CheckBookable(clock(), c, windows, nil)

		var navErr *NoAvailabilityError
		if !errors.As(err, &navErr) {
			t.Fatalf("CheckBookable() = %v, want NoAvailabilityError", err)
		}
		if navErr.PhysicianID != testPhysician {
			t.Errorf("PhysicianID = %s, want %s", navErr.PhysicianID, testPhysician)
		}
		if navErr.Weekday != 1 {
			t.Errorf("Weekday = %d, want 1", navErr.Weekday)
		}
		if !navErr.StartsAt.Equal(monday(14, 0)) || !navErr.EndsAt.Equal(monday(14, 30)) {
			t.Errorf("interval = %s-%s, want 14:00-14:30", navErr.StartsAt, navErr.EndsAt)
		}
	})

	t.Run("double booking names the conflicting appointment", func(t *testing.T) {
		existing := booked(testPhysician, monday(10, 0), entity.StatusConfirmada)
		c := Candidate{PhysicianID: testPhysician, StartsAt: monday(10, 15)}
		err := CheckBookable(clock(), c, windows, []entity.Appointment{existing})

		var dbErr *DoubleBookingError
		if !errors.As(err, &dbErr) {
			t.Fatalf("CheckBookable() = %v, want DoubleBookingError", err)
		}
		if dbErr.ConflictingID != existing.ID {
			t.Errorf("ConflictingID = %s, want %s", dbErr.ConflictingID, existing.ID)
		}
		if !dbErr.ConflictStart.Equal(monday(10, 0)) || !dbErr.ConflictEnd.Equal(monday(10, 30)) {
			t.Errorf("conflict interval = %s-%s, want 10:00-10:30", dbErr.ConflictStart, dbErr.ConflictEnd)
		}
	})

	t.Run("past date carries both clocks", func(t *testing.T) {
		c := Candidate{PhysicianID: testPhysician, StartsAt: monday(7, 30)}
		err := CheckBookable(clock(), c, windows, nil)

		var pastErr *PastDateError
		if !errors.As(err, &pastErr) {
			t.Fatalf("CheckBookable() = %v, want PastDateError", err)
		}
		if !pastErr.RequestedAt.Equal(monday(7, 30)) {
			t.Errorf("RequestedAt = %s, want %s", pastErr.RequestedAt, monday(7, 30))
		}
		if !pastErr.Now.Equal(clock()) {
			t.Errorf("Now = %s, want %s", pastErr.Now, clock())
		}
	})
}

// TestCheckBookableNoPairwiseOverlap drives randomized booking attempts
// through the resolver and asserts that every accepted pair of appointments
// is disjoint. The resolver is the only admission gate, so any overlap in
// the accepted set is a resolver bug.
func TestCheckBookableNoPairwiseOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	windows := []entity.AvailabilityWindow{
		window(1, "09:00", "13:00"),
		window(1, "15:00", "19:00"),
	}

	var accepted []entity.Appointment
	for i := 0; i < 500; i++ {
		// Random minute-aligned start across the whole day, deliberately
		// including slots outside the windows.
		startsAt := monday(0, 0).Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		c := Candidate{PhysicianID: testPhysician, StartsAt: startsAt}

		if err := CheckBookable(clock(), c, windows, accepted); err == nil {
			accepted = append(accepted, booked(testPhysician, startsAt, entity.StatusProgramada))
		}
	}

	if len(accepted) == 0 {
		t.Fatal("no candidate was accepted, generator is broken")
	}

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a, b := &accepted[i], &accepted[j]
			if a.ScheduledAt.Before(b.EndsAt()) && a.EndsAt().After(b.ScheduledAt) {
				t.Fatalf("accepted appointments overlap: %s and %s",
					a.ScheduledAt.Format("15:04"), b.ScheduledAt.Format("15:04"))
			}
		}
	}
}

func TestCandidateEndsAt(t *testing.T) {
	c := Candidate{PhysicianID: testPhysician, StartsAt: monday(9, 0)}
	if got, want := c.EndsAt(), monday(9, 30); !got.Equal(want) {
		t.Errorf("EndsAt() = %s, want %s", got, want)
	}
}
