package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestApply(t *testing.T) {
	statuses := []AppointmentStatus{
		StatusProgramada,
		StatusConfirmada,
		StatusEnCurso,
		StatusCompletada,
		StatusCancelada,
		StatusNoAsistio,
	}

	// Every legal (status, event) pair and its destination. Everything
	// outside this table must be rejected.
	legal := map[AppointmentStatus]map[AppointmentEvent]AppointmentStatus{
		StatusProgramada: {
			EventConfirm: StatusConfirmada,
			EventCancel:  StatusCancelada,
			EventNoShow:  StatusNoAsistio,
		},
		StatusConfirmada: {
			EventStart:    StatusEnCurso,
			EventComplete: StatusCompletada,
			EventCancel:   StatusCancelada,
			EventNoShow:   StatusNoAsistio,
		},
		StatusEnCurso: {
			EventComplete: StatusCompletada,
		},
	}

	events := []AppointmentEvent{EventConfirm, EventStart, EventComplete, EventCancel, EventNoShow}

	for _, status := range statuses {
		for _, event := range events {
			t.Run(string(status)+"/"+string(event), func(t *testing.T) {
				a := Appointment{ID: uuid.New(), Status: status}
				err := a.Apply(event)

				want, allowed := legal[status][event]
				if allowed {
					if err != nil {
						t.Fatalf("Apply(%s) from %s = %v, want nil", event, status, err)
					}
					if a.Status != want {
						t.Fatalf("status after Apply(%s) = %s, want %s", event, a.Status, want)
					}
					return
				}

				var illegalErr *IllegalTransitionError
				if !errors.As(err, &illegalErr) {
					t.Fatalf("Apply(%s) from %s = %v, want IllegalTransitionError", event, status, err)
				}
				if illegalErr.Current != status || illegalErr.Event != event {
					t.Errorf("error reports %s/%s, want %s/%s",
						illegalErr.Current, illegalErr.Event, status, event)
				}
				if a.Status != status {
					t.Errorf("status mutated to %s on rejected transition", a.Status)
				}
			})
		}
	}
}

func TestApplyUnknownEvent(t *testing.T) {
	a := Appointment{ID: uuid.New(), Status: StatusProgramada}

	err := a.Apply(AppointmentEvent("reschedule"))

	var illegalErr *IllegalTransitionError
	if !errors.As(err, &illegalErr) {
		t.Fatalf("Apply(reschedule) = %v, want IllegalTransitionError", err)
	}
	if a.Status != StatusProgramada {
		t.Errorf("status mutated to %s on unknown event", a.Status)
	}
}

func TestTransitionTarget(t *testing.T) {
	to, from, ok := TransitionTarget(EventCancel)
	if !ok {
		t.Fatal("TransitionTarget(cancel) ok = false")
	}
	if to != StatusCancelada {
		t.Errorf("to = %s, want %s", to, StatusCancelada)
	}
	if len(from) != 2 || from[0] != StatusProgramada || from[1] != StatusConfirmada {
		t.Errorf("from = %v, want [PROGRAMADA CONFIRMADA]", from)
	}

	if _, _, ok := TransitionTarget(AppointmentEvent("reschedule")); ok {
		t.Error("TransitionTarget(reschedule) ok = true, want false")
	}
}

func TestIsActiveAndIsTerminal(t *testing.T) {
	tests := []struct {
		status   AppointmentStatus
		active   bool
		terminal bool
	}{
		{StatusProgramada, true, false},
		{StatusConfirmada, true, false},
		{StatusEnCurso, true, false},
		{StatusCompletada, false, true},
		{StatusCancelada, false, true},
		{StatusNoAsistio, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := Appointment{Status: tt.status}
			if got := a.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
			if got := a.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestAppointmentEndsAt(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	a := Appointment{ScheduledAt: at}

	if got, want := a.EndsAt(), at.Add(AppointmentDuration); !got.Equal(want) {
		t.Errorf("EndsAt() = %s, want %s", got, want)
	}
}
