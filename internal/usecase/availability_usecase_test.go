package usecase

import (
	"errors"
	"fmt"
	"testing"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWindowSaveError(t *testing.T) {
	physicianID := uuid.New()
	window := &entity.AvailabilityWindow{
		PhysicianID: physicianID,
		Weekday:     3,
		StartTime:   "09:00",
		EndTime:     "13:00",
	}

	t.Run("exclusion violation maps to overlap error", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23P01",
			ConstraintName: "excl_availability_windows_physician_weekday",
		}
		err := windowSaveError(fmt.Errorf("create window: %w", pgErr), window)

		var overlapErr *entity.OverlapError
		if !errors.As(err, &overlapErr) {
			t.Fatalf("windowSaveError() = %v (%T), want OverlapError", err, err)
		}
		if overlapErr.PhysicianID != physicianID {
			t.Errorf("PhysicianID = %s, want %s", overlapErr.PhysicianID, physicianID)
		}
		if overlapErr.Weekday != 3 {
			t.Errorf("Weekday = %d, want 3", overlapErr.Weekday)
		}
		if overlapErr.StartTime != "09:00" || overlapErr.EndTime != "13:00" {
			t.Errorf("interval = %s-%s, want 09:00-13:00", overlapErr.StartTime, overlapErr.EndTime)
		}
	})

	t.Run("unique violation passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uni_something"}
		wrapped := fmt.Errorf("create window: %w", pgErr)

		if err := windowSaveError(wrapped, window); err != wrapped {
			t.Errorf("windowSaveError() = %v, want the original error", err)
		}
	})

	t.Run("plain error passes through", func(t *testing.T) {
		plain := errors.New("connection reset")

		if err := windowSaveError(plain, window); err != plain {
			t.Errorf("windowSaveError() = %v, want the original error", err)
		}
	})
}

func TestIsExclusionViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "exclusion violation",
			err:  &pgconn.PgError{Code: "23P01"},
			want: true,
		},
		{
			name: "wrapped exclusion violation",
			err:  fmt.Errorf("commit: %w", &pgconn.PgError{Code: "23P01"}),
			want: true,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExclusionViolation(tt.err); got != tt.want {
				t.Errorf("isExclusionViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uni_rooms_name"},
			constraint: "name",
			want:       true,
		},
		{
			name:       "case insensitive match",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "UNI_PHYSICIANS_LICENSE_NUMBER"},
			constraint: "license_number",
			want:       true,
		},
		{
			name:       "different constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uni_patients_document_number"},
			constraint: "license_number",
			want:       false,
		},
		{
			name:       "wrong code",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "uni_rooms_name"},
			constraint: "name",
			want:       false,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			constraint: "name",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}
