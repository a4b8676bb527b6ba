package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		clock string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"12:30", 750, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 540, true},
		{"09:60", 0, false},
		{"0900", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, ok := MinuteOfDay(tt.clock)
			if ok != tt.ok {
				t.Fatalf("MinuteOfDay(%q) ok = %v, want %v", tt.clock, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name       string
		weekday    int
		start, end string
		wantReason string
	}{
		{"valid morning block", 1, "09:00", "13:00", ""},
		{"valid full day", 6, "00:00", "23:59", ""},
		{"weekday below range", 0, "09:00", "13:00", "weekday"},
		{"weekday above range", 8, "09:00", "13:00", "weekday"},
		{"malformed start", 1, "9am", "13:00", "start time"},
		{"malformed end", 1, "09:00", "25:00", "end time"},
		{"start equals end", 1, "09:00", "09:00", "before end"},
		{"start after end", 1, "13:00", "09:00", "before end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := AvailabilityWindow{Weekday: tt.weekday, StartTime: tt.start, EndTime: tt.end}
			err := w.Validate()

			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var rangeErr *InvalidRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Validate() = %v (%T), want InvalidRangeError", err, err)
			}
			if !strings.Contains(rangeErr.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want mention of %q", rangeErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestWindowOverlaps(t *testing.T) {
	physicianID := uuid.New()
	base := AvailabilityWindow{PhysicianID: physicianID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"}

	tests := []struct {
		name       string
		weekday    int
		start, end string
		want       bool
	}{
		{"identical interval", 1, "09:00", "13:00", true},
		{"contained interval", 1, "10:00", "11:00", true},
		{"containing interval", 1, "08:00", "14:00", true},
		{"overlapping head", 1, "08:00", "09:30", true},
		{"overlapping tail", 1, "12:30", "14:00", true},
		{"touching at start", 1, "07:00", "09:00", false},
		{"touching at end", 1, "13:00", "15:00", false},
		{"disjoint after", 1, "15:00", "19:00", false},
		{"same interval other weekday", 2, "09:00", "13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := AvailabilityWindow{
				PhysicianID: physicianID,
				Weekday:     tt.weekday,
				StartTime:   tt.start,
				EndTime:     tt.end,
			}
			if got := base.Overlaps(&other); got != tt.want {
				t.Errorf("Overlaps(%s %s-%s) = %v, want %v", tt.name, tt.start, tt.end, got, tt.want)
			}
			// Overlap is symmetric
			if got := other.Overlaps(&base); got != tt.want {
				t.Errorf("reverse Overlaps(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestWindowCovers(t *testing.T) {
	w := AvailabilityWindow{Weekday: 1, StartTime: "09:00", EndTime: "12:00"}

	tests := []struct {
		name             string
		startMin, endMin int
		want             bool
	}{
		{"interval at window start", 540, 570, true},
		{"interval at window end", 690, 720, true},
		{"interval in the middle", 600, 630, true},
		{"whole window", 540, 720, true},
		{"starts before window", 530, 560, false},
		{"ends after window", 700, 730, false},
		{"entirely outside", 800, 830, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Covers(tt.startMin, tt.endMin); got != tt.want {
				t.Errorf("Covers(%d, %d) = %v, want %v", tt.startMin, tt.endMin, got, tt.want)
			}
		})
	}

	t.Run("malformed window covers nothing", func(t *testing.T) {
		bad := AvailabilityWindow{Weekday: 1, StartTime: "nine", EndTime: "12:00"}
		if bad.Covers(600, 630) {
			t.Error("Covers() = true for malformed window")
		}
	})
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 1},  // Monday
		{time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 3},  // Wednesday
		{time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), 6},  // Saturday
		{time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), 7},  // Sunday
	}

	for _, tt := range tests {
		if got := ISOWeekday(tt.date); got != tt.want {
			t.Errorf("ISOWeekday(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
