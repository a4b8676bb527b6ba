package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Weekday bounds, ISO numbering: 1=Monday .. 7=Sunday
const (
	WeekdayMin = 1
	WeekdayMax = 7
)

// AvailabilityWindow is a recurring weekly interval during which a physician
// accepts bookings. Times are wall-clock "HH:MM" strings at minute precision,
// no timezone.
type AvailabilityWindow struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PhysicianID uuid.UUID `gorm:"type:uuid;not null;index" json:"physician_id"`
	Weekday     int       `gorm:"not null" json:"weekday"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// InvalidRangeError reports a window whose bounds are not a valid interval
type InvalidRangeError struct {
	Weekday   int
	StartTime string
	EndTime   string
	Reason    string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid availability window (weekday=%d %s-%s): %s",
		e.Weekday, e.StartTime, e.EndTime, e.Reason)
}

// OverlapError reports a window that intersects an already registered window
// for the same physician and weekday.
type OverlapError struct {
	PhysicianID uuid.UUID
	Weekday     int
	StartTime   string
	EndTime     string
	ExistingID  int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("availability window %s-%s overlaps window %d for physician %s on weekday %d",
		e.StartTime, e.EndTime, e.ExistingID, e.PhysicianID, e.Weekday)
}

// MinuteOfDay parses an "HH:MM" wall-clock string into minutes since
// midnight. The bool is false for malformed input.
func MinuteOfDay(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Validate checks the structural invariants of the window: parseable times,
// start strictly before end, weekday within 1-7.
func (w *AvailabilityWindow) Validate() error {
	if w.Weekday < WeekdayMin || w.Weekday > WeekdayMax {
		return &InvalidRangeError{Weekday: w.Weekday, StartTime: w.StartTime, EndTime: w.EndTime,
			Reason: "weekday must be between 1 (Monday) and 7 (Sunday)"}
	}
	start, ok := MinuteOfDay(w.StartTime)
	if !ok {
		return &InvalidRangeError{Weekday: w.Weekday, StartTime: w.StartTime, EndTime: w.EndTime,
			Reason: "start time must be HH:MM"}
	}
	end, ok := MinuteOfDay(w.EndTime)
	if !ok {
		return &InvalidRangeError{Weekday: w.Weekday, StartTime: w.StartTime, EndTime: w.EndTime,
			Reason: "end time must be HH:MM"}
	}
	if start >= end {
		return &InvalidRangeError{Weekday: w.Weekday, StartTime: w.StartTime, EndTime: w.EndTime,
			Reason: "start time must be before end time"}
	}
	return nil
}

// Overlaps reports whether two windows for the same physician and weekday
// intersect. Touching bounds (one ends where the other starts) do not count.
func (w *AvailabilityWindow) Overlaps(other *AvailabilityWindow) bool {
	if w.Weekday != other.Weekday {
		return false
	}
	ws, _ := MinuteOfDay(w.StartTime)
	we, _ := MinuteOfDay(w.EndTime)
	os, _ := MinuteOfDay(other.StartTime)
	oe, _ := MinuteOfDay(other.EndTime)
	return ws < oe && we > os
}

// Covers reports whether the candidate interval, given as minutes since
// midnight, fits entirely inside this window. Partial coverage across two
// adjacent windows does not count as availability.
func (w *AvailabilityWindow) Covers(startMin, endMin int) bool {
	ws, ok := MinuteOfDay(w.StartTime)
	if !ok {
		return false
	}
	we, ok := MinuteOfDay(w.EndTime)
	if !ok {
		return false
	}
	return ws <= startMin && we >= endMin
}

// ISOWeekday converts a time.Time to ISO weekday numbering (1=Monday..7=Sunday)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
