package usecase

import (
	"testing"
	"time"
)

func TestNoShowAllowed(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scheduledAt time.Time
		want        bool
	}{
		{
			name:        "appointment later the same day",
			scheduledAt: time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
			want:        true,
		},
		{
			name:        "appointment earlier the same day",
			scheduledAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			want:        true,
		},
		{
			name:        "appointment on a past day",
			scheduledAt: time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC),
			want:        true,
		},
		{
			name:        "appointment tomorrow at midnight",
			scheduledAt: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			want:        false,
		},
		{
			name:        "appointment next week",
			scheduledAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := noShowAllowed(tt.scheduledAt, now); got != tt.want {
				t.Errorf("noShowAllowed(%s, %s) = %v, want %v",
					tt.scheduledAt.Format(time.RFC3339), now.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}
