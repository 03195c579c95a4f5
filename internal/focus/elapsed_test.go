package focus

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		cumPause   int
		pausedNow  bool
		pauseStart time.Time
		now        time.Time
		want       int
	}{
		{
			name: "plain run",
			now:  start.Add(90 * time.Second),
			want: 90,
		},
		{
			name:     "closed pause subtracted",
			cumPause: 30,
			now:      start.Add(90 * time.Second),
			want:     60,
		},
		{
			name:       "open pause subtracted",
			pausedNow:  true,
			pauseStart: start.Add(60 * time.Second),
			now:        start.Add(90 * time.Second),
			want:       60,
		},
		{
			name:       "closed and open pauses combine",
			cumPause:   20,
			pausedNow:  true,
			pauseStart: start.Add(100 * time.Second),
			now:        start.Add(130 * time.Second),
			want:       80,
		},
		{
			name:     "clock skew floors at zero",
			cumPause: 600,
			now:      start.Add(10 * time.Second),
			want:     0,
		},
		{
			name: "now before start floors at zero",
			now:  start.Add(-5 * time.Second),
			want: 0,
		},
		{
			name: "sub-second truncates down",
			now:  start.Add(1900 * time.Millisecond),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elapsed(start, tt.cumPause, tt.pausedNow, tt.pauseStart, tt.now)
			if got != tt.want {
				t.Errorf("Elapsed() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestElapsedZeroStart(t *testing.T) {
	if got := Elapsed(time.Time{}, 0, false, time.Time{}, time.Now()); got != 0 {
		t.Errorf("Elapsed() with zero start = %d, want 0", got)
	}
}
