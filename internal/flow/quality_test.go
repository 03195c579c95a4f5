package flow

import "testing"

func TestSessionQuality(t *testing.T) {
	tests := []struct {
		name      string
		minutes   int
		rating    float64
		goalMet   bool
		dailyGoal int
		want      float64
	}{
		{
			name:    "perfect session with no goal",
			minutes: 25, rating: 3, goalMet: true,
			want: 1.0, // goal reference is the session's own minutes
		},
		{
			name:    "short session graded against the 20 minute floor",
			minutes: 10, rating: 2, goalMet: true,
			want: 2.0/3*0.45 + 0.5*0.35 + 0.2,
		},
		{
			name:    "goal still open after a short sitting",
			minutes: 10, rating: 2, goalMet: false, dailyGoal: 60,
			want: 2.0/3*0.45 + 10.0/60*0.35 + 10.0/36*0.2,
		},
		{
			name:    "session done but the day's goal not yet crossed",
			minutes: 25, rating: 3, goalMet: false, dailyGoal: 60,
			want: 0.45 + 25.0/60*0.35 + 25.0/36*0.2,
		},
		{
			name:    "goal met in one sitting",
			minutes: 60, rating: 3, goalMet: true, dailyGoal: 60,
			want: 1.0,
		},
		{
			name:    "overshooting the goal does not overshoot the factor",
			minutes: 120, rating: 3, goalMet: true, dailyGoal: 60,
			want: 1.0,
		},
		{
			name:    "zero minute interruption",
			minutes: 0, rating: 1, goalMet: false, dailyGoal: 60,
			want: 1.0 / 3 * 0.45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionQuality(tt.minutes, tt.rating, tt.goalMet, tt.dailyGoal)
			if !almost(got, tt.want) {
				t.Errorf("SessionQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}
