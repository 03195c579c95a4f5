package flow

import (
	"context"
	"testing"
	"time"

	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/store"
)

type mockFlowRepo struct {
	data *store.FlowStateData
}

func (m *mockFlowRepo) Save(_ context.Context, data store.FlowStateData) error {
	m.data = &data
	return nil
}

func (m *mockFlowRepo) Load(context.Context) (*store.FlowStateData, error) {
	if m.data == nil {
		return nil, nil
	}
	cp := *m.data
	return &cp, nil
}

type mockBehaviorRepo struct {
	days map[string]store.BehaviorDayData
}

func newMockBehaviorRepo() *mockBehaviorRepo {
	return &mockBehaviorRepo{days: make(map[string]store.BehaviorDayData)}
}

func (m *mockBehaviorRepo) Day(_ context.Context, date string) (*store.BehaviorDayData, error) {
	d, ok := m.days[date]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *mockBehaviorRepo) Upsert(_ context.Context, data store.BehaviorDayData) error {
	m.days[data.Date] = data
	return nil
}

func (m *mockBehaviorRepo) Range(_ context.Context, from, to string) ([]store.BehaviorDayData, error) {
	var out []store.BehaviorDayData
	for date, d := range m.days {
		if date >= from && date <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

type mockEventRepo struct {
	events []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockEventRepo) RecentSessionEvents(context.Context, int) ([]store.SessionEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) SessionEventsOn(context.Context, string) ([]store.SessionEvent, error) {
	return nil, nil
}

func newTestEngine(dailyGoal int) (*Engine, *mockFlowRepo, *mockBehaviorRepo, *mockEventRepo) {
	fr := &mockFlowRepo{}
	br := newMockBehaviorRepo()
	er := &mockEventRepo{}
	return NewEngine(fr, br, er, DefaultParams(), dailyGoal), fr, br, er
}

func closedAt(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
}

func report(minutes int, completed bool, rating *float64, at time.Time) focus.CloseReport {
	return focus.CloseReport{
		SessionID:      "s-" + at.Format("02-15"),
		Minutes:        minutes,
		PlannedMinutes: 25,
		Rating:         rating,
		Completed:      completed,
		StartedAt:      at.Add(-time.Duration(minutes) * time.Minute),
		ClosedAt:       at,
	}
}

func TestReportCloseCreditsDayAndLogs(t *testing.T) {
	e, fr, br, er := newTestEngine(50)

	r := 3.0
	if err := e.ReportClose(report(30, true, &r, closedAt(10, 9))); err != nil {
		t.Fatalf("ReportClose: %v", err)
	}

	day := br.days["2026-03-10"]
	if !day.Present || !day.Focused {
		t.Errorf("day flags = %+v, want present and focused", day)
	}
	if day.MetGoal {
		t.Error("30 of 50 minutes should not meet the goal")
	}
	if day.FocusMinutes != 30 {
		t.Errorf("day minutes = %d, want 30", day.FocusMinutes)
	}

	if fr.data == nil {
		t.Fatal("flow state never saved")
	}
	if fr.data.SessionCount != 1 || fr.data.TotalFocusMinutes != 30 {
		t.Errorf("aggregates = %d sessions / %d minutes", fr.data.SessionCount, fr.data.TotalFocusMinutes)
	}
	if fr.data.ImpressionScore <= 40 {
		t.Errorf("impression = %v after a good session, want a gain over 40", fr.data.ImpressionScore)
	}
	if fr.data.LastSessionAt == nil || !fr.data.LastSessionAt.Equal(closedAt(10, 9)) {
		t.Errorf("LastSessionAt = %v", fr.data.LastSessionAt)
	}

	if len(er.events) != 1 {
		t.Fatalf("event log has %d entries, want 1", len(er.events))
	}
	ev := er.events[0]
	if ev.Minutes != 30 || !ev.Completed || ev.ClosedOn != "2026-03-10" {
		t.Errorf("logged event = %+v", ev)
	}
}

func TestStreakAdvancesOncePerDay(t *testing.T) {
	e, fr, br, _ := newTestEngine(50)

	r := 3.0
	// Two sessions cross the 50 minute goal; a third piles on.
	for _, minutes := range []int{30, 25, 20} {
		if err := e.ReportClose(report(minutes, true, &r, closedAt(10, 9))); err != nil {
			t.Fatalf("ReportClose: %v", err)
		}
	}

	day := br.days["2026-03-10"]
	if !day.MetGoal {
		t.Error("75 of 50 minutes should meet the goal")
	}
	if !day.OverGoal {
		t.Error("75 minutes exceeds 1.2x the goal")
	}
	if !day.StreakCounted {
		t.Error("streak marker not set")
	}
	if fr.data.CurrentStreakDays != 1 {
		t.Errorf("streak = %d after one qualifying day, want 1", fr.data.CurrentStreakDays)
	}

	// Next day crosses the goal in one sitting: streak 2.
	if err := e.ReportClose(report(60, true, &r, closedAt(11, 9))); err != nil {
		t.Fatalf("ReportClose: %v", err)
	}
	if fr.data.CurrentStreakDays != 2 {
		t.Errorf("streak = %d after second qualifying day, want 2", fr.data.CurrentStreakDays)
	}
}

func TestNoGoalMeansNoStreak(t *testing.T) {
	e, fr, br, _ := newTestEngine(0)

	r := 3.0
	if err := e.ReportClose(report(90, true, &r, closedAt(10, 9))); err != nil {
		t.Fatalf("ReportClose: %v", err)
	}
	if fr.data.CurrentStreakDays != 0 {
		t.Errorf("streak = %d with no goal set, want 0", fr.data.CurrentStreakDays)
	}
	if br.days["2026-03-10"].MetGoal {
		t.Error("MetGoal set with no goal configured")
	}
}

func TestInterruptedSessionDragsMomentum(t *testing.T) {
	e, fr, _, _ := newTestEngine(50)

	if err := e.ReportClose(report(8, false, nil, closedAt(10, 9))); err != nil {
		t.Fatalf("ReportClose: %v", err)
	}
	if fr.data.TempFlowScore >= 0 {
		t.Errorf("temp flow = %v after a short interruption on an empty week, want negative", fr.data.TempFlowScore)
	}
	if fr.data.ImpressionScore >= 40 {
		t.Errorf("impression = %v, want a dent below the default", fr.data.ImpressionScore)
	}
	if fr.data.InterruptionRate != 1 {
		t.Errorf("interruption rate = %v after one interrupted session, want 1", fr.data.InterruptionRate)
	}
}

func TestIncrementalMeans(t *testing.T) {
	e, fr, _, _ := newTestEngine(0)

	r1, r2 := 3.0, 1.0
	if err := e.ReportClose(report(30, true, &r1, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	if err := e.ReportClose(report(30, false, &r2, closedAt(10, 12))); err != nil {
		t.Fatal(err)
	}

	if !almost(fr.data.AverageRating, 2.0) {
		t.Errorf("average rating = %v, want 2.0", fr.data.AverageRating)
	}
	if !almost(fr.data.CompletionRate, 0.5) {
		t.Errorf("completion rate = %v, want 0.5", fr.data.CompletionRate)
	}
	if !almost(fr.data.InterruptionRate, 0.5) {
		t.Errorf("interruption rate = %v, want 0.5", fr.data.InterruptionRate)
	}
	if !almost(fr.data.AverageSessionMinutes, 30) {
		t.Errorf("average minutes = %v, want 30", fr.data.AverageSessionMinutes)
	}
}

func TestQualityStreakRules(t *testing.T) {
	e, fr, _, _ := newTestEngine(0)
	high := 3.0

	// Two high-quality closes build the streak.
	if err := e.ReportClose(report(45, true, &high, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	if err := e.ReportClose(report(45, true, &high, closedAt(10, 12))); err != nil {
		t.Fatal(err)
	}
	if fr.data.RecentQualityStreak != 2 {
		t.Fatalf("quality streak = %d, want 2", fr.data.RecentQualityStreak)
	}

	// A bad close resets it.
	if err := e.ReportClose(report(3, false, nil, closedAt(10, 15))); err != nil {
		t.Fatal(err)
	}
	if fr.data.RecentQualityStreak != 0 {
		t.Errorf("quality streak = %d after a bad close, want 0", fr.data.RecentQualityStreak)
	}
}

func TestDayStreakDoesNotBoostMomentum(t *testing.T) {
	r := 3.0
	run := func(streakDays int) float64 {
		e, fr, _, _ := newTestEngine(0)
		fr.data = &store.FlowStateData{ImpressionScore: 40, CurrentStreakDays: streakDays}
		if err := e.ReportClose(report(45, true, &r, closedAt(10, 9))); err != nil {
			t.Fatal(err)
		}
		return fr.data.TempFlowScore
	}

	// The day streak feeds impression, not momentum. Identical closes must
	// land on identical momentum regardless of it.
	if a, b := run(0), run(5); !almost(a, b) {
		t.Errorf("temp flow differs with the day streak: %v vs %v", a, b)
	}
}

func TestQualityStreakFeedsMomentumBonus(t *testing.T) {
	r := 3.0
	run := func(streak int) float64 {
		e, fr, _, _ := newTestEngine(0)
		fr.data = &store.FlowStateData{ImpressionScore: 40, RecentQualityStreak: streak}
		if err := e.ReportClose(report(45, true, &r, closedAt(10, 9))); err != nil {
			t.Fatal(err)
		}
		return fr.data.TempFlowScore
	}

	if low, high := run(0), run(3); high <= low {
		t.Errorf("temp flow = %v with a running quality streak, want above %v", high, low)
	}
}

func TestBailOutPenaltyNotStacked(t *testing.T) {
	e, fr, _, _ := newTestEngine(0)

	low := 0.0
	if err := e.ReportClose(report(2, false, &low, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	// Bailing out on a low-quality close costs the bail-out dent alone,
	// never both dents at once.
	if !almost(fr.data.ImpressionScore, 40+0.2-0.8) {
		t.Errorf("impression = %v, want 39.4", fr.data.ImpressionScore)
	}
}

func TestQualityGradesAgainstDailyGoal(t *testing.T) {
	e, fr, _, _ := newTestEngine(50)

	r := 3.0
	if err := e.ReportClose(report(10, true, &r, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	// Ten minutes against a 50 minute goal grades as a weak close even
	// though the session itself ran to completion.
	if fr.data.ImprovementTrend >= 0 {
		t.Errorf("improvement trend = %v, want negative for a goal-shy close", fr.data.ImprovementTrend)
	}
}

func TestZeroMinuteCloseStillCountsFocused(t *testing.T) {
	e, _, br, _ := newTestEngine(50)

	if err := e.ReportClose(report(0, false, nil, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	day := br.days["2026-03-10"]
	if !day.Present || !day.Focused {
		t.Errorf("day flags = %+v, want present and focused after any close", day)
	}
}

func TestTodayAndWeekMinutes(t *testing.T) {
	e, _, _, _ := newTestEngine(0)
	r := 3.0

	// Tuesday the 10th and Wednesday the 11th of March 2026.
	if err := e.ReportClose(report(30, true, &r, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	if err := e.ReportClose(report(20, true, &r, closedAt(11, 9))); err != nil {
		t.Fatal(err)
	}

	today, err := e.TodayMinutes(closedAt(11, 18))
	if err != nil {
		t.Fatal(err)
	}
	if today != 20 {
		t.Errorf("today minutes = %d, want 20", today)
	}

	week, err := e.WeekMinutes(closedAt(11, 18))
	if err != nil {
		t.Fatal(err)
	}
	if week != 50 {
		t.Errorf("week minutes = %d, want 50", week)
	}

	// The previous Monday-anchored week sees none of it.
	week, err = e.WeekMinutes(closedAt(8, 18))
	if err != nil {
		t.Fatal(err)
	}
	if week != 0 {
		t.Errorf("prior week minutes = %d, want 0", week)
	}
}

func TestMetricsReadAppliesDecay(t *testing.T) {
	e, fr, _, _ := newTestEngine(0)
	r := 3.0

	if err := e.ReportClose(report(45, true, &r, closedAt(10, 9))); err != nil {
		t.Fatal(err)
	}
	boosted := fr.data.TempFlowScore
	if boosted <= 0 {
		t.Fatalf("temp flow = %v after a good session, want positive", boosted)
	}

	m, err := e.Metrics(closedAt(12, 9))
	if err != nil {
		t.Fatal(err)
	}
	if m.TempFlowScore >= boosted {
		t.Errorf("temp flow = %v after two idle days, want below %v", m.TempFlowScore, boosted)
	}
	// The decayed state is persisted, so a re-read is stable.
	m2, err := e.Metrics(closedAt(12, 9))
	if err != nil {
		t.Fatal(err)
	}
	if !almost(m2.TempFlowScore, m.TempFlowScore) {
		t.Errorf("second read moved the score: %v -> %v", m.TempFlowScore, m2.TempFlowScore)
	}
}
