package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/ivelina/tendril/internal/focus"
	"github.com/ivelina/tendril/internal/store"
)

const dayFormat = "2006-01-02"

// Engine folds closed sessions into the persistent flow state: the behavior
// ledger, the long-term metrics, and the append-only event log. It is the
// session machine's close reporter.
type Engine struct {
	flowRepo     store.FlowStateRepo
	behaviorRepo store.BehaviorRepo
	eventRepo    store.EventRepo
	params       Params

	// DailyGoalMinutes is the user's daily focus target. Zero means no goal:
	// no streaks, session-relative quality grading.
	dailyGoalMinutes int
}

// NewEngine wires a flow engine over the store repos.
func NewEngine(flowRepo store.FlowStateRepo, behaviorRepo store.BehaviorRepo, eventRepo store.EventRepo, params Params, dailyGoalMinutes int) *Engine {
	return &Engine{
		flowRepo:         flowRepo,
		behaviorRepo:     behaviorRepo,
		eventRepo:        eventRepo,
		params:           params,
		dailyGoalMinutes: dailyGoalMinutes,
	}
}

// DailyGoalMinutes returns the configured daily target, zero when unset.
func (e *Engine) DailyGoalMinutes() int { return e.dailyGoalMinutes }

// ReportClose ingests one terminal session. The ledger day is updated first
// so the weekly score the metrics update sees already includes this session.
func (e *Engine) ReportClose(report focus.CloseReport) error {
	ctx := context.Background()
	now := report.ClosedAt
	date := now.Format(dayFormat)

	m, err := e.loadMetrics(ctx)
	if err != nil {
		return err
	}

	ApplyDecay(&m, e.params, now)

	day, err := e.creditDay(ctx, date, report.Minutes, &m)
	if err != nil {
		return err
	}

	weekly, err := e.weeklyEnding(ctx, now)
	if err != nil {
		return err
	}

	rating := 2.0
	if report.Rating != nil {
		rating = clamp(*report.Rating, 0, 3)
	}
	quality := SessionQuality(report.Minutes, rating, day.MetGoal, e.dailyGoalMinutes)

	e.updateScores(&m, report, quality, rating, weekly.Normalized, day.MetGoal)

	t := now
	m.LastSessionAt = &t
	m.LastDecayAt = &t

	if err := e.flowRepo.Save(ctx, metricsToData(m)); err != nil {
		return fmt.Errorf("save flow state: %w", err)
	}

	// The event log is best effort: a failed append must not undo the
	// metrics update the user already earned.
	_ = e.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      report.SessionID,
		Minutes:        report.Minutes,
		PlannedMinutes: report.PlannedMinutes,
		Rating:         report.Rating,
		Completed:      report.Completed,
		GoalReached:    report.GoalReached,
		WasAgitated:    report.WasAgitated,
		StartedAt:      report.StartedAt,
		ClosedOn:       date,
	})
	return nil
}

// creditDay upserts the ledger day with the new minutes and advances the
// streak the first time the day crosses the daily goal.
func (e *Engine) creditDay(ctx context.Context, date string, minutes int, m *Metrics) (store.BehaviorDayData, error) {
	existing, err := e.behaviorRepo.Day(ctx, date)
	if err != nil {
		return store.BehaviorDayData{}, err
	}
	day := store.BehaviorDayData{Date: date}
	if existing != nil {
		day = *existing
	}

	day.Present = true
	day.Focused = true
	day.FocusMinutes += minutes

	goal := e.dailyGoalMinutes
	if goal > 0 {
		if day.FocusMinutes >= goal {
			day.MetGoal = true
		}
		if float64(day.FocusMinutes) >= float64(goal)*e.params.Behavior.OverGoalFactor {
			day.OverGoal = true
		}
		if day.MetGoal && !day.StreakCounted {
			day.StreakCounted = true
			m.CurrentStreakDays++
		}
	}

	if err := e.behaviorRepo.Upsert(ctx, day); err != nil {
		return store.BehaviorDayData{}, err
	}
	return day, nil
}

// updateScores applies the per-session impression and momentum deltas and
// the running aggregates.
func (e *Engine) updateScores(m *Metrics, report focus.CloseReport, quality, rating, weekly float64, dailyGoalMet bool) {
	p := e.params
	pos := PositiveBoost(weekly)
	neg := NegativeBoost(weekly)

	// Quality streak first so a strong close feeds its own bonus below.
	switch {
	case quality >= 0.75:
		m.RecentQualityStreak++
	case quality < 0.5:
		m.RecentQualityStreak = 0
	}

	// Impression: slow reputation. Small gains, caps, and a dent for
	// bailing out.
	var baseGain float64
	switch {
	case quality >= 0.85:
		baseGain = 1.1
	case quality >= 0.7:
		baseGain = 0.8
	case quality >= 0.5:
		baseGain = 0.45
	default:
		baseGain = 0.2
	}
	streakFactor := clamp(float64(m.CurrentStreakDays)/14, 0, 1) * 0.5
	gain := baseGain + streakFactor
	if dailyGoalMet {
		gain += 0.4
	}
	// Bailing out costs more than a weak close, never both at once.
	var penalty float64
	switch {
	case !report.Completed:
		penalty = 0.8
	case quality < 0.3:
		penalty = 0.3
	}
	m.ImpressionScore = clamp(m.ImpressionScore+gain-penalty, p.MinImpression, p.MaxImpression)

	// Momentum: big swings, behavior-scaled.
	delta := quality * 18 * pos
	if dailyGoalMet {
		delta += 6 * pos
	}
	if !report.Completed {
		// An unfinished session is also an interrupted one here, so both
		// the incompletion and interruption deductions apply.
		delta -= 6 * neg
		delta -= 8 * neg
	}
	delta += clamp(float64(m.RecentQualityStreak)*1.5, 0, 8) * pos
	if quality < 0.45 {
		delta -= (0.45 - quality) * 15 * neg
	}
	if weekly < 0.35 && quality < 0.55 {
		delta -= (0.35 - weekly) * 10
	}
	delta -= FatiguePenalty(weekly, p.Behavior)
	m.TempFlowScore = clamp(m.TempFlowScore+delta, p.MinTempFlow, p.MaxTempFlow)

	// Aggregates with incremental means.
	m.SessionCount++
	n := float64(m.SessionCount)
	m.TotalFocusMinutes += report.Minutes
	if report.Minutes > m.LongestSessionMinutes {
		m.LongestSessionMinutes = report.Minutes
	}
	m.AverageSessionMinutes = float64(m.TotalFocusMinutes) / n

	m.AverageRating += (rating - m.AverageRating) / n
	completed := 0.0
	if report.Completed {
		completed = 1
	}
	m.CompletionRate += (completed - m.CompletionRate) / n
	m.InterruptionRate += ((1 - completed) - m.InterruptionRate) / n

	m.ConsistencyScore = clamp(n/14, 0, 1)
	m.ImprovementTrend = m.ImprovementTrend*0.7 + (quality-0.6)*0.3
}

// Metrics returns the current flow state with decay applied as of now. The
// decayed state is persisted so repeated reads stay idempotent.
func (e *Engine) Metrics(now time.Time) (Metrics, error) {
	ctx := context.Background()
	m, err := e.loadMetrics(ctx)
	if err != nil {
		return Metrics{}, err
	}
	before := m
	ApplyDecay(&m, e.params, now)
	if m != before {
		if err := e.flowRepo.Save(ctx, metricsToData(m)); err != nil {
			return Metrics{}, fmt.Errorf("save flow state: %w", err)
		}
	}
	return m, nil
}

// Weekly returns the trailing-week behavior snapshot ending today.
func (e *Engine) Weekly(now time.Time) (WeeklySnapshot, error) {
	return e.weeklyEnding(context.Background(), now)
}

// IndexNow computes the current Flow Index reading.
func (e *Engine) IndexNow(now time.Time) (Index, error) {
	m, err := e.Metrics(now)
	if err != nil {
		return Index{}, err
	}
	weekly, err := e.Weekly(now)
	if err != nil {
		return Index{}, err
	}
	return ComputeIndex(m, weekly.Normalized, e.params), nil
}

// TodayMinutes returns the focused minutes credited to the given day.
func (e *Engine) TodayMinutes(now time.Time) (int, error) {
	day, err := e.behaviorRepo.Day(context.Background(), now.Format(dayFormat))
	if err != nil || day == nil {
		return 0, err
	}
	return day.FocusMinutes, nil
}

// DailyGoalMet reports whether the given day already crossed the goal.
func (e *Engine) DailyGoalMet(now time.Time) (bool, error) {
	day, err := e.behaviorRepo.Day(context.Background(), now.Format(dayFormat))
	if err != nil || day == nil {
		return false, err
	}
	return day.MetGoal, nil
}

// WeekMinutes returns the focused minutes of the Monday-anchored week
// containing now.
func (e *Engine) WeekMinutes(now time.Time) (int, error) {
	monday := now.AddDate(0, 0, -mondayOffset(now.Weekday()))
	days, err := e.behaviorRepo.Range(context.Background(),
		monday.Format(dayFormat), now.Format(dayFormat))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range days {
		total += d.FocusMinutes
	}
	return total, nil
}

func mondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

func (e *Engine) weeklyEnding(ctx context.Context, now time.Time) (WeeklySnapshot, error) {
	from := now.AddDate(0, 0, -6).Format(dayFormat)
	to := now.Format(dayFormat)
	days, err := e.behaviorRepo.Range(ctx, from, to)
	if err != nil {
		return WeeklySnapshot{}, fmt.Errorf("behavior window: %w", err)
	}
	flags := make([]DayFlags, 0, len(days))
	for _, d := range days {
		flags = append(flags, DayFlags{
			Present:  d.Present,
			Focused:  d.Focused,
			MetGoal:  d.MetGoal,
			OverGoal: d.OverGoal,
		})
	}
	return WeeklyScore(flags, e.params.Behavior), nil
}

func (e *Engine) loadMetrics(ctx context.Context) (Metrics, error) {
	data, err := e.flowRepo.Load(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("load flow state: %w", err)
	}
	if data == nil {
		return DefaultMetrics(), nil
	}
	return metricsFromData(*data), nil
}

func metricsToData(m Metrics) store.FlowStateData {
	return store.FlowStateData{
		ImpressionScore:       m.ImpressionScore,
		TempFlowScore:         m.TempFlowScore,
		AverageRating:         m.AverageRating,
		CompletionRate:        m.CompletionRate,
		InterruptionRate:      m.InterruptionRate,
		ConsistencyScore:      m.ConsistencyScore,
		ImprovementTrend:      m.ImprovementTrend,
		SessionCount:          m.SessionCount,
		TotalFocusMinutes:     m.TotalFocusMinutes,
		AverageSessionMinutes: m.AverageSessionMinutes,
		LongestSessionMinutes: m.LongestSessionMinutes,
		CurrentStreakDays:     m.CurrentStreakDays,
		RecentQualityStreak:   m.RecentQualityStreak,
		LastSessionAt:         m.LastSessionAt,
		LastDecayAt:           m.LastDecayAt,
	}
}

func metricsFromData(d store.FlowStateData) Metrics {
	return Metrics{
		ImpressionScore:       d.ImpressionScore,
		TempFlowScore:         d.TempFlowScore,
		AverageRating:         d.AverageRating,
		CompletionRate:        d.CompletionRate,
		InterruptionRate:      d.InterruptionRate,
		ConsistencyScore:      d.ConsistencyScore,
		ImprovementTrend:      d.ImprovementTrend,
		SessionCount:          d.SessionCount,
		TotalFocusMinutes:     d.TotalFocusMinutes,
		AverageSessionMinutes: d.AverageSessionMinutes,
		LongestSessionMinutes: d.LongestSessionMinutes,
		CurrentStreakDays:     d.CurrentStreakDays,
		RecentQualityStreak:   d.RecentQualityStreak,
		LastSessionAt:         d.LastSessionAt,
		LastDecayAt:           d.LastDecayAt,
	}
}
