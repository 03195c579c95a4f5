package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestActiveSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActiveSessionRepo()
	ctx := context.Background()

	// Empty slot.
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for empty slot")
	}

	started := time.Now().UTC().Truncate(time.Second)
	pausedAt := started.Add(10 * time.Minute)
	data := ActiveSessionData{
		SessionID:              "abc-123",
		Status:                 "paused",
		PlannedSeconds:         1500,
		StartedAt:              &started,
		CumulativePauseSeconds: 0,
		PauseStartedAt:         &pausedAt,
		PauseCount:             1,
		ElapsedSnapshotSeconds: 600,
		GoalReached:            false,
		WasAgitated:            true,
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil slot")
	}
	if got.SessionID != "abc-123" || got.Status != "paused" {
		t.Errorf("loaded %q/%q, want abc-123/paused", got.SessionID, got.Status)
	}
	if got.PauseStartedAt == nil || !got.PauseStartedAt.Equal(pausedAt) {
		t.Errorf("PauseStartedAt = %v, want %v", got.PauseStartedAt, pausedAt)
	}
	if !got.WasAgitated {
		t.Error("WasAgitated lost in round trip")
	}

	// Overwrite with the pause closed; the pointer field must clear.
	data.Status = "running"
	data.PauseStartedAt = nil
	data.CumulativePauseSeconds = 300
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (update): %v", err)
	}
	if got.PauseStartedAt != nil {
		t.Errorf("PauseStartedAt = %v after clear, want nil", got.PauseStartedAt)
	}
	if got.CumulativePauseSeconds != 300 {
		t.Errorf("CumulativePauseSeconds = %d, want 300", got.CumulativePauseSeconds)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (cleared): %v", err)
	}
	if got != nil {
		t.Fatal("slot not empty after clear")
	}
}

func TestFlowStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.FlowStateRepo()
	ctx := context.Background()

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before first save")
	}

	last := time.Now().UTC().Truncate(time.Second)
	data := FlowStateData{
		ImpressionScore:   52.5,
		TempFlowScore:     -3.25,
		AverageRating:     2.4,
		SessionCount:      9,
		TotalFocusMinutes: 412,
		LastSessionAt:     &last,
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ImpressionScore != 52.5 || got.TempFlowScore != -3.25 {
		t.Errorf("scores = %v/%v, want 52.5/-3.25", got.ImpressionScore, got.TempFlowScore)
	}
	if got.LastSessionAt == nil || !got.LastSessionAt.Equal(last) {
		t.Errorf("LastSessionAt = %v, want %v", got.LastSessionAt, last)
	}

	// Second save updates the singleton, never adds a row.
	data.SessionCount = 10
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	count, err := s.Client().FlowState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("flow state rows = %d, want 1", count)
	}
}

func TestBehaviorDayUpsertAndRange(t *testing.T) {
	s := openTestStore(t)
	repo := s.BehaviorRepo()
	ctx := context.Background()

	days := []BehaviorDayData{
		{Date: "2026-03-08", Present: true, FocusMinutes: 30},
		{Date: "2026-03-09", Present: true, Focused: true, FocusMinutes: 55},
		{Date: "2026-03-10", Present: true, Focused: true, MetGoal: true, FocusMinutes: 70},
	}
	for _, d := range days {
		if err := repo.Upsert(ctx, d); err != nil {
			t.Fatalf("upsert %s: %v", d.Date, err)
		}
	}

	// Upsert the same date again: row count stays, fields update.
	upd := days[1]
	upd.MetGoal = true
	upd.FocusMinutes = 80
	if err := repo.Upsert(ctx, upd); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	got, err := repo.Day(ctx, "2026-03-09")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if !got.MetGoal || got.FocusMinutes != 80 {
		t.Errorf("updated day = %+v", got)
	}

	rng, err := repo.Range(ctx, "2026-03-08", "2026-03-10")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(rng) != 3 {
		t.Fatalf("range returned %d days, want 3", len(rng))
	}
	if rng[0].Date != "2026-03-08" || rng[2].Date != "2026-03-10" {
		t.Errorf("range order wrong: %s .. %s", rng[0].Date, rng[2].Date)
	}

	missing, err := repo.Day(ctx, "2026-03-11")
	if err != nil {
		t.Fatalf("day (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing day")
	}
}

func TestSessionEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rating := 3.0
	started := time.Now().UTC().Truncate(time.Second)
	events := []SessionEventData{
		{SessionID: "s1", Minutes: 25, PlannedMinutes: 25, Rating: &rating, Completed: true, GoalReached: true, StartedAt: started, ClosedOn: "2026-03-09"},
		{SessionID: "s2", Minutes: 10, PlannedMinutes: 25, Completed: false, StartedAt: started, ClosedOn: "2026-03-10"},
		{SessionID: "s3", Minutes: 40, PlannedMinutes: 30, Completed: true, GoalReached: true, StartedAt: started, ClosedOn: "2026-03-10"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.SessionID, err)
		}
	}

	recent, err := repo.RecentSessionEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent returned %d, want 2", len(recent))
	}
	if recent[0].SessionID != "s3" || recent[1].SessionID != "s2" {
		t.Errorf("recent order = %s, %s; want s3, s2", recent[0].SessionID, recent[1].SessionID)
	}
	if recent[1].Rating != nil {
		t.Error("missing rating came back non-nil")
	}

	// Sequences are globally monotonic.
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("sequence not increasing: %d then %d", recent[1].Sequence, recent[0].Sequence)
	}

	onDay, err := repo.SessionEventsOn(ctx, "2026-03-10")
	if err != nil {
		t.Fatalf("on day: %v", err)
	}
	if len(onDay) != 2 {
		t.Fatalf("day query returned %d, want 2", len(onDay))
	}
	if onDay[0].SessionID != "s2" {
		t.Errorf("day order wrong: %s first", onDay[0].SessionID)
	}
	if onDay[1].Rating != nil {
		t.Error("s3 rating should be nil")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"active_sessions", "flow_states", "behavior_days", "session_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
