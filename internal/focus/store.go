package focus

import (
	"context"

	"github.com/ivelina/tendril/internal/store"
)

// StoreSessions is the SQLite-backed SessionStore. Autosaves happen on the
// UI tick, so calls use a background context rather than threading one
// through the machine.
type StoreSessions struct {
	repo store.ActiveSessionRepo
}

// NewStoreSessions wraps the active-session repo.
func NewStoreSessions(repo store.ActiveSessionRepo) *StoreSessions {
	return &StoreSessions{repo: repo}
}

func (s *StoreSessions) SaveActive(sess *Session, m Markers) error {
	data := store.ActiveSessionData{
		SessionID:              sess.ID,
		Status:                 string(sess.Status),
		PlannedSeconds:         sess.PlannedDurationSeconds,
		CumulativePauseSeconds: sess.CumulativePauseSeconds,
		PauseStartedAt:         sess.PauseStartedAt,
		PauseCount:             sess.PauseCount,
		ElapsedSnapshotSeconds: sess.ElapsedSnapshotSeconds,
		GoalReached:            sess.GoalReached,
		WasAgitated:            sess.WasAgitated,
		Reported:               sess.Reported,

		MarkerEnded:             m.Ended,
		SuspectedInterruptionAt: m.SuspectedInterruptionAt,
		LastAutosaveAt:          m.LastAutosaveAt,
	}
	if !sess.StartedAt.IsZero() {
		t := sess.StartedAt
		data.StartedAt = &t
	}
	return s.repo.Save(context.Background(), data)
}

func (s *StoreSessions) LoadActive() (*Session, Markers, error) {
	data, err := s.repo.Load(context.Background())
	if err != nil || data == nil {
		return nil, Markers{}, err
	}

	sess := &Session{
		ID:                     data.SessionID,
		PlannedDurationSeconds: data.PlannedSeconds,
		Status:                 Status(data.Status),
		CumulativePauseSeconds: data.CumulativePauseSeconds,
		PauseStartedAt:         data.PauseStartedAt,
		PauseCount:             data.PauseCount,
		ElapsedSnapshotSeconds: data.ElapsedSnapshotSeconds,
		GoalReached:            data.GoalReached,
		WasAgitated:            data.WasAgitated,
		Reported:               data.Reported,
	}
	if data.StartedAt != nil {
		sess.StartedAt = *data.StartedAt
	}

	markers := Markers{
		Ended:                   data.MarkerEnded,
		SuspectedInterruptionAt: data.SuspectedInterruptionAt,
		LastAutosaveAt:          data.LastAutosaveAt,
	}
	return sess, markers, nil
}

func (s *StoreSessions) ClearActive() error {
	return s.repo.Clear(context.Background())
}
