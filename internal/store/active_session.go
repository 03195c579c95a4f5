package store

import (
	"context"
	"fmt"

	"github.com/ivelina/tendril/ent"
	"github.com/ivelina/tendril/ent/activesession"
)

// activeSessionRepo implements ActiveSessionRepo using the ent client.
type activeSessionRepo struct {
	client *ent.Client
}

const activeSingletonID = 1

func (r *activeSessionRepo) Save(ctx context.Context, data ActiveSessionData) error {
	existing, err := r.client.ActiveSession.Query().
		Where(activesession.SingletonID(activeSingletonID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query active session: %w", err)
	}

	if existing != nil {
		upd := r.client.ActiveSession.UpdateOne(existing).
			SetSessionID(data.SessionID).
			SetStatus(data.Status).
			SetPlannedSeconds(data.PlannedSeconds).
			SetNillableStartedAt(data.StartedAt).
			SetCumulativePauseSeconds(data.CumulativePauseSeconds).
			SetPauseCount(data.PauseCount).
			SetElapsedSnapshotSeconds(data.ElapsedSnapshotSeconds).
			SetGoalReached(data.GoalReached).
			SetWasAgitated(data.WasAgitated).
			SetReported(data.Reported).
			SetMarkerEnded(data.MarkerEnded)
		if data.PauseStartedAt != nil {
			upd = upd.SetPauseStartedAt(*data.PauseStartedAt)
		} else {
			upd = upd.ClearPauseStartedAt()
		}
		if data.SuspectedInterruptionAt != nil {
			upd = upd.SetSuspectedInterruptionAt(*data.SuspectedInterruptionAt)
		} else {
			upd = upd.ClearSuspectedInterruptionAt()
		}
		if data.LastAutosaveAt != nil {
			upd = upd.SetLastAutosaveAt(*data.LastAutosaveAt)
		} else {
			upd = upd.ClearLastAutosaveAt()
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update active session: %w", err)
		}
		return nil
	}

	_, err = r.client.ActiveSession.Create().
		SetSingletonID(activeSingletonID).
		SetSessionID(data.SessionID).
		SetStatus(data.Status).
		SetPlannedSeconds(data.PlannedSeconds).
		SetNillableStartedAt(data.StartedAt).
		SetCumulativePauseSeconds(data.CumulativePauseSeconds).
		SetNillablePauseStartedAt(data.PauseStartedAt).
		SetPauseCount(data.PauseCount).
		SetElapsedSnapshotSeconds(data.ElapsedSnapshotSeconds).
		SetGoalReached(data.GoalReached).
		SetWasAgitated(data.WasAgitated).
		SetReported(data.Reported).
		SetMarkerEnded(data.MarkerEnded).
		SetNillableSuspectedInterruptionAt(data.SuspectedInterruptionAt).
		SetNillableLastAutosaveAt(data.LastAutosaveAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create active session: %w", err)
	}
	return nil
}

func (r *activeSessionRepo) Load(ctx context.Context) (*ActiveSessionData, error) {
	row, err := r.client.ActiveSession.Query().
		Where(activesession.SingletonID(activeSingletonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load active session: %w", err)
	}

	return &ActiveSessionData{
		SessionID:               row.SessionID,
		Status:                  row.Status,
		PlannedSeconds:          row.PlannedSeconds,
		StartedAt:               row.StartedAt,
		CumulativePauseSeconds:  row.CumulativePauseSeconds,
		PauseStartedAt:          row.PauseStartedAt,
		PauseCount:              row.PauseCount,
		ElapsedSnapshotSeconds:  row.ElapsedSnapshotSeconds,
		GoalReached:             row.GoalReached,
		WasAgitated:             row.WasAgitated,
		Reported:                row.Reported,
		MarkerEnded:             row.MarkerEnded,
		SuspectedInterruptionAt: row.SuspectedInterruptionAt,
		LastAutosaveAt:          row.LastAutosaveAt,
	}, nil
}

func (r *activeSessionRepo) Clear(ctx context.Context) error {
	_, err := r.client.ActiveSession.Delete().
		Where(activesession.SingletonID(activeSingletonID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}
