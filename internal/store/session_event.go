package store

import (
	"context"
	"fmt"

	"github.com/ivelina/tendril/ent"
	"github.com/ivelina/tendril/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMinutes(data.Minutes).
		SetPlannedMinutes(data.PlannedMinutes).
		SetCompleted(data.Completed).
		SetGoalReached(data.GoalReached).
		SetWasAgitated(data.WasAgitated).
		SetStartedAt(data.StartedAt).
		SetClosedOn(data.ClosedOn)
	if data.Rating != nil {
		builder = builder.SetRating(*data.Rating)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessionEvents(ctx context.Context, limit int) ([]SessionEvent, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent session events: %w", err)
	}
	return sessionEventsFromEnt(rows), nil
}

func (r *eventRepo) SessionEventsOn(ctx context.Context, date string) ([]SessionEvent, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.ClosedOn(date)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events on %s: %w", date, err)
	}
	return sessionEventsFromEnt(rows), nil
}

func sessionEventsFromEnt(rows []*ent.SessionEvent) []SessionEvent {
	out := make([]SessionEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:      row.SessionID,
				Minutes:        row.Minutes,
				PlannedMinutes: row.PlannedMinutes,
				Rating:         row.Rating,
				Completed:      row.Completed,
				GoalReached:    row.GoalReached,
				WasAgitated:    row.WasAgitated,
				StartedAt:      row.StartedAt,
				ClosedOn:       row.ClosedOn,
			},
		})
	}
	return out
}
