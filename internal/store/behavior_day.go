package store

import (
	"context"
	"fmt"

	"github.com/ivelina/tendril/ent"
	"github.com/ivelina/tendril/ent/behaviorday"
)

// behaviorRepo implements BehaviorRepo using the ent client.
type behaviorRepo struct {
	client *ent.Client
}

func (r *behaviorRepo) Day(ctx context.Context, date string) (*BehaviorDayData, error) {
	row, err := r.client.BehaviorDay.Query().
		Where(behaviorday.Date(date)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load behavior day %s: %w", date, err)
	}
	return behaviorDayFromEnt(row), nil
}

func (r *behaviorRepo) Upsert(ctx context.Context, data BehaviorDayData) error {
	existing, err := r.client.BehaviorDay.Query().
		Where(behaviorday.Date(data.Date)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query behavior day %s: %w", data.Date, err)
	}

	if existing != nil {
		_, err = r.client.BehaviorDay.UpdateOne(existing).
			SetPresent(data.Present).
			SetFocused(data.Focused).
			SetMetGoal(data.MetGoal).
			SetOverGoal(data.OverGoal).
			SetFocusMinutes(data.FocusMinutes).
			SetStreakCounted(data.StreakCounted).
			Save(ctx)
	} else {
		_, err = r.client.BehaviorDay.Create().
			SetDate(data.Date).
			SetPresent(data.Present).
			SetFocused(data.Focused).
			SetMetGoal(data.MetGoal).
			SetOverGoal(data.OverGoal).
			SetFocusMinutes(data.FocusMinutes).
			SetStreakCounted(data.StreakCounted).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert behavior day %s: %w", data.Date, err)
	}
	return nil
}

func (r *behaviorRepo) Range(ctx context.Context, from, to string) ([]BehaviorDayData, error) {
	rows, err := r.client.BehaviorDay.Query().
		Where(behaviorday.DateGTE(from), behaviorday.DateLTE(to)).
		Order(ent.Asc(behaviorday.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("range behavior days %s..%s: %w", from, to, err)
	}

	out := make([]BehaviorDayData, 0, len(rows))
	for _, row := range rows {
		out = append(out, *behaviorDayFromEnt(row))
	}
	return out, nil
}

func behaviorDayFromEnt(row *ent.BehaviorDay) *BehaviorDayData {
	return &BehaviorDayData{
		Date:          row.Date,
		Present:       row.Present,
		Focused:       row.Focused,
		MetGoal:       row.MetGoal,
		OverGoal:      row.OverGoal,
		FocusMinutes:  row.FocusMinutes,
		StreakCounted: row.StreakCounted,
	}
}
