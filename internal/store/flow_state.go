package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ivelina/tendril/ent"
	"github.com/ivelina/tendril/ent/flowstate"
)

// flowStateRepo implements FlowStateRepo using the ent client.
type flowStateRepo struct {
	client *ent.Client
}

const flowSingletonID = 1

func (r *flowStateRepo) Save(ctx context.Context, data FlowStateData) error {
	dataMap, err := flowStateToMap(data)
	if err != nil {
		return fmt.Errorf("marshal flow state: %w", err)
	}

	existing, err := r.client.FlowState.Query().
		Where(flowstate.SingletonID(flowSingletonID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query flow state: %w", err)
	}

	if existing != nil {
		_, err = r.client.FlowState.UpdateOne(existing).
			SetData(dataMap).
			SetUpdatedAt(time.Now()).
			Save(ctx)
	} else {
		_, err = r.client.FlowState.Create().
			SetSingletonID(flowSingletonID).
			SetData(dataMap).
			SetUpdatedAt(time.Now()).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save flow state: %w", err)
	}
	return nil
}

func (r *flowStateRepo) Load(ctx context.Context) (*FlowStateData, error) {
	row, err := r.client.FlowState.Query().
		Where(flowstate.SingletonID(flowSingletonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load flow state: %w", err)
	}
	return mapToFlowState(row.Data)
}

// flowStateToMap converts FlowStateData to map[string]any for ent JSON storage.
func flowStateToMap(data FlowStateData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToFlowState converts the stored JSON map back to FlowStateData.
func mapToFlowState(m map[string]any) (*FlowStateData, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("remarshal flow state: %w", err)
	}
	var data FlowStateData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal flow state: %w", err)
	}
	return &data, nil
}
