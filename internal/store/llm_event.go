package store

import (
	"context"
	"fmt"

	"github.com/drillwise/drillwise/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	store *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.store.withSchemaRetry(ctx, "append llm request event", func() error {
		_, err := r.store.client.LLMRequestEvent.Create().
			SetProvider(data.Provider).
			SetModel(data.Model).
			SetPurpose(data.Purpose).
			SetInputTokens(data.InputTokens).
			SetOutputTokens(data.OutputTokens).
			SetLatencyMs(data.LatencyMs).
			SetSuccess(data.Success).
			SetErrorMessage(data.ErrorMessage).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save llm request event: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStats, error) {
	events, err := r.store.client.LLMRequestEvent.Query().
		Select(
			llmrequestevent.FieldPurpose,
			llmrequestevent.FieldInputTokens,
			llmrequestevent.FieldOutputTokens,
		).
		All(ctx)
	if err != nil {
		if isSchemaMismatch(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	byPurpose := make(map[string]*UsageStats)
	var order []string
	for _, e := range events {
		st := byPurpose[e.Purpose]
		if st == nil {
			st = &UsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Requests++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
	}

	out := make([]UsageStats, 0, len(order))
	for _, p := range order {
		out = append(out, *byPurpose[p])
	}
	return out, nil
}
