package store

import (
	"context"
	"fmt"

	"github.com/drillwise/drillwise/ent"
	"github.com/drillwise/drillwise/ent/progressevent"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	store *Store
}

func (r *progressRepo) InsertIfAbsent(ctx context.Context, data ProgressEventData) error {
	return r.store.withSchemaRetry(ctx, "insert progress event", func() error {
		_, err := r.store.client.ProgressEvent.Create().
			SetClientCompletionID(data.ClientCompletionID).
			SetUserID(data.UserID).
			SetNiche(data.Niche).
			SetCustomNiche(data.CustomNiche).
			Save(ctx)
		if err != nil {
			// The unique index on client_completion_id is the idempotency
			// enforcement point: a duplicate insert is a success.
			if ent.IsConstraintError(err) {
				return nil
			}
			return fmt.Errorf("insert progress event: %w", err)
		}
		return nil
	})
}

func (r *progressRepo) Count(ctx context.Context, userID, niche, customNiche string) (int, error) {
	n, err := r.store.client.ProgressEvent.Query().
		Where(
			progressevent.UserID(userID),
			progressevent.Niche(niche),
			progressevent.CustomNiche(customNiche),
		).
		Count(ctx)
	if err != nil {
		if isSchemaMismatch(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count progress events: %w", err)
	}
	return n, nil
}
