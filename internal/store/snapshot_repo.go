package store

import (
	"context"
	"fmt"
	"time"

	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	store *Store
}

func (r *snapshotRepo) Append(ctx context.Context, data DrillSetSnapshotData) error {
	return r.store.withSchemaRetry(ctx, "append drill set snapshot", func() error {
		_, err := r.store.client.DrillSetSnapshot.Create().
			SetUserID(data.UserID).
			SetNicheKey(data.NicheKey).
			SetStruggle(data.Struggle).
			SetObjective(data.Objective).
			SetMode(data.Mode).
			SetDrills(data.Drills).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save drill set snapshot: %w", err)
		}
		return nil
	})
}

func (r *snapshotRepo) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	n, err := r.store.client.DrillSetSnapshot.Query().
		Where(
			drillsetsnapshot.UserID(userID),
			drillsetsnapshot.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		if isSchemaMismatch(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count drill set snapshots: %w", err)
	}
	return n, nil
}
