package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/drillwise/drillwise/ent"
	"github.com/drillwise/drillwise/ent/practicesession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	store *Store
}

func (r *sessionRepo) GetSession(ctx context.Context, userID, nicheKey string) (json.RawMessage, error) {
	ps, err := r.store.client.PracticeSession.Query().
		Where(
			practicesession.UserID(userID),
			practicesession.NicheKey(nicheKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		// Not-yet-migrated store degrades to "no session yet".
		if isSchemaMismatch(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return ps.Doc, nil
}

func (r *sessionRepo) PutSession(ctx context.Context, userID, nicheKey string, doc json.RawMessage) error {
	return r.store.withSchemaRetry(ctx, "put session", func() error {
		n, err := r.store.client.PracticeSession.Update().
			Where(
				practicesession.UserID(userID),
				practicesession.NicheKey(nicheKey),
			).
			SetDoc(doc).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		if n > 0 {
			return nil
		}

		_, err = r.store.client.PracticeSession.Create().
			SetUserID(userID).
			SetNicheKey(nicheKey).
			SetDoc(doc).
			Save(ctx)
		if err != nil {
			// A concurrent create won the unique index race; retry the
			// update path so last write wins.
			if ent.IsConstraintError(err) {
				_, uerr := r.store.client.PracticeSession.Update().
					Where(
						practicesession.UserID(userID),
						practicesession.NicheKey(nicheKey),
					).
					SetDoc(doc).
					Save(ctx)
				if uerr != nil {
					return fmt.Errorf("update session after create race: %w", uerr)
				}
				return nil
			}
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
}
