package store

import (
	"context"
	"strings"
)

// isSchemaMismatch reports whether the error looks like a missing table or
// column — the "not yet migrated" case the adapter must tolerate.
func isSchemaMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "has no column named")
}

// withSchemaRetry runs a write. On a schema mismatch it applies the ent
// migration once (idempotent) and retries the write once. Any remaining
// failure is wrapped as ErrDegraded.
func (s *Store) withSchemaRetry(ctx context.Context, op string, fn func() error) error {
	err := fn()
	if err == nil || !isSchemaMismatch(err) {
		return err
	}

	if mErr := s.client.Schema.Create(ctx); mErr != nil {
		return &ErrDegraded{Op: op, Err: mErr}
	}

	if err := fn(); err != nil {
		return &ErrDegraded{Op: op, Err: err}
	}
	return nil
}
