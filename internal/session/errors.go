package session

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed request field. The
// session is left untouched.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// QuotaError reports that the free-tier daily generation limit is hit.
// The phase is unchanged and no drills are discarded.
type QuotaError struct {
	Limit          int
	CompletedToday int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("free limit reached: %d of %d today", e.CompletedToday, e.Limit)
}

// ErrProfileRequired means the session has no niche context to generate
// against. The phase is unchanged, like a quota block.
var ErrProfileRequired = errors.New("niche profile required before generating drills")

// ErrGenerationSuperseded means a newer generation request took over this
// session while the call was in flight. The stale response was discarded
// and no session state changed.
var ErrGenerationSuperseded = errors.New("generation superseded by a newer request")
