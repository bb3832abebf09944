package drills

import "fmt"

// ParseError reports that the generation collaborator returned something
// this core refuses to let into session state: not JSON, missing the drills
// array, or structurally broken items. It is surfaced to the caller for a
// manual retry, never auto-retried here.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
