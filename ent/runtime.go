// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
	"github.com/drillwise/drillwise/ent/llmrequestevent"
	"github.com/drillwise/drillwise/ent/practicesession"
	"github.com/drillwise/drillwise/ent/progressevent"
	"github.com/drillwise/drillwise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drillsetsnapshotFields := schema.DrillSetSnapshot{}.Fields()
	_ = drillsetsnapshotFields
	// drillsetsnapshotDescUserID is the schema descriptor for user_id field.
	drillsetsnapshotDescUserID := drillsetsnapshotFields[0].Descriptor()
	// drillsetsnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	drillsetsnapshot.UserIDValidator = drillsetsnapshotDescUserID.Validators[0].(func(string) error)
	// drillsetsnapshotDescNicheKey is the schema descriptor for niche_key field.
	drillsetsnapshotDescNicheKey := drillsetsnapshotFields[1].Descriptor()
	// drillsetsnapshot.NicheKeyValidator is a validator for the "niche_key" field. It is called by the builders before save.
	drillsetsnapshot.NicheKeyValidator = drillsetsnapshotDescNicheKey.Validators[0].(func(string) error)
	// drillsetsnapshotDescStruggle is the schema descriptor for struggle field.
	drillsetsnapshotDescStruggle := drillsetsnapshotFields[2].Descriptor()
	// drillsetsnapshot.DefaultStruggle holds the default value on creation for the struggle field.
	drillsetsnapshot.DefaultStruggle = drillsetsnapshotDescStruggle.Default.(string)
	// drillsetsnapshotDescObjective is the schema descriptor for objective field.
	drillsetsnapshotDescObjective := drillsetsnapshotFields[3].Descriptor()
	// drillsetsnapshot.DefaultObjective holds the default value on creation for the objective field.
	drillsetsnapshot.DefaultObjective = drillsetsnapshotDescObjective.Default.(string)
	// drillsetsnapshotDescMode is the schema descriptor for mode field.
	drillsetsnapshotDescMode := drillsetsnapshotFields[4].Descriptor()
	// drillsetsnapshot.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	drillsetsnapshot.ModeValidator = drillsetsnapshotDescMode.Validators[0].(func(string) error)
	// drillsetsnapshotDescCreatedAt is the schema descriptor for created_at field.
	drillsetsnapshotDescCreatedAt := drillsetsnapshotFields[6].Descriptor()
	// drillsetsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	drillsetsnapshot.DefaultCreatedAt = drillsetsnapshotDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescUserID is the schema descriptor for user_id field.
	practicesessionDescUserID := practicesessionFields[0].Descriptor()
	// practicesession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practicesession.UserIDValidator = practicesessionDescUserID.Validators[0].(func(string) error)
	// practicesessionDescNicheKey is the schema descriptor for niche_key field.
	practicesessionDescNicheKey := practicesessionFields[1].Descriptor()
	// practicesession.NicheKeyValidator is a validator for the "niche_key" field. It is called by the builders before save.
	practicesession.NicheKeyValidator = practicesessionDescNicheKey.Validators[0].(func(string) error)
	// practicesessionDescUpdatedAt is the schema descriptor for updated_at field.
	practicesessionDescUpdatedAt := practicesessionFields[3].Descriptor()
	// practicesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicesession.DefaultUpdatedAt = practicesessionDescUpdatedAt.Default.(func() time.Time)
	// practicesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicesession.UpdateDefaultUpdatedAt = practicesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescClientCompletionID is the schema descriptor for client_completion_id field.
	progresseventDescClientCompletionID := progresseventFields[0].Descriptor()
	// progressevent.ClientCompletionIDValidator is a validator for the "client_completion_id" field. It is called by the builders before save.
	progressevent.ClientCompletionIDValidator = progresseventDescClientCompletionID.Validators[0].(func(string) error)
	// progresseventDescUserID is the schema descriptor for user_id field.
	progresseventDescUserID := progresseventFields[1].Descriptor()
	// progressevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressevent.UserIDValidator = progresseventDescUserID.Validators[0].(func(string) error)
	// progresseventDescNiche is the schema descriptor for niche field.
	progresseventDescNiche := progresseventFields[2].Descriptor()
	// progressevent.NicheValidator is a validator for the "niche" field. It is called by the builders before save.
	progressevent.NicheValidator = progresseventDescNiche.Validators[0].(func(string) error)
	// progresseventDescCustomNiche is the schema descriptor for custom_niche field.
	progresseventDescCustomNiche := progresseventFields[3].Descriptor()
	// progressevent.DefaultCustomNiche holds the default value on creation for the custom_niche field.
	progressevent.DefaultCustomNiche = progresseventDescCustomNiche.Default.(string)
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventFields[4].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
}
