// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientCompletionID holds the string denoting the client_completion_id field in the database.
	FieldClientCompletionID = "client_completion_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldNiche holds the string denoting the niche field in the database.
	FieldNiche = "niche"
	// FieldCustomNiche holds the string denoting the custom_niche field in the database.
	FieldCustomNiche = "custom_niche"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldClientCompletionID,
	FieldUserID,
	FieldNiche,
	FieldCustomNiche,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ClientCompletionIDValidator is a validator for the "client_completion_id" field. It is called by the builders before save.
	ClientCompletionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// NicheValidator is a validator for the "niche" field. It is called by the builders before save.
	NicheValidator func(string) error
	// DefaultCustomNiche holds the default value on creation for the "custom_niche" field.
	DefaultCustomNiche string
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the ProgressEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientCompletionID orders the results by the client_completion_id field.
func ByClientCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientCompletionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByNiche orders the results by the niche field.
func ByNiche(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNiche, opts...).ToFunc()
}

// ByCustomNiche orders the results by the custom_niche field.
func ByCustomNiche(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomNiche, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
