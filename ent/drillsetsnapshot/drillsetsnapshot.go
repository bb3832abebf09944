// Code generated by ent, DO NOT EDIT.

package drillsetsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillsetsnapshot type in the database.
	Label = "drill_set_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldNicheKey holds the string denoting the niche_key field in the database.
	FieldNicheKey = "niche_key"
	// FieldStruggle holds the string denoting the struggle field in the database.
	FieldStruggle = "struggle"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldDrills holds the string denoting the drills field in the database.
	FieldDrills = "drills"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the drillsetsnapshot in the database.
	Table = "drill_set_snapshots"
)

// Columns holds all SQL columns for drillsetsnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldNicheKey,
	FieldStruggle,
	FieldObjective,
	FieldMode,
	FieldDrills,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// NicheKeyValidator is a validator for the "niche_key" field. It is called by the builders before save.
	NicheKeyValidator func(string) error
	// DefaultStruggle holds the default value on creation for the "struggle" field.
	DefaultStruggle string
	// DefaultObjective holds the default value on creation for the "objective" field.
	DefaultObjective string
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DrillSetSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByNicheKey orders the results by the niche_key field.
func ByNicheKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNicheKey, opts...).ToFunc()
}

// ByStruggle orders the results by the struggle field.
func ByStruggle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStruggle, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
