// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
)

// DrillSetSnapshot is the model entity for the DrillSetSnapshot schema.
type DrillSetSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// NicheKey holds the value of the "niche_key" field.
	NicheKey string `json:"niche_key,omitempty"`
	// Struggle holds the value of the "struggle" field.
	Struggle string `json:"struggle,omitempty"`
	// Objective holds the value of the "objective" field.
	Objective string `json:"objective,omitempty"`
	// Practice mode the batch was generated for
	Mode string `json:"mode,omitempty"`
	// Generated drill items as delivered to the session
	Drills json.RawMessage `json:"drills,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillSetSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillsetsnapshot.FieldDrills:
			values[i] = new([]byte)
		case drillsetsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case drillsetsnapshot.FieldUserID, drillsetsnapshot.FieldNicheKey, drillsetsnapshot.FieldStruggle, drillsetsnapshot.FieldObjective, drillsetsnapshot.FieldMode:
			values[i] = new(sql.NullString)
		case drillsetsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillSetSnapshot fields.
func (_m *DrillSetSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillsetsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillsetsnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case drillsetsnapshot.FieldNicheKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field niche_key", values[i])
			} else if value.Valid {
				_m.NicheKey = value.String
			}
		case drillsetsnapshot.FieldStruggle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field struggle", values[i])
			} else if value.Valid {
				_m.Struggle = value.String
			}
		case drillsetsnapshot.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case drillsetsnapshot.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case drillsetsnapshot.FieldDrills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field drills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Drills); err != nil {
					return fmt.Errorf("unmarshal field drills: %w", err)
				}
			}
		case drillsetsnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillSetSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *DrillSetSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillSetSnapshot.
// Note that you need to call DrillSetSnapshot.Unwrap() before calling this method if this DrillSetSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillSetSnapshot) Update() *DrillSetSnapshotUpdateOne {
	return NewDrillSetSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillSetSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillSetSnapshot) Unwrap() *DrillSetSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillSetSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillSetSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("DrillSetSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("niche_key=")
	builder.WriteString(_m.NicheKey)
	builder.WriteString(", ")
	builder.WriteString("struggle=")
	builder.WriteString(_m.Struggle)
	builder.WriteString(", ")
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("drills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Drills))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DrillSetSnapshots is a parsable slice of DrillSetSnapshot.
type DrillSetSnapshots []*DrillSetSnapshot
