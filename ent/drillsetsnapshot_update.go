// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
	"github.com/drillwise/drillwise/ent/predicate"
)

// DrillSetSnapshotUpdate is the builder for updating DrillSetSnapshot entities.
type DrillSetSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *DrillSetSnapshotMutation
}

// Where appends a list predicates to the DrillSetSnapshotUpdate builder.
func (_u *DrillSetSnapshotUpdate) Where(ps ...predicate.DrillSetSnapshot) *DrillSetSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDrills sets the "drills" field.
func (_u *DrillSetSnapshotUpdate) SetDrills(v json.RawMessage) *DrillSetSnapshotUpdate {
	_u.mutation.SetDrills(v)
	return _u
}

// AppendDrills appends value to the "drills" field.
func (_u *DrillSetSnapshotUpdate) AppendDrills(v json.RawMessage) *DrillSetSnapshotUpdate {
	_u.mutation.AppendDrills(v)
	return _u
}

// Mutation returns the DrillSetSnapshotMutation object of the builder.
func (_u *DrillSetSnapshotUpdate) Mutation() *DrillSetSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillSetSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillSetSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillSetSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillSetSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DrillSetSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(drillsetsnapshot.Table, drillsetsnapshot.Columns, sqlgraph.NewFieldSpec(drillsetsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Drills(); ok {
		_spec.SetField(drillsetsnapshot.FieldDrills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDrills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drillsetsnapshot.FieldDrills, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillsetsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillSetSnapshotUpdateOne is the builder for updating a single DrillSetSnapshot entity.
type DrillSetSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillSetSnapshotMutation
}

// SetDrills sets the "drills" field.
func (_u *DrillSetSnapshotUpdateOne) SetDrills(v json.RawMessage) *DrillSetSnapshotUpdateOne {
	_u.mutation.SetDrills(v)
	return _u
}

// AppendDrills appends value to the "drills" field.
func (_u *DrillSetSnapshotUpdateOne) AppendDrills(v json.RawMessage) *DrillSetSnapshotUpdateOne {
	_u.mutation.AppendDrills(v)
	return _u
}

// Mutation returns the DrillSetSnapshotMutation object of the builder.
func (_u *DrillSetSnapshotUpdateOne) Mutation() *DrillSetSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillSetSnapshotUpdate builder.
func (_u *DrillSetSnapshotUpdateOne) Where(ps ...predicate.DrillSetSnapshot) *DrillSetSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillSetSnapshotUpdateOne) Select(field string, fields ...string) *DrillSetSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillSetSnapshot entity.
func (_u *DrillSetSnapshotUpdateOne) Save(ctx context.Context) (*DrillSetSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillSetSnapshotUpdateOne) SaveX(ctx context.Context) *DrillSetSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillSetSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillSetSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DrillSetSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *DrillSetSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(drillsetsnapshot.Table, drillsetsnapshot.Columns, sqlgraph.NewFieldSpec(drillsetsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillSetSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillsetsnapshot.FieldID)
		for _, f := range fields {
			if !drillsetsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillsetsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Drills(); ok {
		_spec.SetField(drillsetsnapshot.FieldDrills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDrills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drillsetsnapshot.FieldDrills, value)
		})
	}
	_node = &DrillSetSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillsetsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
