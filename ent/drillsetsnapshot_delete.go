// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
	"github.com/drillwise/drillwise/ent/predicate"
)

// DrillSetSnapshotDelete is the builder for deleting a DrillSetSnapshot entity.
type DrillSetSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *DrillSetSnapshotMutation
}

// Where appends a list predicates to the DrillSetSnapshotDelete builder.
func (_d *DrillSetSnapshotDelete) Where(ps ...predicate.DrillSetSnapshot) *DrillSetSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DrillSetSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillSetSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DrillSetSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(drillsetsnapshot.Table, sqlgraph.NewFieldSpec(drillsetsnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DrillSetSnapshotDeleteOne is the builder for deleting a single DrillSetSnapshot entity.
type DrillSetSnapshotDeleteOne struct {
	_d *DrillSetSnapshotDelete
}

// Where appends a list predicates to the DrillSetSnapshotDelete builder.
func (_d *DrillSetSnapshotDeleteOne) Where(ps ...predicate.DrillSetSnapshot) *DrillSetSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DrillSetSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{drillsetsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillSetSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
