// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drillwise/drillwise/ent/drillsetsnapshot"
)

// DrillSetSnapshotCreate is the builder for creating a DrillSetSnapshot entity.
type DrillSetSnapshotCreate struct {
	config
	mutation *DrillSetSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DrillSetSnapshotCreate) SetUserID(v string) *DrillSetSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNicheKey sets the "niche_key" field.
func (_c *DrillSetSnapshotCreate) SetNicheKey(v string) *DrillSetSnapshotCreate {
	_c.mutation.SetNicheKey(v)
	return _c
}

// SetStruggle sets the "struggle" field.
func (_c *DrillSetSnapshotCreate) SetStruggle(v string) *DrillSetSnapshotCreate {
	_c.mutation.SetStruggle(v)
	return _c
}

// SetNillableStruggle sets the "struggle" field if the given value is not nil.
func (_c *DrillSetSnapshotCreate) SetNillableStruggle(v *string) *DrillSetSnapshotCreate {
	if v != nil {
		_c.SetStruggle(*v)
	}
	return _c
}

// SetObjective sets the "objective" field.
func (_c *DrillSetSnapshotCreate) SetObjective(v string) *DrillSetSnapshotCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_c *DrillSetSnapshotCreate) SetNillableObjective(v *string) *DrillSetSnapshotCreate {
	if v != nil {
		_c.SetObjective(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *DrillSetSnapshotCreate) SetMode(v string) *DrillSetSnapshotCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetDrills sets the "drills" field.
func (_c *DrillSetSnapshotCreate) SetDrills(v json.RawMessage) *DrillSetSnapshotCreate {
	_c.mutation.SetDrills(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DrillSetSnapshotCreate) SetCreatedAt(v time.Time) *DrillSetSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DrillSetSnapshotCreate) SetNillableCreatedAt(v *time.Time) *DrillSetSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the DrillSetSnapshotMutation object of the builder.
func (_c *DrillSetSnapshotCreate) Mutation() *DrillSetSnapshotMutation {
	return _c.mutation
}

// Save creates the DrillSetSnapshot in the database.
func (_c *DrillSetSnapshotCreate) Save(ctx context.Context) (*DrillSetSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillSetSnapshotCreate) SaveX(ctx context.Context) *DrillSetSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillSetSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillSetSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillSetSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Struggle(); !ok {
		v := drillsetsnapshot.DefaultStruggle
		_c.mutation.SetStruggle(v)
	}
	if _, ok := _c.mutation.Objective(); !ok {
		v := drillsetsnapshot.DefaultObjective
		_c.mutation.SetObjective(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := drillsetsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillSetSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DrillSetSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := drillsetsnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DrillSetSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NicheKey(); !ok {
		return &ValidationError{Name: "niche_key", err: errors.New(`ent: missing required field "DrillSetSnapshot.niche_key"`)}
	}
	if v, ok := _c.mutation.NicheKey(); ok {
		if err := drillsetsnapshot.NicheKeyValidator(v); err != nil {
			return &ValidationError{Name: "niche_key", err: fmt.Errorf(`ent: validator failed for field "DrillSetSnapshot.niche_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Struggle(); !ok {
		return &ValidationError{Name: "struggle", err: errors.New(`ent: missing required field "DrillSetSnapshot.struggle"`)}
	}
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "DrillSetSnapshot.objective"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "DrillSetSnapshot.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := drillsetsnapshot.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DrillSetSnapshot.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Drills(); !ok {
		return &ValidationError{Name: "drills", err: errors.New(`ent: missing required field "DrillSetSnapshot.drills"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DrillSetSnapshot.created_at"`)}
	}
	return nil
}

func (_c *DrillSetSnapshotCreate) sqlSave(ctx context.Context) (*DrillSetSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillSetSnapshotCreate) createSpec() (*DrillSetSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillSetSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillsetsnapshot.Table, sqlgraph.NewFieldSpec(drillsetsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(drillsetsnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.NicheKey(); ok {
		_spec.SetField(drillsetsnapshot.FieldNicheKey, field.TypeString, value)
		_node.NicheKey = value
	}
	if value, ok := _c.mutation.Struggle(); ok {
		_spec.SetField(drillsetsnapshot.FieldStruggle, field.TypeString, value)
		_node.Struggle = value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(drillsetsnapshot.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(drillsetsnapshot.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Drills(); ok {
		_spec.SetField(drillsetsnapshot.FieldDrills, field.TypeJSON, value)
		_node.Drills = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(drillsetsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DrillSetSnapshotCreateBulk is the builder for creating many DrillSetSnapshot entities in bulk.
type DrillSetSnapshotCreateBulk struct {
	config
	err      error
	builders []*DrillSetSnapshotCreate
}

// Save creates the DrillSetSnapshot entities in the database.
func (_c *DrillSetSnapshotCreateBulk) Save(ctx context.Context) ([]*DrillSetSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillSetSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillSetSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrillSetSnapshotCreateBulk) SaveX(ctx context.Context) []*DrillSetSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillSetSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillSetSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
