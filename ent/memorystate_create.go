// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kioku-app/kioku/ent/memorystate"
)

// MemoryStateCreate is the builder for creating a MemoryState entity.
type MemoryStateCreate struct {
	config
	mutation *MemoryStateMutation
	hooks    []Hook
}

// SetUnitID sets the "unit_id" field.
func (_c *MemoryStateCreate) SetUnitID(v string) *MemoryStateCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetFacet sets the "facet" field.
func (_c *MemoryStateCreate) SetFacet(v string) *MemoryStateCreate {
	_c.mutation.SetFacet(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *MemoryStateCreate) SetStage(v string) *MemoryStateCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableStage(v *string) *MemoryStateCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetStability sets the "stability" field.
func (_c *MemoryStateCreate) SetStability(v float64) *MemoryStateCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *MemoryStateCreate) SetIntervalDays(v float64) *MemoryStateCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableIntervalDays(v *float64) *MemoryStateCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *MemoryStateCreate) SetDueAt(v time.Time) *MemoryStateCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *MemoryStateCreate) SetLastReviewedAt(v time.Time) *MemoryStateCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableLastReviewedAt(v *time.Time) *MemoryStateCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetReps sets the "reps" field.
func (_c *MemoryStateCreate) SetReps(v int) *MemoryStateCreate {
	_c.mutation.SetReps(v)
	return _c
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableReps(v *int) *MemoryStateCreate {
	if v != nil {
		_c.SetReps(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *MemoryStateCreate) SetLapses(v int) *MemoryStateCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableLapses(v *int) *MemoryStateCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetLapseStreak sets the "lapse_streak" field.
func (_c *MemoryStateCreate) SetLapseStreak(v int) *MemoryStateCreate {
	_c.mutation.SetLapseStreak(v)
	return _c
}

// SetNillableLapseStreak sets the "lapse_streak" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableLapseStreak(v *int) *MemoryStateCreate {
	if v != nil {
		_c.SetLapseStreak(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemoryStateCreate) SetUpdatedAt(v time.Time) *MemoryStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemoryStateCreate) SetNillableUpdatedAt(v *time.Time) *MemoryStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MemoryStateMutation object of the builder.
func (_c *MemoryStateCreate) Mutation() *MemoryStateMutation {
	return _c.mutation
}

// Save creates the MemoryState in the database.
func (_c *MemoryStateCreate) Save(ctx context.Context) (*MemoryState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryStateCreate) SaveX(ctx context.Context) *MemoryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryStateCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := memorystate.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := memorystate.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Reps(); !ok {
		v := memorystate.DefaultReps
		_c.mutation.SetReps(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := memorystate.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.LapseStreak(); !ok {
		v := memorystate.DefaultLapseStreak
		_c.mutation.SetLapseStreak(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := memorystate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryStateCreate) check() error {
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "MemoryState.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := memorystate.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "MemoryState.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Facet(); !ok {
		return &ValidationError{Name: "facet", err: errors.New(`ent: missing required field "MemoryState.facet"`)}
	}
	if v, ok := _c.mutation.Facet(); ok {
		if err := memorystate.FacetValidator(v); err != nil {
			return &ValidationError{Name: "facet", err: fmt.Errorf(`ent: validator failed for field "MemoryState.facet": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "MemoryState.stage"`)}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "MemoryState.stability"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "MemoryState.interval_days"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "MemoryState.due_at"`)}
	}
	if _, ok := _c.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "MemoryState.reps"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "MemoryState.lapses"`)}
	}
	if _, ok := _c.mutation.LapseStreak(); !ok {
		return &ValidationError{Name: "lapse_streak", err: errors.New(`ent: missing required field "MemoryState.lapse_streak"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MemoryState.updated_at"`)}
	}
	return nil
}

func (_c *MemoryStateCreate) sqlSave(ctx context.Context) (*MemoryState, error) {
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

func (_c *MemoryStateCreate) createSpec() (*MemoryState, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memorystate.Table, sqlgraph.NewFieldSpec(memorystate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(memorystate.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Facet(); ok {
		_spec.SetField(memorystate.FieldFacet, field.TypeString, value)
		_node.Facet = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(memorystate.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(memorystate.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(memorystate.FieldIntervalDays, field.TypeFloat64, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(memorystate.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(memorystate.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.Reps(); ok {
		_spec.SetField(memorystate.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(memorystate.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.LapseStreak(); ok {
		_spec.SetField(memorystate.FieldLapseStreak, field.TypeInt, value)
		_node.LapseStreak = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(memorystate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MemoryStateCreateBulk is the builder for creating many MemoryState entities in bulk.
type MemoryStateCreateBulk struct {
	config
	err      error
	builders []*MemoryStateCreate
}

// Save creates the MemoryState entities in the database.
func (_c *MemoryStateCreateBulk) Save(ctx context.Context) ([]*MemoryState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryStateMutation)
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
func (_c *MemoryStateCreateBulk) SaveX(ctx context.Context) []*MemoryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
