// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kioku-app/kioku/ent/lessonbatch"
)

// LessonBatchCreate is the builder for creating a LessonBatch entity.
type LessonBatchCreate struct {
	config
	mutation *LessonBatchMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *LessonBatchCreate) SetBatchID(v string) *LessonBatchCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *LessonBatchCreate) SetLevel(v int) *LessonBatchCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableLevel(v *int) *LessonBatchCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetUnitIds sets the "unit_ids" field.
func (_c *LessonBatchCreate) SetUnitIds(v []string) *LessonBatchCreate {
	_c.mutation.SetUnitIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LessonBatchCreate) SetStatus(v string) *LessonBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableStatus(v *string) *LessonBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedCount sets the "completed_count" field.
func (_c *LessonBatchCreate) SetCompletedCount(v int) *LessonBatchCreate {
	_c.mutation.SetCompletedCount(v)
	return _c
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableCompletedCount(v *int) *LessonBatchCreate {
	if v != nil {
		_c.SetCompletedCount(*v)
	}
	return _c
}

// SetTotalCount sets the "total_count" field.
func (_c *LessonBatchCreate) SetTotalCount(v int) *LessonBatchCreate {
	_c.mutation.SetTotalCount(v)
	return _c
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableTotalCount(v *int) *LessonBatchCreate {
	if v != nil {
		_c.SetTotalCount(*v)
	}
	return _c
}

// SetMistakes sets the "mistakes" field.
func (_c *LessonBatchCreate) SetMistakes(v int) *LessonBatchCreate {
	_c.mutation.SetMistakes(v)
	return _c
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableMistakes(v *int) *LessonBatchCreate {
	if v != nil {
		_c.SetMistakes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonBatchCreate) SetCreatedAt(v time.Time) *LessonBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableCreatedAt(v *time.Time) *LessonBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *LessonBatchCreate) SetFinishedAt(v time.Time) *LessonBatchCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *LessonBatchCreate) SetNillableFinishedAt(v *time.Time) *LessonBatchCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the LessonBatchMutation object of the builder.
func (_c *LessonBatchCreate) Mutation() *LessonBatchMutation {
	return _c.mutation
}

// Save creates the LessonBatch in the database.
func (_c *LessonBatchCreate) Save(ctx context.Context) (*LessonBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonBatchCreate) SaveX(ctx context.Context) *LessonBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonBatchCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := lessonbatch.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lessonbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		v := lessonbatch.DefaultCompletedCount
		_c.mutation.SetCompletedCount(v)
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		v := lessonbatch.DefaultTotalCount
		_c.mutation.SetTotalCount(v)
	}
	if _, ok := _c.mutation.Mistakes(); !ok {
		v := lessonbatch.DefaultMistakes
		_c.mutation.SetMistakes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonBatchCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "LessonBatch.batch_id"`)}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := lessonbatch.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.batch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LessonBatch.level"`)}
	}
	if _, ok := _c.mutation.UnitIds(); !ok {
		return &ValidationError{Name: "unit_ids", err: errors.New(`ent: missing required field "LessonBatch.unit_ids"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LessonBatch.status"`)}
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`ent: missing required field "LessonBatch.completed_count"`)}
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		return &ValidationError{Name: "total_count", err: errors.New(`ent: missing required field "LessonBatch.total_count"`)}
	}
	if _, ok := _c.mutation.Mistakes(); !ok {
		return &ValidationError{Name: "mistakes", err: errors.New(`ent: missing required field "LessonBatch.mistakes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonBatch.created_at"`)}
	}
	return nil
}

func (_c *LessonBatchCreate) sqlSave(ctx context.Context) (*LessonBatch, error) {
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

func (_c *LessonBatchCreate) createSpec() (*LessonBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonbatch.Table, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(lessonbatch.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(lessonbatch.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.UnitIds(); ok {
		_spec.SetField(lessonbatch.FieldUnitIds, field.TypeJSON, value)
		_node.UnitIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lessonbatch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedCount(); ok {
		_spec.SetField(lessonbatch.FieldCompletedCount, field.TypeInt, value)
		_node.CompletedCount = value
	}
	if value, ok := _c.mutation.TotalCount(); ok {
		_spec.SetField(lessonbatch.FieldTotalCount, field.TypeInt, value)
		_node.TotalCount = value
	}
	if value, ok := _c.mutation.Mistakes(); ok {
		_spec.SetField(lessonbatch.FieldMistakes, field.TypeInt, value)
		_node.Mistakes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(lessonbatch.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// LessonBatchCreateBulk is the builder for creating many LessonBatch entities in bulk.
type LessonBatchCreateBulk struct {
	config
	err      error
	builders []*LessonBatchCreate
}

// Save creates the LessonBatch entities in the database.
func (_c *LessonBatchCreateBulk) Save(ctx context.Context) ([]*LessonBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonBatchMutation)
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
func (_c *LessonBatchCreateBulk) SaveX(ctx context.Context) []*LessonBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
