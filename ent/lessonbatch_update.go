// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kioku-app/kioku/ent/lessonbatch"
	"github.com/kioku-app/kioku/ent/predicate"
)

// LessonBatchUpdate is the builder for updating LessonBatch entities.
type LessonBatchUpdate struct {
	config
	hooks    []Hook
	mutation *LessonBatchMutation
}

// Where appends a list predicates to the LessonBatchUpdate builder.
func (_u *LessonBatchUpdate) Where(ps ...predicate.LessonBatch) *LessonBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *LessonBatchUpdate) SetBatchID(v string) *LessonBatchUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableBatchID(v *string) *LessonBatchUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonBatchUpdate) SetLevel(v int) *LessonBatchUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableLevel(v *int) *LessonBatchUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LessonBatchUpdate) AddLevel(v int) *LessonBatchUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetUnitIds sets the "unit_ids" field.
func (_u *LessonBatchUpdate) SetUnitIds(v []string) *LessonBatchUpdate {
	_u.mutation.SetUnitIds(v)
	return _u
}

// AppendUnitIds appends value to the "unit_ids" field.
func (_u *LessonBatchUpdate) AppendUnitIds(v []string) *LessonBatchUpdate {
	_u.mutation.AppendUnitIds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonBatchUpdate) SetStatus(v string) *LessonBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableStatus(v *string) *LessonBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *LessonBatchUpdate) SetCompletedCount(v int) *LessonBatchUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableCompletedCount(v *int) *LessonBatchUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *LessonBatchUpdate) AddCompletedCount(v int) *LessonBatchUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *LessonBatchUpdate) SetTotalCount(v int) *LessonBatchUpdate {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableTotalCount(v *int) *LessonBatchUpdate {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *LessonBatchUpdate) AddTotalCount(v int) *LessonBatchUpdate {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *LessonBatchUpdate) SetMistakes(v int) *LessonBatchUpdate {
	_u.mutation.ResetMistakes()
	_u.mutation.SetMistakes(v)
	return _u
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableMistakes(v *int) *LessonBatchUpdate {
	if v != nil {
		_u.SetMistakes(*v)
	}
	return _u
}

// AddMistakes adds value to the "mistakes" field.
func (_u *LessonBatchUpdate) AddMistakes(v int) *LessonBatchUpdate {
	_u.mutation.AddMistakes(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *LessonBatchUpdate) SetFinishedAt(v time.Time) *LessonBatchUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *LessonBatchUpdate) SetNillableFinishedAt(v *time.Time) *LessonBatchUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *LessonBatchUpdate) ClearFinishedAt() *LessonBatchUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the LessonBatchMutation object of the builder.
func (_u *LessonBatchUpdate) Mutation() *LessonBatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonBatchUpdate) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := lessonbatch.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonbatch.Table, lessonbatch.Columns, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(lessonbatch.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonbatch.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(lessonbatch.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitIds(); ok {
		_spec.SetField(lessonbatch.FieldUnitIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnitIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonbatch.FieldUnitIds, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lessonbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(lessonbatch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(lessonbatch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(lessonbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(lessonbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(lessonbatch.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakes(); ok {
		_spec.AddField(lessonbatch.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(lessonbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(lessonbatch.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonBatchUpdateOne is the builder for updating a single LessonBatch entity.
type LessonBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonBatchMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *LessonBatchUpdateOne) SetBatchID(v string) *LessonBatchUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableBatchID(v *string) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LessonBatchUpdateOne) SetLevel(v int) *LessonBatchUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableLevel(v *int) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LessonBatchUpdateOne) AddLevel(v int) *LessonBatchUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetUnitIds sets the "unit_ids" field.
func (_u *LessonBatchUpdateOne) SetUnitIds(v []string) *LessonBatchUpdateOne {
	_u.mutation.SetUnitIds(v)
	return _u
}

// AppendUnitIds appends value to the "unit_ids" field.
func (_u *LessonBatchUpdateOne) AppendUnitIds(v []string) *LessonBatchUpdateOne {
	_u.mutation.AppendUnitIds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonBatchUpdateOne) SetStatus(v string) *LessonBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableStatus(v *string) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *LessonBatchUpdateOne) SetCompletedCount(v int) *LessonBatchUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableCompletedCount(v *int) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *LessonBatchUpdateOne) AddCompletedCount(v int) *LessonBatchUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *LessonBatchUpdateOne) SetTotalCount(v int) *LessonBatchUpdateOne {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableTotalCount(v *int) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *LessonBatchUpdateOne) AddTotalCount(v int) *LessonBatchUpdateOne {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *LessonBatchUpdateOne) SetMistakes(v int) *LessonBatchUpdateOne {
	_u.mutation.ResetMistakes()
	_u.mutation.SetMistakes(v)
	return _u
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableMistakes(v *int) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetMistakes(*v)
	}
	return _u
}

// AddMistakes adds value to the "mistakes" field.
func (_u *LessonBatchUpdateOne) AddMistakes(v int) *LessonBatchUpdateOne {
	_u.mutation.AddMistakes(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *LessonBatchUpdateOne) SetFinishedAt(v time.Time) *LessonBatchUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *LessonBatchUpdateOne) SetNillableFinishedAt(v *time.Time) *LessonBatchUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *LessonBatchUpdateOne) ClearFinishedAt() *LessonBatchUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the LessonBatchMutation object of the builder.
func (_u *LessonBatchUpdateOne) Mutation() *LessonBatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonBatchUpdate builder.
func (_u *LessonBatchUpdateOne) Where(ps ...predicate.LessonBatch) *LessonBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonBatchUpdateOne) Select(field string, fields ...string) *LessonBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonBatch entity.
func (_u *LessonBatchUpdateOne) Save(ctx context.Context) (*LessonBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonBatchUpdateOne) SaveX(ctx context.Context) *LessonBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonBatchUpdateOne) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := lessonbatch.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonBatchUpdateOne) sqlSave(ctx context.Context) (_node *LessonBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonbatch.Table, lessonbatch.Columns, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonbatch.FieldID)
		for _, f := range fields {
			if !lessonbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonbatch.FieldID {
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
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(lessonbatch.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(lessonbatch.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(lessonbatch.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitIds(); ok {
		_spec.SetField(lessonbatch.FieldUnitIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnitIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonbatch.FieldUnitIds, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lessonbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(lessonbatch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(lessonbatch.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(lessonbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(lessonbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(lessonbatch.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakes(); ok {
		_spec.AddField(lessonbatch.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(lessonbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(lessonbatch.FieldFinishedAt, field.TypeTime)
	}
	_node = &LessonBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
