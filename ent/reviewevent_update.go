// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kioku-app/kioku/ent/predicate"
	"github.com/kioku-app/kioku/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ReviewEventUpdate) SetUnitID(v string) *ReviewEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableUnitID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFacet sets the "facet" field.
func (_u *ReviewEventUpdate) SetFacet(v string) *ReviewEventUpdate {
	_u.mutation.SetFacet(v)
	return _u
}

// SetNillableFacet sets the "facet" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableFacet(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetFacet(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ReviewEventUpdate) SetBatchID(v string) *ReviewEventUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableBatchID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdate) SetRating(v string) *ReviewEventUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRating(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ReviewEventUpdate) SetPassed(v bool) *ReviewEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillablePassed(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetStageBefore sets the "stage_before" field.
func (_u *ReviewEventUpdate) SetStageBefore(v string) *ReviewEventUpdate {
	_u.mutation.SetStageBefore(v)
	return _u
}

// SetNillableStageBefore sets the "stage_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageBefore(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageBefore(*v)
	}
	return _u
}

// SetStageAfter sets the "stage_after" field.
func (_u *ReviewEventUpdate) SetStageAfter(v string) *ReviewEventUpdate {
	_u.mutation.SetStageAfter(v)
	return _u
}

// SetNillableStageAfter sets the "stage_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageAfter(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageAfter(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v float64) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v float64) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEventUpdate) SetDueAt(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDueAt(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := reviewevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Facet(); ok {
		if err := reviewevent.FacetValidator(v); err != nil {
			return &ValidationError{Name: "facet", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.facet": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(reviewevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Facet(); ok {
		_spec.SetField(reviewevent.FieldFacet, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(reviewevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(reviewevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StageBefore(); ok {
		_spec.SetField(reviewevent.FieldStageBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageAfter(); ok {
		_spec.SetField(reviewevent.FieldStageAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewevent.FieldDueAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *ReviewEventUpdateOne) SetUnitID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableUnitID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFacet sets the "facet" field.
func (_u *ReviewEventUpdateOne) SetFacet(v string) *ReviewEventUpdateOne {
	_u.mutation.SetFacet(v)
	return _u
}

// SetNillableFacet sets the "facet" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableFacet(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetFacet(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ReviewEventUpdateOne) SetBatchID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableBatchID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdateOne) SetRating(v string) *ReviewEventUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRating(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ReviewEventUpdateOne) SetPassed(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillablePassed(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetStageBefore sets the "stage_before" field.
func (_u *ReviewEventUpdateOne) SetStageBefore(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStageBefore(v)
	return _u
}

// SetNillableStageBefore sets the "stage_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageBefore(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageBefore(*v)
	}
	return _u
}

// SetStageAfter sets the "stage_after" field.
func (_u *ReviewEventUpdateOne) SetStageAfter(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStageAfter(v)
	return _u
}

// SetNillableStageAfter sets the "stage_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageAfter(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageAfter(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEventUpdateOne) SetDueAt(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDueAt(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := reviewevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Facet(); ok {
		if err := reviewevent.FacetValidator(v); err != nil {
			return &ValidationError{Name: "facet", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.facet": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(reviewevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Facet(); ok {
		_spec.SetField(reviewevent.FieldFacet, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(reviewevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(reviewevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StageBefore(); ok {
		_spec.SetField(reviewevent.FieldStageBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageAfter(); ok {
		_spec.SetField(reviewevent.FieldStageAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewevent.FieldDueAt, field.TypeTime, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
