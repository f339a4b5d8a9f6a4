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
	"github.com/kioku-app/kioku/ent/memorystate"
	"github.com/kioku-app/kioku/ent/predicate"
)

// MemoryStateUpdate is the builder for updating MemoryState entities.
type MemoryStateUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryStateMutation
}

// Where appends a list predicates to the MemoryStateUpdate builder.
func (_u *MemoryStateUpdate) Where(ps ...predicate.MemoryState) *MemoryStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *MemoryStateUpdate) SetUnitID(v string) *MemoryStateUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableUnitID(v *string) *MemoryStateUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFacet sets the "facet" field.
func (_u *MemoryStateUpdate) SetFacet(v string) *MemoryStateUpdate {
	_u.mutation.SetFacet(v)
	return _u
}

// SetNillableFacet sets the "facet" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableFacet(v *string) *MemoryStateUpdate {
	if v != nil {
		_u.SetFacet(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *MemoryStateUpdate) SetStage(v string) *MemoryStateUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableStage(v *string) *MemoryStateUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *MemoryStateUpdate) SetStability(v float64) *MemoryStateUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableStability(v *float64) *MemoryStateUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *MemoryStateUpdate) AddStability(v float64) *MemoryStateUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MemoryStateUpdate) SetIntervalDays(v float64) *MemoryStateUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableIntervalDays(v *float64) *MemoryStateUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MemoryStateUpdate) AddIntervalDays(v float64) *MemoryStateUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *MemoryStateUpdate) SetDueAt(v time.Time) *MemoryStateUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableDueAt(v *time.Time) *MemoryStateUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MemoryStateUpdate) SetLastReviewedAt(v time.Time) *MemoryStateUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableLastReviewedAt(v *time.Time) *MemoryStateUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *MemoryStateUpdate) ClearLastReviewedAt() *MemoryStateUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReps sets the "reps" field.
func (_u *MemoryStateUpdate) SetReps(v int) *MemoryStateUpdate {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableReps(v *int) *MemoryStateUpdate {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *MemoryStateUpdate) AddReps(v int) *MemoryStateUpdate {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *MemoryStateUpdate) SetLapses(v int) *MemoryStateUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableLapses(v *int) *MemoryStateUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *MemoryStateUpdate) AddLapses(v int) *MemoryStateUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetLapseStreak sets the "lapse_streak" field.
func (_u *MemoryStateUpdate) SetLapseStreak(v int) *MemoryStateUpdate {
	_u.mutation.ResetLapseStreak()
	_u.mutation.SetLapseStreak(v)
	return _u
}

// SetNillableLapseStreak sets the "lapse_streak" field if the given value is not nil.
func (_u *MemoryStateUpdate) SetNillableLapseStreak(v *int) *MemoryStateUpdate {
	if v != nil {
		_u.SetLapseStreak(*v)
	}
	return _u
}

// AddLapseStreak adds value to the "lapse_streak" field.
func (_u *MemoryStateUpdate) AddLapseStreak(v int) *MemoryStateUpdate {
	_u.mutation.AddLapseStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryStateUpdate) SetUpdatedAt(v time.Time) *MemoryStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryStateMutation object of the builder.
func (_u *MemoryStateUpdate) Mutation() *MemoryStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memorystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryStateUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := memorystate.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "MemoryState.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Facet(); ok {
		if err := memorystate.FacetValidator(v); err != nil {
			return &ValidationError{Name: "facet", err: fmt.Errorf(`ent: validator failed for field "MemoryState.facet": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memorystate.Table, memorystate.Columns, sqlgraph.NewFieldSpec(memorystate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(memorystate.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Facet(); ok {
		_spec.SetField(memorystate.FieldFacet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(memorystate.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(memorystate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(memorystate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(memorystate.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(memorystate.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(memorystate.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(memorystate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(memorystate.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(memorystate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(memorystate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(memorystate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(memorystate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LapseStreak(); ok {
		_spec.SetField(memorystate.FieldLapseStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapseStreak(); ok {
		_spec.AddField(memorystate.FieldLapseStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memorystate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryStateUpdateOne is the builder for updating a single MemoryState entity.
type MemoryStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryStateMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *MemoryStateUpdateOne) SetUnitID(v string) *MemoryStateUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableUnitID(v *string) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFacet sets the "facet" field.
func (_u *MemoryStateUpdateOne) SetFacet(v string) *MemoryStateUpdateOne {
	_u.mutation.SetFacet(v)
	return _u
}

// SetNillableFacet sets the "facet" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableFacet(v *string) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetFacet(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *MemoryStateUpdateOne) SetStage(v string) *MemoryStateUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableStage(v *string) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *MemoryStateUpdateOne) SetStability(v float64) *MemoryStateUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableStability(v *float64) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *MemoryStateUpdateOne) AddStability(v float64) *MemoryStateUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MemoryStateUpdateOne) SetIntervalDays(v float64) *MemoryStateUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableIntervalDays(v *float64) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MemoryStateUpdateOne) AddIntervalDays(v float64) *MemoryStateUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *MemoryStateUpdateOne) SetDueAt(v time.Time) *MemoryStateUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableDueAt(v *time.Time) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MemoryStateUpdateOne) SetLastReviewedAt(v time.Time) *MemoryStateUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableLastReviewedAt(v *time.Time) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *MemoryStateUpdateOne) ClearLastReviewedAt() *MemoryStateUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReps sets the "reps" field.
func (_u *MemoryStateUpdateOne) SetReps(v int) *MemoryStateUpdateOne {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableReps(v *int) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *MemoryStateUpdateOne) AddReps(v int) *MemoryStateUpdateOne {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *MemoryStateUpdateOne) SetLapses(v int) *MemoryStateUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableLapses(v *int) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *MemoryStateUpdateOne) AddLapses(v int) *MemoryStateUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetLapseStreak sets the "lapse_streak" field.
func (_u *MemoryStateUpdateOne) SetLapseStreak(v int) *MemoryStateUpdateOne {
	_u.mutation.ResetLapseStreak()
	_u.mutation.SetLapseStreak(v)
	return _u
}

// SetNillableLapseStreak sets the "lapse_streak" field if the given value is not nil.
func (_u *MemoryStateUpdateOne) SetNillableLapseStreak(v *int) *MemoryStateUpdateOne {
	if v != nil {
		_u.SetLapseStreak(*v)
	}
	return _u
}

// AddLapseStreak adds value to the "lapse_streak" field.
func (_u *MemoryStateUpdateOne) AddLapseStreak(v int) *MemoryStateUpdateOne {
	_u.mutation.AddLapseStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemoryStateUpdateOne) SetUpdatedAt(v time.Time) *MemoryStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MemoryStateMutation object of the builder.
func (_u *MemoryStateUpdateOne) Mutation() *MemoryStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryStateUpdate builder.
func (_u *MemoryStateUpdateOne) Where(ps ...predicate.MemoryState) *MemoryStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryStateUpdateOne) Select(field string, fields ...string) *MemoryStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryState entity.
func (_u *MemoryStateUpdateOne) Save(ctx context.Context) (*MemoryState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryStateUpdateOne) SaveX(ctx context.Context) *MemoryState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemoryStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := memorystate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryStateUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := memorystate.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "MemoryState.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Facet(); ok {
		if err := memorystate.FacetValidator(v); err != nil {
			return &ValidationError{Name: "facet", err: fmt.Errorf(`ent: validator failed for field "MemoryState.facet": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryStateUpdateOne) sqlSave(ctx context.Context) (_node *MemoryState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memorystate.Table, memorystate.Columns, sqlgraph.NewFieldSpec(memorystate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memorystate.FieldID)
		for _, f := range fields {
			if !memorystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memorystate.FieldID {
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
		_spec.SetField(memorystate.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Facet(); ok {
		_spec.SetField(memorystate.FieldFacet, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(memorystate.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(memorystate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(memorystate.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(memorystate.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(memorystate.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(memorystate.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(memorystate.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(memorystate.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(memorystate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(memorystate.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(memorystate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(memorystate.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LapseStreak(); ok {
		_spec.SetField(memorystate.FieldLapseStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapseStreak(); ok {
		_spec.AddField(memorystate.FieldLapseStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(memorystate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MemoryState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
