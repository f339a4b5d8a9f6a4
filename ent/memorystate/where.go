// Code generated by ent, DO NOT EDIT.

package memorystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kioku-app/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldID, id))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldUnitID, v))
}

// Facet applies equality check predicate on the "facet" field. It's identical to FacetEQ.
func Facet(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldFacet, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldStage, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldStability, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldIntervalDays, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldDueAt, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLastReviewedAt, v))
}

// Reps applies equality check predicate on the "reps" field. It's identical to RepsEQ.
func Reps(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldReps, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLapses, v))
}

// LapseStreak applies equality check predicate on the "lapse_streak" field. It's identical to LapseStreakEQ.
func LapseStreak(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLapseStreak, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContainsFold(FieldUnitID, v))
}

// FacetEQ applies the EQ predicate on the "facet" field.
func FacetEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldFacet, v))
}

// FacetNEQ applies the NEQ predicate on the "facet" field.
func FacetNEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldFacet, v))
}

// FacetIn applies the In predicate on the "facet" field.
func FacetIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldFacet, vs...))
}

// FacetNotIn applies the NotIn predicate on the "facet" field.
func FacetNotIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldFacet, vs...))
}

// FacetGT applies the GT predicate on the "facet" field.
func FacetGT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldFacet, v))
}

// FacetGTE applies the GTE predicate on the "facet" field.
func FacetGTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldFacet, v))
}

// FacetLT applies the LT predicate on the "facet" field.
func FacetLT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldFacet, v))
}

// FacetLTE applies the LTE predicate on the "facet" field.
func FacetLTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldFacet, v))
}

// FacetContains applies the Contains predicate on the "facet" field.
func FacetContains(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContains(FieldFacet, v))
}

// FacetHasPrefix applies the HasPrefix predicate on the "facet" field.
func FacetHasPrefix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasPrefix(FieldFacet, v))
}

// FacetHasSuffix applies the HasSuffix predicate on the "facet" field.
func FacetHasSuffix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasSuffix(FieldFacet, v))
}

// FacetEqualFold applies the EqualFold predicate on the "facet" field.
func FacetEqualFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEqualFold(FieldFacet, v))
}

// FacetContainsFold applies the ContainsFold predicate on the "facet" field.
func FacetContainsFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContainsFold(FieldFacet, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldContainsFold(FieldStage, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldStability, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v float64) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldIntervalDays, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldDueAt, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotNull(FieldLastReviewedAt))
}

// RepsEQ applies the EQ predicate on the "reps" field.
func RepsEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldReps, v))
}

// RepsNEQ applies the NEQ predicate on the "reps" field.
func RepsNEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldReps, v))
}

// RepsIn applies the In predicate on the "reps" field.
func RepsIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldReps, vs...))
}

// RepsNotIn applies the NotIn predicate on the "reps" field.
func RepsNotIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldReps, vs...))
}

// RepsGT applies the GT predicate on the "reps" field.
func RepsGT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldReps, v))
}

// RepsGTE applies the GTE predicate on the "reps" field.
func RepsGTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldReps, v))
}

// RepsLT applies the LT predicate on the "reps" field.
func RepsLT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldReps, v))
}

// RepsLTE applies the LTE predicate on the "reps" field.
func RepsLTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldReps, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldLapses, v))
}

// LapseStreakEQ applies the EQ predicate on the "lapse_streak" field.
func LapseStreakEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldLapseStreak, v))
}

// LapseStreakNEQ applies the NEQ predicate on the "lapse_streak" field.
func LapseStreakNEQ(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldLapseStreak, v))
}

// LapseStreakIn applies the In predicate on the "lapse_streak" field.
func LapseStreakIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldLapseStreak, vs...))
}

// LapseStreakNotIn applies the NotIn predicate on the "lapse_streak" field.
func LapseStreakNotIn(vs ...int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldLapseStreak, vs...))
}

// LapseStreakGT applies the GT predicate on the "lapse_streak" field.
func LapseStreakGT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldLapseStreak, v))
}

// LapseStreakGTE applies the GTE predicate on the "lapse_streak" field.
func LapseStreakGTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldLapseStreak, v))
}

// LapseStreakLT applies the LT predicate on the "lapse_streak" field.
func LapseStreakLT(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldLapseStreak, v))
}

// LapseStreakLTE applies the LTE predicate on the "lapse_streak" field.
func LapseStreakLTE(v int) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldLapseStreak, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MemoryState {
	return predicate.MemoryState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryState) predicate.MemoryState {
	return predicate.MemoryState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryState) predicate.MemoryState {
	return predicate.MemoryState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryState) predicate.MemoryState {
	return predicate.MemoryState(sql.NotPredicates(p))
}
