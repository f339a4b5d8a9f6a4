// Code generated by ent, DO NOT EDIT.

package lessonbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kioku-app/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldBatchID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldLevel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldStatus, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldCompletedCount, v))
}

// TotalCount applies equality check predicate on the "total_count" field. It's identical to TotalCountEQ.
func TotalCount(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldTotalCount, v))
}

// Mistakes applies equality check predicate on the "mistakes" field. It's identical to MistakesEQ.
func Mistakes(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldMistakes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldContainsFold(FieldBatchID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldContainsFold(FieldStatus, v))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldCompletedCount, v))
}

// TotalCountEQ applies the EQ predicate on the "total_count" field.
func TotalCountEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldTotalCount, v))
}

// TotalCountNEQ applies the NEQ predicate on the "total_count" field.
func TotalCountNEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldTotalCount, v))
}

// TotalCountIn applies the In predicate on the "total_count" field.
func TotalCountIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldTotalCount, vs...))
}

// TotalCountNotIn applies the NotIn predicate on the "total_count" field.
func TotalCountNotIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldTotalCount, vs...))
}

// TotalCountGT applies the GT predicate on the "total_count" field.
func TotalCountGT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldTotalCount, v))
}

// TotalCountGTE applies the GTE predicate on the "total_count" field.
func TotalCountGTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldTotalCount, v))
}

// TotalCountLT applies the LT predicate on the "total_count" field.
func TotalCountLT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldTotalCount, v))
}

// TotalCountLTE applies the LTE predicate on the "total_count" field.
func TotalCountLTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldTotalCount, v))
}

// MistakesEQ applies the EQ predicate on the "mistakes" field.
func MistakesEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldMistakes, v))
}

// MistakesNEQ applies the NEQ predicate on the "mistakes" field.
func MistakesNEQ(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldMistakes, v))
}

// MistakesIn applies the In predicate on the "mistakes" field.
func MistakesIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldMistakes, vs...))
}

// MistakesNotIn applies the NotIn predicate on the "mistakes" field.
func MistakesNotIn(vs ...int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldMistakes, vs...))
}

// MistakesGT applies the GT predicate on the "mistakes" field.
func MistakesGT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldMistakes, v))
}

// MistakesGTE applies the GTE predicate on the "mistakes" field.
func MistakesGTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldMistakes, v))
}

// MistakesLT applies the LT predicate on the "mistakes" field.
func MistakesLT(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldMistakes, v))
}

// MistakesLTE applies the LTE predicate on the "mistakes" field.
func MistakesLTE(v int) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldMistakes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.LessonBatch {
	return predicate.LessonBatch(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonBatch) predicate.LessonBatch {
	return predicate.LessonBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonBatch) predicate.LessonBatch {
	return predicate.LessonBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonBatch) predicate.LessonBatch {
	return predicate.LessonBatch(sql.NotPredicates(p))
}
