// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kioku-app/kioku/ent/lessonbatch"
	"github.com/kioku-app/kioku/ent/llmrequestevent"
	"github.com/kioku-app/kioku/ent/memorystate"
	"github.com/kioku-app/kioku/ent/reviewevent"
	"github.com/kioku-app/kioku/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonbatchFields := schema.LessonBatch{}.Fields()
	_ = lessonbatchFields
	// lessonbatchDescBatchID is the schema descriptor for batch_id field.
	lessonbatchDescBatchID := lessonbatchFields[0].Descriptor()
	// lessonbatch.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	lessonbatch.BatchIDValidator = lessonbatchDescBatchID.Validators[0].(func(string) error)
	// lessonbatchDescLevel is the schema descriptor for level field.
	lessonbatchDescLevel := lessonbatchFields[1].Descriptor()
	// lessonbatch.DefaultLevel holds the default value on creation for the level field.
	lessonbatch.DefaultLevel = lessonbatchDescLevel.Default.(int)
	// lessonbatchDescStatus is the schema descriptor for status field.
	lessonbatchDescStatus := lessonbatchFields[3].Descriptor()
	// lessonbatch.DefaultStatus holds the default value on creation for the status field.
	lessonbatch.DefaultStatus = lessonbatchDescStatus.Default.(string)
	// lessonbatchDescCompletedCount is the schema descriptor for completed_count field.
	lessonbatchDescCompletedCount := lessonbatchFields[4].Descriptor()
	// lessonbatch.DefaultCompletedCount holds the default value on creation for the completed_count field.
	lessonbatch.DefaultCompletedCount = lessonbatchDescCompletedCount.Default.(int)
	// lessonbatchDescTotalCount is the schema descriptor for total_count field.
	lessonbatchDescTotalCount := lessonbatchFields[5].Descriptor()
	// lessonbatch.DefaultTotalCount holds the default value on creation for the total_count field.
	lessonbatch.DefaultTotalCount = lessonbatchDescTotalCount.Default.(int)
	// lessonbatchDescMistakes is the schema descriptor for mistakes field.
	lessonbatchDescMistakes := lessonbatchFields[6].Descriptor()
	// lessonbatch.DefaultMistakes holds the default value on creation for the mistakes field.
	lessonbatch.DefaultMistakes = lessonbatchDescMistakes.Default.(int)
	// lessonbatchDescCreatedAt is the schema descriptor for created_at field.
	lessonbatchDescCreatedAt := lessonbatchFields[7].Descriptor()
	// lessonbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonbatch.DefaultCreatedAt = lessonbatchDescCreatedAt.Default.(func() time.Time)
	memorystateFields := schema.MemoryState{}.Fields()
	_ = memorystateFields
	// memorystateDescUnitID is the schema descriptor for unit_id field.
	memorystateDescUnitID := memorystateFields[0].Descriptor()
	// memorystate.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	memorystate.UnitIDValidator = memorystateDescUnitID.Validators[0].(func(string) error)
	// memorystateDescFacet is the schema descriptor for facet field.
	memorystateDescFacet := memorystateFields[1].Descriptor()
	// memorystate.FacetValidator is a validator for the "facet" field. It is called by the builders before save.
	memorystate.FacetValidator = memorystateDescFacet.Validators[0].(func(string) error)
	// memorystateDescStage is the schema descriptor for stage field.
	memorystateDescStage := memorystateFields[2].Descriptor()
	// memorystate.DefaultStage holds the default value on creation for the stage field.
	memorystate.DefaultStage = memorystateDescStage.Default.(string)
	// memorystateDescIntervalDays is the schema descriptor for interval_days field.
	memorystateDescIntervalDays := memorystateFields[4].Descriptor()
	// memorystate.DefaultIntervalDays holds the default value on creation for the interval_days field.
	memorystate.DefaultIntervalDays = memorystateDescIntervalDays.Default.(float64)
	// memorystateDescReps is the schema descriptor for reps field.
	memorystateDescReps := memorystateFields[7].Descriptor()
	// memorystate.DefaultReps holds the default value on creation for the reps field.
	memorystate.DefaultReps = memorystateDescReps.Default.(int)
	// memorystateDescLapses is the schema descriptor for lapses field.
	memorystateDescLapses := memorystateFields[8].Descriptor()
	// memorystate.DefaultLapses holds the default value on creation for the lapses field.
	memorystate.DefaultLapses = memorystateDescLapses.Default.(int)
	// memorystateDescLapseStreak is the schema descriptor for lapse_streak field.
	memorystateDescLapseStreak := memorystateFields[9].Descriptor()
	// memorystate.DefaultLapseStreak holds the default value on creation for the lapse_streak field.
	memorystate.DefaultLapseStreak = memorystateDescLapseStreak.Default.(int)
	// memorystateDescUpdatedAt is the schema descriptor for updated_at field.
	memorystateDescUpdatedAt := memorystateFields[10].Descriptor()
	// memorystate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memorystate.DefaultUpdatedAt = memorystateDescUpdatedAt.Default.(func() time.Time)
	// memorystate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memorystate.UpdateDefaultUpdatedAt = memorystateDescUpdatedAt.UpdateDefault.(func() time.Time)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescUnitID is the schema descriptor for unit_id field.
	revieweventDescUnitID := revieweventFields[0].Descriptor()
	// reviewevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	reviewevent.UnitIDValidator = revieweventDescUnitID.Validators[0].(func(string) error)
	// revieweventDescFacet is the schema descriptor for facet field.
	revieweventDescFacet := revieweventFields[1].Descriptor()
	// reviewevent.FacetValidator is a validator for the "facet" field. It is called by the builders before save.
	reviewevent.FacetValidator = revieweventDescFacet.Validators[0].(func(string) error)
	// revieweventDescBatchID is the schema descriptor for batch_id field.
	revieweventDescBatchID := revieweventFields[2].Descriptor()
	// reviewevent.DefaultBatchID holds the default value on creation for the batch_id field.
	reviewevent.DefaultBatchID = revieweventDescBatchID.Default.(string)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[3].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
}
