package store

import (
	"context"
	"time"

	"github.com/kioku-app/kioku/internal/srs"
)

// DailyLessonLimit is how many lesson batches may be started per local day.
// Review sessions are never limited.
const DailyLessonLimit = 10

// BatchRecord is a persisted lesson batch.
type BatchRecord struct {
	BatchID        string
	Level          int
	UnitIDs        []string
	Status         string
	CompletedCount int
	TotalCount     int
	Mistakes       int
	CreatedAt      time.Time
	FinishedAt     *time.Time
}

// Batch statuses.
const (
	BatchInProgress = "in_progress"
	BatchCompleted  = "completed"
	BatchAbandoned  = "abandoned"
)

// MemoryStateRepo persists per-facet scheduling state.
type MemoryStateRepo interface {
	// Get returns the state for one facet, or ok=false when the unit has
	// never been studied.
	Get(ctx context.Context, unitID, facet string) (srs.MemoryState, bool, error)

	// ForUnits returns every stored state for the given units, keyed by
	// unit then facet.
	ForUnits(ctx context.Context, unitIDs []string) (map[string]map[string]srs.MemoryState, error)

	// Upsert writes a state, creating the row on first grade.
	Upsert(ctx context.Context, state srs.MemoryState) error

	// DueUnitIDs returns the units with at least one facet due at now,
	// ordered by how overdue their earliest facet is.
	DueUnitIDs(ctx context.Context, now time.Time, limit int) ([]string, error)

	// CountByStage returns how many facets sit in each stage.
	CountByStage(ctx context.Context) (map[srs.Stage]int, error)

	// StudiedUnitIDs returns the IDs of all units with any stored state.
	StudiedUnitIDs(ctx context.Context) ([]string, error)

	// DeleteAll wipes every memory state. Used by the reset command.
	DeleteAll(ctx context.Context) (int, error)
}

// BatchRepo persists lesson batches.
type BatchRepo interface {
	Create(ctx context.Context, level int, unitIDs []string) (BatchRecord, error)
	MarkComplete(ctx context.Context, batchID string, completed, total, mistakes int) error
	MarkAbandoned(ctx context.Context, batchID string) error

	// CountCreatedSince counts batches created at or after t, regardless
	// of status. Abandoned batches still consume the daily allowance.
	CountCreatedSince(ctx context.Context, t time.Time) (int, error)

	// Unfinished returns in-progress batches, oldest first.
	Unfinished(ctx context.Context) ([]BatchRecord, error)

	// Recent returns the most recent batches, newest first.
	Recent(ctx context.Context, limit int) ([]BatchRecord, error)
}

// ReviewEventData captures one grade for the append-only log.
type ReviewEventData struct {
	UnitID       string
	Facet        string
	BatchID      string
	Rating       string
	Passed       bool
	StageBefore  string
	StageAfter   string
	IntervalDays float64
	DueAt        time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to domain events. All event types share
// one global sequence so the log has a total order.
type EventRepo interface {
	// AppendReview records a single grade.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CountReviews returns how many grades have ever been recorded.
	CountReviews(ctx context.Context) (int, error)

	// ReviewAccuracy returns passing and total grade counts.
	ReviewAccuracy(ctx context.Context) (passed, total int, err error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
