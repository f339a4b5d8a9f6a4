// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kioku-app/kioku/ent/memorystate"
)

// MemoryState is the model entity for the MemoryState schema.
type MemoryState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Curriculum unit this state belongs to
	UnitID string `json:"unit_id,omitempty"`
	// meaning, reading, or cloze
	Facet string `json:"facet,omitempty"`
	// new, learning, review, or burned
	Stage string `json:"stage,omitempty"`
	// Ease multiplier driving interval growth
	Stability float64 `json:"stability,omitempty"`
	// Current scheduling interval in days
	IntervalDays float64 `json:"interval_days,omitempty"`
	// When the facet next becomes eligible for review
	DueAt time.Time `json:"due_at,omitempty"`
	// UTC time of the most recent grade
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// Consecutive passing grades since last lapse
	Reps int `json:"reps,omitempty"`
	// Lifetime failing grades
	Lapses int `json:"lapses,omitempty"`
	// Consecutive failing grades
	LapseStreak int `json:"lapse_streak,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memorystate.FieldStability, memorystate.FieldIntervalDays:
			values[i] = new(sql.NullFloat64)
		case memorystate.FieldID, memorystate.FieldReps, memorystate.FieldLapses, memorystate.FieldLapseStreak:
			values[i] = new(sql.NullInt64)
		case memorystate.FieldUnitID, memorystate.FieldFacet, memorystate.FieldStage:
			values[i] = new(sql.NullString)
		case memorystate.FieldDueAt, memorystate.FieldLastReviewedAt, memorystate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryState fields.
func (_m *MemoryState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memorystate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case memorystate.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case memorystate.FieldFacet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facet", values[i])
			} else if value.Valid {
				_m.Facet = value.String
			}
		case memorystate.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case memorystate.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = value.Float64
			}
		case memorystate.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = value.Float64
			}
		case memorystate.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		case memorystate.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case memorystate.FieldReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reps", values[i])
			} else if value.Valid {
				_m.Reps = int(value.Int64)
			}
		case memorystate.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				_m.Lapses = int(value.Int64)
			}
		case memorystate.FieldLapseStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapse_streak", values[i])
			} else if value.Valid {
				_m.LapseStreak = int(value.Int64)
			}
		case memorystate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryState.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MemoryState.
// Note that you need to call MemoryState.Unwrap() before calling this method if this MemoryState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryState) Update() *MemoryStateUpdateOne {
	return NewMemoryStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryState) Unwrap() *MemoryState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryState) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("facet=")
	builder.WriteString(_m.Facet)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stability))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reps))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lapses))
	builder.WriteString(", ")
	builder.WriteString("lapse_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LapseStreak))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryStates is a parsable slice of MemoryState.
type MemoryStates []*MemoryState
