// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kioku-app/kioku/ent/lessonbatch"
)

// LessonBatch is the model entity for the LessonBatch schema.
type LessonBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at creation
	BatchID string `json:"batch_id,omitempty"`
	// Curriculum level the batch was drawn from
	Level int `json:"level,omitempty"`
	// Units introduced by this batch
	UnitIds []string `json:"unit_ids,omitempty"`
	// in_progress, completed, or abandoned
	Status string `json:"status,omitempty"`
	// Facets retired when the batch finished
	CompletedCount int `json:"completed_count,omitempty"`
	// Facets quizzed when the batch finished
	TotalCount int `json:"total_count,omitempty"`
	// Failing grades recorded during the batch
	Mistakes int `json:"mistakes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set when the batch completes or is abandoned
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonbatch.FieldUnitIds:
			values[i] = new([]byte)
		case lessonbatch.FieldID, lessonbatch.FieldLevel, lessonbatch.FieldCompletedCount, lessonbatch.FieldTotalCount, lessonbatch.FieldMistakes:
			values[i] = new(sql.NullInt64)
		case lessonbatch.FieldBatchID, lessonbatch.FieldStatus:
			values[i] = new(sql.NullString)
		case lessonbatch.FieldCreatedAt, lessonbatch.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonBatch fields.
func (_m *LessonBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonbatch.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonbatch.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case lessonbatch.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case lessonbatch.FieldUnitIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unit_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UnitIds); err != nil {
					return fmt.Errorf("unmarshal field unit_ids: %w", err)
				}
			}
		case lessonbatch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case lessonbatch.FieldCompletedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_count", values[i])
			} else if value.Valid {
				_m.CompletedCount = int(value.Int64)
			}
		case lessonbatch.FieldTotalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_count", values[i])
			} else if value.Valid {
				_m.TotalCount = int(value.Int64)
			}
		case lessonbatch.FieldMistakes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mistakes", values[i])
			} else if value.Valid {
				_m.Mistakes = int(value.Int64)
			}
		case lessonbatch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lessonbatch.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonBatch.
// This includes values selected through modifiers, order, etc.
func (_m *LessonBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonBatch.
// Note that you need to call LessonBatch.Unwrap() before calling this method if this LessonBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonBatch) Update() *LessonBatchUpdateOne {
	return NewLessonBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonBatch) Unwrap() *LessonBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonBatch) String() string {
	var builder strings.Builder
	builder.WriteString("LessonBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("unit_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("completed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCount))
	builder.WriteString(", ")
	builder.WriteString("total_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCount))
	builder.WriteString(", ")
	builder.WriteString("mistakes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mistakes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LessonBatches is a parsable slice of LessonBatch.
type LessonBatches []*LessonBatch
