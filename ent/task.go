// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChannelID holds the value of the "channel_id" field.
	ChannelID string `json:"channel_id,omitempty"`
	// External board page identifier; upsert collapses duplicates
	BoardPageID string `json:"board_page_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// StoryDirection holds the value of the "story_direction" field.
	StoryDirection string `json:"story_direction,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority task.Priority `json:"priority,omitempty"`
	// Denormalized priority for ORDER BY (high=2 normal=1 low=0)
	PriorityRank int `json:"priority_rank,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// AssetCount holds the value of the "asset_count" field.
	AssetCount int `json:"asset_count,omitempty"`
	// ClipCount holds the value of the "clip_count" field.
	ClipCount int `json:"clip_count,omitempty"`
	// Append-only; every entry is ISO-timestamp prefixed
	ErrorLog string `json:"error_log,omitempty"`
	// OutputPath holds the value of the "output_path" field.
	OutputPath *string `json:"output_path,omitempty"`
	// OutputDurationS holds the value of the "output_duration_s" field.
	OutputDurationS *float64 `json:"output_duration_s,omitempty"`
	// PipelineCostUsd holds the value of the "pipeline_cost_usd" field.
	PipelineCostUsd float64 `json:"pipeline_cost_usd,omitempty"`
	// Retry attempts for the current stage; reset on stage success
	Attempts int `json:"attempts,omitempty"`
	// Backoff gate: not claimable before this instant
	RetryAfter *time.Time `json:"retry_after,omitempty"`
	// Worker id holding the claim
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Resume ledger, keyed by stage
	Steps models.Ledger `json:"steps,omitempty"`
	// PipelineStartTime holds the value of the "pipeline_start_time" field.
	PipelineStartTime *time.Time `json:"pipeline_start_time,omitempty"`
	// PipelineEndTime holds the value of the "pipeline_end_time" field.
	PipelineEndTime *time.Time `json:"pipeline_end_time,omitempty"`
	// ReviewStartedAt holds the value of the "review_started_at" field.
	ReviewStartedAt *time.Time `json:"review_started_at,omitempty"`
	// ReviewCompletedAt holds the value of the "review_completed_at" field.
	ReviewCompletedAt *time.Time `json:"review_completed_at,omitempty"`
	// Append-only review decisions pulled from the board
	ReviewLog []models.ReviewEvidence `json:"review_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Channel holds the value of the channel edge.
	Channel *Channel `json:"channel,omitempty"`
	// CostEntries holds the value of the cost_entries edge.
	CostEntries []*CostEntry `json:"cost_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChannelOrErr returns the Channel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ChannelOrErr() (*Channel, error) {
	if e.Channel != nil {
		return e.Channel, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: channel.Label}
	}
	return nil, &NotLoadedError{edge: "channel"}
}

// CostEntriesOrErr returns the CostEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CostEntriesOrErr() ([]*CostEntry, error) {
	if e.loadedTypes[1] {
		return e.CostEntries, nil
	}
	return nil, &NotLoadedError{edge: "cost_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldSteps, task.FieldReviewLog:
			values[i] = new([]byte)
		case task.FieldOutputDurationS, task.FieldPipelineCostUsd:
			values[i] = new(sql.NullFloat64)
		case task.FieldPriorityRank, task.FieldAssetCount, task.FieldClipCount, task.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldChannelID, task.FieldBoardPageID, task.FieldTitle, task.FieldTopic, task.FieldStoryDirection, task.FieldPriority, task.FieldStatus, task.FieldErrorLog, task.FieldOutputPath, task.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case task.FieldRetryAfter, task.FieldLastHeartbeatAt, task.FieldPipelineStartTime, task.FieldPipelineEndTime, task.FieldReviewStartedAt, task.FieldReviewCompletedAt, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = value.String
			}
		case task.FieldBoardPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field board_page_id", values[i])
			} else if value.Valid {
				_m.BoardPageID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case task.FieldStoryDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field story_direction", values[i])
			} else if value.Valid {
				_m.StoryDirection = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = task.Priority(value.String)
			}
		case task.FieldPriorityRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_rank", values[i])
			} else if value.Valid {
				_m.PriorityRank = int(value.Int64)
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldAssetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field asset_count", values[i])
			} else if value.Valid {
				_m.AssetCount = int(value.Int64)
			}
		case task.FieldClipCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clip_count", values[i])
			} else if value.Valid {
				_m.ClipCount = int(value.Int64)
			}
		case task.FieldErrorLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_log", values[i])
			} else if value.Valid {
				_m.ErrorLog = value.String
			}
		case task.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = new(string)
				*_m.OutputPath = value.String
			}
		case task.FieldOutputDurationS:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field output_duration_s", values[i])
			} else if value.Valid {
				_m.OutputDurationS = new(float64)
				*_m.OutputDurationS = value.Float64
			}
		case task.FieldPipelineCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_cost_usd", values[i])
			} else if value.Valid {
				_m.PipelineCostUsd = value.Float64
			}
		case task.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case task.FieldRetryAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_after", values[i])
			} else if value.Valid {
				_m.RetryAfter = new(time.Time)
				*_m.RetryAfter = value.Time
			}
		case task.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case task.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case task.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case task.FieldPipelineStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_start_time", values[i])
			} else if value.Valid {
				_m.PipelineStartTime = new(time.Time)
				*_m.PipelineStartTime = value.Time
			}
		case task.FieldPipelineEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_end_time", values[i])
			} else if value.Valid {
				_m.PipelineEndTime = new(time.Time)
				*_m.PipelineEndTime = value.Time
			}
		case task.FieldReviewStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_started_at", values[i])
			} else if value.Valid {
				_m.ReviewStartedAt = new(time.Time)
				*_m.ReviewStartedAt = value.Time
			}
		case task.FieldReviewCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_completed_at", values[i])
			} else if value.Valid {
				_m.ReviewCompletedAt = new(time.Time)
				*_m.ReviewCompletedAt = value.Time
			}
		case task.FieldReviewLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field review_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReviewLog); err != nil {
					return fmt.Errorf("unmarshal field review_log: %w", err)
				}
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChannel queries the "channel" edge of the Task entity.
func (_m *Task) QueryChannel() *ChannelQuery {
	return NewTaskClient(_m.config).QueryChannel(_m)
}

// QueryCostEntries queries the "cost_entries" edge of the Task entity.
func (_m *Task) QueryCostEntries() *CostEntryQuery {
	return NewTaskClient(_m.config).QueryCostEntries(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("channel_id=")
	builder.WriteString(_m.ChannelID)
	builder.WriteString(", ")
	builder.WriteString("board_page_id=")
	builder.WriteString(_m.BoardPageID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("story_direction=")
	builder.WriteString(_m.StoryDirection)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("priority_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityRank))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("asset_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssetCount))
	builder.WriteString(", ")
	builder.WriteString("clip_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClipCount))
	builder.WriteString(", ")
	builder.WriteString("error_log=")
	builder.WriteString(_m.ErrorLog)
	builder.WriteString(", ")
	if v := _m.OutputPath; v != nil {
		builder.WriteString("output_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OutputDurationS; v != nil {
		builder.WriteString("output_duration_s=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("pipeline_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineCostUsd))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.RetryAfter; v != nil {
		builder.WriteString("retry_after=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	if v := _m.PipelineStartTime; v != nil {
		builder.WriteString("pipeline_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PipelineEndTime; v != nil {
		builder.WriteString("pipeline_end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewStartedAt; v != nil {
		builder.WriteString("review_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewCompletedAt; v != nil {
		builder.WriteString("review_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("review_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewLog))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
