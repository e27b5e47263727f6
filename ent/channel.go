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
)

// Channel is the model entity for the Channel schema.
type Channel struct {
	config `json:"-"`
	// ID of the ent.
	// Stable slug, doubles as the filesystem directory name
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority channel.Priority `json:"priority,omitempty"`
	// TTS voice; falls back to DEFAULT_VOICE_ID when unset
	VoiceID *string `json:"voice_id,omitempty"`
	// Channel branding asset path, relative to the workspace root
	BrandingDir *string `json:"branding_dir,omitempty"`
	// StorageStrategy holds the value of the "storage_strategy" field.
	StorageStrategy string `json:"storage_strategy,omitempty"`
	// Fernet token wrapping a JSON map of service credentials
	CredentialsEnc string `json:"-"`
	// Per-stage generator timeout overrides in seconds, keyed by stage name
	StageTimeoutsS map[string]int `json:"stage_timeouts_s,omitempty"`
	// DefaultAssetCount holds the value of the "default_asset_count" field.
	DefaultAssetCount int `json:"default_asset_count,omitempty"`
	// DefaultClipCount holds the value of the "default_clip_count" field.
	DefaultClipCount int `json:"default_clip_count,omitempty"`
	// For per-channel round-robin in the claim query
	LastClaimedAt *time.Time `json:"last_claimed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChannelQuery when eager-loading is set.
	Edges        ChannelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChannelEdges holds the relations/edges for other nodes in the graph.
type ChannelEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e ChannelEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Channel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case channel.FieldStageTimeoutsS:
			values[i] = new([]byte)
		case channel.FieldActive:
			values[i] = new(sql.NullBool)
		case channel.FieldDefaultAssetCount, channel.FieldDefaultClipCount:
			values[i] = new(sql.NullInt64)
		case channel.FieldID, channel.FieldName, channel.FieldPriority, channel.FieldVoiceID, channel.FieldBrandingDir, channel.FieldStorageStrategy, channel.FieldCredentialsEnc:
			values[i] = new(sql.NullString)
		case channel.FieldLastClaimedAt, channel.FieldCreatedAt, channel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Channel fields.
func (_m *Channel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case channel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case channel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case channel.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case channel.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = channel.Priority(value.String)
			}
		case channel.FieldVoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field voice_id", values[i])
			} else if value.Valid {
				_m.VoiceID = new(string)
				*_m.VoiceID = value.String
			}
		case channel.FieldBrandingDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branding_dir", values[i])
			} else if value.Valid {
				_m.BrandingDir = new(string)
				*_m.BrandingDir = value.String
			}
		case channel.FieldStorageStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_strategy", values[i])
			} else if value.Valid {
				_m.StorageStrategy = value.String
			}
		case channel.FieldCredentialsEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credentials_enc", values[i])
			} else if value.Valid {
				_m.CredentialsEnc = value.String
			}
		case channel.FieldStageTimeoutsS:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_timeouts_s", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StageTimeoutsS); err != nil {
					return fmt.Errorf("unmarshal field stage_timeouts_s: %w", err)
				}
			}
		case channel.FieldDefaultAssetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_asset_count", values[i])
			} else if value.Valid {
				_m.DefaultAssetCount = int(value.Int64)
			}
		case channel.FieldDefaultClipCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_clip_count", values[i])
			} else if value.Valid {
				_m.DefaultClipCount = int(value.Int64)
			}
		case channel.FieldLastClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_claimed_at", values[i])
			} else if value.Valid {
				_m.LastClaimedAt = new(time.Time)
				*_m.LastClaimedAt = value.Time
			}
		case channel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case channel.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Channel.
// This includes values selected through modifiers, order, etc.
func (_m *Channel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Channel entity.
func (_m *Channel) QueryTasks() *TaskQuery {
	return NewChannelClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Channel.
// Note that you need to call Channel.Unwrap() before calling this method if this Channel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Channel) Update() *ChannelUpdateOne {
	return NewChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Channel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Channel) Unwrap() *Channel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Channel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Channel) String() string {
	var builder strings.Builder
	builder.WriteString("Channel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.VoiceID; v != nil {
		builder.WriteString("voice_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BrandingDir; v != nil {
		builder.WriteString("branding_dir=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("storage_strategy=")
	builder.WriteString(_m.StorageStrategy)
	builder.WriteString(", ")
	builder.WriteString("credentials_enc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("stage_timeouts_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageTimeoutsS))
	builder.WriteString(", ")
	builder.WriteString("default_asset_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultAssetCount))
	builder.WriteString(", ")
	builder.WriteString("default_clip_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultClipCount))
	builder.WriteString(", ")
	if v := _m.LastClaimedAt; v != nil {
		builder.WriteString("last_claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Channels is a parsable slice of Channel.
type Channels []*Channel
