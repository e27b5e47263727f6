// Code generated by ent, DO NOT EDIT.

package channel

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the channel type in the database.
	Label = "channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "channel_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldVoiceID holds the string denoting the voice_id field in the database.
	FieldVoiceID = "voice_id"
	// FieldBrandingDir holds the string denoting the branding_dir field in the database.
	FieldBrandingDir = "branding_dir"
	// FieldStorageStrategy holds the string denoting the storage_strategy field in the database.
	FieldStorageStrategy = "storage_strategy"
	// FieldCredentialsEnc holds the string denoting the credentials_enc field in the database.
	FieldCredentialsEnc = "credentials_enc"
	// FieldStageTimeoutsS holds the string denoting the stage_timeouts_s field in the database.
	FieldStageTimeoutsS = "stage_timeouts_s"
	// FieldDefaultAssetCount holds the string denoting the default_asset_count field in the database.
	FieldDefaultAssetCount = "default_asset_count"
	// FieldDefaultClipCount holds the string denoting the default_clip_count field in the database.
	FieldDefaultClipCount = "default_clip_count"
	// FieldLastClaimedAt holds the string denoting the last_claimed_at field in the database.
	FieldLastClaimedAt = "last_claimed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the channel in the database.
	Table = "channels"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "channel_id"
)

// Columns holds all SQL columns for channel fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldActive,
	FieldPriority,
	FieldVoiceID,
	FieldBrandingDir,
	FieldStorageStrategy,
	FieldCredentialsEnc,
	FieldStageTimeoutsS,
	FieldDefaultAssetCount,
	FieldDefaultClipCount,
	FieldLastClaimedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultStorageStrategy holds the default value on creation for the "storage_strategy" field.
	DefaultStorageStrategy string
	// DefaultDefaultAssetCount holds the default value on creation for the "default_asset_count" field.
	DefaultDefaultAssetCount int
	// DefaultDefaultClipCount holds the default value on creation for the "default_clip_count" field.
	DefaultDefaultClipCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return nil
	default:
		return fmt.Errorf("channel: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Channel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByVoiceID orders the results by the voice_id field.
func ByVoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoiceID, opts...).ToFunc()
}

// ByBrandingDir orders the results by the branding_dir field.
func ByBrandingDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandingDir, opts...).ToFunc()
}

// ByStorageStrategy orders the results by the storage_strategy field.
func ByStorageStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageStrategy, opts...).ToFunc()
}

// ByCredentialsEnc orders the results by the credentials_enc field.
func ByCredentialsEnc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredentialsEnc, opts...).ToFunc()
}

// ByDefaultAssetCount orders the results by the default_asset_count field.
func ByDefaultAssetCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAssetCount, opts...).ToFunc()
}

// ByDefaultClipCount orders the results by the default_clip_count field.
func ByDefaultClipCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultClipCount, opts...).ToFunc()
}

// ByLastClaimedAt orders the results by the last_claimed_at field.
func ByLastClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastClaimedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
