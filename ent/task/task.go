// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldBoardPageID holds the string denoting the board_page_id field in the database.
	FieldBoardPageID = "board_page_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldStoryDirection holds the string denoting the story_direction field in the database.
	FieldStoryDirection = "story_direction"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldPriorityRank holds the string denoting the priority_rank field in the database.
	FieldPriorityRank = "priority_rank"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssetCount holds the string denoting the asset_count field in the database.
	FieldAssetCount = "asset_count"
	// FieldClipCount holds the string denoting the clip_count field in the database.
	FieldClipCount = "clip_count"
	// FieldErrorLog holds the string denoting the error_log field in the database.
	FieldErrorLog = "error_log"
	// FieldOutputPath holds the string denoting the output_path field in the database.
	FieldOutputPath = "output_path"
	// FieldOutputDurationS holds the string denoting the output_duration_s field in the database.
	FieldOutputDurationS = "output_duration_s"
	// FieldPipelineCostUsd holds the string denoting the pipeline_cost_usd field in the database.
	FieldPipelineCostUsd = "pipeline_cost_usd"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldRetryAfter holds the string denoting the retry_after field in the database.
	FieldRetryAfter = "retry_after"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldPipelineStartTime holds the string denoting the pipeline_start_time field in the database.
	FieldPipelineStartTime = "pipeline_start_time"
	// FieldPipelineEndTime holds the string denoting the pipeline_end_time field in the database.
	FieldPipelineEndTime = "pipeline_end_time"
	// FieldReviewStartedAt holds the string denoting the review_started_at field in the database.
	FieldReviewStartedAt = "review_started_at"
	// FieldReviewCompletedAt holds the string denoting the review_completed_at field in the database.
	FieldReviewCompletedAt = "review_completed_at"
	// FieldReviewLog holds the string denoting the review_log field in the database.
	FieldReviewLog = "review_log"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeChannel holds the string denoting the channel edge name in mutations.
	EdgeChannel = "channel"
	// EdgeCostEntries holds the string denoting the cost_entries edge name in mutations.
	EdgeCostEntries = "cost_entries"
	// ChannelFieldID holds the string denoting the ID field of the Channel.
	ChannelFieldID = "channel_id"
	// CostEntryFieldID holds the string denoting the ID field of the CostEntry.
	CostEntryFieldID = "cost_entry_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ChannelTable is the table that holds the channel relation/edge.
	ChannelTable = "tasks"
	// ChannelInverseTable is the table name for the Channel entity.
	// It exists in this package in order to avoid circular dependency with the "channel" package.
	ChannelInverseTable = "channels"
	// ChannelColumn is the table column denoting the channel relation/edge.
	ChannelColumn = "channel_id"
	// CostEntriesTable is the table that holds the cost_entries relation/edge.
	CostEntriesTable = "cost_entries"
	// CostEntriesInverseTable is the table name for the CostEntry entity.
	// It exists in this package in order to avoid circular dependency with the "costentry" package.
	CostEntriesInverseTable = "cost_entries"
	// CostEntriesColumn is the table column denoting the cost_entries relation/edge.
	CostEntriesColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldChannelID,
	FieldBoardPageID,
	FieldTitle,
	FieldTopic,
	FieldStoryDirection,
	FieldPriority,
	FieldPriorityRank,
	FieldStatus,
	FieldAssetCount,
	FieldClipCount,
	FieldErrorLog,
	FieldOutputPath,
	FieldOutputDurationS,
	FieldPipelineCostUsd,
	FieldAttempts,
	FieldRetryAfter,
	FieldClaimedBy,
	FieldLastHeartbeatAt,
	FieldSteps,
	FieldPipelineStartTime,
	FieldPipelineEndTime,
	FieldReviewStartedAt,
	FieldReviewCompletedAt,
	FieldReviewLog,
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
	// DefaultPriorityRank holds the default value on creation for the "priority_rank" field.
	DefaultPriorityRank int
	// DefaultPipelineCostUsd holds the default value on creation for the "pipeline_cost_usd" field.
	DefaultPipelineCostUsd float64
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
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
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusDraft                Status = "draft"
	StatusQueued               Status = "queued"
	StatusRetry                Status = "retry"
	StatusClaimed              Status = "claimed"
	StatusGeneratingAssets     Status = "generating_assets"
	StatusAssetsReady          Status = "assets_ready"
	StatusAssetsApproved       Status = "assets_approved"
	StatusAssetError           Status = "asset_error"
	StatusGeneratingComposites Status = "generating_composites"
	StatusGeneratingVideo      Status = "generating_video"
	StatusVideoReady           Status = "video_ready"
	StatusVideoApproved        Status = "video_approved"
	StatusVideoError           Status = "video_error"
	StatusGeneratingAudio      Status = "generating_audio"
	StatusAudioReady           Status = "audio_ready"
	StatusAudioApproved        Status = "audio_approved"
	StatusAudioError           Status = "audio_error"
	StatusGeneratingSfx        Status = "generating_sfx"
	StatusSfxReady             Status = "sfx_ready"
	StatusSfxApproved          Status = "sfx_approved"
	StatusSfxError             Status = "sfx_error"
	StatusGeneratingAssembly   Status = "generating_assembly"
	StatusFinalReview          Status = "final_review"
	StatusAssemblyError        Status = "assembly_error"
	StatusApproved             Status = "approved"
	StatusUploading            Status = "uploading"
	StatusPublished            Status = "published"
	StatusUploadError          Status = "upload_error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusQueued, StatusRetry, StatusClaimed, StatusGeneratingAssets, StatusAssetsReady, StatusAssetsApproved, StatusAssetError, StatusGeneratingComposites, StatusGeneratingVideo, StatusVideoReady, StatusVideoApproved, StatusVideoError, StatusGeneratingAudio, StatusAudioReady, StatusAudioApproved, StatusAudioError, StatusGeneratingSfx, StatusSfxReady, StatusSfxApproved, StatusSfxError, StatusGeneratingAssembly, StatusFinalReview, StatusAssemblyError, StatusApproved, StatusUploading, StatusPublished, StatusUploadError:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByBoardPageID orders the results by the board_page_id field.
func ByBoardPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoardPageID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByStoryDirection orders the results by the story_direction field.
func ByStoryDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryDirection, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByPriorityRank orders the results by the priority_rank field.
func ByPriorityRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityRank, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssetCount orders the results by the asset_count field.
func ByAssetCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetCount, opts...).ToFunc()
}

// ByClipCount orders the results by the clip_count field.
func ByClipCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClipCount, opts...).ToFunc()
}

// ByErrorLog orders the results by the error_log field.
func ByErrorLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorLog, opts...).ToFunc()
}

// ByOutputPath orders the results by the output_path field.
func ByOutputPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPath, opts...).ToFunc()
}

// ByOutputDurationS orders the results by the output_duration_s field.
func ByOutputDurationS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDurationS, opts...).ToFunc()
}

// ByPipelineCostUsd orders the results by the pipeline_cost_usd field.
func ByPipelineCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineCostUsd, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByRetryAfter orders the results by the retry_after field.
func ByRetryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAfter, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByPipelineStartTime orders the results by the pipeline_start_time field.
func ByPipelineStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineStartTime, opts...).ToFunc()
}

// ByPipelineEndTime orders the results by the pipeline_end_time field.
func ByPipelineEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineEndTime, opts...).ToFunc()
}

// ByReviewStartedAt orders the results by the review_started_at field.
func ByReviewStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStartedAt, opts...).ToFunc()
}

// ByReviewCompletedAt orders the results by the review_completed_at field.
func ByReviewCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByChannelField orders the results by channel field.
func ByChannelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChannelStep(), sql.OrderByField(field, opts...))
	}
}

// ByCostEntriesCount orders the results by cost_entries count.
func ByCostEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCostEntriesStep(), opts...)
	}
}

// ByCostEntries orders the results by cost_entries terms.
func ByCostEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCostEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChannelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChannelInverseTable, ChannelFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChannelTable, ChannelColumn),
	)
}
func newCostEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CostEntriesInverseTable, CostEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CostEntriesTable, CostEntriesColumn),
	)
}
