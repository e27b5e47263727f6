// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reelworks/reelpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldChannelID, v))
}

// BoardPageID applies equality check predicate on the "board_page_id" field. It's identical to BoardPageIDEQ.
func BoardPageID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBoardPageID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTopic, v))
}

// StoryDirection applies equality check predicate on the "story_direction" field. It's identical to StoryDirectionEQ.
func StoryDirection(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStoryDirection, v))
}

// PriorityRank applies equality check predicate on the "priority_rank" field. It's identical to PriorityRankEQ.
func PriorityRank(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityRank, v))
}

// AssetCount applies equality check predicate on the "asset_count" field. It's identical to AssetCountEQ.
func AssetCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssetCount, v))
}

// ClipCount applies equality check predicate on the "clip_count" field. It's identical to ClipCountEQ.
func ClipCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClipCount, v))
}

// ErrorLog applies equality check predicate on the "error_log" field. It's identical to ErrorLogEQ.
func ErrorLog(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorLog, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOutputPath, v))
}

// OutputDurationS applies equality check predicate on the "output_duration_s" field. It's identical to OutputDurationSEQ.
func OutputDurationS(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOutputDurationS, v))
}

// PipelineCostUsd applies equality check predicate on the "pipeline_cost_usd" field. It's identical to PipelineCostUsdEQ.
func PipelineCostUsd(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineCostUsd, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// RetryAfter applies equality check predicate on the "retry_after" field. It's identical to RetryAfterEQ.
func RetryAfter(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryAfter, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedBy, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// PipelineStartTime applies equality check predicate on the "pipeline_start_time" field. It's identical to PipelineStartTimeEQ.
func PipelineStartTime(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineStartTime, v))
}

// PipelineEndTime applies equality check predicate on the "pipeline_end_time" field. It's identical to PipelineEndTimeEQ.
func PipelineEndTime(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineEndTime, v))
}

// ReviewStartedAt applies equality check predicate on the "review_started_at" field. It's identical to ReviewStartedAtEQ.
func ReviewStartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewStartedAt, v))
}

// ReviewCompletedAt applies equality check predicate on the "review_completed_at" field. It's identical to ReviewCompletedAtEQ.
func ReviewCompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldChannelID, v))
}

// BoardPageIDEQ applies the EQ predicate on the "board_page_id" field.
func BoardPageIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBoardPageID, v))
}

// BoardPageIDNEQ applies the NEQ predicate on the "board_page_id" field.
func BoardPageIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBoardPageID, v))
}

// BoardPageIDIn applies the In predicate on the "board_page_id" field.
func BoardPageIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBoardPageID, vs...))
}

// BoardPageIDNotIn applies the NotIn predicate on the "board_page_id" field.
func BoardPageIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBoardPageID, vs...))
}

// BoardPageIDGT applies the GT predicate on the "board_page_id" field.
func BoardPageIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBoardPageID, v))
}

// BoardPageIDGTE applies the GTE predicate on the "board_page_id" field.
func BoardPageIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBoardPageID, v))
}

// BoardPageIDLT applies the LT predicate on the "board_page_id" field.
func BoardPageIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBoardPageID, v))
}

// BoardPageIDLTE applies the LTE predicate on the "board_page_id" field.
func BoardPageIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBoardPageID, v))
}

// BoardPageIDContains applies the Contains predicate on the "board_page_id" field.
func BoardPageIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBoardPageID, v))
}

// BoardPageIDHasPrefix applies the HasPrefix predicate on the "board_page_id" field.
func BoardPageIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBoardPageID, v))
}

// BoardPageIDHasSuffix applies the HasSuffix predicate on the "board_page_id" field.
func BoardPageIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBoardPageID, v))
}

// BoardPageIDEqualFold applies the EqualFold predicate on the "board_page_id" field.
func BoardPageIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBoardPageID, v))
}

// BoardPageIDContainsFold applies the ContainsFold predicate on the "board_page_id" field.
func BoardPageIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBoardPageID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTopic, v))
}

// StoryDirectionEQ applies the EQ predicate on the "story_direction" field.
func StoryDirectionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStoryDirection, v))
}

// StoryDirectionNEQ applies the NEQ predicate on the "story_direction" field.
func StoryDirectionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStoryDirection, v))
}

// StoryDirectionIn applies the In predicate on the "story_direction" field.
func StoryDirectionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStoryDirection, vs...))
}

// StoryDirectionNotIn applies the NotIn predicate on the "story_direction" field.
func StoryDirectionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStoryDirection, vs...))
}

// StoryDirectionGT applies the GT predicate on the "story_direction" field.
func StoryDirectionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStoryDirection, v))
}

// StoryDirectionGTE applies the GTE predicate on the "story_direction" field.
func StoryDirectionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStoryDirection, v))
}

// StoryDirectionLT applies the LT predicate on the "story_direction" field.
func StoryDirectionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStoryDirection, v))
}

// StoryDirectionLTE applies the LTE predicate on the "story_direction" field.
func StoryDirectionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStoryDirection, v))
}

// StoryDirectionContains applies the Contains predicate on the "story_direction" field.
func StoryDirectionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldStoryDirection, v))
}

// StoryDirectionHasPrefix applies the HasPrefix predicate on the "story_direction" field.
func StoryDirectionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldStoryDirection, v))
}

// StoryDirectionHasSuffix applies the HasSuffix predicate on the "story_direction" field.
func StoryDirectionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldStoryDirection, v))
}

// StoryDirectionIsNil applies the IsNil predicate on the "story_direction" field.
func StoryDirectionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStoryDirection))
}

// StoryDirectionNotNil applies the NotNil predicate on the "story_direction" field.
func StoryDirectionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStoryDirection))
}

// StoryDirectionEqualFold applies the EqualFold predicate on the "story_direction" field.
func StoryDirectionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldStoryDirection, v))
}

// StoryDirectionContainsFold applies the ContainsFold predicate on the "story_direction" field.
func StoryDirectionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldStoryDirection, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityRankEQ applies the EQ predicate on the "priority_rank" field.
func PriorityRankEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityRank, v))
}

// PriorityRankNEQ applies the NEQ predicate on the "priority_rank" field.
func PriorityRankNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriorityRank, v))
}

// PriorityRankIn applies the In predicate on the "priority_rank" field.
func PriorityRankIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriorityRank, vs...))
}

// PriorityRankNotIn applies the NotIn predicate on the "priority_rank" field.
func PriorityRankNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriorityRank, vs...))
}

// PriorityRankGT applies the GT predicate on the "priority_rank" field.
func PriorityRankGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriorityRank, v))
}

// PriorityRankGTE applies the GTE predicate on the "priority_rank" field.
func PriorityRankGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriorityRank, v))
}

// PriorityRankLT applies the LT predicate on the "priority_rank" field.
func PriorityRankLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriorityRank, v))
}

// PriorityRankLTE applies the LTE predicate on the "priority_rank" field.
func PriorityRankLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriorityRank, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// AssetCountEQ applies the EQ predicate on the "asset_count" field.
func AssetCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssetCount, v))
}

// AssetCountNEQ applies the NEQ predicate on the "asset_count" field.
func AssetCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssetCount, v))
}

// AssetCountIn applies the In predicate on the "asset_count" field.
func AssetCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssetCount, vs...))
}

// AssetCountNotIn applies the NotIn predicate on the "asset_count" field.
func AssetCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssetCount, vs...))
}

// AssetCountGT applies the GT predicate on the "asset_count" field.
func AssetCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssetCount, v))
}

// AssetCountGTE applies the GTE predicate on the "asset_count" field.
func AssetCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssetCount, v))
}

// AssetCountLT applies the LT predicate on the "asset_count" field.
func AssetCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssetCount, v))
}

// AssetCountLTE applies the LTE predicate on the "asset_count" field.
func AssetCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssetCount, v))
}

// ClipCountEQ applies the EQ predicate on the "clip_count" field.
func ClipCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClipCount, v))
}

// ClipCountNEQ applies the NEQ predicate on the "clip_count" field.
func ClipCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldClipCount, v))
}

// ClipCountIn applies the In predicate on the "clip_count" field.
func ClipCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldClipCount, vs...))
}

// ClipCountNotIn applies the NotIn predicate on the "clip_count" field.
func ClipCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldClipCount, vs...))
}

// ClipCountGT applies the GT predicate on the "clip_count" field.
func ClipCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldClipCount, v))
}

// ClipCountGTE applies the GTE predicate on the "clip_count" field.
func ClipCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldClipCount, v))
}

// ClipCountLT applies the LT predicate on the "clip_count" field.
func ClipCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldClipCount, v))
}

// ClipCountLTE applies the LTE predicate on the "clip_count" field.
func ClipCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldClipCount, v))
}

// ErrorLogEQ applies the EQ predicate on the "error_log" field.
func ErrorLogEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorLog, v))
}

// ErrorLogNEQ applies the NEQ predicate on the "error_log" field.
func ErrorLogNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorLog, v))
}

// ErrorLogIn applies the In predicate on the "error_log" field.
func ErrorLogIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorLog, vs...))
}

// ErrorLogNotIn applies the NotIn predicate on the "error_log" field.
func ErrorLogNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorLog, vs...))
}

// ErrorLogGT applies the GT predicate on the "error_log" field.
func ErrorLogGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorLog, v))
}

// ErrorLogGTE applies the GTE predicate on the "error_log" field.
func ErrorLogGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorLog, v))
}

// ErrorLogLT applies the LT predicate on the "error_log" field.
func ErrorLogLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorLog, v))
}

// ErrorLogLTE applies the LTE predicate on the "error_log" field.
func ErrorLogLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorLog, v))
}

// ErrorLogContains applies the Contains predicate on the "error_log" field.
func ErrorLogContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorLog, v))
}

// ErrorLogHasPrefix applies the HasPrefix predicate on the "error_log" field.
func ErrorLogHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorLog, v))
}

// ErrorLogHasSuffix applies the HasSuffix predicate on the "error_log" field.
func ErrorLogHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorLog, v))
}

// ErrorLogIsNil applies the IsNil predicate on the "error_log" field.
func ErrorLogIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorLog))
}

// ErrorLogNotNil applies the NotNil predicate on the "error_log" field.
func ErrorLogNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorLog))
}

// ErrorLogEqualFold applies the EqualFold predicate on the "error_log" field.
func ErrorLogEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorLog, v))
}

// ErrorLogContainsFold applies the ContainsFold predicate on the "error_log" field.
func ErrorLogContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorLog, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathIsNil applies the IsNil predicate on the "output_path" field.
func OutputPathIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldOutputPath))
}

// OutputPathNotNil applies the NotNil predicate on the "output_path" field.
func OutputPathNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldOutputPath))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldOutputPath, v))
}

// OutputDurationSEQ applies the EQ predicate on the "output_duration_s" field.
func OutputDurationSEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOutputDurationS, v))
}

// OutputDurationSNEQ applies the NEQ predicate on the "output_duration_s" field.
func OutputDurationSNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOutputDurationS, v))
}

// OutputDurationSIn applies the In predicate on the "output_duration_s" field.
func OutputDurationSIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOutputDurationS, vs...))
}

// OutputDurationSNotIn applies the NotIn predicate on the "output_duration_s" field.
func OutputDurationSNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOutputDurationS, vs...))
}

// OutputDurationSGT applies the GT predicate on the "output_duration_s" field.
func OutputDurationSGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldOutputDurationS, v))
}

// OutputDurationSGTE applies the GTE predicate on the "output_duration_s" field.
func OutputDurationSGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldOutputDurationS, v))
}

// OutputDurationSLT applies the LT predicate on the "output_duration_s" field.
func OutputDurationSLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldOutputDurationS, v))
}

// OutputDurationSLTE applies the LTE predicate on the "output_duration_s" field.
func OutputDurationSLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldOutputDurationS, v))
}

// OutputDurationSIsNil applies the IsNil predicate on the "output_duration_s" field.
func OutputDurationSIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldOutputDurationS))
}

// OutputDurationSNotNil applies the NotNil predicate on the "output_duration_s" field.
func OutputDurationSNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldOutputDurationS))
}

// PipelineCostUsdEQ applies the EQ predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineCostUsd, v))
}

// PipelineCostUsdNEQ applies the NEQ predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPipelineCostUsd, v))
}

// PipelineCostUsdIn applies the In predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPipelineCostUsd, vs...))
}

// PipelineCostUsdNotIn applies the NotIn predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPipelineCostUsd, vs...))
}

// PipelineCostUsdGT applies the GT predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPipelineCostUsd, v))
}

// PipelineCostUsdGTE applies the GTE predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPipelineCostUsd, v))
}

// PipelineCostUsdLT applies the LT predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPipelineCostUsd, v))
}

// PipelineCostUsdLTE applies the LTE predicate on the "pipeline_cost_usd" field.
func PipelineCostUsdLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPipelineCostUsd, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAttempts, v))
}

// RetryAfterEQ applies the EQ predicate on the "retry_after" field.
func RetryAfterEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryAfter, v))
}

// RetryAfterNEQ applies the NEQ predicate on the "retry_after" field.
func RetryAfterNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRetryAfter, v))
}

// RetryAfterIn applies the In predicate on the "retry_after" field.
func RetryAfterIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRetryAfter, vs...))
}

// RetryAfterNotIn applies the NotIn predicate on the "retry_after" field.
func RetryAfterNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRetryAfter, vs...))
}

// RetryAfterGT applies the GT predicate on the "retry_after" field.
func RetryAfterGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRetryAfter, v))
}

// RetryAfterGTE applies the GTE predicate on the "retry_after" field.
func RetryAfterGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRetryAfter, v))
}

// RetryAfterLT applies the LT predicate on the "retry_after" field.
func RetryAfterLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRetryAfter, v))
}

// RetryAfterLTE applies the LTE predicate on the "retry_after" field.
func RetryAfterLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRetryAfter, v))
}

// RetryAfterIsNil applies the IsNil predicate on the "retry_after" field.
func RetryAfterIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldRetryAfter))
}

// RetryAfterNotNil applies the NotNil predicate on the "retry_after" field.
func RetryAfterNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldRetryAfter))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// StepsIsNil applies the IsNil predicate on the "steps" field.
func StepsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSteps))
}

// StepsNotNil applies the NotNil predicate on the "steps" field.
func StepsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSteps))
}

// PipelineStartTimeEQ applies the EQ predicate on the "pipeline_start_time" field.
func PipelineStartTimeEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineStartTime, v))
}

// PipelineStartTimeNEQ applies the NEQ predicate on the "pipeline_start_time" field.
func PipelineStartTimeNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPipelineStartTime, v))
}

// PipelineStartTimeIn applies the In predicate on the "pipeline_start_time" field.
func PipelineStartTimeIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPipelineStartTime, vs...))
}

// PipelineStartTimeNotIn applies the NotIn predicate on the "pipeline_start_time" field.
func PipelineStartTimeNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPipelineStartTime, vs...))
}

// PipelineStartTimeGT applies the GT predicate on the "pipeline_start_time" field.
func PipelineStartTimeGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPipelineStartTime, v))
}

// PipelineStartTimeGTE applies the GTE predicate on the "pipeline_start_time" field.
func PipelineStartTimeGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPipelineStartTime, v))
}

// PipelineStartTimeLT applies the LT predicate on the "pipeline_start_time" field.
func PipelineStartTimeLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPipelineStartTime, v))
}

// PipelineStartTimeLTE applies the LTE predicate on the "pipeline_start_time" field.
func PipelineStartTimeLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPipelineStartTime, v))
}

// PipelineStartTimeIsNil applies the IsNil predicate on the "pipeline_start_time" field.
func PipelineStartTimeIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPipelineStartTime))
}

// PipelineStartTimeNotNil applies the NotNil predicate on the "pipeline_start_time" field.
func PipelineStartTimeNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPipelineStartTime))
}

// PipelineEndTimeEQ applies the EQ predicate on the "pipeline_end_time" field.
func PipelineEndTimeEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPipelineEndTime, v))
}

// PipelineEndTimeNEQ applies the NEQ predicate on the "pipeline_end_time" field.
func PipelineEndTimeNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPipelineEndTime, v))
}

// PipelineEndTimeIn applies the In predicate on the "pipeline_end_time" field.
func PipelineEndTimeIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPipelineEndTime, vs...))
}

// PipelineEndTimeNotIn applies the NotIn predicate on the "pipeline_end_time" field.
func PipelineEndTimeNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPipelineEndTime, vs...))
}

// PipelineEndTimeGT applies the GT predicate on the "pipeline_end_time" field.
func PipelineEndTimeGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPipelineEndTime, v))
}

// PipelineEndTimeGTE applies the GTE predicate on the "pipeline_end_time" field.
func PipelineEndTimeGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPipelineEndTime, v))
}

// PipelineEndTimeLT applies the LT predicate on the "pipeline_end_time" field.
func PipelineEndTimeLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPipelineEndTime, v))
}

// PipelineEndTimeLTE applies the LTE predicate on the "pipeline_end_time" field.
func PipelineEndTimeLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPipelineEndTime, v))
}

// PipelineEndTimeIsNil applies the IsNil predicate on the "pipeline_end_time" field.
func PipelineEndTimeIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPipelineEndTime))
}

// PipelineEndTimeNotNil applies the NotNil predicate on the "pipeline_end_time" field.
func PipelineEndTimeNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPipelineEndTime))
}

// ReviewStartedAtEQ applies the EQ predicate on the "review_started_at" field.
func ReviewStartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewStartedAt, v))
}

// ReviewStartedAtNEQ applies the NEQ predicate on the "review_started_at" field.
func ReviewStartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReviewStartedAt, v))
}

// ReviewStartedAtIn applies the In predicate on the "review_started_at" field.
func ReviewStartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldReviewStartedAt, vs...))
}

// ReviewStartedAtNotIn applies the NotIn predicate on the "review_started_at" field.
func ReviewStartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldReviewStartedAt, vs...))
}

// ReviewStartedAtGT applies the GT predicate on the "review_started_at" field.
func ReviewStartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldReviewStartedAt, v))
}

// ReviewStartedAtGTE applies the GTE predicate on the "review_started_at" field.
func ReviewStartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldReviewStartedAt, v))
}

// ReviewStartedAtLT applies the LT predicate on the "review_started_at" field.
func ReviewStartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldReviewStartedAt, v))
}

// ReviewStartedAtLTE applies the LTE predicate on the "review_started_at" field.
func ReviewStartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldReviewStartedAt, v))
}

// ReviewStartedAtIsNil applies the IsNil predicate on the "review_started_at" field.
func ReviewStartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldReviewStartedAt))
}

// ReviewStartedAtNotNil applies the NotNil predicate on the "review_started_at" field.
func ReviewStartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldReviewStartedAt))
}

// ReviewCompletedAtEQ applies the EQ predicate on the "review_completed_at" field.
func ReviewCompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtNEQ applies the NEQ predicate on the "review_completed_at" field.
func ReviewCompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtIn applies the In predicate on the "review_completed_at" field.
func ReviewCompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldReviewCompletedAt, vs...))
}

// ReviewCompletedAtNotIn applies the NotIn predicate on the "review_completed_at" field.
func ReviewCompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldReviewCompletedAt, vs...))
}

// ReviewCompletedAtGT applies the GT predicate on the "review_completed_at" field.
func ReviewCompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtGTE applies the GTE predicate on the "review_completed_at" field.
func ReviewCompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtLT applies the LT predicate on the "review_completed_at" field.
func ReviewCompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtLTE applies the LTE predicate on the "review_completed_at" field.
func ReviewCompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldReviewCompletedAt, v))
}

// ReviewCompletedAtIsNil applies the IsNil predicate on the "review_completed_at" field.
func ReviewCompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldReviewCompletedAt))
}

// ReviewCompletedAtNotNil applies the NotNil predicate on the "review_completed_at" field.
func ReviewCompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldReviewCompletedAt))
}

// ReviewLogIsNil applies the IsNil predicate on the "review_log" field.
func ReviewLogIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldReviewLog))
}

// ReviewLogNotNil applies the NotNil predicate on the "review_log" field.
func ReviewLogNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldReviewLog))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasChannel applies the HasEdge predicate on the "channel" edge.
func HasChannel() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChannelTable, ChannelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChannelWith applies the HasEdge predicate on the "channel" edge with a given conditions (other predicates).
func HasChannelWith(preds ...predicate.Channel) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newChannelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCostEntries applies the HasEdge predicate on the "cost_entries" edge.
func HasCostEntries() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CostEntriesTable, CostEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCostEntriesWith applies the HasEdge predicate on the "cost_entries" edge with a given conditions (other predicates).
func HasCostEntriesWith(preds ...predicate.CostEntry) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCostEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
