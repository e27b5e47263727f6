// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/predicate"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *TaskUpdate) SetChannelID(v string) *TaskUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableChannelID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetBoardPageID sets the "board_page_id" field.
func (_u *TaskUpdate) SetBoardPageID(v string) *TaskUpdate {
	_u.mutation.SetBoardPageID(v)
	return _u
}

// SetNillableBoardPageID sets the "board_page_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBoardPageID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBoardPageID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdate) SetTopic(v string) *TaskUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTopic(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *TaskUpdate) ClearTopic() *TaskUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetStoryDirection sets the "story_direction" field.
func (_u *TaskUpdate) SetStoryDirection(v string) *TaskUpdate {
	_u.mutation.SetStoryDirection(v)
	return _u
}

// SetNillableStoryDirection sets the "story_direction" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStoryDirection(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStoryDirection(*v)
	}
	return _u
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (_u *TaskUpdate) ClearStoryDirection() *TaskUpdate {
	_u.mutation.ClearStoryDirection()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *TaskUpdate) SetPriorityRank(v int) *TaskUpdate {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriorityRank(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *TaskUpdate) AddPriorityRank(v int) *TaskUpdate {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssetCount sets the "asset_count" field.
func (_u *TaskUpdate) SetAssetCount(v int) *TaskUpdate {
	_u.mutation.ResetAssetCount()
	_u.mutation.SetAssetCount(v)
	return _u
}

// SetNillableAssetCount sets the "asset_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssetCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAssetCount(*v)
	}
	return _u
}

// AddAssetCount adds value to the "asset_count" field.
func (_u *TaskUpdate) AddAssetCount(v int) *TaskUpdate {
	_u.mutation.AddAssetCount(v)
	return _u
}

// SetClipCount sets the "clip_count" field.
func (_u *TaskUpdate) SetClipCount(v int) *TaskUpdate {
	_u.mutation.ResetClipCount()
	_u.mutation.SetClipCount(v)
	return _u
}

// SetNillableClipCount sets the "clip_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClipCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetClipCount(*v)
	}
	return _u
}

// AddClipCount adds value to the "clip_count" field.
func (_u *TaskUpdate) AddClipCount(v int) *TaskUpdate {
	_u.mutation.AddClipCount(v)
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *TaskUpdate) SetErrorLog(v string) *TaskUpdate {
	_u.mutation.SetErrorLog(v)
	return _u
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorLog(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorLog(*v)
	}
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *TaskUpdate) ClearErrorLog() *TaskUpdate {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *TaskUpdate) SetOutputPath(v string) *TaskUpdate {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOutputPath(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// ClearOutputPath clears the value of the "output_path" field.
func (_u *TaskUpdate) ClearOutputPath() *TaskUpdate {
	_u.mutation.ClearOutputPath()
	return _u
}

// SetOutputDurationS sets the "output_duration_s" field.
func (_u *TaskUpdate) SetOutputDurationS(v float64) *TaskUpdate {
	_u.mutation.ResetOutputDurationS()
	_u.mutation.SetOutputDurationS(v)
	return _u
}

// SetNillableOutputDurationS sets the "output_duration_s" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOutputDurationS(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetOutputDurationS(*v)
	}
	return _u
}

// AddOutputDurationS adds value to the "output_duration_s" field.
func (_u *TaskUpdate) AddOutputDurationS(v float64) *TaskUpdate {
	_u.mutation.AddOutputDurationS(v)
	return _u
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (_u *TaskUpdate) ClearOutputDurationS() *TaskUpdate {
	_u.mutation.ClearOutputDurationS()
	return _u
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (_u *TaskUpdate) SetPipelineCostUsd(v float64) *TaskUpdate {
	_u.mutation.ResetPipelineCostUsd()
	_u.mutation.SetPipelineCostUsd(v)
	return _u
}

// SetNillablePipelineCostUsd sets the "pipeline_cost_usd" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePipelineCostUsd(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetPipelineCostUsd(*v)
	}
	return _u
}

// AddPipelineCostUsd adds value to the "pipeline_cost_usd" field.
func (_u *TaskUpdate) AddPipelineCostUsd(v float64) *TaskUpdate {
	_u.mutation.AddPipelineCostUsd(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdate) SetAttempts(v int) *TaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdate) AddAttempts(v int) *TaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TaskUpdate) SetRetryAfter(v time.Time) *TaskUpdate {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRetryAfter(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TaskUpdate) ClearRetryAfter() *TaskUpdate {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TaskUpdate) SetClaimedBy(v string) *TaskUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableClaimedBy(v *string) *TaskUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TaskUpdate) ClearClaimedBy() *TaskUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *TaskUpdate) SetSteps(v models.Ledger) *TaskUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *TaskUpdate) ClearSteps() *TaskUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (_u *TaskUpdate) SetPipelineStartTime(v time.Time) *TaskUpdate {
	_u.mutation.SetPipelineStartTime(v)
	return _u
}

// SetNillablePipelineStartTime sets the "pipeline_start_time" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePipelineStartTime(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetPipelineStartTime(*v)
	}
	return _u
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (_u *TaskUpdate) ClearPipelineStartTime() *TaskUpdate {
	_u.mutation.ClearPipelineStartTime()
	return _u
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (_u *TaskUpdate) SetPipelineEndTime(v time.Time) *TaskUpdate {
	_u.mutation.SetPipelineEndTime(v)
	return _u
}

// SetNillablePipelineEndTime sets the "pipeline_end_time" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePipelineEndTime(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetPipelineEndTime(*v)
	}
	return _u
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (_u *TaskUpdate) ClearPipelineEndTime() *TaskUpdate {
	_u.mutation.ClearPipelineEndTime()
	return _u
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_u *TaskUpdate) SetReviewStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetReviewStartedAt(v)
	return _u
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReviewStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetReviewStartedAt(*v)
	}
	return _u
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (_u *TaskUpdate) ClearReviewStartedAt() *TaskUpdate {
	_u.mutation.ClearReviewStartedAt()
	return _u
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_u *TaskUpdate) SetReviewCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetReviewCompletedAt(v)
	return _u
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReviewCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetReviewCompletedAt(*v)
	}
	return _u
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (_u *TaskUpdate) ClearReviewCompletedAt() *TaskUpdate {
	_u.mutation.ClearReviewCompletedAt()
	return _u
}

// SetReviewLog sets the "review_log" field.
func (_u *TaskUpdate) SetReviewLog(v []models.ReviewEvidence) *TaskUpdate {
	_u.mutation.SetReviewLog(v)
	return _u
}

// AppendReviewLog appends value to the "review_log" field.
func (_u *TaskUpdate) AppendReviewLog(v []models.ReviewEvidence) *TaskUpdate {
	_u.mutation.AppendReviewLog(v)
	return _u
}

// ClearReviewLog clears the value of the "review_log" field.
func (_u *TaskUpdate) ClearReviewLog() *TaskUpdate {
	_u.mutation.ClearReviewLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_u *TaskUpdate) SetChannel(v *Channel) *TaskUpdate {
	return _u.SetChannelID(v.ID)
}

// AddCostEntryIDs adds the "cost_entries" edge to the CostEntry entity by IDs.
func (_u *TaskUpdate) AddCostEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCostEntryIDs(ids...)
	return _u
}

// AddCostEntries adds the "cost_entries" edges to the CostEntry entity.
func (_u *TaskUpdate) AddCostEntries(v ...*CostEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostEntryIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (_u *TaskUpdate) ClearChannel() *TaskUpdate {
	_u.mutation.ClearChannel()
	return _u
}

// ClearCostEntries clears all "cost_entries" edges to the CostEntry entity.
func (_u *TaskUpdate) ClearCostEntries() *TaskUpdate {
	_u.mutation.ClearCostEntries()
	return _u
}

// RemoveCostEntryIDs removes the "cost_entries" edge to CostEntry entities by IDs.
func (_u *TaskUpdate) RemoveCostEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCostEntryIDs(ids...)
	return _u
}

// RemoveCostEntries removes "cost_entries" edges to CostEntry entities.
func (_u *TaskUpdate) RemoveCostEntries(v ...*CostEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.channel"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BoardPageID(); ok {
		_spec.SetField(task.FieldBoardPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(task.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.StoryDirection(); ok {
		_spec.SetField(task.FieldStoryDirection, field.TypeString, value)
	}
	if _u.mutation.StoryDirectionCleared() {
		_spec.ClearField(task.FieldStoryDirection, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssetCount(); ok {
		_spec.SetField(task.FieldAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssetCount(); ok {
		_spec.AddField(task.FieldAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClipCount(); ok {
		_spec.SetField(task.FieldClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClipCount(); ok {
		_spec.AddField(task.FieldClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(task.FieldErrorLog, field.TypeString, value)
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(task.FieldErrorLog, field.TypeString)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(task.FieldOutputPath, field.TypeString, value)
	}
	if _u.mutation.OutputPathCleared() {
		_spec.ClearField(task.FieldOutputPath, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDurationS(); ok {
		_spec.SetField(task.FieldOutputDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputDurationS(); ok {
		_spec.AddField(task.FieldOutputDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.OutputDurationSCleared() {
		_spec.ClearField(task.FieldOutputDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PipelineCostUsd(); ok {
		_spec.SetField(task.FieldPipelineCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPipelineCostUsd(); ok {
		_spec.AddField(task.FieldPipelineCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(task.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(task.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(task.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(task.FieldSteps, field.TypeJSON, value)
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(task.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineStartTime(); ok {
		_spec.SetField(task.FieldPipelineStartTime, field.TypeTime, value)
	}
	if _u.mutation.PipelineStartTimeCleared() {
		_spec.ClearField(task.FieldPipelineStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PipelineEndTime(); ok {
		_spec.SetField(task.FieldPipelineEndTime, field.TypeTime, value)
	}
	if _u.mutation.PipelineEndTimeCleared() {
		_spec.ClearField(task.FieldPipelineEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewStartedAt(); ok {
		_spec.SetField(task.FieldReviewStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewStartedAtCleared() {
		_spec.ClearField(task.FieldReviewStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(task.FieldReviewCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCompletedAtCleared() {
		_spec.ClearField(task.FieldReviewCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewLog(); ok {
		_spec.SetField(task.FieldReviewLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldReviewLog, value)
		})
	}
	if _u.mutation.ReviewLogCleared() {
		_spec.ClearField(task.FieldReviewLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChannelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ChannelTable,
			Columns: []string{task.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ChannelTable,
			Columns: []string{task.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostEntriesIDs(); len(nodes) > 0 && !_u.mutation.CostEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetChannelID sets the "channel_id" field.
func (_u *TaskUpdateOne) SetChannelID(v string) *TaskUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableChannelID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetBoardPageID sets the "board_page_id" field.
func (_u *TaskUpdateOne) SetBoardPageID(v string) *TaskUpdateOne {
	_u.mutation.SetBoardPageID(v)
	return _u
}

// SetNillableBoardPageID sets the "board_page_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBoardPageID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBoardPageID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TaskUpdateOne) SetTopic(v string) *TaskUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTopic(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *TaskUpdateOne) ClearTopic() *TaskUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetStoryDirection sets the "story_direction" field.
func (_u *TaskUpdateOne) SetStoryDirection(v string) *TaskUpdateOne {
	_u.mutation.SetStoryDirection(v)
	return _u
}

// SetNillableStoryDirection sets the "story_direction" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStoryDirection(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStoryDirection(*v)
	}
	return _u
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (_u *TaskUpdateOne) ClearStoryDirection() *TaskUpdateOne {
	_u.mutation.ClearStoryDirection()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *TaskUpdateOne) SetPriorityRank(v int) *TaskUpdateOne {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriorityRank(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *TaskUpdateOne) AddPriorityRank(v int) *TaskUpdateOne {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssetCount sets the "asset_count" field.
func (_u *TaskUpdateOne) SetAssetCount(v int) *TaskUpdateOne {
	_u.mutation.ResetAssetCount()
	_u.mutation.SetAssetCount(v)
	return _u
}

// SetNillableAssetCount sets the "asset_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssetCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAssetCount(*v)
	}
	return _u
}

// AddAssetCount adds value to the "asset_count" field.
func (_u *TaskUpdateOne) AddAssetCount(v int) *TaskUpdateOne {
	_u.mutation.AddAssetCount(v)
	return _u
}

// SetClipCount sets the "clip_count" field.
func (_u *TaskUpdateOne) SetClipCount(v int) *TaskUpdateOne {
	_u.mutation.ResetClipCount()
	_u.mutation.SetClipCount(v)
	return _u
}

// SetNillableClipCount sets the "clip_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClipCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetClipCount(*v)
	}
	return _u
}

// AddClipCount adds value to the "clip_count" field.
func (_u *TaskUpdateOne) AddClipCount(v int) *TaskUpdateOne {
	_u.mutation.AddClipCount(v)
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *TaskUpdateOne) SetErrorLog(v string) *TaskUpdateOne {
	_u.mutation.SetErrorLog(v)
	return _u
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorLog(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorLog(*v)
	}
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *TaskUpdateOne) ClearErrorLog() *TaskUpdateOne {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *TaskUpdateOne) SetOutputPath(v string) *TaskUpdateOne {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOutputPath(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// ClearOutputPath clears the value of the "output_path" field.
func (_u *TaskUpdateOne) ClearOutputPath() *TaskUpdateOne {
	_u.mutation.ClearOutputPath()
	return _u
}

// SetOutputDurationS sets the "output_duration_s" field.
func (_u *TaskUpdateOne) SetOutputDurationS(v float64) *TaskUpdateOne {
	_u.mutation.ResetOutputDurationS()
	_u.mutation.SetOutputDurationS(v)
	return _u
}

// SetNillableOutputDurationS sets the "output_duration_s" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOutputDurationS(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetOutputDurationS(*v)
	}
	return _u
}

// AddOutputDurationS adds value to the "output_duration_s" field.
func (_u *TaskUpdateOne) AddOutputDurationS(v float64) *TaskUpdateOne {
	_u.mutation.AddOutputDurationS(v)
	return _u
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (_u *TaskUpdateOne) ClearOutputDurationS() *TaskUpdateOne {
	_u.mutation.ClearOutputDurationS()
	return _u
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (_u *TaskUpdateOne) SetPipelineCostUsd(v float64) *TaskUpdateOne {
	_u.mutation.ResetPipelineCostUsd()
	_u.mutation.SetPipelineCostUsd(v)
	return _u
}

// SetNillablePipelineCostUsd sets the "pipeline_cost_usd" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePipelineCostUsd(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetPipelineCostUsd(*v)
	}
	return _u
}

// AddPipelineCostUsd adds value to the "pipeline_cost_usd" field.
func (_u *TaskUpdateOne) AddPipelineCostUsd(v float64) *TaskUpdateOne {
	_u.mutation.AddPipelineCostUsd(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdateOne) SetAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdateOne) AddAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TaskUpdateOne) SetRetryAfter(v time.Time) *TaskUpdateOne {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRetryAfter(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TaskUpdateOne) ClearRetryAfter() *TaskUpdateOne {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *TaskUpdateOne) SetClaimedBy(v string) *TaskUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableClaimedBy(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *TaskUpdateOne) ClearClaimedBy() *TaskUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *TaskUpdateOne) SetSteps(v models.Ledger) *TaskUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *TaskUpdateOne) ClearSteps() *TaskUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (_u *TaskUpdateOne) SetPipelineStartTime(v time.Time) *TaskUpdateOne {
	_u.mutation.SetPipelineStartTime(v)
	return _u
}

// SetNillablePipelineStartTime sets the "pipeline_start_time" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePipelineStartTime(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetPipelineStartTime(*v)
	}
	return _u
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (_u *TaskUpdateOne) ClearPipelineStartTime() *TaskUpdateOne {
	_u.mutation.ClearPipelineStartTime()
	return _u
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (_u *TaskUpdateOne) SetPipelineEndTime(v time.Time) *TaskUpdateOne {
	_u.mutation.SetPipelineEndTime(v)
	return _u
}

// SetNillablePipelineEndTime sets the "pipeline_end_time" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePipelineEndTime(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetPipelineEndTime(*v)
	}
	return _u
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (_u *TaskUpdateOne) ClearPipelineEndTime() *TaskUpdateOne {
	_u.mutation.ClearPipelineEndTime()
	return _u
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_u *TaskUpdateOne) SetReviewStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetReviewStartedAt(v)
	return _u
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReviewStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetReviewStartedAt(*v)
	}
	return _u
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (_u *TaskUpdateOne) ClearReviewStartedAt() *TaskUpdateOne {
	_u.mutation.ClearReviewStartedAt()
	return _u
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_u *TaskUpdateOne) SetReviewCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetReviewCompletedAt(v)
	return _u
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReviewCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetReviewCompletedAt(*v)
	}
	return _u
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (_u *TaskUpdateOne) ClearReviewCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearReviewCompletedAt()
	return _u
}

// SetReviewLog sets the "review_log" field.
func (_u *TaskUpdateOne) SetReviewLog(v []models.ReviewEvidence) *TaskUpdateOne {
	_u.mutation.SetReviewLog(v)
	return _u
}

// AppendReviewLog appends value to the "review_log" field.
func (_u *TaskUpdateOne) AppendReviewLog(v []models.ReviewEvidence) *TaskUpdateOne {
	_u.mutation.AppendReviewLog(v)
	return _u
}

// ClearReviewLog clears the value of the "review_log" field.
func (_u *TaskUpdateOne) ClearReviewLog() *TaskUpdateOne {
	_u.mutation.ClearReviewLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_u *TaskUpdateOne) SetChannel(v *Channel) *TaskUpdateOne {
	return _u.SetChannelID(v.ID)
}

// AddCostEntryIDs adds the "cost_entries" edge to the CostEntry entity by IDs.
func (_u *TaskUpdateOne) AddCostEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCostEntryIDs(ids...)
	return _u
}

// AddCostEntries adds the "cost_entries" edges to the CostEntry entity.
func (_u *TaskUpdateOne) AddCostEntries(v ...*CostEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostEntryIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (_u *TaskUpdateOne) ClearChannel() *TaskUpdateOne {
	_u.mutation.ClearChannel()
	return _u
}

// ClearCostEntries clears all "cost_entries" edges to the CostEntry entity.
func (_u *TaskUpdateOne) ClearCostEntries() *TaskUpdateOne {
	_u.mutation.ClearCostEntries()
	return _u
}

// RemoveCostEntryIDs removes the "cost_entries" edge to CostEntry entities by IDs.
func (_u *TaskUpdateOne) RemoveCostEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCostEntryIDs(ids...)
	return _u
}

// RemoveCostEntries removes "cost_entries" edges to CostEntry entities.
func (_u *TaskUpdateOne) RemoveCostEntries(v ...*CostEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostEntryIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.ChannelCleared() && len(_u.mutation.ChannelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.channel"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BoardPageID(); ok {
		_spec.SetField(task.FieldBoardPageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(task.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.StoryDirection(); ok {
		_spec.SetField(task.FieldStoryDirection, field.TypeString, value)
	}
	if _u.mutation.StoryDirectionCleared() {
		_spec.ClearField(task.FieldStoryDirection, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssetCount(); ok {
		_spec.SetField(task.FieldAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssetCount(); ok {
		_spec.AddField(task.FieldAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClipCount(); ok {
		_spec.SetField(task.FieldClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClipCount(); ok {
		_spec.AddField(task.FieldClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(task.FieldErrorLog, field.TypeString, value)
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(task.FieldErrorLog, field.TypeString)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(task.FieldOutputPath, field.TypeString, value)
	}
	if _u.mutation.OutputPathCleared() {
		_spec.ClearField(task.FieldOutputPath, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDurationS(); ok {
		_spec.SetField(task.FieldOutputDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputDurationS(); ok {
		_spec.AddField(task.FieldOutputDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.OutputDurationSCleared() {
		_spec.ClearField(task.FieldOutputDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PipelineCostUsd(); ok {
		_spec.SetField(task.FieldPipelineCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPipelineCostUsd(); ok {
		_spec.AddField(task.FieldPipelineCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(task.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(task.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(task.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(task.FieldSteps, field.TypeJSON, value)
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(task.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.PipelineStartTime(); ok {
		_spec.SetField(task.FieldPipelineStartTime, field.TypeTime, value)
	}
	if _u.mutation.PipelineStartTimeCleared() {
		_spec.ClearField(task.FieldPipelineStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PipelineEndTime(); ok {
		_spec.SetField(task.FieldPipelineEndTime, field.TypeTime, value)
	}
	if _u.mutation.PipelineEndTimeCleared() {
		_spec.ClearField(task.FieldPipelineEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewStartedAt(); ok {
		_spec.SetField(task.FieldReviewStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewStartedAtCleared() {
		_spec.ClearField(task.FieldReviewStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(task.FieldReviewCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewCompletedAtCleared() {
		_spec.ClearField(task.FieldReviewCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewLog(); ok {
		_spec.SetField(task.FieldReviewLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldReviewLog, value)
		})
	}
	if _u.mutation.ReviewLogCleared() {
		_spec.ClearField(task.FieldReviewLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChannelCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ChannelTable,
			Columns: []string{task.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ChannelTable,
			Columns: []string{task.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostEntriesIDs(); len(nodes) > 0 && !_u.mutation.CostEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CostEntriesTable,
			Columns: []string{task.CostEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
