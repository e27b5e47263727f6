// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannelID sets the "channel_id" field.
func (_c *TaskCreate) SetChannelID(v string) *TaskCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetBoardPageID sets the "board_page_id" field.
func (_c *TaskCreate) SetBoardPageID(v string) *TaskCreate {
	_c.mutation.SetBoardPageID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TaskCreate) SetTopic(v string) *TaskCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTopic(v *string) *TaskCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetStoryDirection sets the "story_direction" field.
func (_c *TaskCreate) SetStoryDirection(v string) *TaskCreate {
	_c.mutation.SetStoryDirection(v)
	return _c
}

// SetNillableStoryDirection sets the "story_direction" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStoryDirection(v *string) *TaskCreate {
	if v != nil {
		_c.SetStoryDirection(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPriorityRank sets the "priority_rank" field.
func (_c *TaskCreate) SetPriorityRank(v int) *TaskCreate {
	_c.mutation.SetPriorityRank(v)
	return _c
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriorityRank(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriorityRank(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssetCount sets the "asset_count" field.
func (_c *TaskCreate) SetAssetCount(v int) *TaskCreate {
	_c.mutation.SetAssetCount(v)
	return _c
}

// SetClipCount sets the "clip_count" field.
func (_c *TaskCreate) SetClipCount(v int) *TaskCreate {
	_c.mutation.SetClipCount(v)
	return _c
}

// SetErrorLog sets the "error_log" field.
func (_c *TaskCreate) SetErrorLog(v string) *TaskCreate {
	_c.mutation.SetErrorLog(v)
	return _c
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorLog(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorLog(*v)
	}
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *TaskCreate) SetOutputPath(v string) *TaskCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOutputPath(v *string) *TaskCreate {
	if v != nil {
		_c.SetOutputPath(*v)
	}
	return _c
}

// SetOutputDurationS sets the "output_duration_s" field.
func (_c *TaskCreate) SetOutputDurationS(v float64) *TaskCreate {
	_c.mutation.SetOutputDurationS(v)
	return _c
}

// SetNillableOutputDurationS sets the "output_duration_s" field if the given value is not nil.
func (_c *TaskCreate) SetNillableOutputDurationS(v *float64) *TaskCreate {
	if v != nil {
		_c.SetOutputDurationS(*v)
	}
	return _c
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (_c *TaskCreate) SetPipelineCostUsd(v float64) *TaskCreate {
	_c.mutation.SetPipelineCostUsd(v)
	return _c
}

// SetNillablePipelineCostUsd sets the "pipeline_cost_usd" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePipelineCostUsd(v *float64) *TaskCreate {
	if v != nil {
		_c.SetPipelineCostUsd(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TaskCreate) SetAttempts(v int) *TaskCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetRetryAfter sets the "retry_after" field.
func (_c *TaskCreate) SetRetryAfter(v time.Time) *TaskCreate {
	_c.mutation.SetRetryAfter(v)
	return _c
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryAfter(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetRetryAfter(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *TaskCreate) SetClaimedBy(v string) *TaskCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *TaskCreate) SetNillableClaimedBy(v *string) *TaskCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *TaskCreate) SetSteps(v models.Ledger) *TaskCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (_c *TaskCreate) SetPipelineStartTime(v time.Time) *TaskCreate {
	_c.mutation.SetPipelineStartTime(v)
	return _c
}

// SetNillablePipelineStartTime sets the "pipeline_start_time" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePipelineStartTime(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetPipelineStartTime(*v)
	}
	return _c
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (_c *TaskCreate) SetPipelineEndTime(v time.Time) *TaskCreate {
	_c.mutation.SetPipelineEndTime(v)
	return _c
}

// SetNillablePipelineEndTime sets the "pipeline_end_time" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePipelineEndTime(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetPipelineEndTime(*v)
	}
	return _c
}

// SetReviewStartedAt sets the "review_started_at" field.
func (_c *TaskCreate) SetReviewStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetReviewStartedAt(v)
	return _c
}

// SetNillableReviewStartedAt sets the "review_started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReviewStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetReviewStartedAt(*v)
	}
	return _c
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (_c *TaskCreate) SetReviewCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetReviewCompletedAt(v)
	return _c
}

// SetNillableReviewCompletedAt sets the "review_completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReviewCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetReviewCompletedAt(*v)
	}
	return _c
}

// SetReviewLog sets the "review_log" field.
func (_c *TaskCreate) SetReviewLog(v []models.ReviewEvidence) *TaskCreate {
	_c.mutation.SetReviewLog(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_c *TaskCreate) SetChannel(v *Channel) *TaskCreate {
	return _c.SetChannelID(v.ID)
}

// AddCostEntryIDs adds the "cost_entries" edge to the CostEntry entity by IDs.
func (_c *TaskCreate) AddCostEntryIDs(ids ...string) *TaskCreate {
	_c.mutation.AddCostEntryIDs(ids...)
	return _c
}

// AddCostEntries adds the "cost_entries" edges to the CostEntry entity.
func (_c *TaskCreate) AddCostEntries(v ...*CostEntry) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCostEntryIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.PriorityRank(); !ok {
		v := task.DefaultPriorityRank
		_c.mutation.SetPriorityRank(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PipelineCostUsd(); !ok {
		v := task.DefaultPipelineCostUsd
		_c.mutation.SetPipelineCostUsd(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := task.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Task.channel_id"`)}
	}
	if _, ok := _c.mutation.BoardPageID(); !ok {
		return &ValidationError{Name: "board_page_id", err: errors.New(`ent: missing required field "Task.board_page_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityRank(); !ok {
		return &ValidationError{Name: "priority_rank", err: errors.New(`ent: missing required field "Task.priority_rank"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssetCount(); !ok {
		return &ValidationError{Name: "asset_count", err: errors.New(`ent: missing required field "Task.asset_count"`)}
	}
	if _, ok := _c.mutation.ClipCount(); !ok {
		return &ValidationError{Name: "clip_count", err: errors.New(`ent: missing required field "Task.clip_count"`)}
	}
	if _, ok := _c.mutation.PipelineCostUsd(); !ok {
		return &ValidationError{Name: "pipeline_cost_usd", err: errors.New(`ent: missing required field "Task.pipeline_cost_usd"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Task.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.ChannelIDs()) == 0 {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required edge "Task.channel"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BoardPageID(); ok {
		_spec.SetField(task.FieldBoardPageID, field.TypeString, value)
		_node.BoardPageID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(task.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.StoryDirection(); ok {
		_spec.SetField(task.FieldStoryDirection, field.TypeString, value)
		_node.StoryDirection = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
		_node.PriorityRank = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssetCount(); ok {
		_spec.SetField(task.FieldAssetCount, field.TypeInt, value)
		_node.AssetCount = value
	}
	if value, ok := _c.mutation.ClipCount(); ok {
		_spec.SetField(task.FieldClipCount, field.TypeInt, value)
		_node.ClipCount = value
	}
	if value, ok := _c.mutation.ErrorLog(); ok {
		_spec.SetField(task.FieldErrorLog, field.TypeString, value)
		_node.ErrorLog = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(task.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = &value
	}
	if value, ok := _c.mutation.OutputDurationS(); ok {
		_spec.SetField(task.FieldOutputDurationS, field.TypeFloat64, value)
		_node.OutputDurationS = &value
	}
	if value, ok := _c.mutation.PipelineCostUsd(); ok {
		_spec.SetField(task.FieldPipelineCostUsd, field.TypeFloat64, value)
		_node.PipelineCostUsd = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.RetryAfter(); ok {
		_spec.SetField(task.FieldRetryAfter, field.TypeTime, value)
		_node.RetryAfter = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(task.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(task.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.PipelineStartTime(); ok {
		_spec.SetField(task.FieldPipelineStartTime, field.TypeTime, value)
		_node.PipelineStartTime = &value
	}
	if value, ok := _c.mutation.PipelineEndTime(); ok {
		_spec.SetField(task.FieldPipelineEndTime, field.TypeTime, value)
		_node.PipelineEndTime = &value
	}
	if value, ok := _c.mutation.ReviewStartedAt(); ok {
		_spec.SetField(task.FieldReviewStartedAt, field.TypeTime, value)
		_node.ReviewStartedAt = &value
	}
	if value, ok := _c.mutation.ReviewCompletedAt(); ok {
		_spec.SetField(task.FieldReviewCompletedAt, field.TypeTime, value)
		_node.ReviewCompletedAt = &value
	}
	if value, ok := _c.mutation.ReviewLog(); ok {
		_spec.SetField(task.FieldReviewLog, field.TypeJSON, value)
		_node.ReviewLog = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChannelIDs(); len(nodes) > 0 {
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
		_node.ChannelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CostEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetChannelID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetChannelID sets the "channel_id" field.
func (u *TaskUpsert) SetChannelID(v string) *TaskUpsert {
	u.Set(task.FieldChannelID, v)
	return u
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateChannelID() *TaskUpsert {
	u.SetExcluded(task.FieldChannelID)
	return u
}

// SetBoardPageID sets the "board_page_id" field.
func (u *TaskUpsert) SetBoardPageID(v string) *TaskUpsert {
	u.Set(task.FieldBoardPageID, v)
	return u
}

// UpdateBoardPageID sets the "board_page_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateBoardPageID() *TaskUpsert {
	u.SetExcluded(task.FieldBoardPageID)
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetTopic sets the "topic" field.
func (u *TaskUpsert) SetTopic(v string) *TaskUpsert {
	u.Set(task.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTopic() *TaskUpsert {
	u.SetExcluded(task.FieldTopic)
	return u
}

// ClearTopic clears the value of the "topic" field.
func (u *TaskUpsert) ClearTopic() *TaskUpsert {
	u.SetNull(task.FieldTopic)
	return u
}

// SetStoryDirection sets the "story_direction" field.
func (u *TaskUpsert) SetStoryDirection(v string) *TaskUpsert {
	u.Set(task.FieldStoryDirection, v)
	return u
}

// UpdateStoryDirection sets the "story_direction" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStoryDirection() *TaskUpsert {
	u.SetExcluded(task.FieldStoryDirection)
	return u
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (u *TaskUpsert) ClearStoryDirection() *TaskUpsert {
	u.SetNull(task.FieldStoryDirection)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v task.Priority) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// SetPriorityRank sets the "priority_rank" field.
func (u *TaskUpsert) SetPriorityRank(v int) *TaskUpsert {
	u.Set(task.FieldPriorityRank, v)
	return u
}

// UpdatePriorityRank sets the "priority_rank" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriorityRank() *TaskUpsert {
	u.SetExcluded(task.FieldPriorityRank)
	return u
}

// AddPriorityRank adds v to the "priority_rank" field.
func (u *TaskUpsert) AddPriorityRank(v int) *TaskUpsert {
	u.Add(task.FieldPriorityRank, v)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetAssetCount sets the "asset_count" field.
func (u *TaskUpsert) SetAssetCount(v int) *TaskUpsert {
	u.Set(task.FieldAssetCount, v)
	return u
}

// UpdateAssetCount sets the "asset_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssetCount() *TaskUpsert {
	u.SetExcluded(task.FieldAssetCount)
	return u
}

// AddAssetCount adds v to the "asset_count" field.
func (u *TaskUpsert) AddAssetCount(v int) *TaskUpsert {
	u.Add(task.FieldAssetCount, v)
	return u
}

// SetClipCount sets the "clip_count" field.
func (u *TaskUpsert) SetClipCount(v int) *TaskUpsert {
	u.Set(task.FieldClipCount, v)
	return u
}

// UpdateClipCount sets the "clip_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClipCount() *TaskUpsert {
	u.SetExcluded(task.FieldClipCount)
	return u
}

// AddClipCount adds v to the "clip_count" field.
func (u *TaskUpsert) AddClipCount(v int) *TaskUpsert {
	u.Add(task.FieldClipCount, v)
	return u
}

// SetErrorLog sets the "error_log" field.
func (u *TaskUpsert) SetErrorLog(v string) *TaskUpsert {
	u.Set(task.FieldErrorLog, v)
	return u
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *TaskUpsert) UpdateErrorLog() *TaskUpsert {
	u.SetExcluded(task.FieldErrorLog)
	return u
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *TaskUpsert) ClearErrorLog() *TaskUpsert {
	u.SetNull(task.FieldErrorLog)
	return u
}

// SetOutputPath sets the "output_path" field.
func (u *TaskUpsert) SetOutputPath(v string) *TaskUpsert {
	u.Set(task.FieldOutputPath, v)
	return u
}

// UpdateOutputPath sets the "output_path" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOutputPath() *TaskUpsert {
	u.SetExcluded(task.FieldOutputPath)
	return u
}

// ClearOutputPath clears the value of the "output_path" field.
func (u *TaskUpsert) ClearOutputPath() *TaskUpsert {
	u.SetNull(task.FieldOutputPath)
	return u
}

// SetOutputDurationS sets the "output_duration_s" field.
func (u *TaskUpsert) SetOutputDurationS(v float64) *TaskUpsert {
	u.Set(task.FieldOutputDurationS, v)
	return u
}

// UpdateOutputDurationS sets the "output_duration_s" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOutputDurationS() *TaskUpsert {
	u.SetExcluded(task.FieldOutputDurationS)
	return u
}

// AddOutputDurationS adds v to the "output_duration_s" field.
func (u *TaskUpsert) AddOutputDurationS(v float64) *TaskUpsert {
	u.Add(task.FieldOutputDurationS, v)
	return u
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (u *TaskUpsert) ClearOutputDurationS() *TaskUpsert {
	u.SetNull(task.FieldOutputDurationS)
	return u
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (u *TaskUpsert) SetPipelineCostUsd(v float64) *TaskUpsert {
	u.Set(task.FieldPipelineCostUsd, v)
	return u
}

// UpdatePipelineCostUsd sets the "pipeline_cost_usd" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePipelineCostUsd() *TaskUpsert {
	u.SetExcluded(task.FieldPipelineCostUsd)
	return u
}

// AddPipelineCostUsd adds v to the "pipeline_cost_usd" field.
func (u *TaskUpsert) AddPipelineCostUsd(v float64) *TaskUpsert {
	u.Add(task.FieldPipelineCostUsd, v)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsert) SetAttempts(v int) *TaskUpsert {
	u.Set(task.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsert) AddAttempts(v int) *TaskUpsert {
	u.Add(task.FieldAttempts, v)
	return u
}

// SetRetryAfter sets the "retry_after" field.
func (u *TaskUpsert) SetRetryAfter(v time.Time) *TaskUpsert {
	u.Set(task.FieldRetryAfter, v)
	return u
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRetryAfter() *TaskUpsert {
	u.SetExcluded(task.FieldRetryAfter)
	return u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TaskUpsert) ClearRetryAfter() *TaskUpsert {
	u.SetNull(task.FieldRetryAfter)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsert) SetClaimedBy(v string) *TaskUpsert {
	u.Set(task.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClaimedBy() *TaskUpsert {
	u.SetExcluded(task.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsert) ClearClaimedBy() *TaskUpsert {
	u.SetNull(task.FieldClaimedBy)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsert) SetLastHeartbeatAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastHeartbeatAt() *TaskUpsert {
	u.SetExcluded(task.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsert) ClearLastHeartbeatAt() *TaskUpsert {
	u.SetNull(task.FieldLastHeartbeatAt)
	return u
}

// SetSteps sets the "steps" field.
func (u *TaskUpsert) SetSteps(v models.Ledger) *TaskUpsert {
	u.Set(task.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSteps() *TaskUpsert {
	u.SetExcluded(task.FieldSteps)
	return u
}

// ClearSteps clears the value of the "steps" field.
func (u *TaskUpsert) ClearSteps() *TaskUpsert {
	u.SetNull(task.FieldSteps)
	return u
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (u *TaskUpsert) SetPipelineStartTime(v time.Time) *TaskUpsert {
	u.Set(task.FieldPipelineStartTime, v)
	return u
}

// UpdatePipelineStartTime sets the "pipeline_start_time" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePipelineStartTime() *TaskUpsert {
	u.SetExcluded(task.FieldPipelineStartTime)
	return u
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (u *TaskUpsert) ClearPipelineStartTime() *TaskUpsert {
	u.SetNull(task.FieldPipelineStartTime)
	return u
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (u *TaskUpsert) SetPipelineEndTime(v time.Time) *TaskUpsert {
	u.Set(task.FieldPipelineEndTime, v)
	return u
}

// UpdatePipelineEndTime sets the "pipeline_end_time" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePipelineEndTime() *TaskUpsert {
	u.SetExcluded(task.FieldPipelineEndTime)
	return u
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (u *TaskUpsert) ClearPipelineEndTime() *TaskUpsert {
	u.SetNull(task.FieldPipelineEndTime)
	return u
}

// SetReviewStartedAt sets the "review_started_at" field.
func (u *TaskUpsert) SetReviewStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldReviewStartedAt, v)
	return u
}

// UpdateReviewStartedAt sets the "review_started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateReviewStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldReviewStartedAt)
	return u
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (u *TaskUpsert) ClearReviewStartedAt() *TaskUpsert {
	u.SetNull(task.FieldReviewStartedAt)
	return u
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (u *TaskUpsert) SetReviewCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldReviewCompletedAt, v)
	return u
}

// UpdateReviewCompletedAt sets the "review_completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateReviewCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldReviewCompletedAt)
	return u
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (u *TaskUpsert) ClearReviewCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldReviewCompletedAt)
	return u
}

// SetReviewLog sets the "review_log" field.
func (u *TaskUpsert) SetReviewLog(v []models.ReviewEvidence) *TaskUpsert {
	u.Set(task.FieldReviewLog, v)
	return u
}

// UpdateReviewLog sets the "review_log" field to the value that was provided on create.
func (u *TaskUpsert) UpdateReviewLog() *TaskUpsert {
	u.SetExcluded(task.FieldReviewLog)
	return u
}

// ClearReviewLog clears the value of the "review_log" field.
func (u *TaskUpsert) ClearReviewLog() *TaskUpsert {
	u.SetNull(task.FieldReviewLog)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannelID sets the "channel_id" field.
func (u *TaskUpsertOne) SetChannelID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateChannelID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateChannelID()
	})
}

// SetBoardPageID sets the "board_page_id" field.
func (u *TaskUpsertOne) SetBoardPageID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetBoardPageID(v)
	})
}

// UpdateBoardPageID sets the "board_page_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateBoardPageID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBoardPageID()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetTopic sets the "topic" field.
func (u *TaskUpsertOne) SetTopic(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTopic() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *TaskUpsertOne) ClearTopic() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTopic()
	})
}

// SetStoryDirection sets the "story_direction" field.
func (u *TaskUpsertOne) SetStoryDirection(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStoryDirection(v)
	})
}

// UpdateStoryDirection sets the "story_direction" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStoryDirection() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStoryDirection()
	})
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (u *TaskUpsertOne) ClearStoryDirection() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStoryDirection()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v task.Priority) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetPriorityRank sets the "priority_rank" field.
func (u *TaskUpsertOne) SetPriorityRank(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriorityRank(v)
	})
}

// AddPriorityRank adds v to the "priority_rank" field.
func (u *TaskUpsertOne) AddPriorityRank(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriorityRank(v)
	})
}

// UpdatePriorityRank sets the "priority_rank" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriorityRank() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriorityRank()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAssetCount sets the "asset_count" field.
func (u *TaskUpsertOne) SetAssetCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssetCount(v)
	})
}

// AddAssetCount adds v to the "asset_count" field.
func (u *TaskUpsertOne) AddAssetCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddAssetCount(v)
	})
}

// UpdateAssetCount sets the "asset_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssetCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssetCount()
	})
}

// SetClipCount sets the "clip_count" field.
func (u *TaskUpsertOne) SetClipCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClipCount(v)
	})
}

// AddClipCount adds v to the "clip_count" field.
func (u *TaskUpsertOne) AddClipCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddClipCount(v)
	})
}

// UpdateClipCount sets the "clip_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClipCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClipCount()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *TaskUpsertOne) SetErrorLog(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateErrorLog() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *TaskUpsertOne) ClearErrorLog() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorLog()
	})
}

// SetOutputPath sets the "output_path" field.
func (u *TaskUpsertOne) SetOutputPath(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutputPath(v)
	})
}

// UpdateOutputPath sets the "output_path" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOutputPath() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutputPath()
	})
}

// ClearOutputPath clears the value of the "output_path" field.
func (u *TaskUpsertOne) ClearOutputPath() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutputPath()
	})
}

// SetOutputDurationS sets the "output_duration_s" field.
func (u *TaskUpsertOne) SetOutputDurationS(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutputDurationS(v)
	})
}

// AddOutputDurationS adds v to the "output_duration_s" field.
func (u *TaskUpsertOne) AddOutputDurationS(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddOutputDurationS(v)
	})
}

// UpdateOutputDurationS sets the "output_duration_s" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOutputDurationS() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutputDurationS()
	})
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (u *TaskUpsertOne) ClearOutputDurationS() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutputDurationS()
	})
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (u *TaskUpsertOne) SetPipelineCostUsd(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineCostUsd(v)
	})
}

// AddPipelineCostUsd adds v to the "pipeline_cost_usd" field.
func (u *TaskUpsertOne) AddPipelineCostUsd(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPipelineCostUsd(v)
	})
}

// UpdatePipelineCostUsd sets the "pipeline_cost_usd" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePipelineCostUsd() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineCostUsd()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsertOne) SetAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsertOne) AddAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *TaskUpsertOne) SetRetryAfter(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRetryAfter() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TaskUpsertOne) ClearRetryAfter() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRetryAfter()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsertOne) SetClaimedBy(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClaimedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsertOne) ClearClaimedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertOne) SetLastHeartbeatAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertOne) ClearLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetSteps sets the "steps" field.
func (u *TaskUpsertOne) SetSteps(v models.Ledger) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSteps() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *TaskUpsertOne) ClearSteps() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSteps()
	})
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (u *TaskUpsertOne) SetPipelineStartTime(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineStartTime(v)
	})
}

// UpdatePipelineStartTime sets the "pipeline_start_time" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePipelineStartTime() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineStartTime()
	})
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (u *TaskUpsertOne) ClearPipelineStartTime() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPipelineStartTime()
	})
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (u *TaskUpsertOne) SetPipelineEndTime(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineEndTime(v)
	})
}

// UpdatePipelineEndTime sets the "pipeline_end_time" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePipelineEndTime() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineEndTime()
	})
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (u *TaskUpsertOne) ClearPipelineEndTime() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPipelineEndTime()
	})
}

// SetReviewStartedAt sets the "review_started_at" field.
func (u *TaskUpsertOne) SetReviewStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewStartedAt(v)
	})
}

// UpdateReviewStartedAt sets the "review_started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateReviewStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewStartedAt()
	})
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (u *TaskUpsertOne) ClearReviewStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewStartedAt()
	})
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (u *TaskUpsertOne) SetReviewCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewCompletedAt(v)
	})
}

// UpdateReviewCompletedAt sets the "review_completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateReviewCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewCompletedAt()
	})
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (u *TaskUpsertOne) ClearReviewCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewCompletedAt()
	})
}

// SetReviewLog sets the "review_log" field.
func (u *TaskUpsertOne) SetReviewLog(v []models.ReviewEvidence) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewLog(v)
	})
}

// UpdateReviewLog sets the "review_log" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateReviewLog() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewLog()
	})
}

// ClearReviewLog clears the value of the "review_log" field.
func (u *TaskUpsertOne) ClearReviewLog() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewLog()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetChannelID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetChannelID sets the "channel_id" field.
func (u *TaskUpsertBulk) SetChannelID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateChannelID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateChannelID()
	})
}

// SetBoardPageID sets the "board_page_id" field.
func (u *TaskUpsertBulk) SetBoardPageID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetBoardPageID(v)
	})
}

// UpdateBoardPageID sets the "board_page_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateBoardPageID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateBoardPageID()
	})
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetTopic sets the "topic" field.
func (u *TaskUpsertBulk) SetTopic(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTopic() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTopic()
	})
}

// ClearTopic clears the value of the "topic" field.
func (u *TaskUpsertBulk) ClearTopic() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTopic()
	})
}

// SetStoryDirection sets the "story_direction" field.
func (u *TaskUpsertBulk) SetStoryDirection(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStoryDirection(v)
	})
}

// UpdateStoryDirection sets the "story_direction" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStoryDirection() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStoryDirection()
	})
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (u *TaskUpsertBulk) ClearStoryDirection() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStoryDirection()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v task.Priority) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetPriorityRank sets the "priority_rank" field.
func (u *TaskUpsertBulk) SetPriorityRank(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriorityRank(v)
	})
}

// AddPriorityRank adds v to the "priority_rank" field.
func (u *TaskUpsertBulk) AddPriorityRank(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriorityRank(v)
	})
}

// UpdatePriorityRank sets the "priority_rank" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriorityRank() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriorityRank()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAssetCount sets the "asset_count" field.
func (u *TaskUpsertBulk) SetAssetCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssetCount(v)
	})
}

// AddAssetCount adds v to the "asset_count" field.
func (u *TaskUpsertBulk) AddAssetCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddAssetCount(v)
	})
}

// UpdateAssetCount sets the "asset_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssetCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssetCount()
	})
}

// SetClipCount sets the "clip_count" field.
func (u *TaskUpsertBulk) SetClipCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClipCount(v)
	})
}

// AddClipCount adds v to the "clip_count" field.
func (u *TaskUpsertBulk) AddClipCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddClipCount(v)
	})
}

// UpdateClipCount sets the "clip_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClipCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClipCount()
	})
}

// SetErrorLog sets the "error_log" field.
func (u *TaskUpsertBulk) SetErrorLog(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorLog(v)
	})
}

// UpdateErrorLog sets the "error_log" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateErrorLog() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorLog()
	})
}

// ClearErrorLog clears the value of the "error_log" field.
func (u *TaskUpsertBulk) ClearErrorLog() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorLog()
	})
}

// SetOutputPath sets the "output_path" field.
func (u *TaskUpsertBulk) SetOutputPath(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutputPath(v)
	})
}

// UpdateOutputPath sets the "output_path" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOutputPath() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutputPath()
	})
}

// ClearOutputPath clears the value of the "output_path" field.
func (u *TaskUpsertBulk) ClearOutputPath() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutputPath()
	})
}

// SetOutputDurationS sets the "output_duration_s" field.
func (u *TaskUpsertBulk) SetOutputDurationS(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOutputDurationS(v)
	})
}

// AddOutputDurationS adds v to the "output_duration_s" field.
func (u *TaskUpsertBulk) AddOutputDurationS(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddOutputDurationS(v)
	})
}

// UpdateOutputDurationS sets the "output_duration_s" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOutputDurationS() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOutputDurationS()
	})
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (u *TaskUpsertBulk) ClearOutputDurationS() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOutputDurationS()
	})
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (u *TaskUpsertBulk) SetPipelineCostUsd(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineCostUsd(v)
	})
}

// AddPipelineCostUsd adds v to the "pipeline_cost_usd" field.
func (u *TaskUpsertBulk) AddPipelineCostUsd(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPipelineCostUsd(v)
	})
}

// UpdatePipelineCostUsd sets the "pipeline_cost_usd" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePipelineCostUsd() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineCostUsd()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsertBulk) SetAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsertBulk) AddAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *TaskUpsertBulk) SetRetryAfter(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRetryAfter() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TaskUpsertBulk) ClearRetryAfter() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearRetryAfter()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *TaskUpsertBulk) SetClaimedBy(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClaimedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *TaskUpsertBulk) ClearClaimedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) SetLastHeartbeatAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) ClearLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetSteps sets the "steps" field.
func (u *TaskUpsertBulk) SetSteps(v models.Ledger) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSteps() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *TaskUpsertBulk) ClearSteps() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSteps()
	})
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (u *TaskUpsertBulk) SetPipelineStartTime(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineStartTime(v)
	})
}

// UpdatePipelineStartTime sets the "pipeline_start_time" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePipelineStartTime() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineStartTime()
	})
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (u *TaskUpsertBulk) ClearPipelineStartTime() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPipelineStartTime()
	})
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (u *TaskUpsertBulk) SetPipelineEndTime(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPipelineEndTime(v)
	})
}

// UpdatePipelineEndTime sets the "pipeline_end_time" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePipelineEndTime() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePipelineEndTime()
	})
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (u *TaskUpsertBulk) ClearPipelineEndTime() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPipelineEndTime()
	})
}

// SetReviewStartedAt sets the "review_started_at" field.
func (u *TaskUpsertBulk) SetReviewStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewStartedAt(v)
	})
}

// UpdateReviewStartedAt sets the "review_started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateReviewStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewStartedAt()
	})
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (u *TaskUpsertBulk) ClearReviewStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewStartedAt()
	})
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (u *TaskUpsertBulk) SetReviewCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewCompletedAt(v)
	})
}

// UpdateReviewCompletedAt sets the "review_completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateReviewCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewCompletedAt()
	})
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (u *TaskUpsertBulk) ClearReviewCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewCompletedAt()
	})
}

// SetReviewLog sets the "review_log" field.
func (u *TaskUpsertBulk) SetReviewLog(v []models.ReviewEvidence) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewLog(v)
	})
}

// UpdateReviewLog sets the "review_log" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateReviewLog() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewLog()
	})
}

// ClearReviewLog clears the value of the "review_log" field.
func (u *TaskUpsertBulk) ClearReviewLog() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewLog()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
