// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/predicate"
	"github.com/reelworks/reelpipe/ent/task"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelMutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdate) SetName(v string) *ChannelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ChannelUpdate) SetActive(v bool) *ChannelUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableActive(v *bool) *ChannelUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ChannelUpdate) SetPriority(v channel.Priority) *ChannelUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillablePriority(v *channel.Priority) *ChannelUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetVoiceID sets the "voice_id" field.
func (_u *ChannelUpdate) SetVoiceID(v string) *ChannelUpdate {
	_u.mutation.SetVoiceID(v)
	return _u
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableVoiceID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetVoiceID(*v)
	}
	return _u
}

// ClearVoiceID clears the value of the "voice_id" field.
func (_u *ChannelUpdate) ClearVoiceID() *ChannelUpdate {
	_u.mutation.ClearVoiceID()
	return _u
}

// SetBrandingDir sets the "branding_dir" field.
func (_u *ChannelUpdate) SetBrandingDir(v string) *ChannelUpdate {
	_u.mutation.SetBrandingDir(v)
	return _u
}

// SetNillableBrandingDir sets the "branding_dir" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableBrandingDir(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetBrandingDir(*v)
	}
	return _u
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (_u *ChannelUpdate) ClearBrandingDir() *ChannelUpdate {
	_u.mutation.ClearBrandingDir()
	return _u
}

// SetStorageStrategy sets the "storage_strategy" field.
func (_u *ChannelUpdate) SetStorageStrategy(v string) *ChannelUpdate {
	_u.mutation.SetStorageStrategy(v)
	return _u
}

// SetNillableStorageStrategy sets the "storage_strategy" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableStorageStrategy(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetStorageStrategy(*v)
	}
	return _u
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (_u *ChannelUpdate) SetCredentialsEnc(v string) *ChannelUpdate {
	_u.mutation.SetCredentialsEnc(v)
	return _u
}

// SetNillableCredentialsEnc sets the "credentials_enc" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableCredentialsEnc(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetCredentialsEnc(*v)
	}
	return _u
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (_u *ChannelUpdate) ClearCredentialsEnc() *ChannelUpdate {
	_u.mutation.ClearCredentialsEnc()
	return _u
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (_u *ChannelUpdate) SetStageTimeoutsS(v map[string]int) *ChannelUpdate {
	_u.mutation.SetStageTimeoutsS(v)
	return _u
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (_u *ChannelUpdate) ClearStageTimeoutsS() *ChannelUpdate {
	_u.mutation.ClearStageTimeoutsS()
	return _u
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (_u *ChannelUpdate) SetDefaultAssetCount(v int) *ChannelUpdate {
	_u.mutation.ResetDefaultAssetCount()
	_u.mutation.SetDefaultAssetCount(v)
	return _u
}

// SetNillableDefaultAssetCount sets the "default_asset_count" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableDefaultAssetCount(v *int) *ChannelUpdate {
	if v != nil {
		_u.SetDefaultAssetCount(*v)
	}
	return _u
}

// AddDefaultAssetCount adds value to the "default_asset_count" field.
func (_u *ChannelUpdate) AddDefaultAssetCount(v int) *ChannelUpdate {
	_u.mutation.AddDefaultAssetCount(v)
	return _u
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (_u *ChannelUpdate) SetDefaultClipCount(v int) *ChannelUpdate {
	_u.mutation.ResetDefaultClipCount()
	_u.mutation.SetDefaultClipCount(v)
	return _u
}

// SetNillableDefaultClipCount sets the "default_clip_count" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableDefaultClipCount(v *int) *ChannelUpdate {
	if v != nil {
		_u.SetDefaultClipCount(*v)
	}
	return _u
}

// AddDefaultClipCount adds value to the "default_clip_count" field.
func (_u *ChannelUpdate) AddDefaultClipCount(v int) *ChannelUpdate {
	_u.mutation.AddDefaultClipCount(v)
	return _u
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_u *ChannelUpdate) SetLastClaimedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetLastClaimedAt(v)
	return _u
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableLastClaimedAt(v *time.Time) *ChannelUpdate {
	if v != nil {
		_u.SetLastClaimedAt(*v)
	}
	return _u
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (_u *ChannelUpdate) ClearLastClaimedAt() *ChannelUpdate {
	_u.mutation.ClearLastClaimedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdate) SetUpdatedAt(v time.Time) *ChannelUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ChannelUpdate) AddTaskIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ChannelUpdate) AddTasks(v ...*Task) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ChannelUpdate) ClearTasks() *ChannelUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ChannelUpdate) RemoveTaskIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ChannelUpdate) RemoveTasks(v ...*Task) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := channel.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Channel.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(channel.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(channel.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VoiceID(); ok {
		_spec.SetField(channel.FieldVoiceID, field.TypeString, value)
	}
	if _u.mutation.VoiceIDCleared() {
		_spec.ClearField(channel.FieldVoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.BrandingDir(); ok {
		_spec.SetField(channel.FieldBrandingDir, field.TypeString, value)
	}
	if _u.mutation.BrandingDirCleared() {
		_spec.ClearField(channel.FieldBrandingDir, field.TypeString)
	}
	if value, ok := _u.mutation.StorageStrategy(); ok {
		_spec.SetField(channel.FieldStorageStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CredentialsEnc(); ok {
		_spec.SetField(channel.FieldCredentialsEnc, field.TypeString, value)
	}
	if _u.mutation.CredentialsEncCleared() {
		_spec.ClearField(channel.FieldCredentialsEnc, field.TypeString)
	}
	if value, ok := _u.mutation.StageTimeoutsS(); ok {
		_spec.SetField(channel.FieldStageTimeoutsS, field.TypeJSON, value)
	}
	if _u.mutation.StageTimeoutsSCleared() {
		_spec.ClearField(channel.FieldStageTimeoutsS, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultAssetCount(); ok {
		_spec.SetField(channel.FieldDefaultAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultAssetCount(); ok {
		_spec.AddField(channel.FieldDefaultAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultClipCount(); ok {
		_spec.SetField(channel.FieldDefaultClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultClipCount(); ok {
		_spec.AddField(channel.FieldDefaultClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastClaimedAt(); ok {
		_spec.SetField(channel.FieldLastClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LastClaimedAtCleared() {
		_spec.ClearField(channel.FieldLastClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelMutation
}

// SetName sets the "name" field.
func (_u *ChannelUpdateOne) SetName(v string) *ChannelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ChannelUpdateOne) SetActive(v bool) *ChannelUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableActive(v *bool) *ChannelUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ChannelUpdateOne) SetPriority(v channel.Priority) *ChannelUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillablePriority(v *channel.Priority) *ChannelUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetVoiceID sets the "voice_id" field.
func (_u *ChannelUpdateOne) SetVoiceID(v string) *ChannelUpdateOne {
	_u.mutation.SetVoiceID(v)
	return _u
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableVoiceID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetVoiceID(*v)
	}
	return _u
}

// ClearVoiceID clears the value of the "voice_id" field.
func (_u *ChannelUpdateOne) ClearVoiceID() *ChannelUpdateOne {
	_u.mutation.ClearVoiceID()
	return _u
}

// SetBrandingDir sets the "branding_dir" field.
func (_u *ChannelUpdateOne) SetBrandingDir(v string) *ChannelUpdateOne {
	_u.mutation.SetBrandingDir(v)
	return _u
}

// SetNillableBrandingDir sets the "branding_dir" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableBrandingDir(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetBrandingDir(*v)
	}
	return _u
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (_u *ChannelUpdateOne) ClearBrandingDir() *ChannelUpdateOne {
	_u.mutation.ClearBrandingDir()
	return _u
}

// SetStorageStrategy sets the "storage_strategy" field.
func (_u *ChannelUpdateOne) SetStorageStrategy(v string) *ChannelUpdateOne {
	_u.mutation.SetStorageStrategy(v)
	return _u
}

// SetNillableStorageStrategy sets the "storage_strategy" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableStorageStrategy(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetStorageStrategy(*v)
	}
	return _u
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (_u *ChannelUpdateOne) SetCredentialsEnc(v string) *ChannelUpdateOne {
	_u.mutation.SetCredentialsEnc(v)
	return _u
}

// SetNillableCredentialsEnc sets the "credentials_enc" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableCredentialsEnc(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetCredentialsEnc(*v)
	}
	return _u
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (_u *ChannelUpdateOne) ClearCredentialsEnc() *ChannelUpdateOne {
	_u.mutation.ClearCredentialsEnc()
	return _u
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (_u *ChannelUpdateOne) SetStageTimeoutsS(v map[string]int) *ChannelUpdateOne {
	_u.mutation.SetStageTimeoutsS(v)
	return _u
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (_u *ChannelUpdateOne) ClearStageTimeoutsS() *ChannelUpdateOne {
	_u.mutation.ClearStageTimeoutsS()
	return _u
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (_u *ChannelUpdateOne) SetDefaultAssetCount(v int) *ChannelUpdateOne {
	_u.mutation.ResetDefaultAssetCount()
	_u.mutation.SetDefaultAssetCount(v)
	return _u
}

// SetNillableDefaultAssetCount sets the "default_asset_count" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableDefaultAssetCount(v *int) *ChannelUpdateOne {
	if v != nil {
		_u.SetDefaultAssetCount(*v)
	}
	return _u
}

// AddDefaultAssetCount adds value to the "default_asset_count" field.
func (_u *ChannelUpdateOne) AddDefaultAssetCount(v int) *ChannelUpdateOne {
	_u.mutation.AddDefaultAssetCount(v)
	return _u
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (_u *ChannelUpdateOne) SetDefaultClipCount(v int) *ChannelUpdateOne {
	_u.mutation.ResetDefaultClipCount()
	_u.mutation.SetDefaultClipCount(v)
	return _u
}

// SetNillableDefaultClipCount sets the "default_clip_count" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableDefaultClipCount(v *int) *ChannelUpdateOne {
	if v != nil {
		_u.SetDefaultClipCount(*v)
	}
	return _u
}

// AddDefaultClipCount adds value to the "default_clip_count" field.
func (_u *ChannelUpdateOne) AddDefaultClipCount(v int) *ChannelUpdateOne {
	_u.mutation.AddDefaultClipCount(v)
	return _u
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_u *ChannelUpdateOne) SetLastClaimedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetLastClaimedAt(v)
	return _u
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableLastClaimedAt(v *time.Time) *ChannelUpdateOne {
	if v != nil {
		_u.SetLastClaimedAt(*v)
	}
	return _u
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (_u *ChannelUpdateOne) ClearLastClaimedAt() *ChannelUpdateOne {
	_u.mutation.ClearLastClaimedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelUpdateOne) SetUpdatedAt(v time.Time) *ChannelUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ChannelUpdateOne) AddTaskIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ChannelUpdateOne) AddTasks(v ...*Task) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ChannelUpdateOne) ClearTasks() *ChannelUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ChannelUpdateOne) RemoveTaskIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ChannelUpdateOne) RemoveTasks(v ...*Task) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := channel.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Channel.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(channel.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(channel.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VoiceID(); ok {
		_spec.SetField(channel.FieldVoiceID, field.TypeString, value)
	}
	if _u.mutation.VoiceIDCleared() {
		_spec.ClearField(channel.FieldVoiceID, field.TypeString)
	}
	if value, ok := _u.mutation.BrandingDir(); ok {
		_spec.SetField(channel.FieldBrandingDir, field.TypeString, value)
	}
	if _u.mutation.BrandingDirCleared() {
		_spec.ClearField(channel.FieldBrandingDir, field.TypeString)
	}
	if value, ok := _u.mutation.StorageStrategy(); ok {
		_spec.SetField(channel.FieldStorageStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CredentialsEnc(); ok {
		_spec.SetField(channel.FieldCredentialsEnc, field.TypeString, value)
	}
	if _u.mutation.CredentialsEncCleared() {
		_spec.ClearField(channel.FieldCredentialsEnc, field.TypeString)
	}
	if value, ok := _u.mutation.StageTimeoutsS(); ok {
		_spec.SetField(channel.FieldStageTimeoutsS, field.TypeJSON, value)
	}
	if _u.mutation.StageTimeoutsSCleared() {
		_spec.ClearField(channel.FieldStageTimeoutsS, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultAssetCount(); ok {
		_spec.SetField(channel.FieldDefaultAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultAssetCount(); ok {
		_spec.AddField(channel.FieldDefaultAssetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultClipCount(); ok {
		_spec.SetField(channel.FieldDefaultClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultClipCount(); ok {
		_spec.AddField(channel.FieldDefaultClipCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastClaimedAt(); ok {
		_spec.SetField(channel.FieldLastClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.LastClaimedAtCleared() {
		_spec.ClearField(channel.FieldLastClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.TasksTable,
			Columns: []string{channel.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
