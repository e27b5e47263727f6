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
	"github.com/reelworks/reelpipe/ent/task"
)

// ChannelCreate is the builder for creating a Channel entity.
type ChannelCreate struct {
	config
	mutation *ChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ChannelCreate) SetName(v string) *ChannelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ChannelCreate) SetActive(v bool) *ChannelCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableActive(v *bool) *ChannelCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ChannelCreate) SetPriority(v channel.Priority) *ChannelCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ChannelCreate) SetNillablePriority(v *channel.Priority) *ChannelCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetVoiceID sets the "voice_id" field.
func (_c *ChannelCreate) SetVoiceID(v string) *ChannelCreate {
	_c.mutation.SetVoiceID(v)
	return _c
}

// SetNillableVoiceID sets the "voice_id" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableVoiceID(v *string) *ChannelCreate {
	if v != nil {
		_c.SetVoiceID(*v)
	}
	return _c
}

// SetBrandingDir sets the "branding_dir" field.
func (_c *ChannelCreate) SetBrandingDir(v string) *ChannelCreate {
	_c.mutation.SetBrandingDir(v)
	return _c
}

// SetNillableBrandingDir sets the "branding_dir" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableBrandingDir(v *string) *ChannelCreate {
	if v != nil {
		_c.SetBrandingDir(*v)
	}
	return _c
}

// SetStorageStrategy sets the "storage_strategy" field.
func (_c *ChannelCreate) SetStorageStrategy(v string) *ChannelCreate {
	_c.mutation.SetStorageStrategy(v)
	return _c
}

// SetNillableStorageStrategy sets the "storage_strategy" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableStorageStrategy(v *string) *ChannelCreate {
	if v != nil {
		_c.SetStorageStrategy(*v)
	}
	return _c
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (_c *ChannelCreate) SetCredentialsEnc(v string) *ChannelCreate {
	_c.mutation.SetCredentialsEnc(v)
	return _c
}

// SetNillableCredentialsEnc sets the "credentials_enc" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCredentialsEnc(v *string) *ChannelCreate {
	if v != nil {
		_c.SetCredentialsEnc(*v)
	}
	return _c
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (_c *ChannelCreate) SetStageTimeoutsS(v map[string]int) *ChannelCreate {
	_c.mutation.SetStageTimeoutsS(v)
	return _c
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (_c *ChannelCreate) SetDefaultAssetCount(v int) *ChannelCreate {
	_c.mutation.SetDefaultAssetCount(v)
	return _c
}

// SetNillableDefaultAssetCount sets the "default_asset_count" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableDefaultAssetCount(v *int) *ChannelCreate {
	if v != nil {
		_c.SetDefaultAssetCount(*v)
	}
	return _c
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (_c *ChannelCreate) SetDefaultClipCount(v int) *ChannelCreate {
	_c.mutation.SetDefaultClipCount(v)
	return _c
}

// SetNillableDefaultClipCount sets the "default_clip_count" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableDefaultClipCount(v *int) *ChannelCreate {
	if v != nil {
		_c.SetDefaultClipCount(*v)
	}
	return _c
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (_c *ChannelCreate) SetLastClaimedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetLastClaimedAt(v)
	return _c
}

// SetNillableLastClaimedAt sets the "last_claimed_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableLastClaimedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetLastClaimedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelCreate) SetCreatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCreatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChannelCreate) SetUpdatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableUpdatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelCreate) SetID(v string) *ChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *ChannelCreate) AddTaskIDs(ids ...string) *ChannelCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *ChannelCreate) AddTasks(v ...*Task) *ChannelCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_c *ChannelCreate) Mutation() *ChannelMutation {
	return _c.mutation
}

// Save creates the Channel in the database.
func (_c *ChannelCreate) Save(ctx context.Context) (*Channel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelCreate) SaveX(ctx context.Context) *Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := channel.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := channel.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.StorageStrategy(); !ok {
		v := channel.DefaultStorageStrategy
		_c.mutation.SetStorageStrategy(v)
	}
	if _, ok := _c.mutation.DefaultAssetCount(); !ok {
		v := channel.DefaultDefaultAssetCount
		_c.mutation.SetDefaultAssetCount(v)
	}
	if _, ok := _c.mutation.DefaultClipCount(); !ok {
		v := channel.DefaultDefaultClipCount
		_c.mutation.SetDefaultClipCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := channel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Channel.name"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Channel.active"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Channel.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := channel.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Channel.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageStrategy(); !ok {
		return &ValidationError{Name: "storage_strategy", err: errors.New(`ent: missing required field "Channel.storage_strategy"`)}
	}
	if _, ok := _c.mutation.DefaultAssetCount(); !ok {
		return &ValidationError{Name: "default_asset_count", err: errors.New(`ent: missing required field "Channel.default_asset_count"`)}
	}
	if _, ok := _c.mutation.DefaultClipCount(); !ok {
		return &ValidationError{Name: "default_clip_count", err: errors.New(`ent: missing required field "Channel.default_clip_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Channel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Channel.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := channel.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Channel.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ChannelCreate) sqlSave(ctx context.Context) (*Channel, error) {
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
			return nil, fmt.Errorf("unexpected Channel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelCreate) createSpec() (*Channel, *sqlgraph.CreateSpec) {
	var (
		_node = &Channel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channel.Table, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(channel.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(channel.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.VoiceID(); ok {
		_spec.SetField(channel.FieldVoiceID, field.TypeString, value)
		_node.VoiceID = &value
	}
	if value, ok := _c.mutation.BrandingDir(); ok {
		_spec.SetField(channel.FieldBrandingDir, field.TypeString, value)
		_node.BrandingDir = &value
	}
	if value, ok := _c.mutation.StorageStrategy(); ok {
		_spec.SetField(channel.FieldStorageStrategy, field.TypeString, value)
		_node.StorageStrategy = value
	}
	if value, ok := _c.mutation.CredentialsEnc(); ok {
		_spec.SetField(channel.FieldCredentialsEnc, field.TypeString, value)
		_node.CredentialsEnc = value
	}
	if value, ok := _c.mutation.StageTimeoutsS(); ok {
		_spec.SetField(channel.FieldStageTimeoutsS, field.TypeJSON, value)
		_node.StageTimeoutsS = value
	}
	if value, ok := _c.mutation.DefaultAssetCount(); ok {
		_spec.SetField(channel.FieldDefaultAssetCount, field.TypeInt, value)
		_node.DefaultAssetCount = value
	}
	if value, ok := _c.mutation.DefaultClipCount(); ok {
		_spec.SetField(channel.FieldDefaultClipCount, field.TypeInt, value)
		_node.DefaultClipCount = value
	}
	if value, ok := _c.mutation.LastClaimedAt(); ok {
		_spec.SetField(channel.FieldLastClaimedAt, field.TypeTime, value)
		_node.LastClaimedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertOne {
	_c.conflict = opts
	return &ChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflictColumns(columns ...string) *ChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertOne{
		create: _c,
	}
}

type (
	// ChannelUpsertOne is the builder for "upsert"-ing
	//  one Channel node.
	ChannelUpsertOne struct {
		create *ChannelCreate
	}

	// ChannelUpsert is the "OnConflict" setter.
	ChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ChannelUpsert) SetName(v string) *ChannelUpsert {
	u.Set(channel.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateName() *ChannelUpsert {
	u.SetExcluded(channel.FieldName)
	return u
}

// SetActive sets the "active" field.
func (u *ChannelUpsert) SetActive(v bool) *ChannelUpsert {
	u.Set(channel.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateActive() *ChannelUpsert {
	u.SetExcluded(channel.FieldActive)
	return u
}

// SetPriority sets the "priority" field.
func (u *ChannelUpsert) SetPriority(v channel.Priority) *ChannelUpsert {
	u.Set(channel.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ChannelUpsert) UpdatePriority() *ChannelUpsert {
	u.SetExcluded(channel.FieldPriority)
	return u
}

// SetVoiceID sets the "voice_id" field.
func (u *ChannelUpsert) SetVoiceID(v string) *ChannelUpsert {
	u.Set(channel.FieldVoiceID, v)
	return u
}

// UpdateVoiceID sets the "voice_id" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateVoiceID() *ChannelUpsert {
	u.SetExcluded(channel.FieldVoiceID)
	return u
}

// ClearVoiceID clears the value of the "voice_id" field.
func (u *ChannelUpsert) ClearVoiceID() *ChannelUpsert {
	u.SetNull(channel.FieldVoiceID)
	return u
}

// SetBrandingDir sets the "branding_dir" field.
func (u *ChannelUpsert) SetBrandingDir(v string) *ChannelUpsert {
	u.Set(channel.FieldBrandingDir, v)
	return u
}

// UpdateBrandingDir sets the "branding_dir" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateBrandingDir() *ChannelUpsert {
	u.SetExcluded(channel.FieldBrandingDir)
	return u
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (u *ChannelUpsert) ClearBrandingDir() *ChannelUpsert {
	u.SetNull(channel.FieldBrandingDir)
	return u
}

// SetStorageStrategy sets the "storage_strategy" field.
func (u *ChannelUpsert) SetStorageStrategy(v string) *ChannelUpsert {
	u.Set(channel.FieldStorageStrategy, v)
	return u
}

// UpdateStorageStrategy sets the "storage_strategy" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateStorageStrategy() *ChannelUpsert {
	u.SetExcluded(channel.FieldStorageStrategy)
	return u
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (u *ChannelUpsert) SetCredentialsEnc(v string) *ChannelUpsert {
	u.Set(channel.FieldCredentialsEnc, v)
	return u
}

// UpdateCredentialsEnc sets the "credentials_enc" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateCredentialsEnc() *ChannelUpsert {
	u.SetExcluded(channel.FieldCredentialsEnc)
	return u
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (u *ChannelUpsert) ClearCredentialsEnc() *ChannelUpsert {
	u.SetNull(channel.FieldCredentialsEnc)
	return u
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (u *ChannelUpsert) SetStageTimeoutsS(v map[string]int) *ChannelUpsert {
	u.Set(channel.FieldStageTimeoutsS, v)
	return u
}

// UpdateStageTimeoutsS sets the "stage_timeouts_s" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateStageTimeoutsS() *ChannelUpsert {
	u.SetExcluded(channel.FieldStageTimeoutsS)
	return u
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (u *ChannelUpsert) ClearStageTimeoutsS() *ChannelUpsert {
	u.SetNull(channel.FieldStageTimeoutsS)
	return u
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (u *ChannelUpsert) SetDefaultAssetCount(v int) *ChannelUpsert {
	u.Set(channel.FieldDefaultAssetCount, v)
	return u
}

// UpdateDefaultAssetCount sets the "default_asset_count" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateDefaultAssetCount() *ChannelUpsert {
	u.SetExcluded(channel.FieldDefaultAssetCount)
	return u
}

// AddDefaultAssetCount adds v to the "default_asset_count" field.
func (u *ChannelUpsert) AddDefaultAssetCount(v int) *ChannelUpsert {
	u.Add(channel.FieldDefaultAssetCount, v)
	return u
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (u *ChannelUpsert) SetDefaultClipCount(v int) *ChannelUpsert {
	u.Set(channel.FieldDefaultClipCount, v)
	return u
}

// UpdateDefaultClipCount sets the "default_clip_count" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateDefaultClipCount() *ChannelUpsert {
	u.SetExcluded(channel.FieldDefaultClipCount)
	return u
}

// AddDefaultClipCount adds v to the "default_clip_count" field.
func (u *ChannelUpsert) AddDefaultClipCount(v int) *ChannelUpsert {
	u.Add(channel.FieldDefaultClipCount, v)
	return u
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (u *ChannelUpsert) SetLastClaimedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldLastClaimedAt, v)
	return u
}

// UpdateLastClaimedAt sets the "last_claimed_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateLastClaimedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldLastClaimedAt)
	return u
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (u *ChannelUpsert) ClearLastClaimedAt() *ChannelUpsert {
	u.SetNull(channel.FieldLastClaimedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsert) SetUpdatedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateUpdatedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertOne) UpdateNewValues() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(channel.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(channel.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChannelUpsertOne) Ignore() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertOne) DoNothing() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreate.OnConflict
// documentation for more info.
func (u *ChannelUpsertOne) Update(set func(*ChannelUpsert)) *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ChannelUpsertOne) SetName(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateName() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateName()
	})
}

// SetActive sets the "active" field.
func (u *ChannelUpsertOne) SetActive(v bool) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateActive() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateActive()
	})
}

// SetPriority sets the "priority" field.
func (u *ChannelUpsertOne) SetPriority(v channel.Priority) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdatePriority() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePriority()
	})
}

// SetVoiceID sets the "voice_id" field.
func (u *ChannelUpsertOne) SetVoiceID(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetVoiceID(v)
	})
}

// UpdateVoiceID sets the "voice_id" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateVoiceID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateVoiceID()
	})
}

// ClearVoiceID clears the value of the "voice_id" field.
func (u *ChannelUpsertOne) ClearVoiceID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearVoiceID()
	})
}

// SetBrandingDir sets the "branding_dir" field.
func (u *ChannelUpsertOne) SetBrandingDir(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetBrandingDir(v)
	})
}

// UpdateBrandingDir sets the "branding_dir" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateBrandingDir() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateBrandingDir()
	})
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (u *ChannelUpsertOne) ClearBrandingDir() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearBrandingDir()
	})
}

// SetStorageStrategy sets the "storage_strategy" field.
func (u *ChannelUpsertOne) SetStorageStrategy(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStorageStrategy(v)
	})
}

// UpdateStorageStrategy sets the "storage_strategy" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateStorageStrategy() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStorageStrategy()
	})
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (u *ChannelUpsertOne) SetCredentialsEnc(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCredentialsEnc(v)
	})
}

// UpdateCredentialsEnc sets the "credentials_enc" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateCredentialsEnc() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCredentialsEnc()
	})
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (u *ChannelUpsertOne) ClearCredentialsEnc() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearCredentialsEnc()
	})
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (u *ChannelUpsertOne) SetStageTimeoutsS(v map[string]int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStageTimeoutsS(v)
	})
}

// UpdateStageTimeoutsS sets the "stage_timeouts_s" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateStageTimeoutsS() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStageTimeoutsS()
	})
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (u *ChannelUpsertOne) ClearStageTimeoutsS() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearStageTimeoutsS()
	})
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (u *ChannelUpsertOne) SetDefaultAssetCount(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDefaultAssetCount(v)
	})
}

// AddDefaultAssetCount adds v to the "default_asset_count" field.
func (u *ChannelUpsertOne) AddDefaultAssetCount(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.AddDefaultAssetCount(v)
	})
}

// UpdateDefaultAssetCount sets the "default_asset_count" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateDefaultAssetCount() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDefaultAssetCount()
	})
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (u *ChannelUpsertOne) SetDefaultClipCount(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDefaultClipCount(v)
	})
}

// AddDefaultClipCount adds v to the "default_clip_count" field.
func (u *ChannelUpsertOne) AddDefaultClipCount(v int) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.AddDefaultClipCount(v)
	})
}

// UpdateDefaultClipCount sets the "default_clip_count" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateDefaultClipCount() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDefaultClipCount()
	})
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (u *ChannelUpsertOne) SetLastClaimedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetLastClaimedAt(v)
	})
}

// UpdateLastClaimedAt sets the "last_claimed_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateLastClaimedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateLastClaimedAt()
	})
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (u *ChannelUpsertOne) ClearLastClaimedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearLastClaimedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertOne) SetUpdatedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateUpdatedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChannelUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChannelUpsertOne.ID is not supported by MySQL driver. Use ChannelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChannelUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChannelCreateBulk is the builder for creating many Channel entities in bulk.
type ChannelCreateBulk struct {
	config
	err      error
	builders []*ChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the Channel entities in the database.
func (_c *ChannelCreateBulk) Save(ctx context.Context) ([]*Channel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Channel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelMutation)
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
func (_c *ChannelCreateBulk) SaveX(ctx context.Context) []*Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertBulk {
	_c.conflict = opts
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflictColumns(columns ...string) *ChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// ChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of Channel nodes.
type ChannelUpsertBulk struct {
	create *ChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertBulk) UpdateNewValues() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(channel.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(channel.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChannelUpsertBulk) Ignore() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertBulk) DoNothing() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreateBulk.OnConflict
// documentation for more info.
func (u *ChannelUpsertBulk) Update(set func(*ChannelUpsert)) *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ChannelUpsertBulk) SetName(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateName() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateName()
	})
}

// SetActive sets the "active" field.
func (u *ChannelUpsertBulk) SetActive(v bool) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateActive() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateActive()
	})
}

// SetPriority sets the "priority" field.
func (u *ChannelUpsertBulk) SetPriority(v channel.Priority) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdatePriority() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePriority()
	})
}

// SetVoiceID sets the "voice_id" field.
func (u *ChannelUpsertBulk) SetVoiceID(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetVoiceID(v)
	})
}

// UpdateVoiceID sets the "voice_id" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateVoiceID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateVoiceID()
	})
}

// ClearVoiceID clears the value of the "voice_id" field.
func (u *ChannelUpsertBulk) ClearVoiceID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearVoiceID()
	})
}

// SetBrandingDir sets the "branding_dir" field.
func (u *ChannelUpsertBulk) SetBrandingDir(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetBrandingDir(v)
	})
}

// UpdateBrandingDir sets the "branding_dir" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateBrandingDir() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateBrandingDir()
	})
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (u *ChannelUpsertBulk) ClearBrandingDir() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearBrandingDir()
	})
}

// SetStorageStrategy sets the "storage_strategy" field.
func (u *ChannelUpsertBulk) SetStorageStrategy(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStorageStrategy(v)
	})
}

// UpdateStorageStrategy sets the "storage_strategy" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateStorageStrategy() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStorageStrategy()
	})
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (u *ChannelUpsertBulk) SetCredentialsEnc(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetCredentialsEnc(v)
	})
}

// UpdateCredentialsEnc sets the "credentials_enc" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateCredentialsEnc() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateCredentialsEnc()
	})
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (u *ChannelUpsertBulk) ClearCredentialsEnc() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearCredentialsEnc()
	})
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (u *ChannelUpsertBulk) SetStageTimeoutsS(v map[string]int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStageTimeoutsS(v)
	})
}

// UpdateStageTimeoutsS sets the "stage_timeouts_s" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateStageTimeoutsS() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStageTimeoutsS()
	})
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (u *ChannelUpsertBulk) ClearStageTimeoutsS() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearStageTimeoutsS()
	})
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (u *ChannelUpsertBulk) SetDefaultAssetCount(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDefaultAssetCount(v)
	})
}

// AddDefaultAssetCount adds v to the "default_asset_count" field.
func (u *ChannelUpsertBulk) AddDefaultAssetCount(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.AddDefaultAssetCount(v)
	})
}

// UpdateDefaultAssetCount sets the "default_asset_count" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateDefaultAssetCount() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDefaultAssetCount()
	})
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (u *ChannelUpsertBulk) SetDefaultClipCount(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDefaultClipCount(v)
	})
}

// AddDefaultClipCount adds v to the "default_clip_count" field.
func (u *ChannelUpsertBulk) AddDefaultClipCount(v int) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.AddDefaultClipCount(v)
	})
}

// UpdateDefaultClipCount sets the "default_clip_count" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateDefaultClipCount() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDefaultClipCount()
	})
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (u *ChannelUpsertBulk) SetLastClaimedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetLastClaimedAt(v)
	})
}

// UpdateLastClaimedAt sets the "last_claimed_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateLastClaimedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateLastClaimedAt()
	})
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (u *ChannelUpsertBulk) ClearLastClaimedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearLastClaimedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertBulk) SetUpdatedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateUpdatedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
