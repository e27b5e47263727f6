// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/predicate"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChannel   = "Channel"
	TypeCostEntry = "CostEntry"
	TypeTask      = "Task"
)

// ChannelMutation represents an operation that mutates the Channel nodes in the graph.
type ChannelMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	active                 *bool
	priority               *channel.Priority
	voice_id               *string
	branding_dir           *string
	storage_strategy       *string
	credentials_enc        *string
	stage_timeouts_s       *map[string]int
	default_asset_count    *int
	adddefault_asset_count *int
	default_clip_count     *int
	adddefault_clip_count  *int
	last_claimed_at        *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	tasks                  map[string]struct{}
	removedtasks           map[string]struct{}
	clearedtasks           bool
	done                   bool
	oldValue               func(context.Context) (*Channel, error)
	predicates             []predicate.Channel
}

var _ ent.Mutation = (*ChannelMutation)(nil)

// channelOption allows management of the mutation configuration using functional options.
type channelOption func(*ChannelMutation)

// newChannelMutation creates new mutation for the Channel entity.
func newChannelMutation(c config, op Op, opts ...channelOption) *ChannelMutation {
	m := &ChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelID sets the ID field of the mutation.
func withChannelID(id string) channelOption {
	return func(m *ChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *Channel
		)
		m.oldValue = func(ctx context.Context) (*Channel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Channel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannel sets the old Channel of the mutation.
func withChannel(node *Channel) channelOption {
	return func(m *ChannelMutation) {
		m.oldValue = func(context.Context) (*Channel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Channel entities.
func (m *ChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Channel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ChannelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *ChannelMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ChannelMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ChannelMutation) ResetActive() {
	m.active = nil
}

// SetPriority sets the "priority" field.
func (m *ChannelMutation) SetPriority(c channel.Priority) {
	m.priority = &c
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ChannelMutation) Priority() (r channel.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldPriority(ctx context.Context) (v channel.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ChannelMutation) ResetPriority() {
	m.priority = nil
}

// SetVoiceID sets the "voice_id" field.
func (m *ChannelMutation) SetVoiceID(s string) {
	m.voice_id = &s
}

// VoiceID returns the value of the "voice_id" field in the mutation.
func (m *ChannelMutation) VoiceID() (r string, exists bool) {
	v := m.voice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVoiceID returns the old "voice_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldVoiceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoiceID: %w", err)
	}
	return oldValue.VoiceID, nil
}

// ClearVoiceID clears the value of the "voice_id" field.
func (m *ChannelMutation) ClearVoiceID() {
	m.voice_id = nil
	m.clearedFields[channel.FieldVoiceID] = struct{}{}
}

// VoiceIDCleared returns if the "voice_id" field was cleared in this mutation.
func (m *ChannelMutation) VoiceIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldVoiceID]
	return ok
}

// ResetVoiceID resets all changes to the "voice_id" field.
func (m *ChannelMutation) ResetVoiceID() {
	m.voice_id = nil
	delete(m.clearedFields, channel.FieldVoiceID)
}

// SetBrandingDir sets the "branding_dir" field.
func (m *ChannelMutation) SetBrandingDir(s string) {
	m.branding_dir = &s
}

// BrandingDir returns the value of the "branding_dir" field in the mutation.
func (m *ChannelMutation) BrandingDir() (r string, exists bool) {
	v := m.branding_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandingDir returns the old "branding_dir" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldBrandingDir(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandingDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandingDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandingDir: %w", err)
	}
	return oldValue.BrandingDir, nil
}

// ClearBrandingDir clears the value of the "branding_dir" field.
func (m *ChannelMutation) ClearBrandingDir() {
	m.branding_dir = nil
	m.clearedFields[channel.FieldBrandingDir] = struct{}{}
}

// BrandingDirCleared returns if the "branding_dir" field was cleared in this mutation.
func (m *ChannelMutation) BrandingDirCleared() bool {
	_, ok := m.clearedFields[channel.FieldBrandingDir]
	return ok
}

// ResetBrandingDir resets all changes to the "branding_dir" field.
func (m *ChannelMutation) ResetBrandingDir() {
	m.branding_dir = nil
	delete(m.clearedFields, channel.FieldBrandingDir)
}

// SetStorageStrategy sets the "storage_strategy" field.
func (m *ChannelMutation) SetStorageStrategy(s string) {
	m.storage_strategy = &s
}

// StorageStrategy returns the value of the "storage_strategy" field in the mutation.
func (m *ChannelMutation) StorageStrategy() (r string, exists bool) {
	v := m.storage_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageStrategy returns the old "storage_strategy" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldStorageStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageStrategy: %w", err)
	}
	return oldValue.StorageStrategy, nil
}

// ResetStorageStrategy resets all changes to the "storage_strategy" field.
func (m *ChannelMutation) ResetStorageStrategy() {
	m.storage_strategy = nil
}

// SetCredentialsEnc sets the "credentials_enc" field.
func (m *ChannelMutation) SetCredentialsEnc(s string) {
	m.credentials_enc = &s
}

// CredentialsEnc returns the value of the "credentials_enc" field in the mutation.
func (m *ChannelMutation) CredentialsEnc() (r string, exists bool) {
	v := m.credentials_enc
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialsEnc returns the old "credentials_enc" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCredentialsEnc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialsEnc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialsEnc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialsEnc: %w", err)
	}
	return oldValue.CredentialsEnc, nil
}

// ClearCredentialsEnc clears the value of the "credentials_enc" field.
func (m *ChannelMutation) ClearCredentialsEnc() {
	m.credentials_enc = nil
	m.clearedFields[channel.FieldCredentialsEnc] = struct{}{}
}

// CredentialsEncCleared returns if the "credentials_enc" field was cleared in this mutation.
func (m *ChannelMutation) CredentialsEncCleared() bool {
	_, ok := m.clearedFields[channel.FieldCredentialsEnc]
	return ok
}

// ResetCredentialsEnc resets all changes to the "credentials_enc" field.
func (m *ChannelMutation) ResetCredentialsEnc() {
	m.credentials_enc = nil
	delete(m.clearedFields, channel.FieldCredentialsEnc)
}

// SetStageTimeoutsS sets the "stage_timeouts_s" field.
func (m *ChannelMutation) SetStageTimeoutsS(value map[string]int) {
	m.stage_timeouts_s = &value
}

// StageTimeoutsS returns the value of the "stage_timeouts_s" field in the mutation.
func (m *ChannelMutation) StageTimeoutsS() (r map[string]int, exists bool) {
	v := m.stage_timeouts_s
	if v == nil {
		return
	}
	return *v, true
}

// OldStageTimeoutsS returns the old "stage_timeouts_s" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldStageTimeoutsS(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageTimeoutsS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageTimeoutsS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageTimeoutsS: %w", err)
	}
	return oldValue.StageTimeoutsS, nil
}

// ClearStageTimeoutsS clears the value of the "stage_timeouts_s" field.
func (m *ChannelMutation) ClearStageTimeoutsS() {
	m.stage_timeouts_s = nil
	m.clearedFields[channel.FieldStageTimeoutsS] = struct{}{}
}

// StageTimeoutsSCleared returns if the "stage_timeouts_s" field was cleared in this mutation.
func (m *ChannelMutation) StageTimeoutsSCleared() bool {
	_, ok := m.clearedFields[channel.FieldStageTimeoutsS]
	return ok
}

// ResetStageTimeoutsS resets all changes to the "stage_timeouts_s" field.
func (m *ChannelMutation) ResetStageTimeoutsS() {
	m.stage_timeouts_s = nil
	delete(m.clearedFields, channel.FieldStageTimeoutsS)
}

// SetDefaultAssetCount sets the "default_asset_count" field.
func (m *ChannelMutation) SetDefaultAssetCount(i int) {
	m.default_asset_count = &i
	m.adddefault_asset_count = nil
}

// DefaultAssetCount returns the value of the "default_asset_count" field in the mutation.
func (m *ChannelMutation) DefaultAssetCount() (r int, exists bool) {
	v := m.default_asset_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultAssetCount returns the old "default_asset_count" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldDefaultAssetCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultAssetCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultAssetCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultAssetCount: %w", err)
	}
	return oldValue.DefaultAssetCount, nil
}

// AddDefaultAssetCount adds i to the "default_asset_count" field.
func (m *ChannelMutation) AddDefaultAssetCount(i int) {
	if m.adddefault_asset_count != nil {
		*m.adddefault_asset_count += i
	} else {
		m.adddefault_asset_count = &i
	}
}

// AddedDefaultAssetCount returns the value that was added to the "default_asset_count" field in this mutation.
func (m *ChannelMutation) AddedDefaultAssetCount() (r int, exists bool) {
	v := m.adddefault_asset_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultAssetCount resets all changes to the "default_asset_count" field.
func (m *ChannelMutation) ResetDefaultAssetCount() {
	m.default_asset_count = nil
	m.adddefault_asset_count = nil
}

// SetDefaultClipCount sets the "default_clip_count" field.
func (m *ChannelMutation) SetDefaultClipCount(i int) {
	m.default_clip_count = &i
	m.adddefault_clip_count = nil
}

// DefaultClipCount returns the value of the "default_clip_count" field in the mutation.
func (m *ChannelMutation) DefaultClipCount() (r int, exists bool) {
	v := m.default_clip_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultClipCount returns the old "default_clip_count" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldDefaultClipCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultClipCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultClipCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultClipCount: %w", err)
	}
	return oldValue.DefaultClipCount, nil
}

// AddDefaultClipCount adds i to the "default_clip_count" field.
func (m *ChannelMutation) AddDefaultClipCount(i int) {
	if m.adddefault_clip_count != nil {
		*m.adddefault_clip_count += i
	} else {
		m.adddefault_clip_count = &i
	}
}

// AddedDefaultClipCount returns the value that was added to the "default_clip_count" field in this mutation.
func (m *ChannelMutation) AddedDefaultClipCount() (r int, exists bool) {
	v := m.adddefault_clip_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultClipCount resets all changes to the "default_clip_count" field.
func (m *ChannelMutation) ResetDefaultClipCount() {
	m.default_clip_count = nil
	m.adddefault_clip_count = nil
}

// SetLastClaimedAt sets the "last_claimed_at" field.
func (m *ChannelMutation) SetLastClaimedAt(t time.Time) {
	m.last_claimed_at = &t
}

// LastClaimedAt returns the value of the "last_claimed_at" field in the mutation.
func (m *ChannelMutation) LastClaimedAt() (r time.Time, exists bool) {
	v := m.last_claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastClaimedAt returns the old "last_claimed_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldLastClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastClaimedAt: %w", err)
	}
	return oldValue.LastClaimedAt, nil
}

// ClearLastClaimedAt clears the value of the "last_claimed_at" field.
func (m *ChannelMutation) ClearLastClaimedAt() {
	m.last_claimed_at = nil
	m.clearedFields[channel.FieldLastClaimedAt] = struct{}{}
}

// LastClaimedAtCleared returns if the "last_claimed_at" field was cleared in this mutation.
func (m *ChannelMutation) LastClaimedAtCleared() bool {
	_, ok := m.clearedFields[channel.FieldLastClaimedAt]
	return ok
}

// ResetLastClaimedAt resets all changes to the "last_claimed_at" field.
func (m *ChannelMutation) ResetLastClaimedAt() {
	m.last_claimed_at = nil
	delete(m.clearedFields, channel.FieldLastClaimedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ChannelMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ChannelMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ChannelMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ChannelMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ChannelMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ChannelMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ChannelMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the ChannelMutation builder.
func (m *ChannelMutation) Where(ps ...predicate.Channel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Channel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Channel).
func (m *ChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, channel.FieldName)
	}
	if m.active != nil {
		fields = append(fields, channel.FieldActive)
	}
	if m.priority != nil {
		fields = append(fields, channel.FieldPriority)
	}
	if m.voice_id != nil {
		fields = append(fields, channel.FieldVoiceID)
	}
	if m.branding_dir != nil {
		fields = append(fields, channel.FieldBrandingDir)
	}
	if m.storage_strategy != nil {
		fields = append(fields, channel.FieldStorageStrategy)
	}
	if m.credentials_enc != nil {
		fields = append(fields, channel.FieldCredentialsEnc)
	}
	if m.stage_timeouts_s != nil {
		fields = append(fields, channel.FieldStageTimeoutsS)
	}
	if m.default_asset_count != nil {
		fields = append(fields, channel.FieldDefaultAssetCount)
	}
	if m.default_clip_count != nil {
		fields = append(fields, channel.FieldDefaultClipCount)
	}
	if m.last_claimed_at != nil {
		fields = append(fields, channel.FieldLastClaimedAt)
	}
	if m.created_at != nil {
		fields = append(fields, channel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, channel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldName:
		return m.Name()
	case channel.FieldActive:
		return m.Active()
	case channel.FieldPriority:
		return m.Priority()
	case channel.FieldVoiceID:
		return m.VoiceID()
	case channel.FieldBrandingDir:
		return m.BrandingDir()
	case channel.FieldStorageStrategy:
		return m.StorageStrategy()
	case channel.FieldCredentialsEnc:
		return m.CredentialsEnc()
	case channel.FieldStageTimeoutsS:
		return m.StageTimeoutsS()
	case channel.FieldDefaultAssetCount:
		return m.DefaultAssetCount()
	case channel.FieldDefaultClipCount:
		return m.DefaultClipCount()
	case channel.FieldLastClaimedAt:
		return m.LastClaimedAt()
	case channel.FieldCreatedAt:
		return m.CreatedAt()
	case channel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channel.FieldName:
		return m.OldName(ctx)
	case channel.FieldActive:
		return m.OldActive(ctx)
	case channel.FieldPriority:
		return m.OldPriority(ctx)
	case channel.FieldVoiceID:
		return m.OldVoiceID(ctx)
	case channel.FieldBrandingDir:
		return m.OldBrandingDir(ctx)
	case channel.FieldStorageStrategy:
		return m.OldStorageStrategy(ctx)
	case channel.FieldCredentialsEnc:
		return m.OldCredentialsEnc(ctx)
	case channel.FieldStageTimeoutsS:
		return m.OldStageTimeoutsS(ctx)
	case channel.FieldDefaultAssetCount:
		return m.OldDefaultAssetCount(ctx)
	case channel.FieldDefaultClipCount:
		return m.OldDefaultClipCount(ctx)
	case channel.FieldLastClaimedAt:
		return m.OldLastClaimedAt(ctx)
	case channel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case channel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Channel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channel.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case channel.FieldPriority:
		v, ok := value.(channel.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case channel.FieldVoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoiceID(v)
		return nil
	case channel.FieldBrandingDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandingDir(v)
		return nil
	case channel.FieldStorageStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageStrategy(v)
		return nil
	case channel.FieldCredentialsEnc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialsEnc(v)
		return nil
	case channel.FieldStageTimeoutsS:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageTimeoutsS(v)
		return nil
	case channel.FieldDefaultAssetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultAssetCount(v)
		return nil
	case channel.FieldDefaultClipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultClipCount(v)
		return nil
	case channel.FieldLastClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastClaimedAt(v)
		return nil
	case channel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case channel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_asset_count != nil {
		fields = append(fields, channel.FieldDefaultAssetCount)
	}
	if m.adddefault_clip_count != nil {
		fields = append(fields, channel.FieldDefaultClipCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldDefaultAssetCount:
		return m.AddedDefaultAssetCount()
	case channel.FieldDefaultClipCount:
		return m.AddedDefaultClipCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case channel.FieldDefaultAssetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultAssetCount(v)
		return nil
	case channel.FieldDefaultClipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultClipCount(v)
		return nil
	}
	return fmt.Errorf("unknown Channel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channel.FieldVoiceID) {
		fields = append(fields, channel.FieldVoiceID)
	}
	if m.FieldCleared(channel.FieldBrandingDir) {
		fields = append(fields, channel.FieldBrandingDir)
	}
	if m.FieldCleared(channel.FieldCredentialsEnc) {
		fields = append(fields, channel.FieldCredentialsEnc)
	}
	if m.FieldCleared(channel.FieldStageTimeoutsS) {
		fields = append(fields, channel.FieldStageTimeoutsS)
	}
	if m.FieldCleared(channel.FieldLastClaimedAt) {
		fields = append(fields, channel.FieldLastClaimedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelMutation) ClearField(name string) error {
	switch name {
	case channel.FieldVoiceID:
		m.ClearVoiceID()
		return nil
	case channel.FieldBrandingDir:
		m.ClearBrandingDir()
		return nil
	case channel.FieldCredentialsEnc:
		m.ClearCredentialsEnc()
		return nil
	case channel.FieldStageTimeoutsS:
		m.ClearStageTimeoutsS()
		return nil
	case channel.FieldLastClaimedAt:
		m.ClearLastClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelMutation) ResetField(name string) error {
	switch name {
	case channel.FieldName:
		m.ResetName()
		return nil
	case channel.FieldActive:
		m.ResetActive()
		return nil
	case channel.FieldPriority:
		m.ResetPriority()
		return nil
	case channel.FieldVoiceID:
		m.ResetVoiceID()
		return nil
	case channel.FieldBrandingDir:
		m.ResetBrandingDir()
		return nil
	case channel.FieldStorageStrategy:
		m.ResetStorageStrategy()
		return nil
	case channel.FieldCredentialsEnc:
		m.ResetCredentialsEnc()
		return nil
	case channel.FieldStageTimeoutsS:
		m.ResetStageTimeoutsS()
		return nil
	case channel.FieldDefaultAssetCount:
		m.ResetDefaultAssetCount()
		return nil
	case channel.FieldDefaultClipCount:
		m.ResetDefaultClipCount()
		return nil
	case channel.FieldLastClaimedAt:
		m.ResetLastClaimedAt()
		return nil
	case channel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case channel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, channel.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, channel.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, channel.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case channel.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Channel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelMutation) ResetEdge(name string) error {
	switch name {
	case channel.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Channel edge %s", name)
}

// CostEntryMutation represents an operation that mutates the CostEntry nodes in the graph.
type CostEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	stage         *costentry.Stage
	amount_usd    *float64
	addamount_usd *float64
	units         *int
	addunits      *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*CostEntry, error)
	predicates    []predicate.CostEntry
}

var _ ent.Mutation = (*CostEntryMutation)(nil)

// costentryOption allows management of the mutation configuration using functional options.
type costentryOption func(*CostEntryMutation)

// newCostEntryMutation creates new mutation for the CostEntry entity.
func newCostEntryMutation(c config, op Op, opts ...costentryOption) *CostEntryMutation {
	m := &CostEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCostEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCostEntryID sets the ID field of the mutation.
func withCostEntryID(id string) costentryOption {
	return func(m *CostEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CostEntry
		)
		m.oldValue = func(ctx context.Context) (*CostEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CostEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCostEntry sets the old CostEntry of the mutation.
func withCostEntry(node *CostEntry) costentryOption {
	return func(m *CostEntryMutation) {
		m.oldValue = func(context.Context) (*CostEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CostEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CostEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CostEntry entities.
func (m *CostEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CostEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CostEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CostEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CostEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CostEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CostEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetStage sets the "stage" field.
func (m *CostEntryMutation) SetStage(c costentry.Stage) {
	m.stage = &c
}

// Stage returns the value of the "stage" field in the mutation.
func (m *CostEntryMutation) Stage() (r costentry.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldStage(ctx context.Context) (v costentry.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *CostEntryMutation) ResetStage() {
	m.stage = nil
}

// SetAmountUsd sets the "amount_usd" field.
func (m *CostEntryMutation) SetAmountUsd(f float64) {
	m.amount_usd = &f
	m.addamount_usd = nil
}

// AmountUsd returns the value of the "amount_usd" field in the mutation.
func (m *CostEntryMutation) AmountUsd() (r float64, exists bool) {
	v := m.amount_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountUsd returns the old "amount_usd" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldAmountUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountUsd: %w", err)
	}
	return oldValue.AmountUsd, nil
}

// AddAmountUsd adds f to the "amount_usd" field.
func (m *CostEntryMutation) AddAmountUsd(f float64) {
	if m.addamount_usd != nil {
		*m.addamount_usd += f
	} else {
		m.addamount_usd = &f
	}
}

// AddedAmountUsd returns the value that was added to the "amount_usd" field in this mutation.
func (m *CostEntryMutation) AddedAmountUsd() (r float64, exists bool) {
	v := m.addamount_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountUsd resets all changes to the "amount_usd" field.
func (m *CostEntryMutation) ResetAmountUsd() {
	m.amount_usd = nil
	m.addamount_usd = nil
}

// SetUnits sets the "units" field.
func (m *CostEntryMutation) SetUnits(i int) {
	m.units = &i
	m.addunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *CostEntryMutation) Units() (r int, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldUnits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AddUnits adds i to the "units" field.
func (m *CostEntryMutation) AddUnits(i int) {
	if m.addunits != nil {
		*m.addunits += i
	} else {
		m.addunits = &i
	}
}

// AddedUnits returns the value that was added to the "units" field in this mutation.
func (m *CostEntryMutation) AddedUnits() (r int, exists bool) {
	v := m.addunits
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnits resets all changes to the "units" field.
func (m *CostEntryMutation) ResetUnits() {
	m.units = nil
	m.addunits = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CostEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CostEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CostEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CostEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[costentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CostEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CostEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CostEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CostEntryMutation builder.
func (m *CostEntryMutation) Where(ps ...predicate.CostEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CostEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CostEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CostEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CostEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CostEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CostEntry).
func (m *CostEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CostEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, costentry.FieldTaskID)
	}
	if m.stage != nil {
		fields = append(fields, costentry.FieldStage)
	}
	if m.amount_usd != nil {
		fields = append(fields, costentry.FieldAmountUsd)
	}
	if m.units != nil {
		fields = append(fields, costentry.FieldUnits)
	}
	if m.created_at != nil {
		fields = append(fields, costentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CostEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case costentry.FieldTaskID:
		return m.TaskID()
	case costentry.FieldStage:
		return m.Stage()
	case costentry.FieldAmountUsd:
		return m.AmountUsd()
	case costentry.FieldUnits:
		return m.Units()
	case costentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CostEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case costentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case costentry.FieldStage:
		return m.OldStage(ctx)
	case costentry.FieldAmountUsd:
		return m.OldAmountUsd(ctx)
	case costentry.FieldUnits:
		return m.OldUnits(ctx)
	case costentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CostEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case costentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case costentry.FieldStage:
		v, ok := value.(costentry.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case costentry.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountUsd(v)
		return nil
	case costentry.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case costentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CostEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CostEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount_usd != nil {
		fields = append(fields, costentry.FieldAmountUsd)
	}
	if m.addunits != nil {
		fields = append(fields, costentry.FieldUnits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CostEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case costentry.FieldAmountUsd:
		return m.AddedAmountUsd()
	case costentry.FieldUnits:
		return m.AddedUnits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case costentry.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountUsd(v)
		return nil
	case costentry.FieldUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnits(v)
		return nil
	}
	return fmt.Errorf("unknown CostEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CostEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CostEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CostEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CostEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CostEntryMutation) ResetField(name string) error {
	switch name {
	case costentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case costentry.FieldStage:
		m.ResetStage()
		return nil
	case costentry.FieldAmountUsd:
		m.ResetAmountUsd()
		return nil
	case costentry.FieldUnits:
		m.ResetUnits()
		return nil
	case costentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CostEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CostEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, costentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CostEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case costentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CostEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CostEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CostEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, costentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CostEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case costentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CostEntryMutation) ClearEdge(name string) error {
	switch name {
	case costentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CostEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CostEntryMutation) ResetEdge(name string) error {
	switch name {
	case costentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CostEntry edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	board_page_id        *string
	title                *string
	topic                *string
	story_direction      *string
	priority             *task.Priority
	priority_rank        *int
	addpriority_rank     *int
	status               *task.Status
	asset_count          *int
	addasset_count       *int
	clip_count           *int
	addclip_count        *int
	error_log            *string
	output_path          *string
	output_duration_s    *float64
	addoutput_duration_s *float64
	pipeline_cost_usd    *float64
	addpipeline_cost_usd *float64
	attempts             *int
	addattempts          *int
	retry_after          *time.Time
	claimed_by           *string
	last_heartbeat_at    *time.Time
	steps                *models.Ledger
	pipeline_start_time  *time.Time
	pipeline_end_time    *time.Time
	review_started_at    *time.Time
	review_completed_at  *time.Time
	review_log           *[]models.ReviewEvidence
	appendreview_log     []models.ReviewEvidence
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	channel              *string
	clearedchannel       bool
	cost_entries         map[string]struct{}
	removedcost_entries  map[string]struct{}
	clearedcost_entries  bool
	done                 bool
	oldValue             func(context.Context) (*Task, error)
	predicates           []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *TaskMutation) SetChannelID(s string) {
	m.channel = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *TaskMutation) ChannelID() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *TaskMutation) ResetChannelID() {
	m.channel = nil
}

// SetBoardPageID sets the "board_page_id" field.
func (m *TaskMutation) SetBoardPageID(s string) {
	m.board_page_id = &s
}

// BoardPageID returns the value of the "board_page_id" field in the mutation.
func (m *TaskMutation) BoardPageID() (r string, exists bool) {
	v := m.board_page_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardPageID returns the old "board_page_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBoardPageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardPageID: %w", err)
	}
	return oldValue.BoardPageID, nil
}

// ResetBoardPageID resets all changes to the "board_page_id" field.
func (m *TaskMutation) ResetBoardPageID() {
	m.board_page_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetTopic sets the "topic" field.
func (m *TaskMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TaskMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *TaskMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[task.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *TaskMutation) TopicCleared() bool {
	_, ok := m.clearedFields[task.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *TaskMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, task.FieldTopic)
}

// SetStoryDirection sets the "story_direction" field.
func (m *TaskMutation) SetStoryDirection(s string) {
	m.story_direction = &s
}

// StoryDirection returns the value of the "story_direction" field in the mutation.
func (m *TaskMutation) StoryDirection() (r string, exists bool) {
	v := m.story_direction
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryDirection returns the old "story_direction" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStoryDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryDirection: %w", err)
	}
	return oldValue.StoryDirection, nil
}

// ClearStoryDirection clears the value of the "story_direction" field.
func (m *TaskMutation) ClearStoryDirection() {
	m.story_direction = nil
	m.clearedFields[task.FieldStoryDirection] = struct{}{}
}

// StoryDirectionCleared returns if the "story_direction" field was cleared in this mutation.
func (m *TaskMutation) StoryDirectionCleared() bool {
	_, ok := m.clearedFields[task.FieldStoryDirection]
	return ok
}

// ResetStoryDirection resets all changes to the "story_direction" field.
func (m *TaskMutation) ResetStoryDirection() {
	m.story_direction = nil
	delete(m.clearedFields, task.FieldStoryDirection)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetPriorityRank sets the "priority_rank" field.
func (m *TaskMutation) SetPriorityRank(i int) {
	m.priority_rank = &i
	m.addpriority_rank = nil
}

// PriorityRank returns the value of the "priority_rank" field in the mutation.
func (m *TaskMutation) PriorityRank() (r int, exists bool) {
	v := m.priority_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityRank returns the old "priority_rank" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityRank: %w", err)
	}
	return oldValue.PriorityRank, nil
}

// AddPriorityRank adds i to the "priority_rank" field.
func (m *TaskMutation) AddPriorityRank(i int) {
	if m.addpriority_rank != nil {
		*m.addpriority_rank += i
	} else {
		m.addpriority_rank = &i
	}
}

// AddedPriorityRank returns the value that was added to the "priority_rank" field in this mutation.
func (m *TaskMutation) AddedPriorityRank() (r int, exists bool) {
	v := m.addpriority_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityRank resets all changes to the "priority_rank" field.
func (m *TaskMutation) ResetPriorityRank() {
	m.priority_rank = nil
	m.addpriority_rank = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssetCount sets the "asset_count" field.
func (m *TaskMutation) SetAssetCount(i int) {
	m.asset_count = &i
	m.addasset_count = nil
}

// AssetCount returns the value of the "asset_count" field in the mutation.
func (m *TaskMutation) AssetCount() (r int, exists bool) {
	v := m.asset_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetCount returns the old "asset_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssetCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetCount: %w", err)
	}
	return oldValue.AssetCount, nil
}

// AddAssetCount adds i to the "asset_count" field.
func (m *TaskMutation) AddAssetCount(i int) {
	if m.addasset_count != nil {
		*m.addasset_count += i
	} else {
		m.addasset_count = &i
	}
}

// AddedAssetCount returns the value that was added to the "asset_count" field in this mutation.
func (m *TaskMutation) AddedAssetCount() (r int, exists bool) {
	v := m.addasset_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssetCount resets all changes to the "asset_count" field.
func (m *TaskMutation) ResetAssetCount() {
	m.asset_count = nil
	m.addasset_count = nil
}

// SetClipCount sets the "clip_count" field.
func (m *TaskMutation) SetClipCount(i int) {
	m.clip_count = &i
	m.addclip_count = nil
}

// ClipCount returns the value of the "clip_count" field in the mutation.
func (m *TaskMutation) ClipCount() (r int, exists bool) {
	v := m.clip_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClipCount returns the old "clip_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClipCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClipCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClipCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClipCount: %w", err)
	}
	return oldValue.ClipCount, nil
}

// AddClipCount adds i to the "clip_count" field.
func (m *TaskMutation) AddClipCount(i int) {
	if m.addclip_count != nil {
		*m.addclip_count += i
	} else {
		m.addclip_count = &i
	}
}

// AddedClipCount returns the value that was added to the "clip_count" field in this mutation.
func (m *TaskMutation) AddedClipCount() (r int, exists bool) {
	v := m.addclip_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClipCount resets all changes to the "clip_count" field.
func (m *TaskMutation) ResetClipCount() {
	m.clip_count = nil
	m.addclip_count = nil
}

// SetErrorLog sets the "error_log" field.
func (m *TaskMutation) SetErrorLog(s string) {
	m.error_log = &s
}

// ErrorLog returns the value of the "error_log" field in the mutation.
func (m *TaskMutation) ErrorLog() (r string, exists bool) {
	v := m.error_log
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorLog returns the old "error_log" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorLog(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorLog: %w", err)
	}
	return oldValue.ErrorLog, nil
}

// ClearErrorLog clears the value of the "error_log" field.
func (m *TaskMutation) ClearErrorLog() {
	m.error_log = nil
	m.clearedFields[task.FieldErrorLog] = struct{}{}
}

// ErrorLogCleared returns if the "error_log" field was cleared in this mutation.
func (m *TaskMutation) ErrorLogCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorLog]
	return ok
}

// ResetErrorLog resets all changes to the "error_log" field.
func (m *TaskMutation) ResetErrorLog() {
	m.error_log = nil
	delete(m.clearedFields, task.FieldErrorLog)
}

// SetOutputPath sets the "output_path" field.
func (m *TaskMutation) SetOutputPath(s string) {
	m.output_path = &s
}

// OutputPath returns the value of the "output_path" field in the mutation.
func (m *TaskMutation) OutputPath() (r string, exists bool) {
	v := m.output_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPath returns the old "output_path" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutputPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPath: %w", err)
	}
	return oldValue.OutputPath, nil
}

// ClearOutputPath clears the value of the "output_path" field.
func (m *TaskMutation) ClearOutputPath() {
	m.output_path = nil
	m.clearedFields[task.FieldOutputPath] = struct{}{}
}

// OutputPathCleared returns if the "output_path" field was cleared in this mutation.
func (m *TaskMutation) OutputPathCleared() bool {
	_, ok := m.clearedFields[task.FieldOutputPath]
	return ok
}

// ResetOutputPath resets all changes to the "output_path" field.
func (m *TaskMutation) ResetOutputPath() {
	m.output_path = nil
	delete(m.clearedFields, task.FieldOutputPath)
}

// SetOutputDurationS sets the "output_duration_s" field.
func (m *TaskMutation) SetOutputDurationS(f float64) {
	m.output_duration_s = &f
	m.addoutput_duration_s = nil
}

// OutputDurationS returns the value of the "output_duration_s" field in the mutation.
func (m *TaskMutation) OutputDurationS() (r float64, exists bool) {
	v := m.output_duration_s
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputDurationS returns the old "output_duration_s" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutputDurationS(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputDurationS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputDurationS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputDurationS: %w", err)
	}
	return oldValue.OutputDurationS, nil
}

// AddOutputDurationS adds f to the "output_duration_s" field.
func (m *TaskMutation) AddOutputDurationS(f float64) {
	if m.addoutput_duration_s != nil {
		*m.addoutput_duration_s += f
	} else {
		m.addoutput_duration_s = &f
	}
}

// AddedOutputDurationS returns the value that was added to the "output_duration_s" field in this mutation.
func (m *TaskMutation) AddedOutputDurationS() (r float64, exists bool) {
	v := m.addoutput_duration_s
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputDurationS clears the value of the "output_duration_s" field.
func (m *TaskMutation) ClearOutputDurationS() {
	m.output_duration_s = nil
	m.addoutput_duration_s = nil
	m.clearedFields[task.FieldOutputDurationS] = struct{}{}
}

// OutputDurationSCleared returns if the "output_duration_s" field was cleared in this mutation.
func (m *TaskMutation) OutputDurationSCleared() bool {
	_, ok := m.clearedFields[task.FieldOutputDurationS]
	return ok
}

// ResetOutputDurationS resets all changes to the "output_duration_s" field.
func (m *TaskMutation) ResetOutputDurationS() {
	m.output_duration_s = nil
	m.addoutput_duration_s = nil
	delete(m.clearedFields, task.FieldOutputDurationS)
}

// SetPipelineCostUsd sets the "pipeline_cost_usd" field.
func (m *TaskMutation) SetPipelineCostUsd(f float64) {
	m.pipeline_cost_usd = &f
	m.addpipeline_cost_usd = nil
}

// PipelineCostUsd returns the value of the "pipeline_cost_usd" field in the mutation.
func (m *TaskMutation) PipelineCostUsd() (r float64, exists bool) {
	v := m.pipeline_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineCostUsd returns the old "pipeline_cost_usd" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPipelineCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineCostUsd: %w", err)
	}
	return oldValue.PipelineCostUsd, nil
}

// AddPipelineCostUsd adds f to the "pipeline_cost_usd" field.
func (m *TaskMutation) AddPipelineCostUsd(f float64) {
	if m.addpipeline_cost_usd != nil {
		*m.addpipeline_cost_usd += f
	} else {
		m.addpipeline_cost_usd = &f
	}
}

// AddedPipelineCostUsd returns the value that was added to the "pipeline_cost_usd" field in this mutation.
func (m *TaskMutation) AddedPipelineCostUsd() (r float64, exists bool) {
	v := m.addpipeline_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetPipelineCostUsd resets all changes to the "pipeline_cost_usd" field.
func (m *TaskMutation) ResetPipelineCostUsd() {
	m.pipeline_cost_usd = nil
	m.addpipeline_cost_usd = nil
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetRetryAfter sets the "retry_after" field.
func (m *TaskMutation) SetRetryAfter(t time.Time) {
	m.retry_after = &t
}

// RetryAfter returns the value of the "retry_after" field in the mutation.
func (m *TaskMutation) RetryAfter() (r time.Time, exists bool) {
	v := m.retry_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAfter returns the old "retry_after" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAfter: %w", err)
	}
	return oldValue.RetryAfter, nil
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (m *TaskMutation) ClearRetryAfter() {
	m.retry_after = nil
	m.clearedFields[task.FieldRetryAfter] = struct{}{}
}

// RetryAfterCleared returns if the "retry_after" field was cleared in this mutation.
func (m *TaskMutation) RetryAfterCleared() bool {
	_, ok := m.clearedFields[task.FieldRetryAfter]
	return ok
}

// ResetRetryAfter resets all changes to the "retry_after" field.
func (m *TaskMutation) ResetRetryAfter() {
	m.retry_after = nil
	delete(m.clearedFields, task.FieldRetryAfter)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[task.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, task.FieldClaimedBy)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetSteps sets the "steps" field.
func (m *TaskMutation) SetSteps(value models.Ledger) {
	m.steps = &value
}

// Steps returns the value of the "steps" field in the mutation.
func (m *TaskMutation) Steps() (r models.Ledger, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSteps(ctx context.Context) (v models.Ledger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// ClearSteps clears the value of the "steps" field.
func (m *TaskMutation) ClearSteps() {
	m.steps = nil
	m.clearedFields[task.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *TaskMutation) StepsCleared() bool {
	_, ok := m.clearedFields[task.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *TaskMutation) ResetSteps() {
	m.steps = nil
	delete(m.clearedFields, task.FieldSteps)
}

// SetPipelineStartTime sets the "pipeline_start_time" field.
func (m *TaskMutation) SetPipelineStartTime(t time.Time) {
	m.pipeline_start_time = &t
}

// PipelineStartTime returns the value of the "pipeline_start_time" field in the mutation.
func (m *TaskMutation) PipelineStartTime() (r time.Time, exists bool) {
	v := m.pipeline_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineStartTime returns the old "pipeline_start_time" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPipelineStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineStartTime: %w", err)
	}
	return oldValue.PipelineStartTime, nil
}

// ClearPipelineStartTime clears the value of the "pipeline_start_time" field.
func (m *TaskMutation) ClearPipelineStartTime() {
	m.pipeline_start_time = nil
	m.clearedFields[task.FieldPipelineStartTime] = struct{}{}
}

// PipelineStartTimeCleared returns if the "pipeline_start_time" field was cleared in this mutation.
func (m *TaskMutation) PipelineStartTimeCleared() bool {
	_, ok := m.clearedFields[task.FieldPipelineStartTime]
	return ok
}

// ResetPipelineStartTime resets all changes to the "pipeline_start_time" field.
func (m *TaskMutation) ResetPipelineStartTime() {
	m.pipeline_start_time = nil
	delete(m.clearedFields, task.FieldPipelineStartTime)
}

// SetPipelineEndTime sets the "pipeline_end_time" field.
func (m *TaskMutation) SetPipelineEndTime(t time.Time) {
	m.pipeline_end_time = &t
}

// PipelineEndTime returns the value of the "pipeline_end_time" field in the mutation.
func (m *TaskMutation) PipelineEndTime() (r time.Time, exists bool) {
	v := m.pipeline_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineEndTime returns the old "pipeline_end_time" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPipelineEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineEndTime: %w", err)
	}
	return oldValue.PipelineEndTime, nil
}

// ClearPipelineEndTime clears the value of the "pipeline_end_time" field.
func (m *TaskMutation) ClearPipelineEndTime() {
	m.pipeline_end_time = nil
	m.clearedFields[task.FieldPipelineEndTime] = struct{}{}
}

// PipelineEndTimeCleared returns if the "pipeline_end_time" field was cleared in this mutation.
func (m *TaskMutation) PipelineEndTimeCleared() bool {
	_, ok := m.clearedFields[task.FieldPipelineEndTime]
	return ok
}

// ResetPipelineEndTime resets all changes to the "pipeline_end_time" field.
func (m *TaskMutation) ResetPipelineEndTime() {
	m.pipeline_end_time = nil
	delete(m.clearedFields, task.FieldPipelineEndTime)
}

// SetReviewStartedAt sets the "review_started_at" field.
func (m *TaskMutation) SetReviewStartedAt(t time.Time) {
	m.review_started_at = &t
}

// ReviewStartedAt returns the value of the "review_started_at" field in the mutation.
func (m *TaskMutation) ReviewStartedAt() (r time.Time, exists bool) {
	v := m.review_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStartedAt returns the old "review_started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReviewStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStartedAt: %w", err)
	}
	return oldValue.ReviewStartedAt, nil
}

// ClearReviewStartedAt clears the value of the "review_started_at" field.
func (m *TaskMutation) ClearReviewStartedAt() {
	m.review_started_at = nil
	m.clearedFields[task.FieldReviewStartedAt] = struct{}{}
}

// ReviewStartedAtCleared returns if the "review_started_at" field was cleared in this mutation.
func (m *TaskMutation) ReviewStartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldReviewStartedAt]
	return ok
}

// ResetReviewStartedAt resets all changes to the "review_started_at" field.
func (m *TaskMutation) ResetReviewStartedAt() {
	m.review_started_at = nil
	delete(m.clearedFields, task.FieldReviewStartedAt)
}

// SetReviewCompletedAt sets the "review_completed_at" field.
func (m *TaskMutation) SetReviewCompletedAt(t time.Time) {
	m.review_completed_at = &t
}

// ReviewCompletedAt returns the value of the "review_completed_at" field in the mutation.
func (m *TaskMutation) ReviewCompletedAt() (r time.Time, exists bool) {
	v := m.review_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCompletedAt returns the old "review_completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReviewCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCompletedAt: %w", err)
	}
	return oldValue.ReviewCompletedAt, nil
}

// ClearReviewCompletedAt clears the value of the "review_completed_at" field.
func (m *TaskMutation) ClearReviewCompletedAt() {
	m.review_completed_at = nil
	m.clearedFields[task.FieldReviewCompletedAt] = struct{}{}
}

// ReviewCompletedAtCleared returns if the "review_completed_at" field was cleared in this mutation.
func (m *TaskMutation) ReviewCompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldReviewCompletedAt]
	return ok
}

// ResetReviewCompletedAt resets all changes to the "review_completed_at" field.
func (m *TaskMutation) ResetReviewCompletedAt() {
	m.review_completed_at = nil
	delete(m.clearedFields, task.FieldReviewCompletedAt)
}

// SetReviewLog sets the "review_log" field.
func (m *TaskMutation) SetReviewLog(me []models.ReviewEvidence) {
	m.review_log = &me
	m.appendreview_log = nil
}

// ReviewLog returns the value of the "review_log" field in the mutation.
func (m *TaskMutation) ReviewLog() (r []models.ReviewEvidence, exists bool) {
	v := m.review_log
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewLog returns the old "review_log" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReviewLog(ctx context.Context) (v []models.ReviewEvidence, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewLog: %w", err)
	}
	return oldValue.ReviewLog, nil
}

// AppendReviewLog adds me to the "review_log" field.
func (m *TaskMutation) AppendReviewLog(me []models.ReviewEvidence) {
	m.appendreview_log = append(m.appendreview_log, me...)
}

// AppendedReviewLog returns the list of values that were appended to the "review_log" field in this mutation.
func (m *TaskMutation) AppendedReviewLog() ([]models.ReviewEvidence, bool) {
	if len(m.appendreview_log) == 0 {
		return nil, false
	}
	return m.appendreview_log, true
}

// ClearReviewLog clears the value of the "review_log" field.
func (m *TaskMutation) ClearReviewLog() {
	m.review_log = nil
	m.appendreview_log = nil
	m.clearedFields[task.FieldReviewLog] = struct{}{}
}

// ReviewLogCleared returns if the "review_log" field was cleared in this mutation.
func (m *TaskMutation) ReviewLogCleared() bool {
	_, ok := m.clearedFields[task.FieldReviewLog]
	return ok
}

// ResetReviewLog resets all changes to the "review_log" field.
func (m *TaskMutation) ResetReviewLog() {
	m.review_log = nil
	m.appendreview_log = nil
	delete(m.clearedFields, task.FieldReviewLog)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (m *TaskMutation) ClearChannel() {
	m.clearedchannel = true
	m.clearedFields[task.FieldChannelID] = struct{}{}
}

// ChannelCleared reports if the "channel" edge to the Channel entity was cleared.
func (m *TaskMutation) ChannelCleared() bool {
	return m.clearedchannel
}

// ChannelIDs returns the "channel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChannelID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ChannelIDs() (ids []string) {
	if id := m.channel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChannel resets all changes to the "channel" edge.
func (m *TaskMutation) ResetChannel() {
	m.channel = nil
	m.clearedchannel = false
}

// AddCostEntryIDs adds the "cost_entries" edge to the CostEntry entity by ids.
func (m *TaskMutation) AddCostEntryIDs(ids ...string) {
	if m.cost_entries == nil {
		m.cost_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.cost_entries[ids[i]] = struct{}{}
	}
}

// ClearCostEntries clears the "cost_entries" edge to the CostEntry entity.
func (m *TaskMutation) ClearCostEntries() {
	m.clearedcost_entries = true
}

// CostEntriesCleared reports if the "cost_entries" edge to the CostEntry entity was cleared.
func (m *TaskMutation) CostEntriesCleared() bool {
	return m.clearedcost_entries
}

// RemoveCostEntryIDs removes the "cost_entries" edge to the CostEntry entity by IDs.
func (m *TaskMutation) RemoveCostEntryIDs(ids ...string) {
	if m.removedcost_entries == nil {
		m.removedcost_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cost_entries, ids[i])
		m.removedcost_entries[ids[i]] = struct{}{}
	}
}

// RemovedCostEntries returns the removed IDs of the "cost_entries" edge to the CostEntry entity.
func (m *TaskMutation) RemovedCostEntriesIDs() (ids []string) {
	for id := range m.removedcost_entries {
		ids = append(ids, id)
	}
	return
}

// CostEntriesIDs returns the "cost_entries" edge IDs in the mutation.
func (m *TaskMutation) CostEntriesIDs() (ids []string) {
	for id := range m.cost_entries {
		ids = append(ids, id)
	}
	return
}

// ResetCostEntries resets all changes to the "cost_entries" edge.
func (m *TaskMutation) ResetCostEntries() {
	m.cost_entries = nil
	m.clearedcost_entries = false
	m.removedcost_entries = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.channel != nil {
		fields = append(fields, task.FieldChannelID)
	}
	if m.board_page_id != nil {
		fields = append(fields, task.FieldBoardPageID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.topic != nil {
		fields = append(fields, task.FieldTopic)
	}
	if m.story_direction != nil {
		fields = append(fields, task.FieldStoryDirection)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.priority_rank != nil {
		fields = append(fields, task.FieldPriorityRank)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.asset_count != nil {
		fields = append(fields, task.FieldAssetCount)
	}
	if m.clip_count != nil {
		fields = append(fields, task.FieldClipCount)
	}
	if m.error_log != nil {
		fields = append(fields, task.FieldErrorLog)
	}
	if m.output_path != nil {
		fields = append(fields, task.FieldOutputPath)
	}
	if m.output_duration_s != nil {
		fields = append(fields, task.FieldOutputDurationS)
	}
	if m.pipeline_cost_usd != nil {
		fields = append(fields, task.FieldPipelineCostUsd)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.retry_after != nil {
		fields = append(fields, task.FieldRetryAfter)
	}
	if m.claimed_by != nil {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.steps != nil {
		fields = append(fields, task.FieldSteps)
	}
	if m.pipeline_start_time != nil {
		fields = append(fields, task.FieldPipelineStartTime)
	}
	if m.pipeline_end_time != nil {
		fields = append(fields, task.FieldPipelineEndTime)
	}
	if m.review_started_at != nil {
		fields = append(fields, task.FieldReviewStartedAt)
	}
	if m.review_completed_at != nil {
		fields = append(fields, task.FieldReviewCompletedAt)
	}
	if m.review_log != nil {
		fields = append(fields, task.FieldReviewLog)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldChannelID:
		return m.ChannelID()
	case task.FieldBoardPageID:
		return m.BoardPageID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldTopic:
		return m.Topic()
	case task.FieldStoryDirection:
		return m.StoryDirection()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldPriorityRank:
		return m.PriorityRank()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAssetCount:
		return m.AssetCount()
	case task.FieldClipCount:
		return m.ClipCount()
	case task.FieldErrorLog:
		return m.ErrorLog()
	case task.FieldOutputPath:
		return m.OutputPath()
	case task.FieldOutputDurationS:
		return m.OutputDurationS()
	case task.FieldPipelineCostUsd:
		return m.PipelineCostUsd()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldRetryAfter:
		return m.RetryAfter()
	case task.FieldClaimedBy:
		return m.ClaimedBy()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldSteps:
		return m.Steps()
	case task.FieldPipelineStartTime:
		return m.PipelineStartTime()
	case task.FieldPipelineEndTime:
		return m.PipelineEndTime()
	case task.FieldReviewStartedAt:
		return m.ReviewStartedAt()
	case task.FieldReviewCompletedAt:
		return m.ReviewCompletedAt()
	case task.FieldReviewLog:
		return m.ReviewLog()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldChannelID:
		return m.OldChannelID(ctx)
	case task.FieldBoardPageID:
		return m.OldBoardPageID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldTopic:
		return m.OldTopic(ctx)
	case task.FieldStoryDirection:
		return m.OldStoryDirection(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldPriorityRank:
		return m.OldPriorityRank(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAssetCount:
		return m.OldAssetCount(ctx)
	case task.FieldClipCount:
		return m.OldClipCount(ctx)
	case task.FieldErrorLog:
		return m.OldErrorLog(ctx)
	case task.FieldOutputPath:
		return m.OldOutputPath(ctx)
	case task.FieldOutputDurationS:
		return m.OldOutputDurationS(ctx)
	case task.FieldPipelineCostUsd:
		return m.OldPipelineCostUsd(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldRetryAfter:
		return m.OldRetryAfter(ctx)
	case task.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldSteps:
		return m.OldSteps(ctx)
	case task.FieldPipelineStartTime:
		return m.OldPipelineStartTime(ctx)
	case task.FieldPipelineEndTime:
		return m.OldPipelineEndTime(ctx)
	case task.FieldReviewStartedAt:
		return m.OldReviewStartedAt(ctx)
	case task.FieldReviewCompletedAt:
		return m.OldReviewCompletedAt(ctx)
	case task.FieldReviewLog:
		return m.OldReviewLog(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case task.FieldBoardPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardPageID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case task.FieldStoryDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryDirection(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityRank(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAssetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetCount(v)
		return nil
	case task.FieldClipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClipCount(v)
		return nil
	case task.FieldErrorLog:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorLog(v)
		return nil
	case task.FieldOutputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPath(v)
		return nil
	case task.FieldOutputDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputDurationS(v)
		return nil
	case task.FieldPipelineCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineCostUsd(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldRetryAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAfter(v)
		return nil
	case task.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldSteps:
		v, ok := value.(models.Ledger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case task.FieldPipelineStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineStartTime(v)
		return nil
	case task.FieldPipelineEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineEndTime(v)
		return nil
	case task.FieldReviewStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStartedAt(v)
		return nil
	case task.FieldReviewCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCompletedAt(v)
		return nil
	case task.FieldReviewLog:
		v, ok := value.([]models.ReviewEvidence)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewLog(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_rank != nil {
		fields = append(fields, task.FieldPriorityRank)
	}
	if m.addasset_count != nil {
		fields = append(fields, task.FieldAssetCount)
	}
	if m.addclip_count != nil {
		fields = append(fields, task.FieldClipCount)
	}
	if m.addoutput_duration_s != nil {
		fields = append(fields, task.FieldOutputDurationS)
	}
	if m.addpipeline_cost_usd != nil {
		fields = append(fields, task.FieldPipelineCostUsd)
	}
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriorityRank:
		return m.AddedPriorityRank()
	case task.FieldAssetCount:
		return m.AddedAssetCount()
	case task.FieldClipCount:
		return m.AddedClipCount()
	case task.FieldOutputDurationS:
		return m.AddedOutputDurationS()
	case task.FieldPipelineCostUsd:
		return m.AddedPipelineCostUsd()
	case task.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityRank(v)
		return nil
	case task.FieldAssetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssetCount(v)
		return nil
	case task.FieldClipCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClipCount(v)
		return nil
	case task.FieldOutputDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputDurationS(v)
		return nil
	case task.FieldPipelineCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPipelineCostUsd(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTopic) {
		fields = append(fields, task.FieldTopic)
	}
	if m.FieldCleared(task.FieldStoryDirection) {
		fields = append(fields, task.FieldStoryDirection)
	}
	if m.FieldCleared(task.FieldErrorLog) {
		fields = append(fields, task.FieldErrorLog)
	}
	if m.FieldCleared(task.FieldOutputPath) {
		fields = append(fields, task.FieldOutputPath)
	}
	if m.FieldCleared(task.FieldOutputDurationS) {
		fields = append(fields, task.FieldOutputDurationS)
	}
	if m.FieldCleared(task.FieldRetryAfter) {
		fields = append(fields, task.FieldRetryAfter)
	}
	if m.FieldCleared(task.FieldClaimedBy) {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldSteps) {
		fields = append(fields, task.FieldSteps)
	}
	if m.FieldCleared(task.FieldPipelineStartTime) {
		fields = append(fields, task.FieldPipelineStartTime)
	}
	if m.FieldCleared(task.FieldPipelineEndTime) {
		fields = append(fields, task.FieldPipelineEndTime)
	}
	if m.FieldCleared(task.FieldReviewStartedAt) {
		fields = append(fields, task.FieldReviewStartedAt)
	}
	if m.FieldCleared(task.FieldReviewCompletedAt) {
		fields = append(fields, task.FieldReviewCompletedAt)
	}
	if m.FieldCleared(task.FieldReviewLog) {
		fields = append(fields, task.FieldReviewLog)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTopic:
		m.ClearTopic()
		return nil
	case task.FieldStoryDirection:
		m.ClearStoryDirection()
		return nil
	case task.FieldErrorLog:
		m.ClearErrorLog()
		return nil
	case task.FieldOutputPath:
		m.ClearOutputPath()
		return nil
	case task.FieldOutputDurationS:
		m.ClearOutputDurationS()
		return nil
	case task.FieldRetryAfter:
		m.ClearRetryAfter()
		return nil
	case task.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldSteps:
		m.ClearSteps()
		return nil
	case task.FieldPipelineStartTime:
		m.ClearPipelineStartTime()
		return nil
	case task.FieldPipelineEndTime:
		m.ClearPipelineEndTime()
		return nil
	case task.FieldReviewStartedAt:
		m.ClearReviewStartedAt()
		return nil
	case task.FieldReviewCompletedAt:
		m.ClearReviewCompletedAt()
		return nil
	case task.FieldReviewLog:
		m.ClearReviewLog()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldChannelID:
		m.ResetChannelID()
		return nil
	case task.FieldBoardPageID:
		m.ResetBoardPageID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldTopic:
		m.ResetTopic()
		return nil
	case task.FieldStoryDirection:
		m.ResetStoryDirection()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldPriorityRank:
		m.ResetPriorityRank()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAssetCount:
		m.ResetAssetCount()
		return nil
	case task.FieldClipCount:
		m.ResetClipCount()
		return nil
	case task.FieldErrorLog:
		m.ResetErrorLog()
		return nil
	case task.FieldOutputPath:
		m.ResetOutputPath()
		return nil
	case task.FieldOutputDurationS:
		m.ResetOutputDurationS()
		return nil
	case task.FieldPipelineCostUsd:
		m.ResetPipelineCostUsd()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldRetryAfter:
		m.ResetRetryAfter()
		return nil
	case task.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldSteps:
		m.ResetSteps()
		return nil
	case task.FieldPipelineStartTime:
		m.ResetPipelineStartTime()
		return nil
	case task.FieldPipelineEndTime:
		m.ResetPipelineEndTime()
		return nil
	case task.FieldReviewStartedAt:
		m.ResetReviewStartedAt()
		return nil
	case task.FieldReviewCompletedAt:
		m.ResetReviewCompletedAt()
		return nil
	case task.FieldReviewLog:
		m.ResetReviewLog()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.channel != nil {
		edges = append(edges, task.EdgeChannel)
	}
	if m.cost_entries != nil {
		edges = append(edges, task.EdgeCostEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeChannel:
		if id := m.channel; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeCostEntries:
		ids := make([]ent.Value, 0, len(m.cost_entries))
		for id := range m.cost_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcost_entries != nil {
		edges = append(edges, task.EdgeCostEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeCostEntries:
		ids := make([]ent.Value, 0, len(m.removedcost_entries))
		for id := range m.removedcost_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchannel {
		edges = append(edges, task.EdgeChannel)
	}
	if m.clearedcost_entries {
		edges = append(edges, task.EdgeCostEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeChannel:
		return m.clearedchannel
	case task.EdgeCostEntries:
		return m.clearedcost_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeChannel:
		m.ClearChannel()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeChannel:
		m.ResetChannel()
		return nil
	case task.EdgeCostEntries:
		m.ResetCostEntries()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
