// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reelworks/reelpipe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldActive, v))
}

// VoiceID applies equality check predicate on the "voice_id" field. It's identical to VoiceIDEQ.
func VoiceID(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldVoiceID, v))
}

// BrandingDir applies equality check predicate on the "branding_dir" field. It's identical to BrandingDirEQ.
func BrandingDir(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldBrandingDir, v))
}

// StorageStrategy applies equality check predicate on the "storage_strategy" field. It's identical to StorageStrategyEQ.
func StorageStrategy(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldStorageStrategy, v))
}

// CredentialsEnc applies equality check predicate on the "credentials_enc" field. It's identical to CredentialsEncEQ.
func CredentialsEnc(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCredentialsEnc, v))
}

// DefaultAssetCount applies equality check predicate on the "default_asset_count" field. It's identical to DefaultAssetCountEQ.
func DefaultAssetCount(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultAssetCount, v))
}

// DefaultClipCount applies equality check predicate on the "default_clip_count" field. It's identical to DefaultClipCountEQ.
func DefaultClipCount(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultClipCount, v))
}

// LastClaimedAt applies equality check predicate on the "last_claimed_at" field. It's identical to LastClaimedAtEQ.
func LastClaimedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldLastClaimedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldName, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldActive, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldPriority, vs...))
}

// VoiceIDEQ applies the EQ predicate on the "voice_id" field.
func VoiceIDEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldVoiceID, v))
}

// VoiceIDNEQ applies the NEQ predicate on the "voice_id" field.
func VoiceIDNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldVoiceID, v))
}

// VoiceIDIn applies the In predicate on the "voice_id" field.
func VoiceIDIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldVoiceID, vs...))
}

// VoiceIDNotIn applies the NotIn predicate on the "voice_id" field.
func VoiceIDNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldVoiceID, vs...))
}

// VoiceIDGT applies the GT predicate on the "voice_id" field.
func VoiceIDGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldVoiceID, v))
}

// VoiceIDGTE applies the GTE predicate on the "voice_id" field.
func VoiceIDGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldVoiceID, v))
}

// VoiceIDLT applies the LT predicate on the "voice_id" field.
func VoiceIDLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldVoiceID, v))
}

// VoiceIDLTE applies the LTE predicate on the "voice_id" field.
func VoiceIDLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldVoiceID, v))
}

// VoiceIDContains applies the Contains predicate on the "voice_id" field.
func VoiceIDContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldVoiceID, v))
}

// VoiceIDHasPrefix applies the HasPrefix predicate on the "voice_id" field.
func VoiceIDHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldVoiceID, v))
}

// VoiceIDHasSuffix applies the HasSuffix predicate on the "voice_id" field.
func VoiceIDHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldVoiceID, v))
}

// VoiceIDIsNil applies the IsNil predicate on the "voice_id" field.
func VoiceIDIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldVoiceID))
}

// VoiceIDNotNil applies the NotNil predicate on the "voice_id" field.
func VoiceIDNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldVoiceID))
}

// VoiceIDEqualFold applies the EqualFold predicate on the "voice_id" field.
func VoiceIDEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldVoiceID, v))
}

// VoiceIDContainsFold applies the ContainsFold predicate on the "voice_id" field.
func VoiceIDContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldVoiceID, v))
}

// BrandingDirEQ applies the EQ predicate on the "branding_dir" field.
func BrandingDirEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldBrandingDir, v))
}

// BrandingDirNEQ applies the NEQ predicate on the "branding_dir" field.
func BrandingDirNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldBrandingDir, v))
}

// BrandingDirIn applies the In predicate on the "branding_dir" field.
func BrandingDirIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldBrandingDir, vs...))
}

// BrandingDirNotIn applies the NotIn predicate on the "branding_dir" field.
func BrandingDirNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldBrandingDir, vs...))
}

// BrandingDirGT applies the GT predicate on the "branding_dir" field.
func BrandingDirGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldBrandingDir, v))
}

// BrandingDirGTE applies the GTE predicate on the "branding_dir" field.
func BrandingDirGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldBrandingDir, v))
}

// BrandingDirLT applies the LT predicate on the "branding_dir" field.
func BrandingDirLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldBrandingDir, v))
}

// BrandingDirLTE applies the LTE predicate on the "branding_dir" field.
func BrandingDirLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldBrandingDir, v))
}

// BrandingDirContains applies the Contains predicate on the "branding_dir" field.
func BrandingDirContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldBrandingDir, v))
}

// BrandingDirHasPrefix applies the HasPrefix predicate on the "branding_dir" field.
func BrandingDirHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldBrandingDir, v))
}

// BrandingDirHasSuffix applies the HasSuffix predicate on the "branding_dir" field.
func BrandingDirHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldBrandingDir, v))
}

// BrandingDirIsNil applies the IsNil predicate on the "branding_dir" field.
func BrandingDirIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldBrandingDir))
}

// BrandingDirNotNil applies the NotNil predicate on the "branding_dir" field.
func BrandingDirNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldBrandingDir))
}

// BrandingDirEqualFold applies the EqualFold predicate on the "branding_dir" field.
func BrandingDirEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldBrandingDir, v))
}

// BrandingDirContainsFold applies the ContainsFold predicate on the "branding_dir" field.
func BrandingDirContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldBrandingDir, v))
}

// StorageStrategyEQ applies the EQ predicate on the "storage_strategy" field.
func StorageStrategyEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldStorageStrategy, v))
}

// StorageStrategyNEQ applies the NEQ predicate on the "storage_strategy" field.
func StorageStrategyNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldStorageStrategy, v))
}

// StorageStrategyIn applies the In predicate on the "storage_strategy" field.
func StorageStrategyIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldStorageStrategy, vs...))
}

// StorageStrategyNotIn applies the NotIn predicate on the "storage_strategy" field.
func StorageStrategyNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldStorageStrategy, vs...))
}

// StorageStrategyGT applies the GT predicate on the "storage_strategy" field.
func StorageStrategyGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldStorageStrategy, v))
}

// StorageStrategyGTE applies the GTE predicate on the "storage_strategy" field.
func StorageStrategyGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldStorageStrategy, v))
}

// StorageStrategyLT applies the LT predicate on the "storage_strategy" field.
func StorageStrategyLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldStorageStrategy, v))
}

// StorageStrategyLTE applies the LTE predicate on the "storage_strategy" field.
func StorageStrategyLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldStorageStrategy, v))
}

// StorageStrategyContains applies the Contains predicate on the "storage_strategy" field.
func StorageStrategyContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldStorageStrategy, v))
}

// StorageStrategyHasPrefix applies the HasPrefix predicate on the "storage_strategy" field.
func StorageStrategyHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldStorageStrategy, v))
}

// StorageStrategyHasSuffix applies the HasSuffix predicate on the "storage_strategy" field.
func StorageStrategyHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldStorageStrategy, v))
}

// StorageStrategyEqualFold applies the EqualFold predicate on the "storage_strategy" field.
func StorageStrategyEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldStorageStrategy, v))
}

// StorageStrategyContainsFold applies the ContainsFold predicate on the "storage_strategy" field.
func StorageStrategyContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldStorageStrategy, v))
}

// CredentialsEncEQ applies the EQ predicate on the "credentials_enc" field.
func CredentialsEncEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCredentialsEnc, v))
}

// CredentialsEncNEQ applies the NEQ predicate on the "credentials_enc" field.
func CredentialsEncNEQ(v string) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCredentialsEnc, v))
}

// CredentialsEncIn applies the In predicate on the "credentials_enc" field.
func CredentialsEncIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCredentialsEnc, vs...))
}

// CredentialsEncNotIn applies the NotIn predicate on the "credentials_enc" field.
func CredentialsEncNotIn(vs ...string) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCredentialsEnc, vs...))
}

// CredentialsEncGT applies the GT predicate on the "credentials_enc" field.
func CredentialsEncGT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCredentialsEnc, v))
}

// CredentialsEncGTE applies the GTE predicate on the "credentials_enc" field.
func CredentialsEncGTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCredentialsEnc, v))
}

// CredentialsEncLT applies the LT predicate on the "credentials_enc" field.
func CredentialsEncLT(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCredentialsEnc, v))
}

// CredentialsEncLTE applies the LTE predicate on the "credentials_enc" field.
func CredentialsEncLTE(v string) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCredentialsEnc, v))
}

// CredentialsEncContains applies the Contains predicate on the "credentials_enc" field.
func CredentialsEncContains(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContains(FieldCredentialsEnc, v))
}

// CredentialsEncHasPrefix applies the HasPrefix predicate on the "credentials_enc" field.
func CredentialsEncHasPrefix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasPrefix(FieldCredentialsEnc, v))
}

// CredentialsEncHasSuffix applies the HasSuffix predicate on the "credentials_enc" field.
func CredentialsEncHasSuffix(v string) predicate.Channel {
	return predicate.Channel(sql.FieldHasSuffix(FieldCredentialsEnc, v))
}

// CredentialsEncIsNil applies the IsNil predicate on the "credentials_enc" field.
func CredentialsEncIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldCredentialsEnc))
}

// CredentialsEncNotNil applies the NotNil predicate on the "credentials_enc" field.
func CredentialsEncNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldCredentialsEnc))
}

// CredentialsEncEqualFold applies the EqualFold predicate on the "credentials_enc" field.
func CredentialsEncEqualFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldEqualFold(FieldCredentialsEnc, v))
}

// CredentialsEncContainsFold applies the ContainsFold predicate on the "credentials_enc" field.
func CredentialsEncContainsFold(v string) predicate.Channel {
	return predicate.Channel(sql.FieldContainsFold(FieldCredentialsEnc, v))
}

// StageTimeoutsSIsNil applies the IsNil predicate on the "stage_timeouts_s" field.
func StageTimeoutsSIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldStageTimeoutsS))
}

// StageTimeoutsSNotNil applies the NotNil predicate on the "stage_timeouts_s" field.
func StageTimeoutsSNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldStageTimeoutsS))
}

// DefaultAssetCountEQ applies the EQ predicate on the "default_asset_count" field.
func DefaultAssetCountEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultAssetCount, v))
}

// DefaultAssetCountNEQ applies the NEQ predicate on the "default_asset_count" field.
func DefaultAssetCountNEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldDefaultAssetCount, v))
}

// DefaultAssetCountIn applies the In predicate on the "default_asset_count" field.
func DefaultAssetCountIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldDefaultAssetCount, vs...))
}

// DefaultAssetCountNotIn applies the NotIn predicate on the "default_asset_count" field.
func DefaultAssetCountNotIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldDefaultAssetCount, vs...))
}

// DefaultAssetCountGT applies the GT predicate on the "default_asset_count" field.
func DefaultAssetCountGT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldDefaultAssetCount, v))
}

// DefaultAssetCountGTE applies the GTE predicate on the "default_asset_count" field.
func DefaultAssetCountGTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldDefaultAssetCount, v))
}

// DefaultAssetCountLT applies the LT predicate on the "default_asset_count" field.
func DefaultAssetCountLT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldDefaultAssetCount, v))
}

// DefaultAssetCountLTE applies the LTE predicate on the "default_asset_count" field.
func DefaultAssetCountLTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldDefaultAssetCount, v))
}

// DefaultClipCountEQ applies the EQ predicate on the "default_clip_count" field.
func DefaultClipCountEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldDefaultClipCount, v))
}

// DefaultClipCountNEQ applies the NEQ predicate on the "default_clip_count" field.
func DefaultClipCountNEQ(v int) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldDefaultClipCount, v))
}

// DefaultClipCountIn applies the In predicate on the "default_clip_count" field.
func DefaultClipCountIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldDefaultClipCount, vs...))
}

// DefaultClipCountNotIn applies the NotIn predicate on the "default_clip_count" field.
func DefaultClipCountNotIn(vs ...int) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldDefaultClipCount, vs...))
}

// DefaultClipCountGT applies the GT predicate on the "default_clip_count" field.
func DefaultClipCountGT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldDefaultClipCount, v))
}

// DefaultClipCountGTE applies the GTE predicate on the "default_clip_count" field.
func DefaultClipCountGTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldDefaultClipCount, v))
}

// DefaultClipCountLT applies the LT predicate on the "default_clip_count" field.
func DefaultClipCountLT(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldDefaultClipCount, v))
}

// DefaultClipCountLTE applies the LTE predicate on the "default_clip_count" field.
func DefaultClipCountLTE(v int) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldDefaultClipCount, v))
}

// LastClaimedAtEQ applies the EQ predicate on the "last_claimed_at" field.
func LastClaimedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldLastClaimedAt, v))
}

// LastClaimedAtNEQ applies the NEQ predicate on the "last_claimed_at" field.
func LastClaimedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldLastClaimedAt, v))
}

// LastClaimedAtIn applies the In predicate on the "last_claimed_at" field.
func LastClaimedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldLastClaimedAt, vs...))
}

// LastClaimedAtNotIn applies the NotIn predicate on the "last_claimed_at" field.
func LastClaimedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldLastClaimedAt, vs...))
}

// LastClaimedAtGT applies the GT predicate on the "last_claimed_at" field.
func LastClaimedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldLastClaimedAt, v))
}

// LastClaimedAtGTE applies the GTE predicate on the "last_claimed_at" field.
func LastClaimedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldLastClaimedAt, v))
}

// LastClaimedAtLT applies the LT predicate on the "last_claimed_at" field.
func LastClaimedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldLastClaimedAt, v))
}

// LastClaimedAtLTE applies the LTE predicate on the "last_claimed_at" field.
func LastClaimedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldLastClaimedAt, v))
}

// LastClaimedAtIsNil applies the IsNil predicate on the "last_claimed_at" field.
func LastClaimedAtIsNil() predicate.Channel {
	return predicate.Channel(sql.FieldIsNull(FieldLastClaimedAt))
}

// LastClaimedAtNotNil applies the NotNil predicate on the "last_claimed_at" field.
func LastClaimedAtNotNil() predicate.Channel {
	return predicate.Channel(sql.FieldNotNull(FieldLastClaimedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Channel {
	return predicate.Channel(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Channel {
	return predicate.Channel(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Channel) predicate.Channel {
	return predicate.Channel(sql.NotPredicates(p))
}
