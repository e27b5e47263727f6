// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/schema"
	"github.com/reelworks/reelpipe/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescActive is the schema descriptor for active field.
	channelDescActive := channelFields[2].Descriptor()
	// channel.DefaultActive holds the default value on creation for the active field.
	channel.DefaultActive = channelDescActive.Default.(bool)
	// channelDescStorageStrategy is the schema descriptor for storage_strategy field.
	channelDescStorageStrategy := channelFields[6].Descriptor()
	// channel.DefaultStorageStrategy holds the default value on creation for the storage_strategy field.
	channel.DefaultStorageStrategy = channelDescStorageStrategy.Default.(string)
	// channelDescDefaultAssetCount is the schema descriptor for default_asset_count field.
	channelDescDefaultAssetCount := channelFields[9].Descriptor()
	// channel.DefaultDefaultAssetCount holds the default value on creation for the default_asset_count field.
	channel.DefaultDefaultAssetCount = channelDescDefaultAssetCount.Default.(int)
	// channelDescDefaultClipCount is the schema descriptor for default_clip_count field.
	channelDescDefaultClipCount := channelFields[10].Descriptor()
	// channel.DefaultDefaultClipCount holds the default value on creation for the default_clip_count field.
	channel.DefaultDefaultClipCount = channelDescDefaultClipCount.Default.(int)
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[12].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	// channelDescUpdatedAt is the schema descriptor for updated_at field.
	channelDescUpdatedAt := channelFields[13].Descriptor()
	// channel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channel.DefaultUpdatedAt = channelDescUpdatedAt.Default.(func() time.Time)
	// channel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	channel.UpdateDefaultUpdatedAt = channelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// channelDescID is the schema descriptor for id field.
	channelDescID := channelFields[0].Descriptor()
	// channel.IDValidator is a validator for the "id" field. It is called by the builders before save.
	channel.IDValidator = channelDescID.Validators[0].(func(string) error)
	costentryFields := schema.CostEntry{}.Fields()
	_ = costentryFields
	// costentryDescCreatedAt is the schema descriptor for created_at field.
	costentryDescCreatedAt := costentryFields[5].Descriptor()
	// costentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	costentry.DefaultCreatedAt = costentryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriorityRank is the schema descriptor for priority_rank field.
	taskDescPriorityRank := taskFields[7].Descriptor()
	// task.DefaultPriorityRank holds the default value on creation for the priority_rank field.
	task.DefaultPriorityRank = taskDescPriorityRank.Default.(int)
	// taskDescPipelineCostUsd is the schema descriptor for pipeline_cost_usd field.
	taskDescPipelineCostUsd := taskFields[14].Descriptor()
	// task.DefaultPipelineCostUsd holds the default value on creation for the pipeline_cost_usd field.
	task.DefaultPipelineCostUsd = taskDescPipelineCostUsd.Default.(float64)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[15].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[25].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[26].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
