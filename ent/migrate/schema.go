// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "normal", "low"}, Default: "normal"},
		{Name: "voice_id", Type: field.TypeString, Nullable: true},
		{Name: "branding_dir", Type: field.TypeString, Nullable: true},
		{Name: "storage_strategy", Type: field.TypeString, Default: "local"},
		{Name: "credentials_enc", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stage_timeouts_s", Type: field.TypeJSON, Nullable: true},
		{Name: "default_asset_count", Type: field.TypeInt, Default: 22},
		{Name: "default_clip_count", Type: field.TypeInt, Default: 18},
		{Name: "last_claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channel_active",
				Unique:  false,
				Columns: []*schema.Column{ChannelsColumns[2]},
			},
		},
	}
	// CostEntriesColumns holds the columns for the "cost_entries" table.
	CostEntriesColumns = []*schema.Column{
		{Name: "cost_entry_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"assets", "composites", "video", "audio", "sfx", "assembly"}},
		{Name: "amount_usd", Type: field.TypeFloat64},
		{Name: "units", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CostEntriesTable holds the schema information for the "cost_entries" table.
	CostEntriesTable = &schema.Table{
		Name:       "cost_entries",
		Columns:    CostEntriesColumns,
		PrimaryKey: []*schema.Column{CostEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cost_entries_tasks_cost_entries",
				Columns:    []*schema.Column{CostEntriesColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "costentry_task_id",
				Unique:  false,
				Columns: []*schema.Column{CostEntriesColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "board_page_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "story_direction", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "normal", "low"}, Default: "normal"},
		{Name: "priority_rank", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "queued", "retry", "claimed", "generating_assets", "assets_ready", "assets_approved", "asset_error", "generating_composites", "generating_video", "video_ready", "video_approved", "video_error", "generating_audio", "audio_ready", "audio_approved", "audio_error", "generating_sfx", "sfx_ready", "sfx_approved", "sfx_error", "generating_assembly", "final_review", "assembly_error", "approved", "uploading", "published", "upload_error"}, Default: "queued"},
		{Name: "asset_count", Type: field.TypeInt},
		{Name: "clip_count", Type: field.TypeInt},
		{Name: "error_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_path", Type: field.TypeString, Nullable: true},
		{Name: "output_duration_s", Type: field.TypeFloat64, Nullable: true},
		{Name: "pipeline_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "retry_after", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "steps", Type: field.TypeJSON, Nullable: true},
		{Name: "pipeline_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "pipeline_end_time", Type: field.TypeTime, Nullable: true},
		{Name: "review_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_log", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "channel_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_channels_tasks",
				Columns:    []*schema.Column{TasksColumns[26]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_channel_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[26]},
			},
			{
				Name:    "task_status_priority_rank_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[6], TasksColumns[24]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChannelsTable,
		CostEntriesTable,
		TasksTable,
	}
)

func init() {
	CostEntriesTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = ChannelsTable
}
