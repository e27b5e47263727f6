package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/reelworks/reelpipe/pkg/models"
)

// Task holds the schema definition for one end-to-end video production
// task, 1:1 with a page on the external board. The status column is the
// pipeline state machine position; the steps column is the resume ledger.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("channel_id"),
		field.String("board_page_id").
			Unique().
			Comment("External board page identifier; upsert collapses duplicates"),
		field.String("title"),
		field.Text("topic").
			Optional(),
		field.Text("story_direction").
			Optional(),
		field.Enum("priority").
			Values("high", "normal", "low").
			Default("normal"),
		field.Int("priority_rank").
			Default(1).
			Comment("Denormalized priority for ORDER BY (high=2 normal=1 low=0)"),
		field.Enum("status").
			Values(
				"draft", "queued", "retry", "claimed",
				"generating_assets", "assets_ready", "assets_approved", "asset_error",
				"generating_composites",
				"generating_video", "video_ready", "video_approved", "video_error",
				"generating_audio", "audio_ready", "audio_approved", "audio_error",
				"generating_sfx", "sfx_ready", "sfx_approved", "sfx_error",
				"generating_assembly", "final_review", "assembly_error",
				"approved", "uploading", "published", "upload_error",
			).
			Default("queued"),
		field.Int("asset_count"),
		field.Int("clip_count"),
		field.Text("error_log").
			Optional().
			Comment("Append-only; every entry is ISO-timestamp prefixed"),
		field.String("output_path").
			Optional().
			Nillable(),
		field.Float("output_duration_s").
			Optional().
			Nillable(),
		field.Float("pipeline_cost_usd").
			Default(0),
		field.Int("attempts").
			Default(0).
			Comment("Retry attempts for the current stage; reset on stage success"),
		field.Time("retry_after").
			Optional().
			Nillable().
			Comment("Backoff gate: not claimable before this instant"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker id holding the claim"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.JSON("steps", models.Ledger{}).
			Optional().
			Comment("Resume ledger, keyed by stage"),
		field.Time("pipeline_start_time").
			Optional().
			Nillable(),
		field.Time("pipeline_end_time").
			Optional().
			Nillable(),
		field.Time("review_started_at").
			Optional().
			Nillable(),
		field.Time("review_completed_at").
			Optional().
			Nillable(),
		field.JSON("review_log", []models.ReviewEvidence{}).
			Optional().
			Comment("Append-only review decisions pulled from the board"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("channel", Channel.Type).
			Ref("tasks").
			Unique().
			Required().
			Field("channel_id"),
		edge.To("cost_entries", CostEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("channel_id"),
		// Claim query: eligible statuses ordered by priority then age.
		index.Fields("status", "priority_rank", "created_at"),
		// Orphan scan.
		index.Fields("status", "last_heartbeat_at"),
	}
}
