package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for a YouTube channel the pipeline
// produces videos for. Channels are created out-of-band and are never
// cascade-deleted: historical tasks keep their channel reference.
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable().
			Match(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).
			Comment("Stable slug, doubles as the filesystem directory name"),
		field.String("name"),
		field.Bool("active").
			Default(true),
		field.Enum("priority").
			Values("high", "normal", "low").
			Default("normal"),
		field.String("voice_id").
			Optional().
			Nillable().
			Comment("TTS voice; falls back to DEFAULT_VOICE_ID when unset"),
		field.String("branding_dir").
			Optional().
			Nillable().
			Comment("Channel branding asset path, relative to the workspace root"),
		field.String("storage_strategy").
			Default("local"),
		field.Text("credentials_enc").
			Optional().
			Sensitive().
			Comment("Fernet token wrapping a JSON map of service credentials"),
		field.JSON("stage_timeouts_s", map[string]int{}).
			Optional().
			Comment("Per-stage generator timeout overrides in seconds, keyed by stage name"),
		field.Int("default_asset_count").
			Default(22),
		field.Int("default_clip_count").
			Default(18),
		field.Time("last_claimed_at").
			Optional().
			Nillable().
			Comment("For per-channel round-robin in the claim query"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Channel.
func (Channel) Edges() []ent.Edge {
	return []ent.Edge{
		// RESTRICT, not CASCADE: tasks outlive channel deactivation.
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
