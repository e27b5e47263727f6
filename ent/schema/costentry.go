package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CostEntry holds the schema definition for one append-only cost ledger
// line. The task's pipeline_cost_usd equals the sum of its entries.
type CostEntry struct {
	ent.Schema
}

// Fields of the CostEntry.
func (CostEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_entry_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.Enum("stage").
			Values("assets", "composites", "video", "audio", "sfx", "assembly"),
		field.Float("amount_usd"),
		field.Int("units"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CostEntry.
func (CostEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("cost_entries").
			Unique().
			Required().
			Field("task_id"),
	}
}

// Indexes of the CostEntry.
func (CostEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
