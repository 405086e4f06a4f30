package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notice holds the schema definition for the Notice entity: a persisted,
// user-scoped message with category, priority, and optional expiry.
//
// Notices are append-only except for the read transition; every other field
// is immutable after creation. An expired notice must never surface in a
// query or statistic, even before the retention sweep physically deletes it.
type Notice struct {
	ent.Schema
}

// Mixin of the Notice.
func (Notice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only
	}
}

// Fields of the Notice.
func (Notice) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user; exactly one owner per notice"),
		field.Enum("category").
			Values(
				"CERTIFICATE_EXPIRY",
				"TRAVEL_REMINDER",
				"NEW_CIRCULAR",
				"SIGNOFF_REMINDER",
				"SYSTEM_ANNOUNCEMENT",
				"DOCUMENT_UPDATE",
				"CREW_MESSAGE",
				"GENERAL",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.Enum("priority").
			Values("LOW", "MEDIUM", "HIGH", "URGENT").
			Default("MEDIUM"),
		field.String("action_target").
			Optional().
			Comment("Identifier of the resource the notice points at"),
		field.String("action_label").
			Optional().
			Comment("Display label for the action reference"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable().
			Comment("Set exactly once when the notice is first marked read"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Hard visibility boundary; nil means the notice never expires"),
	}
}

// Indexes of the Notice.
func (Notice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),       // Unread counts
		index.Fields("user_id", "created_at"), // Paginated inbox listing
		index.Fields("expires_at"),            // Retention sweep
	}
}
