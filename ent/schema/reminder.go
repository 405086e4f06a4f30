package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reminder holds the schema definition for the Reminder entity: a scheduled,
// time-triggered follow-up tied to a future reference event (for example an
// upcoming departure).
//
// The sent flag transitions exactly once, false to true, and never back.
// There is no cancellation state: when the referenced event changes, the
// caller deletes the obsolete batch and schedules a new one.
type Reminder struct {
	ent.Schema
}

// Mixin of the Reminder.
func (Reminder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Reminder.
func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("reference_id").
			NotEmpty().
			Immutable().
			Comment("Originating entity, e.g. a ticket id"),
		field.Enum("offset").
			Values("BEFORE_72H", "BEFORE_24H", "BEFORE_3H").
			Immutable(),
		field.Time("trigger_at").
			Immutable().
			Comment("Absolute trigger instant: event time minus offset"),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.Bool("sent").
			Default(false),
		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Reminder.
func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sent", "trigger_at"), // Due-reminder scan
		index.Fields("reference_id"),       // Batch deletion on event change
	}
}
