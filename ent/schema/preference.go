package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference holds per-user notification preferences: the enabled category
// set, delivery flags, digest frequency, and a quiet-hours window.
//
// A missing Preference row means every category is enabled (default-allow).
// Rows are created lazily on the first explicit update; the notice factory
// never creates one implicitly. Sound/vibration flags and quiet hours are
// stored for delivery channels downstream; the preference gate evaluates
// only the enabled category set.
type Preference struct {
	ent.Schema
}

// Mixin of the Preference.
func (Preference) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Preference.
func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.JSON("enabled_categories", []string{}).
			Comment("Category names the user accepts notices for"),
		field.Bool("sound").
			Default(true),
		field.Bool("vibration").
			Default(true),
		field.Enum("digest").
			Values("INSTANT", "DAILY", "WEEKLY", "OFF").
			Default("INSTANT"),
		field.String("quiet_start").
			Optional().
			Comment("Local time of day, HH:MM"),
		field.String("quiet_end").
			Optional().
			Comment("Local time of day, HH:MM"),
	}
}
