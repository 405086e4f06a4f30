// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// NoticesColumns holds the columns for the "notices" table.
	NoticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"CERTIFICATE_EXPIRY", "TRAVEL_REMINDER", "NEW_CIRCULAR", "SIGNOFF_REMINDER", "SYSTEM_ANNOUNCEMENT", "DOCUMENT_UPDATE", "CREW_MESSAGE", "GENERAL"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "URGENT"}, Default: "MEDIUM"},
		{Name: "action_target", Type: field.TypeString, Nullable: true},
		{Name: "action_label", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// NoticesTable holds the schema information for the "notices" table.
	NoticesTable = &schema.Table{
		Name:       "notices",
		Columns:    NoticesColumns,
		PrimaryKey: []*schema.Column{NoticesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notice_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[2], NoticesColumns[10]},
			},
			{
				Name:    "notice_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[2], NoticesColumns[1]},
			},
			{
				Name:    "notice_expires_at",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[12]},
			},
		},
	}
	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "enabled_categories", Type: field.TypeJSON},
		{Name: "sound", Type: field.TypeBool, Default: true},
		{Name: "vibration", Type: field.TypeBool, Default: true},
		{Name: "digest", Type: field.TypeEnum, Enums: []string{"INSTANT", "DAILY", "WEEKLY", "OFF"}, Default: "INSTANT"},
		{Name: "quiet_start", Type: field.TypeString, Nullable: true},
		{Name: "quiet_end", Type: field.TypeString, Nullable: true},
	}
	// PreferencesTable holds the schema information for the "preferences" table.
	PreferencesTable = &schema.Table{
		Name:       "preferences",
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reference_id", Type: field.TypeString},
		{Name: "offset", Type: field.TypeEnum, Enums: []string{"BEFORE_72H", "BEFORE_24H", "BEFORE_3H"}},
		{Name: "trigger_at", Type: field.TypeTime},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "sent", Type: field.TypeBool, Default: false},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_sent_trigger_at",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[6], RemindersColumns[4]},
			},
			{
				Name:    "reminder_reference_id",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		NoticesTable,
		PreferencesTable,
		RemindersTable,
	}
)

func init() {
}
