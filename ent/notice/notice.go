// Code generated by ent, DO NOT EDIT.

package notice

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notice type in the database.
	Label = "notice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldActionTarget holds the string denoting the action_target field in the database.
	FieldActionTarget = "action_target"
	// FieldActionLabel holds the string denoting the action_label field in the database.
	FieldActionLabel = "action_label"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldRead holds the string denoting the read field in the database.
	FieldRead = "read"
	// FieldReadAt holds the string denoting the read_at field in the database.
	FieldReadAt = "read_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the notice in the database.
	Table = "notices"
)

// Columns holds all SQL columns for notice fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldCategory,
	FieldTitle,
	FieldMessage,
	FieldPriority,
	FieldActionTarget,
	FieldActionLabel,
	FieldMetadata,
	FieldRead,
	FieldReadAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// DefaultRead holds the default value on creation for the "read" field.
	DefaultRead bool
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryCERTIFICATE_EXPIRY  Category = "CERTIFICATE_EXPIRY"
	CategoryTRAVEL_REMINDER     Category = "TRAVEL_REMINDER"
	CategoryNEW_CIRCULAR        Category = "NEW_CIRCULAR"
	CategorySIGNOFF_REMINDER    Category = "SIGNOFF_REMINDER"
	CategorySYSTEM_ANNOUNCEMENT Category = "SYSTEM_ANNOUNCEMENT"
	CategoryDOCUMENT_UPDATE     Category = "DOCUMENT_UPDATE"
	CategoryCREW_MESSAGE        Category = "CREW_MESSAGE"
	CategoryGENERAL             Category = "GENERAL"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryCERTIFICATE_EXPIRY, CategoryTRAVEL_REMINDER, CategoryNEW_CIRCULAR, CategorySIGNOFF_REMINDER, CategorySYSTEM_ANNOUNCEMENT, CategoryDOCUMENT_UPDATE, CategoryCREW_MESSAGE, CategoryGENERAL:
		return nil
	default:
		return fmt.Errorf("notice: invalid enum value for category field: %q", c)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMEDIUM is the default value of the Priority enum.
const DefaultPriority = PriorityMEDIUM

// Priority values.
const (
	PriorityLOW    Priority = "LOW"
	PriorityMEDIUM Priority = "MEDIUM"
	PriorityHIGH   Priority = "HIGH"
	PriorityURGENT Priority = "URGENT"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLOW, PriorityMEDIUM, PriorityHIGH, PriorityURGENT:
		return nil
	default:
		return fmt.Errorf("notice: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Notice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByActionTarget orders the results by the action_target field.
func ByActionTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionTarget, opts...).ToFunc()
}

// ByActionLabel orders the results by the action_label field.
func ByActionLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionLabel, opts...).ToFunc()
}

// ByRead orders the results by the read field.
func ByRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRead, opts...).ToFunc()
}

// ByReadAt orders the results by the read_at field.
func ByReadAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
