// Code generated by ent, DO NOT EDIT.

package reminder

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reminder type in the database.
	Label = "reminder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReferenceID holds the string denoting the reference_id field in the database.
	FieldReferenceID = "reference_id"
	// FieldOffset holds the string denoting the offset field in the database.
	FieldOffset = "offset"
	// FieldTriggerAt holds the string denoting the trigger_at field in the database.
	FieldTriggerAt = "trigger_at"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldSent holds the string denoting the sent field in the database.
	FieldSent = "sent"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// Table holds the table name of the reminder in the database.
	Table = "reminders"
)

// Columns holds all SQL columns for reminder fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldReferenceID,
	FieldOffset,
	FieldTriggerAt,
	FieldMessage,
	FieldSent,
	FieldSentAt,
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
	// ReferenceIDValidator is a validator for the "reference_id" field. It is called by the builders before save.
	ReferenceIDValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// DefaultSent holds the default value on creation for the "sent" field.
	DefaultSent bool
)

// Offset defines the type for the "offset" enum field.
type Offset string

// Offset values.
const (
	OffsetBEFORE_72H Offset = "BEFORE_72H"
	OffsetBEFORE_24H Offset = "BEFORE_24H"
	OffsetBEFORE_3H  Offset = "BEFORE_3H"
)

func (_offset Offset) String() string {
	return string(_offset)
}

// OffsetValidator is a validator for the "offset" field enum values. It is called by the builders before save.
func OffsetValidator(_offset Offset) error {
	switch _offset {
	case OffsetBEFORE_72H, OffsetBEFORE_24H, OffsetBEFORE_3H:
		return nil
	default:
		return fmt.Errorf("reminder: invalid enum value for offset field: %q", _offset)
	}
}

// OrderOption defines the ordering options for the Reminder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReferenceID orders the results by the reference_id field.
func ByReferenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceID, opts...).ToFunc()
}

// ByOffset orders the results by the offset field.
func ByOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffset, opts...).ToFunc()
}

// ByTriggerAt orders the results by the trigger_at field.
func ByTriggerAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerAt, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// BySent orders the results by the sent field.
func BySent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSent, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}
