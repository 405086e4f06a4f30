// Code generated by ent, DO NOT EDIT.

package preference

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the preference type in the database.
	Label = "preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEnabledCategories holds the string denoting the enabled_categories field in the database.
	FieldEnabledCategories = "enabled_categories"
	// FieldSound holds the string denoting the sound field in the database.
	FieldSound = "sound"
	// FieldVibration holds the string denoting the vibration field in the database.
	FieldVibration = "vibration"
	// FieldDigest holds the string denoting the digest field in the database.
	FieldDigest = "digest"
	// FieldQuietStart holds the string denoting the quiet_start field in the database.
	FieldQuietStart = "quiet_start"
	// FieldQuietEnd holds the string denoting the quiet_end field in the database.
	FieldQuietEnd = "quiet_end"
	// Table holds the table name of the preference in the database.
	Table = "preferences"
)

// Columns holds all SQL columns for preference fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldEnabledCategories,
	FieldSound,
	FieldVibration,
	FieldDigest,
	FieldQuietStart,
	FieldQuietEnd,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSound holds the default value on creation for the "sound" field.
	DefaultSound bool
	// DefaultVibration holds the default value on creation for the "vibration" field.
	DefaultVibration bool
)

// Digest defines the type for the "digest" enum field.
type Digest string

// DigestINSTANT is the default value of the Digest enum.
const DefaultDigest = DigestINSTANT

// Digest values.
const (
	DigestINSTANT Digest = "INSTANT"
	DigestDAILY   Digest = "DAILY"
	DigestWEEKLY  Digest = "WEEKLY"
	DigestOFF     Digest = "OFF"
)

func (d Digest) String() string {
	return string(d)
}

// DigestValidator is a validator for the "digest" field enum values. It is called by the builders before save.
func DigestValidator(d Digest) error {
	switch d {
	case DigestINSTANT, DigestDAILY, DigestWEEKLY, DigestOFF:
		return nil
	default:
		return fmt.Errorf("preference: invalid enum value for digest field: %q", d)
	}
}

// OrderOption defines the ordering options for the Preference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySound orders the results by the sound field.
func BySound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSound, opts...).ToFunc()
}

// ByVibration orders the results by the vibration field.
func ByVibration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVibration, opts...).ToFunc()
}

// ByDigest orders the results by the digest field.
func ByDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigest, opts...).ToFunc()
}

// ByQuietStart orders the results by the quiet_start field.
func ByQuietStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuietStart, opts...).ToFunc()
}

// ByQuietEnd orders the results by the quiet_end field.
func ByQuietEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuietEnd, opts...).ToFunc()
}
