// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"crewdeck.io/notifier/ent/preference"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Preference is the model entity for the Preference schema.
type Preference struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Category names the user accepts notices for
	EnabledCategories []string `json:"enabled_categories,omitempty"`
	// Sound holds the value of the "sound" field.
	Sound bool `json:"sound,omitempty"`
	// Vibration holds the value of the "vibration" field.
	Vibration bool `json:"vibration,omitempty"`
	// Digest holds the value of the "digest" field.
	Digest preference.Digest `json:"digest,omitempty"`
	// Local time of day, HH:MM
	QuietStart string `json:"quiet_start,omitempty"`
	// Local time of day, HH:MM
	QuietEnd     string `json:"quiet_end,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Preference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case preference.FieldEnabledCategories:
			values[i] = new([]byte)
		case preference.FieldSound, preference.FieldVibration:
			values[i] = new(sql.NullBool)
		case preference.FieldID, preference.FieldUserID, preference.FieldDigest, preference.FieldQuietStart, preference.FieldQuietEnd:
			values[i] = new(sql.NullString)
		case preference.FieldCreatedAt, preference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Preference fields.
func (_m *Preference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case preference.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case preference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case preference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case preference.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case preference.FieldEnabledCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enabled_categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnabledCategories); err != nil {
					return fmt.Errorf("unmarshal field enabled_categories: %w", err)
				}
			}
		case preference.FieldSound:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sound", values[i])
			} else if value.Valid {
				_m.Sound = value.Bool
			}
		case preference.FieldVibration:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field vibration", values[i])
			} else if value.Valid {
				_m.Vibration = value.Bool
			}
		case preference.FieldDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field digest", values[i])
			} else if value.Valid {
				_m.Digest = preference.Digest(value.String)
			}
		case preference.FieldQuietStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_start", values[i])
			} else if value.Valid {
				_m.QuietStart = value.String
			}
		case preference.FieldQuietEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiet_end", values[i])
			} else if value.Valid {
				_m.QuietEnd = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Preference.
// This includes values selected through modifiers, order, etc.
func (_m *Preference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Preference.
// Note that you need to call Preference.Unwrap() before calling this method if this Preference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Preference) Update() *PreferenceUpdateOne {
	return NewPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Preference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Preference) Unwrap() *Preference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Preference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Preference) String() string {
	var builder strings.Builder
	builder.WriteString("Preference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("enabled_categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnabledCategories))
	builder.WriteString(", ")
	builder.WriteString("sound=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sound))
	builder.WriteString(", ")
	builder.WriteString("vibration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vibration))
	builder.WriteString(", ")
	builder.WriteString("digest=")
	builder.WriteString(fmt.Sprintf("%v", _m.Digest))
	builder.WriteString(", ")
	builder.WriteString("quiet_start=")
	builder.WriteString(_m.QuietStart)
	builder.WriteString(", ")
	builder.WriteString("quiet_end=")
	builder.WriteString(_m.QuietEnd)
	builder.WriteByte(')')
	return builder.String()
}

// Preferences is a parsable slice of Preference.
type Preferences []*Preference
