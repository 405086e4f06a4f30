// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Notice is the predicate function for notice builders.
type Notice func(*sql.Selector)

// Preference is the predicate function for preference builders.
type Preference func(*sql.Selector)

// Reminder is the predicate function for reminder builders.
type Reminder func(*sql.Selector)
