// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Channel is the predicate function for channel builders.
type Channel func(*sql.Selector)

// CostEntry is the predicate function for costentry builders.
type CostEntry func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
