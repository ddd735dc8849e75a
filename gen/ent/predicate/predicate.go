// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Carer is the predicate function for carer builders.
type Carer func(*sql.Selector)

// Referral is the predicate function for referral builders.
type Referral func(*sql.Selector)
