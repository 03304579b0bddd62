package property

import (
	"fmt"
	"strings"
)

// ValidationError is returned when an assigned value matches none of the
// accepted shapes declared for its field.
type ValidationError struct {
	// Field is the name of the offending field.
	Field string

	// Value is the rejected value.
	Value any

	// Expected describes the accepted shape(s).
	Expected string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("plotkit: invalid value for field %q: got %T (%v), expected %s",
		e.Field, e.Value, e.Value, e.Expected)
}

// MissingRequiredError is returned when serialization is attempted while one
// or more required fields are unassigned. Fields lists every offender so the
// caller can fix a model in one pass.
type MissingRequiredError struct {
	Schema string
	Fields []string
}

// Error implements the error interface.
func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("plotkit: schema %q: missing required field(s): %s",
		e.Schema, strings.Join(e.Fields, ", "))
}

// SchemaConflictError is returned when building a schema fails: a duplicate
// field name, a malformed descriptor, an override of an unknown field, or an
// override that changes a field's shape instead of only its default.
type SchemaConflictError struct {
	Schema string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("plotkit: schema %q, field %q: %s", e.Schema, e.Field, e.Reason)
}
