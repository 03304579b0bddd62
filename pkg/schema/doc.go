// Package schema implements the field tables behind plotkit models.
//
// A Schema is an ordered table of property.Field declarations built once per
// entity type, usually at package init. Derived entity types are built with
// Extend, which composes a base schema with an override table: Override
// replaces only a field's default, AddField appends new fields, and any
// attempt to change an inherited field's shape fails with a
// SchemaConflictError.
//
// An Instance is the mutable property bag for one model. Assignment
// validates against the field's descriptor and fails with a ValidationError;
// Serialize resolves every declared field (assigned value or default) into a
// Record and fails with a MissingRequiredError when required fields are
// unassigned. Instances are not safe for concurrent use; each is owned by a
// single goroutine until handed off.
package schema
