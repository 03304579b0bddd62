package schema

import (
	"fmt"

	"github.com/plotkit-dev/plotkit/pkg/property"
)

// TypeKey is the discriminator key added to every serialized record. No
// schema may declare a field with this name.
const TypeKey = "type"

// Schema is an immutable, ordered table of field declarations for one
// entity type. Build with New or Extend; safe for concurrent use once built.
type Schema struct {
	name   string
	fields []property.Field
	index  map[string]int
}

// New builds a schema from the given field declarations. Duplicate names,
// malformed descriptors, defaults that do not match their declared shape,
// and the reserved name "type" all fail with a *SchemaConflictError.
func New(name string, fields ...property.Field) (*Schema, error) {
	if name == "" {
		return nil, &property.SchemaConflictError{Schema: name, Reason: "schema name must not be empty"}
	}

	s := &Schema{
		name:   name,
		fields: make([]property.Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := s.add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is like New but panics on error. Model packages declare their
// schemas with it at init, where a malformed declaration is a programming
// defect.
func MustNew(name string, fields ...property.Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) add(f property.Field) error {
	if f.Name == TypeKey {
		return &property.SchemaConflictError{
			Schema: s.name, Field: f.Name,
			Reason: fmt.Sprintf("%q is reserved for the record discriminator", TypeKey),
		}
	}
	if !f.WellFormed() {
		return &property.SchemaConflictError{
			Schema: s.name, Field: f.Name, Reason: "malformed field declaration",
		}
	}
	if _, exists := s.index[f.Name]; exists {
		return &property.SchemaConflictError{
			Schema: s.name, Field: f.Name, Reason: "duplicate field name",
		}
	}
	if f.HasDefault {
		if err := f.Type.Validate(f.Name, f.Default); err != nil {
			return &property.SchemaConflictError{
				Schema: s.name, Field: f.Name,
				Reason: fmt.Sprintf("default does not match declared shape %s", f.Type.Describe()),
			}
		}
	}
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

// Name returns the schema's type name, used as the record discriminator.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the declaration for the named field.
func (s *Schema) Field(name string) (property.Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return property.Field{}, false
	}
	return s.fields[i], true
}

// Fields returns the field declarations in declaration order (base fields
// first for extended schemas).
func (s *Schema) Fields() []property.Field {
	out := make([]property.Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// ExtendOption mutates a schema under construction by Extend.
type ExtendOption func(*Schema) error

// Override replaces the default of an inherited field without redeclaring
// its shape. Overriding an unknown field, a required field, or supplying a
// default that does not match the inherited shape fails with a
// *SchemaConflictError.
func Override(field string, def any) ExtendOption {
	return func(s *Schema) error {
		i, ok := s.index[field]
		if !ok {
			return &property.SchemaConflictError{
				Schema: s.name, Field: field, Reason: "cannot override unknown field",
			}
		}
		f := s.fields[i]
		if f.Required {
			return &property.SchemaConflictError{
				Schema: s.name, Field: field, Reason: "cannot override default of a required field",
			}
		}
		if err := f.Type.Validate(field, def); err != nil {
			return &property.SchemaConflictError{
				Schema: s.name, Field: field,
				Reason: fmt.Sprintf("override default does not match declared shape %s", f.Type.Describe()),
			}
		}
		f.Default = def
		f.HasDefault = true
		s.fields[i] = f
		return nil
	}
}

// AddField declares a new field on the extending schema. If the name
// collides with an inherited field the declaration must carry the identical
// shape, in which case it replaces the inherited default and help text;
// a shape change fails with a *SchemaConflictError.
func AddField(f property.Field) ExtendOption {
	return func(s *Schema) error {
		i, ok := s.index[f.Name]
		if !ok {
			return s.add(f)
		}
		old := s.fields[i]
		if !property.EqualShape(old.Type, f.Type) {
			return &property.SchemaConflictError{
				Schema: s.name, Field: f.Name,
				Reason: fmt.Sprintf("redeclaration changes shape from %s to %s",
					old.Type.Describe(), f.Type.Describe()),
			}
		}
		if !f.WellFormed() {
			return &property.SchemaConflictError{
				Schema: s.name, Field: f.Name, Reason: "malformed field declaration",
			}
		}
		if f.HasDefault {
			if err := f.Type.Validate(f.Name, f.Default); err != nil {
				return &property.SchemaConflictError{
					Schema: s.name, Field: f.Name,
					Reason: fmt.Sprintf("default does not match declared shape %s", f.Type.Describe()),
				}
			}
		}
		s.fields[i] = f
		return nil
	}
}

// Extend builds a derived schema: a copy of the base field table with the
// given overrides and additions applied in order.
func Extend(base *Schema, name string, opts ...ExtendOption) (*Schema, error) {
	if name == "" {
		return nil, &property.SchemaConflictError{Schema: name, Reason: "schema name must not be empty"}
	}

	s := &Schema{
		name:   name,
		fields: make([]property.Field, len(base.fields)),
		index:  make(map[string]int, len(base.fields)),
	}
	copy(s.fields, base.fields)
	for k, v := range base.index {
		s.index[k] = v
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustExtend is like Extend but panics on error.
func MustExtend(base *Schema, name string, opts ...ExtendOption) *Schema {
	s, err := Extend(base, name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
