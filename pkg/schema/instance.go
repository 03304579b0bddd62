package schema

import (
	"fmt"

	"github.com/plotkit-dev/plotkit/pkg/property"
)

// Record is a serialized model: every declared field resolved to a value,
// plus the TypeKey discriminator. It is the hand-off format consumed by the
// rendering layer.
type Record map[string]any

// Instance is the mutable property bag for one model. Not safe for
// concurrent use.
type Instance struct {
	schema *Schema
	values map[string]any
}

// NewInstance creates an empty instance of the schema. All fields start
// unset and read back their declared defaults.
func (s *Schema) NewInstance() *Instance {
	return &Instance{
		schema: s,
		values: make(map[string]any),
	}
}

// NewInstanceWith creates an instance and applies the given initial
// assignments. The first invalid assignment aborts construction.
func (s *Schema) NewInstanceWith(values map[string]any) (*Instance, error) {
	inst := s.NewInstance()
	// Assign in declaration order so failures are deterministic.
	for _, f := range s.fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := inst.Set(f.Name, v); err != nil {
			return nil, err
		}
	}
	for name := range values {
		if _, ok := s.index[name]; !ok {
			return nil, unknownField(s, name, values[name])
		}
	}
	return inst, nil
}

// Schema returns the instance's schema.
func (i *Instance) Schema() *Schema { return i.schema }

// Set assigns a value to the named field after validating it against the
// field's declared shape. The stored value is visible to later Gets and to
// Serialize.
func (i *Instance) Set(name string, v any) error {
	f, ok := i.schema.Field(name)
	if !ok {
		return unknownField(i.schema, name, v)
	}
	if err := f.Type.Validate(name, v); err != nil {
		return err
	}
	i.values[name] = v
	return nil
}

// Get returns the assigned value, or the declared default if the field was
// never assigned, or nil for an unset field without a default. Unknown
// fields read as nil.
func (i *Instance) Get(name string) any {
	if v, ok := i.values[name]; ok {
		return v
	}
	if f, ok := i.schema.Field(name); ok && f.HasDefault {
		return f.Default
	}
	return nil
}

// IsSet reports whether the field has been explicitly assigned.
func (i *Instance) IsSet(name string) bool {
	_, ok := i.values[name]
	return ok
}

// Unset returns the field to its declared default.
func (i *Instance) Unset(name string) {
	delete(i.values, name)
}

// Validate checks that every required field has been assigned. It returns a
// *MissingRequiredError listing all unresolved required fields, or nil.
func (i *Instance) Validate() error {
	var missing []string
	for _, f := range i.schema.fields {
		if f.Required && !i.IsSet(f.Name) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &property.MissingRequiredError{Schema: i.schema.name, Fields: missing}
	}
	return nil
}

// Serialize resolves every declared field to its assigned value or default
// and returns the Record for hand-off to the renderer. There is no partial
// success: if any required field is unresolved the whole serialization fails
// with a *MissingRequiredError.
func (i *Instance) Serialize() (Record, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	rec := make(Record, len(i.schema.fields)+1)
	rec[TypeKey] = i.schema.name
	for _, f := range i.schema.fields {
		rec[f.Name] = i.Get(f.Name)
	}
	return rec, nil
}

func unknownField(s *Schema, name string, v any) error {
	return &property.ValidationError{
		Field:    name,
		Value:    v,
		Expected: fmt.Sprintf("a declared field of schema %q", s.name),
	}
}
