package property

// Field declares a named, typed, defaulted property on a schema.
//
// A field is either required (no default, must be assigned before the owning
// instance serializes) or optional with an explicit default. Optional fields
// without a default resolve to nil.
type Field struct {
	// Name is the field's wire name. Spellings are a compatibility surface
	// with the rendering consumer and must not be normalized.
	Name string

	// Type is the accepted value shape.
	Type *Type

	// Default is the resolved value when the field was never assigned.
	// Only meaningful when HasDefault is true.
	Default any

	// HasDefault distinguishes an explicit nil default from no default.
	HasDefault bool

	// Required marks fields that must be assigned before serialization.
	Required bool

	// Help is human-readable documentation for the field.
	Help string
}

// NewField declares an optional field with no default.
func NewField(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

// NewRequired declares a required field. Required fields have no default.
func NewRequired(name string, t *Type) Field {
	return Field{Name: name, Type: t, Required: true}
}

// WithDefault returns a copy of the field with the given default value.
// The default is validated when the owning schema is built.
func (f Field) WithDefault(v any) Field {
	f.Default = v
	f.HasDefault = true
	return f
}

// WithHelp returns a copy of the field with documentation text attached.
func (f Field) WithHelp(help string) Field {
	f.Help = help
	return f
}

// WellFormed reports whether the field's descriptor is usable. A required
// field carrying a default is malformed.
func (f Field) WellFormed() bool {
	if f.Name == "" || !f.Type.wellFormed() {
		return false
	}
	if f.Required && f.HasDefault {
		return false
	}
	return true
}
