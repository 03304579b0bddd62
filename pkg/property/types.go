package property

import "strings"

// Kind is the descriptor type discriminator.
type Kind uint8

const (
	KindBool   Kind = iota // true/false
	KindInt                // integer number
	KindFloat              // floating point number (integers accepted)
	KindString             // plain string
	KindEnum               // member of a closed string set
	KindTuple              // fixed-length positional sequence
	KindEither             // any one of several alternatives
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindTuple:
		return "tuple"
	case KindEither:
		return "either"
	default:
		return "unknown"
	}
}

// Type describes the accepted shape of a property value.
//
// Exactly one interpretation applies depending on Kind: Values for enums,
// Elems for tuples, Alts for unions. AllowNull permits nil regardless of
// Kind.
type Type struct {
	Kind      Kind
	Values    []string // enum members, in declaration order
	Elems     []*Type  // tuple element descriptors
	Alts      []*Type  // union alternatives, tried in order
	AllowNull bool
}

// Bool returns a boolean descriptor.
func Bool() *Type { return &Type{Kind: KindBool} }

// Int returns an integer descriptor.
func Int() *Type { return &Type{Kind: KindInt} }

// Float returns a floating point descriptor. Integer values are accepted
// and widened.
func Float() *Type { return &Type{Kind: KindFloat} }

// String returns a string descriptor.
func String() *Type { return &Type{Kind: KindString} }

// Enum returns a descriptor accepting exactly the given string values.
func Enum(values ...string) *Type {
	return &Type{Kind: KindEnum, Values: values}
}

// Tuple returns a descriptor accepting a sequence with exactly one value
// per element descriptor, in order.
func Tuple(elems ...*Type) *Type {
	return &Type{Kind: KindTuple, Elems: elems}
}

// Either returns a descriptor accepting a value matching any one of the
// given alternatives. Alternatives are tried in declaration order.
func Either(alts ...*Type) *Type {
	return &Type{Kind: KindEither, Alts: alts}
}

// Nullable returns a copy of t that additionally accepts nil.
func Nullable(t *Type) *Type {
	c := *t
	c.AllowNull = true
	return &c
}

// Describe returns a human-readable description of the accepted shape,
// used in validation errors.
func (t *Type) Describe() string {
	var b strings.Builder
	if t.AllowNull {
		b.WriteString("null or ")
	}
	switch t.Kind {
	case KindEnum:
		b.WriteString("enum[")
		b.WriteString(strings.Join(t.Values, "|"))
		b.WriteString("]")
	case KindTuple:
		b.WriteString("tuple(")
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Describe())
		}
		b.WriteString(")")
	case KindEither:
		b.WriteString("either(")
		for i, a := range t.Alts {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(a.Describe())
		}
		b.WriteString(")")
	default:
		b.WriteString(t.Kind.String())
	}
	return b.String()
}

// wellFormed reports whether the descriptor is usable. Schemas reject
// malformed descriptors at build time.
func (t *Type) wellFormed() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindEnum:
		if len(t.Values) == 0 {
			return false
		}
	case KindTuple:
		if len(t.Elems) == 0 {
			return false
		}
		for _, e := range t.Elems {
			if !e.wellFormed() {
				return false
			}
		}
	case KindEither:
		if len(t.Alts) == 0 {
			return false
		}
		for _, a := range t.Alts {
			if !a.wellFormed() {
				return false
			}
		}
	}
	return true
}

// equalShape reports whether two descriptors declare the same shape.
// Nullability is part of the shape; defaults are not.
func equalShape(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.AllowNull != b.AllowNull {
		return false
	}
	if len(a.Values) != len(b.Values) || len(a.Elems) != len(b.Elems) || len(a.Alts) != len(b.Alts) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	for i := range a.Elems {
		if !equalShape(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	for i := range a.Alts {
		if !equalShape(a.Alts[i], b.Alts[i]) {
			return false
		}
	}
	return true
}

// EqualShape reports whether two descriptors declare the same shape.
// Default-only overrides must leave the shape untouched; this is the check
// backing that rule.
func EqualShape(a, b *Type) bool { return equalShape(a, b) }
