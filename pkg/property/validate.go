package property

import "reflect"

// Matches reports whether v matches the descriptor's shape. Named types are
// accepted through their underlying kind, so enum values may be typed
// strings and tuples may be typed slices.
func (t *Type) Matches(v any) bool {
	if v == nil {
		return t.AllowNull
	}

	rv := reflect.ValueOf(v)

	switch t.Kind {
	case KindBool:
		return rv.Kind() == reflect.Bool

	case KindInt:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		case reflect.Float32, reflect.Float64:
			// JSON decodes all numbers as float64; accept integral values.
			f := rv.Float()
			return f == float64(int64(f))
		}
		return false

	case KindFloat:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false

	case KindString:
		return rv.Kind() == reflect.String

	case KindEnum:
		if rv.Kind() != reflect.String {
			return false
		}
		s := rv.String()
		for _, m := range t.Values {
			if s == m {
				return true
			}
		}
		return false

	case KindTuple:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		if rv.Len() != len(t.Elems) {
			return false
		}
		for i, e := range t.Elems {
			ev := rv.Index(i).Interface()
			if !e.Matches(ev) {
				return false
			}
		}
		return true

	case KindEither:
		for _, a := range t.Alts {
			if a.Matches(v) {
				return true
			}
		}
		return false
	}

	return false
}

// Validate checks v against the descriptor and returns a *ValidationError
// naming the field when it matches no accepted shape.
func (t *Type) Validate(field string, v any) error {
	if t.Matches(v) {
		return nil
	}
	return &ValidationError{Field: field, Value: v, Expected: t.Describe()}
}
