// Package property implements the typed property descriptors used by plotkit
// model schemas.
//
// A Type describes the accepted shape of a value: a primitive, a closed enum,
// a fixed-length tuple, or a union of alternatives, optionally nullable. A
// Field pairs a Type with a name, a default (or a required marker), and help
// text. Validation is a single generic check against the descriptor; there is
// no per-field machinery.
//
// Descriptors are plain values built once at schema-declaration time:
//
//	property.NewField("position",
//	    property.Nullable(property.Either(
//	        property.Enum("top_left", "center"),
//	        property.Tuple(property.Float(), property.Float()),
//	    )))
//
// Malformed descriptors (an enum with no values, a tuple with no elements)
// are a defect in the declaring code and are caught when the owning schema is
// built, not at assignment time.
package property
