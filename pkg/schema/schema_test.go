package schema

import (
	"errors"
	"testing"

	"github.com/plotkit-dev/plotkit/pkg/property"
)

func baseSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("Annotation",
		property.NewField("level", property.Enum("underlay", "annotation", "overlay")).
			WithDefault("annotation"),
		property.NewField("visible", property.Bool()).WithDefault(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name   string
		fields []property.Field
	}{
		{"duplicate field", []property.Field{
			property.NewField("visible", property.Bool()),
			property.NewField("visible", property.Bool()),
		}},
		{"reserved type key", []property.Field{
			property.NewField("type", property.String()),
		}},
		{"default with wrong shape", []property.Field{
			property.NewField("visible", property.Bool()).WithDefault("yes"),
		}},
		{"malformed enum", []property.Field{
			property.NewField("level", property.Enum()),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("Broken", tt.fields...)
			var sc *property.SchemaConflictError
			if !errors.As(err, &sc) {
				t.Fatalf("expected *SchemaConflictError, got %v", err)
			}
		})
	}
}

func TestExtendOverridesDefaultOnly(t *testing.T) {
	base := baseSchema(t)

	derived, err := Extend(base, "Tooltip", Override("level", "overlay"))
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	f, ok := derived.Field("level")
	if !ok {
		t.Fatal("level field missing on derived schema")
	}
	if f.Default != "overlay" {
		t.Errorf("derived default = %v, want overlay", f.Default)
	}

	// Shape is untouched by the override.
	bf, _ := base.Field("level")
	if !property.EqualShape(bf.Type, f.Type) {
		t.Error("override changed the field's shape")
	}
	if bf.Default != "annotation" {
		t.Errorf("base default mutated to %v", bf.Default)
	}
}

func TestExtendConflicts(t *testing.T) {
	base := baseSchema(t)

	tests := []struct {
		name string
		opt  ExtendOption
	}{
		{"override unknown field", Override("opacity", 0.5)},
		{"override with wrong shape", Override("visible", "yes")},
		{"redeclare with new shape", AddField(property.NewField("visible", property.String()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extend(base, "Tooltip", tt.opt)
			var sc *property.SchemaConflictError
			if !errors.As(err, &sc) {
				t.Fatalf("expected *SchemaConflictError, got %v", err)
			}
		})
	}
}

func TestExtendAddsFieldsAfterBase(t *testing.T) {
	base := baseSchema(t)

	derived, err := Extend(base, "Tooltip",
		AddField(property.NewRequired("content", property.String())),
		AddField(property.NewField("closable", property.Bool()).WithDefault(false)),
	)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	want := []string{"level", "visible", "content", "closable"}
	got := derived.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("FieldNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FieldNames = %v, want %v", got, want)
		}
	}
}

func TestInstanceSetGetRoundTrip(t *testing.T) {
	s := MustNew("Thing",
		property.NewField("position", property.Nullable(property.Either(
			property.Enum("top_left", "center"),
			property.Tuple(property.Float(), property.Float()),
		))),
		property.NewField("visible", property.Bool()).WithDefault(true),
	)
	inst := s.NewInstance()

	// Default read before any assignment.
	if got := inst.Get("visible"); got != true {
		t.Errorf("Get(visible) = %v, want default true", got)
	}
	if inst.IsSet("visible") {
		t.Error("visible reported set before assignment")
	}

	// Both union branches round-trip.
	if err := inst.Set("position", "center"); err != nil {
		t.Fatalf("Set(enum branch): %v", err)
	}
	if got := inst.Get("position"); got != "center" {
		t.Errorf("Get(position) = %v, want center", got)
	}

	xy := []any{10.5, 20.0}
	if err := inst.Set("position", xy); err != nil {
		t.Fatalf("Set(tuple branch): %v", err)
	}
	got, ok := inst.Get("position").([]any)
	if !ok || len(got) != 2 || got[0] != 10.5 || got[1] != 20.0 {
		t.Errorf("Get(position) = %v, want %v", inst.Get("position"), xy)
	}

	// Unset returns the field to its default.
	if err := inst.Set("visible", false); err != nil {
		t.Fatalf("Set(visible): %v", err)
	}
	inst.Unset("visible")
	if got := inst.Get("visible"); got != true {
		t.Errorf("Get(visible) after Unset = %v, want true", got)
	}
}

func TestInstanceRejectsInvalidAssignments(t *testing.T) {
	s := MustNew("Thing",
		property.NewField("attachment", property.Enum("left", "right", "auto")),
	)
	inst := s.NewInstance()

	var ve *property.ValidationError

	err := inst.Set("attachment", "sideways")
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != "attachment" {
		t.Errorf("Field = %q, want attachment", ve.Field)
	}
	if inst.IsSet("attachment") {
		t.Error("rejected assignment must not store the value")
	}

	if err := inst.Set("nope", 1); !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError for unknown field, got %v", err)
	}
}

func TestSerializeResolvesDefaultsAndRequireds(t *testing.T) {
	s := MustNew("Tooltip",
		property.NewField("level", property.Enum("annotation", "overlay")).WithDefault("overlay"),
		property.NewField("position", property.Nullable(property.Either(
			property.Enum("top_left"),
			property.Tuple(property.Float(), property.Float()),
		))).WithDefault(nil),
		property.NewRequired("content", property.String()),
		property.NewField("attachment", property.Enum("left", "right", "auto")),
		property.NewField("show_arrow", property.Bool()).WithDefault(true),
		property.NewField("closable", property.Bool()).WithDefault(false),
	)

	// Missing required field fails, naming the offender.
	inst := s.NewInstance()
	_, err := inst.Serialize()
	var mr *property.MissingRequiredError
	if !errors.As(err, &mr) {
		t.Fatalf("expected *MissingRequiredError, got %v", err)
	}
	if len(mr.Fields) != 1 || mr.Fields[0] != "content" {
		t.Errorf("Fields = %v, want [content]", mr.Fields)
	}

	// With only content set, everything else resolves to its default.
	if err := inst.Set("content", "<b>hi</b>"); err != nil {
		t.Fatalf("Set(content): %v", err)
	}
	rec, err := inst.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	want := Record{
		"type":       "Tooltip",
		"level":      "overlay",
		"position":   nil,
		"content":    "<b>hi</b>",
		"attachment": nil,
		"show_arrow": true,
		"closable":   false,
	}
	if len(rec) != len(want) {
		t.Fatalf("record = %v, want %v", rec, want)
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("record[%q] = %v, want %v", k, rec[k], v)
		}
	}
}

func TestNewInstanceWith(t *testing.T) {
	s := MustNew("Thing",
		property.NewRequired("content", property.String()),
		property.NewField("closable", property.Bool()).WithDefault(false),
	)

	inst, err := s.NewInstanceWith(map[string]any{"content": "hi", "closable": true})
	if err != nil {
		t.Fatalf("NewInstanceWith: %v", err)
	}
	if got := inst.Get("closable"); got != true {
		t.Errorf("Get(closable) = %v, want true", got)
	}

	if _, err := s.NewInstanceWith(map[string]any{"closable": 3}); err == nil {
		t.Error("expected error for invalid initial value")
	}
	if _, err := s.NewInstanceWith(map[string]any{"bogus": 1}); err == nil {
		t.Error("expected error for unknown initial field")
	}
}
