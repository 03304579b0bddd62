package annotations

import (
	"errors"
	"testing"

	"github.com/plotkit-dev/plotkit/pkg/property"
)

func TestLabel(t *testing.T) {
	l, err := NewLabel(3.5, -1.0, "<i>peak</i>", WithAnchor(AnchorBottomRight))
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}

	if l.X() != 3.5 || l.Y() != -1.0 {
		t.Errorf("X, Y = %v, %v, want 3.5, -1", l.X(), l.Y())
	}
	if l.Text() != "<i>peak</i>" {
		t.Errorf("Text() = %q", l.Text())
	}
	if l.Anchor() != AnchorBottomRight {
		t.Errorf("Anchor() = %v, want bottom_right", l.Anchor())
	}

	rec, err := l.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if rec["type"] != "Label" || rec["level"] != "annotation" {
		t.Errorf("record type/level = %v/%v", rec["type"], rec["level"])
	}
}

func TestToolbarDefaults(t *testing.T) {
	tb, err := NewToolbar()
	if err != nil {
		t.Fatalf("NewToolbar: %v", err)
	}
	if tb.Location() != ToolbarRight {
		t.Errorf("Location() = %v, want right", tb.Location())
	}
	if tb.Autohide() {
		t.Error("Autohide() = true, want false")
	}

	tb, err = NewToolbar(WithLocation(ToolbarAbove), WithAutohide(true))
	if err != nil {
		t.Fatalf("NewToolbar with options: %v", err)
	}
	rec, err := tb.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if rec["location"] != "above" || rec["autohide"] != true || rec["level"] != "overlay" {
		t.Errorf("record = %v", rec)
	}
}

func TestEnumSpellings(t *testing.T) {
	// These spellings are the wire contract with the renderer.
	wantAnchors := []string{
		"top_left", "top_center", "top_right",
		"center_left", "center", "center_right",
		"bottom_left", "bottom_center", "bottom_right",
		"top", "left", "right", "bottom",
	}
	gotAnchors := AnchorValues()
	if len(gotAnchors) != len(wantAnchors) {
		t.Fatalf("AnchorValues() = %v", gotAnchors)
	}
	for i := range wantAnchors {
		if gotAnchors[i] != wantAnchors[i] {
			t.Errorf("AnchorValues()[%d] = %q, want %q", i, gotAnchors[i], wantAnchors[i])
		}
	}

	wantAttach := []string{"left", "right", "above", "below", "horizontal", "vertical", "auto"}
	gotAttach := TooltipAttachmentValues()
	if len(gotAttach) != len(wantAttach) {
		t.Fatalf("TooltipAttachmentValues() = %v", gotAttach)
	}
	for i := range wantAttach {
		if gotAttach[i] != wantAttach[i] {
			t.Errorf("TooltipAttachmentValues()[%d] = %q, want %q", i, gotAttach[i], wantAttach[i])
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"Annotation", "HTMLAnnotation", "Tooltip", "Label", "Toolbar"} {
		s, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missing", name)
			continue
		}
		if s.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, s.Name())
		}
	}
	if _, ok := Lookup("Whisker"); ok {
		t.Error("Lookup of unregistered type succeeded")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	tip, err := NewTooltip(
		WithContent("<b>42</b>"),
		WithPosition(At(1.5, 2.5)),
		WithAttachment(AttachmentAuto),
	)
	if err != nil {
		t.Fatalf("NewTooltip: %v", err)
	}
	rec, err := tip.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	inst, err := Decode(rec)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := inst.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	rec2, err := inst.Serialize()
	if err != nil {
		t.Fatalf("re-Serialize: %v", err)
	}
	for _, field := range []string{"type", "level", "content", "attachment", "show_arrow", "closable"} {
		if rec2[field] != rec[field] {
			t.Errorf("round trip changed %q: %v -> %v", field, rec[field], rec2[field])
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"no discriminator", map[string]any{"content": "x"}},
		{"unknown type", map[string]any{"type": "Whisker"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.rec); err == nil {
				t.Error("expected error")
			}
		})
	}

	// Invalid field values surface as ValidationErrors.
	var ve *property.ValidationError
	_, err := Decode(map[string]any{"type": "Tooltip", "show_arrow": "yes"})
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	// Nil values are unset, not errors, so serialized optionals round-trip.
	inst, err := Decode(map[string]any{"type": "Tooltip", "attachment": nil})
	if err != nil {
		t.Fatalf("Decode with nil optional: %v", err)
	}
	if inst.IsSet("attachment") {
		t.Error("nil value decoded as an assignment")
	}
}
