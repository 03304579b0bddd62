package annotations

import (
	"github.com/plotkit-dev/plotkit/pkg/property"
	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// LabelSchema declares the Label model: a single piece of HTML text placed
// at an absolute (x, y) location, aligned to an anchor point.
var LabelSchema = schema.MustExtend(HTMLAnnotationSchema, "Label",
	schema.AddField(property.NewRequired("x", property.Float()).
		WithHelp("The x-coordinate to locate the text anchor at.")),
	schema.AddField(property.NewRequired("y", property.Float()).
		WithHelp("The y-coordinate to locate the text anchor at.")),
	schema.AddField(property.NewRequired("text", property.String()).
		WithHelp("The HTML text to render.")),
	schema.AddField(property.NewField("anchor", property.Enum(AnchorValues()...)).
		WithDefault("top_left").
		WithHelp("Which point of the label is placed at (x, y).")),
)

// Label is a positioned HTML text annotation.
type Label struct {
	base
}

// LabelOption configures a Label at construction time.
type LabelOption func(*Label) error

// WithAnchor sets which point of the label is placed at (x, y).
func WithAnchor(a Anchor) LabelOption {
	return func(l *Label) error { return l.Set("anchor", string(a)) }
}

// NewLabel creates a Label with the given location and text.
func NewLabel(x, y float64, text string, opts ...LabelOption) (*Label, error) {
	l := &Label{base{LabelSchema.NewInstance()}}
	if err := l.Set("x", x); err != nil {
		return nil, err
	}
	if err := l.Set("y", y); err != nil {
		return nil, err
	}
	if err := l.Set("text", text); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// X returns the label's x-coordinate, or 0 while unassigned.
func (l *Label) X() float64 {
	if v, ok := l.Get("x").(float64); ok {
		return v
	}
	return 0
}

// Y returns the label's y-coordinate, or 0 while unassigned.
func (l *Label) Y() float64 {
	if v, ok := l.Get("y").(float64); ok {
		return v
	}
	return 0
}

// Text returns the label's HTML text, or "" while unassigned.
func (l *Label) Text() string {
	if v, ok := l.Get("text").(string); ok {
		return v
	}
	return ""
}

// SetText assigns the label's HTML text.
func (l *Label) SetText(text string) error {
	return l.Set("text", text)
}

// Anchor returns which point of the label is placed at (x, y).
func (l *Label) Anchor() Anchor {
	return Anchor(l.Get("anchor").(string))
}
