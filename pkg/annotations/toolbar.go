package annotations

import (
	"github.com/plotkit-dev/plotkit/pkg/property"
	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// ToolbarSchema declares the Toolbar model: the HTML tool strip docked to
// one side of a plot.
var ToolbarSchema = schema.MustExtend(HTMLAnnotationSchema, "Toolbar",
	schema.Override("level", "overlay"),
	schema.AddField(property.NewField("location", property.Enum(ToolbarLocationValues()...)).
		WithDefault("right").
		WithHelp("Which side of the plot the toolbar is docked to.")),
	schema.AddField(property.NewField("autohide", property.Bool()).
		WithDefault(false).
		WithHelp("Whether the toolbar is hidden until the pointer enters the plot.")),
)

// Toolbar is the HTML toolbar annotation.
type Toolbar struct {
	base
}

// ToolbarOption configures a Toolbar at construction time.
type ToolbarOption func(*Toolbar) error

// WithLocation sets the side the toolbar is docked to.
func WithLocation(loc ToolbarLocation) ToolbarOption {
	return func(tb *Toolbar) error { return tb.Set("location", string(loc)) }
}

// WithAutohide sets whether the toolbar hides until pointer entry.
func WithAutohide(autohide bool) ToolbarOption {
	return func(tb *Toolbar) error { return tb.Set("autohide", autohide) }
}

// NewToolbar creates a Toolbar and applies the given options.
func NewToolbar(opts ...ToolbarOption) (*Toolbar, error) {
	tb := &Toolbar{base{ToolbarSchema.NewInstance()}}
	for _, opt := range opts {
		if err := opt(tb); err != nil {
			return nil, err
		}
	}
	return tb, nil
}

// Location returns the side the toolbar is docked to.
func (tb *Toolbar) Location() ToolbarLocation {
	return ToolbarLocation(tb.Get("location").(string))
}

// Autohide reports whether the toolbar hides until pointer entry.
func (tb *Toolbar) Autohide() bool {
	return tb.Get("autohide").(bool)
}
