package annotations

import (
	"github.com/plotkit-dev/plotkit/pkg/property"
	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// TooltipSchema declares the Tooltip model. The compositing level default is
// overridden to "overlay"; the field's shape is inherited unchanged.
var TooltipSchema = schema.MustExtend(HTMLAnnotationSchema, "Tooltip",
	schema.Override("level", "overlay"),
	schema.AddField(property.NewField("position", property.Nullable(property.Either(
		property.Enum(AnchorValues()...),
		property.Tuple(property.Float(), property.Float()),
	))).
		WithDefault(nil).
		WithHelp("The position of the tooltip with respect to its parent. It can be "+
			"an absolute position within the parent or an anchor point for "+
			"symbolic positioning.")),
	schema.AddField(property.NewRequired("content", property.String()).
		WithHelp("Rich HTML contents of this tooltip.")),
	schema.AddField(property.NewField("attachment", property.Enum(TooltipAttachmentValues()...)).
		WithHelp("Whether the tooltip should be displayed to the left or right of "+
			"the cursor position or above or below it, or if it should be "+
			"automatically placed in the horizontal or vertical dimension.")),
	schema.AddField(property.NewField("show_arrow", property.Bool()).
		WithDefault(true).
		WithHelp("Whether the tooltip's arrow should be shown.")),
	schema.AddField(property.NewField("closable", property.Bool()).
		WithDefault(false).
		WithHelp("Allows dismissing the tooltip by clicking a close (x) button. "+
			"Useful for persistent tooltips.")),
)

// Tooltip is a transient or persistent HTML tooltip attached to a plot.
// How an explicit position interacts with automatic attachment is decided by
// the renderer; the model stores both as given.
type Tooltip struct {
	base
}

// TooltipOption configures a Tooltip at construction time.
type TooltipOption func(*Tooltip) error

// WithContent sets the tooltip's rich HTML content.
func WithContent(content string) TooltipOption {
	return func(t *Tooltip) error { return t.SetContent(content) }
}

// WithPosition sets the tooltip position (anchor or absolute).
func WithPosition(p Position) TooltipOption {
	return func(t *Tooltip) error { return t.SetPosition(p) }
}

// WithAttachment sets the attachment side or dimension.
func WithAttachment(a TooltipAttachment) TooltipOption {
	return func(t *Tooltip) error { return t.SetAttachment(a) }
}

// WithShowArrow sets whether the tooltip's arrow is drawn.
func WithShowArrow(show bool) TooltipOption {
	return func(t *Tooltip) error { return t.Set("show_arrow", show) }
}

// WithClosable sets whether the tooltip carries a close button.
func WithClosable(closable bool) TooltipOption {
	return func(t *Tooltip) error { return t.Set("closable", closable) }
}

// WithLevel overrides the compositing level for this instance.
func WithLevel(level RenderLevel) TooltipOption {
	return func(t *Tooltip) error { return t.SetLevel(level) }
}

// NewTooltip creates a Tooltip and applies the given options. The first
// invalid option aborts construction.
func NewTooltip(opts ...TooltipOption) (*Tooltip, error) {
	t := &Tooltip{base{TooltipSchema.NewInstance()}}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Content returns the tooltip's HTML content, or "" while unassigned.
func (t *Tooltip) Content() string {
	if v, ok := t.Get("content").(string); ok {
		return v
	}
	return ""
}

// SetContent assigns the tooltip's HTML content.
func (t *Tooltip) SetContent(content string) error {
	return t.Set("content", content)
}

// Position returns the tooltip's position; the zero Position means unset.
func (t *Tooltip) Position() Position {
	return positionFromValue(t.Get("position"))
}

// SetPosition assigns the position union. An unset Position stores an
// explicit null.
func (t *Tooltip) SetPosition(p Position) error {
	return t.Set("position", p.value())
}

// ClearPosition returns the position to its default (null).
func (t *Tooltip) ClearPosition() {
	t.Unset("position")
}

// Attachment returns the attachment and whether it has been assigned.
func (t *Tooltip) Attachment() (TooltipAttachment, bool) {
	if v, ok := t.Get("attachment").(string); ok {
		return TooltipAttachment(v), true
	}
	return "", false
}

// SetAttachment assigns the attachment side or dimension.
func (t *Tooltip) SetAttachment(a TooltipAttachment) error {
	return t.Set("attachment", string(a))
}

// ShowArrow reports whether the tooltip's arrow is drawn.
func (t *Tooltip) ShowArrow() bool {
	return t.Get("show_arrow").(bool)
}

// Closable reports whether the tooltip carries a close button.
func (t *Tooltip) Closable() bool {
	return t.Get("closable").(bool)
}
