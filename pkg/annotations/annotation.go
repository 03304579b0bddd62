package annotations

import (
	"github.com/plotkit-dev/plotkit/pkg/property"
	"github.com/plotkit-dev/plotkit/pkg/schema"
)

// Model is any annotation that can serialize itself for the renderer.
// Schema-backed wrappers satisfy it by embedding *schema.Instance.
type Model interface {
	Schema() *schema.Schema
	Serialize() (schema.Record, error)
}

// AnnotationSchema is the base field table shared by all annotations: the
// compositing level and a visibility flag.
var AnnotationSchema = schema.MustNew("Annotation",
	property.NewField("level", property.Enum(RenderLevelValues()...)).
		WithDefault("annotation").
		WithHelp("Compositing layer this annotation is drawn into."),
	property.NewField("visible", property.Bool()).
		WithDefault(true).
		WithHelp("Whether the annotation is drawn at all."),
)

// HTMLAnnotationSchema extends the base for annotations realized as HTML
// elements overlaid on the plot canvas rather than drawn into it.
var HTMLAnnotationSchema = schema.MustExtend(AnnotationSchema, "HTMLAnnotation",
	schema.AddField(property.NewField("css_classes", property.String()).
		WithDefault("").
		WithHelp("Space-separated CSS classes added to the annotation's root element.")),
)

// base wraps the shared accessors for schema-backed annotation wrappers.
type base struct {
	*schema.Instance
}

// Level returns the annotation's compositing level.
func (b base) Level() RenderLevel {
	return RenderLevel(b.Get("level").(string))
}

// SetLevel assigns the compositing level.
func (b base) SetLevel(level RenderLevel) error {
	return b.Set("level", string(level))
}

// Visible reports whether the annotation is drawn.
func (b base) Visible() bool {
	return b.Get("visible").(bool)
}

// SetVisible assigns the visibility flag.
func (b base) SetVisible(visible bool) error {
	return b.Set("visible", visible)
}

// CSSClasses returns the space-separated CSS class list.
func (b base) CSSClasses() string {
	return b.Get("css_classes").(string)
}

// SetCSSClasses assigns the CSS class list.
func (b base) SetCSSClasses(classes string) error {
	return b.Set("css_classes", classes)
}
