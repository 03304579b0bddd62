package annotations

// Anchor is a named symbolic position used for relative placement instead of
// absolute coordinates.
type Anchor string

const (
	AnchorTopLeft      Anchor = "top_left"
	AnchorTopCenter    Anchor = "top_center"
	AnchorTopRight     Anchor = "top_right"
	AnchorCenterLeft   Anchor = "center_left"
	AnchorCenter       Anchor = "center"
	AnchorCenterRight  Anchor = "center_right"
	AnchorBottomLeft   Anchor = "bottom_left"
	AnchorBottomCenter Anchor = "bottom_center"
	AnchorBottomRight  Anchor = "bottom_right"
	AnchorTop          Anchor = "top"
	AnchorLeft         Anchor = "left"
	AnchorRight        Anchor = "right"
	AnchorBottom       Anchor = "bottom"
)

// AnchorValues returns the anchor spellings in declaration order.
func AnchorValues() []string {
	return []string{
		"top_left", "top_center", "top_right",
		"center_left", "center", "center_right",
		"bottom_left", "bottom_center", "bottom_right",
		"top", "left", "right", "bottom",
	}
}

// TooltipAttachment is the side or orientation at which a tooltip is
// displayed relative to its reference point. The horizontal/vertical/auto
// members let the renderer pick the side within the given dimension.
type TooltipAttachment string

const (
	AttachmentLeft       TooltipAttachment = "left"
	AttachmentRight      TooltipAttachment = "right"
	AttachmentAbove      TooltipAttachment = "above"
	AttachmentBelow      TooltipAttachment = "below"
	AttachmentHorizontal TooltipAttachment = "horizontal"
	AttachmentVertical   TooltipAttachment = "vertical"
	AttachmentAuto       TooltipAttachment = "auto"
)

// TooltipAttachmentValues returns the attachment spellings in declaration
// order.
func TooltipAttachmentValues() []string {
	return []string{"left", "right", "above", "below", "horizontal", "vertical", "auto"}
}

// RenderLevel tags the compositing layer an annotation is drawn into.
type RenderLevel string

const (
	LevelImage      RenderLevel = "image"
	LevelUnderlay   RenderLevel = "underlay"
	LevelGlyph      RenderLevel = "glyph"
	LevelGuide      RenderLevel = "guide"
	LevelAnnotation RenderLevel = "annotation"
	LevelOverlay    RenderLevel = "overlay"
)

// RenderLevelValues returns the render level spellings in compositing order.
func RenderLevelValues() []string {
	return []string{"image", "underlay", "glyph", "guide", "annotation", "overlay"}
}

// ToolbarLocation is the plot side a toolbar is docked to.
type ToolbarLocation string

const (
	ToolbarAbove ToolbarLocation = "above"
	ToolbarBelow ToolbarLocation = "below"
	ToolbarLeft  ToolbarLocation = "left"
	ToolbarRight ToolbarLocation = "right"
)

// ToolbarLocationValues returns the toolbar location spellings.
func ToolbarLocationValues() []string {
	return []string{"above", "below", "left", "right"}
}
