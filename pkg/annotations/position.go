package annotations

// positionKind discriminates the two branches of the position union.
type positionKind uint8

const (
	positionUnset positionKind = iota
	positionAnchor
	positionXY
)

// Position is a tooltip position: either a named anchor for symbolic
// placement or an absolute (x, y) pair within the parent. The zero Position
// is unset.
type Position struct {
	kind   positionKind
	anchor Anchor
	x, y   float64
}

// At returns an absolute (x, y) position.
func At(x, y float64) Position {
	return Position{kind: positionXY, x: x, y: y}
}

// AtAnchor returns a symbolic anchor position.
func AtAnchor(a Anchor) Position {
	return Position{kind: positionAnchor, anchor: a}
}

// IsSet reports whether the position carries either branch.
func (p Position) IsSet() bool { return p.kind != positionUnset }

// Anchor returns the anchor branch, if that is what the position holds.
func (p Position) Anchor() (Anchor, bool) {
	return p.anchor, p.kind == positionAnchor
}

// XY returns the absolute branch, if that is what the position holds.
func (p Position) XY() (x, y float64, ok bool) {
	return p.x, p.y, p.kind == positionXY
}

// value returns the union's stored representation: nil, the anchor string,
// or a two-element coordinate slice.
func (p Position) value() any {
	switch p.kind {
	case positionAnchor:
		return string(p.anchor)
	case positionXY:
		return []any{p.x, p.y}
	default:
		return nil
	}
}

// positionFromValue maps a stored value back onto the union. Values come
// from an Instance, so shapes are already validated; anything unrecognized
// maps to unset.
func positionFromValue(v any) Position {
	switch val := v.(type) {
	case nil:
		return Position{}
	case string:
		return AtAnchor(Anchor(val))
	case []any:
		if len(val) != 2 {
			return Position{}
		}
		x, xok := toFloat(val[0])
		y, yok := toFloat(val[1])
		if !xok || !yok {
			return Position{}
		}
		return At(x, y)
	case []float64:
		if len(val) != 2 {
			return Position{}
		}
		return At(val[0], val[1])
	default:
		return Position{}
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
