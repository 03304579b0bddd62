// Package annotations declares the HTML annotation models (tooltips, labels,
// toolbars) of the plotkit visualization model.
//
// Each model is a schema-backed property bag: the schema declares the typed,
// defaulted fields, and a typed wrapper adds Go accessors over the generic
// bag. Models carry no rendering logic; they are serialized to records and
// handed to an external rendering layer, which owns placement, styling, and
// event handling. Field names and enum spellings in the serialized records
// are a compatibility surface with that renderer and must not change.
//
//	tip, err := annotations.NewTooltip(
//	    annotations.WithContent("<b>42 points</b>"),
//	    annotations.WithPosition(annotations.At(10.5, 20.0)),
//	)
package annotations
