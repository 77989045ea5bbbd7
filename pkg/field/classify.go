package field

// insideThreshold is the fixed mid-gray cut between the two classifications.
// Boundary pixels rasterized with partial coverage land on whichever side of
// the cut their luminance falls; no further anti-aliasing is applied.
const insideThreshold = 128

// Classifier decides which side of the shape boundary a luminance value
// belongs to. By default darker-than-midgray pixels are inside the shape;
// Negate flips the convention so lighter-than-midgray pixels are inside.
// The same predicate classifies the center sample and every window cell.
type Classifier struct {
	Negate bool
}

// Inside reports whether a pixel with the given luminance is inside the shape.
func (c Classifier) Inside(luma uint8) bool {
	if c.Negate {
		return luma >= insideThreshold
	}
	return luma < insideThreshold
}

// Background returns the luminance used for the padding border and for any
// canvas area the shape does not cover, i.e. the outside classification.
func (c Classifier) Background() uint8 {
	if c.Negate {
		return 0
	}
	return 255
}
