package doubleslider

// Offsets are the insets of the fill area, measured from its left and right
// edges.
type Offsets struct {
	Left  float64
	Right float64
}

// ComputeOffsets maps a resolved pair onto a fill area of the given width.
// An empty domain maps both bounds onto the left edge.
func ComputeOffsets(lower, upper, domainMin, domainMax, width float64) Offsets {
	return Offsets{
		Left:  fraction(lower, domainMin, domainMax) * width,
		Right: (1 - fraction(upper, domainMin, domainMax)) * width,
	}
}

func fraction(v, domainMin, domainMax float64) float64 {
	span := domainMax - domainMin
	if span == 0 {
		return 0
	}
	return (v - domainMin) / span
}
