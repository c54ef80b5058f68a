package fill

import "fmt"

// Area is the rectangle drawn between the two handles of a double slider.
// Insets are measured inward from the left and right edges.
type Area struct {
	width float64
	left  float64
	right float64
}

func NewArea(width float64) *Area {
	if width < 0 {
		width = 0
	}
	return &Area{width: width}
}

func (a *Area) Width() float64 {
	return a.width
}

// Resize changes the width. Insets keep their last written value until the
// next resolution pass.
func (a *Area) Resize(width float64) {
	if width < 0 {
		width = 0
	}
	a.width = width
}

func (a *Area) SetLeftInset(x float64) {
	a.left = x
}

func (a *Area) SetRightInset(x float64) {
	a.right = x
}

func (a *Area) Insets() (left, right float64) {
	return a.left, a.right
}

// Span returns the start and end of the filled part.
func (a *Area) Span() (float64, float64) {
	return a.left, a.width - a.right
}

func (a *Area) String() string {
	start, end := a.Span()
	return fmt.Sprintf("[%.2f, %.2f] of %.2f", start, end, a.width)
}
