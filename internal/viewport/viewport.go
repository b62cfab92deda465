// Package viewport implements the pan and zoom transform of the floor plan.
//
// A Transform maps map-space coordinates to screen coordinates as
// screen = pan + scale*map. Zooming is multiplicative so that every click
// changes the perceived size by the same ratio; scale is clamped to
// [MinScale, MaxScale] while pan is unbounded.
package viewport

import (
	"fmt"
	"math"
)

const (
	MinScale     = 0.5
	MaxScale     = 3.0
	ZoomStep     = 1.2
	DefaultScale = 1.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

type Transform struct {
	Scale float64 `json:"scale"`
	Pan   Point   `json:"pan"`
}

// Reset returns the identity view.
func Reset() Transform {
	return Transform{Scale: DefaultScale}
}

func ZoomIn(t Transform) Transform {
	t.Scale = math.Min(t.Scale*ZoomStep, MaxScale)
	return t
}

func ZoomOut(t Transform) Transform {
	t.Scale = math.Max(t.Scale/ZoomStep, MinScale)
	return t
}

// BeginDrag captures the anchor that keeps the grabbed map point under the
// pointer for the rest of the drag.
func BeginDrag(pointer Point, t Transform) Point {
	return pointer.Sub(t.Pan)
}

// ContinueDrag moves the pan so that the anchor follows the pointer.
func ContinueDrag(pointer, anchor Point, t Transform) Transform {
	t.Pan = pointer.Sub(anchor)
	return t
}

// Normalize clamps a transform restored from outside the package. A
// non-finite scale falls back to the default; a non-finite pan to zero.
func (t Transform) Normalize() Transform {
	switch {
	case math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) || t.Scale == 0:
		t.Scale = DefaultScale
	case t.Scale < MinScale:
		t.Scale = MinScale
	case t.Scale > MaxScale:
		t.Scale = MaxScale
	}
	if !finite(t.Pan.X) || !finite(t.Pan.Y) {
		t.Pan = Point{}
	}
	return t
}

// Apply maps a map-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{X: t.Pan.X + t.Scale*p.X, Y: t.Pan.Y + t.Scale*p.Y}
}

// Invert maps a screen point back to map space.
func (t Transform) Invert(p Point) Point {
	return Point{X: (p.X - t.Pan.X) / t.Scale, Y: (p.Y - t.Pan.Y) / t.Scale}
}

// SVG renders the transform as an SVG transform attribute.
func (t Transform) SVG() string {
	return fmt.Sprintf("translate(%g, %g) scale(%g)", t.Pan.X, t.Pan.Y, t.Scale)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
