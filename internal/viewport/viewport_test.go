package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoomIn_ConvergesToMax(t *testing.T) {
	tr := Reset()
	for i := 0; i < 20; i++ {
		tr = ZoomIn(tr)
		assert.LessOrEqual(t, tr.Scale, MaxScale)
	}
	assert.Equal(t, MaxScale, tr.Scale)
}

func TestZoomOut_ConvergesToMin(t *testing.T) {
	tr := Reset()
	for i := 0; i < 20; i++ {
		tr = ZoomOut(tr)
		assert.GreaterOrEqual(t, tr.Scale, MinScale)
	}
	assert.Equal(t, MinScale, tr.Scale)
}

func TestZoom_KeepsPan(t *testing.T) {
	tr := Transform{Scale: 1, Pan: Point{X: 12, Y: -7}}

	assert.Equal(t, tr.Pan, ZoomIn(tr).Pan)
	assert.Equal(t, tr.Pan, ZoomOut(tr).Pan)
	assert.InDelta(t, 1.2, ZoomIn(tr).Scale, 1e-12)
}

func TestZoomOut_UndoesZoomInWithinTolerance(t *testing.T) {
	tr := Transform{Scale: 1.3}

	roundTrip := ZoomOut(ZoomIn(tr))

	assert.InDelta(t, tr.Scale, roundTrip.Scale, 1e-9)
}

func TestReset_Idempotent(t *testing.T) {
	once := Reset()
	twice := Reset()

	assert.Equal(t, Transform{Scale: 1, Pan: Point{}}, once)
	assert.Equal(t, once, twice)
}

func TestDrag_RoundTrip(t *testing.T) {
	tr := Transform{Scale: 2, Pan: Point{X: 30, Y: 40}}
	p0 := Point{X: 100, Y: 200}

	anchor := BeginDrag(p0, tr)

	assert.Equal(t, tr, ContinueDrag(p0, anchor, tr))

	moved := ContinueDrag(p0.Add(Point{X: 10, Y: -5}), anchor, tr)
	assert.Equal(t, Point{X: 40, Y: 35}, moved.Pan)
	assert.Equal(t, tr.Scale, moved.Scale)
}

func TestState_DragMachine(t *testing.T) {
	s := NewState()
	assert.False(t, s.Dragging)

	idleMove := s.ContinueDrag(Point{X: 50, Y: 50})
	assert.Equal(t, s, idleMove)

	s = s.BeginDrag(Point{X: 10, Y: 10})
	assert.True(t, s.Dragging)

	s = s.ContinueDrag(Point{X: 15, Y: 20})
	assert.Equal(t, Point{X: 5, Y: 10}, s.Transform.Pan)

	s = s.ContinueDrag(Point{X: 20, Y: 20})
	assert.Equal(t, Point{X: 10, Y: 10}, s.Transform.Pan)

	s = s.EndDrag()
	assert.False(t, s.Dragging)

	after := s.ContinueDrag(Point{X: 500, Y: 500})
	assert.Equal(t, Point{X: 10, Y: 10}, after.Transform.Pan)
}

func TestState_DoesNotMutateReceiver(t *testing.T) {
	s := NewState()

	_ = s.ZoomIn()
	_ = s.BeginDrag(Point{X: 1, Y: 1})

	assert.Equal(t, NewState(), s)
}

func TestState_ZoomDuringDrag(t *testing.T) {
	s := NewState().BeginDrag(Point{X: 10, Y: 10}).ZoomIn()

	s = s.ContinueDrag(Point{X: 20, Y: 10})

	assert.InDelta(t, 1.2, s.Transform.Scale, 1e-12)
	assert.Equal(t, Point{X: 10, Y: 0}, s.Transform.Pan)
}

func TestTransform_ApplyAndInvert(t *testing.T) {
	tr := Transform{Scale: 1.5, Pan: Point{X: -20, Y: 8}}
	p := Point{X: 100, Y: 250}

	screen := tr.Apply(p)

	assert.Equal(t, Point{X: 130, Y: 383}, screen)
	back := tr.Invert(screen)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestTransform_SVG(t *testing.T) {
	assert.Equal(t, "translate(0, 0) scale(1)", Reset().SVG())
	assert.Equal(t, "translate(10.5, -3) scale(1.2)", Transform{Scale: 1.2, Pan: Point{X: 10.5, Y: -3}}.SVG())
}

func TestTransform_Normalize(t *testing.T) {
	testCases := []struct {
		name string
		in   Transform
		want Transform
	}{
		{name: "in range", in: Transform{Scale: 2, Pan: Point{X: 1, Y: 2}}, want: Transform{Scale: 2, Pan: Point{X: 1, Y: 2}}},
		{name: "too small", in: Transform{Scale: 0.1}, want: Transform{Scale: MinScale}},
		{name: "too large", in: Transform{Scale: 9}, want: Transform{Scale: MaxScale}},
		{name: "zero scale", in: Transform{}, want: Transform{Scale: DefaultScale}},
		{name: "nan scale", in: Transform{Scale: math.NaN()}, want: Transform{Scale: DefaultScale}},
		{name: "infinite pan", in: Transform{Scale: 1, Pan: Point{X: math.Inf(1)}}, want: Transform{Scale: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}
