package viewport

// State is the transform plus the drag machine: Idle until BeginDrag,
// Dragging until EndDrag. Methods return the next state and leave the
// receiver untouched.
type State struct {
	Transform Transform `json:"transform"`
	Dragging  bool      `json:"dragging"`
	Anchor    Point     `json:"anchor"`
}

func NewState() State {
	return State{Transform: Reset()}
}

func (s State) ZoomIn() State {
	s.Transform = ZoomIn(s.Transform)
	return s
}

func (s State) ZoomOut() State {
	s.Transform = ZoomOut(s.Transform)
	return s
}

// Reset restores the identity view. The drag state is left as is.
func (s State) Reset() State {
	s.Transform = Reset()
	return s
}

func (s State) BeginDrag(pointer Point) State {
	s.Dragging = true
	s.Anchor = BeginDrag(pointer, s.Transform)
	return s
}

// ContinueDrag is ignored while idle.
func (s State) ContinueDrag(pointer Point) State {
	if !s.Dragging {
		return s
	}
	s.Transform = ContinueDrag(pointer, s.Anchor, s.Transform)
	return s
}

// EndDrag handles both pointer release and the pointer leaving the map.
func (s State) EndDrag() State {
	s.Dragging = false
	s.Anchor = Point{}
	return s
}

// Normalize clamps the transform and drops a stale anchor.
func (s State) Normalize() State {
	s.Transform = s.Transform.Normalize()
	if !s.Dragging {
		s.Anchor = Point{}
	}
	return s
}
