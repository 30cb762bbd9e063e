package xrpointer

// ButtonState holds the current and previous raw state of up to MaxButtons
// buttons. Edges are computed from the pair, never pushed.
type ButtonState struct {
	current  [MaxButtons]bool
	previous [MaxButtons]bool
}

// Sample shifts current into previous, then reads count buttons through get.
// Buttons at or beyond count read as released.
func (s *ButtonState) Sample(count int, get func(i int) bool) {
	for i := 0; i < MaxButtons; i++ {
		s.previous[i] = s.current[i]
		s.current[i] = i < count && get != nil && get(i)
	}
}

// Edge returns the transition of raw button i between the last two samples.
func (s *ButtonState) Edge(i int) FramePressState {
	if i < 0 || i >= MaxButtons {
		return NotChanged
	}
	if s.previous[i] != s.current[i] {
		if s.current[i] {
			return Pressed
		}
		return Released
	}
	return NotChanged
}

// Down reports whether raw button i is currently held.
func (s *ButtonState) Down(i int) bool {
	return i >= 0 && i < MaxButtons && s.current[i]
}

// AnyDown reports whether any button is currently held.
func (s *ButtonState) AnyDown() bool {
	for _, c := range s.current {
		if c {
			return true
		}
	}
	return false
}

// Reset releases every button without producing edges.
func (s *ButtonState) Reset() {
	s.current = [MaxButtons]bool{}
	s.previous = [MaxButtons]bool{}
}

// RemapPrimary maps a logical button to the raw index that backs it when the
// device declares primary as its main button: index 0 and primary exchange
// roles so the primary always reports as index 0.
func RemapPrimary(b Button, primary Button) int {
	i := int(b)
	if primary == ButtonLeft || primary >= MaxButtons {
		return i
	}
	switch i {
	case 0:
		return int(primary)
	case int(primary):
		return 0
	}
	return i
}
