package xrpointer

import "github.com/go-gl/mathgl/mgl64"

// IdleTracker hides a pointer's ray after the device has rested for a while.
// Movement of at least Distance since the last anchor resets the timer.
type IdleTracker struct {
	HideAfter float64
	Distance  float64

	anchor mgl64.Vec3
	still  float64
	primed bool
	hidden bool
}

// NewIdleTracker returns a tracker that hides after hideAfter seconds of
// movement below distance.
func NewIdleTracker(hideAfter, distance float64) *IdleTracker {
	return &IdleTracker{HideAfter: hideAfter, Distance: distance}
}

// Update feeds the current position and elapsed seconds.
func (t *IdleTracker) Update(pos mgl64.Vec3, dt float64) {
	if !t.primed {
		t.anchor = pos
		t.primed = true
		return
	}
	if pos.Sub(t.anchor).Len() < t.Distance {
		t.still += dt
		if t.HideAfter > 0 && t.still >= t.HideAfter {
			t.hidden = true
		}
		return
	}
	t.still = 0
	t.anchor = pos
	t.hidden = false
}

// Hidden reports whether the ray should be hidden.
func (t *IdleTracker) Hidden() bool {
	return t.hidden
}
