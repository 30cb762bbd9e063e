package xrpointer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// endpointSmoother eases the ray endpoint towards its resolved position so
// the tip glides between surfaces instead of jumping. Each retarget starts a
// fresh tween from the current value.
type endpointSmoother struct {
	duration float32
	tweens   [3]*gween.Tween
	value    mgl64.Vec3
	goal     mgl64.Vec3
	primed   bool
	pending  float32
}

func newEndpointSmoother(seconds float64) *endpointSmoother {
	return &endpointSmoother{duration: float32(seconds)}
}

// advance banks frame time to apply on the next follow.
func (s *endpointSmoother) advance(dt float64) {
	if dt > 0 {
		s.pending += float32(dt)
	}
}

// follow retargets the smoother at goal and returns the eased position.
func (s *endpointSmoother) follow(goal mgl64.Vec3) mgl64.Vec3 {
	if !s.primed || s.duration <= 0 {
		s.value, s.goal = goal, goal
		s.primed = true
		s.pending = 0
		return goal
	}
	if goal != s.goal {
		for i := range s.tweens {
			s.tweens[i] = gween.New(float32(s.value[i]), float32(goal[i]), s.duration, ease.OutQuad)
		}
		s.goal = goal
	}
	if s.tweens[0] != nil && s.pending > 0 {
		allDone := true
		for i, tw := range s.tweens {
			v, finished := tw.Update(s.pending)
			s.value[i] = float64(v)
			if !finished {
				allDone = false
			}
		}
		if allDone {
			s.value = s.goal
			s.tweens = [3]*gween.Tween{}
		}
	}
	s.pending = 0
	return s.value
}
