package xrpointer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestEndpointSmootherFirstSampleSnaps(t *testing.T) {
	s := newEndpointSmoother(0.1)
	goal := mgl64.Vec3{1, 2, 3}
	if got := s.follow(goal); got != goal {
		t.Errorf("first follow = %v, want %v", got, goal)
	}
}

func TestEndpointSmootherEases(t *testing.T) {
	s := newEndpointSmoother(0.1)
	s.follow(mgl64.Vec3{})

	goal := mgl64.Vec3{0, 0, 4}
	s.advance(0.05)
	mid := s.follow(goal)
	if mid.Z() <= 0 || mid.Z() >= 4 {
		t.Fatalf("halfway value = %v, want between 0 and 4", mid)
	}
	// OutQuad covers more than half the distance in the first half.
	if mid.Z() <= 2 {
		t.Errorf("OutQuad halfway = %v, want past the midpoint", mid.Z())
	}

	// No elapsed time leaves the value unchanged.
	if again := s.follow(goal); again != mid {
		t.Errorf("follow without advance = %v, want %v", again, mid)
	}

	s.advance(0.1)
	if got := s.follow(goal); !approxVec3(got, goal) {
		t.Errorf("settled value = %v, want %v", got, goal)
	}
}

func TestEndpointSmootherZeroDuration(t *testing.T) {
	s := newEndpointSmoother(0)
	s.follow(mgl64.Vec3{})
	goal := mgl64.Vec3{5, 0, 0}
	if got := s.follow(goal); got != goal {
		t.Errorf("zero duration follow = %v, want %v", got, goal)
	}
}
