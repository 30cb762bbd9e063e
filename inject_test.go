package xrpointer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestScriptedDeviceQueue(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Press(1)
	dev.Aim(Pose{Position: mgl64.Vec3{0, 1, 0}})
	dev.Release(1)
	if dev.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", dev.Pending())
	}

	wantButton := []bool{true, true, false}
	wantY := []float64{0, 1, 1}
	for i := range wantButton {
		pose, ok := dev.Pose()
		if !ok {
			t.Fatalf("frame %d: device should be tracked", i)
		}
		if got := dev.Button(1); got != wantButton[i] {
			t.Errorf("frame %d: Button(1) = %v, want %v", i, got, wantButton[i])
		}
		if pose.Position.Y() != wantY[i] {
			t.Errorf("frame %d: y = %v, want %v", i, pose.Position.Y(), wantY[i])
		}
	}

	// An empty queue repeats the last frame.
	pose, _ := dev.Pose()
	if pose.Position.Y() != 1 || dev.Button(1) {
		t.Errorf("repeat frame = %v button %v", pose.Position, dev.Button(1))
	}
}

func TestScriptedDeviceButtonRange(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Press(-1)
	dev.Press(MaxButtons)
	dev.Release(7)
	if dev.Pending() != 0 {
		t.Errorf("out of range buttons queued %d frames", dev.Pending())
	}
	if dev.Button(-1) || dev.Button(MaxButtons) {
		t.Error("out of range buttons should read released")
	}
}

func TestScriptedDeviceClick(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Click(2)
	var states []bool
	for dev.Pending() > 0 {
		dev.Pose()
		states = append(states, dev.Button(2))
	}
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("click frames = %v, want [true false]", states)
	}
}

func TestScriptedDeviceDrag(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"minimum", 1, 2},
		{"two", 2, 2},
		{"five", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := NewScriptedDevice(IdentityPose)
			to := Pose{Position: mgl64.Vec3{4, 0, 0}, Rotation: mgl64.QuatIdent()}
			dev.Drag(0, to, tt.frames)
			if dev.Pending() != tt.want {
				t.Fatalf("Pending = %d, want %d", dev.Pending(), tt.want)
			}

			var xs []float64
			var held []bool
			for dev.Pending() > 0 {
				pose, _ := dev.Pose()
				xs = append(xs, pose.Position.X())
				held = append(held, dev.Button(0))
			}
			if xs[0] != 0 || xs[len(xs)-1] != 4 {
				t.Errorf("drag x = %v, want start 0 and end 4", xs)
			}
			for i := 1; i < len(xs); i++ {
				if xs[i] < xs[i-1] {
					t.Errorf("drag x not monotonic: %v", xs)
				}
			}
			for i, h := range held {
				if h != (i < len(held)-1) {
					t.Errorf("held = %v, want down until the last frame", held)
					break
				}
			}
		})
	}
}

func TestScriptedDeviceDragInterpolatesEvenly(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Drag(0, Pose{Position: mgl64.Vec3{3, 0, 0}}, 4)
	want := []float64{0, 1, 2, 3}
	for i, w := range want {
		pose, _ := dev.Pose()
		if !approx(pose.Position.X(), w) {
			t.Errorf("frame %d: x = %v, want %v", i, pose.Position.X(), w)
		}
	}
}

func TestScriptedDeviceScrollNotRepeated(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Scroll(Vec2{0, -2})
	dev.Pose()
	if dev.ScrollDelta() != (Vec2{0, -2}) {
		t.Errorf("ScrollDelta = %v, want (0,-2)", dev.ScrollDelta())
	}
	dev.Pose()
	if dev.ScrollDelta() != (Vec2{}) {
		t.Errorf("repeated frame scroll = %v, want zero", dev.ScrollDelta())
	}

	// A queued frame after a scroll carries no scroll either.
	dev.Scroll(Vec2{1, 0})
	dev.Wait(1)
	dev.Pose()
	dev.Pose()
	if dev.ScrollDelta() != (Vec2{}) {
		t.Errorf("following frame scroll = %v, want zero", dev.ScrollDelta())
	}
}

func TestScriptedDeviceDisconnect(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	dev.Press(0)
	dev.Disconnect()
	dev.Connect()

	want := []bool{true, false, true}
	for i, w := range want {
		if _, ok := dev.Pose(); ok != w {
			t.Errorf("frame %d: tracked = %v, want %v", i, ok, w)
		}
		if dev.Visible() != w {
			t.Errorf("frame %d: Visible = %v, want %v", i, dev.Visible(), w)
		}
	}
	if !dev.Button(0) {
		t.Error("held button should survive a reconnect")
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name   string
		from   mgl64.Vec3
		target mgl64.Vec3
		want   mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{}, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}},
		{"right", mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 1, 1}, mgl64.Vec3{1, 0, 0}},
		{"up", mgl64.Vec3{}, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 1, 0}},
		{"behind", mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, -1}},
		{"diagonal", mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}.Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := LookAt(tt.from, tt.target)
			if pose.Position != tt.from {
				t.Errorf("position = %v, want %v", pose.Position, tt.from)
			}
			if !approxVec3(pose.Forward(), tt.want) {
				t.Errorf("forward = %v, want %v", pose.Forward(), tt.want)
			}
		})
	}

	same := LookAt(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3})
	if !approxVec3(same.Forward(), mgl64.Vec3{0, 0, 1}) {
		t.Errorf("degenerate LookAt forward = %v", same.Forward())
	}
}

func TestLerpPoseRotation(t *testing.T) {
	a := IdentityPose
	b := Pose{Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})}
	mid := lerpPose(a, b, 0.5)
	want := mgl64.Vec3{math.Sqrt2 / 2, 0, math.Sqrt2 / 2}
	if !approxVec3(mid.Forward(), want) {
		t.Errorf("mid forward = %v, want %v", mid.Forward(), want)
	}
}
