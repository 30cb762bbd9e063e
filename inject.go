package xrpointer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// scriptedFrame is one queued device sample.
type scriptedFrame struct {
	pose         Pose
	buttons      [MaxButtons]bool
	scroll       Vec2
	disconnected bool
}

// ScriptedDevice is a Device driven by queued frames instead of hardware.
// Each call to Pose consumes one frame; when the queue is empty the last
// frame repeats. It is used for tests, replays and automated runs.
type ScriptedDevice struct {
	queue   []scriptedFrame
	current scriptedFrame
	// tail is the state new frames are built from.
	tail scriptedFrame

	// Vibrations records every Vibrate call as {durationMs, intensity}.
	Vibrations [][2]int
}

// NewScriptedDevice returns a connected device resting at pose.
func NewScriptedDevice(pose Pose) *ScriptedDevice {
	f := scriptedFrame{pose: pose}
	return &ScriptedDevice{current: f, tail: f}
}

// Pose implements Device.
func (d *ScriptedDevice) Pose() (Pose, bool) {
	if len(d.queue) > 0 {
		d.current = d.queue[0]
		copy(d.queue, d.queue[1:])
		d.queue = d.queue[:len(d.queue)-1]
	} else {
		// Repeated frames carry no scroll.
		d.current.scroll = Vec2{}
	}
	return d.current.pose, !d.current.disconnected
}

// Button implements Device. i is a raw button index.
func (d *ScriptedDevice) Button(i int) bool {
	if i < 0 || i >= MaxButtons {
		return false
	}
	return d.current.buttons[i]
}

// Visible implements Device.
func (d *ScriptedDevice) Visible() bool {
	return !d.current.disconnected
}

// ScrollDelta implements Scroller.
func (d *ScriptedDevice) ScrollDelta() Vec2 {
	return d.current.scroll
}

// Vibrate implements Vibrator.
func (d *ScriptedDevice) Vibrate(durationMs, intensity int) {
	d.Vibrations = append(d.Vibrations, [2]int{durationMs, intensity})
}

// Pending returns the number of queued frames.
func (d *ScriptedDevice) Pending() int {
	return len(d.queue)
}

func (d *ScriptedDevice) push() {
	d.queue = append(d.queue, d.tail)
	d.tail.scroll = Vec2{}
}

// Aim queues a frame at pose with the held buttons unchanged.
func (d *ScriptedDevice) Aim(pose Pose) {
	d.tail.pose = pose
	d.push()
}

// Press queues a frame with raw button i down.
func (d *ScriptedDevice) Press(i int) {
	if i < 0 || i >= MaxButtons {
		return
	}
	d.tail.buttons[i] = true
	d.push()
}

// Release queues a frame with raw button i up.
func (d *ScriptedDevice) Release(i int) {
	if i < 0 || i >= MaxButtons {
		return
	}
	d.tail.buttons[i] = false
	d.push()
}

// Click is a convenience that queues a press followed by a release of raw
// button i. Consumes two frames.
func (d *ScriptedDevice) Click(i int) {
	d.Press(i)
	d.Release(i)
}

// Drag queues a full drag sequence: press at the current pose, frames-2
// interpolated poses towards to, and release at to. Minimum frames is 2.
func (d *ScriptedDevice) Drag(i int, to Pose, frames int) {
	if frames < 2 {
		frames = 2
	}
	from := d.tail.pose
	d.Press(i)
	steps := frames - 2
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps+1)
		d.tail.pose = lerpPose(from, to, t)
		d.push()
	}
	d.tail.pose = to
	d.Release(i)
}

// Scroll queues a frame carrying a scroll delta.
func (d *ScriptedDevice) Scroll(delta Vec2) {
	d.tail.scroll = delta
	d.push()
}

// Wait queues frames unchanged frames.
func (d *ScriptedDevice) Wait(frames int) {
	for i := 0; i < frames; i++ {
		d.push()
	}
}

// Disconnect queues a frame in which the device is untracked.
func (d *ScriptedDevice) Disconnect() {
	d.tail.disconnected = true
	d.push()
}

// Connect queues a frame in which the device is tracked again.
func (d *ScriptedDevice) Connect() {
	d.tail.disconnected = false
	d.push()
}

func lerpPose(a, b Pose, t float64) Pose {
	pos := a.Position.Add(b.Position.Sub(a.Position).Mul(t))
	rot := mgl64.QuatSlerp(a.rotation(), b.rotation(), t)
	return Pose{Position: pos, Rotation: rot}
}

// LookAt returns a pose at from whose forward axis points at target.
func LookAt(from, target mgl64.Vec3) Pose {
	dir := target.Sub(from)
	if dir.Len() < epsilon {
		return Pose{Position: from, Rotation: mgl64.QuatIdent()}
	}
	dir = dir.Normalize()
	forward := mgl64.Vec3{0, 0, 1}
	if dir.Dot(forward) < -1+1e-12 {
		// Opposite vectors have no unique shortest arc; turn about +Y.
		return Pose{Position: from, Rotation: mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})}
	}
	return Pose{Position: from, Rotation: mgl64.QuatBetweenVectors(forward, dir)}
}
