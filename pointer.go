package xrpointer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Device is the raw tracking source behind a pointer.
type Device interface {
	// Pose returns the device pose in tracker space. ok is false while the
	// device is disconnected or untracked.
	Pose() (pose Pose, ok bool)
	// Button reports the raw state of device button i.
	Button(i int) bool
	// Visible reports whether the device is currently seen by the tracker.
	Visible() bool
}

// Scroller is implemented by devices with a scroll input.
type Scroller interface {
	ScrollDelta() Vec2
}

// Vibrator is implemented by devices with haptic feedback. A duration of -1
// vibrates until stopped; intensity is 0-100.
type Vibrator interface {
	Vibrate(durationMs, intensity int)
}

// Pointer is a spatial input source with up to MaxButtons buttons. It owns
// three consecutive pointer ids starting at ID.
type Pointer interface {
	ID() int
	Contains(id int) bool
	ButtonCount() int
	// Button is the sampled raw state of logical button i.
	Button(i int) bool
	// StateOf returns the frame edge of a logical button after primary remapping.
	StateOf(b Button) FramePressState
	// ButtonMapping maps a button offset to the button reported to handlers.
	ButtonMapping(i int) Button
	ScreenPosition() Vec2
	StartpointPose() Pose
	EndpointPose() Pose
	ScrollDelta() Vec2
	ClickTimeThreshold() float64
	// UpdateState samples the device. Called once per frame before Raycast.
	UpdateState()
	// Raycast resolves the merged hit for this frame. drag is the context of
	// a button that is dragging, or nil.
	Raycast(drag *EventData) RaycastResult
	HitInfo() RaycastResult
	Hit3D() bool
	GrabObject() *Object
	SetGrabObject(o *Object)
}

// Kind tags the device variants of DevicePointer.
type Kind uint8

const (
	KindStylus  Kind = iota // direct-ray stylus with a configurable primary key
	KindTracked             // generic tracked controller with rotated button wiring
)

func (k Kind) String() string {
	if k == KindTracked {
		return "tracked"
	}
	return "stylus"
}

// RawIndexFunc maps a logical button index to the device's raw button index.
type RawIndexFunc func(i int) int

// IdentityButtons reads raw buttons unchanged.
func IdentityButtons(i int) int { return i }

// RotatedButtons reads logical button i from raw button (i+2)%3, the wiring
// of generic tracked controllers.
func RotatedButtons(i int) int { return (i + 2) % MaxButtons }

// DevicePointer is the Pointer implementation for tracked devices. Variant
// behavior is carried by explicit strategy fields rather than subtypes.
type DevicePointer struct {
	kind     Kind
	id       int
	device   Device
	resolver *Resolver

	// PrimaryKey is the raw button that acts as logical button 0.
	PrimaryKey Button
	// RawIndex maps logical to raw button indices before sampling.
	RawIndex RawIndexFunc
	// RayLength bounds raycasts and places the endpoint when nothing is hit.
	RayLength float64
	// WorldScale multiplies tracker-space positions into world space.
	WorldScale float64

	clickThreshold float64
	clock          func() float64
	lastTime       float64
	started        bool

	buttons   ButtonState
	connected bool
	start     Pose
	endpoint  mgl64.Vec3
	hit       RaycastResult
	hit3D     bool
	screen    Vec2
	screenDel Vec2
	grab      *Object

	smoother *endpointSmoother
	idle     *IdleTracker

	entered  callbackList[*Object]
	exited   callbackList[*Object]
	pressed  callbackList[int]
	released callbackList[int]
}

// NewStylus creates a direct-ray stylus pointer. Its id block starts at
// cfg.StylusID and cfg.PrimaryKey is swapped with logical index 0.
func NewStylus(device Device, resolver *Resolver, cfg Config) *DevicePointer {
	p := newDevicePointer(KindStylus, cfg.StylusID, device, resolver, cfg)
	p.PrimaryKey = cfg.PrimaryKey
	p.RawIndex = IdentityButtons
	return p
}

// NewTrackedPointer creates a generic tracked pointer owning ids id..id+2.
// It reads buttons through RotatedButtons and uses the left button as primary.
func NewTrackedPointer(id int, device Device, resolver *Resolver, cfg Config) *DevicePointer {
	p := newDevicePointer(KindTracked, id, device, resolver, cfg)
	p.PrimaryKey = ButtonLeft
	p.RawIndex = RotatedButtons
	return p
}

func newDevicePointer(kind Kind, id int, device Device, resolver *Resolver, cfg Config) *DevicePointer {
	p := &DevicePointer{
		kind:           kind,
		id:             id,
		device:         device,
		resolver:       resolver,
		RayLength:      cfg.RayLength,
		WorldScale:     1,
		clickThreshold: cfg.ClickTimeThreshold,
		clock:          defaultClock,
		start:          IdentityPose,
	}
	if cfg.WorldScale > 0 {
		p.WorldScale = cfg.WorldScale
	}
	if cfg.SmoothEndpoint {
		p.smoother = newEndpointSmoother(cfg.EndpointSmoothTime)
	}
	if cfg.RayHideTime > 0 {
		p.idle = NewIdleTracker(cfg.RayHideTime, cfg.RayHideDistance)
	}
	return p
}

// Kind returns the device variant.
func (p *DevicePointer) Kind() Kind { return p.kind }

// Device returns the underlying device.
func (p *DevicePointer) Device() Device { return p.device }

// SetClock replaces the time source (seconds) used for smoothing and idle
// detection.
func (p *DevicePointer) SetClock(clock func() float64) {
	if clock == nil {
		clock = defaultClock
	}
	p.clock = clock
	p.started = false
}

// ID implements Pointer.
func (p *DevicePointer) ID() int { return p.id }

// Contains implements Pointer.
func (p *DevicePointer) Contains(id int) bool {
	return id >= p.id && id <= p.id+MaxButtons-1
}

// ButtonCount implements Pointer. It is zero while the device is disconnected.
func (p *DevicePointer) ButtonCount() int {
	if p.device == nil || !p.connected {
		return 0
	}
	return MaxButtons
}

// Button implements Pointer.
func (p *DevicePointer) Button(i int) bool {
	return p.buttons.Down(i)
}

// AnyButtonPressed reports whether any button is held.
func (p *DevicePointer) AnyButtonPressed() bool {
	return p.buttons.AnyDown()
}

// StateOf implements Pointer.
func (p *DevicePointer) StateOf(b Button) FramePressState {
	return p.buttons.Edge(RemapPrimary(b, p.PrimaryKey))
}

// ButtonMapping implements Pointer.
func (p *DevicePointer) ButtonMapping(i int) Button {
	return Button(i)
}

// ScreenPosition implements Pointer.
func (p *DevicePointer) ScreenPosition() Vec2 { return p.screen }

// ScreenDelta is the change in screen position during the last Raycast.
func (p *DevicePointer) ScreenDelta() Vec2 { return p.screenDel }

// StartpointPose implements Pointer.
func (p *DevicePointer) StartpointPose() Pose { return p.start }

// EndpointPose implements Pointer.
func (p *DevicePointer) EndpointPose() Pose {
	return Pose{Position: p.endpoint, Rotation: p.start.Rotation}
}

// ScrollDelta implements Pointer. Devices without a scroll input report zero.
func (p *DevicePointer) ScrollDelta() Vec2 {
	if s, ok := p.device.(Scroller); ok && p.connected {
		return s.ScrollDelta()
	}
	return Vec2{}
}

// ClickTimeThreshold implements Pointer.
func (p *DevicePointer) ClickTimeThreshold() float64 { return p.clickThreshold }

// SetClickTimeThreshold sets the maximum seconds between presses that still
// count as a multi-click.
func (p *DevicePointer) SetClickTimeThreshold(seconds float64) {
	p.clickThreshold = seconds
}

// HitInfo implements Pointer.
func (p *DevicePointer) HitInfo() RaycastResult { return p.hit }

// Hit3D implements Pointer.
func (p *DevicePointer) Hit3D() bool { return p.hit3D }

// GrabObject implements Pointer.
func (p *DevicePointer) GrabObject() *Object { return p.grab }

// SetGrabObject implements Pointer.
func (p *DevicePointer) SetGrabObject(o *Object) { p.grab = o }

// IsVisible reports whether the device is seen by the tracker and has not
// been idle long enough to hide its ray.
func (p *DevicePointer) IsVisible() bool {
	if p.device == nil || !p.connected || !p.device.Visible() {
		return false
	}
	return p.idle == nil || !p.idle.Hidden()
}

// UpdateState implements Pointer.
func (p *DevicePointer) UpdateState() {
	now := p.clock()
	dt := 0.0
	if p.started {
		dt = now - p.lastTime
	}
	p.lastTime = now
	p.started = true

	if p.device == nil {
		p.connected = false
		p.buttons.Sample(0, nil)
		return
	}
	pose, ok := p.device.Pose()
	p.connected = ok
	if ok {
		pose.Position = pose.Position.Mul(p.WorldScale)
		p.start = pose
		if p.idle != nil {
			p.idle.Update(pose.Position, dt)
		}
	}
	if p.smoother != nil {
		p.smoother.advance(dt)
	}

	rawIndex := p.RawIndex
	if rawIndex == nil {
		rawIndex = IdentityButtons
	}
	p.buttons.Sample(p.ButtonCount(), func(i int) bool {
		return p.device.Button(rawIndex(i))
	})
	for i := 0; i < MaxButtons; i++ {
		switch p.buttons.Edge(i) {
		case Pressed:
			p.pressed.fire(p.id + i)
		case Released:
			p.released.fire(p.id + i)
		}
	}
}

// Raycast implements Pointer.
func (p *DevicePointer) Raycast(drag *EventData) RaycastResult {
	prev := p.hit.Object
	dragging := drag != nil && drag.Dragging

	if !p.connected || p.resolver == nil {
		p.hit = RaycastResult{}
		p.hit3D = false
		p.screenDel = Vec2{}
		p.notifyCollisions(prev, nil)
		return p.hit
	}

	ray := p.start.Ray()
	res := p.resolver.Resolve(ray, p.RayLength)
	p.hit = res.Hit
	p.hit3D = res.Hit3D

	d := p.RayLength
	if p.hit.Valid() {
		d = p.hit.Distance
	}
	if dragging && p.grab != nil {
		d = drag.PressRaycast.Distance
	}
	target := ray.Point(d)
	if p.smoother != nil {
		target = p.smoother.follow(target)
	}
	p.endpoint = target

	var cur Vec2
	switch {
	case dragging:
		cur = p.resolver.ScreenAt(ray, drag.PressRaycast.Distance)
	case p.hit.Valid():
		cur = p.hit.ScreenPosition
	default:
		cur = p.resolver.project(p.endpoint)
	}
	p.hit.ScreenPosition = cur
	p.screenDel = cur.Sub(p.screen)
	p.screen = cur

	p.notifyCollisions(prev, p.hit.Object)
	return p.hit
}

func (p *DevicePointer) notifyCollisions(prev, cur *Object) {
	if prev == cur {
		return
	}
	if prev != nil {
		p.exited.fire(prev)
	}
	if cur != nil {
		p.entered.fire(cur)
	}
}

// OnObjectEntered registers fn to run when the ray starts hitting an object.
func (p *DevicePointer) OnObjectEntered(fn func(*Object)) CallbackHandle {
	return p.entered.add(fn)
}

// OnObjectExited registers fn to run when the ray stops hitting an object.
func (p *DevicePointer) OnObjectExited(fn func(*Object)) CallbackHandle {
	return p.exited.add(fn)
}

// OnButtonPressed registers fn to run when a raw button goes down. fn
// receives the pointer id of the button (ID()+index).
func (p *DevicePointer) OnButtonPressed(fn func(id int)) CallbackHandle {
	return p.pressed.add(fn)
}

// OnButtonReleased registers fn to run when a raw button goes up.
func (p *DevicePointer) OnButtonReleased(fn func(id int)) CallbackHandle {
	return p.released.add(fn)
}

// VibrateOnce vibrates for seconds at strength 0-100. No-op for devices
// without haptics.
func (p *DevicePointer) VibrateOnce(seconds float64, strength int) {
	if v, ok := p.device.(Vibrator); ok {
		v.Vibrate(int(math.Floor(seconds*1000)), strength)
	}
}

// StartVibration vibrates until StopVibration is called.
func (p *DevicePointer) StartVibration(intensity int) {
	if v, ok := p.device.(Vibrator); ok {
		v.Vibrate(-1, intensity)
	}
}

// StopVibration stops any ongoing vibration.
func (p *DevicePointer) StopVibration() {
	if v, ok := p.device.(Vibrator); ok {
		v.Vibrate(0, 0)
	}
}
