package xrpointer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MouseDevice is a Device backed by the ebiten cursor. Its pose is the
// camera ray through the cursor, so a desktop mouse behaves like a stylus
// pointing into the scene.
type MouseDevice struct {
	Camera *Camera
	// WheelScale multiplies ebiten wheel offsets into scroll deltas.
	WheelScale float64

	scroll Vec2
}

// NewMouseDevice returns a mouse device casting through camera.
func NewMouseDevice(camera *Camera) *MouseDevice {
	return &MouseDevice{Camera: camera, WheelScale: 1}
}

// Pose implements Device. It also samples the wheel for this frame.
func (m *MouseDevice) Pose() (Pose, bool) {
	if m.Camera == nil {
		return Pose{}, false
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	m.scroll = Vec2{wx * m.WheelScale, wy * m.WheelScale}

	ray := m.Camera.ScreenToRay(Vec2{float64(mx), float64(my)})
	return LookAt(ray.Origin, ray.Point(1)), true
}

// Button implements Device. Raw indices are left, right, middle.
func (m *MouseDevice) Button(i int) bool {
	switch i {
	case 0:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case 1:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case 2:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return false
}

// Visible implements Device.
func (m *MouseDevice) Visible() bool {
	return m.Camera != nil
}

// ScrollDelta implements Scroller.
func (m *MouseDevice) ScrollDelta() Vec2 {
	return m.scroll
}
