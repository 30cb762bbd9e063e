package xrpointer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective event camera. It maps world positions to screen
// positions for hit results and maps screen positions back to rays for
// cursor-driven devices. Screen coordinates have their origin at the top-left
// of the viewport with Y increasing downward.
type Camera struct {
	// Pose is the camera's world pose; it looks down its forward (+Z) axis.
	Pose Pose
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near and Far clip distances.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	cachedPose  Pose
	cachedVP    Rect
	cachedLens  [3]float64
	valid       bool
}

// NewCamera creates a camera at pose with a 60 degree field of view.
func NewCamera(pose Pose, viewport Rect) *Camera {
	return &Camera{
		Pose:     pose,
		FovY:     mgl64.DegToRad(60),
		Near:     0.01,
		Far:      100,
		Viewport: viewport,
	}
}

// computeViewMatrix rebuilds the cached matrices when any input changed.
func (c *Camera) computeViewMatrix() {
	lens := [3]float64{c.FovY, c.Near, c.Far}
	if c.valid && c.cachedPose == c.Pose && c.cachedVP == c.Viewport && c.cachedLens == lens {
		return
	}
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	view := viewMatrix(c.Pose)
	proj := mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	c.invViewProj = c.viewProj.Inv()
	c.cachedPose = c.Pose
	c.cachedVP = c.Viewport
	c.cachedLens = lens
	c.valid = true
}

// viewMatrix maps the pose's right (+X), up (+Y) and forward (+Z) axes to
// view-space +X, +Y and -Z, so world +X appears to the right of a camera
// looking down +Z.
func viewMatrix(pose Pose) mgl64.Mat4 {
	rot := pose.rotation()
	right := rot.Rotate(mgl64.Vec3{1, 0, 0})
	up := rot.Rotate(mgl64.Vec3{0, 1, 0})
	back := rot.Rotate(mgl64.Vec3{0, 0, -1})
	eye := pose.Position
	return mgl64.Mat4{
		right.X(), up.X(), back.X(), 0,
		right.Y(), up.Y(), back.Y(), 0,
		right.Z(), up.Z(), back.Z(), 0,
		-right.Dot(eye), -up.Dot(eye), -back.Dot(eye), 1,
	}
}

// WorldToScreen implements Projector.
func (c *Camera) WorldToScreen(p mgl64.Vec3) Vec2 {
	c.computeViewMatrix()
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() == 0 {
		return Vec2{}
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	vp := c.Viewport
	return Vec2{
		X: vp.X + (ndc.X()+1)/2*vp.Width,
		Y: vp.Y + (1-ndc.Y())/2*vp.Height,
	}
}

// ScreenToRay returns the world ray through the given screen position,
// starting on the near plane.
func (c *Camera) ScreenToRay(s Vec2) Ray {
	c.computeViewMatrix()
	vp := c.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return c.Pose.Ray()
	}
	nx := (s.X-vp.X)/vp.Width*2 - 1
	ny := 1 - (s.Y-vp.Y)/vp.Height*2
	near := c.unproject(mgl64.Vec3{nx, ny, -1})
	far := c.unproject(mgl64.Vec3{nx, ny, 1})
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return c.Pose.Ray()
	}
	return Ray{Origin: near, Direction: dir.Normalize()}
}

func (c *Camera) unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	v := c.invViewProj.Mul4x1(ndc.Vec4(1))
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}
