package xrpointer

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1, y1 := p.Points[i].X, p.Points[i].Y
		j := (i + 1) % n
		x2, y2 := p.Points[j].X, p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Canvas ---

// Canvas is a world-space UI surface and a UIRaycaster. Its pose places the
// top-left corner; +X of the pose runs along the canvas width, -Y along its
// height, and the canvas faces its pose's -Z so a viewer looking down +Z sees
// the front. Element coordinates are in canvas pixels with Y pointing down.
type Canvas struct {
	Pose Pose
	// Width and Height in pixels.
	Width, Height float64
	// PixelsPerUnit converts world units to canvas pixels.
	PixelsPerUnit float64

	root    *Object
	hitBuf  []*Object
	sortBuf []*Object
}

// NewCanvas creates a canvas of the given pixel size. The returned canvas has
// a root object that elements are added to.
func NewCanvas(name string, width, height, pixelsPerUnit float64) *Canvas {
	root := NewObject(name)
	root.UI = true
	return &Canvas{
		Pose:          IdentityPose,
		Width:         width,
		Height:        height,
		PixelsPerUnit: pixelsPerUnit,
		root:          root,
	}
}

// Root returns the canvas's root object.
func (c *Canvas) Root() *Object {
	return c.root
}

// Add parents element under the canvas root and marks it as UI.
func (c *Canvas) Add(element *Object) {
	element.UI = true
	c.root.AddChild(element)
}

// LocalPoint intersects ray with the canvas plane. It returns the canvas-pixel
// coordinates and the ray distance of the intersection.
func (c *Canvas) LocalPoint(ray Ray) (Vec2, float64, bool) {
	if c.PixelsPerUnit <= 0 {
		return Vec2{}, 0, false
	}
	rot := c.Pose.rotation()
	normal := rot.Rotate(mgl64.Vec3{0, 0, 1})
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return Vec2{}, 0, false
	}
	t := c.Pose.Position.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return Vec2{}, 0, false
	}
	local := rot.Inverse().Rotate(ray.Point(t).Sub(c.Pose.Position))
	px := local.X() * c.PixelsPerUnit
	py := -local.Y() * c.PixelsPerUnit
	if px < 0 || px > c.Width || py < 0 || py > c.Height {
		return Vec2{}, 0, false
	}
	return Vec2{px, py}, t, true
}

// Raycast implements UIRaycaster. Hit elements are appended topmost first.
func (c *Canvas) Raycast(ray Ray, maxDistance float64, out []RaycastResult) []RaycastResult {
	p, t, ok := c.LocalPoint(ray)
	if !ok || t > maxDistance {
		return out
	}
	c.hitBuf = c.collectInteractable(c.root, c.hitBuf[:0])

	normal := c.Pose.rotation().Rotate(mgl64.Vec3{0, 0, -1})
	world := ray.Point(t)
	// Iterate backward (reverse painter order): topmost element first.
	for i := len(c.hitBuf) - 1; i >= 0; i-- {
		o := c.hitBuf[i]
		if o.HitShape.Contains(p.X-o.X, p.Y-o.Y) {
			out = append(out, RaycastResult{
				Object:        o,
				Distance:      t,
				WorldPosition: world,
				WorldNormal:   normal,
			})
		}
	}
	clear(c.hitBuf)
	return out
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending elements with a hit shape. Skips hidden or non-interactable
// subtrees.
func (c *Canvas) collectInteractable(o *Object, buf []*Object) []*Object {
	if !o.Visible || !o.Interactable {
		return buf
	}
	if o.HitShape != nil {
		buf = append(buf, o)
	}
	if len(o.children) == 0 {
		return buf
	}

	start := len(c.sortBuf)
	c.sortBuf = append(c.sortBuf, o.children...)
	children := c.sortBuf[start:]
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].ZIndex < children[j].ZIndex
	})
	for _, child := range children {
		buf = c.collectInteractable(child, buf)
	}
	clear(c.sortBuf[start:])
	c.sortBuf = c.sortBuf[:start]
	return buf
}
