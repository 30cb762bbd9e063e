package xrpointer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	square := []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	reversed := []Vec2{{0, 100}, {100, 100}, {100, 0}, {0, 0}}

	for _, pts := range [][]Vec2{square, reversed} {
		p := HitPolygon{Points: pts}
		if !p.Contains(50, 50) {
			t.Errorf("%v should contain center", pts)
		}
		if !p.Contains(0, 50) {
			t.Errorf("%v should contain edge point", pts)
		}
		if p.Contains(-1, 50) {
			t.Errorf("%v should not contain outside point", pts)
		}
	}
	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0, 0) {
		t.Error("degenerate polygon should contain nothing")
	}
}

// --- Canvas tests ---

// newTestCanvas returns a 200x100 px canvas at z=2 whose top-left corner is
// at world (-1, 0.5); 100 px per unit.
func newTestCanvas() *Canvas {
	c := NewCanvas("panel", 200, 100, 100)
	c.Pose.Position = mgl64.Vec3{-1, 0.5, 2}
	return c
}

func rayAt(x, y float64) Ray {
	return Ray{Origin: mgl64.Vec3{x, y, 0}, Direction: mgl64.Vec3{0, 0, 1}}
}

func TestCanvasLocalPoint(t *testing.T) {
	c := newTestCanvas()

	tests := []struct {
		name   string
		x, y   float64
		want   Vec2
		wantOK bool
	}{
		{"top-left", -1, 0.5, Vec2{0, 0}, true},
		{"center", 0, 0, Vec2{100, 50}, true},
		{"bottom-right", 1, -0.5, Vec2{200, 100}, true},
		{"left of canvas", -1.5, 0, Vec2{}, false},
		{"below canvas", 0, -1, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, d, ok := c.LocalPoint(rayAt(tt.x, tt.y))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !approx(p.X, tt.want.X) || !approx(p.Y, tt.want.Y) {
				t.Errorf("LocalPoint = %v, want %v", p, tt.want)
			}
			if !approx(d, 2) {
				t.Errorf("distance = %v, want 2", d)
			}
		})
	}
}

func TestCanvasLocalPointBehindOrParallel(t *testing.T) {
	c := newTestCanvas()
	back := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, -1}}
	if _, _, ok := c.LocalPoint(back); ok {
		t.Error("canvas behind the ray origin should not be hit")
	}
	parallel := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}}
	if _, _, ok := c.LocalPoint(parallel); ok {
		t.Error("parallel ray should not hit")
	}
}

func TestCanvasRaycastTopmostFirst(t *testing.T) {
	c := newTestCanvas()
	bottom := NewUIObject("bottom", HitRect{Width: 200, Height: 100})
	top := NewUIObject("top", HitRect{Width: 200, Height: 100})
	top.ZIndex = 1
	// Added top first; ZIndex decides painter order.
	c.Add(top)
	c.Add(bottom)

	hits := c.Raycast(rayAt(0, 0), 10, nil)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Object != top || hits[1].Object != bottom {
		t.Errorf("order = [%v %v], want [top bottom]", hits[0].Object, hits[1].Object)
	}
	if !approxVec3(hits[0].WorldNormal, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("WorldNormal = %v", hits[0].WorldNormal)
	}
}

func TestCanvasRaycastElementOffset(t *testing.T) {
	c := newTestCanvas()
	btn := NewUIObject("btn", HitRect{Width: 50, Height: 50})
	btn.X, btn.Y = 150, 50
	c.Add(btn)

	if hits := c.Raycast(rayAt(0, 0), 10, nil); len(hits) != 0 {
		t.Errorf("center should miss the offset button, got %d hits", len(hits))
	}
	if hits := c.Raycast(rayAt(0.75, -0.25), 10, nil); len(hits) != 1 || hits[0].Object != btn {
		t.Errorf("expected button hit, got %v", hits)
	}
}

func TestCanvasRaycastSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(parent, child *Object)
	}{
		{"invisible subtree", func(p, c *Object) { p.Visible = false }},
		{"non-interactable subtree", func(p, c *Object) { p.Interactable = false }},
		{"invisible child", func(p, c *Object) { c.Visible = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas()
			group := NewUIObject("group", nil)
			child := NewUIObject("child", HitRect{Width: 200, Height: 100})
			group.AddChild(child)
			c.Add(group)
			tt.setup(group, child)
			if hits := c.Raycast(rayAt(0, 0), 10, nil); len(hits) != 0 {
				t.Errorf("expected no hits, got %d", len(hits))
			}
		})
	}
}

func TestCanvasRaycastMaxDistance(t *testing.T) {
	c := newTestCanvas()
	c.Add(NewUIObject("all", HitRect{Width: 200, Height: 100}))
	if hits := c.Raycast(rayAt(0, 0), 1.5, nil); len(hits) != 0 {
		t.Error("canvas beyond max distance should not be hit")
	}
}

func TestCanvasRotated(t *testing.T) {
	c := NewCanvas("side", 100, 100, 100)
	// Facing -X: the canvas plane is x=2, its width running along -Z.
	c.Pose.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	c.Pose.Position = mgl64.Vec3{2, 0.5, 0.5}

	ray := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}}
	p, d, ok := c.LocalPoint(ray)
	if !ok {
		t.Fatal("expected hit on rotated canvas")
	}
	if !approx(d, 2) || !approx(p.X, 50) || !approx(p.Y, 50) {
		t.Errorf("LocalPoint = %v at %v, want (50,50) at 2", p, d)
	}
}
