package xrpointer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ColliderShape intersects a ray given in the collider's local space.
// It returns the entry distance and the local-space surface normal.
type ColliderShape interface {
	intersect(ray Ray) (dist float64, normal mgl64.Vec3, ok bool)
}

// Sphere is a sphere collider centered at Center in object space.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

func (s Sphere) intersect(ray Ray) (float64, mgl64.Vec3, bool) {
	oc := ray.Origin.Sub(s.Center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, mgl64.Vec3{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// Origin inside the sphere: report the exit point.
		t = -b + sq
	}
	if t < 0 {
		return 0, mgl64.Vec3{}, false
	}
	n := ray.Point(t).Sub(s.Center)
	if n.Len() > 0 {
		n = n.Normalize()
	}
	return t, n, true
}

// Box is an axis-aligned box collider in object space.
type Box struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

// intersect uses the slab method.
func (b Box) intersect(ray Ray) (float64, mgl64.Vec3, bool) {
	half := b.Size.Mul(0.5)
	lo := b.Center.Sub(half)
	hi := b.Center.Add(half)

	tmin, tmax := math.Inf(-1), math.Inf(1)
	var normal mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		o, d := ray.Origin[axis], ray.Direction[axis]
		if math.Abs(d) < epsilon {
			if o < lo[axis] || o > hi[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	if tmax < 0 {
		return 0, mgl64.Vec3{}, false
	}
	if tmin < 0 {
		return tmax, normal, true
	}
	return tmin, normal, true
}

// Collider binds a shape to an object. The shape follows Object.Pose.
type Collider struct {
	Object *Object
	Shape  ColliderShape
}

// PhysicsWorld is a brute-force PhysicsCaster over a list of colliders.
type PhysicsWorld struct {
	colliders []Collider
}

// NewPhysicsWorld returns an empty world.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{}
}

// AddCollider registers shape for obj.
func (w *PhysicsWorld) AddCollider(obj *Object, shape ColliderShape) {
	w.colliders = append(w.colliders, Collider{Object: obj, Shape: shape})
}

// RemoveObject drops every collider bound to obj.
func (w *PhysicsWorld) RemoveObject(obj *Object) {
	kept := w.colliders[:0]
	for _, c := range w.colliders {
		if c.Object != obj {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(w.colliders); i++ {
		w.colliders[i] = Collider{}
	}
	w.colliders = kept
}

// Raycast implements PhysicsCaster.
func (w *PhysicsWorld) Raycast(ray Ray, maxDistance float64, layers LayerMask) (RaycastResult, bool) {
	var best RaycastResult
	found := false
	for _, c := range w.colliders {
		obj := c.Object
		if obj == nil || !obj.Visible || !obj.Interactable || !layers.Has(obj.Layer) {
			continue
		}
		rot := obj.Pose.rotation()
		inv := rot.Inverse()
		local := Ray{
			Origin:    inv.Rotate(ray.Origin.Sub(obj.Pose.Position)),
			Direction: inv.Rotate(ray.Direction),
		}
		d, n, ok := c.Shape.intersect(local)
		if !ok || d > maxDistance {
			continue
		}
		if found && d >= best.Distance {
			continue
		}
		best = RaycastResult{
			Object:        obj,
			Distance:      d,
			WorldPosition: ray.Point(d),
			WorldNormal:   rot.Rotate(n),
		}
		found = true
	}
	return best, found
}
