package xrpointer

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// RaycastResult is one hit candidate or the merged hit of a frame.
// A result with a nil Object is "no hit".
type RaycastResult struct {
	Object         *Object
	Distance       float64
	WorldPosition  mgl64.Vec3
	WorldNormal    mgl64.Vec3
	ScreenPosition Vec2
	Source         HitSource
	// Index is the candidate's position in its raycaster's sorted output.
	Index int
}

// Valid reports whether the result hit an object.
func (r RaycastResult) Valid() bool {
	return r.Object != nil
}

// PhysicsCaster answers 3D ray queries. It returns the nearest hit within
// maxDistance on a layer included in layers.
type PhysicsCaster interface {
	Raycast(ray Ray, maxDistance float64, layers LayerMask) (RaycastResult, bool)
}

// UIRaycaster hit-tests a UI surface. Candidates are appended to out and the
// extended slice is returned; order does not matter.
type UIRaycaster interface {
	Raycast(ray Ray, maxDistance float64, out []RaycastResult) []RaycastResult
}

// Projector converts world positions to screen positions.
type Projector interface {
	WorldToScreen(p mgl64.Vec3) Vec2
}

// UIRaycasters is the ordered set of UI raycasters queried by resolvers.
// Mutate it only between frames.
type UIRaycasters struct {
	list []UIRaycaster
}

// Add appends r. Adding a raycaster twice is a no-op.
func (u *UIRaycasters) Add(r UIRaycaster) {
	for _, e := range u.list {
		if e == r {
			return
		}
	}
	u.list = append(u.list, r)
}

// Remove deletes r, keeping the order of the rest.
func (u *UIRaycasters) Remove(r UIRaycaster) {
	for i, e := range u.list {
		if e == r {
			copy(u.list[i:], u.list[i+1:])
			u.list[len(u.list)-1] = nil
			u.list = u.list[:len(u.list)-1]
			return
		}
	}
}

// Len returns the number of registered raycasters.
func (u *UIRaycasters) Len() int {
	if u == nil {
		return 0
	}
	return len(u.list)
}

// MergeRule decides between a world hit and a UI hit when both have targets.
// It returns true when the world hit should be used.
type MergeRule func(world, ui RaycastResult) bool

// MergeOcclusion keeps the world hit only when the UI hit reports a larger
// distance. Equal distances go to the UI.
func MergeOcclusion(world, ui RaycastResult) bool {
	return ui.Distance > world.Distance
}

// MergePreferWorld always keeps the world hit when both have targets.
func MergePreferWorld(world, ui RaycastResult) bool {
	return true
}

// Resolver merges a physics query and the UI raycasters into one hit.
type Resolver struct {
	Physics PhysicsCaster
	UI      *UIRaycasters
	Camera  Projector
	Layers  LayerMask
	Rule    MergeRule

	buf []RaycastResult
}

// NewResolver returns a resolver over the given providers with all layers
// enabled and the occlusion merge rule.
func NewResolver(physics PhysicsCaster, ui *UIRaycasters, camera Projector) *Resolver {
	return &Resolver{
		Physics: physics,
		UI:      ui,
		Camera:  camera,
		Layers:  AllLayers,
		Rule:    MergeOcclusion,
	}
}

// Resolution is the outcome of one Resolve call.
type Resolution struct {
	Hit   RaycastResult
	World RaycastResult
	UI    RaycastResult
	Hit3D bool
}

// Resolve casts ray up to length against both providers and merges the results.
func (r *Resolver) Resolve(ray Ray, length float64) Resolution {
	var res Resolution
	res.World = r.castWorld(ray, length)
	res.UI = r.castUI(ray, length)

	switch {
	case !res.World.Valid():
		res.Hit = res.UI
		res.Hit3D = false
	case !res.UI.Valid():
		res.Hit = res.World
		res.Hit3D = true
	default:
		rule := r.Rule
		if rule == nil {
			rule = MergeOcclusion
		}
		res.Hit3D = rule(res.World, res.UI)
		if res.Hit3D {
			res.Hit = res.World
		} else {
			res.Hit = res.UI
		}
	}
	return res
}

func (r *Resolver) castWorld(ray Ray, length float64) RaycastResult {
	if r.Physics == nil {
		return RaycastResult{}
	}
	hit, ok := r.Physics.Raycast(ray, length, r.Layers)
	if !ok || !hit.Valid() {
		return RaycastResult{}
	}
	hit.Source = SourceWorld
	hit.Index = 0
	hit.ScreenPosition = r.project(hit.WorldPosition)
	return hit
}

// castUI returns the first candidate with an object, taking raycasters in
// registration order and each raycaster's candidates nearest first.
func (r *Resolver) castUI(ray Ray, length float64) RaycastResult {
	if r.UI.Len() == 0 {
		return RaycastResult{}
	}
	for _, caster := range r.UI.list {
		r.buf = caster.Raycast(ray, length, r.buf[:0])
		sort.SliceStable(r.buf, func(i, j int) bool {
			return r.buf[i].Distance < r.buf[j].Distance
		})
		for i := range r.buf {
			if r.buf[i].Object == nil {
				continue
			}
			hit := r.buf[i]
			hit.Source = SourceUI
			hit.Index = i
			if hit.ScreenPosition == (Vec2{}) {
				hit.ScreenPosition = r.project(hit.WorldPosition)
			}
			clear(r.buf)
			return hit
		}
	}
	clear(r.buf)
	return RaycastResult{}
}

// ScreenAt projects the point at distance d along ray. It is used while
// dragging so the screen position follows the press-time depth instead of
// snapping between surfaces.
func (r *Resolver) ScreenAt(ray Ray, d float64) Vec2 {
	return r.project(ray.Point(d))
}

func (r *Resolver) project(p mgl64.Vec3) Vec2 {
	if r.Camera == nil {
		return Vec2{}
	}
	return r.Camera.WorldToScreen(p)
}
