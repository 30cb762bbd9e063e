package xrpointer

import "github.com/go-gl/mathgl/mgl64"

// Grabber makes a world object follow the pointer that drags it. The object
// keeps the offset it had from the pointer pose when the drag began.
type Grabber struct {
	Object *Object
	// EnableRotation makes the object turn with the pointer as well.
	EnableRotation bool

	registry *PointerRegistry
	offset   mgl64.Vec3
	rotation mgl64.Quat
	holder   Pointer
}

// NewGrabber installs begin/drag/end drag handlers on obj. Pointers are
// looked up in registry by the event's pointer id.
func NewGrabber(obj *Object, registry *PointerRegistry) *Grabber {
	g := &Grabber{Object: obj, registry: registry, rotation: mgl64.QuatIdent()}
	obj.On(EventBeginDrag, g.beginDrag)
	obj.On(EventDrag, g.drag)
	obj.On(EventEndDrag, g.endDrag)
	return g
}

// Holder returns the pointer currently grabbing the object, or nil.
func (g *Grabber) Holder() Pointer {
	return g.holder
}

func (g *Grabber) beginDrag(data *EventData) {
	p := g.registry.PointerByID(data.PointerID)
	if p == nil {
		return
	}
	pose := p.StartpointPose()
	inv := pose.rotation().Inverse()
	g.offset = inv.Rotate(g.Object.Pose.Position.Sub(pose.Position))
	g.rotation = inv.Mul(g.Object.Pose.rotation())
	g.holder = p
	p.SetGrabObject(g.Object)
}

func (g *Grabber) drag(data *EventData) {
	p := g.registry.PointerByID(data.PointerID)
	if p == nil || p != g.holder {
		return
	}
	pose := p.StartpointPose()
	rot := pose.rotation()
	if g.EnableRotation {
		g.Object.Pose.Rotation = rot.Mul(g.rotation).Normalize()
	}
	g.Object.Pose.Position = pose.Position.Add(rot.Rotate(g.offset))
}

func (g *Grabber) endDrag(data *EventData) {
	if g.holder == nil {
		return
	}
	if g.holder.GrabObject() == g.Object {
		g.holder.SetGrabObject(nil)
	}
	g.holder = nil
}
