package xrpointer

// HitShape is a 2D hit region in an object's canvas-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// Handler receives a dispatched event. The EventData is owned by the input
// module and is only valid for the duration of the call.
type Handler func(*EventData)

// objectIDCounter is a plain counter; input runs on one goroutine.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// Object is a hit target owned by the host scene: a 3D body, a UI element, or
// a grouping parent. Objects form a tree; handler lookups walk from a target
// towards the root the way the host dispatch framework does.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Object
	children []*Object

	// UI marks objects that live on a canvas. UI objects honor the pixel drag
	// threshold; world objects start dragging immediately.
	UI bool

	// Pose is the world pose of a 3D object. Colliders are expressed relative
	// to it and Grabber moves it.
	Pose Pose

	// Layer is the physics layer index tested against a LayerMask.
	Layer int

	// Canvas placement (UI objects). X and Y offset HitShape inside the canvas.
	X, Y     float64
	ZIndex   int
	HitShape HitShape

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	handlers [eventTypeCount]Handler
}

func objectDefaults(o *Object) {
	o.ID = nextObjectID()
	o.Pose = IdentityPose
	o.Visible = true
	o.Interactable = true
}

// NewObject creates a world-space object.
func NewObject(name string) *Object {
	o := &Object{Name: name}
	objectDefaults(o)
	return o
}

// NewUIObject creates a canvas element with the given hit shape.
func NewUIObject(name string, shape HitShape) *Object {
	o := &Object{Name: name, UI: true, HitShape: shape}
	objectDefaults(o)
	return o
}

// On installs fn as the handler for kind, replacing any previous one.
// Passing nil removes the handler.
func (o *Object) On(kind EventType, fn Handler) {
	if kind >= eventTypeCount {
		return
	}
	o.handlers[kind] = fn
}

// Handles reports whether o has a handler for kind.
func (o *Object) Handles(kind EventType) bool {
	return o != nil && kind < eventTypeCount && o.handlers[kind] != nil
}

func (o *Object) invoke(kind EventType, data *EventData) bool {
	if !o.Handles(kind) {
		return false
	}
	o.handlers[kind](data)
	return true
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *Object) AddChild(child *Object) {
	if child == nil {
		panic("xrpointer: cannot add nil child")
	}
	if isAncestor(child, o) {
		panic("xrpointer: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = o
	o.children = append(o.children, child)
}

// RemoveChild detaches child from this object.
// Panics if child.Parent != o.
func (o *Object) RemoveChild(child *Object) {
	if child.Parent != o {
		panic("xrpointer: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *Object) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.RemoveChild(o)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	return o.Name
}

// isAncestor reports whether candidate is an ancestor of (or equal to) obj.
func isAncestor(candidate, obj *Object) bool {
	for p := obj; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing child.Parent.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}

// commonAncestor returns the nearest object that is an ancestor of both a and b,
// or nil when they share none.
func commonAncestor(a, b *Object) *Object {
	for p := a; p != nil; p = p.Parent {
		if isAncestor(p, b) {
			return p
		}
	}
	return nil
}
