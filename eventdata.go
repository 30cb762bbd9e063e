package xrpointer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// EventData is the per (pointer id, button) interaction context. One value
// exists per id for the lifetime of an InputModule; it is reset, not
// reallocated, at the start of each frame.
type EventData struct {
	// Pointer that owns this context and the logical button offset within
	// its id block.
	Pointer  Pointer
	ButtonID int

	PointerID int
	Button    Button

	Position    Vec2
	Delta       Vec2
	ScrollDelta Vec2
	Delta3D     mgl64.Vec3

	PressPosition    Vec2
	ClickTime        float64
	ClickCount       int
	EligibleForClick bool
	UseDragThreshold bool
	Dragging         bool
	IsUIObject       bool

	CurrentRaycast RaycastResult
	PressRaycast   RaycastResult

	// PointerEnter is the object the pointer is over; Hovered holds it and
	// every ancestor that received an enter.
	PointerEnter *Object
	Hovered      []*Object

	// LastPress is the value PointerPress held before its last change.
	LastPress       *Object
	PointerPress    *Object
	RawPointerPress *Object
	PointerDrag     *Object

	used bool
}

// Use marks the event as consumed by a handler.
func (e *EventData) Use() { e.used = true }

// Used reports whether a handler consumed the event this frame.
func (e *EventData) Used() bool { return e.used }

// Reset clears per-frame flags. Interaction bookkeeping survives.
func (e *EventData) Reset() { e.used = false }

// SetPointerPress replaces the press target. When the target changes the
// previous one moves to LastPress, which the next press compares against for
// click counting.
func (e *EventData) SetPointerPress(o *Object) {
	if e.PointerPress == o {
		return
	}
	e.LastPress = e.PointerPress
	e.PointerPress = o
}

// IsPointerMoving reports whether the screen position changed this frame.
func (e *EventData) IsPointerMoving() bool {
	return !e.Delta.IsZero()
}

// IsPointerMoving3D reports whether the hit's world position changed this frame.
func (e *EventData) IsPointerMoving3D() bool {
	return e.Delta3D.LenSqr() > epsilon
}

// IsScrolling reports whether a scroll delta is present.
func (e *EventData) IsScrolling() bool {
	return !e.ScrollDelta.IsZero()
}

// eventCache owns the EventData values, keyed by pointer id.
type eventCache struct {
	byID  map[int]*EventData
	order []int
}

func newEventCache() *eventCache {
	return &eventCache{byID: make(map[int]*EventData)}
}

// get returns the context for id, creating it on first use.
func (c *eventCache) get(id int) (*EventData, bool) {
	if e, ok := c.byID[id]; ok {
		return e, false
	}
	e := &EventData{PointerID: id}
	c.byID[id] = e
	c.order = append(c.order, id)
	return e, true
}

func (c *eventCache) lookup(id int) *EventData {
	return c.byID[id]
}

func (c *eventCache) len() int {
	return len(c.byID)
}

// evict removes every context whose id fails keep and returns how many were
// dropped.
func (c *eventCache) evict(keep func(id int) bool) int {
	kept := c.order[:0]
	n := 0
	for _, id := range c.order {
		if keep(id) {
			kept = append(kept, id)
			continue
		}
		delete(c.byID, id)
		n++
	}
	c.order = kept
	return n
}
