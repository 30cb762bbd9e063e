package xrpointer

import "fmt"

// PointerRegistry is the ordered set of live pointers. It is owned by the
// composition root and handed to the InputModule; mutate it only between
// frames.
type PointerRegistry struct {
	pointers []Pointer
}

// NewPointerRegistry returns an empty registry.
func NewPointerRegistry() *PointerRegistry {
	return &PointerRegistry{}
}

// Add registers p at the end of the processing order. It fails when p's id
// block overlaps a registered pointer. Adding the same pointer twice is a no-op.
func (r *PointerRegistry) Add(p Pointer) error {
	if p == nil {
		return ErrNilPointer
	}
	for _, e := range r.pointers {
		if e == p {
			return nil
		}
		if blocksOverlap(e.ID(), p.ID()) {
			return fmt.Errorf("%w: id %d overlaps pointer %d", ErrIDConflict, p.ID(), e.ID())
		}
	}
	r.pointers = append(r.pointers, p)
	return nil
}

// Remove unregisters p, keeping the order of the rest.
func (r *PointerRegistry) Remove(p Pointer) {
	for i, e := range r.pointers {
		if e == p {
			copy(r.pointers[i:], r.pointers[i+1:])
			r.pointers[len(r.pointers)-1] = nil
			r.pointers = r.pointers[:len(r.pointers)-1]
			return
		}
	}
}

// Pointers returns the live pointers in registration order. The returned
// slice MUST NOT be mutated.
func (r *PointerRegistry) Pointers() []Pointer {
	return r.pointers
}

// PointerByID returns the pointer whose id block contains id, or nil.
func (r *PointerRegistry) PointerByID(id int) Pointer {
	for _, p := range r.pointers {
		if p.Contains(id) {
			return p
		}
	}
	return nil
}

// Len returns the number of live pointers.
func (r *PointerRegistry) Len() int {
	return len(r.pointers)
}

// Enabled reports whether at least one pointer is registered.
func (r *PointerRegistry) Enabled() bool {
	return len(r.pointers) > 0
}

func blocksOverlap(a, b int) bool {
	return a < b+MaxButtons && b < a+MaxButtons
}
