package xrpointer

// defaultPixelDragThreshold matches the host framework's stock threshold.
const defaultPixelDragThreshold = 10.0

// EventSystem is the host UI dispatch framework as seen by the input module.
// Implementations must tolerate nil targets.
type EventSystem interface {
	// Execute runs the kind handler on target only. Reports whether a
	// handler ran.
	Execute(target *Object, data *EventData, kind EventType) bool
	// ExecuteHierarchy runs the kind handler on the first object in the
	// chain target, target.Parent, ... that has one and returns it.
	ExecuteHierarchy(target *Object, data *EventData, kind EventType) *Object
	// GetEventHandler returns the first object in the parent chain of
	// target that can handle kind, without executing it.
	GetEventHandler(target *Object, kind EventType) *Object
	// PixelDragThreshold is the screen distance a UI drag must cover
	// before it begins.
	PixelDragThreshold() float64
}

// HandlerSystem is the default EventSystem. It executes the handlers
// installed with Object.On.
type HandlerSystem struct {
	// DragThreshold in pixels. Zero or negative disables the threshold.
	DragThreshold float64
}

// NewHandlerSystem returns a HandlerSystem with the default drag threshold.
func NewHandlerSystem() *HandlerSystem {
	return &HandlerSystem{DragThreshold: defaultPixelDragThreshold}
}

// Execute implements EventSystem.
func (h *HandlerSystem) Execute(target *Object, data *EventData, kind EventType) bool {
	return target.invoke(kind, data)
}

// ExecuteHierarchy implements EventSystem.
func (h *HandlerSystem) ExecuteHierarchy(target *Object, data *EventData, kind EventType) *Object {
	handler := h.GetEventHandler(target, kind)
	if handler == nil {
		return nil
	}
	handler.invoke(kind, data)
	return handler
}

// GetEventHandler implements EventSystem.
func (h *HandlerSystem) GetEventHandler(target *Object, kind EventType) *Object {
	for o := target; o != nil; o = o.Parent {
		if o.Handles(kind) {
			return o
		}
	}
	return nil
}

// PixelDragThreshold implements EventSystem.
func (h *HandlerSystem) PixelDragThreshold() float64 {
	if h.DragThreshold < 0 {
		return 0
	}
	return h.DragThreshold
}
