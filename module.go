package xrpointer

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityStore is the interface for optional ECS integration.
// When set on an InputModule, delivered events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes one delivered handler invocation. It is passed
// to module subscribers and to the EntityStore.
type InteractionEvent struct {
	Type      EventType
	PointerID int
	Button    Button
	// Target is the object whose handler ran.
	Target   *Object
	EntityID uint32
	ScreenX  float64
	ScreenY  float64
	DeltaX   float64
	DeltaY   float64
	// WorldPosition of the current hit.
	WorldPosition mgl64.Vec3
	// ClickCount is the press count (valid for down, up and click events).
	ClickCount int
	Dragging   bool
}

var clockStart = time.Now()

// defaultClock returns monotonic seconds since package initialisation.
func defaultClock() float64 {
	return time.Since(clockStart).Seconds()
}

// InputModule turns pointer state into handler invocations once per frame.
// It owns one EventData per pointer id it has seen.
type InputModule struct {
	registry *PointerRegistry
	events   EventSystem
	cache    *eventCache
	clock    func() float64
	store    EntityStore
	debug    bool

	subscribers [eventTypeCount]callbackList[InteractionEvent]
	any         callbackList[InteractionEvent]
	selected    *Object

	stats frameStats
}

// NewInputModule creates a module driving the pointers in registry. A nil
// events uses a HandlerSystem with the default drag threshold.
func NewInputModule(registry *PointerRegistry, events EventSystem) *InputModule {
	if registry == nil {
		registry = NewPointerRegistry()
	}
	if events == nil {
		events = NewHandlerSystem()
	}
	return &InputModule{
		registry: registry,
		events:   events,
		cache:    newEventCache(),
		clock:    defaultClock,
	}
}

// Registry returns the pointer registry the module processes.
func (m *InputModule) Registry() *PointerRegistry {
	return m.registry
}

// EventSystem returns the dispatch framework the module calls into.
func (m *InputModule) EventSystem() EventSystem {
	return m.events
}

// SetClock replaces the time source (seconds) used for click timing.
func (m *InputModule) SetClock(clock func() float64) {
	if clock == nil {
		clock = defaultClock
	}
	m.clock = clock
}

// SetEntityStore sets the optional ECS bridge.
func (m *InputModule) SetEntityStore(store EntityStore) {
	m.store = store
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (m *InputModule) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// On registers fn to run after each delivered event of the given kind.
func (m *InputModule) On(kind EventType, fn func(InteractionEvent)) CallbackHandle {
	if kind >= eventTypeCount {
		return CallbackHandle{}
	}
	return m.subscribers[kind].add(fn)
}

// OnAny registers fn to run after every delivered event, after the
// kind-specific subscribers.
func (m *InputModule) OnAny(fn func(InteractionEvent)) CallbackHandle {
	return m.any.add(fn)
}

// EventData returns the context cached for a pointer id, or nil.
func (m *InputModule) EventData(id int) *EventData {
	return m.cache.lookup(id)
}

// ContextCount returns the number of cached contexts.
func (m *InputModule) ContextCount() int {
	return m.cache.len()
}

// EvictStale drops contexts whose id no longer belongs to a registered
// pointer and returns how many were dropped.
func (m *InputModule) EvictStale() int {
	n := m.cache.evict(func(id int) bool {
		return m.registry.PointerByID(id) != nil
	})
	if n > 0 && m.debug {
		debugf("evicted %d stale contexts", n)
	}
	return n
}

// Selected returns the currently selected object.
func (m *InputModule) Selected() *Object {
	return m.selected
}

// SetSelected moves the selection to o, sending deselect to the previous
// object and select to o. data may be nil.
func (m *InputModule) SetSelected(o *Object, data *EventData) {
	if o == m.selected {
		return
	}
	if data == nil {
		data = &EventData{}
	}
	prev := m.selected
	m.selected = o
	m.execute(prev, data, EventDeselect)
	m.execute(o, data, EventSelect)
}

// Process advances one frame: every registered pointer is sampled, raycast
// and dispatched in registration order. It reports whether any pointer is
// registered.
func (m *InputModule) Process() bool {
	var t0 time.Time
	if m.debug {
		m.stats = frameStats{}
		t0 = time.Now()
	}

	pointers := m.registry.Pointers()
	for _, p := range pointers {
		p.UpdateState()
		p.Raycast(m.dragContext(p))
		m.processPointerEvent(p)
	}

	if m.debug {
		m.stats.pointers = len(pointers)
		m.stats.contexts = m.cache.len()
		m.stats.frameTime = time.Since(t0)
		m.debugLog()
	}
	return len(pointers) > 0
}

// dragContext returns the context of the lowest button of p that is
// dragging, so the raycast can hold the press depth.
func (m *InputModule) dragContext(p Pointer) *EventData {
	for i := 0; i < MaxButtons; i++ {
		if data := m.cache.lookup(p.ID() + i); data != nil && data.Dragging {
			return data
		}
	}
	return nil
}

// execute runs kind on target and publishes the delivery.
func (m *InputModule) execute(target *Object, data *EventData, kind EventType) bool {
	if target == nil {
		return false
	}
	if !m.events.Execute(target, data, kind) {
		return false
	}
	m.emit(kind, target, data)
	return true
}

// executeHierarchy runs kind on the first handler in target's parent chain
// and publishes the delivery. It returns the handling object.
func (m *InputModule) executeHierarchy(target *Object, data *EventData, kind EventType) *Object {
	if target == nil {
		return nil
	}
	handler := m.events.ExecuteHierarchy(target, data, kind)
	if handler != nil {
		m.emit(kind, handler, data)
	}
	return handler
}

func (m *InputModule) emit(kind EventType, target *Object, data *EventData) {
	if m.debug {
		m.stats.dispatched++
	}
	if m.subscribers[kind].len() == 0 && m.any.len() == 0 && m.store == nil {
		return
	}
	ev := InteractionEvent{
		Type:          kind,
		PointerID:     data.PointerID,
		Button:        data.Button,
		Target:        target,
		ScreenX:       data.Position.X,
		ScreenY:       data.Position.Y,
		DeltaX:        data.Delta.X,
		DeltaY:        data.Delta.Y,
		WorldPosition: data.CurrentRaycast.WorldPosition,
		ClickCount:    data.ClickCount,
		Dragging:      data.Dragging,
	}
	if target != nil {
		ev.EntityID = target.EntityID
	}
	m.subscribers[kind].fire(ev)
	m.any.fire(ev)
	if m.store != nil && ev.EntityID != 0 {
		m.store.EmitEvent(ev)
	}
}
