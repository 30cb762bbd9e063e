package ecs

import (
	"github.com/phanxgames/xrpointer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for pointer interaction
// events. Subscribe to it in ECS systems to receive hover, press, click, drag
// and scroll events for objects that carry an EntityID.
var InteractionEventType = events.NewEventType[xrpointer.InteractionEvent]()

type donburiStore struct {
	world donburi.World
	kinds map[xrpointer.EventType]bool
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents. When kinds is non-empty
// only those event types are published.
func NewDonburiStore(world donburi.World, kinds ...xrpointer.EventType) xrpointer.EntityStore {
	s := &donburiStore{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[xrpointer.EventType]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event xrpointer.InteractionEvent) {
	if s.kinds != nil && !s.kinds[event.Type] {
		return
	}
	InteractionEventType.Publish(s.world, event)
}
