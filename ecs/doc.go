// Package ecs provides ECS adapters for xrpointer's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges delivered
// interaction events (enter, exit, down, up, click, drag, scroll) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	module.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
