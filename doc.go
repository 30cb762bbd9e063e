// Package xrpointer is a spatial pointer interaction engine for stereoscopic
// rigs and desktop scenes.
//
// It turns raw per-device pose and button samples from styluses and tracked
// controllers into one resolved hit per pointer per frame and a sequenced
// stream of interaction events: enter/exit, down/up, click, begin/continue/end
// drag, drop and scroll.
//
// # Quick start
//
// Build the hit providers, a resolver, the pointers, and an [InputModule],
// then call [InputModule.Process] once per frame:
//
//	physics := xrpointer.NewPhysicsWorld()
//	canvases := &xrpointer.UIRaycasters{}
//	resolver := xrpointer.NewResolver(physics, canvases, camera)
//
//	reg := xrpointer.NewPointerRegistry()
//	reg.Add(xrpointer.NewStylus(device, resolver, xrpointer.DefaultConfig()))
//
//	module := xrpointer.NewInputModule(reg, nil)
//	// each frame:
//	module.Process()
//
// # Pointers
//
// A [Pointer] owns three consecutive ids starting at its ID, one per logical
// button. [DevicePointer] implements it for any [Device]; [NewStylus] swaps
// the configured primary key into logical button 0 and [NewTrackedPointer]
// reads buttons with the rotated wiring of generic controllers. [MouseDevice]
// drives a pointer from the ebiten cursor and [ScriptedDevice] replays queued
// frames for tests.
//
// # Hits
//
// [Resolver] merges a 3D physics query ([PhysicsWorld]) with 2D hit tests of
// UI raycasters ([Canvas]). When both report a target a [MergeRule] decides;
// [MergeOcclusion] keeps the world hit only when the UI hit is farther, so a
// nearer or equally distant UI hit wins.
//
// # Events
//
// Handlers are installed per object with [Object.On] and run through an
// [EventSystem]. Delivered events are also published to subscribers added
// with [InputModule.On] and, for objects with an EntityID, to an optional
// [EntityStore] such as the Donburi adapter in xrpointer/ecs.
//
// Configuration can be loaded from YAML with [LoadConfig]. Endpoint smoothing
// uses [gween] tweens.
//
// [gween]: https://github.com/tanema/gween
package xrpointer
