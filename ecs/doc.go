// Package ecs provides an optional donburi adapter for rivecore's
// reported events.
//
// The primary adapter is [NewDonburiStore], which forwards
// rivecore.ReportedEvent values into a [Donburi] world as a typed event.
// Subscribe to [ReportedEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	for _, ev := range smi.ReportedEvents {
//		store.Publish(ev)
//	}
//	ecs.ReportedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
