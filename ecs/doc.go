// Package ecs provides ECS adapters for allofyou's session events.
//
// The primary adapter is [NewDonburiSink], which bridges session events
// (mode changes, drags, screenshots) into a [Donburi] world as typed events.
// Subscribe to [SessionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
