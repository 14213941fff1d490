package ecs

import (
	"github.com/phanxgames/allofyou"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for allofyou session events.
var SessionEventType = events.NewEventType[allofyou.SessionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Session events are published to SessionEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) allofyou.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event allofyou.SessionEvent) {
	SessionEventType.Publish(s.world, event)
}
