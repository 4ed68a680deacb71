package ecs

import (
	"github.com/willowcore/rivecore"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ReportedEventType is the donburi event type rivecore.ReportedEvent
// values are published as. Subscribe to this in an ECS system to react
// to fired events without polling StateMachineInstance.ReportedEvents
// directly every frame.
var ReportedEventType = events.NewEventType[rivecore.ReportedEvent]()

// DonburiStore forwards rivecore reported events into a donburi world,
// grounded on the teacher's own interaction-event-to-donburi bridge
// (formerly ecs/donburi.go's donburiStore, there wired to willow's
// pointer/drag/pinch InteractionEvent instead of rivecore's
// state-machine fire-events).
type DonburiStore struct {
	world donburi.World
}

// NewDonburiStore returns a DonburiStore publishing into world.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world}
}

// Publish forwards ev to every ReportedEventType subscriber, queued until
// the next ReportedEventType.ProcessEvents(world) call.
func (s *DonburiStore) Publish(ev rivecore.ReportedEvent) {
	ReportedEventType.Publish(s.world, ev)
}

// PublishAll forwards every event in a StateMachineInstance.Advance
// cycle's drained queue, a convenience over calling Publish in a loop.
func (s *DonburiStore) PublishAll(events []rivecore.ReportedEvent) {
	for _, ev := range events {
		s.Publish(ev)
	}
}
