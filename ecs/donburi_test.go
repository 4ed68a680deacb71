package ecs

import (
	"testing"

	"github.com/willowcore/rivecore"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_Publish(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []rivecore.ReportedEvent
	ReportedEventType.Subscribe(world, func(w donburi.World, ev rivecore.ReportedEvent) {
		received = append(received, ev)
	})

	store.Publish(rivecore.ReportedEvent{DelaySeconds: 0})
	store.Publish(rivecore.ReportedEvent{DelaySeconds: 0.5})
	ReportedEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[1].DelaySeconds != 0.5 {
		t.Errorf("event 1 delay = %v, want 0.5", received[1].DelaySeconds)
	}
}

func TestDonburiStore_PublishAll(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count int
	ReportedEventType.Subscribe(world, func(w donburi.World, ev rivecore.ReportedEvent) {
		count++
	})

	store.PublishAll([]rivecore.ReportedEvent{{}, {}, {}})
	ReportedEventType.ProcessEvents(world)

	if count != 3 {
		t.Errorf("expected 3 events delivered, got %d", count)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ReportedEventType.Subscribe(world, func(w donburi.World, ev rivecore.ReportedEvent) { count1++ })
	ReportedEventType.Subscribe(world, func(w donburi.World, ev rivecore.ReportedEvent) { count2++ })

	store.Publish(rivecore.ReportedEvent{})
	ReportedEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
