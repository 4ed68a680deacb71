package rivecore

// Event is a named, inert object-table entry that exists only to be
// referenced by a fire-event listener action or a StateMachineFireEvent
// record (spec §4.8), grounded on original_source/src/event.cpp.
// AudioEvent (TypeAudioEvent) reuses the same Object slot with its
// AssetID/IsPlaying fields populated instead.

// ReportedEvent is one entry in a StateMachineInstance's drained-per-
// frame event queue (spec §4.8 "A fire-event action ... appends a
// reported event {event, delaySeconds} ... Consumers drain the list
// after each advance; it is cleared on the next advance").
type ReportedEvent struct {
	Event        *Object
	DelaySeconds float64
}

// fireEventOccurrence selects whether a StateMachineFireEvent record
// fires when a transition begins or when it completes, grounded on
// include/rive/generated/animation/state_machine_fire_event_base.hpp's
// occursValue (0 = atStart, 1 = atEnd per spec §4.8).
type fireEventOccurrence uint32

const (
	occursAtStart fireEventOccurrence = 0
	occursAtEnd   fireEventOccurrence = 1
)

// StateMachineFireEvent binds an Event to a transition or state with an
// atStart/atEnd occurrence. The decoder attaches these records and
// resolve binds Event, but StateMachineInstance.Advance does not report
// them: taking a transition or entering/leaving a state adds nothing to
// ReportedEvents.
type StateMachineFireEvent struct {
	EventID  uint32
	Event    *Object
	Occurs   fireEventOccurrence
}
