package rivecore

// StateMachineLayer is one independently-advancing layer of a
// StateMachine, owning its own states and the single active
// StateInstance that walks them (spec §4.8), grounded on
// original_source/src/animation/state_machine_layer.cpp.
type StateMachineLayer struct {
	Name   string
	Speed  float64
	States []*LayerState

	Entry *LayerState
	Any   *LayerState
	Exit  *LayerState
}

// resolve finds the layer's Entry/Any/Exit states, mirroring
// StateMachineLayer::onAddedDirty's switch-on-coreType loop, and fails
// with InvalidObject semantics (here: a plain error, spec §7) if any of
// the three required states is missing.
func (l *StateMachineLayer) resolve(a *Artboard) error {
	for _, state := range l.States {
		switch state.Kind {
		case TypeAnyState:
			l.Any = state
		case TypeEntryState:
			l.Entry = state
		case TypeExitState:
			l.Exit = state
		}
		if err := state.resolve(a); err != nil {
			return err
		}
	}
	if l.Any == nil || l.Entry == nil || l.Exit == nil {
		return errMissingLayerState
	}
	return nil
}
