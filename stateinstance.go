package rivecore

// StateInstance is the live playback of a single LayerState: an
// animation cursor, a set of blended cursors, or nothing at all for
// entry/exit/any (spec §4.8), grounded on
// original_source/include/rive/animation/state_instance.hpp and its
// Animation/BlendState1D/BlendStateDirect specializations.
type StateInstance struct {
	State     *LayerState
	Animation *LinearAnimationInstance // TypeAnimationState
	Blend     *blendStateInstance      // TypeBlendState1D / TypeBlendStateDirect
}

// advance steps whatever this state owns. inputValue is only consulted
// for a 1-D blend state (the referenced number input's current value).
func (s *StateInstance) advance(dt float64, inputValue func(uint32) float64) (keepGoing bool) {
	switch {
	case s.Animation != nil:
		return s.Animation.Advance(dt)
	case s.Blend != nil:
		var v float64
		if s.State.Blend.HasValidInput {
			v = inputValue(s.State.Blend.InputID)
		}
		return s.Blend.advance(dt, s.State.Kind, v)
	default:
		return false // entry/exit/any: nothing to advance
	}
}

// apply writes this state's current value onto the object graph,
// weighted by mix (the outer transition's blend-in weight).
func (s *StateInstance) apply(mix float64) {
	switch {
	case s.Animation != nil:
		s.Animation.Apply(mix)
	case s.Blend != nil:
		s.Blend.apply(mix)
	}
}

// isAtRest reports whether this state's content has stopped moving,
// used by StateMachineInstance.keepGoing (spec §4.8 "any animation is
// not at rest").
func (s *StateInstance) isAtRest() bool {
	switch {
	case s.Animation != nil:
		return s.Animation.IsAtRest()
	default:
		return true
	}
}
