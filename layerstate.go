package rivecore

// LayerState is one node in a StateMachineLayer's graph: entry, exit,
// any, an animation state, or a blend state (spec §4.8), grounded on
// original_source/src/animation/layer_state.cpp and its Animation/Blend
// siblings. Kept as one tagged struct (Kind selects which fields are
// meaningful) rather than five Go types, per this port's tagged-variant
// convention.
type LayerState struct {
	Kind        TypeKey
	Name        string
	Speed       float64
	AnimationID uint32
	Animation   *LinearAnimation // TypeAnimationState only, resolved by stateMachineLayerImporter
	Blend       *BlendState      // TypeBlendState1D / TypeBlendStateDirect only

	Transitions []*StateTransition
	FireEvents  []*StateMachineFireEvent
}

func (s *LayerState) resolve(a *Artboard) error {
	for _, tr := range s.Transitions {
		if err := tr.resolve(a); err != nil {
			return err
		}
	}
	for _, fe := range s.FireEvents {
		fe.Event = a.resolveObject(fe.EventID)
	}
	return nil
}

// makeInstance builds the runtime StateInstance variant appropriate to
// this state's Kind (spec §4.8 "A StateInstance is either: an animation
// state instance ... a 1-D blend state instance ... a direct blend
// state instance ... or a no-op").
func (s *LayerState) makeInstance() *StateInstance {
	inst := &StateInstance{State: s}
	switch s.Kind {
	case TypeAnimationState:
		if s.Animation != nil {
			inst.Animation = NewLinearAnimationInstance(s.Animation)
		}
	case TypeBlendState1D, TypeBlendStateDirect:
		if s.Blend != nil {
			inst.Blend = newBlendStateInstance(s.Blend)
		}
	}
	return inst
}

// BlendState holds the set of BlendAnimations a 1-D or direct blend
// state mixes between, grounded on original_source/src/animation/
// blend_state.cpp.
type BlendState struct {
	InputID      uint32
	HasValidInput bool
	Animations   []*BlendAnimation
}

// BlendAnimation is one animation participating in a blend state: its
// backing LinearAnimation plus, for a 1-D blend, the scalar Value it
// sits at along the blend axis (spec §4.9), grounded on
// include/rive/generated/animation/blend_animation_1d_base.hpp. The
// decoder reads Value from PropBlendValue (229 in propertykeys.go).
type BlendAnimation struct {
	AnimationID uint32
	Animation   *LinearAnimation
	Value       float64 // TypeBlendAnimation1D only
}
