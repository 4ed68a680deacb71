package rivecore

import (
	"fmt"
	"sort"
)

// importStackObject is anything that can sit on the import stack while a
// binary scene is being streamed in (spec §4.3, grounded on
// original_source/include/rive/importers/import_stack.hpp and its
// concrete *_importer.{hpp,cpp} siblings). Each concrete container type
// (artboard, linear animation, keyed object/property, state machine and
// its layers/states/transitions/listeners) pushes one of these while its
// children are being read, and pops it — calling resolve — once the
// container's own sub-stream ends.
type importStackObject interface {
	resolve() error
}

// importStack is a LIFO of importStackObject; latest finds the nearest
// enclosing frame that matches a predicate. The decoder (decoder.go)
// keeps its own level-tagged frame list and does not use this type.
type importStack struct {
	frames []importStackObject
}

func (s *importStack) push(o importStackObject) { s.frames = append(s.frames, o) }

// pop removes and resolves the top frame.
func (s *importStack) pop() error {
	if len(s.frames) == 0 {
		return fmt.Errorf("rivecore: import stack underflow")
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top.resolve()
}

// latest returns the most recently pushed frame matching predicate, or
// nil. Used to find "the enclosing artboard importer" etc. regardless of
// how many unrelated frames sit above it.
func (s *importStack) latest(match func(importStackObject) bool) importStackObject {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if match(s.frames[i]) {
			return s.frames[i]
		}
	}
	return nil
}

// --- artboardImporter ---

// artboardImporter collects object-table members, animation and state
// machine definitions streamed directly under an artboard, grounded on
// artboard_importer.cpp.
type artboardImporter struct {
	artboard *Artboard
}

func (im *artboardImporter) addComponent(o *Object) { im.artboard.addObject(o) }

func (im *artboardImporter) addAnimation(a *LinearAnimation) {
	im.artboard.Animations = append(im.artboard.Animations, a)
}

func (im *artboardImporter) addStateMachine(sm *StateMachine) {
	im.artboard.StateMachines = append(im.artboard.StateMachines, sm)
}

func (im *artboardImporter) resolve() error { return im.artboard.initialize() }

// --- linearAnimationImporter ---

type linearAnimationImporter struct {
	animation *LinearAnimation
}

func (im *linearAnimationImporter) addKeyedObject(k *KeyedObject) {
	im.animation.KeyedObjects = append(im.animation.KeyedObjects, k)
}

func (im *linearAnimationImporter) resolve() error { return nil }

// --- keyedObjectImporter ---

type keyedObjectImporter struct {
	object *KeyedObject
}

func (im *keyedObjectImporter) addKeyedProperty(p *KeyedProperty) {
	im.object.Properties = append(im.object.Properties, p)
}

func (im *keyedObjectImporter) resolve() error { return nil }

// --- keyedPropertyImporter ---

type keyedPropertyImporter struct {
	animation *LinearAnimation
	property  *KeyedProperty
}

func (im *keyedPropertyImporter) addKeyFrame(k *Keyframe) {
	k.computeSeconds(im.animation.FPS)
	im.property.Frames = append(im.property.Frames, k)
}

func (im *keyedPropertyImporter) resolve() error { return nil }

// --- stateMachineImporter ---

type stateMachineImporter struct {
	machine *StateMachine
}

func (im *stateMachineImporter) addLayer(l *StateMachineLayer) {
	im.machine.Layers = append(im.machine.Layers, l)
}

func (im *stateMachineImporter) addInput(i StateMachineInput) {
	im.machine.Inputs = append(im.machine.Inputs, i)
}

func (im *stateMachineImporter) addListener(l *StateMachineListener) {
	im.machine.Listeners = append(im.machine.Listeners, l)
}

func (im *stateMachineImporter) resolve() error { return nil }

// --- stateMachineLayerImporter ---

type stateMachineLayerImporter struct {
	layer    *StateMachineLayer
	artboard *Artboard
}

func (im *stateMachineLayerImporter) addState(s *LayerState) {
	im.layer.States = append(im.layer.States, s)
}

// resolve wires AnimationState.animationId -> *LinearAnimation, each
// BlendAnimation's animationId -> *LinearAnimation, and every
// transition's stateToId -> *LayerState, grounded on
// state_machine_layer_importer.cpp's resolve().
func (im *stateMachineLayerImporter) resolve() error {
	for _, state := range im.layer.States {
		if state.Blend != nil {
			for _, ba := range state.Blend.Animations {
				if int(ba.AnimationID) < len(im.artboard.Animations) {
					ba.Animation = im.artboard.Animations[ba.AnimationID]
				}
			}
		}
		if state.Kind == TypeAnimationState {
			if int(state.AnimationID) >= len(im.artboard.Animations) {
				return fmt.Errorf("rivecore: animation state references out-of-range animation %d", state.AnimationID)
			}
			state.Animation = im.artboard.Animations[state.AnimationID]
			if state.Animation == nil {
				return fmt.Errorf("rivecore: animation state missing backing animation")
			}
		}
		for _, tr := range state.Transitions {
			if int(tr.StateToID) >= len(im.layer.States) {
				return fmt.Errorf("rivecore: transition references out-of-range state %d", tr.StateToID)
			}
			tr.StateTo = im.layer.States[tr.StateToID]
		}
	}
	return nil
}

// --- layerStateImporter ---

type layerStateImporter struct {
	state *LayerState
}

func (im *layerStateImporter) addTransition(t *StateTransition) {
	im.state.Transitions = append(im.state.Transitions, t)
}

func (im *layerStateImporter) addBlendAnimation(a *BlendAnimation) bool {
	if im.state.Blend == nil {
		return false
	}
	im.state.Blend.Animations = append(im.state.Blend.Animations, a)
	return true
}

// resolve wires BlendStateTransition.exitBlendAnimationId -> *BlendAnimation
// (by import order), then sorts a 1-D blend state's Animations by Value.
func (im *layerStateImporter) resolve() error {
	if im.state.Blend == nil {
		return nil
	}
	for _, tr := range im.state.Transitions {
		if !tr.IsBlendTransition {
			continue
		}
		if int(tr.ExitBlendAnimationID) < len(im.state.Blend.Animations) {
			tr.ExitBlendAnimation = im.state.Blend.Animations[tr.ExitBlendAnimationID]
		}
	}
	if im.state.Kind == TypeBlendState1D {
		anims := im.state.Blend.Animations
		sort.SliceStable(anims, func(i, j int) bool { return anims[i].Value < anims[j].Value })
	}
	return nil
}

// --- stateTransitionImporter ---

type stateTransitionImporter struct {
	transition *StateTransition
}

func (im *stateTransitionImporter) addCondition(c *TransitionCondition) {
	im.transition.Conditions = append(im.transition.Conditions, c)
}

func (im *stateTransitionImporter) resolve() error { return nil }

// --- stateMachineListenerImporter ---

type stateMachineListenerImporter struct {
	listener *StateMachineListener
}

func (im *stateMachineListenerImporter) addInputChange(c ListenerAction) {
	im.listener.Actions = append(im.listener.Actions, c)
}

func (im *stateMachineListenerImporter) resolve() error { return nil }
