package rivecore

import "strings"

// NestedAnimation is one of a NestedArtboard's own advancing timelines:
// a simple loop over a single LinearAnimation, a time-remapped scrub, or
// an inner state machine (spec §4.7). Kept as one struct with a Kind tag
// rather than three Go types, consistent with this port's tagged-variant
// convention (typekeys.go's doc comment).
type NestedAnimation struct {
	Kind         TypeKey // TypeNestedSimpleAnimation, TypeNestedRemapAnimation, TypeNestedStateMachine
	AnimationID  uint32
	linear       *LinearAnimationInstance
	stateMachine *StateMachineInstance
	RemapTime    float64 // TypeNestedRemapAnimation: externally driven 0..1 scrub position
}

// advance steps this nested timeline by dt and, for a nested state
// machine, drains its reported events into outer (spec §4.7 "a nested
// state machine reports its events upward by queueing them into the
// outer artboard's state-machine instance reported-event list on each
// frame").
func (n *NestedAnimation) advance(dt float64, outer *StateMachineInstance) {
	switch n.Kind {
	case TypeNestedSimpleAnimation:
		if n.linear != nil {
			n.linear.Advance(dt)
			n.linear.Apply(1)
		}
	case TypeNestedRemapAnimation:
		if n.linear != nil {
			dur := n.linear.Animation.durationSeconds()
			n.linear.Time = n.linear.Animation.startSeconds() + dur*clamp01(n.RemapTime)
			n.linear.Apply(1)
		}
	case TypeNestedStateMachine:
		if n.stateMachine != nil {
			n.stateMachine.Advance(dt)
			if outer != nil {
				outer.ReportedEvents = append(outer.ReportedEvents, n.stateMachine.ReportedEvents...)
			}
			n.stateMachine.ReportedEvents = n.stateMachine.ReportedEvents[:0]
		}
	}
}

// NestedInputBinding re-exposes one input of a nested state machine to
// the outer artboard under a dotted path (spec §4.7
// "path/to/child:InputName").
type NestedInputBinding struct {
	Path  string
	Input StateMachineInput
}

// resolveNested traverses a slash-separated path of NestedArtboard
// object names, returning the final nested ArtboardInstance, grounded on
// spec §6 "Nested access: ArtboardInstance::getBool(inputName,
// nestedPath) ... traverse slash-separated paths."
func (ai *ArtboardInstance) resolveNested(path string) *ArtboardInstance {
	if path == "" {
		return ai
	}
	segments := strings.Split(path, "/")
	current := ai
	for _, seg := range segments {
		if current == nil {
			return nil
		}
		found := false
		for _, o := range current.Artboard.Objects {
			if o != nil && o.Type == TypeNestedArtboard && o.Name == seg {
				current = o.NestedInstance
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return current
}

// inputByNestedPath resolves a top-level input name and an optional
// nested path (empty means "this artboard's own default state
// machine").
func (ai *ArtboardInstance) inputByNestedPath(name, nestedPath string) StateMachineInput {
	target := ai.resolveNested(nestedPath)
	if target == nil || target.defaultMachine == nil {
		return nil
	}
	return target.defaultMachine.Input(name)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// resolveNestedArtboards binds every NestedArtboard object's NestedSource to
// its referenced definition artboard. This is a cross-artboard reference
// (spec §4.7's artboardId), so it can only run once every artboard in the
// file has decoded, grounded on NestedArtboardBase::artboardId indexing the
// file's artboard table; this port has no separate backboard asset list, so
// NestedArtboardID indexes File.artboards directly.
func (f *File) resolveNestedArtboards() {
	for _, ab := range f.artboards {
		for _, o := range ab.Objects {
			if o == nil || !o.IsTypeOf(TypeNestedArtboard) {
				continue
			}
			o.NestedSource = f.ArtboardAt(int(o.NestedArtboardID))
		}
	}
}

// instantiateNestedAnimations builds a fresh per-instance NestedAnimation
// list from a NestedArtboard object's design-time definitions, binding each
// one's LinearAnimationInstance/StateMachineInstance against the freshly
// instanced nested artboard rather than sharing the definition's list
// (spec §4.7), grounded on NestedLinearAnimation::initializeAnimation
// ("new LinearAnimationInstance(artboard->animation(animationId()))") and
// NestedStateMachine::initializeAnimation
// ("m_StateMachineInstance = artboard->stateMachineAt(animationId())").
func instantiateNestedAnimations(defs []*NestedAnimation, nested *ArtboardInstance) []*NestedAnimation {
	if nested == nil || len(defs) == 0 {
		return nil
	}
	out := make([]*NestedAnimation, 0, len(defs))
	for _, def := range defs {
		na := &NestedAnimation{Kind: def.Kind, AnimationID: def.AnimationID, RemapTime: def.RemapTime}
		switch def.Kind {
		case TypeNestedSimpleAnimation, TypeNestedRemapAnimation:
			if int(def.AnimationID) < len(nested.Animations) {
				na.linear = NewLinearAnimationInstance(nested.Animations[def.AnimationID])
			}
		case TypeNestedStateMachine:
			na.stateMachine = nested.StateMachineInstanceAt(int(def.AnimationID))
		}
		out = append(out, na)
	}
	return out
}
