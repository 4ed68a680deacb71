package rivecore

// layerPlayhead is the runtime state of one StateMachineLayer within a
// StateMachineInstance: the currently active StateInstance, an optional
// outgoing "from" instance still fading out, and the mix progress
// between them (spec §4.8 steps 4-5). No direct analog survives in the
// retrieved original_source/ subset (state_machine_instance.cpp was not
// among the files pulled in), so this is grounded directly on spec §4.8's
// advance procedure and on the StateInstance/StateTransition pieces that
// are grounded (stateinstance.go, transition.go).
type layerPlayhead struct {
	layer *StateMachineLayer

	current *StateInstance
	from    *StateInstance

	mixSeconds  float64
	mixDuration float64
}

// StateMachineInstance is the runtime driver of a StateMachine
// definition: one playhead per layer, live input values, pointer
// listener bookkeeping, and the per-frame reported-event queue (spec
// §4.8).
type StateMachineInstance struct {
	Artboard   *Artboard
	Definition *StateMachine

	layers []*layerPlayhead
	inputs []*StateMachineInputInstance

	// listenerTracking records, per listener index and pointer id,
	// whether that pointer is currently considered "inside" the
	// listener's target (spec §4.8 "Updates enter/exit bookkeeping, per
	// listener, per pointer id").
	listenerTracking map[int]map[int]bool

	ReportedEvents []ReportedEvent
}

// NewStateMachineInstance builds a fresh runtime driver over def, parking
// every layer at its entry state and every input at its default value.
func NewStateMachineInstance(ab *Artboard, def *StateMachine) *StateMachineInstance {
	smi := &StateMachineInstance{
		Artboard:         ab,
		Definition:       def,
		listenerTracking: make(map[int]map[int]bool),
	}
	for _, in := range def.Inputs {
		smi.inputs = append(smi.inputs, newInputInstance(in))
	}
	for _, layer := range def.Layers {
		ph := &layerPlayhead{layer: layer}
		if layer.Entry != nil {
			ph.current = layer.Entry.makeInstance()
		}
		smi.layers = append(smi.layers, ph)
	}
	return smi
}

func (smi *StateMachineInstance) inputInstanceByID(id uint32) *StateMachineInputInstance {
	if int(id) >= len(smi.inputs) {
		return nil
	}
	return smi.inputs[id]
}

func (smi *StateMachineInstance) inputNumberValue(inputID uint32) float64 {
	if in := smi.inputInstanceByID(inputID); in != nil {
		return in.NumValue
	}
	return 0
}

// Input looks up an input by name and returns its definition (not the
// per-instance value holder), or nil if unknown (spec §6 "returns absent,
// never panics").
func (smi *StateMachineInstance) Input(name string) StateMachineInput {
	for _, in := range smi.inputs {
		if in.Definition.InputName() == name {
			return in.Definition
		}
	}
	return nil
}

func (smi *StateMachineInstance) inputInstanceByName(name string) *StateMachineInputInstance {
	for _, in := range smi.inputs {
		if in.Definition.InputName() == name {
			return in
		}
	}
	return nil
}

// GetBool, GetNumber, GetTrigger read an input's live value by name
// (spec §6). ok is false when no such input exists.
func (smi *StateMachineInstance) GetBool(name string) (value, ok bool) {
	in := smi.inputInstanceByName(name)
	if in == nil {
		return false, false
	}
	return in.BoolValue, true
}

func (smi *StateMachineInstance) GetNumber(name string) (value float64, ok bool) {
	in := smi.inputInstanceByName(name)
	if in == nil {
		return 0, false
	}
	return in.NumValue, true
}

func (smi *StateMachineInstance) GetTrigger(name string) (fired, ok bool) {
	in := smi.inputInstanceByName(name)
	if in == nil {
		return false, false
	}
	return in.Fired, true
}

// SetBool, SetNumber, FireTrigger are the host-facing input setters.
func (smi *StateMachineInstance) SetBool(name string, value bool) {
	if in := smi.inputInstanceByName(name); in != nil {
		in.SetBool(value)
	}
}

func (smi *StateMachineInstance) SetNumber(name string, value float64) {
	if in := smi.inputInstanceByName(name); in != nil {
		in.SetNumber(value)
	}
}

func (smi *StateMachineInstance) FireTrigger(name string) {
	if in := smi.inputInstanceByName(name); in != nil {
		in.Fire()
	}
}

// PointerEvent dispatches one pointer interaction to every listener whose
// trigger kind matches, maintaining per-listener per-pointer enter/exit
// bookkeeping and running each matching listener's actions in turn (spec
// §4.8 "pointer-event listeners ... Updates enter/exit bookkeeping, per
// listener, per pointer id"). hitTest decides whether position is inside
// a listener's target; rivecore carries no path-bounds geometry of its
// own to test against (spec §1 Non-goals exclude path/fill authoring), so
// containment is the host's decision, made in whatever space it renders.
// A nil target (a listener bound to the whole artboard, TargetID == 0)
// always reports inside.
func (smi *StateMachineInstance) PointerEvent(kind ListenerTriggerKind, position Vec2, pointerID int, hitTest func(target *Object) bool) {
	inside := func(target *Object) bool {
		if target == nil || hitTest == nil {
			return true
		}
		return hitTest(target)
	}

	for i, l := range smi.Definition.Listeners {
		switch l.Trigger {
		case ListenerPointerDown, ListenerPointerUp:
			if l.Trigger != kind || !inside(l.Target) {
				continue
			}
			l.perform(smi, position, pointerID)
		case ListenerPointerEnter, ListenerPointerExit:
			if kind != ListenerPointerMove {
				continue
			}
			wasInside := smi.listenerTracking[i][pointerID]
			isInside := inside(l.Target)
			if isInside == wasInside {
				continue
			}
			smi.setTracked(i, pointerID, isInside)
			if (l.Trigger == ListenerPointerEnter) == isInside {
				l.perform(smi, position, pointerID)
			}
		case ListenerPointerMove:
			if kind != ListenerPointerMove || !inside(l.Target) {
				continue
			}
			l.perform(smi, position, pointerID)
		}
	}
}

func (smi *StateMachineInstance) setTracked(listenerIndex, pointerID int, inside bool) {
	tracked := smi.listenerTracking[listenerIndex]
	if tracked == nil {
		tracked = make(map[int]bool)
		smi.listenerTracking[listenerIndex] = tracked
	}
	if inside {
		tracked[pointerID] = true
	} else {
		delete(tracked, pointerID)
	}
}

func (smi *StateMachineInstance) reportEvent(ev *Object, delaySeconds float64) {
	smi.ReportedEvents = append(smi.ReportedEvents, ReportedEvent{Event: ev, DelaySeconds: delaySeconds})
}

// Advance steps every layer by dt, evaluates outgoing transitions, and
// drains any inputs' dirty flags (spec §4.8's per-layer advance
// procedure). The reported-event list is cleared first, matching
// "Consumers drain the list after each advance; it is cleared on the
// next advance."
func (smi *StateMachineInstance) Advance(dt float64) {
	smi.ReportedEvents = smi.ReportedEvents[:0]

	for _, ph := range smi.layers {
		smi.advanceLayer(ph, dt)
	}

	for _, in := range smi.inputs {
		in.Dirty = false
	}
}

func (smi *StateMachineInstance) advanceLayer(ph *layerPlayhead, dt float64) {
	scaledDt := dt * ph.layer.Speed
	if ph.layer.Speed == 0 {
		scaledDt = dt
	}

	if ph.current != nil {
		ph.current.advance(scaledDt, smi.inputNumberValue)
	}
	if ph.from != nil {
		ph.from.advance(scaledDt, smi.inputNumberValue)
	}

	transition, fromCandidate := smi.findTransition(ph)
	if transition != nil {
		transition.consumeTriggers(smi.inputInstanceByID)
		ph.from = fromCandidate
		ph.current = transition.StateTo.makeInstance()
		ph.mixSeconds = 0
		ph.mixDuration = transition.mixTime(fromCandidate.State)
		if transition.Flags.has(FlagPauseOnExit) && fromCandidate.Animation != nil {
			fromCandidate.Animation.Time = transition.exitTimeSeconds(fromCandidate.State, true)
		}
	}

	if ph.from != nil {
		if ph.mixDuration <= 0 {
			ph.from = nil
		} else {
			ph.mixSeconds += dt
			mix := clamp01(ph.mixSeconds / ph.mixDuration)
			if mix >= 1 {
				ph.from = nil
			} else {
				ph.current.apply(mix)
				ph.from.apply(1 - mix)
				return
			}
		}
	}
	if ph.current != nil {
		ph.current.apply(1)
	}
}

// findTransition evaluates the current state's own transitions and the
// layer's any-state transitions (spec §4.8 steps 2-3: "always evaluate
// outgoing transitions of the any-state against the current target —
// they compete with step 2"), returning the first one whose conditions
// and exit-time gate both pass, plus the state instance it transitions
// away from.
func (smi *StateMachineInstance) findTransition(ph *layerPlayhead) (*StateTransition, *StateInstance) {
	if ph.current == nil {
		return nil, nil
	}
	if t := firstAllowed(ph.current.State.Transitions, ph.current, smi.inputInstanceByID); t != nil {
		return t, ph.current
	}
	if ph.layer.Any != nil {
		if t := firstAllowed(ph.layer.Any.Transitions, ph.current, smi.inputInstanceByID); t != nil {
			return t, ph.current
		}
	}
	return nil, nil
}

func firstAllowed(transitions []*StateTransition, from *StateInstance, inputOf func(uint32) *StateMachineInputInstance) *StateTransition {
	for _, t := range transitions {
		if t.allowed(from, inputOf) == transitionYes {
			return t
		}
	}
	return nil
}

// keepGoing reports whether this instance still needs future advances
// (spec §4.8 "Termination"): any layer mid-transition, any animation not
// at rest, any listener tracking a pointer, or any input dirty since the
// last advance.
func (smi *StateMachineInstance) keepGoing() bool {
	for _, ph := range smi.layers {
		if ph.from != nil {
			return true
		}
		if ph.current != nil && !ph.current.isAtRest() {
			return true
		}
	}
	for _, tracked := range smi.listenerTracking {
		if len(tracked) > 0 {
			return true
		}
	}
	for _, in := range smi.inputs {
		if in.Dirty {
			return true
		}
	}
	return false
}
