package rivecore

// ListenerTriggerKind is the pointer event a StateMachineListener reacts
// to (spec §4.8 "a trigger kind (pointer-down, pointer-up, pointer-move,
// pointer-enter, pointer-exit)").
type ListenerTriggerKind uint32

const (
	ListenerPointerDown ListenerTriggerKind = iota
	ListenerPointerUp
	ListenerPointerMove
	ListenerPointerEnter
	ListenerPointerExit
)

// StateMachineListener binds a pointer trigger kind on a target object to
// an ordered list of actions (spec §4.8), grounded on
// original_source/src/animation/state_machine_listener.cpp.
type StateMachineListener struct {
	TargetID uint32
	Target   *Object
	Trigger  ListenerTriggerKind
	Actions  []ListenerAction
}

func (l *StateMachineListener) resolve(a *Artboard) error {
	if l.TargetID != 0 {
		l.Target = a.resolveObject(l.TargetID)
	}
	return nil
}

// perform runs every action in order, grounded on
// StateMachineListener::performChanges.
func (l *StateMachineListener) perform(smi *StateMachineInstance, position Vec2, pointerID int) {
	for _, action := range l.Actions {
		action.perform(smi, position, pointerID)
	}
}

// ListenerAction is one step of a listener's reaction: set-bool,
// set-number, fire-trigger, align-target, or fire-event (spec §4.8
// step 3), grounded on the Listener*Change/ListenerAlignTarget/
// ListenerFireEvent sources.
type ListenerAction interface {
	perform(smi *StateMachineInstance, position Vec2, pointerID int)
}

// ListenerSetBool sets a named bool input, grounded on
// original_source/src/animation/listener_bool_change.cpp. Value follows
// rive's own tri-state encoding: 0 = false, 1 = true, anything else =
// toggle current value.
type ListenerSetBool struct {
	InputID uint32
	Value   uint32
}

func (a *ListenerSetBool) perform(smi *StateMachineInstance, _ Vec2, _ int) {
	in := smi.inputInstanceByID(a.InputID)
	if in == nil {
		return
	}
	switch a.Value {
	case 0:
		in.SetBool(false)
	case 1:
		in.SetBool(true)
	default:
		in.SetBool(!in.BoolValue)
	}
}

// ListenerSetNumber sets a named number input.
type ListenerSetNumber struct {
	InputID uint32
	Value   float64
}

func (a *ListenerSetNumber) perform(smi *StateMachineInstance, _ Vec2, _ int) {
	if in := smi.inputInstanceByID(a.InputID); in != nil {
		in.SetNumber(a.Value)
	}
}

// ListenerFireTrigger arms a named trigger input, grounded on
// original_source/src/animation/listener_trigger_change.cpp.
type ListenerFireTrigger struct {
	InputID uint32
}

func (a *ListenerFireTrigger) perform(smi *StateMachineInstance, _ Vec2, _ int) {
	if in := smi.inputInstanceByID(a.InputID); in != nil {
		in.Fire()
	}
}

// ListenerAlignTarget moves a node to the pointer position in its local
// (parent) frame, grounded on
// original_source/src/animation/listener_align_target.cpp.
type ListenerAlignTarget struct {
	TargetID uint32
}

func (a *ListenerAlignTarget) perform(smi *StateMachineInstance, position Vec2, _ int) {
	target := smi.Artboard.resolveObject(a.TargetID)
	if target == nil || !target.IsTypeOf(TypeNode) {
		return
	}
	var parentWorld [6]float64
	if target.Parent != nil {
		parentWorld = target.Parent.WorldTransform
	} else {
		parentWorld = identityTransform
	}
	inv := invertAffine(parentWorld)
	lx, ly := transformPoint(inv, position.X, position.Y)
	target.X = lx
	target.Y = ly
	target.MarkTransformDirty()
}

// ListenerFireEvent enqueues a reported event referencing an Event
// object, grounded on
// original_source/src/animation/listener_fire_event.cpp.
type ListenerFireEvent struct {
	EventID uint32
}

func (a *ListenerFireEvent) perform(smi *StateMachineInstance, _ Vec2, _ int) {
	ev := smi.Artboard.resolveObject(a.EventID)
	if ev == nil || !ev.IsTypeOf(TypeEvent) {
		return
	}
	smi.reportEvent(ev, 0)
}
