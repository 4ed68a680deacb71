package rivecore

import "testing"

func newTestSMI(t *testing.T, listeners ...*StateMachineListener) *StateMachineInstance {
	t.Helper()
	def := &StateMachine{
		Inputs:    []StateMachineInput{&StateMachineBoolInput{Name: "hovered"}},
		Listeners: listeners,
	}
	return NewStateMachineInstance(NewArtboard(), def)
}

func boolSetListener(target *Object, trigger ListenerTriggerKind, inputID uint32, value uint32) *StateMachineListener {
	return &StateMachineListener{
		Target:  target,
		Trigger: trigger,
		Actions: []ListenerAction{&ListenerSetBool{InputID: inputID, Value: value}},
	}
}

func TestPointerEvent_PointerDownFiresOnlyMatchingTrigger(t *testing.T) {
	target := &Object{}
	smi := newTestSMI(t, boolSetListener(target, ListenerPointerDown, 0, 1))

	smi.PointerEvent(ListenerPointerUp, Vec2{}, 0, nil)
	if smi.inputs[0].BoolValue {
		t.Fatal("PointerUp should not trigger a PointerDown listener")
	}

	smi.PointerEvent(ListenerPointerDown, Vec2{}, 0, nil)
	if !smi.inputs[0].BoolValue {
		t.Fatal("PointerDown should have fired the listener's SetBool action")
	}
}

func TestPointerEvent_HitTestGatesDownUp(t *testing.T) {
	target := &Object{}
	smi := newTestSMI(t, boolSetListener(target, ListenerPointerDown, 0, 1))

	smi.PointerEvent(ListenerPointerDown, Vec2{}, 0, func(o *Object) bool { return false })
	if smi.inputs[0].BoolValue {
		t.Fatal("listener should not fire when hitTest reports outside")
	}

	smi.PointerEvent(ListenerPointerDown, Vec2{}, 0, func(o *Object) bool { return true })
	if !smi.inputs[0].BoolValue {
		t.Fatal("listener should fire when hitTest reports inside")
	}
}

func TestPointerEvent_NilTargetAlwaysInside(t *testing.T) {
	smi := newTestSMI(t, boolSetListener(nil, ListenerPointerDown, 0, 1))
	smi.PointerEvent(ListenerPointerDown, Vec2{}, 0, func(o *Object) bool { return false })
	if !smi.inputs[0].BoolValue {
		t.Fatal("a listener with a nil target (whole-artboard) should always report inside")
	}
}

func TestPointerEvent_EnterExitBookkeeping(t *testing.T) {
	target := &Object{}
	enter := boolSetListener(target, ListenerPointerEnter, 0, 1)
	smi := newTestSMI(t, enter)

	inside := true
	hitTest := func(o *Object) bool { return inside }

	// First move while inside: transitions from "unknown/outside" to
	// inside, so Enter should fire once.
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 7, hitTest)
	if !smi.inputs[0].BoolValue {
		t.Fatal("expected PointerEnter listener to fire on first inside move")
	}

	// Reset and move again while still inside: no further transition, so
	// the listener must not fire a second time.
	smi.inputs[0].BoolValue = false
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 7, hitTest)
	if smi.inputs[0].BoolValue {
		t.Fatal("PointerEnter should not re-fire while the pointer stays inside")
	}

	// Move outside: exit transition, Enter listener still should not fire.
	inside = false
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 7, hitTest)
	if smi.inputs[0].BoolValue {
		t.Fatal("PointerEnter should not fire on an exit transition")
	}
}

func TestPointerEvent_ExitFiresOnOutsideTransition(t *testing.T) {
	target := &Object{}
	exit := boolSetListener(target, ListenerPointerExit, 0, 1)
	smi := newTestSMI(t, exit)

	inside := true
	hitTest := func(o *Object) bool { return inside }

	smi.PointerEvent(ListenerPointerMove, Vec2{}, 3, hitTest) // enters, no exit fire
	if smi.inputs[0].BoolValue {
		t.Fatal("PointerExit should not fire while entering")
	}

	inside = false
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 3, hitTest) // exits
	if !smi.inputs[0].BoolValue {
		t.Fatal("PointerExit should fire on the inside-to-outside transition")
	}
}

func TestPointerEvent_MoveListenerFiresEveryInsideMove(t *testing.T) {
	target := &Object{}
	move := boolSetListener(target, ListenerPointerMove, 0, 2) // 2 = toggle
	smi := newTestSMI(t, move)

	smi.PointerEvent(ListenerPointerMove, Vec2{}, 1, func(o *Object) bool { return true })
	first := smi.inputs[0].BoolValue
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 1, func(o *Object) bool { return true })
	second := smi.inputs[0].BoolValue

	if first == second {
		t.Fatal("toggle SetBool should flip value on each of two separate move events")
	}
}

func TestPointerEvent_DistinctPointersTrackedIndependently(t *testing.T) {
	target := &Object{}
	enter := boolSetListener(target, ListenerPointerEnter, 0, 1)
	smi := newTestSMI(t, enter)

	smi.PointerEvent(ListenerPointerMove, Vec2{}, 1, func(o *Object) bool { return true })
	if !smi.inputs[0].BoolValue {
		t.Fatal("expected enter fire for pointer 1")
	}
	smi.inputs[0].BoolValue = false

	// A second, distinct pointer id entering should also fire, since
	// bookkeeping is per pointer id.
	smi.PointerEvent(ListenerPointerMove, Vec2{}, 2, func(o *Object) bool { return true })
	if !smi.inputs[0].BoolValue {
		t.Fatal("expected enter fire for a distinct pointer id 2")
	}
}
