package rivecore

import "math"

// TransitionFlags is the bitmask carried by every StateTransition (spec
// §3: "a flags bitmask (duration-is-percentage, exit-time-is-percentage,
// disabled, pause-on-exit, enable-exit-time, …)").
type TransitionFlags uint32

const (
	FlagDurationIsPercentage TransitionFlags = 1 << iota
	FlagExitTimeIsPercentage
	FlagDisabled
	FlagPauseOnExit
	FlagEnableExitTime
)

func (f TransitionFlags) has(bit TransitionFlags) bool { return f&bit == bit }

// ConditionOp enumerates the comparisons a bool/number TransitionCondition
// may apply (spec §4.8 "bool and number conditions compare with ==, !=,
// <, <=, >, >= against a literal").
type ConditionOp uint8

const (
	OpEqual ConditionOp = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
)

// TransitionCondition gates a StateTransition on one input's value,
// grounded on original_source/src/animation/transition_condition.cpp and
// its Bool/Number/Trigger siblings (transition_trigger_condition.cpp).
type TransitionCondition struct {
	Kind    TypeKey // TypeTransitionBoolCondition / Number / Trigger
	InputID uint32
	Op      ConditionOp
	Value   float64 // bool conditions store 0/1 here
}

// evaluate reads input's current value and applies Op, mirroring each
// concrete *Condition::evaluate. A nil input (an input id the importer
// could not resolve) is tolerated and evaluates true, matching the
// "older runtimes limp along" comment in transition_trigger_condition.cpp.
func (c *TransitionCondition) evaluate(input *StateMachineInputInstance) bool {
	if input == nil {
		return true
	}
	switch c.Kind {
	case TypeTransitionTriggerCondition:
		return input.Fired
	case TypeTransitionBoolCondition:
		return compareFloat(boolToFloat(input.BoolValue), c.Op, c.Value)
	case TypeTransitionNumberCondition:
		return compareFloat(input.NumValue, c.Op, c.Value)
	default:
		return true
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func compareFloat(a float64, op ConditionOp, b float64) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpLess:
		return a < b
	case OpLessOrEqual:
		return a <= b
	case OpGreater:
		return a > b
	case OpGreaterOrEqual:
		return a >= b
	default:
		return false
	}
}

// StateTransition is one edge in a layer's state graph: a target state,
// a duration, an optional exit-time gate, and a list of conditions that
// must all pass (spec §3, §4.8), grounded on
// original_source/src/animation/state_transition.cpp.
type StateTransition struct {
	StateToID             uint32
	StateTo               *LayerState
	Duration              uint32 // milliseconds, or percent-of-duration*100 when FlagDurationIsPercentage
	ExitTime              uint32 // milliseconds or percent, see FlagExitTimeIsPercentage
	Flags                 TransitionFlags
	InterpolatorID         uint32
	Interpolator          *Object
	Conditions            []*TransitionCondition

	IsBlendTransition     bool
	ExitBlendAnimationID  uint32
	ExitBlendAnimation    *BlendAnimation

	FireEvents []*StateMachineFireEvent
}

func (t *StateTransition) resolve(a *Artboard) error {
	for _, fe := range t.FireEvents {
		fe.Event = a.resolveObject(fe.EventID)
	}
	return nil
}

func (t *StateTransition) disabled() bool { return t.Flags.has(FlagDisabled) }

// mixTime converts Duration into seconds, resolving a percentage against
// fromState's animation duration when FlagDurationIsPercentage is set,
// grounded on StateTransition::mixTime.
func (t *StateTransition) mixTime(fromState *LayerState) float64 {
	if t.Duration == 0 {
		return 0
	}
	if t.Flags.has(FlagDurationIsPercentage) {
		var animDuration float64
		if fromState != nil && fromState.Kind == TypeAnimationState && fromState.Animation != nil {
			animDuration = fromState.Animation.durationSeconds()
		}
		return float64(t.Duration) / 100.0 * animDuration
	}
	return float64(t.Duration) / 1000.0
}

// exitTimeSeconds converts ExitTime into seconds against fromState's
// animation, grounded on StateTransition::exitTimeSeconds. absolute
// shifts the result by the animation's own work-area start, matching the
// "start" parameter's role in the original.
func (t *StateTransition) exitTimeSeconds(fromState *LayerState, absolute bool) float64 {
	if t.Flags.has(FlagExitTimeIsPercentage) {
		var animDuration, start float64
		if fromState != nil && fromState.Kind == TypeAnimationState && fromState.Animation != nil {
			if absolute {
				start = fromState.Animation.startSeconds()
			}
			animDuration = fromState.Animation.durationSeconds()
		}
		return start + float64(t.ExitTime)/100.0*animDuration
	}
	return float64(t.ExitTime) / 1000.0
}

// allowTransition is the three-way result of StateTransition.allowed:
// a transition may fire now, never (disabled or a condition failed), or
// be waiting on its exit-time gate (spec §4.8 "record waiting-for-exit
// and keep evaluating triggers").
type allowTransition uint8

const (
	transitionNo allowTransition = iota
	transitionYes
	transitionWaitingForExit
)

// allowed evaluates every condition and, if all pass, the exit-time
// gate, grounded on StateTransition::allowed. Condition evaluation never
// consumes a trigger input (spec §4.8 "they must not be consumed during
// the wait — only when the transition actually fires"); the caller
// consumes the triggers of a transition it actually takes via
// consumeTriggers.
func (t *StateTransition) allowed(from *StateInstance, inputOf func(uint32) *StateMachineInputInstance) allowTransition {
	if t.disabled() {
		return transitionNo
	}
	for _, c := range t.Conditions {
		input := inputOf(c.InputID)
		if !c.evaluate(input) {
			return transitionNo
		}
	}

	if t.Flags.has(FlagEnableExitTime) && from != nil && from.Animation != nil && from.State.Kind == TypeAnimationState {
		lastTime := from.Animation.lastTotalTime
		totalTime := from.Animation.totalTime
		exitTime := t.exitTimeSeconds(from.State, false)
		duration := from.State.Animation.durationSeconds()
		if duration > 0 && exitTime <= duration && from.State.Animation.LoopValue != LoopOneShot {
			exitTime += math.Floor(lastTime/duration) * duration
		}
		if totalTime < exitTime {
			return transitionWaitingForExit
		}
	}
	return transitionYes
}

// consumeTriggers clears every trigger input this transition's
// conditions reference, called only once the transition has actually
// been selected to fire (spec §4.8 "trigger conditions consume the
// trigger only on success").
func (t *StateTransition) consumeTriggers(inputOf func(uint32) *StateMachineInputInstance) {
	for _, c := range t.Conditions {
		if c.Kind != TypeTransitionTriggerCondition {
			continue
		}
		if in := inputOf(c.InputID); in != nil {
			in.consumeTrigger()
		}
	}
}
