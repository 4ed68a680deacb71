package rivecore

import "math"

// LinearAnimationInstance is a playback cursor over a shared
// LinearAnimation definition (spec §4.6), grounded on the "owns a time
// cursor in seconds, a direction, a didLoop flag" description in spec
// §3 and modeled after the teacher's TweenGroup cursor bookkeeping in
// animation.go.
type LinearAnimationInstance struct {
	Animation *LinearAnimation
	Time      float64
	Direction float64 // +1 or -1
	DidLoop   bool

	// totalTime/lastTotalTime track unwrapped elapsed seconds (never reset
	// by looping), used by StateTransition.allowed to bring a percentage
	// exit-time up to the loop iteration lastTime was in, grounded on
	// StateTransition::allowed's use of exitTimeAnimationInstance's
	// lastTotalTime()/totalTime().
	totalTime     float64
	lastTotalTime float64
}

// NewLinearAnimationInstance creates a cursor parked at the animation's
// start, playing forward.
func NewLinearAnimationInstance(a *LinearAnimation) *LinearAnimationInstance {
	inst := &LinearAnimationInstance{Animation: a, Direction: 1}
	inst.Time = a.startSeconds()
	return inst
}

// Advance moves the cursor by dt*speed*direction and applies the loop
// rule for the animation's LoopValue, grounded verbatim on spec §4.6:
//
//	oneShot: clamp at [start, end]; when clamped, mark didLoop and freeze.
//	loop: wrap into [start, end] modulo duration; set didLoop when wrapping.
//	pingPong: on overshoot past end, reflect and flip direction; symmetric for start.
//
// Returns true if the cursor moved (advance had any effect); callers use
// this as part of keepGoing() (spec §4.8 "any animation is not at rest").
func (inst *LinearAnimationInstance) Advance(dt float64) bool {
	a := inst.Animation
	inst.DidLoop = false
	start := a.startSeconds()
	end := a.endSeconds()
	duration := end - start
	if duration <= 0 {
		return false
	}

	before := inst.Time
	inst.lastTotalTime = inst.totalTime
	inst.totalTime += math.Abs(dt * a.Speed)
	inst.Time += dt * a.Speed * inst.Direction

	switch a.LoopValue {
	case LoopOneShot:
		if inst.Time >= end {
			inst.Time = end
			inst.DidLoop = true
		} else if inst.Time <= start {
			inst.Time = start
			inst.DidLoop = true
		}
	case LoopLoop:
		for inst.Time > end {
			inst.Time -= duration
			inst.DidLoop = true
		}
		for inst.Time < start {
			inst.Time += duration
			inst.DidLoop = true
		}
	case LoopPingPong:
		for inst.Time > end || inst.Time < start {
			if inst.Time > end {
				inst.Time = end - (inst.Time - end)
				inst.Direction = -inst.Direction
			}
			if inst.Time < start {
				inst.Time = start + (start - inst.Time)
				inst.Direction = -inst.Direction
			}
			inst.DidLoop = true
		}
	}

	return inst.Time != before
}

// Apply evaluates the animation at the current time, blended by mix, and
// writes the result into the artboard's object graph (spec §4.6
// "apply(mix) iterates keyed objects...").
func (inst *LinearAnimationInstance) Apply(mix float64) {
	inst.Animation.apply(inst.Time, mix)
}

// IsAtRest reports whether the cursor has stopped moving: only ever true
// for a clamped one-shot animation, used by StateMachineInstance.keepGoing.
func (inst *LinearAnimationInstance) IsAtRest() bool {
	return inst.Animation.LoopValue == LoopOneShot && inst.DidLoop
}
