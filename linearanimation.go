package rivecore

// Loop describes how a LinearAnimationInstance behaves once it reaches
// the end (or start, when playing backwards) of its work area, grounded
// on rive-runtime's Loop enum (spec §4.5 "oneShot / loop / pingPong").
type Loop uint8

const (
	LoopOneShot Loop = 0
	LoopLoop    Loop = 1
	LoopPingPong Loop = 2
)

// LinearAnimation is the immutable definition of a single timeline: its
// fps, duration, optional work-area trim, and the set of KeyedObject
// tracks it drives (spec §4.5), grounded on
// original_source/src/animation/linear_animation.cpp.
type LinearAnimation struct {
	Name             string
	FPS              uint32
	Duration         uint32
	Speed            float64
	LoopValue        Loop
	WorkStart        uint32
	WorkEnd          uint32
	EnableWorkArea   bool
	KeyedObjects     []*KeyedObject
}

func (a *LinearAnimation) resolve(ab *Artboard) error {
	for _, ko := range a.KeyedObjects {
		if err := ko.resolve(ab); err != nil {
			return err
		}
	}
	return nil
}

// startSeconds, endSeconds and durationSeconds mirror
// LinearAnimation::startSeconds/endSeconds/durationSeconds: the work
// area trims which portion of the full duration actually plays.
func (a *LinearAnimation) startSeconds() float64 {
	if a.EnableWorkArea {
		return float64(a.WorkStart) / float64(a.fpsOrOne())
	}
	return 0
}

func (a *LinearAnimation) endSeconds() float64 {
	if a.EnableWorkArea {
		return float64(a.WorkEnd) / float64(a.fpsOrOne())
	}
	return float64(a.Duration) / float64(a.fpsOrOne())
}

func (a *LinearAnimation) durationSeconds() float64 {
	return a.endSeconds() - a.startSeconds()
}

func (a *LinearAnimation) fpsOrOne() uint32 {
	if a.FPS == 0 {
		return 1
	}
	return a.FPS
}

// apply evaluates every keyed object track at time (absolute seconds
// into the full, untrimmed timeline) and writes the result into the
// artboard's object graph, blended by mix.
func (a *LinearAnimation) apply(time, mix float64) {
	for _, ko := range a.KeyedObjects {
		ko.apply(time, mix)
	}
}

// reportEvents collects callback-property firings between two points on
// the timeline (spec §4.8's fire-event semantics as applied to plain
// keyframe callbacks, distinct from StateMachineFireEvent's atStart/
// atEnd marker).
func (a *LinearAnimation) reportEvents(fromSeconds, toSeconds float64, fired *[]CallbackReport) {
	for _, ko := range a.KeyedObjects {
		ko.reportKeyedCallbacks(fromSeconds, toSeconds, fired)
	}
}
