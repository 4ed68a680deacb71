package rivecore

import "github.com/tanema/gween/ease"

// interpolationType values, grounded on rive-runtime's KeyFrame
// interpolation enum (0=hold, 1=linear, 2=cubic via a referenced
// CubicInterpolator object).
const (
	interpolationHold   = 0
	interpolationLinear = 1
	interpolationCubic  = 2
)

// Keyframe is one timed sample within a KeyedProperty's track (spec
// §4.5), grounded on original_source/src/animation/keyframe.cpp. The
// value itself is stored untyped (any, matching the property's
// FieldType) since rivecore does not generate a distinct Go type per
// KeyFrameDouble/KeyFrameColor/KeyFrameBool/KeyFrameString/KeyFrameID —
// one Keyframe struct whose Value's dynamic type plays all of their roles.
type Keyframe struct {
	Frame             uint32
	Seconds           float64
	InterpolationType int
	InterpolatorID    uint32
	Interpolator      *Object // resolved CubicInterpolator, if InterpolationType == interpolationCubic
	Value             any
}

// computeSeconds derives Seconds from Frame and the owning animation's
// fps, grounded on keyframe.cpp's computeSeconds(fps).
func (k *Keyframe) computeSeconds(fps uint32) {
	if fps == 0 {
		fps = 1
	}
	k.Seconds = float64(k.Frame) / float64(fps)
}

// apply writes this keyframe's held value onto object's property key,
// blending with mix (0 leaves the object untouched, 1 fully applies),
// grounded on the hold-frame branch of KeyedProperty::apply.
func (k *Keyframe) apply(o *Object, key PropertyKey, mix float64) {
	applyMixedValue(o, key, k.Value, mix)
}

// applyInterpolation blends k and the following keyframe "to" at the
// given seconds, passing through k's own cubic interpolator (k.Interpolator)
// when present. Id keyframes (uint32 values) hold k's value. Grounded on KeyFrame::applyInterpolation (not in the retrieved source
// subset by name, but its call site in keyed_property.cpp shows its
// signature and role).
func (k *Keyframe) applyInterpolation(o *Object, key PropertyKey, seconds float64, to *Keyframe, mix float64) {
	if _, isID := k.Value.(uint32); isID {
		k.apply(o, key, mix)
		return
	}
	span := to.Seconds - k.Seconds
	var f float64
	if span > 0 {
		// The plain linear (non-cubic) keyframe-to-keyframe progress is one
		// instance of a Penner-style tween factor: elapsed-over-duration,
		// begin 0, change 1. ease.Linear is the same c*t/d+b shape the
		// teacher's TweenGroup hands to gween.New (animation.go).
		f = float64(ease.Linear(float32(seconds-k.Seconds), 0, 1, float32(span)))
	}
	if k.InterpolationType == interpolationCubic && k.Interpolator != nil {
		f = interpolate(k.Interpolator, f)
	}
	value := mixValues(k.Value, to.Value, f)
	applyMixedValue(o, key, value, mix)
}

// mixValues linearly blends two keyframe values at factor f in [0,1].
// Non-float values (bool, string, Color, uint32) do not blend; they
// snap to "to" once f reaches 0.5.
func mixValues(from, to any, f float64) any {
	switch a := from.(type) {
	case float32:
		b, ok := to.(float32)
		if !ok {
			return from
		}
		return a + (b-a)*float32(f)
	case float64:
		b, ok := to.(float64)
		if !ok {
			return from
		}
		return a + (b-a)*f
	default:
		if f >= 0.5 {
			return to
		}
		return from
	}
}

// applyMixedValue writes value onto o's property, itself blended against
// the property's current value by mix (the animation instance's own
// weight when multiple animations drive the same artboard, spec §4.6
// "state machines mix concurrently playing animations").
func applyMixedValue(o *Object, key PropertyKey, value any, mix float64) {
	if mix >= 1 {
		SetProperty(o, key, value)
		return
	}
	if mix <= 0 {
		return
	}
	current, ok := GetProperty(o, key)
	if !ok {
		SetProperty(o, key, value)
		return
	}
	SetProperty(o, key, mixValues(current, value, mix))
}
