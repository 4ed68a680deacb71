package rivecore

import "fmt"

// KeyedObject binds a list of KeyedProperty tracks to a single object
// in the artboard's object table, identified by ObjectID (spec §4.5),
// grounded on original_source/src/animation/keyed_object.cpp.
type KeyedObject struct {
	ObjectID   uint32
	Object     *Object
	Properties []*KeyedProperty
}

// resolve looks up ObjectID in the owning artboard and validates every
// property track against the resolved object's type, grounded on the
// object-type check rive's KeyedObject::onAddedDirty performs before
// accepting a track (spec §9 supplemented feature).
func (k *KeyedObject) resolve(a *Artboard) error {
	obj := a.resolveObject(k.ObjectID)
	if obj == nil {
		return fmt.Errorf("rivecore: keyed object references missing object %d", k.ObjectID)
	}
	for _, prop := range k.Properties {
		if !isCallbackProperty(prop.Key) && !objectSupportsProperty(obj.Type, prop.Key) {
			return statusErr(StatusInvalidObject, fmt.Errorf("property %d does not apply to object type %d", prop.Key, obj.Type))
		}
		for _, kf := range prop.Frames {
			if kf.InterpolationType == interpolationCubic {
				kf.Interpolator = a.resolveObject(kf.InterpolatorID)
			}
		}
	}
	k.Object = obj
	return nil
}

// apply evaluates every property track at seconds and writes the result
// onto the bound object, blended by mix.
func (k *KeyedObject) apply(seconds, mix float64) {
	if k.Object == nil {
		return
	}
	for _, prop := range k.Properties {
		if isCallbackProperty(prop.Key) {
			continue // callbacks fire via reportKeyedCallbacks, not apply
		}
		prop.apply(k.Object, seconds, mix)
	}
}

// reportKeyedCallbacks fires any callback-typed property whose keyframe
// falls strictly between fromSeconds (exclusive) and toSeconds
// (inclusive), appending to fired. When toSeconds < fromSeconds (playing
// backwards) it scans the reversed span itself: frames below fromSeconds
// and at or above toSeconds fire.
func (k *KeyedObject) reportKeyedCallbacks(fromSeconds, toSeconds float64, fired *[]CallbackReport) {
	if k.Object == nil {
		return
	}
	forward := toSeconds >= fromSeconds
	for _, prop := range k.Properties {
		if !isCallbackProperty(prop.Key) {
			continue
		}
		for _, frame := range prop.Frames {
			var inRange bool
			if forward {
				inRange = frame.Seconds > fromSeconds && frame.Seconds <= toSeconds
			} else {
				inRange = frame.Seconds < fromSeconds && frame.Seconds >= toSeconds
			}
			if inRange {
				*fired = append(*fired, CallbackReport{Object: k.Object, Key: prop.Key})
			}
		}
	}
}

// CallbackReport records a single callback-property firing during an
// animation advance (spec §4.8's event/callback reporting surface).
type CallbackReport struct {
	Object *Object
	Key    PropertyKey
}
