package rivecore

// KeyedProperty is a single animated property track on a KeyedObject —
// one PropertyKey paired with a time-ordered list of Keyframes (spec
// §4.5), grounded on original_source/src/animation/keyed_property.cpp.
type KeyedProperty struct {
	Key    PropertyKey
	Frames []*Keyframe
}

// apply evaluates this track at seconds and writes the result onto
// object, blended by mix. Direct transliteration of
// KeyedProperty::apply's binary search, kept as a binary search (rather
// than a linear scan) because artboards commonly carry animations with
// hundreds of keyframes on a single property and apply runs once per
// advance for every active property track.
func (p *KeyedProperty) apply(object *Object, seconds float64, mix float64) {
	if len(p.Frames) == 0 {
		return
	}

	idx := 0
	start, end := 0, len(p.Frames)-1
	for start <= end {
		mid := (start + end) >> 1
		closest := p.Frames[mid].Seconds
		if closest < seconds {
			start = mid + 1
		} else if closest > seconds {
			end = mid - 1
		} else {
			idx = mid
			break
		}
		idx = start
	}

	switch {
	case idx == 0:
		p.Frames[0].apply(object, p.Key, mix)
	case idx < len(p.Frames):
		from := p.Frames[idx-1]
		to := p.Frames[idx]
		switch {
		case seconds == to.Seconds:
			to.apply(object, p.Key, mix)
		case from.InterpolationType == interpolationHold:
			from.apply(object, p.Key, mix)
		default:
			from.applyInterpolation(object, p.Key, seconds, to, mix)
		}
	default:
		p.Frames[len(p.Frames)-1].apply(object, p.Key, mix)
	}
}
