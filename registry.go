package rivecore

// registry.go is the compiled schema's runtime counterpart: it supplies,
// for every PropertyKey, how to read and write it on an Object, and for
// every TypeKey, how to construct a fresh Object (spec §4.2 "the registry
// supplies ... get/set accessors, and the field-type id"). Generated in
// rive-runtime's real build by a code generator; this port hand-writes
// the subset the schema above declares, following the teacher's
// constructor-table idiom (scene.go's entity archetype registration).

// newObject constructs a bare Object of the given type with the common
// defaults every transform-bearing entity needs (unit scale, opaque).
func newObject(t TypeKey) *Object {
	return &Object{
		Type:    t,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
	}
}

// propertyAccessor binds a PropertyKey to a typed get/set pair over
// Object. get/set operate on `any` holding the Go-native value matching
// the property's FieldType (uint32, int32, float32, bool, Color, string,
// []byte); callback properties have no accessor here and are reported
// through KeyedObject.reportKeyedCallbacks (keyedobject.go) instead.
type propertyAccessor struct {
	get func(o *Object) any
	set func(o *Object, v any) bool // returns true if the value actually changed
}

var propertyAccessors = map[PropertyKey]propertyAccessor{
	PropName: {
		get: func(o *Object) any { return o.Name },
		set: func(o *Object, v any) bool {
			s := v.(string)
			if o.Name == s {
				return false
			}
			o.Name = s
			return true
		},
	},
	PropIsHidden: {
		get: func(o *Object) any { return o.IsCollapsed() },
		set: func(o *Object, v any) bool { return o.Collapse(v.(bool)) },
	},
	PropWidth: {
		get: func(o *Object) any { return float32(o.Width) },
		set: func(o *Object, v any) bool { return setFloatField(&o.Width, v, nil) },
	},
	PropHeight: {
		get: func(o *Object) any { return float32(o.Height) },
		set: func(o *Object, v any) bool { return setFloatField(&o.Height, v, nil) },
	},
	PropOriginX: {
		get: func(o *Object) any { return float32(o.OriginX) },
		set: func(o *Object, v any) bool { return setFloatField(&o.OriginX, v, nil) },
	},
	PropOriginY: {
		get: func(o *Object) any { return float32(o.OriginY) },
		set: func(o *Object, v any) bool { return setFloatField(&o.OriginY, v, nil) },
	},
	PropX: {
		get: func(o *Object) any { return float32(o.X) },
		set: func(o *Object, v any) bool { return setFloatField(&o.X, v, o.MarkTransformDirty) },
	},
	PropY: {
		get: func(o *Object) any { return float32(o.Y) },
		set: func(o *Object, v any) bool { return setFloatField(&o.Y, v, o.MarkTransformDirty) },
	},
	PropRotation: {
		get: func(o *Object) any { return float32(o.Rotation) },
		set: func(o *Object, v any) bool { return setFloatField(&o.Rotation, v, o.MarkTransformDirty) },
	},
	PropScaleX: {
		get: func(o *Object) any { return float32(o.ScaleX) },
		set: func(o *Object, v any) bool { return setFloatField(&o.ScaleX, v, o.MarkTransformDirty) },
	},
	PropScaleY: {
		get: func(o *Object) any { return float32(o.ScaleY) },
		set: func(o *Object, v any) bool { return setFloatField(&o.ScaleY, v, o.MarkTransformDirty) },
	},
	PropOpacity: {
		get: func(o *Object) any { return float32(o.Opacity) },
		set: func(o *Object, v any) bool {
			return setFloatField(&o.Opacity, v, func() { o.AddDirt(RenderOpacity, true) })
		},
	},
	PropX1: {
		get: func(o *Object) any { return float32(o.InterpX1) },
		set: func(o *Object, v any) bool { return setFloatField(&o.InterpX1, v, nil) },
	},
	PropY1: {
		get: func(o *Object) any { return float32(o.InterpY1) },
		set: func(o *Object, v any) bool { return setFloatField(&o.InterpY1, v, nil) },
	},
	PropX2: {
		get: func(o *Object) any { return float32(o.InterpX2) },
		set: func(o *Object, v any) bool { return setFloatField(&o.InterpX2, v, nil) },
	},
	PropY2: {
		get: func(o *Object) any { return float32(o.InterpY2) },
		set: func(o *Object, v any) bool { return setFloatField(&o.InterpY2, v, nil) },
	},
	PropNestedArtboardID: {
		get: func(o *Object) any { return o.NestedArtboardID },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.NestedArtboardID == id {
				return false
			}
			o.NestedArtboardID = id
			return true
		},
	},
	PropAssetID: {
		get: func(o *Object) any { return o.AssetID },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.AssetID == id {
				return false
			}
			o.AssetID = id
			return true
		},
	},
	PropIsPlaying: {
		get: func(o *Object) any { return o.IsPlaying },
		set: func(o *Object, v any) bool {
			b := v.(bool)
			if o.IsPlaying == b {
				return false
			}
			o.IsPlaying = b
			return true
		},
	},
	PropTargetDrawableID: {
		get: func(o *Object) any { return o.TargetDrawableID },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.TargetDrawableID == id {
				return false
			}
			o.TargetDrawableID = id
			return true
		},
	},
	PropPlacementValue: {
		get: func(o *Object) any { return o.PlacementValue },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.PlacementValue == id {
				return false
			}
			o.PlacementValue = id
			o.AddDirt(DrawOrder, false)
			return true
		},
	},
	PropDrawTargetID: {
		get: func(o *Object) any { return o.DrawTargetID },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.DrawTargetID == id {
				return false
			}
			o.DrawTargetID = id
			o.AddDirt(DrawOrder, false)
			return true
		},
	},
	PropConstraintTargetID: {
		get: func(o *Object) any { return o.ConstraintTargetID },
		set: func(o *Object, v any) bool {
			id := v.(uint32)
			if o.ConstraintTargetID == id {
				return false
			}
			o.ConstraintTargetID = id
			return true
		},
	},
	PropConstraintMinX: {
		get: func(o *Object) any { return float32(o.constraintMinX) },
		set: func(o *Object, v any) bool { return setFloatField(&o.constraintMinX, v, nil) },
	},
	PropConstraintMaxX: {
		get: func(o *Object) any { return float32(o.constraintMaxX) },
		set: func(o *Object, v any) bool { return setFloatField(&o.constraintMaxX, v, nil) },
	},
	PropConstraintMinY: {
		get: func(o *Object) any { return float32(o.constraintMinY) },
		set: func(o *Object, v any) bool { return setFloatField(&o.constraintMinY, v, nil) },
	},
	PropConstraintMaxY: {
		get: func(o *Object) any { return float32(o.constraintMaxY) },
		set: func(o *Object, v any) bool { return setFloatField(&o.constraintMaxY, v, nil) },
	},
}

// setFloatField writes v (a float32, per the wire's 4-byte float field
// type) into *field if it differs, invoking onChange when it does. Used
// by every float-backed accessor above to avoid repeating the
// compare-then-assign boilerplate.
func setFloatField(field *float64, v any, onChange func()) bool {
	f := float64(v.(float32))
	if *field == f {
		return false
	}
	*field = f
	if onChange != nil {
		onChange()
	}
	return true
}

// GetProperty reads a property's current value off o. ok is false if the
// registry has no accessor for key (unknown or callback-only property).
func GetProperty(o *Object, key PropertyKey) (value any, ok bool) {
	acc, found := propertyAccessors[key]
	if !found {
		return nil, false
	}
	return acc.get(o), true
}

// SetProperty writes value into the property named by key on o, applying
// the property's own change-propagation (transform dirt, render-opacity
// dirt, collapse). Returns whether the registry has an accessor for key
// (not whether the value changed — callers needing that use the
// accessor's own return, propertyAccessors[key].set).
func SetProperty(o *Object, key PropertyKey, value any) bool {
	acc, found := propertyAccessors[key]
	if !found {
		return false
	}
	acc.set(o, value)
	return true
}

// objectSupportsProperty reports whether key makes sense on an object of
// type t, used by KeyedObject.resolve to validate a keyed track
// against the artboard it was imported into (spec §9 supplemented
// feature, grounded on original_source/src/animation/keyed_object.cpp's
// object-type check at import time).
func objectSupportsProperty(t TypeKey, key PropertyKey) bool {
	switch key {
	case PropX, PropY, PropRotation, PropScaleX, PropScaleY, PropOpacity:
		return isTypeOf(t, TypeContainerComponent) || isTypeOf(t, TypeNode) || t == TypeArtboard
	case PropWidth, PropHeight, PropOriginX, PropOriginY:
		return t == TypeArtboard
	case PropX1, PropY1, PropX2, PropY2:
		return t == TypeCubicValueInterpolator || t == TypeCubicEaseInterpolator
	case PropNestedArtboardID:
		return t == TypeNestedArtboard
	case PropAssetID, PropIsPlaying:
		return t == TypeAudioEvent
	case PropTargetDrawableID:
		return t == TypeDrawRules
	case PropDrawTargetID:
		return isTypeOf(t, TypeDrawable)
	case PropPlacementValue:
		return t == TypeDrawTarget
	case PropConstraintTargetID, PropConstraintMinX, PropConstraintMaxX, PropConstraintMinY, PropConstraintMaxY:
		return t == TypeTranslationConstraint || t == TypeScaleConstraint
	case PropIsHidden, PropName:
		return true
	default:
		_, ok := fieldTypeOf[key]
		return ok
	}
}
