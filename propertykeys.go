package rivecore

// PropertyKey identifies a property globally across the whole schema (spec
// §3: "Property keys are globally unique across the schema"). As with
// TypeKey, values annotated "grounded" reproduce the numeric property keys
// found in rive-runtime's generated headers (original_source/); the rest
// are this port's own assignment.
type PropertyKey uint16

const (
	// Core object fields.
	PropName     PropertyKey = 4  // assigned
	PropParentID PropertyKey = 5  // assigned
	PropIsHidden PropertyKey = 6  // assigned (collapse flag persisted on load)

	// Artboard.
	PropWidth   PropertyKey = 7
	PropHeight  PropertyKey = 8
	PropOriginX PropertyKey = 9
	PropOriginY PropertyKey = 10

	// Node / transform (shared by any ContainerComponent).
	PropX        PropertyKey = 11
	PropY        PropertyKey = 12
	PropRotation PropertyKey = 13
	PropScaleX   PropertyKey = 14
	PropScaleY   PropertyKey = 15
	PropOpacity  PropertyKey = 16

	// LinearAnimation.
	PropFPS            PropertyKey = 20
	PropDuration       PropertyKey = 21
	PropSpeed          PropertyKey = 199 // grounded
	PropLoopValue      PropertyKey = 22
	PropWorkStart      PropertyKey = 23
	PropWorkEnd        PropertyKey = 24
	PropEnableWorkArea PropertyKey = 25

	// KeyedObject / KeyedProperty / KeyFrame.
	PropObjectID          PropertyKey = 30
	PropPropertyKeyField  PropertyKey = 31 // the keyed property's target property key
	PropFrame             PropertyKey = 32
	PropInterpolationType PropertyKey = 33
	PropInterpolatorID    PropertyKey = 34
	PropKeyFrameValue     PropertyKey = 166 // grounded (generic typed value slot)

	// CubicInterpolator control points.
	PropX1 PropertyKey = 35
	PropY1 PropertyKey = 36
	PropX2 PropertyKey = 37
	PropY2 PropertyKey = 38

	// StateMachine / layer / states.
	PropLayerSpeed PropertyKey = 45

	// StateTransition.
	PropStateToID        PropertyKey = 46
	PropTransitionDur     PropertyKey = 47
	PropExitTime          PropertyKey = 48
	PropTransitionFlags   PropertyKey = 49
	PropTransitionInterp  PropertyKey = 240 // grounded (reused targetId slot repurposed)

	// Transition conditions.
	PropConditionInputID PropertyKey = 227 // grounded
	PropConditionOp      PropertyKey = 90
	PropConditionValue    PropertyKey = 228 // grounded

	// State machine inputs (bool/number/trigger definitions).
	PropInputDefault PropertyKey = 91

	// BlendState1D / BlendAnimation entries.
	PropBlendInputID  PropertyKey = 76  // grounded (input reference id)
	PropBlendValue    PropertyKey = 229 // grounded
	PropBlendMix      PropertyKey = 200 // grounded
	PropBlendAnimID   PropertyKey = 165 // grounded (referenced LinearAnimation id)

	// Listeners.
	PropListenerTargetID  PropertyKey = 224 // grounded
	PropListenerTypeVal   PropertyKey = 225 // grounded
	PropListenerEventID   PropertyKey = 399 // grounded
	PropActionInputID     PropertyKey = 167 // grounded
	PropListenerBoolValue PropertyKey = 396 // grounded (ListenerBoolChange's tri-state value)
	PropListenerNumValue  PropertyKey = 394 // grounded (ListenerNumberChange's value)
	PropAlignTargetID     PropertyKey = 398 // grounded (ListenerAlignTarget's own target, distinct from the listener's)

	// Events / fire-event records.
	PropFireEventID       PropertyKey = 392 // grounded
	PropFireEventOccurs   PropertyKey = 393 // grounded (0=atStart,1=atEnd)

	// Audio.
	PropAssetID    PropertyKey = 408 // grounded
	PropIsPlaying  PropertyKey = 201 // grounded

	// Draw rules / draw target.
	PropTargetDrawableID PropertyKey = 150 // assigned
	PropPlacementValue   PropertyKey = 151 // assigned
	PropDrawTargetID     PropertyKey = 152 // assigned (a Drawable's own active-target back-reference)

	// Constraint.
	PropConstraintTargetID PropertyKey = 153 // assigned
	PropConstraintMinX     PropertyKey = 154 // assigned
	PropConstraintMaxX     PropertyKey = 155 // assigned
	PropConstraintMinY     PropertyKey = 156 // assigned
	PropConstraintMaxY     PropertyKey = 157 // assigned

	// Nested artboard / nested animation / nested input.
	PropNestedArtboardID PropertyKey = 197 // grounded
	PropNestedAnimID     PropertyKey = 165 // grounded (shared slot w/ blend anim id; different owning types)
	PropNestedTime       PropertyKey = 202 // grounded
	PropNestedInputID    PropertyKey = 400 // grounded
	PropNestedValue      PropertyKey = 238 // grounded

	// A callback property used by the bullet-man style "fire" trigger tests;
	// callbacks do not apply ordinary keyframes (spec §4.2) and instead fire.
	PropTriggerFire PropertyKey = 395 // grounded
)

// fieldTypeOf reports the wire field type for every property key known to
// the compiled schema (spec §4.2 "the registry supplies ... the field-type
// id"). Properties not present here are either callbacks (looked up via
// isCallbackProperty) or fully unknown to this build.
var fieldTypeOf = map[PropertyKey]FieldType{
	PropName:     FieldTypeString,
	PropParentID: FieldTypeUint,
	PropIsHidden: FieldTypeBool,

	PropWidth:   FieldTypeFloat,
	PropHeight:  FieldTypeFloat,
	PropOriginX: FieldTypeFloat,
	PropOriginY: FieldTypeFloat,

	PropX:        FieldTypeFloat,
	PropY:        FieldTypeFloat,
	PropRotation: FieldTypeFloat,
	PropScaleX:   FieldTypeFloat,
	PropScaleY:   FieldTypeFloat,
	PropOpacity:  FieldTypeFloat,

	PropFPS:            FieldTypeUint,
	PropDuration:       FieldTypeUint,
	PropSpeed:          FieldTypeFloat,
	PropLoopValue:      FieldTypeUint,
	PropWorkStart:      FieldTypeUint,
	PropWorkEnd:        FieldTypeUint,
	PropEnableWorkArea: FieldTypeBool,

	PropObjectID:         FieldTypeUint,
	PropPropertyKeyField: FieldTypeUint,
	PropFrame:            FieldTypeUint,
	PropInterpolationType: FieldTypeUint,
	PropInterpolatorID:    FieldTypeUint,
	PropKeyFrameValue:     FieldTypeFloat, // typed keyframes override via their own decode

	PropX1: FieldTypeFloat,
	PropY1: FieldTypeFloat,
	PropX2: FieldTypeFloat,
	PropY2: FieldTypeFloat,

	PropLayerSpeed: FieldTypeFloat,

	PropStateToID:       FieldTypeUint,
	PropTransitionDur:   FieldTypeUint,
	PropExitTime:        FieldTypeUint,
	PropTransitionFlags: FieldTypeUint,
	PropTransitionInterp: FieldTypeUint,

	PropConditionInputID: FieldTypeUint,
	PropConditionOp:      FieldTypeUint,
	PropConditionValue:   FieldTypeFloat,

	PropInputDefault: FieldTypeFloat,

	PropBlendInputID: FieldTypeUint,
	PropBlendValue:   FieldTypeFloat,
	PropBlendMix:     FieldTypeFloat,
	PropBlendAnimID:  FieldTypeUint,

	PropListenerTargetID:  FieldTypeUint,
	PropListenerTypeVal:   FieldTypeUint,
	PropListenerEventID:   FieldTypeUint,
	PropActionInputID:     FieldTypeUint,
	PropListenerBoolValue: FieldTypeUint,
	PropListenerNumValue:  FieldTypeFloat,
	PropAlignTargetID:     FieldTypeUint,

	PropFireEventID:     FieldTypeUint,
	PropFireEventOccurs: FieldTypeUint,

	PropAssetID:   FieldTypeUint,
	PropIsPlaying: FieldTypeBool,

	PropTargetDrawableID:   FieldTypeUint,
	PropPlacementValue:     FieldTypeUint,
	PropDrawTargetID:       FieldTypeUint,
	PropConstraintTargetID: FieldTypeUint,
	PropConstraintMinX:     FieldTypeFloat,
	PropConstraintMaxX:     FieldTypeFloat,
	PropConstraintMinY:     FieldTypeFloat,
	PropConstraintMaxY:     FieldTypeFloat,

	PropNestedArtboardID: FieldTypeUint,
	// PropNestedAnimID shares key 165 with PropBlendAnimID (FieldTypeUint above).
	PropNestedTime:       FieldTypeFloat,
	PropNestedInputID:    FieldTypeUint,
	PropNestedValue:      FieldTypeFloat,

	PropTriggerFire: FieldTypeCallback,
}

// isCallbackProperty reports whether a property is a callback: ordinary
// keyframes never apply to it, it only fires (spec §3, §4.2, §4.8).
func isCallbackProperty(key PropertyKey) bool {
	return fieldTypeOf[key] == FieldTypeCallback
}
