package rivecore

import "math"

// TranslationConstraint and ScaleConstraint are the two Advancer
// implementations component.go's doc comment promises: each copies the
// target object's world translation (or world scale) onto its owning
// Object's WorldTransform, clamped to the object's constraintMin/Max
// range (a 0/0 range means no clamp), applied once per Advance after the
// dependency DAG has settled (constraint.go, spec §9 supplemented
// feature), grounded on original_source/src/constraints/
// translation_constraint.cpp and scale_constraint.cpp.
//
// Both wrap an *Object rather than adding constraint-only fields to every
// Object (object.go already carries the handful of fields these two
// share: ConstraintTargetID, constraintKind, constraintMinX/MaxX/MinY/
// MaxY), matching the flat-struct, type-dispatched-by-registry design the
// rest of this port uses.
type constraint struct {
	object *Object
	artboard *Artboard
}

func newConstraintAdvancer(o *Object, a *Artboard) Advancer {
	switch o.constraintKind {
	case TypeTranslationConstraint:
		return &TranslationConstraint{constraint{object: o, artboard: a}}
	case TypeScaleConstraint:
		return &ScaleConstraint{constraint{object: o, artboard: a}}
	default:
		return nil
	}
}

// target resolves ConstraintTargetID lazily, tolerating a target declared
// later in the object table than the constraint itself (artboard.go's
// resolveObjectRefs defers this for exactly that reason).
func (c *constraint) target() *Object {
	return c.artboard.resolveObject(c.object.ConstraintTargetID)
}

// CanApplyBeforeUpdate reports false for both constraint kinds: they read
// the target's settled WorldTransform, so they must run after the
// dependency DAG update pass, not before it.
func (c *constraint) CanApplyBeforeUpdate() bool { return false }

// TranslationConstraint sets its object's world X/Y to the target
// object's world translation, clamped per axis to constraintMinX/MaxX
// and constraintMinY/MaxY, grounded on
// TranslationConstraint::constrain.
type TranslationConstraint struct{ constraint }

func (c *TranslationConstraint) Apply(artboard *Artboard) {
	target := c.target()
	if target == nil {
		return
	}
	o := c.object
	x, y := target.WorldTransform[4], target.WorldTransform[5]
	if clampedX := clampValue(x, o.constraintMinX, o.constraintMaxX); clampedX != o.WorldTransform[4] {
		o.WorldTransform[4] = clampedX
	}
	if clampedY := clampValue(y, o.constraintMinY, o.constraintMaxY); clampedY != o.WorldTransform[5] {
		o.WorldTransform[5] = clampedY
	}
}

// ScaleConstraint rescales its object's world basis vectors to the
// target's world scale factors (read off the target transform's basis
// vectors), clamped per axis to the object's min/max range, grounded on
// ScaleConstraint::constrain.
type ScaleConstraint struct{ constraint }

func (c *ScaleConstraint) Apply(artboard *Artboard) {
	target := c.target()
	if target == nil {
		return
	}
	o := c.object
	sx := scaleOfColumn(target.WorldTransform[0], target.WorldTransform[1])
	sy := scaleOfColumn(target.WorldTransform[2], target.WorldTransform[3])
	clampedSX := clampValue(sx, o.constraintMinX, o.constraintMaxX)
	clampedSY := clampValue(sy, o.constraintMinY, o.constraintMaxY)
	rescaleColumn(&o.WorldTransform[0], &o.WorldTransform[1], clampedSX)
	rescaleColumn(&o.WorldTransform[2], &o.WorldTransform[3], clampedSY)
}

func clampValue(v, min, max float64) float64 {
	if min == 0 && max == 0 {
		return v // no clamp range configured
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func scaleOfColumn(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

func rescaleColumn(a, b *float64, newScale float64) {
	current := scaleOfColumn(*a, *b)
	if current == 0 {
		return
	}
	ratio := newScale / current
	*a *= ratio
	*b *= ratio
}
