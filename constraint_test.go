package rivecore

import "testing"

func newConstrainedArtboard(t *testing.T, kind TypeKey) (*Artboard, *Object, *Object) {
	t.Helper()
	ab := NewArtboard()
	target := newObject(TypeNode)
	ab.addObject(target) // id 0

	c := newObject(kind)
	c.constraintKind = kind
	c.ConstraintTargetID = target.ID
	ab.addObject(c) // id 1

	return ab, target, c
}

func TestNewConstraintAdvancer(t *testing.T) {
	ab, _, c := newConstrainedArtboard(t, TypeTranslationConstraint)
	adv := newConstraintAdvancer(c, ab)
	if adv == nil {
		t.Fatal("newConstraintAdvancer returned nil for TypeTranslationConstraint")
	}
	if _, ok := adv.(*TranslationConstraint); !ok {
		t.Fatalf("got %T, want *TranslationConstraint", adv)
	}

	ab2, _, c2 := newConstrainedArtboard(t, TypeScaleConstraint)
	adv2 := newConstraintAdvancer(c2, ab2)
	if _, ok := adv2.(*ScaleConstraint); !ok {
		t.Fatalf("got %T, want *ScaleConstraint", adv2)
	}

	other := newObject(TypeNode)
	if newConstraintAdvancer(other, ab) != nil {
		t.Error("newConstraintAdvancer should return nil for a non-constraint type")
	}
}

func TestConstraint_CanApplyBeforeUpdate(t *testing.T) {
	_, _, c := newConstrainedArtboard(t, TypeTranslationConstraint)
	adv := newConstraintAdvancer(c, nil).(*TranslationConstraint)
	if adv.CanApplyBeforeUpdate() {
		t.Error("constraints should apply after the normal update pass")
	}
	_ = c
}

func TestTranslationConstraint_ClampsToBounds(t *testing.T) {
	ab, target, c := newConstrainedArtboard(t, TypeTranslationConstraint)
	c.constraintMinX, c.constraintMaxX = -10, 10
	c.constraintMinY, c.constraintMaxY = -5, 5

	target.WorldTransform = [6]float64{1, 0, 0, 1, 100, -100}
	c.WorldTransform = [6]float64{1, 0, 0, 1, 0, 0}

	adv := newConstraintAdvancer(c, ab)
	adv.Apply(ab)

	if c.WorldTransform[4] != 10 {
		t.Errorf("clamped X = %v, want 10", c.WorldTransform[4])
	}
	if c.WorldTransform[5] != -5 {
		t.Errorf("clamped Y = %v, want -5", c.WorldTransform[5])
	}
}

func TestTranslationConstraint_ZeroBoundsIsNoClamp(t *testing.T) {
	ab, target, c := newConstrainedArtboard(t, TypeTranslationConstraint)
	// min == max == 0 means "unconfigured", treated as unclamped.
	target.WorldTransform = [6]float64{1, 0, 0, 1, 42, 99}
	c.WorldTransform = [6]float64{1, 0, 0, 1, 0, 0}

	adv := newConstraintAdvancer(c, ab)
	adv.Apply(ab)

	if c.WorldTransform[4] != 42 || c.WorldTransform[5] != 99 {
		t.Errorf("WorldTransform = %v, want target's unclamped position", c.WorldTransform)
	}
}

func TestTranslationConstraint_NilTargetIsNoop(t *testing.T) {
	ab := NewArtboard()
	c := newObject(TypeTranslationConstraint)
	c.constraintKind = TypeTranslationConstraint
	c.ConstraintTargetID = 999 // out of range
	ab.addObject(c)
	c.WorldTransform = [6]float64{1, 0, 0, 1, 7, 8}

	adv := newConstraintAdvancer(c, ab)
	adv.Apply(ab)

	if c.WorldTransform[4] != 7 || c.WorldTransform[5] != 8 {
		t.Errorf("WorldTransform changed despite missing target: %v", c.WorldTransform)
	}
}

func TestScaleConstraint_ClampsScale(t *testing.T) {
	ab, target, c := newConstrainedArtboard(t, TypeScaleConstraint)
	c.constraintMinX, c.constraintMaxX = 0.5, 2
	c.constraintMinY, c.constraintMaxY = 0.5, 2

	// target scaled 5x on both axes (columns (5,0) and (0,5))
	target.WorldTransform = [6]float64{5, 0, 0, 5, 0, 0}
	c.WorldTransform = [6]float64{1, 0, 0, 1, 0, 0}

	adv := newConstraintAdvancer(c, ab)
	adv.Apply(ab)

	gotSX := scaleOfColumn(c.WorldTransform[0], c.WorldTransform[1])
	gotSY := scaleOfColumn(c.WorldTransform[2], c.WorldTransform[3])
	if diff := gotSX - 2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("scaleX = %v, want 2 (clamped)", gotSX)
	}
	if diff := gotSY - 2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("scaleY = %v, want 2 (clamped)", gotSY)
	}
}

func TestRescaleColumn_ZeroScaleIsNoop(t *testing.T) {
	a, b := 0.0, 0.0
	rescaleColumn(&a, &b, 3)
	if a != 0 || b != 0 {
		t.Errorf("rescaleColumn on a zero column should stay zero, got (%v, %v)", a, b)
	}
}
