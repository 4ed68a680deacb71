package rivecore

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func newTestObject() *Object {
	return &Object{Type: TypeNode, ScaleX: 1, ScaleY: 1, Opacity: 1}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	o := newTestObject()
	got := computeLocalTransform(o)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	o := newTestObject()
	o.X = 10
	o.Y = 20
	got := computeLocalTransform(o)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	o := newTestObject()
	o.ScaleX = 2
	o.ScaleY = 3
	got := computeLocalTransform(o)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	o := newTestObject()
	o.Rotation = math.Pi / 2
	got := computeLocalTransform(o)
	// cos(90)=0, sin(90)=1 -> a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformCombined(t *testing.T) {
	o := newTestObject()
	o.X = 50
	o.Y = 100
	o.ScaleX = 2
	o.ScaleY = 2
	o.Rotation = math.Pi / 2

	got := computeLocalTransform(o)
	assertMatrix(t, "combined", got, [6]float64{0, 2, -2, 0, 50, 100})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	o := newTestObject()
	o.ScaleX = 2
	o.Rotation = math.Pi / 3
	m := computeLocalTransform(o)
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "singular->identity", inv, identityTransform)
}

func TestInvertAffineBothZeroScales(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 50, 100}
	inv := invertAffine(m)
	assertMatrix(t, "zero-scale->identity", inv, identityTransform)
}

// --- recomputeWorldTransform ---

func TestRecomputeWorldTransformParentChild(t *testing.T) {
	parent := newTestObject()
	child := newTestObject()
	child.Parent = parent

	parent.X = 100
	child.X = 10

	parent.recomputeWorldTransform()
	child.recomputeWorldTransform()

	assertNear(t, "parent.tx", parent.WorldTransform[4], 100)
	assertNear(t, "child.tx", child.WorldTransform[4], 110)
}

func TestRecomputeWorldTransformAlphaPropagation(t *testing.T) {
	parent := newTestObject()
	child := newTestObject()
	child.Parent = parent

	parent.Opacity = 0.5
	child.Opacity = 0.5

	parent.recomputeWorldTransform()
	child.recomputeWorldTransform()

	assertNear(t, "parent.worldAlpha", parent.WorldAlpha, 0.5)
	assertNear(t, "child.worldAlpha", child.WorldAlpha, 0.25)
}

func TestRecomputeWorldTransformNoParent(t *testing.T) {
	o := newTestObject()
	o.X = 50
	o.Y = 100
	o.recomputeWorldTransform()

	assertNear(t, "root.tx", o.WorldTransform[4], 50)
	assertNear(t, "root.ty", o.WorldTransform[5], 100)
	assertNear(t, "root.worldAlpha", o.WorldAlpha, 1)
}

// --- WorldToLocal / LocalToWorld ---

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := newTestObject()
	child := newTestObject()
	child.Parent = parent

	parent.X = 100
	parent.Y = 50
	child.X = 10
	child.Y = 20
	child.ScaleX = 2
	child.ScaleY = 3
	child.Rotation = math.Pi / 6

	parent.recomputeWorldTransform()
	child.recomputeWorldTransform()

	wx, wy := 150.0, 80.0
	lx, ly := child.WorldToLocal(wx, wy)
	wx2, wy2 := child.LocalToWorld(lx, ly)
	assertNear(t, "roundtrip.x", wx2, wx)
	assertNear(t, "roundtrip.y", wy2, wy)
}

func TestLocalToWorldIdentity(t *testing.T) {
	o := newTestObject()
	o.X = 50
	o.Y = 100
	o.recomputeWorldTransform()

	wx, wy := o.LocalToWorld(0, 0)
	assertNear(t, "origin.x", wx, 50)
	assertNear(t, "origin.y", wy, 100)
}

func TestWorldToLocalZeroScale(t *testing.T) {
	o := newTestObject()
	o.ScaleX = 0
	o.ScaleY = 0
	o.recomputeWorldTransform()

	lx, ly := o.WorldToLocal(100, 200)
	assertNear(t, "lx", lx, 100)
	assertNear(t, "ly", ly, 200)
}

// --- MarkTransformDirty ---

func TestMarkTransformDirtySetsBits(t *testing.T) {
	o := newTestObject()
	o.transformDirty = false
	o.MarkTransformDirty()
	if !o.transformDirty {
		t.Error("MarkTransformDirty should set transformDirty")
	}
	if !o.Dirt().Has(WorldTransform) {
		t.Error("MarkTransformDirty should add WorldTransform dirt")
	}
}

// --- Benchmarks ---

func BenchmarkComputeLocalTransform(b *testing.B) {
	o := newTestObject()
	o.X = 100
	o.Y = 200
	o.ScaleX = 2
	o.ScaleY = 3
	o.Rotation = 0.5
	b.ReportAllocs()
	for b.Loop() {
		_ = computeLocalTransform(o)
	}
}

func BenchmarkMultiplyAffine(b *testing.B) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	c := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = multiplyAffine(a, c)
	}
}

func BenchmarkRecomputeWorldTransform10k(b *testing.B) {
	objs := make([]*Object, 10001)
	objs[0] = newTestObject()
	idx := 1
	for i := 0; i < 100; i++ {
		parent := newTestObject()
		parent.Parent = objs[0]
		parent.X = float64(i)
		objs[idx] = parent
		idx++
		for j := 0; j < 100; j++ {
			child := newTestObject()
			child.Parent = parent
			child.X = float64(j)
			objs[idx] = child
			idx++
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, o := range objs {
			o.recomputeWorldTransform()
		}
	}
}
