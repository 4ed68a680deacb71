package rivecore

import "testing"

func TestHitRect_Contains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},     // top-left corner, inclusive
		{110, 70, true},    // bottom-right corner, inclusive
		{60, 45, true},     // interior
		{9.999, 45, false}, // just left of the rect
		{60, 70.1, false},  // just below the rect
		{200, 200, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestHitCircle_Contains(t *testing.T) {
	c := HitCircle{CenterX: 0, CenterY: 0, Radius: 5}

	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{5, 0, true},  // exactly on the boundary
		{0, 5, true},
		{3, 4, true},  // 3-4-5 triangle, exactly on boundary
		{3, 4.1, false},
		{10, 10, false},
	}
	for _, tc := range cases {
		if got := c.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestWorldToLocal_Identity(t *testing.T) {
	target := &Object{WorldTransform: [6]float64{1, 0, 0, 1, 0, 0}}
	got := WorldToLocal(target, Vec2{X: 3, Y: 4})
	if got.X != 3 || got.Y != 4 {
		t.Errorf("WorldToLocal under identity = %+v, want {3 4}", got)
	}
}

func TestWorldToLocal_Translated(t *testing.T) {
	target := &Object{WorldTransform: [6]float64{1, 0, 0, 1, 10, 20}}
	got := WorldToLocal(target, Vec2{X: 10, Y: 20})
	if got.X != 0 || got.Y != 0 {
		t.Errorf("WorldToLocal(origin of translated target) = %+v, want {0 0}", got)
	}
}

func TestWorldToLocal_Scaled(t *testing.T) {
	target := &Object{WorldTransform: [6]float64{2, 0, 0, 2, 0, 0}}
	got := WorldToLocal(target, Vec2{X: 10, Y: 20})
	if got.X != 5 || got.Y != 10 {
		t.Errorf("WorldToLocal under 2x scale = %+v, want {5 10}", got)
	}
}
