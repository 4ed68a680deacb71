package rivecore

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"same rect", Rect{10, 10, 100, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

func TestColorARGB32RoundTrip(t *testing.T) {
	c := Color{A: 0x80, R: 0x11, G: 0x22, B: 0x33}
	v := c.ARGB32()
	if want := uint32(0x80112233); v != want {
		t.Fatalf("ARGB32() = %#x, want %#x", v, want)
	}
	back := colorFromARGB32(v)
	if back != c {
		t.Fatalf("colorFromARGB32(%#x) = %v, want %v", v, back, c)
	}
}

func TestColorWhite(t *testing.T) {
	if ColorWhite.A != 255 || ColorWhite.R != 255 || ColorWhite.G != 255 || ColorWhite.B != 255 {
		t.Errorf("ColorWhite = %v, want {255,255,255,255}", ColorWhite)
	}
}

func TestBlendModeEbitenBlend(t *testing.T) {
	if got := BlendSrcOver.EbitenBlend(); got != ebiten.BlendSourceOver {
		t.Errorf("BlendSrcOver.EbitenBlend() = %v, want BlendSourceOver", got)
	}
	if got := BlendAdditive.EbitenBlend(); got != ebiten.BlendLighter {
		t.Errorf("BlendAdditive.EbitenBlend() = %v, want BlendLighter", got)
	}
	zero := ebiten.Blend{}
	for _, m := range []BlendMode{BlendScreen, BlendMultiply} {
		if got := m.EbitenBlend(); got == zero {
			t.Errorf("BlendMode(%d).EbitenBlend() returned zero blend", m)
		}
	}
}

func BenchmarkRectContains(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.Contains(50, 40)
	}
}
