package rivecore

import "github.com/hajimehoshi/ebiten/v2"

// Color is a 32-bit ARGB color, matching the binary file format's color
// field (spec §4.1, §6): 8-bit alpha, red, green, and blue channels, not
// premultiplied. EbitenRenderer does not consume Color, so nothing in this
// module premultiplies it.
type Color struct {
	A, R, G, B uint8
}

// ColorWhite is fully-opaque white.
var ColorWhite = Color{A: 255, R: 255, G: 255, B: 255}

// ARGB32 packs the color into a single little-endian ARGB uint32, matching
// the wire format read by the binary reader's ReadColor.
func (c Color) ARGB32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// colorFromARGB32 unpacks a wire-format color into a Color.
func colorFromARGB32(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// toFloat converts to components in [0,1] for renderer color scaling.
func (c Color) toFloat() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Vec2 is a 2D point or vector, used for pointer coordinates, control
// points, and node positions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in the coordinate space it is declared
// in (local or world). The renderer back-end (outside this core) treats Y
// as increasing downward, matching the binary format's origin convention.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap. Adjacent rectangles
// (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BlendMode selects a compositing operation for a Paint (spec §6). Each
// maps to a specific ebiten.Blend value in the renderer adapter.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota // source-over (standard alpha blending)
	BlendScreen                   // screen
	BlendMultiply                 // multiply
	BlendAdditive                 // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this
// BlendMode, for use by the ebitenrenderer.go adapter.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendAdditive:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// MouseButton identifies a mouse button for listener pointer events (spec §4.8).
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys accompanying a
// pointer event.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// PaintStyle selects fill or stroke rendering for a Paint (spec §6).
type PaintStyle uint8

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
)

// StrokeCap selects the terminal shape of an open stroke.
type StrokeCap uint8

const (
	StrokeCapButt StrokeCap = iota
	StrokeCapRound
	StrokeCapSquare
)

// StrokeJoin selects the shape used where two stroke segments meet.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota
	StrokeJoinRound
	StrokeJoinBevel
)
