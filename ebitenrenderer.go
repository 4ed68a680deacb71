package rivecore

import "github.com/hajimehoshi/ebiten/v2"

// ebitenImageHandle wraps a decoded *ebiten.Image as the concrete image
// handle type Renderer.DrawImage/DrawImageMesh pass around, grounded on
// willow's own TextureRegion/atlas page indirection (atlas.go) but
// simplified to one image per handle since rivecore's Factory decodes one
// asset per stub rather than packing an atlas.
type ebitenImageHandle struct {
	Image *ebiten.Image
}

// EbitenRenderer implements Renderer directly against an *ebiten.Image
// target, the way willow's Scene.submitBatches (batch.go) issues
// DrawImageOptions-based draws against a render target. It keeps a small
// explicit transform stack rather than ebiten.GeoM's own stack, since
// Renderer.Save/Restore is part of the core's command surface (spec §6),
// not an implementation detail.
type EbitenRenderer struct {
	target *ebiten.Image
	stack  [][6]float64
	top    [6]float64
}

// NewEbitenRenderer returns a Renderer drawing into target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{target: target, top: identityTransform}
}

func (r *EbitenRenderer) Save() {
	r.stack = append(r.stack, r.top)
}

func (r *EbitenRenderer) Restore() {
	if n := len(r.stack); n > 0 {
		r.top = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *EbitenRenderer) Transform(m [6]float64) {
	r.top = m
}

// ClipPath is a no-op: path-level clipping requires the rasterizer this
// core explicitly places out of scope (spec §1); hosts needing real
// clipping supply their own Renderer implementation.
func (r *EbitenRenderer) ClipPath(Path) {}

// DrawPath is a no-op for the same reason as ClipPath: this core does not
// tessellate vector paths. EbitenRenderer only draws the image-backed
// drawables rivecore models directly (TypePathShape).
func (r *EbitenRenderer) DrawPath(Path, Paint) {}

func (r *EbitenRenderer) DrawImage(img *ebitenImageHandle, blend BlendMode, opacity float64) {
	if img == nil || img.Image == nil || r.target == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, r.top[0])
	op.GeoM.SetElement(1, 0, r.top[1])
	op.GeoM.SetElement(0, 1, r.top[2])
	op.GeoM.SetElement(1, 1, r.top[3])
	op.GeoM.SetElement(0, 2, r.top[4])
	op.GeoM.SetElement(1, 2, r.top[5])
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Blend = blend.EbitenBlend()
	r.target.DrawImage(img.Image, &op)
}

// DrawImageMesh submits a textured triangle mesh via ebiten's
// DrawTriangles with 16-bit indices, adapted to the Renderer interface's flat
// vertex/uv/index buffer shape (spec §6).
func (r *EbitenRenderer) DrawImageMesh(img *ebitenImageHandle, vertexBuf, uvBuf []float32, indexBuf []uint16, vertexCount, indexCount int, blend BlendMode, opacity float64) {
	if img == nil || img.Image == nil || r.target == nil || vertexCount == 0 || indexCount == 0 {
		return
	}
	verts := make([]ebiten.Vertex, vertexCount)
	for i := 0; i < vertexCount; i++ {
		lx, ly := float64(vertexBuf[i*2]), float64(vertexBuf[i*2+1])
		wx, wy := transformPoint(r.top, lx, ly)
		verts[i] = ebiten.Vertex{
			DstX:   float32(wx),
			DstY:   float32(wy),
			SrcX:   uvBuf[i*2],
			SrcY:   uvBuf[i*2+1],
			ColorR: 1, ColorG: 1, ColorB: 1,
			ColorA: float32(opacity),
		}
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = blend.EbitenBlend()
	r.target.DrawTriangles(verts, indexBuf[:indexCount], img.Image, &op)
}
