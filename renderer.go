package rivecore

// Path and Paint are opaque renderer-native handles returned by a Factory
// (spec §6); the core never inspects their contents, only passes them back
// to the Renderer. Gradient and RenderBuffer are the same kind of opaque
// handle for shader and mesh-buffer construction.
type Path interface{}
type Paint interface {
	Style() PaintStyle
	Color() Color
	Thickness() float64
	Cap() StrokeCap
	Join() StrokeJoin
	Miter() float64
	Blend() BlendMode
	Feather() float64
}
type Gradient interface{}
type RenderBuffer interface{}

// Renderer is the drawing collaborator the core issues commands to (spec
// §6 "Renderer interface"): save/restore a transform stack, clip, and draw
// paths or images. EbitenRenderer (ebitenrenderer.go) is this module's
// ebiten-backed implementation.
type Renderer interface {
	Save()
	Restore()
	Transform(m [6]float64)
	ClipPath(p Path)
	DrawPath(p Path, paint Paint)
	DrawImage(img *ebitenImageHandle, blend BlendMode, opacity float64)
	DrawImageMesh(img *ebitenImageHandle, vertexBuf, uvBuf []float32, indexBuf []uint16, vertexCount, indexCount int, blend BlendMode, opacity float64)
}

// Draw walks the artboard instance's z-ordered draw list and issues
// renderer commands for each visible drawable (spec §6
// "ArtboardInstance::draw(renderer)"). Path-shape geometry and meshing are
// outside this core's scope (spec §1: "the path tessellator/rasterizer ...
// are external collaborators"); drawables carrying an asset reference are
// submitted as a single transformed image, which is the one concrete
// Drawable this core models (TypePathShape, typekeys.go).
func (ai *ArtboardInstance) Draw(r Renderer, images map[uint32]*ebitenImageHandle) {
	r.Save()
	defer r.Restore()
	for _, o := range ai.DrawList() {
		if o.IsCollapsed() {
			continue
		}
		r.Transform(o.WorldTransform)
		if img, ok := images[o.AssetID]; ok && img != nil {
			r.DrawImage(img, BlendSrcOver, o.WorldAlpha)
		}
	}
}

// Bounds returns the artboard's design-time rectangle in local space (spec
// §6 "ArtboardInstance::bounds()").
func (ai *ArtboardInstance) Bounds() Rect {
	root := ai.Artboard
	if len(root.Objects) == 0 || root.Objects[0] == nil {
		return Rect{}
	}
	ab := root.Objects[0]
	return Rect{X: ab.OriginX, Y: ab.OriginY, Width: ab.Width, Height: ab.Height}
}
