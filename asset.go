package rivecore

import (
	"bytes"
	"image"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// AssetKind identifies the declared kind of an in-file asset stub (spec §6
// "the asset's declared kind").
type AssetKind uint8

const (
	AssetKindImage AssetKind = iota
	AssetKindFont
	AssetKindAudio
)

// AssetStub describes one in-file asset the loader is asked to resolve:
// either inlined content bytes, or an id/name for out-of-band resolution
// (spec §6 "content bytes (if inlined) or an id/name for out-of-band
// resolution").
type AssetStub struct {
	Kind    AssetKind
	Name    string
	AssetID uint32
	Bytes   []byte // nil when the asset is out-of-band (name/id only)
}

// DecodedAsset is whatever a loader produced for an AssetStub: at most one
// of the typed fields is populated, matching the stub's Kind. A loader
// that declines to resolve an asset returns the zero value ("an empty
// decode result", spec §6).
type DecodedAsset struct {
	Image *ebiten.Image
	Audio AudioClip
}

// AssetLoader is the host-supplied collaborator that resolves in-file
// asset stubs during import (spec §6 "File-asset loader interface"). The
// core never decodes font or audio bytes itself (spec §1 Non-goals); a
// nil AssetLoader is valid and every stub resolves to the empty
// DecodedAsset.
type AssetLoader interface {
	LoadAsset(stub AssetStub, factory Factory) DecodedAsset
}

// Factory carries the one renderer-native constructor the core uses:
// DecodeImage, which turns image bytes into an *ebiten.Image. It does not
// construct paths, paints, gradients or render buffers. NewEbitenFactory
// returns the one concrete Factory this module ships, built directly on
// hajimehoshi/ebiten/v2 and golang.org/x/image/draw the way willow's
// atlas.go and batch.go build their own ebiten-backed primitives.
type Factory struct {
	// factory is a struct rather than an interface because rivecore ships
	// exactly one renderer collaborator (ebiten); hosts wanting different
	// image decoding construct a Factory with their own decode function.
	DecodeImage func(data []byte) (*ebiten.Image, error)
}

// NewEbitenFactory returns a Factory whose DecodeImage hook decodes PNG
// (and, via golang.org/x/image/draw, arbitrary image.Image sources scaled
// to their native size) into *ebiten.Image, matching the transitive
// golang.org/x/image dependency already present in the teacher's module
// graph (spec's DOMAIN STACK: "decodeImage(bytes) asset-loader hook
// decodes inlined PNG/WebP asset stubs via golang.org/x/image/draw").
func NewEbitenFactory() Factory {
	return Factory{DecodeImage: decodeImageBytes}
}

func decodeImageBytes(data []byte) (*ebiten.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return ebiten.NewImageFromImage(rgba), nil
}
