package rivecore

import (
	"math"
	"testing"
)

// --- minimal wire-format encoder, mirroring reader.go's decode rules in
// reverse, used only to build byte streams for decoder tests.

type wireWriter struct {
	buf []byte
}

func (w *wireWriter) varUint(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			w.buf = append(w.buf, b|0x80)
			continue
		}
		w.buf = append(w.buf, b)
		return
	}
}

func (w *wireWriter) varUint16(v uint16) { w.varUint(uint64(v)) }
func (w *wireWriter) varUint32(v uint32) { w.varUint(uint64(v)) }

func (w *wireWriter) float32(v float32) {
	bits := math.Float32bits(v)
	w.buf = append(w.buf, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}

func (w *wireWriter) str(s string) {
	w.varUint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *wireWriter) typeKey(t TypeKey)     { w.varUint16(uint16(t)) }
func (w *wireWriter) propKey(p PropertyKey) { w.varUint16(uint16(p)) }
func (w *wireWriter) endProps()             { w.varUint16(0) }

// header writes the magic/version/fileID/TOC prologue Import expects,
// with an empty table of contents.
func (w *wireWriter) header(major, minor uint32, fileID uint64) {
	w.buf = append(w.buf, fileMagic[0], fileMagic[1])
	w.varUint32(major)
	w.varUint32(minor)
	w.varUint(fileID)
	w.varUint(0) // toc count
}

func buildSampleStream() []byte {
	w := &wireWriter{}
	w.header(supportedMajorVersion, 3, 42)

	// TypeArtboard (object 0 of its own table)
	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	w.str("Main")
	w.propKey(PropWidth)
	w.float32(100)
	w.propKey(PropHeight)
	w.float32(200)
	w.endProps()

	// TypeLinearAnimation, child of the artboard
	w.typeKey(TypeLinearAnimation)
	w.propKey(PropName)
	w.str("Anim1")
	w.propKey(PropFPS)
	w.varUint32(60)
	w.propKey(PropDuration)
	w.varUint32(120)
	w.endProps()

	// TypeKeyedObject targeting the artboard's own object (id 0)
	w.typeKey(TypeKeyedObject)
	w.propKey(PropObjectID)
	w.varUint32(0)
	w.endProps()

	// TypeKeyedProperty tracking PropX
	w.typeKey(TypeKeyedProperty)
	w.propKey(PropPropertyKeyField)
	w.varUint16(uint16(PropX))
	w.endProps()

	// TypeKeyFrameDouble leaf
	w.typeKey(TypeKeyFrameDouble)
	w.propKey(PropFrame)
	w.varUint32(30)
	w.propKey(PropInterpolationType)
	w.varUint32(0)
	w.propKey(PropKeyFrameValue)
	w.float32(12.5)
	w.endProps()

	return w.buf
}

func TestImport_DecodesArtboardAnimationAndKeyframe(t *testing.T) {
	f, err := Import(buildSampleStream(), ImportOptions{})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if f.ArtboardCount() != 1 {
		t.Fatalf("ArtboardCount() = %d, want 1", f.ArtboardCount())
	}
	ab := f.ArtboardAt(0)
	if ab == nil {
		t.Fatal("ArtboardAt(0) = nil")
	}
	if len(ab.Objects) == 0 || ab.Objects[0].Name != "Main" {
		t.Fatalf("artboard object 0 name = %q, want Main", ab.Objects[0].Name)
	}
	if len(ab.Animations) != 1 {
		t.Fatalf("len(Animations) = %d, want 1", len(ab.Animations))
	}
	anim := ab.Animations[0]
	if anim.Name != "Anim1" || anim.FPS != 60 || anim.Duration != 120 {
		t.Fatalf("animation = %+v, want Name=Anim1 FPS=60 Duration=120", anim)
	}
	if len(anim.KeyedObjects) != 1 {
		t.Fatalf("len(KeyedObjects) = %d, want 1", len(anim.KeyedObjects))
	}
	ko := anim.KeyedObjects[0]
	if ko.ObjectID != 0 {
		t.Fatalf("KeyedObject.ObjectID = %d, want 0", ko.ObjectID)
	}
	if len(ko.Properties) != 1 || ko.Properties[0].Key != PropX {
		t.Fatalf("KeyedObject.Properties = %+v, want one track keyed on PropX", ko.Properties)
	}
	kf := ko.Properties[0].Frames
	if len(kf) != 1 {
		t.Fatalf("len(Frames) = %d, want 1", len(kf))
	}
	if kf[0].Frame != 30 {
		t.Errorf("Frame = %d, want 30", kf[0].Frame)
	}
	if v, ok := kf[0].Value.(float32); !ok || v != 12.5 {
		t.Errorf("Value = %v, want float32(12.5)", kf[0].Value)
	}
}

func TestImport_MultipleArtboardsAllCaptured(t *testing.T) {
	w := &wireWriter{}
	w.header(supportedMajorVersion, 0, 1)

	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	w.str("First")
	w.endProps()

	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	w.str("Second")
	w.endProps()

	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	w.str("Third")
	w.endProps()

	f, err := Import(w.buf, ImportOptions{})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if f.ArtboardCount() != 3 {
		t.Fatalf("ArtboardCount() = %d, want 3", f.ArtboardCount())
	}
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		ab := f.ArtboardAt(i)
		if ab == nil || ab.Objects[0].Name != name {
			t.Errorf("artboard %d name = %q, want %q", i, ab.Objects[0].Name, name)
		}
	}
}

func TestImport_BadMagicRejected(t *testing.T) {
	data := []byte{'X', 'X', 0, 0, 0, 0}
	_, err := Import(data, ImportOptions{})
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
	var ie *ImportError
	if !asImportError(err, &ie) {
		t.Fatalf("error is not *ImportError: %v", err)
	}
	if ie.Status != StatusMalformed {
		t.Errorf("Status = %v, want StatusMalformed", ie.Status)
	}
}

func TestImport_UnsupportedMajorVersionRejected(t *testing.T) {
	w := &wireWriter{}
	w.header(supportedMajorVersion+1, 0, 0)
	_, err := Import(w.buf, ImportOptions{})
	if err == nil {
		t.Fatal("expected error for unsupported major version")
	}
	var ie *ImportError
	if !asImportError(err, &ie) {
		t.Fatalf("error is not *ImportError: %v", err)
	}
	if ie.Status != StatusUnsupportedVersion {
		t.Errorf("Status = %v, want StatusUnsupportedVersion", ie.Status)
	}
}

func TestImport_TruncatedObjectStreamRejected(t *testing.T) {
	w := &wireWriter{}
	w.header(supportedMajorVersion, 0, 0)
	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	// missing string payload and sentinel: truncated mid-property
	_, err := Import(w.buf, ImportOptions{})
	if err == nil {
		t.Fatal("expected error for truncated object stream")
	}
}

func TestImport_KeyedObjectReferencingUnsupportedPropertyRejected(t *testing.T) {
	w := &wireWriter{}
	w.header(supportedMajorVersion, 0, 0)

	w.typeKey(TypeArtboard)
	w.propKey(PropName)
	w.str("Main")
	w.endProps()

	w.typeKey(TypeLinearAnimation)
	w.propKey(PropName)
	w.str("Anim")
	w.endProps()

	w.typeKey(TypeKeyedObject)
	w.propKey(PropObjectID)
	w.varUint32(0)
	w.endProps()

	w.typeKey(TypeKeyedProperty)
	w.propKey(PropPropertyKeyField)
	w.varUint16(uint16(PropOriginX + 1000)) // not registered in fieldTypeOf
	w.endProps()

	_, err := Import(w.buf, ImportOptions{})
	if err == nil {
		t.Fatal("expected error for unknown property key")
	}
}

// asImportError reports whether err itself is an *ImportError (a plain
// type assertion; wrapped errors are not unwrapped), kept local to this
// test file to avoid an extra import line at every call site above.
func asImportError(err error, target **ImportError) bool {
	ie, ok := err.(*ImportError)
	if !ok {
		return false
	}
	*target = ie
	return true
}
