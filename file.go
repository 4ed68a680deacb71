package rivecore

import (
	"errors"
	"fmt"
	"log"
)

// Verbose gates diagnostic logging for conditions that are recoverable but
// noteworthy (a hard-capped update loop, a dependency cycle), mirroring
// willow's debug.go opt-in pattern rather than pulling in a logging
// library for a library core that otherwise has nothing to log.
var Verbose = false

func logf(format string, args ...any) {
	if Verbose {
		log.Printf(format, args...)
	}
}

// Status is the result taxonomy of an import or resolve step (spec §7),
// adapted from the original StatusCode enum into a small Go type with
// named values instead of a bare int.
type Status uint8

const (
	StatusOk Status = iota
	StatusMissingObject
	StatusInvalidObject
	StatusMalformed
	StatusUnsupportedVersion
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusMissingObject:
		return "missing object"
	case StatusInvalidObject:
		return "invalid object"
	case StatusMalformed:
		return "malformed"
	case StatusUnsupportedVersion:
		return "unsupported version"
	default:
		return "unknown status"
	}
}

// ImportError is the concrete error type every import/resolve failure is
// wrapped in; callers recover the Status via errors.As.
type ImportError struct {
	Status Status
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rivecore: %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("rivecore: %s", e.Status)
}

func (e *ImportError) Unwrap() error { return e.Err }

func statusErr(status Status, err error) *ImportError {
	return &ImportError{Status: status, Err: err}
}

// supportedMajorVersion is the only binary format major version this
// runtime decodes (spec §6 "majorVersion ... must match the runtime's
// major").
const supportedMajorVersion = 7

// ImportOptions are the functional-options-style construction parameters
// for File.Import (SPEC_FULL.md AMBIENT STACK: "Construction is via
// functional options only where the teacher uses them").
type ImportOptions struct {
	Factory Factory
	Loader  AssetLoader
}

// File is the decoded, immutable top-level unit returned by Import: a set
// of Artboard definitions plus whatever decoded assets the loader
// resolved (spec GLOSSARY, §6).
type File struct {
	MajorVersion uint32
	MinorVersion uint32
	FileID       uint64

	artboards []*Artboard
	assets    map[uint32]DecodedAsset
	audio     *audioState
}

// Import decodes a rivecore binary scene file per spec §4.1/§4.3/§6,
// returning a *File on success or an *ImportError (via errors.As on the
// returned error) describing why decoding stopped.
func Import(data []byte, opts ImportOptions) (*File, error) {
	r := newReader(data)
	if len(data) < 2 || data[0] != fileMagic[0] || data[1] != fileMagic[1] {
		return nil, statusErr(StatusMalformed, fmt.Errorf("bad magic"))
	}
	r.pos = 2

	major := r.ReadVarUint32()
	minor := r.ReadVarUint32()
	fileID := r.ReadVarUint()
	if r.Failed() {
		return nil, statusErr(StatusMalformed, fmt.Errorf("truncated header"))
	}
	if major != supportedMajorVersion {
		return nil, statusErr(StatusUnsupportedVersion, fmt.Errorf("major version %d", major))
	}

	toc := make(map[PropertyKey]FieldType)
	tocCount := r.ReadVarUint()
	for i := uint64(0); i < tocCount && !r.Failed(); i++ {
		key := PropertyKey(r.ReadVarUint16())
		ft := FieldType(r.ReadByte())
		toc[key] = ft
	}
	if r.Failed() {
		return nil, statusErr(StatusMalformed, fmt.Errorf("truncated table of contents"))
	}

	f := &File{MajorVersion: major, MinorVersion: minor, FileID: fileID, assets: make(map[uint32]DecodedAsset), audio: newAudioState()}

	dec := &decoder{reader: r, toc: toc, file: f, opts: opts}
	artboards, err := dec.decodeArtboards()
	if err != nil {
		var ie *ImportError
		if errors.As(err, &ie) {
			return nil, ie
		}
		return nil, statusErr(StatusMalformed, err)
	}
	if r.Failed() {
		return nil, statusErr(StatusMalformed, fmt.Errorf("truncated object stream"))
	}
	f.artboards = artboards
	f.resolveNestedArtboards()
	return f, nil
}

// ArtboardCount returns the number of artboard definitions the file
// carries (spec §6 "File::artboardCount()").
func (f *File) ArtboardCount() int { return len(f.artboards) }

// ArtboardAt returns the Nth artboard definition, or nil if out of range
// (spec §7 "Out-of-range lookup ... returns absent, never panics").
func (f *File) ArtboardAt(i int) *Artboard {
	if i < 0 || i >= len(f.artboards) {
		return nil
	}
	return f.artboards[i]
}

// ArtboardNamed returns the artboard definition with the given object-0
// name, or nil if no such artboard exists.
func (f *File) ArtboardNamed(name string) *Artboard {
	for _, ab := range f.artboards {
		if len(ab.Objects) > 0 && ab.Objects[0] != nil && ab.Objects[0].Name == name {
			return ab
		}
	}
	return nil
}

// ArtboardDefault returns an instance of the file's first artboard, or nil
// if the file declares none (spec §6 "File::artboardDefault() →
// ArtboardInstance").
func (f *File) ArtboardDefault() *ArtboardInstance {
	if len(f.artboards) == 0 {
		return nil
	}
	return f.artboards[0].Instance()
}

// Asset returns the decoded asset the loader resolved for the given
// asset id, if any.
func (f *File) Asset(id uint32) (DecodedAsset, bool) {
	a, ok := f.assets[id]
	return a, ok
}
