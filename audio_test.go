package rivecore

import "testing"

// fakeClip is an AudioClip whose Play only records the completion
// callback; playback completes when the test calls finish.
type fakeClip struct {
	onComplete func()
}

func (c *fakeClip) Play(onComplete func()) { c.onComplete = onComplete }
func (c *fakeClip) Stop()                  {}
func (c *fakeClip) finish() {
	if c.onComplete != nil {
		c.onComplete()
	}
}

func newTestFile() *File {
	return &File{assets: make(map[uint32]DecodedAsset), audio: newAudioState()}
}

func TestAudioState_PlayIncrementsCount(t *testing.T) {
	s := newAudioState()
	owner := &ArtboardInstance{}
	clip := &fakeClip{}

	s.play(owner, clip)

	if got := s.playingSoundCount(); got != 1 {
		t.Fatalf("playingSoundCount() = %d, want 1", got)
	}
}

func TestAudioState_CompletionDecrementsCount(t *testing.T) {
	s := newAudioState()
	owner := &ArtboardInstance{}
	clip := &fakeClip{}

	s.play(owner, clip)
	clip.finish()

	if got := s.playingSoundCount(); got != 0 {
		t.Fatalf("playingSoundCount() after completion = %d, want 0", got)
	}
}

func TestAudioState_MultipleSoundsSameOwner(t *testing.T) {
	s := newAudioState()
	owner := &ArtboardInstance{}
	clipA := &fakeClip{}
	clipB := &fakeClip{}

	s.play(owner, clipA)
	s.play(owner, clipB)
	if got := s.playingSoundCount(); got != 2 {
		t.Fatalf("playingSoundCount() = %d, want 2", got)
	}

	clipA.finish()
	if got := s.playingSoundCount(); got != 1 {
		t.Fatalf("playingSoundCount() after one completion = %d, want 1", got)
	}

	clipB.finish()
	if got := s.playingSoundCount(); got != 0 {
		t.Fatalf("playingSoundCount() after both complete = %d, want 0", got)
	}
}

func TestAudioState_MultipleOwners(t *testing.T) {
	s := newAudioState()
	owner1 := &ArtboardInstance{}
	owner2 := &ArtboardInstance{}

	s.play(owner1, &fakeClip{})
	s.play(owner2, &fakeClip{})

	if got := s.playingSoundCount(); got != 2 {
		t.Fatalf("playingSoundCount() = %d, want 2", got)
	}
}

func TestAudioState_DropInstanceRemovesItsSounds(t *testing.T) {
	s := newAudioState()
	owner1 := &ArtboardInstance{}
	owner2 := &ArtboardInstance{}

	s.play(owner1, &fakeClip{})
	s.play(owner1, &fakeClip{})
	s.play(owner2, &fakeClip{})

	s.dropInstance(owner1)

	if got := s.playingSoundCount(); got != 1 {
		t.Fatalf("playingSoundCount() after dropInstance = %d, want 1 (owner2's sound)", got)
	}
}

func TestFile_PlayAudioEvent(t *testing.T) {
	f := newTestFile()
	clip := &fakeClip{}
	f.assets[5] = DecodedAsset{Audio: clip}

	ev := &Object{Type: TypeAudioEvent, AssetID: 5}
	owner := &ArtboardInstance{}

	ok := f.PlayAudioEvent(owner, ev)
	if !ok {
		t.Fatal("PlayAudioEvent returned false for a valid audio event")
	}
	if !ev.IsPlaying {
		t.Error("IsPlaying was not set to true")
	}
	if got := f.PlayingSoundCount(); got != 1 {
		t.Fatalf("PlayingSoundCount() = %d, want 1", got)
	}

	clip.finish()
	if got := f.PlayingSoundCount(); got != 0 {
		t.Fatalf("PlayingSoundCount() after finish = %d, want 0", got)
	}
}

func TestFile_PlayAudioEvent_WrongType(t *testing.T) {
	f := newTestFile()
	ev := &Object{Type: TypeNode}
	if f.PlayAudioEvent(&ArtboardInstance{}, ev) {
		t.Error("PlayAudioEvent should reject a non-audio-event object")
	}
}

func TestFile_PlayAudioEvent_MissingAsset(t *testing.T) {
	f := newTestFile()
	ev := &Object{Type: TypeAudioEvent, AssetID: 99}
	if f.PlayAudioEvent(&ArtboardInstance{}, ev) {
		t.Error("PlayAudioEvent should return false when the asset id has no decoded asset")
	}
}

func TestFile_PlayAudioEvent_NilEvent(t *testing.T) {
	f := newTestFile()
	if f.PlayAudioEvent(&ArtboardInstance{}, nil) {
		t.Error("PlayAudioEvent should return false for a nil event")
	}
}

func TestFile_DropInstance(t *testing.T) {
	f := newTestFile()
	clip := &fakeClip{}
	f.assets[1] = DecodedAsset{Audio: clip}
	owner := &ArtboardInstance{}
	ev := &Object{Type: TypeAudioEvent, AssetID: 1}

	f.PlayAudioEvent(owner, ev)
	f.DropInstance(owner)

	if got := f.PlayingSoundCount(); got != 0 {
		t.Fatalf("PlayingSoundCount() after DropInstance = %d, want 0", got)
	}
}
