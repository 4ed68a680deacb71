package rivecore

import "sync"

// AudioClip is the host-resolved playable handle for an AudioAsset (spec
// §5, §6 "Audio" asset kind). The core never decodes or mixes audio
// itself (spec §1 Non-goals); AudioClip is opaque to rivecore beyond the
// Play/Stop lifecycle AudioEvent playback drives it through.
type AudioClip interface {
	// Play starts playback; onComplete is invoked exactly once, from
	// whatever thread the host's audio engine delivers completions on
	// (spec §5 "may spawn its own threads internally and deliver
	// callbacks ... on a non-core thread").
	Play(onComplete func())
	Stop()
}

// audioState is the lock-guarded bookkeeping for in-flight AudioEvent
// playback across every ArtboardInstance a File has produced, grounded on
// spec §5's "the core must guard those completions with an internal lock
// around a completed-sounds list and drain it from the next advance".
// Rather than a separate list drained on Advance, this port collapses the
// lock-guard directly around the live count itself — there is nothing to
// replay on drain, only a count to keep consistent under concurrent
// completions — which needs only sync.Mutex, not a worker-pool
// coordination primitive, so golang.org/x/sync has no role here.
type audioState struct {
	mu      sync.Mutex
	playing map[*ArtboardInstance]int
}

func newAudioState() *audioState {
	return &audioState{playing: make(map[*ArtboardInstance]int)}
}

// play starts clip and attributes it to owner until it completes or owner
// is dropped.
func (s *audioState) play(owner *ArtboardInstance, clip AudioClip) {
	s.mu.Lock()
	s.playing[owner]++
	s.mu.Unlock()

	clip.Play(func() {
		s.mu.Lock()
		if n := s.playing[owner]; n > 0 {
			if n == 1 {
				delete(s.playing, owner)
			} else {
				s.playing[owner] = n - 1
			}
		}
		s.mu.Unlock()
	})
}

// playingSoundCount reports the number of sounds currently playing across
// every artboard instance this audioState tracks (spec §8 scenario 6:
// "playingSoundCount() == 4 ... dropping A drops to 1 ... dropping B
// drops to 0").
func (s *audioState) playingSoundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.playing {
		total += n
	}
	return total
}

// dropInstance stops attributing any in-flight sound to inst. A caller
// discarding an ArtboardInstance releases its sounds immediately rather
// than waiting for natural completion, matching "dropping A drops to 1".
func (s *audioState) dropInstance(inst *ArtboardInstance) {
	s.mu.Lock()
	delete(s.playing, inst)
	s.mu.Unlock()
}

// PlayAudioEvent starts playback of ev's backing asset, attributed to
// owner, returning false if ev is not an AudioEvent or its asset never
// decoded to an AudioClip (spec §4.8's fire-event mechanism applied to
// the AudioEvent object kind, grounded on original_source/src/
// audio_event.cpp).
func (f *File) PlayAudioEvent(owner *ArtboardInstance, ev *Object) bool {
	if ev == nil || !ev.IsTypeOf(TypeAudioEvent) {
		return false
	}
	asset, ok := f.Asset(ev.AssetID)
	if !ok || asset.Audio == nil {
		return false
	}
	ev.IsPlaying = true
	f.audio.play(owner, asset.Audio)
	return true
}

// PlayingSoundCount reports the number of AudioClips currently playing
// across every ArtboardInstance drawn from this File.
func (f *File) PlayingSoundCount() int { return f.audio.playingSoundCount() }

// DropInstance releases attribution of any sounds owner started, for
// hosts that discard an ArtboardInstance without waiting for its audio to
// finish naturally.
func (f *File) DropInstance(owner *ArtboardInstance) { f.audio.dropInstance(owner) }
