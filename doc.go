// Package rivecore is the runtime core of a vector-animation playback
// engine: a schema-driven binary loader, a dependency-ordered dirt
// propagation engine, keyframe/linear-animation playback, and a multi-layer
// state-machine interpreter.
//
// rivecore does not rasterize, decode images/fonts/audio, or own a window.
// Those concerns are external collaborators reached through narrow
// interfaces ([Factory], [Renderer], [AssetLoader]); see [NewEbitenFactory]
// and [EbitenRenderer] for the concrete implementations over [Ebitengine].
//
// # Quick start
//
//	file, err := rivecore.Import(bytes, rivecore.ImportOptions{
//		Factory: rivecore.NewEbitenFactory(),
//	})
//	if err != nil {
//		// an *ImportError carries the Status (malformed, unsupported
//		// version, missing/invalid object)
//	}
//	inst := file.ArtboardDefault()
//	sm := inst.DefaultStateMachine()
//
//	// each frame:
//	sm.Advance(dt)
//	inst.Advance(dt)
//
// # Object model
//
// Every entity in a loaded artboard is an [*Object]: a tagged variant
// carrying a 16-bit type key and a property bag, looked up through the
// registry tables in registry.go. [Artboard] owns the object table, animation and
// state-machine definitions, and the topologically sorted dependency order
// consumed by the dirt-propagation loop in artboard.go.
//
// # Animation and state machines
//
// [LinearAnimation] holds keyframes; [LinearAnimationInstance] advances a
// time cursor through them with loop/ping-pong/work-area semantics.
// [StateMachine] layers select and blend animation instances based on
// inputs, transitions, and exit-time bookkeeping; see statemachine.go and
// transition.go. ECS integration (via a [Donburi] adapter in rivecore/ecs)
// forwards reported state-machine events to an external world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package rivecore
