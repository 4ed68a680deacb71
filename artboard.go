package rivecore

import "fmt"

const maxUpdatePasses = 100

// Artboard is a root-level scene unit: its object table, linear animations,
// state machines, and the dependency-ordered draw list (spec §3, GLOSSARY),
// grounded on original_source/src/artboard.cpp and on the teacher's own
// Scene (scene.go), which plays the analogous "root of a renderable graph"
// role in willow.
type Artboard struct {
	Objects       []*Object
	Animations    []*LinearAnimation
	StateMachines []*StateMachine

	dependencyOrder []Component
	drawList        []*Object
	drawListDirty   bool

	dirt     Dirt
	dirtHead int // minimum graph order touched since the current pass began

	advancers []Advancer
}

// NewArtboard returns an empty artboard ready to receive decoded objects.
func NewArtboard() *Artboard {
	return &Artboard{dirtHead: -1}
}

// addObject appends o to the object table, assigns it no graph order yet
// (done at buildDependencies time), and wires its back-reference to this
// artboard.
func (a *Artboard) addObject(o *Object) {
	o.artboard = a
	o.ID = uint32(len(a.Objects))
	a.Objects = append(a.Objects, o)
}

// resolveObject looks up an object-table entry by id, returning nil for an
// out-of-range or null-placeholder slot (spec §4.3 "retained as a
// placeholder").
func (a *Artboard) resolveObject(id uint32) *Object {
	if int(id) >= len(a.Objects) {
		return nil
	}
	return a.Objects[id]
}

// onComponentDirty is the dependencyGraph hook that lets any component
// retreat the artboard's scan head when it is dirtied mid-pass (spec §4.4
// "updates its dirt depth if the component's rank is smaller"). c may be
// nil (Collapse doesn't carry a useful rank).
func (a *Artboard) onComponentDirty(c Component) {
	a.dirt |= Components
	if c == nil {
		return
	}
	order := c.GraphOrder()
	if a.dirtHead < 0 || order < a.dirtHead {
		a.dirtHead = order
	}
}

func (a *Artboard) requestDrawOrderSort() {
	a.drawListDirty = true
}

// buildDependencies wires parent/child back-references into dependents
// edges, topologically sorts the object table, and assigns each component
// its graph order — the third pass of spec §4.3's finalisation sweep
// ("collects Drawables into the draw list ... and topologically sorts"),
// grounded on Artboard::sortDependencies.
func (a *Artboard) buildDependencies() error {
	for _, o := range a.Objects {
		if o == nil {
			continue
		}
		if o.Parent != nil {
			o.Parent.AddDependent(o)
		}
	}

	sorter := &dependencySorter{}
	var order []Component
	seen := make(map[Component]bool)
	for _, o := range a.Objects {
		if o == nil || o.Parent != nil || seen[o] {
			continue
		}
		sub, ok := sorter.sort(o)
		if !ok {
			logf("rivecore: dependency cycle detected while sorting artboard")
			return fmt.Errorf("rivecore: dependency cycle detected while sorting artboard")
		}
		for _, c := range sub {
			if !seen[c] {
				seen[c] = true
				order = append(order, c)
			}
		}
	}
	// Any component that failed to land under a root walk (shouldn't
	// happen once parenting is complete, but keep the loop total) still
	// gets a rank so Update never sees an uninitialised GraphOrder.
	for _, o := range a.Objects {
		if o != nil && !seen[o] {
			seen[o] = true
			order = append(order, o)
		}
	}

	a.dependencyOrder = order
	for i, c := range order {
		if g, ok := c.(*Object); ok {
			g.graphOrder = i
		}
	}

	a.drawList = a.drawList[:0]
	for _, o := range a.Objects {
		if o != nil && o.IsTypeOf(TypeDrawable) {
			a.drawList = append(a.drawList, o)
		}
	}
	a.drawListDirty = false
	return nil
}

// initialize runs the finalisation sweep over a freshly decoded artboard:
// resolve every component's deferred references, then build the dependency
// graph (spec §4.3's three-pass sweep, collapsed here into "resolve, then
// sort" since this port's components resolve their own references rather
// than splitting onAddedDirty/onAddedClean).
func (a *Artboard) initialize() error {
	for _, anim := range a.Animations {
		if err := anim.resolve(a); err != nil {
			return err
		}
	}
	for _, sm := range a.StateMachines {
		if err := sm.resolve(a); err != nil {
			return err
		}
	}
	for _, o := range a.Objects {
		if o == nil {
			continue
		}
		if err := a.resolveObjectRefs(o); err != nil {
			return err
		}
	}
	if err := a.buildDependencies(); err != nil {
		return err
	}
	a.AddDirt(Components | WorldTransform | RenderOpacity, false)
	return nil
}

// resolveObjectRefs fixes up the id-valued back-references carried
// directly on Object (draw rules/targets, nested artboards, constraints),
// grounded on the same onAddedDirty pass spec §4.3 describes for every
// other component kind.
func (a *Artboard) resolveObjectRefs(o *Object) error {
	if o.HasParentID {
		o.Parent = a.resolveObject(o.ParentID)
		if o.Parent != nil {
			o.Parent.Children = append(o.Parent.Children, o)
		}
	}
	if o.DrawTargetID != 0 {
		o.ActiveDrawTarget = a.resolveObject(o.DrawTargetID)
	}
	switch {
	case o.IsTypeOf(TypeDrawRules):
		o.TargetDrawable = a.resolveObject(o.TargetDrawableID)
	case o.IsTypeOf(TypeDrawTarget):
		// Resolved from the owning DrawRules side (TargetDrawableID) above;
		// DrawTarget itself only carries the placement value.
	case o.IsTypeOf(TypeNestedArtboard):
		// NestedSource is resolved by File.resolveNestedArtboards after every
		// artboard in the file has decoded, since the reference crosses
		// artboard boundaries and the target may not exist yet at this point
		// in the stream (nestedartboard.go).
	case o.IsTypeOf(TypeTranslationConstraint), o.IsTypeOf(TypeScaleConstraint):
		// ConstraintTargetID resolution is a plain id→pointer fetch done
		// lazily by constraint.go's Advancer.Apply, since the target may be
		// declared later in the object table than the constraint itself.
		if adv := newConstraintAdvancer(o, a); adv != nil {
			a.advancers = append(a.advancers, adv)
		}
	}
	return nil
}

// AddDirt implements a Components-level dirt add on the artboard as a
// whole, used by initialize to force the first update pass.
func (a *Artboard) AddDirt(value Dirt, recurse bool) {
	a.dirt |= value
	if recurse {
		for _, o := range a.Objects {
			if o != nil {
				o.AddDirt(value, false)
			}
		}
	}
}

// updateComponents runs the re-entrant dirty-propagation loop described in
// spec §4.4: while Components is set, clear it and scan dependencyOrder in
// rank order; if a component's update retreats the dirt head behind the
// current scan index, break and restart. Capped at maxUpdatePasses.
func (a *Artboard) updateComponents() {
	passes := 0
	for a.dirt.Has(Components) && passes < maxUpdatePasses {
		passes++
		a.dirt &^= Components
		a.dirtHead = -1

		for i, c := range a.dependencyOrder {
			snapshot := c.Dirt()
			if snapshot == DirtNone {
				continue
			}
			if c.IsCollapsed() {
				continue
			}
			c.(*Object).dirt = DirtNone
			c.Update(snapshot)
			if a.dirtHead >= 0 && a.dirtHead < i {
				break // a component earlier in scan order was dirtied; restart.
			}
		}
	}
	if a.dirt.Has(Components) {
		logf("rivecore: update loop hit the %d-pass cap; resuming next advance", maxUpdatePasses)
	}
}

// Advance steps every Advancer hook, the dependency DAG, and the draw list
// resort, in that order (spec §9 "joystick appliers" / Advancer doc
// comment in component.go). Advance does not touch animation or state
// machine playback directly; callers drive LinearAnimationInstance/
// StateMachineInstance.Advance themselves and then call this to settle the
// resulting property writes (spec §4.4, §4.6, §4.8).
func (a *Artboard) Advance(dt float64) {
	for _, adv := range a.advancers {
		if adv.CanApplyBeforeUpdate() {
			adv.Apply(a)
		}
	}
	a.updateComponents()
	for _, adv := range a.advancers {
		if !adv.CanApplyBeforeUpdate() {
			adv.Apply(a)
		}
	}
	if a.drawListDirty {
		a.sortDrawList()
	}
}

// sortDrawList re-sorts the draw list by each drawable's active draw
// target's placement, falling back to dependency-graph order for
// drawables with no owning DrawRules (spec §3's draw-rules/draw-target
// pair, grounded on original_source's draw_rules.hpp ordering contract).
func (a *Artboard) sortDrawList() {
	order := make(map[*Object]int, len(a.Objects))
	for i, c := range a.dependencyOrder {
		if o, ok := c.(*Object); ok {
			order[o] = i
		}
	}
	// Simple stable insertion sort: draw lists are small relative to the
	// object table, and a stable sort preserves declaration order among
	// drawables with equal placement.
	for i := 1; i < len(a.drawList); i++ {
		j := i
		for j > 0 && drawLess(a.drawList[j], a.drawList[j-1], order) {
			a.drawList[j], a.drawList[j-1] = a.drawList[j-1], a.drawList[j]
			j--
		}
	}
	a.drawListDirty = false
}

func drawLess(x, y *Object, order map[*Object]int) bool {
	px, py := drawPlacement(x), drawPlacement(y)
	if px != py {
		return px < py
	}
	return order[x] < order[y]
}

func drawPlacement(o *Object) uint32 {
	if o.ActiveDrawTarget != nil {
		return o.ActiveDrawTarget.PlacementValue
	}
	return ^uint32(0) // undecorated drawables sort last
}

// DrawList returns the artboard's current z-ordered drawable list. The
// renderer adapter (ebitenrenderer.go) walks this to emit draw commands.
func (a *Artboard) DrawList() []*Object { return a.drawList }

// AnimationNamed looks up a LinearAnimation definition by name.
func (a *Artboard) AnimationNamed(name string) *LinearAnimation {
	for _, anim := range a.Animations {
		if anim.Name == name {
			return anim
		}
	}
	return nil
}

// StateMachineNamed looks up a StateMachine definition by name.
func (a *Artboard) StateMachineNamed(name string) *StateMachine {
	for _, sm := range a.StateMachines {
		if sm.Name == name {
			return sm
		}
	}
	return nil
}

// ArtboardInstance is a per-player clone of an Artboard: its own object
// table (deep-copied so per-frame mutable state never aliases the shared
// design-time Artboard), its own default state machine instance, and any
// LinearAnimationInstance/StateMachineInstance the host chooses to drive
// (spec GLOSSARY "a per-player clone ... carrying per-frame mutable
// state"), grounded on original_source/src/artboard.cpp's instance()/
// ArtboardInstance split.
type ArtboardInstance struct {
	Source *Artboard
	*Artboard

	defaultMachine *StateMachineInstance
}

// Instance deep-copies the artboard's object table into a fresh
// ArtboardInstance, preserving id-indexed identity (object i in the clone
// corresponds to object i in the source) so id-based references resolve
// correctly against the clone without re-running the importer.
func (a *Artboard) Instance() *ArtboardInstance {
	clone := &Artboard{
		Animations:    a.Animations, // immutable definitions, shared
		StateMachines: a.StateMachines,
		dirtHead:      -1,
	}
	idMap := make(map[*Object]*Object, len(a.Objects))
	for _, o := range a.Objects {
		if o == nil {
			clone.Objects = append(clone.Objects, nil)
			continue
		}
		co := *o
		co.dependencyGraph = dependencyGraph{artboard: clone}
		co.Parent = nil
		co.Children = nil
		co.solver = nil
		clone.Objects = append(clone.Objects, &co)
		idMap[o] = &co
	}
	for i, o := range a.Objects {
		if o == nil {
			continue
		}
		co := clone.Objects[i]
		if o.Parent != nil {
			co.Parent = idMap[o.Parent]
		}
		for _, ch := range o.Children {
			if cch := idMap[ch]; cch != nil {
				co.Children = append(co.Children, cch)
			}
		}
		co.ActiveDrawTarget = idMap[o.ActiveDrawTarget]
		co.TargetDrawable = idMap[o.TargetDrawable]
		if co.constraintKind != 0 {
			if adv := newConstraintAdvancer(co, clone); adv != nil {
				clone.advancers = append(clone.advancers, adv)
			}
		}
		if co.IsTypeOf(TypeNestedArtboard) && co.NestedSource != nil {
			co.NestedInstance = co.NestedSource.Instance()
			co.NestedAnimations = instantiateNestedAnimations(o.NestedAnimations, co.NestedInstance)
		}
	}
	if err := clone.buildDependencies(); err != nil {
		// The source artboard already validated acyclicity at load time;
		// a clone can only fail here if that invariant was violated.
		clone.dependencyOrder = nil
	}
	clone.AddDirt(Components|WorldTransform|RenderOpacity, false)

	inst := &ArtboardInstance{Source: a, Artboard: clone}
	if len(a.StateMachines) > 0 {
		inst.defaultMachine = NewStateMachineInstance(clone, a.StateMachines[0])
	}
	return inst
}

// Advance settles this instance's own dirt/dependency pass, then advances
// every NestedArtboard object's inner timelines and settles the nested
// instance in turn, shadowing the embedded *Artboard.Advance that callers
// would otherwise reach by promotion (spec §4.7, grounded on
// NestedArtboard::advance: advance the nested animations first, then
// advanceInternal the nested artboard). Collapsed nested artboards are
// skipped entirely, matching the original's early return.
func (ai *ArtboardInstance) Advance(dt float64) {
	ai.Artboard.Advance(dt)
	for _, o := range ai.Objects {
		if o == nil || !o.IsTypeOf(TypeNestedArtboard) || o.NestedInstance == nil || o.IsCollapsed() {
			continue
		}
		for _, na := range o.NestedAnimations {
			na.advance(dt, ai.defaultMachine)
		}
		o.NestedInstance.Advance(dt)
	}
}

// StateMachineInstanceAt builds a fresh runtime driver over the artboard's
// Nth state machine definition.
func (ai *ArtboardInstance) StateMachineInstanceAt(index int) *StateMachineInstance {
	if index < 0 || index >= len(ai.StateMachines) {
		return nil
	}
	return NewStateMachineInstance(ai.Artboard, ai.StateMachines[index])
}

// StateMachineInstanceNamed builds a fresh runtime driver over the named
// state machine definition, or nil if no such machine exists.
func (ai *ArtboardInstance) StateMachineInstanceNamed(name string) *StateMachineInstance {
	sm := ai.StateMachineNamed(name)
	if sm == nil {
		return nil
	}
	return NewStateMachineInstance(ai.Artboard, sm)
}

// DefaultStateMachine returns the instance's own default-machine driver
// (the first state machine declared on the artboard), or nil if the
// artboard declares none.
func (ai *ArtboardInstance) DefaultStateMachine() *StateMachineInstance {
	return ai.defaultMachine
}
