package rivecore

// Component is anything participating in the dependency graph (spec §4.4,
// GLOSSARY). Object is the only implementation in this port: rather than
// ~150 concrete classes each implementing Component, rivecore follows the
// teacher's flat-struct approach (willow's Node is "a single flat struct...
// to avoid interface dispatch on the hot path") and gives every
// object-table entry the same backing struct, dispatching type-specific
// behavior through the registry (registry.go) instead of through Go
// interface methods.
type Component interface {
	// GraphOrder returns this component's rank in the artboard's
	// topological dependency order.
	GraphOrder() int

	// Dirt returns the component's current dirt bitmask.
	Dirt() Dirt

	// AddDirt ors value into the component's dirt. If recurse is true it
	// also propagates to dependents. Returns false if value was already
	// fully covered (no-op).
	AddDirt(value Dirt, recurse bool) bool

	// Dependents returns the down-stream consumers of this component,
	// i.e. components that must be marked dirty when this one changes.
	Dependents() []Component

	// AddDependent registers c as a dependent of this component.
	AddDependent(c Component)

	// Update is called by the artboard's update loop with the dirt snapshot
	// that triggered this pass; the update loop clears the component's dirt
	// before it invokes Update (spec §4.4).
	Update(value Dirt)

	// Collapse hides or un-hides the component from update/draw passes
	// (spec §9, grounded on original_source Component::collapse).
	Collapse(value bool) bool

	// IsCollapsed reports whether Collapse(true) is currently in effect.
	IsCollapsed() bool
}

// dependencyGraph is the shared bookkeeping every Component embeds: its
// dependents list, dirt bits, and graph rank, plus a back-reference to the
// owning artboard so dirt changes can update the artboard's dirt-depth
// (spec §4.4, grounded on original_source/src/component.cpp's
// m_DependencyHelper pattern).
type dependencyGraph struct {
	dependents []Component
	dirt       Dirt
	graphOrder int
	artboard   *Artboard
}

func (g *dependencyGraph) GraphOrder() int { return g.graphOrder }
func (g *dependencyGraph) Dirt() Dirt      { return g.dirt }

func (g *dependencyGraph) Dependents() []Component { return g.dependents }

func (g *dependencyGraph) AddDependent(c Component) {
	g.dependents = append(g.dependents, c)
}

// addDirtTo implements Component.AddDirt's shared logic. self is the
// Component embedding this dependencyGraph (needed so onDirtyHook and
// recursion see the concrete component, not the embedded struct).
func (g *dependencyGraph) addDirtTo(self Component, value Dirt, recurse bool, onDirty func(Dirt)) bool {
	if g.dirt.Has(value) {
		return false
	}
	g.dirt |= value
	if onDirty != nil {
		onDirty(g.dirt)
	}
	if g.artboard != nil {
		g.artboard.onComponentDirty(self)
	}
	if !recurse {
		return true
	}
	for _, d := range g.dependents {
		d.AddDirt(value, true)
	}
	return true
}

func (g *dependencyGraph) collapseTo(value bool) bool {
	isCollapsed := g.dirt.Has(Collapsed)
	if isCollapsed == value {
		return false
	}
	if value {
		g.dirt |= Collapsed
	} else {
		g.dirt &^= Collapsed
	}
	if g.artboard != nil {
		g.artboard.onComponentDirty(nil)
	}
	return true
}

func (g *dependencyGraph) isCollapsed() bool { return g.dirt.Has(Collapsed) }

// Advancer is a pre/post update hook point in Artboard.Advance, grounded on
// original_source/src/artboard.cpp's "joystick" appliers
// (canApplyBeforeUpdate / apply). rivecore carries the hook even though no
// built-in joystick component exists; TranslationConstraint and
// ScaleConstraint (constraint.go) are the two concrete Advancers this core
// ships (spec §9 supplemented feature).
type Advancer interface {
	// CanApplyBeforeUpdate reports whether Apply should run before the
	// dependency DAG update pass (true) or after (false).
	CanApplyBeforeUpdate() bool
	Apply(artboard *Artboard)
}
