package rivecore

// Object is the heterogeneous node graph entity described in spec §3: every
// object-table member (the artboard itself, plain nodes, drawables, nested
// artboards, constraints, interpolators, events, draw rules/targets) shares
// this one flat struct, tagged by Type. This mirrors the teacher's
// single-flat-struct Node (see node.go's doc comment: "A single flat
// struct is used for all node types to avoid interface dispatch on the hot
// path") generalized from a 2D scene node to rivecore's wider object model.
//
// Type-specific behavior is dispatched through the registry (registry.go)
// rather than through Go methods per type, matching spec §9's "tagged
// variant plus inheritance-chain table" design note.
type Object struct {
	dependencyGraph

	ID       uint32
	Type     TypeKey
	Name     string
	ParentID uint32
	HasParentID bool
	Parent   *Object
	Children []*Object

	// Transform / geometry, shared by Artboard, Node, Drawable-family types.
	X, Y, Rotation, ScaleX, ScaleY, Opacity float64
	WorldTransform                         [6]float64
	WorldAlpha                             float64
	transformDirty                         bool

	// Artboard-only sizing.
	Width, Height, OriginX, OriginY float64

	// NestedArtboard-only.
	NestedArtboardID uint32
	NestedSource     *Artboard         // design-time reference (shared, read-only)
	NestedInstance   *ArtboardInstance // runtime-owned instance
	NestedAnimations []*NestedAnimation
	nestedInputs     map[string]*NestedInputBinding

	// DrawRules / DrawTarget.
	DrawTargetID     uint32
	ActiveDrawTarget *Object
	TargetDrawableID uint32
	TargetDrawable   *Object
	PlacementValue   uint32

	// CubicInterpolator (spec §4.5).
	InterpX1, InterpY1, InterpX2, InterpY2 float64
	solver                                 *cubicSolver

	// Event / AudioEvent (spec §4.8 fire-event, §5 audio collaborator).
	AssetID   uint32
	IsPlaying bool

	// Constraint (spec §9 supplemented feature).
	ConstraintTargetID uint32
	constraintKind     TypeKey // TypeTranslationConstraint or TypeScaleConstraint

	// Clamp range for the constraint; min == max == 0 means no clamp.
	constraintMinX, constraintMaxX float64
	constraintMinY, constraintMaxY float64
}

// IsTypeOf reports whether the object's type is, or inherits from,
// ancestor (spec §3 "isTypeOf(k) reports inheritance").
func (o *Object) IsTypeOf(ancestor TypeKey) bool {
	return isTypeOf(o.Type, ancestor)
}

// Update implements Component.Update by dispatching on the object's type
// key (spec §4.4). Most object-table members only carry WorldTransform/
// RenderOpacity dirt; NestedArtboard and DrawRules have extra behavior.
func (o *Object) Update(value Dirt) {
	if value.HasAny(WorldTransform | RenderOpacity) {
		o.recomputeWorldTransform()
	}
	switch o.Type {
	case TypeDrawRules:
		if value.Has(DrawOrder) && o.Parent != nil && o.Parent.artboard != nil {
			o.Parent.artboard.requestDrawOrderSort()
		}
	case TypeTranslationConstraint, TypeScaleConstraint:
		// Constraints apply via the Advancer hook (constraint.go), not here;
		// Update only needs to keep their own transform current.
	case TypeNestedArtboard:
		if value.Has(RenderOpacity) && o.NestedInstance != nil && len(o.NestedInstance.Objects) > 0 {
			if root := o.NestedInstance.Objects[0]; root != nil {
				root.Opacity = o.WorldAlpha
				root.AddDirt(WorldTransform|RenderOpacity, true)
			}
		}
	}
}

// AddDirt implements Component.AddDirt.
func (o *Object) AddDirt(value Dirt, recurse bool) bool {
	return o.addDirtTo(o, value, recurse, nil)
}

// Collapse implements Component.Collapse.
func (o *Object) Collapse(value bool) bool { return o.collapseTo(value) }

// IsCollapsed implements Component.IsCollapsed.
func (o *Object) IsCollapsed() bool { return o.isCollapsed() }

// MarkTransformDirty marks the object's local transform dirty, requesting
// a world-transform recompute on the next update pass.
func (o *Object) MarkTransformDirty() {
	o.transformDirty = true
	o.AddDirt(WorldTransform, true)
}

// recomputeWorldTransform recomputes this object's world affine transform
// and accumulated opacity from its parent, adapted from the teacher's
// updateWorldTransform (transform.go) into the dirt-bit-driven recompute
// model instead of a always-walk-the-tree traversal: here it is invoked
// once per dirty object by the dependency DAG loop (spec §4.4), not by a
// recursive tree walk, since dependents already encode the parent/child
// recompute order.
func (o *Object) recomputeWorldTransform() {
	local := computeLocalTransform(o)
	if o.Parent != nil {
		o.WorldTransform = multiplyAffine(o.Parent.WorldTransform, local)
		o.WorldAlpha = o.Parent.WorldAlpha * o.Opacity
	} else {
		o.WorldTransform = local
		o.WorldAlpha = o.Opacity
	}
	o.transformDirty = false
}
