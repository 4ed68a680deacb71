package rivecore

// HitRect and HitCircle are convenience local-space hit-test shapes a host
// can use to build the hitTest callback StateMachineInstance.PointerEvent
// takes, grounded on the teacher's own HitRect/HitCircle hit-shape types
// (originally tested against willow's Node hierarchy directly; here they
// are pure geometry, decoupled from any particular Object, since rivecore
// itself has no path-bounds to own a hit shape against).
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// WorldToLocal converts a world-space point into target's local frame by
// inverting its WorldTransform, the same affine-inverse step
// ListenerAlignTarget.perform already applies to reposition a node at the
// pointer (listener.go); exposed here so a host's hitTest callback can
// convert PointerEvent's world position into the space a HitRect/
// HitCircle was authored in.
func WorldToLocal(target *Object, world Vec2) Vec2 {
	inv := invertAffine(target.WorldTransform)
	lx, ly := transformPoint(inv, world.X, world.Y)
	return Vec2{X: lx, Y: ly}
}
