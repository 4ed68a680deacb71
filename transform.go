package rivecore

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from an object's
// transform properties, adapted from the teacher's computeLocalTransform
// (transform.go) with the skew/pivot terms dropped: the schema this core
// imports carries X, Y, Rotation, ScaleX, ScaleY only (spec §3).
//
// Composition order: Scale -> Rotate -> Translate(X, Y).
func computeLocalTransform(o *Object) [6]float64 {
	sx := o.ScaleX
	sy := o.ScaleY
	sin, cos := math.Sincos(o.Rotation)

	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy

	return [6]float64{a, b, c, d, o.X, o.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix. Returns the
// identity matrix if the matrix is singular (determinant approx. 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// WorldToLocal converts a world-space point into o's local coordinate
// space by inverting o.WorldTransform (identity if it is singular).
func (o *Object) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(o.WorldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point in o's space to world-space.
func (o *Object) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(o.WorldTransform, lx, ly)
}
