package geom

import "math"

// AffineTransform is a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
//
// Where:
// - a, d = scale
// - b, c = skew/rotation
// - e, f = translation
type AffineTransform [6]float64

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation transform.
func Translate(tx, ty float64) AffineTransform {
	return AffineTransform{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale transform.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(radians float64) AffineTransform {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return AffineTransform{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees returns a rotation transform (angle in degrees).
func RotateDegrees(degrees float64) AffineTransform {
	return Rotate(degrees * math.Pi / 180.0)
}

// NewAffineTransform places a node at (x, y) rotated by rotation degrees
// around its local origin: Translate(x, y) * Rotate(rotation).
func NewAffineTransform(x, y, rotation float64) AffineTransform {
	return Translate(x, y).Multiply(RotateDegrees(rotation))
}

// FromRows builds a transform from the row-major form used by document files:
// [[a, c, e], [b, d, f]].
func FromRows(rows [2][3]float64) AffineTransform {
	return AffineTransform{
		rows[0][0], rows[1][0],
		rows[0][1], rows[1][1],
		rows[0][2], rows[1][2],
	}
}

// Rows returns the row-major form [[a, c, e], [b, d, f]].
func (m AffineTransform) Rows() [2][3]float64 {
	return [2][3]float64{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
	}
}

// Multiply multiplies this transform by another: result = m * other
// This applies 'other' first, then 'm'.
func (m AffineTransform) Multiply(other AffineTransform) AffineTransform {
	return AffineTransform{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// TransformPoint applies the transform to a point.
func (m AffineTransform) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformRect transforms a rectangle and returns its axis-aligned bounding box.
func (m AffineTransform) TransformRect(r Rect) Rect {
	return BoundsOf([]Point{
		m.TransformPoint(Point{r.X, r.Y}),
		m.TransformPoint(Point{r.X + r.Width, r.Y}),
		m.TransformPoint(Point{r.X + r.Width, r.Y + r.Height}),
		m.TransformPoint(Point{r.X, r.Y + r.Height}),
	})
}

// Determinant returns the determinant of the transform.
func (m AffineTransform) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the transform, or Identity if not invertible.
func (m AffineTransform) Invert() AffineTransform {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}

	invDet := 1.0 / det
	return AffineTransform{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// Translation returns the translation component.
func (m AffineTransform) Translation() Point {
	return Point{X: m[4], Y: m[5]}
}

// ToSlice returns the transform as a float64 slice for JSON serialization.
func (m AffineTransform) ToSlice() []float64 {
	return []float64{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// IsIdentity checks if this is the identity transform (within epsilon).
func (m AffineTransform) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m[0]-1) < eps &&
		math.Abs(m[1]) < eps &&
		math.Abs(m[2]) < eps &&
		math.Abs(m[3]-1) < eps &&
		math.Abs(m[4]) < eps &&
		math.Abs(m[5]) < eps
}
