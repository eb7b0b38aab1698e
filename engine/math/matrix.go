package math

import (
	"fmt"
	"strings"

	"github.com/korkuveren/MARS/engine/math/vector"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMatrixIdentity() Matrix {
	return Matrix{Rows: [4]vector.Vector{
		vector.UnitX,
		vector.UnitY,
		vector.UnitZ,
		vector.UnitW,
	}}
}

// NewMatrixFromRows builds a matrix from four row vectors.
func NewMatrixFromRows(r0, r1, r2, r3 vector.Vector) Matrix {
	return Matrix{Rows: [4]vector.Vector{r0, r1, r2, r3}}
}

// NewMatrixFromSlice reads sixteen row-major floats. Shorter slices panic.
func NewMatrixFromSlice(data []float32) Matrix {
	_ = data[15]
	return NewMatrixFromRows(
		vector.LoadSlice(data[0:4]),
		vector.LoadSlice(data[4:8]),
		vector.LoadSlice(data[8:12]),
		vector.LoadSlice(data[12:16]),
	)
}

/**
 * @brief Returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMatrixTranslation(position Spatial3D) Matrix {
	return NewMatrixFromRows(
		vector.New(1, 0, 0, position[0]),
		vector.New(0, 1, 0, position[1]),
		vector.New(0, 0, 1, position[2]),
		vector.UnitW,
	)
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMatrixScale(scale Spatial3D) Matrix {
	return NewMatrixFromRows(
		vector.New(scale[0], 0, 0, 0),
		vector.New(0, scale[1], 0, 0),
		vector.New(0, 0, scale[2], 0),
		vector.UnitW,
	)
}

func NewMatrixUniformScale(scale float32) Matrix {
	return NewMatrixScale(NewSpatial3DScalar(scale))
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically
 * used to render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMatrixOrthographic(left, right, bottom, top, near, far float32) Matrix {
	rw := 1 / (right - left)
	rh := 1 / (top - bottom)
	rd := 1 / (far - near)

	return NewMatrixFromRows(
		vector.New(2*rw, 0, 0, -(right+left)*rw),
		vector.New(0, 2*rh, 0, -(top+bottom)*rh),
		vector.New(0, 0, 2*rd, -(far+near)*rd),
		vector.UnitW,
	)
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param halfFov Half of the field of view in radians.
 * @param aspect The aspect ratio.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMatrixPerspective(halfFov, aspect, near, far float32) Matrix {
	rtan := 1 / ktan(halfFov)
	scaleZ := float32(1)
	if near != far {
		scaleZ = far / (far - near)
	}
	offsetZ := -near * scaleZ

	return NewMatrixFromRows(
		vector.New(rtan, 0, 0, 0),
		vector.New(0, aspect*rtan, 0, 0),
		vector.New(0, 0, scaleZ, offsetZ),
		vector.New(0, 0, 1, 0),
	)
}

/**
 * @brief Builds the matrix that scales, then rotates, then translates.
 *
 * @param translation The translation.
 * @param rotation A unit rotation quaternion.
 * @param scale The per-axis scale.
 * @return The combined transform matrix.
 */
func NewMatrixTransform(translation Spatial3D, rotation Quaternion, scale Spatial3D) Matrix {
	x, y, z, w := rotation[0], rotation[1], rotation[2], rotation[3]

	x2, y2, z2 := x+x, y+y, z+z
	xx2, yy2, zz2 := x*x2, y*y2, z*z2
	xy2, yz2, xz2 := x*y2, y*z2, x*z2
	xw2, yw2, zw2 := w*x2, w*y2, w*z2

	s0, s1, s2 := scale[0], scale[1], scale[2]

	return NewMatrixFromRows(
		vector.New((1-(yy2+zz2))*s0, (xy2-zw2)*s1, (xz2+yw2)*s2, translation[0]),
		vector.New((xy2+zw2)*s0, (1-(xx2+zz2))*s1, (yz2-xw2)*s2, translation[1]),
		vector.New((xz2-yw2)*s0, (yz2+xw2)*s1, (1-(xx2+yy2))*s2, translation[2]),
		vector.UnitW,
	)
}

// Row returns row i.
func (m Matrix) Row(i int) vector.Vector {
	return m.Rows[i]
}

// Data returns the sixteen elements in row-major order.
func (m Matrix) Data() [16]float32 {
	var out [16]float32
	for i := range m.Rows {
		m.Rows[i].Store(out[i*4 : i*4+4])
	}
	return out
}

func (m Matrix) Add(o Matrix) Matrix {
	for i := range m.Rows {
		m.Rows[i] = m.Rows[i].Add(o.Rows[i])
	}
	return m
}

func (m Matrix) Sub(o Matrix) Matrix {
	for i := range m.Rows {
		m.Rows[i] = m.Rows[i].Sub(o.Rows[i])
	}
	return m
}

func (m Matrix) MulScalar(f float32) Matrix {
	amt := vector.Load1(f)
	for i := range m.Rows {
		m.Rows[i] = m.Rows[i].Mul(amt)
	}
	return m
}

/**
 * @brief Returns the result of multiplying m and o. The product applies o
 * first, so m.Mul(o).Transform(v) == m.Transform(o.Transform(v)).
 *
 * @param o The right-hand matrix.
 * @return The product matrix.
 */
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for i, row := range m.Rows {
		r := o.Rows[0].Mul(row.Replicate(0))
		r = o.Rows[1].Mad(row.Replicate(1), r)
		r = o.Rows[2].Mad(row.Replicate(2), r)
		out.Rows[i] = o.Rows[3].Mad(row.Replicate(3), r)
	}
	return out
}

// Compare reports whether every element is exactly equal.
func (m Matrix) Compare(o Matrix) bool {
	for i := range m.Rows {
		if m.Rows[i].NotEqual(o.Rows[i]).AnyTrue() {
			return false
		}
	}
	return true
}

// Equals reports whether every element differs by less than eps.
func (m Matrix) Equals(o Matrix, eps float32) bool {
	for i := range m.Rows {
		if m.Rows[i].ApproxNotEqual(o.Rows[i], eps).AnyTrue() {
			return false
		}
	}
	return true
}

// Transform returns m·v.
func (m Matrix) Transform(v vector.Vector) vector.Vector {
	return v.Transform(&m.Rows)
}

// TransformPoint applies m to p with w = 1.
func (m Matrix) TransformPoint(p Spatial3D) Spatial3D {
	return Spatial3D(m.Transform(p.Vector4(1)).WithW(0))
}

// TransformDirection applies m to d with w = 0, ignoring translation.
func (m Matrix) TransformDirection(d Spatial3D) Spatial3D {
	return Spatial3D(m.Transform(d.Vector4(0)).WithW(0))
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := range out.Rows {
		out.Rows[i] = vector.New(m.Rows[0][i], m.Rows[1][i], m.Rows[2][i], m.Rows[3][i])
	}
	return out
}

// Determinant3x3 returns the determinant of the upper-left 3x3 block.
func (m Matrix) Determinant3x3() float32 {
	r := &m.Rows
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[1][0]*(r[0][1]*r[2][2]-r[0][2]*r[2][1]) +
		r[2][0]*(r[0][1]*r[1][2]-r[0][2]*r[1][1])
}

// cofactors holds the 2x2 minors of the top two rows (s) and bottom two
// rows (c) that the determinant and the inverse share.
type cofactors struct {
	s, c [6]float32
}

func (m *Matrix) cofactors() cofactors {
	M := &m.Rows
	var f cofactors
	f.s[0] = M[0][0]*M[1][1] - M[1][0]*M[0][1]
	f.s[1] = M[0][0]*M[1][2] - M[1][0]*M[0][2]
	f.s[2] = M[0][0]*M[1][3] - M[1][0]*M[0][3]
	f.s[3] = M[0][1]*M[1][2] - M[1][1]*M[0][2]
	f.s[4] = M[0][1]*M[1][3] - M[1][1]*M[0][3]
	f.s[5] = M[0][2]*M[1][3] - M[1][2]*M[0][3]

	f.c[5] = M[2][2]*M[3][3] - M[3][2]*M[2][3]
	f.c[4] = M[2][1]*M[3][3] - M[3][1]*M[2][3]
	f.c[3] = M[2][1]*M[3][2] - M[3][1]*M[2][2]
	f.c[2] = M[2][0]*M[3][3] - M[3][0]*M[2][3]
	f.c[1] = M[2][0]*M[3][2] - M[3][0]*M[2][2]
	f.c[0] = M[2][0]*M[3][1] - M[3][0]*M[2][1]
	return f
}

func (f *cofactors) determinant() float32 {
	s, c := &f.s, &f.c
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Determinant4x4 returns the determinant of the full matrix.
func (m Matrix) Determinant4x4() float32 {
	f := m.cofactors()
	return f.determinant()
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields infinities and NaNs rather than an error.
 *
 * @return A inverted copy of the provided matrix.
 */
func (m Matrix) Inverse() Matrix {
	f := m.cofactors()
	rdet := 1 / f.determinant()
	M, s, c := &m.Rows, &f.s, &f.c

	return NewMatrixFromRows(
		vector.New(
			(M[1][1]*c[5]-M[1][2]*c[4]+M[1][3]*c[3])*rdet,
			(-M[0][1]*c[5]+M[0][2]*c[4]-M[0][3]*c[3])*rdet,
			(M[3][1]*s[5]-M[3][2]*s[4]+M[3][3]*s[3])*rdet,
			(-M[2][1]*s[5]+M[2][2]*s[4]-M[2][3]*s[3])*rdet,
		),
		vector.New(
			(-M[1][0]*c[5]+M[1][2]*c[2]-M[1][3]*c[1])*rdet,
			(M[0][0]*c[5]-M[0][2]*c[2]+M[0][3]*c[1])*rdet,
			(-M[3][0]*s[5]+M[3][2]*s[2]-M[3][3]*s[1])*rdet,
			(M[2][0]*s[5]-M[2][2]*s[2]+M[2][3]*s[1])*rdet,
		),
		vector.New(
			(M[1][0]*c[4]-M[1][1]*c[2]+M[1][3]*c[0])*rdet,
			(-M[0][0]*c[4]+M[0][1]*c[2]-M[0][3]*c[0])*rdet,
			(M[3][0]*s[4]-M[3][1]*s[2]+M[3][3]*s[0])*rdet,
			(-M[2][0]*s[4]+M[2][1]*s[2]-M[2][3]*s[0])*rdet,
		),
		vector.New(
			(-M[1][0]*c[3]+M[1][1]*c[1]-M[1][2]*c[0])*rdet,
			(M[0][0]*c[3]-M[0][1]*c[1]+M[0][2]*c[0])*rdet,
			(-M[3][0]*s[3]+M[3][1]*s[1]-M[3][2]*s[0])*rdet,
			(M[2][0]*s[3]-M[2][1]*s[1]+M[2][2]*s[0])*rdet,
		),
	)
}

// inverseScale returns 1/|column| for the first three columns and 1 in w.
func (m *Matrix) inverseScale() vector.Vector {
	sum := vector.Zero
	for _, row := range m.Rows {
		sum = row.Mad(row, sum)
	}
	return vector.Select(vector.MaskXYZ, sum.RSqrt(), vector.One)
}

// Scale returns the length of each of the first three columns.
func (m Matrix) Scale() Spatial3D {
	return Spatial3D(m.inverseScale().Reciprocal().WithW(0))
}

// WithoutScale returns m with its first three columns normalized.
func (m Matrix) WithoutScale() Matrix {
	m.RemoveScale()
	return m
}

// RemoveScale normalizes the first three columns in place and returns the
// scale that was removed.
func (m *Matrix) RemoveScale() Spatial3D {
	inv := m.inverseScale()
	for i := range m.Rows {
		m.Rows[i] = m.Rows[i].Mul(inv)
	}
	return Spatial3D(inv.Reciprocal().WithW(0))
}

// ApplyScale multiplies the first three columns by scale.
func (m Matrix) ApplyScale(scale Spatial3D) Matrix {
	s := scale.Vector4(1)
	for i := range m.Rows {
		m.Rows[i] = m.Rows[i].Mul(s)
	}
	return m
}

// Translation returns the fourth column.
func (m Matrix) Translation() Spatial3D {
	return NewSpatial3D(m.Rows[0][3], m.Rows[1][3], m.Rows[2][3])
}

/**
 * @brief Extracts the rotation of a scale-rotate-translate matrix.
 *
 * @return A unit quaternion q with q.Rotate(v) matching the rotation part.
 */
func (m Matrix) Rotation() Quaternion {
	r := m.WithoutScale().Rows
	var x, y, z, w float32

	trace := r[0][0] + r[1][1] + r[2][2]
	switch {
	case trace > 0:
		s := 0.5 / ksqrt(trace+1)
		w = 0.25 / s
		x = (r[1][2] - r[2][1]) * s
		y = (r[2][0] - r[0][2]) * s
		z = (r[0][1] - r[1][0]) * s
	case r[0][0] > r[1][1] && r[0][0] > r[2][2]:
		s := 2 * ksqrt(1+r[0][0]-r[1][1]-r[2][2])
		w = (r[1][2] - r[2][1]) / s
		x = 0.25 * s
		y = (r[1][0] + r[0][1]) / s
		z = (r[2][0] + r[0][2]) / s
	case r[1][1] > r[2][2]:
		s := 2 * ksqrt(1+r[1][1]-r[0][0]-r[2][2])
		w = (r[2][0] - r[0][2]) / s
		x = (r[1][0] + r[0][1]) / s
		y = 0.25 * s
		z = (r[1][2] + r[2][1]) / s
	default:
		s := 2 * ksqrt(1+r[2][2]-r[0][0]-r[1][1])
		w = (r[0][1] - r[1][0]) / s
		x = (r[2][0] + r[0][2]) / s
		y = (r[1][2] + r[2][1]) / s
		z = 0.25 * s
	}
	// (x, y, z, w) above is the conjugate rotation; flipping w gives the
	// negated quaternion of the same rotation.
	return NewQuaternion(x, y, z, -w).Normalized(K_NORMALIZE_EPSILON)
}

/**
 * @brief Extracts the six clipping planes of a view-projection matrix.
 *
 * @return The planes in the order near, far, bottom, top, left, right,
 * each with its normal pointing into the frustum.
 */
func (m Matrix) FrustumPlanes() [6]Plane {
	r := &m.Rows
	return [6]Plane{
		Plane(r[3].Add(r[2])).Normalized(),
		Plane(r[3].Sub(r[2])).Normalized(),
		Plane(r[3].Add(r[1])).Normalized(),
		Plane(r[3].Sub(r[1])).Normalized(),
		Plane(r[3].Add(r[0])).Normalized(),
		Plane(r[3].Sub(r[0])).Normalized(),
	}
}

// NormalMatrix returns the inverse transpose, used to transform normals
// and planes.
func (m Matrix) NormalMatrix() Matrix {
	return m.Inverse().Transpose()
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", row[0], row[1], row[2], row[3])
	}
	return sb.String()
}
