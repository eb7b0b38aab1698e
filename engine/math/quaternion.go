package math

import (
	"fmt"

	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/math/vector"
)

// QuaternionIdentity is the rotation that leaves every vector unchanged.
var QuaternionIdentity = NewQuatIdentity()

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion(vector.New(x, y, z, w))
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion(vector.UnitW)
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The unit axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Spatial3D, angle float32) Quaternion {
	sin, cos := ksincos(angle * 0.5)
	return NewQuaternion(axis[0]*sin, axis[1]*sin, axis[2]*sin, cos)
}

// NewQuatFromEuler is not supported and always panics with
// core.ErrUnsupported.
func NewQuatFromEuler(e Euler3D) Quaternion {
	panic(fmt.Errorf("NewQuatFromEuler %v: %w", e, core.ErrUnsupported))
}

func (q Quaternion) Vector() vector.Vector { return vector.Vector(q) }

func (q Quaternion) X() float32 { return q[0] }
func (q Quaternion) Y() float32 { return q[1] }
func (q Quaternion) Z() float32 { return q[2] }
func (q Quaternion) W() float32 { return q[3] }

func (q Quaternion) Add(o Quaternion) Quaternion { return Quaternion(q.Vector().Add(o.Vector())) }
func (q Quaternion) Sub(o Quaternion) Quaternion { return Quaternion(q.Vector().Sub(o.Vector())) }
func (q Quaternion) Neg() Quaternion             { return Quaternion(q.Vector().Neg()) }

func (q Quaternion) MulScalar(f float32) Quaternion {
	return Quaternion(q.Vector().Scale(f))
}

func (q Quaternion) DivScalar(f float32) Quaternion {
	return q.MulScalar(1 / f)
}

/**
 * @brief Multiplies the provided quaternions. The result rotates by o first
 * and q second.
 *
 * @param o The right-hand quaternion.
 * @return The product quaternion.
 */
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion(vector.QuatMul(q.Vector(), o.Vector()))
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Spatial3D) Spatial3D {
	return Spatial3D(vector.QuatRotate(q.Vector(), v.Vector()).WithW(0))
}

// RotateQuat rotates s by q. It is q.Rotate(s) from the vector's side.
func (s Spatial3D) RotateQuat(q Quaternion) Spatial3D {
	return q.Rotate(s)
}

func (q Quaternion) AxisX() Spatial3D { return q.Rotate(Spatial3DFront) }
func (q Quaternion) AxisY() Spatial3D { return q.Rotate(Spatial3DRight) }
func (q Quaternion) AxisZ() Spatial3D { return q.Rotate(Spatial3DUp) }

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param o The other quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.Vector().Dot4f(o.Vector())
}

func (q Quaternion) LengthSquared() float32 { return q.Vector().LengthSquared4() }
func (q Quaternion) Length() float32        { return ksqrt(q.LengthSquared()) }

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @param eps Squared length under which the identity is returned.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalized(eps float32) Quaternion {
	if q.LengthSquared() < eps {
		return QuaternionIdentity
	}
	return Quaternion(q.Vector().Normalize4())
}

// NormalizedDefault is Normalized with the default epsilon.
func (q Quaternion) NormalizedDefault() Quaternion {
	return q.Normalized(K_NORMALIZE_EPSILON)
}

// IsNormalized reports whether |1 - |q|²| < eps.
func (q Quaternion) IsNormalized(eps float32) bool {
	return kabs(1-q.LengthSquared()) < eps
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return NewQuaternion(-q[0], -q[1], -q[2], q[3])
}

// Inverse returns the conjugate of the normalized quaternion.
func (q Quaternion) Inverse() Quaternion {
	return q.NormalizedDefault().Conjugate()
}

// Axis returns the rotation axis. The identity yields NaN lanes.
func (q Quaternion) Axis() Spatial3D {
	w := q[3]
	rangle := 1 / ksqrt(max(1-w*w, 0))
	return Spatial3D(q.Vector().Scale(rangle).WithW(0))
}

// Angle returns the rotation angle in radians.
func (q Quaternion) Angle() float32 {
	return 2 * kacos(q[3])
}

func (q Quaternion) AxisAngle() (Spatial3D, float32) {
	return q.Axis(), q.Angle()
}

/**
 * @brief Calculates a spherical linear interpolation towards dest along
 * the shorter arc.
 *
 * @param dest The destination quaternion.
 * @param t The interpolation amount in [0, 1].
 * @param eps Angles whose cosine is within eps of 1 fall back to linear
 * weights.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(dest Quaternion, t, eps float32) Quaternion {
	cosInit := q.Dot(dest)
	cosAngle := kabs(cosInit)

	lerp1, lerp2 := 1-t, t
	if cosAngle < 1-eps {
		rsin := 1 / ksqrt(1-cosAngle*cosAngle)
		angle := kacos(cosAngle)
		s1, _ := ksincos(lerp1 * angle)
		s2, _ := ksincos(lerp2 * angle)
		lerp1 = s1 * rsin
		lerp2 = s2 * rsin
	}
	if cosInit < 0 {
		lerp2 = -lerp2
	}
	return q.MulScalar(lerp1).Add(dest.MulScalar(lerp2))
}

// Lerp blends towards dest, flipping dest's sign when needed to stay on the
// shorter arc. The result is not normalized.
func (q Quaternion) Lerp(dest Quaternion, t float32) Quaternion {
	dir := float32(1)
	if q.Dot(dest) < 0 {
		dir = -1
	}
	return dest.MulScalar(t).Add(q.MulScalar(dir * (1 - t)))
}

// Compare reports exact equality of the four lanes.
func (q Quaternion) Compare(o Quaternion) bool {
	return !q.Vector().NotEqual(o.Vector()).AnyTrue()
}

// Equals reports whether q and o describe the same rotation within eps,
// accepting either sign.
func (q Quaternion) Equals(o Quaternion, eps float32) bool {
	return q.Vector().ApproxEqual(o.Vector(), eps).AllTrue() ||
		q.Vector().ApproxEqual(o.Neg().Vector(), eps).AllTrue()
}

// ToEuler is not supported and always panics with core.ErrUnsupported.
func (q Quaternion) ToEuler() Euler3D {
	panic(fmt.Errorf("Quaternion.ToEuler: %w", core.ErrUnsupported))
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q[0], q[1], q[2], q[3])
}
