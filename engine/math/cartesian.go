package math

import (
	"fmt"

	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/math/vector"
)

// ------------------------------------------
// Cartesian3D
// ------------------------------------------

func NewCartesian3D(x, y, z float32) Cartesian3D {
	return Cartesian3D(vector.Load3(x, y, z))
}

// Vector returns the underlying lanes.
func (c Cartesian3D) Vector() vector.Vector { return vector.Vector(c) }

func (c Cartesian3D) Add(o Cartesian3D) Cartesian3D {
	return Cartesian3D(c.Vector().Add(o.Vector()))
}

func (c Cartesian3D) Sub(o Cartesian3D) Cartesian3D {
	return Cartesian3D(c.Vector().Sub(o.Vector()))
}

func (c Cartesian3D) Mul(o Cartesian3D) Cartesian3D {
	return Cartesian3D(c.Vector().Mul(o.Vector()))
}

// Div divides the xyz lanes. The w lane stays zero.
func (c Cartesian3D) Div(o Cartesian3D) Cartesian3D {
	return Cartesian3D(c.Vector().Div(o.Vector().WithW(1)).WithW(0))
}

func (c Cartesian3D) AddScalar(f float32) Cartesian3D {
	return Cartesian3D(c.Vector().Add(vector.Load3(f, f, f)))
}

func (c Cartesian3D) SubScalar(f float32) Cartesian3D {
	return Cartesian3D(c.Vector().Sub(vector.Load3(f, f, f)))
}

func (c Cartesian3D) Scale(f float32) Cartesian3D {
	return Cartesian3D(c.Vector().Scale(f))
}

func (c Cartesian3D) DivScalar(f float32) Cartesian3D {
	return Cartesian3D(c.Vector().Div(vector.Load1(f)).WithW(0))
}

func (c Cartesian3D) Neg() Cartesian3D { return Cartesian3D(c.Vector().Neg()) }
func (c Cartesian3D) Abs() Cartesian3D { return Cartesian3D(c.Vector().Abs()) }

func (c Cartesian3D) Min(o Cartesian3D) Cartesian3D { return Cartesian3D(c.Vector().Min(o.Vector())) }
func (c Cartesian3D) Max(o Cartesian3D) Cartesian3D { return Cartesian3D(c.Vector().Max(o.Vector())) }

// Component returns x, y or z for i = 0, 1, 2.
func (c Cartesian3D) Component(i int) float32 {
	checkComponent(i)
	return c[i]
}

// WithComponent returns c with component i replaced by f.
func (c Cartesian3D) WithComponent(i int, f float32) Cartesian3D {
	checkComponent(i)
	return Cartesian3D(vector.Select(vector.MaskExcept(i), c.Vector(), vector.Load1(f)))
}

func checkComponent(i int) {
	if i < 0 || i > 2 {
		panic(fmt.Errorf("component %d: %w", i, core.ErrIndexOutOfRange))
	}
}

func (c Cartesian3D) MaxComponent() float32 { return c.Vector().HorizontalMax3() }
func (c Cartesian3D) MinComponent() float32 { return c.Vector().HorizontalMin3() }

func (c Cartesian3D) AbsMaxComponent() float32 { return c.Vector().Abs().HorizontalMax3() }
func (c Cartesian3D) AbsMinComponent() float32 { return c.Vector().Abs().HorizontalMin3() }

func (c Cartesian3D) Dot(o Cartesian3D) float32 { return c.Vector().Dot3f(o.Vector()) }

func (c Cartesian3D) Cross(o Cartesian3D) Cartesian3D {
	return Cartesian3D(c.Vector().Cross3(o.Vector()))
}

func (c Cartesian3D) LengthSquared() float32 { return c.Vector().LengthSquared3() }
func (c Cartesian3D) Length() float32        { return c.Vector().Length3() }

func (c Cartesian3D) DistSquared(o Cartesian3D) float32 { return c.Sub(o).LengthSquared() }
func (c Cartesian3D) Dist(o Cartesian3D) float32        { return c.Sub(o).Length() }

/**
 * @brief Returns a unit-length copy.
 *
 * @param eps Squared length under which zero is returned.
 * @return The normalized value, or zero for degenerate input.
 */
func (c Cartesian3D) Normalized(eps float32) Cartesian3D {
	if c.LengthSquared() < eps {
		return Cartesian3D{}
	}
	return Cartesian3D(c.Vector().Normalize3())
}

// IsNormalized reports whether |1 - |c|²| < eps.
func (c Cartesian3D) IsNormalized(eps float32) bool {
	return kabs(1-c.LengthSquared()) < eps
}

// DirAndLength splits c into a unit direction and its length. Zero input
// gives NaN direction lanes and a zero length.
func (c Cartesian3D) DirAndLength() (Cartesian3D, float32) {
	rlen := c.Vector().RLength3()
	return Cartesian3D(c.Vector().Mul(rlen)), 1 / rlen[0]
}

// Project divides x and y by z.
func (c Cartesian3D) Project() Cartesian3D {
	return Cartesian3D(c.Vector().Div(c.Vector().Replicate(2)).WithW(0))
}

func (c Cartesian3D) Reciprocal() Cartesian3D {
	return Cartesian3D(c.Vector().WithW(1).Reciprocal().WithW(0))
}

// Reflect mirrors c about the unit normal n.
func (c Cartesian3D) Reflect(n Cartesian3D) Cartesian3D {
	d := c.Vector().Dot3(n.Vector())
	return Cartesian3D(c.Vector().Sub(n.Vector().Mul(d.Add(d))))
}

/**
 * @brief Rotates about a unit axis.
 *
 * @param axis The unit rotation axis.
 * @param angle The angle in radians.
 * @return The rotated value.
 */
func (c Cartesian3D) Rotate(axis Cartesian3D, angle float32) Cartesian3D {
	sin, cos := ksincos(-angle)
	v, a := c.Vector(), axis.Vector()

	rx := v.Cross3(a.Scale(sin))
	ry := a.Mul(v.Dot3(a.Scale(1 - cos)))
	rz := v.Scale(cos)
	return Cartesian3D(rx.Add(ry).Add(rz))
}

// Refract bends c through a surface with unit normal n. Total internal
// reflection returns zero.
func (c Cartesian3D) Refract(n Cartesian3D, ior float32) Cartesian3D {
	cosAngle := c.Dot(n)
	k := 1 - ior*ior*(1-cosAngle*cosAngle)
	if k < 0 {
		return Cartesian3D{}
	}
	scale := ior*cosAngle + ksqrt(k)
	return Cartesian3D(c.Vector().Scale(ior).Sub(n.Vector().Scale(scale)))
}

// Lerp blends c towards o by t.
func (c Cartesian3D) Lerp(o Cartesian3D, t float32) Cartesian3D {
	return Cartesian3D(vector.Lerp(c.Vector(), o.Vector(), t))
}

// Equals reports whether every component differs by less than eps.
func (c Cartesian3D) Equals(o Cartesian3D, eps float32) bool {
	return c.Vector().ApproxEqual(o.Vector(), eps).AllTrue3()
}

// EqualsScalar reports whether every component is within eps of f.
func (c Cartesian3D) EqualsScalar(f, eps float32) bool {
	return c.Vector().ApproxEqual(vector.Load1(f), eps).AllTrue3()
}

func (c Cartesian3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c[0], c[1], c[2])
}

// ------------------------------------------
// Spatial3D
// ------------------------------------------

var (
	Spatial3DZero  = NewSpatial3D(0, 0, 0)
	Spatial3DOne   = NewSpatial3D(1, 1, 1)
	Spatial3DFront = NewSpatial3D(1, 0, 0)
	Spatial3DRight = NewSpatial3D(0, 1, 0)
	Spatial3DUp    = NewSpatial3D(0, 0, 1)
)

/**
 * @brief Creates and returns a new point or direction.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new Spatial3D with w = 0.
 */
func NewSpatial3D(x, y, z float32) Spatial3D {
	return Spatial3D(vector.Load3(x, y, z))
}

// NewSpatial3DScalar replicates f into x, y and z.
func NewSpatial3DScalar(f float32) Spatial3D {
	return NewSpatial3D(f, f, f)
}

func (s Spatial3D) Inner() Cartesian3D    { return Cartesian3D(s) }
func (s Spatial3D) Vector() vector.Vector { return vector.Vector(s) }

// Vector4 returns the lanes with w replaced by the supplied value, 1 for
// points and 0 for directions.
func (s Spatial3D) Vector4(w float32) vector.Vector {
	return s.Vector().WithW(w)
}

func (s Spatial3D) X() float32 { return s[0] }
func (s Spatial3D) Y() float32 { return s[1] }
func (s Spatial3D) Z() float32 { return s[2] }

// As2D drops the z component.
func (s Spatial3D) As2D() Cartesian2D { return Cartesian2D{s[0], s[1]} }

func (s Spatial3D) Add(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Add(o.Inner())) }
func (s Spatial3D) Sub(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Sub(o.Inner())) }
func (s Spatial3D) Mul(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Mul(o.Inner())) }
func (s Spatial3D) Div(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Div(o.Inner())) }
func (s Spatial3D) Scale(f float32) Spatial3D { return Spatial3D(s.Inner().Scale(f)) }
func (s Spatial3D) Neg() Spatial3D            { return Spatial3D(s.Inner().Neg()) }
func (s Spatial3D) Abs() Spatial3D            { return Spatial3D(s.Inner().Abs()) }

func (s Spatial3D) AddScalar(f float32) Spatial3D { return Spatial3D(s.Inner().AddScalar(f)) }
func (s Spatial3D) DivScalar(f float32) Spatial3D { return Spatial3D(s.Inner().DivScalar(f)) }

func (s Spatial3D) Min(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Min(o.Inner())) }
func (s Spatial3D) Max(o Spatial3D) Spatial3D { return Spatial3D(s.Inner().Max(o.Inner())) }

func (s Spatial3D) Dot(o Spatial3D) float32 { return s.Inner().Dot(o.Inner()) }
func (s Spatial3D) Cross(o Spatial3D) Spatial3D {
	return Spatial3D(s.Inner().Cross(o.Inner()))
}

func (s Spatial3D) LengthSquared() float32 { return s.Inner().LengthSquared() }
func (s Spatial3D) Length() float32        { return s.Inner().Length() }

func (s Spatial3D) DistSquared(o Spatial3D) float32 { return s.Inner().DistSquared(o.Inner()) }
func (s Spatial3D) Dist(o Spatial3D) float32        { return s.Inner().Dist(o.Inner()) }

// Normalized returns a unit-length copy, or zero when |s|² < eps.
func (s Spatial3D) Normalized(eps float32) Spatial3D {
	return Spatial3D(s.Inner().Normalized(eps))
}

// Normalize is Normalized with the default epsilon.
func (s Spatial3D) Normalize() Spatial3D {
	return s.Normalized(K_NORMALIZE_EPSILON)
}

func (s Spatial3D) IsNormalized(eps float32) bool { return s.Inner().IsNormalized(eps) }

func (s Spatial3D) DirAndLength() (Spatial3D, float32) {
	dir, length := s.Inner().DirAndLength()
	return Spatial3D(dir), length
}

func (s Spatial3D) Project() Spatial3D    { return Spatial3D(s.Inner().Project()) }
func (s Spatial3D) Reciprocal() Spatial3D { return Spatial3D(s.Inner().Reciprocal()) }

func (s Spatial3D) Reflect(n Spatial3D) Spatial3D {
	return Spatial3D(s.Inner().Reflect(n.Inner()))
}

// Rotate turns the direction about a unit axis by angle radians.
func (s Spatial3D) Rotate(axis Spatial3D, angle float32) Spatial3D {
	return Spatial3D(s.Inner().Rotate(axis.Inner(), angle))
}

func (s Spatial3D) Refract(n Spatial3D, ior float32) Spatial3D {
	return Spatial3D(s.Inner().Refract(n.Inner(), ior))
}

func (s Spatial3D) Lerp(o Spatial3D, t float32) Spatial3D {
	return Spatial3D(s.Inner().Lerp(o.Inner(), t))
}

func (s Spatial3D) MaxComponent() float32    { return s.Inner().MaxComponent() }
func (s Spatial3D) MinComponent() float32    { return s.Inner().MinComponent() }
func (s Spatial3D) AbsMaxComponent() float32 { return s.Inner().AbsMaxComponent() }
func (s Spatial3D) AbsMinComponent() float32 { return s.Inner().AbsMinComponent() }

func (s Spatial3D) WithComponent(i int, f float32) Spatial3D {
	return Spatial3D(s.Inner().WithComponent(i, f))
}

func (s Spatial3D) Equals(o Spatial3D, eps float32) bool {
	return s.Inner().Equals(o.Inner(), eps)
}

func (s Spatial3D) String() string { return s.Inner().String() }

// ------------------------------------------
// Euler3D
// ------------------------------------------

var Euler3DZero = NewEuler3D(0, 0, 0)

/**
 * @brief Creates a set of Euler angles.
 *
 * @param roll Rotation stored in the x lane.
 * @param pitch Rotation stored in the y lane.
 * @param yaw Rotation stored in the z lane.
 */
func NewEuler3D(roll, pitch, yaw float32) Euler3D {
	return Euler3D(vector.Load3(roll, pitch, yaw))
}

// NewEuler3DFromPitchYaw is NewEuler3D for callers that mostly ignore roll.
func NewEuler3DFromPitchYaw(pitch, yaw, roll float32) Euler3D {
	return NewEuler3D(roll, pitch, yaw)
}

func (e Euler3D) Inner() Cartesian3D    { return Cartesian3D(e) }
func (e Euler3D) Vector() vector.Vector { return vector.Vector(e) }

func (e Euler3D) Roll() float32  { return e[0] }
func (e Euler3D) Pitch() float32 { return e[1] }
func (e Euler3D) Yaw() float32   { return e[2] }

func (e Euler3D) Add(o Euler3D) Euler3D { return Euler3D(e.Inner().Add(o.Inner())) }
func (e Euler3D) Sub(o Euler3D) Euler3D { return Euler3D(e.Inner().Sub(o.Inner())) }
func (e Euler3D) Mul(o Euler3D) Euler3D { return Euler3D(e.Inner().Mul(o.Inner())) }
func (e Euler3D) Div(o Euler3D) Euler3D { return Euler3D(e.Inner().Div(o.Inner())) }
func (e Euler3D) Scale(f float32) Euler3D {
	return Euler3D(e.Inner().Scale(f))
}
func (e Euler3D) Neg() Euler3D { return Euler3D(e.Inner().Neg()) }
func (e Euler3D) Abs() Euler3D { return Euler3D(e.Inner().Abs()) }

func (e Euler3D) Min(o Euler3D) Euler3D { return Euler3D(e.Inner().Min(o.Inner())) }
func (e Euler3D) Max(o Euler3D) Euler3D { return Euler3D(e.Inner().Max(o.Inner())) }

// Lerp blends each angle towards o by t without wrapping.
func (e Euler3D) Lerp(o Euler3D, t float32) Euler3D {
	return Euler3D(e.Inner().Lerp(o.Inner(), t))
}

func (e Euler3D) MaxComponent() float32 { return e.Inner().MaxComponent() }
func (e Euler3D) MinComponent() float32 { return e.Inner().MinComponent() }

func (e Euler3D) WithComponent(i int, f float32) Euler3D {
	return Euler3D(e.Inner().WithComponent(i, f))
}

func (e Euler3D) ToDegrees() Euler3D { return e.Scale(K_RAD2DEG_MULTIPLIER) }
func (e Euler3D) ToRadians() Euler3D { return e.Scale(K_DEG2RAD_MULTIPLIER) }

func (e Euler3D) Equals(o Euler3D, eps float32) bool {
	return e.Inner().Equals(o.Inner(), eps)
}

// ToQuaternion is not supported: no rotation order has been chosen for
// Euler angles. It always panics with core.ErrUnsupported.
func (e Euler3D) ToQuaternion() Quaternion {
	panic(fmt.Errorf("Euler3D.ToQuaternion: %w", core.ErrUnsupported))
}

func (e Euler3D) String() string { return e.Inner().String() }
