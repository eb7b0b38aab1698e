package math

import (
	"fmt"

	"github.com/korkuveren/MARS/engine/math/vector"
)

/**
 * @brief Creates a plane from a normal and a signed distance. A point p lies
 * on the plane when normal·p + distance == 0.
 *
 * @param normal The plane normal. It is not normalized here.
 * @param distance The distance term stored in w.
 * @return A new plane.
 */
func NewPlane(normal Spatial3D, distance float32) Plane {
	return Plane(normal.Vector4(distance))
}

// NewPlaneFromVector reinterprets v as (normal, distance).
func NewPlaneFromVector(v vector.Vector) Plane {
	return Plane(v)
}

func (p Plane) Vector() vector.Vector { return vector.Vector(p) }

// Normal returns the unit normal.
func (p Plane) Normal() Spatial3D {
	return Spatial3D(p.Vector().Normalize3().WithW(0))
}

func (p Plane) Distance() float32 { return p[3] }

// Dot returns the signed distance of point from a normalized plane.
func (p Plane) Dot(point Spatial3D) float32 {
	return point.Vector4(1).Dot4f(p.Vector())
}

// DotVector is the four-lane dot product with v as given.
func (p Plane) DotVector(v vector.Vector) float32 {
	return v.Dot4f(p.Vector())
}

func (p Plane) DotPlane(o Plane) float32 {
	return o.Vector().Dot4f(p.Vector())
}

// Normalized scales the whole plane so the normal has unit length.
func (p Plane) Normalized() Plane {
	return Plane(p.Vector().Normalize3())
}

func (p Plane) IsNormalized(eps float32) bool {
	return kabs(1-p.Vector().LengthSquared3()) < eps
}

func (p Plane) Abs() Plane { return Plane(p.Vector().Abs()) }
func (p Plane) Neg() Plane { return Plane(p.Vector().Neg()) }

func (p Plane) Add(o Plane) Plane     { return Plane(p.Vector().Add(o.Vector())) }
func (p Plane) Sub(o Plane) Plane     { return Plane(p.Vector().Sub(o.Vector())) }
func (p Plane) Mul(o Plane) Plane     { return Plane(p.Vector().Mul(o.Vector())) }
func (p Plane) Scale(f float32) Plane { return Plane(p.Vector().Scale(f)) }

// Reflect mirrors point across a normalized plane.
func (p Plane) Reflect(point Spatial3D) Spatial3D {
	v := point.Vector4(1)
	d := vector.Two.Mul(p.Vector().Dot4(v))
	return Spatial3D(v.Sub(p.Vector().Mul(d)).WithW(0))
}

/**
 * @brief Finds where a ray crosses the plane.
 *
 * @param start The ray origin.
 * @param dir The ray direction.
 * @return The ray parameter t, so the hit is start + dir·t. A ray parallel
 * to the plane gives ±Inf or NaN.
 */
func (p Plane) IntersectRay(start, dir Spatial3D) float32 {
	return -p.Dot(start) / dir.Dot(p.Normal())
}

// IntersectLine is IntersectRay along end - start, so a hit between the
// two points has t in [0, 1].
func (p Plane) IntersectLine(start, end Spatial3D) float32 {
	return p.IntersectRay(start, end.Sub(start))
}

// Transform maps the plane through m using its normal matrix and
// renormalizes the result.
func (p Plane) Transform(m Matrix) Plane {
	return Plane(m.NormalMatrix().Transform(p.Vector())).Normalized()
}

func (p Plane) Compare(o Plane) bool {
	return !p.Vector().NotEqual(o.Vector()).AnyTrue()
}

func (p Plane) Equals(o Plane, eps float32) bool {
	return !p.Vector().ApproxNotEqual(o.Vector(), eps).AnyTrue()
}

func (p Plane) String() string {
	return fmt.Sprintf("plane(%g, %g, %g, %g)", p[0], p[1], p[2], p[3])
}

/**
 * @brief Finds the single point shared by three planes.
 *
 * @param p0 The first plane.
 * @param p1 The second plane.
 * @param p2 The third plane.
 * @param eps The squared triple product under which the planes are treated
 * as having no single common point.
 * @return The intersection point and true, or the zero point and false.
 */
func IntersectPlanes(p0, p1, p2 Plane, eps float32) (Spatial3D, bool) {
	v0, v1, v2 := p0.Vector(), p1.Vector(), p2.Vector()

	cross01 := v0.Cross3(v1)
	det := cross01.Dot3f(v2)
	if det*det < eps {
		return Spatial3DZero, false
	}
	cross12 := v1.Cross3(v2)
	cross20 := v2.Cross3(v0)

	sum := cross12.Mul(v0.Replicate(3))
	sum = cross20.Mad(v1.Replicate(3), sum)
	sum = cross01.Mad(v2.Replicate(3), sum)
	return Spatial3D(sum.Scale(-1 / det)), true
}
