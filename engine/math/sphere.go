package math

import (
	"fmt"

	"github.com/korkuveren/MARS/engine/math/vector"
)

// NewSphere packs center and radius into one vector.
func NewSphere(center Spatial3D, radius float32) Sphere {
	return Sphere(center.Vector4(radius))
}

/**
 * @brief Fits a bounding sphere around the provided points.
 *
 * Two centers are tried, the midpoint of the bounding box and the mean of
 * the points, and the one needing the smaller radius wins. The result is
 * usually within a few percent of the minimal sphere.
 *
 * @param points The points to enclose.
 * @return The fitted sphere, or the zero sphere for no points.
 */
func NewSphereFromPoints(points []Spatial3D) Sphere {
	if len(points) == 0 {
		return Sphere(vector.Zero)
	}
	return fitSphere(len(points), func(i int) Spatial3D { return points[i] })
}

// NewSphereFromFloats is NewSphereFromPoints over packed xyz triples.
// Trailing floats that do not form a full triple are ignored.
func NewSphereFromFloats(data []float32) Sphere {
	n := len(data) / 3
	if n == 0 {
		return Sphere(vector.Zero)
	}
	return fitSphere(n, func(i int) Spatial3D {
		return NewSpatial3D(data[i*3], data[i*3+1], data[i*3+2])
	})
}

func fitSphere(n int, at func(int) Spatial3D) Sphere {
	lo, hi := at(0), at(0)
	mean := at(0)
	for i := 1; i < n; i++ {
		p := at(i)
		lo = lo.Min(p)
		hi = hi.Max(p)
		mean = mean.Add(p)
	}

	center1 := lo.Add(hi).Scale(0.5)
	center2 := mean.Scale(1 / float32(n))

	var r1, r2 float32
	for i := 0; i < n; i++ {
		p := at(i)
		r1 = max(r1, center1.Sub(p).LengthSquared())
		r2 = max(r2, center2.Sub(p).LengthSquared())
	}
	if r2 < r1 {
		return NewSphere(center2, ksqrt(r2))
	}
	return NewSphere(center1, ksqrt(r1))
}

func (s Sphere) Vector() vector.Vector { return vector.Vector(s) }

func (s Sphere) Center() Spatial3D { return Spatial3D(s.Vector().WithW(0)) }
func (s Sphere) Radius() float32   { return s[3] }

// Volume returns 4/3·π·r³.
func (s Sphere) Volume() float32 {
	r := s[3]
	return K_PI * 4 / 3 * r * r * r
}

// Intersects reports whether the spheres overlap, widened by eps.
func (s Sphere) Intersects(o Sphere, eps float32) bool {
	d := s.Vector().Sub(o.Vector())
	maxR := max(0, s[3]+o[3]+eps)
	return d.Dot3f(d) < maxR*maxR
}

// ContainsPoint reports whether p lies within radius + eps of the center.
func (s Sphere) ContainsPoint(p Spatial3D, eps float32) bool {
	r := s[3] + eps
	return p.DistSquared(s.Center()) < r*r
}

/**
 * @brief Reports whether o lies entirely inside s.
 *
 * The radius check comes first: a larger sphere can never be contained,
 * whatever the distance between the centers.
 *
 * @param o The candidate inner sphere.
 * @param eps The tolerance.
 * @return True when o fits inside s.
 */
func (s Sphere) ContainsSphere(o Sphere, eps float32) bool {
	if s[3] < o[3]+eps {
		return false
	}
	d := s.Vector().Sub(o.Vector())
	r := eps + d[3]
	return d.Dot3f(d) < r*r
}

// Expand grows the radius by d.
func (s Sphere) Expand(d float32) Sphere {
	return Sphere(s.Vector().Add(vector.New(0, 0, 0, d)))
}

func (s Sphere) MoveTo(center Spatial3D) Sphere {
	return NewSphere(center, s[3])
}

func (s Sphere) Translate(d Spatial3D) Sphere {
	return Sphere(s.Vector().Add(d.Vector4(0)))
}

// ScaleFromCenter scales the radius only.
func (s Sphere) ScaleFromCenter(f float32) Sphere {
	return Sphere(s.Vector().Mul(vector.New(1, 1, 1, f)))
}

// ScaleFromOrigin scales both the center and the radius.
func (s Sphere) ScaleFromOrigin(f float32) Sphere {
	return Sphere(s.Vector().Scale(f))
}

// AddPoint returns a sphere enclosing s and p.
func (s Sphere) AddPoint(p Spatial3D) Sphere {
	return s.AddSphere(NewSphere(p, 0))
}

/**
 * @brief Returns a sphere enclosing both s and o.
 *
 * @param o The other sphere.
 * @return s or o when one already contains the other, otherwise the
 * smallest sphere touching both far sides.
 */
func (s Sphere) AddSphere(o Sphere) Sphere {
	switch {
	case s.ContainsSphere(o, K_COMPARE_EPSILON):
		return s
	case s[3] == 0 || o.ContainsSphere(s, K_COMPARE_EPSILON):
		return o
	}
	dir := o.Center().Sub(s.Center())
	dist := dir.Length()
	dir = dir.DivScalar(dist)

	extreme1 := s.Center().Sub(dir.Scale(s[3]))
	extreme2 := o.Center().Add(dir.Scale(o[3]))
	return NewSphere(extreme1.Add(extreme2).Scale(0.5), (dist+s[3]+o[3])*0.5)
}

// Transform moves the center through m and scales the radius by the
// longest column of the upper 3x3, the largest axis scale.
func (s Sphere) Transform(m Matrix) Sphere {
	center := m.Transform(s.Vector().WithW(1))
	r := &m.Rows
	scaleSq := r[0].Mul(r[0]).Add(r[1].Mul(r[1])).Add(r[2].Mul(r[2])).HorizontalMax3()
	return NewSphere(Spatial3D(center.WithW(0)), s[3]*ksqrt(scaleSq))
}

/**
 * @brief Intersects a ray with the sphere.
 *
 * @param start The ray origin.
 * @param dir The unit ray direction.
 * @return The entry and exit distances along the ray and whether the ray
 * hits at all. A tangent ray returns near == far.
 */
func (s Sphere) IntersectRay(start, dir Spatial3D) (near, far float32, ok bool) {
	toCenter := s.Center().Sub(start)
	along := toCenter.Dot(dir)
	distSq := toCenter.LengthSquared() - along*along
	r2 := s[3] * s[3]
	if distSq > r2 {
		return 0, 0, false
	}
	half := ksqrt(r2 - distSq)
	return along - half, along + half, true
}

// IntersectLine reports whether the segment from start to end enters the
// sphere.
func (s Sphere) IntersectLine(start, end Spatial3D) bool {
	dir := end.Sub(start)
	near, _, ok := s.IntersectRay(start, dir.Normalize())
	return ok && near*near < dir.LengthSquared()
}

func (s Sphere) Compare(o Sphere) bool {
	return !s.Vector().NotEqual(o.Vector()).AnyTrue()
}

func (s Sphere) Equals(o Sphere, eps float32) bool {
	return !s.Vector().ApproxNotEqual(o.Vector(), eps).AnyTrue()
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere(center=%v, radius=%g)", s.Center(), s[3])
}
