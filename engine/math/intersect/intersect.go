// Package intersect holds the plane, sphere and box overlap tests used for
// visibility culling.
//
// Planes are expected to be normalized with their normals pointing towards
// the inside half-space, as produced by math.Matrix.FrustumPlanes.
package intersect

import (
	"github.com/korkuveren/MARS/engine/math"
	"github.com/korkuveren/MARS/engine/math/vector"
)

// Classification is the result of testing a volume against a convex set of
// planes.
type Classification uint8

const (
	// Outside means the volume lies fully behind at least one plane.
	Outside Classification = iota
	// Intersecting means the volume straddles at least one plane.
	Intersecting
	// Inside means the volume lies in front of every plane.
	Inside
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "outside"
	case Intersecting:
		return "intersecting"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// PlaneAABBFast tests a box, given as center and half extents, against a
// plane and its component-wise absolute value. The center should carry
// w = 1. Extents carrying w = 1 add |plane.w| to the projected radius;
// w = 0 gives the exact test.
func PlaneAABBFast(center, extents vector.Vector, plane, absPlane math.Plane) (fully, partially bool) {
	d := plane.DotVector(center)
	r := absPlane.DotVector(extents)
	return d-r >= 0, d+r > 0
}

// PlaneAABBClassify reports how box sits relative to plane. Both center and
// extents enter with w = 1, which makes the test conservative for planes
// away from the origin.
func PlaneAABBClassify(plane math.Plane, box math.AABB) (fully, partially bool) {
	center, extents := box.CenterAndExtents()
	return PlaneAABBFast(center.Vector4(1), extents.Vector4(1), plane, plane.Abs())
}

// PlaneAABB reports whether box straddles plane.
func PlaneAABB(plane math.Plane, box math.AABB) bool {
	fully, partially := PlaneAABBClassify(plane, box)
	return partially && !fully
}

// PlaneSphereFast tests a sphere against a plane: fully when the whole
// sphere is in front, partially when any of it is.
func PlaneSphereFast(plane math.Plane, sphere math.Sphere) (fully, partially bool) {
	d := plane.Dot(sphere.Center())
	r := sphere.Radius()
	return d >= r, d >= -r
}

// PlaneSphere reports whether sphere straddles plane.
func PlaneSphere(plane math.Plane, sphere math.Sphere) bool {
	fully, partially := PlaneSphereFast(plane, sphere)
	return partially && !fully
}

// SphereAABBFast compares the squared distance from center to the box
// against radiusSq.
func SphereAABBFast(center, min, max math.Spatial3D, radiusSq float32) bool {
	c, lo, hi := center.Vector(), min.Vector(), max.Vector()
	below := vector.Select(c.Less(lo), c.Sub(lo), vector.Zero)
	above := vector.Select(c.Greater(hi), c.Sub(hi), vector.Zero)
	d := below.Add(above)
	return d.Dot3f(d) < radiusSq
}

// SphereAABB reports whether the sphere and the box overlap.
func SphereAABB(sphere math.Sphere, box math.AABB) bool {
	r := sphere.Radius()
	return SphereAABBFast(sphere.Center(), box.Min, box.Max, r*r)
}

// FrustumSphere classifies sphere against the six frustum planes.
func FrustumSphere(planes *[6]math.Plane, sphere math.Sphere) Classification {
	result := Inside
	for i := range planes {
		fully, partially := PlaneSphereFast(planes[i], sphere)
		if !partially {
			return Outside
		}
		if !fully {
			result = Intersecting
		}
	}
	return result
}

// FrustumAABB classifies box against the six frustum planes using the exact
// projected radius.
func FrustumAABB(planes *[6]math.Plane, box math.AABB) Classification {
	center, extents := box.CenterAndExtents()
	c, e := center.Vector4(1), extents.Vector4(0)
	result := Inside
	for i := range planes {
		fully, partially := PlaneAABBFast(c, e, planes[i], planes[i].Abs())
		if !partially {
			return Outside
		}
		if !fully {
			result = Intersecting
		}
	}
	return result
}
