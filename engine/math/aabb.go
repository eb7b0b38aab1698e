package math

import (
	"fmt"

	"github.com/korkuveren/MARS/engine/math/vector"
)

func NewAABB(min, max Spatial3D) AABB {
	return AABB{Min: min, Max: max}
}

/**
 * @brief Fits the tightest box around the provided points.
 *
 * @param points The points to enclose.
 * @return The fitted box, or the all-zero box for no points.
 */
func NewAABBFromPoints(points []Spatial3D) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.AddPoint(p)
	}
	return box
}

/**
 * @brief Fits a box around xyz triples embedded in a float buffer.
 *
 * @param data The packed vertex data.
 * @param stride The number of floats between the end of one triple and the
 * start of the next, for example 5 for position followed by normal and uv.
 * @return The fitted box, or the all-zero box when no triple fits.
 */
func NewAABBFromFloats(data []float32, stride int) AABB {
	if len(data) < 3 {
		return AABB{}
	}
	step := stride + 3
	first := NewSpatial3D(data[0], data[1], data[2])
	box := AABB{Min: first, Max: first}
	for i := step; i+3 <= len(data); i += step {
		box = box.AddPoint(NewSpatial3D(data[i], data[i+1], data[i+2]))
	}
	return box
}

// Intersects reports whether the open boxes overlap. Touching faces do not
// count.
func (b AABB) Intersects(o AABB) bool {
	lo, hi := b.Min.Vector(), b.Max.Vector()
	return lo.GreaterEqual(o.Max.Vector()).Or(hi.LessEqual(o.Min.Vector())).None3()
}

// ContainsPoint reports whether p lies strictly inside the box.
func (b AABB) ContainsPoint(p Spatial3D) bool {
	v := p.Vector()
	return v.LessEqual(b.Min.Vector()).Or(v.GreaterEqual(b.Max.Vector())).None3()
}

// ContainsAABB reports whether o lies strictly inside b.
func (b AABB) ContainsAABB(o AABB) bool {
	lo, hi := b.Min.Vector(), b.Max.Vector()
	olo, ohi := o.Min.Vector(), o.Max.Vector()
	outside := olo.LessEqual(lo).
		Or(olo.GreaterEqual(hi)).
		Or(ohi.LessEqual(lo)).
		Or(ohi.GreaterEqual(hi))
	return outside.None3()
}

// Expand grows every face outwards by d.
func (b AABB) Expand(d float32) AABB {
	return b.ExpandVector(NewSpatial3DScalar(d))
}

func (b AABB) ExpandVector(v Spatial3D) AABB {
	return AABB{Min: b.Min.Sub(v), Max: b.Max.Add(v)}
}

// MoveTo translates the box so its center lands on c.
func (b AABB) MoveTo(c Spatial3D) AABB {
	return b.Translate(c.Sub(b.Center()))
}

func (b AABB) Center() Spatial3D {
	return b.Max.Add(b.Min).Scale(0.5)
}

// Extents returns the half size along each axis.
func (b AABB) Extents() Spatial3D {
	return b.Max.Sub(b.Min).Scale(0.5)
}

func (b AABB) CenterAndExtents() (center, extents Spatial3D) {
	extents = b.Extents()
	return b.Min.Add(extents), extents
}

func (b AABB) Volume() float32 {
	l := b.Max.Sub(b.Min)
	return l[0] * l[1] * l[2]
}

// Overlap returns the intersection box. Disjoint boxes give min > max on
// some axis.
func (b AABB) Overlap(o AABB) AABB {
	return AABB{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

func (b AABB) AddPoint(p Spatial3D) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

func (b AABB) AddAABB(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) Translate(d Spatial3D) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

func (b AABB) ScaleFromOrigin(s Spatial3D) AABB {
	return AABB{Min: b.Min.Mul(s), Max: b.Max.Mul(s)}
}

func (b AABB) ScaleFromCenter(s Spatial3D) AABB {
	center, extents := b.CenterAndExtents()
	extents = extents.Mul(s)
	return AABB{Min: center.Sub(extents), Max: center.Add(extents)}
}

/**
 * @brief Returns the axis-aligned box enclosing b after transformation by m.
 *
 * @param m The transform.
 * @return The new box. Rotations grow it to keep the corners inside.
 */
func (b AABB) Transform(m Matrix) AABB {
	center, extents := b.CenterAndExtents()

	var abs Matrix
	for i, row := range m.Rows {
		abs.Rows[i] = row.Abs()
	}

	c := m.Transform(center.Vector4(1)).WithW(0)
	e := abs.Transform(extents.Abs().Vector4(0)).WithW(0)
	return AABB{Min: Spatial3D(c.Sub(e)), Max: Spatial3D(c.Add(e))}
}

/**
 * @brief Intersects a ray with the box using the slab method.
 *
 * @param start The ray origin.
 * @param dir The ray direction. Zero components are allowed.
 * @return The entry and exit distances and whether the ray hits.
 */
func (b AABB) IntersectRay(start, dir Spatial3D) (near, far float32, ok bool) {
	rdir := dir.Vector().Reciprocal()
	s := start.Vector()
	t1 := b.Min.Vector().Sub(s).Mul(rdir)
	t2 := b.Max.Vector().Sub(s).Mul(rdir)

	mins := t1.Min(t2)
	maxs := t1.Max(t2)

	near, far = mins[0], maxs[0]
	for axis := 1; axis < 3; axis++ {
		if near > maxs[axis] || mins[axis] > far {
			return 0, 0, false
		}
		if mins[axis] > near {
			near = mins[axis]
		}
		if maxs[axis] < far {
			far = maxs[axis]
		}
	}
	return near, far, true
}

// IntersectLine reports whether the segment from start to end enters the
// box.
func (b AABB) IntersectLine(start, end Spatial3D) bool {
	dir := end.Sub(start)
	near, _, ok := b.IntersectRay(start, dir.Normalize())
	return ok && near*near < dir.LengthSquared()
}

func (b AABB) Compare(o AABB) bool {
	return b.Min.Vector() == o.Min.Vector() && b.Max.Vector() == o.Max.Vector()
}

func (b AABB) Equals(o AABB, eps float32) bool {
	return b.Min.Equals(o.Min, eps) && b.Max.Equals(o.Max, eps)
}

func (b AABB) String() string {
	return fmt.Sprintf("aabb(min=%v, max=%v)", b.Min, b.Max)
}

// Corners returns the eight box corners. Bit i of the index selects max
// over min on axis i.
func (b AABB) Corners() [8]Spatial3D {
	var out [8]Spatial3D
	lo, hi := b.Min.Vector(), b.Max.Vector()
	for i := range out {
		m := vector.Mask{i&1 != 0, i&2 != 0, i&4 != 0, false}
		out[i] = Spatial3D(vector.Select(m, hi, lo))
	}
	return out
}
