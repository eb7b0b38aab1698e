package vector

// Swizzle returns (v[x], v[y], v[z], v[w]).
func (v Vector) Swizzle(x, y, z, w int) Vector {
	return Vector{v[x], v[y], v[z], v[w]}
}

// Replicate broadcasts lane i to every lane.
func (v Vector) Replicate(i int) Vector {
	checkLane(i)
	return Load1(v[i])
}

// Dot3 returns the dot product of the xyz lanes in every lane.
func (v Vector) Dot3(o Vector) Vector {
	return Load1(v.Dot3f(o))
}

// Dot4 returns the four-lane dot product in every lane.
func (v Vector) Dot4(o Vector) Vector {
	return Load1(v.Dot4f(o))
}

// Dot3f is Dot3 as a scalar. The products are summed x, y, z in order.
func (v Vector) Dot3f(o Vector) float32 {
	p := active.Mul(v, o)
	return p[0] + p[1] + p[2]
}

// Dot4f is Dot4 as a scalar.
func (v Vector) Dot4f(o Vector) float32 {
	p := active.Mul(v, o)
	return p[0] + p[1] + p[2] + p[3]
}

// Cross3 returns the cross product of the xyz lanes with w = 0.
func (v Vector) Cross3(o Vector) Vector {
	a := active.Mul(v.Swizzle(1, 2, 0, 3), o.Swizzle(2, 0, 1, 3))
	b := active.Mul(v.Swizzle(2, 0, 1, 3), o.Swizzle(1, 2, 0, 3))
	return active.Sub(a, b).WithW(0)
}

func (v Vector) LengthSquared3() float32 { return v.Dot3f(v) }
func (v Vector) LengthSquared4() float32 { return v.Dot4f(v) }

func (v Vector) Length3() float32 { return active.Sqrt(v.Dot3(v))[0] }
func (v Vector) Length4() float32 { return active.Sqrt(v.Dot4(v))[0] }

// RLength3 returns 1/|xyz| in every lane.
func (v Vector) RLength3() Vector { return v.Dot3(v).RSqrt() }

// RLength4 returns 1/|v| in every lane.
func (v Vector) RLength4() Vector { return v.Dot4(v).RSqrt() }

// Normalize3 scales every lane by 1/|xyz|. Zero input gives NaN lanes.
func (v Vector) Normalize3() Vector { return active.Mul(v, v.RLength3()) }

// Normalize4 scales every lane by 1/|v|.
func (v Vector) Normalize4() Vector { return active.Mul(v, v.RLength4()) }

// Transform returns (v·rows[0], v·rows[1], v·rows[2], v·rows[3]).
func (v Vector) Transform(rows *[4]Vector) Vector {
	return Vector{
		v.Dot4f(rows[0]),
		v.Dot4f(rows[1]),
		v.Dot4f(rows[2]),
		v.Dot4f(rows[3]),
	}
}

// HorizontalMax3 returns the largest of x, y and z.
func (v Vector) HorizontalMax3() float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

// HorizontalMin3 returns the smallest of x, y and z.
func (v Vector) HorizontalMin3() float32 {
	m := v[0]
	if v[1] < m {
		m = v[1]
	}
	if v[2] < m {
		m = v[2]
	}
	return m
}
