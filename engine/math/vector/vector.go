package vector

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/korkuveren/MARS/engine/core"
)

// Vector is four float32 lanes, x, y, z and w in that order.
type Vector [4]float32

// New returns the vector (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

// Load1 replicates f into every lane.
func Load1(f float32) Vector {
	return Vector{f, f, f, f}
}

// Load3 returns (x, y, z, 0).
func Load3(x, y, z float32) Vector {
	return Vector{x, y, z, 0}
}

// LoadSlice reads up to four lanes from src. Missing lanes are zero.
func LoadSlice(src []float32) Vector {
	var v Vector
	copy(v[:], src)
	return v
}

// Store writes up to four lanes into dst.
func (v Vector) Store(dst []float32) {
	copy(dst, v[:])
}

// Lanes returns the raw lanes.
func (v Vector) Lanes() [4]float32 { return v }

func (v Vector) X() float32 { return v[0] }
func (v Vector) Y() float32 { return v[1] }
func (v Vector) Z() float32 { return v[2] }
func (v Vector) W() float32 { return v[3] }

// Lane returns lane i. It panics when i is not in [0, 4).
func (v Vector) Lane(i int) float32 {
	checkLane(i)
	return v[i]
}

// WithLane returns v with lane i replaced by f.
func (v Vector) WithLane(i int, f float32) Vector {
	checkLane(i)
	return Select(MaskExcept(i), v, Load1(f))
}

// WithW returns v with the w lane replaced by f.
func (v Vector) WithW(f float32) Vector {
	return Select(MaskXYZ, v, Load1(f))
}

func checkLane(i int) {
	if i < 0 || i > 3 {
		panic(fmt.Errorf("lane %d: %w", i, core.ErrIndexOutOfRange))
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}

func (v Vector) Add(o Vector) Vector { return active.Add(v, o) }
func (v Vector) Sub(o Vector) Vector { return active.Sub(v, o) }
func (v Vector) Mul(o Vector) Vector { return active.Mul(v, o) }
func (v Vector) Div(o Vector) Vector { return active.Div(v, o) }
func (v Vector) Min(o Vector) Vector { return active.Min(v, o) }
func (v Vector) Max(o Vector) Vector { return active.Max(v, o) }
func (v Vector) Neg() Vector         { return active.Neg(v) }
func (v Vector) Abs() Vector         { return active.Abs(v) }
func (v Vector) Sqrt() Vector        { return active.Sqrt(v) }
func (v Vector) Floor() Vector       { return active.Floor(v) }

// Scale multiplies every lane by f.
func (v Vector) Scale(f float32) Vector { return active.Mul(v, Load1(f)) }

// Mad returns v*mul + add, rounded after each step.
func (v Vector) Mad(mul, add Vector) Vector {
	return active.Add(active.Mul(v, mul), add)
}

// Reciprocal returns 1/v per lane.
func (v Vector) Reciprocal() Vector { return active.Div(One, v) }

// RSqrt returns 1/sqrt(v) per lane.
func (v Vector) RSqrt() Vector { return active.Div(One, active.Sqrt(v)) }

// Sign returns -1 where a lane is negative and 1 elsewhere.
func (v Vector) Sign() Vector {
	return active.Select(active.Less(v, Zero), NegOne, One)
}

// Clamp limits every lane to [lo, hi].
func (v Vector) Clamp(lo, hi Vector) Vector {
	return active.Min(active.Max(v, lo), hi)
}

// Pow raises every lane of v to the matching lane of e. There is no lane
// primitive for it so it runs on scalars in every kernel.
func (v Vector) Pow(e Vector) Vector {
	return Vector{
		math32.Pow(v[0], e[0]),
		math32.Pow(v[1], e[1]),
		math32.Pow(v[2], e[2]),
		math32.Pow(v[3], e[3]),
	}
}

func (v Vector) Equal(o Vector) Mask        { return active.Equal(v, o) }
func (v Vector) NotEqual(o Vector) Mask     { return active.NotEqual(v, o) }
func (v Vector) Less(o Vector) Mask         { return active.Less(v, o) }
func (v Vector) LessEqual(o Vector) Mask    { return active.LessEqual(v, o) }
func (v Vector) Greater(o Vector) Mask      { return active.Greater(v, o) }
func (v Vector) GreaterEqual(o Vector) Mask { return active.GreaterEqual(v, o) }

// ApproxEqual sets the lanes where |v-o| < eps.
func (v Vector) ApproxEqual(o Vector, eps float32) Mask {
	return active.Less(active.Abs(active.Sub(v, o)), Load1(eps))
}

// ApproxNotEqual sets the lanes where |v-o| >= eps.
func (v Vector) ApproxNotEqual(o Vector, eps float32) Mask {
	return active.GreaterEqual(active.Abs(active.Sub(v, o)), Load1(eps))
}

// IsZero3 reports whether x, y and z are exactly zero.
func (v Vector) IsZero3() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsZero4 reports whether every lane is exactly zero.
func (v Vector) IsZero4() bool {
	return v.IsZero3() && v[3] == 0
}

// Select picks a where m is set and b elsewhere.
func Select(m Mask, a, b Vector) Vector {
	return active.Select(m, a, b)
}

// Lerp returns (b-a)*t + a.
func Lerp(a, b Vector, t float32) Vector {
	return active.Add(active.Mul(active.Sub(b, a), Load1(t)), a)
}
