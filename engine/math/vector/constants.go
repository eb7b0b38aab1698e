package vector

import "github.com/chewxy/math32"

const (
	Pi       float32 = 3.14159265358979323846
	TwoPi    float32 = 2 * Pi
	HalfPi   float32 = 0.5 * Pi
	RcpTwoPi float32 = 1 / TwoPi
)

// Lane constants. Treat them as read-only.
var (
	Zero    = Load1(0)
	One     = Load1(1)
	NegOne  = Load1(-1)
	Two     = Load1(2)
	Half    = Load1(0.5)
	Inf     = Load1(math32.Inf(1))
	NegInf  = Load1(math32.Inf(-1))
	UnitX   = Vector{1, 0, 0, 0}
	UnitY   = Vector{0, 1, 0, 0}
	UnitZ   = Vector{0, 0, 1, 0}
	UnitW   = Vector{0, 0, 0, 1}
	Epsilon = Load1(1e-6)
)

// Mask constants. MaskX through MaskW keep every lane but the named one,
// which makes Select(MaskW, v, Load1(w)) replace the w lane.
var (
	MaskAll  = Mask{true, true, true, true}
	MaskNone = Mask{}
	MaskX    = Mask{false, true, true, true}
	MaskY    = Mask{true, false, true, true}
	MaskZ    = Mask{true, true, false, true}
	MaskW    = Mask{true, true, true, false}
	MaskXYZ  = MaskW
)
