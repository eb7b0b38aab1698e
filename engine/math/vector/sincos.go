package vector

// Minimax coefficients for sin(x)/x and cos(x) on [-π/2, π/2].
var (
	sinC0 = Load1(-2.39e-08)
	sinC1 = Load1(2.7526e-06)
	sinC2 = Load1(-1.98409e-04)
	sinC3 = Load1(8.3333315e-03)
	sinC4 = Load1(-1.666666664e-01)

	cosC0 = Load1(-2.605e-07)
	cosC1 = Load1(2.47609e-05)
	cosC2 = Load1(-1.3888397e-03)
	cosC3 = Load1(4.16666418e-02)
	cosC4 = Load1(-4.999999963e-01)

	vPi       = Load1(Pi)
	vNegPi    = Load1(-Pi)
	vHalfPi   = Load1(HalfPi)
	vRcpTwoPi = Load1(RcpTwoPi)

	// 2π split in two. The high part has few mantissa bits so turns·hi is
	// exact for any turn count below 2^16.
	vTwoPiHi = Load1(6.28125)
	vTwoPiLo = Load1(6.283185307179586476925286766559 - 6.28125)
)

// SinCos returns the sine and cosine of every lane. The angle is first
// wrapped into [0, 2π) with a two-part 2π, then folded into [-π/2, π/2]
// where the polynomials are accurate. Any finite input is valid; the
// reduction stays within a few ulp of 2π for |angle| up to about 4e5.
func SinCos(angle Vector) (sin, cos Vector) {
	k := active

	// Wrap into [0, 2π).
	turns := k.Floor(k.Mul(angle, vRcpTwoPi))
	a := k.Sub(angle, k.Mul(turns, vTwoPiHi))
	a = k.Sub(a, k.Mul(turns, vTwoPiLo))

	// Fold: sin(π-a) = sin(a) and cos(π-a) = -cos(a).
	a = k.Sub(vPi, a)
	sign := NegOne

	outer := k.GreaterEqual(k.Abs(a), vHalfPi)
	edge := k.Select(k.GreaterEqual(a, Zero), vPi, vNegPi)
	a = k.Select(outer, k.Sub(edge, a), a)
	sign = k.Select(outer, One, sign)

	a2 := k.Mul(a, a)

	s := k.Add(k.Mul(sinC0, a2), sinC1)
	s = k.Add(k.Mul(s, a2), sinC2)
	s = k.Add(k.Mul(s, a2), sinC3)
	s = k.Add(k.Mul(s, a2), sinC4)
	s = k.Add(k.Mul(s, a2), One)
	sin = k.Mul(s, a)

	c := k.Add(k.Mul(cosC0, a2), cosC1)
	c = k.Add(k.Mul(c, a2), cosC2)
	c = k.Add(k.Mul(c, a2), cosC3)
	c = k.Add(k.Mul(c, a2), cosC4)
	c = k.Add(k.Mul(c, a2), One)
	cos = k.Mul(c, sign)
	return sin, cos
}

// SinCosf is SinCos for a single angle.
func SinCosf(angle float32) (sin, cos float32) {
	s, c := SinCos(Load1(angle))
	return s[0], c[0]
}
