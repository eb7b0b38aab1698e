package math

var (
	Cartesian2DZero  = Cartesian2D{0, 0}
	Cartesian2DOne   = Cartesian2D{1, 1}
	Cartesian2DFront = Cartesian2D{1, 0}
	Cartesian2DUp    = Cartesian2D{0, 1}
)

/**
 * @brief Creates and returns a new 2-element coordinate using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element coordinate.
 */
func NewCartesian2D(x, y float32) Cartesian2D {
	return Cartesian2D{X: x, Y: y}
}

func (c Cartesian2D) Add(o Cartesian2D) Cartesian2D { return Cartesian2D{c.X + o.X, c.Y + o.Y} }
func (c Cartesian2D) Sub(o Cartesian2D) Cartesian2D { return Cartesian2D{c.X - o.X, c.Y - o.Y} }
func (c Cartesian2D) Mul(o Cartesian2D) Cartesian2D { return Cartesian2D{c.X * o.X, c.Y * o.Y} }
func (c Cartesian2D) Div(o Cartesian2D) Cartesian2D { return Cartesian2D{c.X / o.X, c.Y / o.Y} }
func (c Cartesian2D) Scale(f float32) Cartesian2D   { return Cartesian2D{c.X * f, c.Y * f} }
func (c Cartesian2D) Neg() Cartesian2D              { return Cartesian2D{-c.X, -c.Y} }

func (c Cartesian2D) Dot(o Cartesian2D) float32 {
	return c.X*o.X + c.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (c Cartesian2D) Cross(o Cartesian2D) float32 {
	return c.X*o.Y - c.Y*o.X
}

func (c Cartesian2D) LengthSquared() float32 { return c.Dot(c) }
func (c Cartesian2D) Length() float32        { return ksqrt(c.LengthSquared()) }

func (c Cartesian2D) DistSquared(o Cartesian2D) float32 { return c.Sub(o).LengthSquared() }
func (c Cartesian2D) Dist(o Cartesian2D) float32        { return c.Sub(o).Length() }

/**
 * @brief Returns a unit-length copy, or the zero coordinate when the squared
 * length is below eps.
 */
func (c Cartesian2D) Normalized(eps float32) Cartesian2D {
	lenSq := c.LengthSquared()
	if lenSq < eps {
		return Cartesian2DZero
	}
	return c.Scale(1 / ksqrt(lenSq))
}

// IsNormalized reports whether |1 - |c|²| < eps.
func (c Cartesian2D) IsNormalized(eps float32) bool {
	return kabs(1-c.LengthSquared()) < eps
}

// DirAndLength splits c into a unit direction and its length. Lengths
// whose square is below eps yield a zero direction.
func (c Cartesian2D) DirAndLength(eps float32) (Cartesian2D, float32) {
	lenSq := c.LengthSquared()
	if lenSq < eps {
		return Cartesian2DZero, 0
	}
	length := ksqrt(lenSq)
	return c.Scale(1 / length), length
}

// Rotate turns c counter-clockwise by angle radians.
func (c Cartesian2D) Rotate(angle float32) Cartesian2D {
	sin, cos := ksincos(angle)
	return Cartesian2D{cos*c.X - sin*c.Y, sin*c.X + cos*c.Y}
}

// Reflect mirrors c about the unit normal n.
func (c Cartesian2D) Reflect(n Cartesian2D) Cartesian2D {
	return c.Sub(n.Scale(2 * c.Dot(n)))
}

// Refract bends c through a surface with unit normal n. Total internal
// reflection returns the zero coordinate.
func (c Cartesian2D) Refract(n Cartesian2D, ior float32) Cartesian2D {
	cosAngle := c.Dot(n)
	k := 1 - ior*ior*(1-cosAngle*cosAngle)
	if k < 0 {
		return Cartesian2DZero
	}
	return c.Scale(ior).Sub(n.Scale(ior*cosAngle + ksqrt(k)))
}

func (c Cartesian2D) Reciprocal() Cartesian2D { return Cartesian2D{1 / c.X, 1 / c.Y} }

func (c Cartesian2D) Abs() Cartesian2D { return Cartesian2D{kabs(c.X), kabs(c.Y)} }

func (c Cartesian2D) Min(o Cartesian2D) Cartesian2D { return Cartesian2D{min(c.X, o.X), min(c.Y, o.Y)} }
func (c Cartesian2D) Max(o Cartesian2D) Cartesian2D { return Cartesian2D{max(c.X, o.X), max(c.Y, o.Y)} }

func (c Cartesian2D) MaxComponent() float32    { return max(c.X, c.Y) }
func (c Cartesian2D) MinComponent() float32    { return min(c.X, c.Y) }
func (c Cartesian2D) AbsMaxComponent() float32 { return max(kabs(c.X), kabs(c.Y)) }
func (c Cartesian2D) AbsMinComponent() float32 { return min(kabs(c.X), kabs(c.Y)) }

func (c Cartesian2D) ToDegrees() Cartesian2D { return c.Scale(K_RAD2DEG_MULTIPLIER) }
func (c Cartesian2D) ToRadians() Cartesian2D { return c.Scale(K_DEG2RAD_MULTIPLIER) }

// Equals reports whether both components differ by less than eps.
func (c Cartesian2D) Equals(o Cartesian2D, eps float32) bool {
	return kabs(c.X-o.X) < eps && kabs(c.Y-o.Y) < eps
}
