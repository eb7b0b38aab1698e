package vector

// Kernel is the primitive lane set a backend provides. Each method works
// lane by lane and must round every lane result to float32 on its own, so
// that two kernels given the same inputs produce the same bits.
type Kernel interface {
	// Name identifies the kernel, e.g. "generic" or "simd".
	Name() string

	Add(a, b Vector) Vector
	Sub(a, b Vector) Vector
	Mul(a, b Vector) Vector
	Div(a, b Vector) Vector
	Min(a, b Vector) Vector
	Max(a, b Vector) Vector

	Sqrt(a Vector) Vector
	Abs(a Vector) Vector
	Neg(a Vector) Vector
	Floor(a Vector) Vector

	Equal(a, b Vector) Mask
	NotEqual(a, b Vector) Mask
	Less(a, b Vector) Mask
	LessEqual(a, b Vector) Mask
	Greater(a, b Vector) Mask
	GreaterEqual(a, b Vector) Mask

	// Select returns a where m is set and b elsewhere.
	Select(m Mask, a, b Vector) Vector
}
