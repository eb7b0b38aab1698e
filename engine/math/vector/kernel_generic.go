package vector

import "github.com/chewxy/math32"

// genericKernel runs every lane operation as a scalar float32 operation.
type genericKernel struct{}

var _ Kernel = genericKernel{}

func (genericKernel) Name() string { return "generic" }

func (genericKernel) Add(a, b Vector) Vector {
	return Vector{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (genericKernel) Sub(a, b Vector) Vector {
	return Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul rounds each product explicitly so the compiler never fuses it with a
// later addition on targets that have FMA.
func (genericKernel) Mul(a, b Vector) Vector {
	return Vector{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

func (genericKernel) Div(a, b Vector) Vector {
	return Vector{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (genericKernel) Min(a, b Vector) Vector {
	var r Vector
	for i := range r {
		if a[i] < b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (genericKernel) Max(a, b Vector) Vector {
	var r Vector
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (genericKernel) Sqrt(a Vector) Vector {
	return Vector{math32.Sqrt(a[0]), math32.Sqrt(a[1]), math32.Sqrt(a[2]), math32.Sqrt(a[3])}
}

func (genericKernel) Abs(a Vector) Vector {
	return Vector{math32.Abs(a[0]), math32.Abs(a[1]), math32.Abs(a[2]), math32.Abs(a[3])}
}

func (genericKernel) Neg(a Vector) Vector {
	return Vector{-a[0], -a[1], -a[2], -a[3]}
}

func (genericKernel) Floor(a Vector) Vector {
	return Vector{math32.Floor(a[0]), math32.Floor(a[1]), math32.Floor(a[2]), math32.Floor(a[3])}
}

func (genericKernel) Equal(a, b Vector) Mask {
	return Mask{a[0] == b[0], a[1] == b[1], a[2] == b[2], a[3] == b[3]}
}

func (genericKernel) NotEqual(a, b Vector) Mask {
	return Mask{a[0] != b[0], a[1] != b[1], a[2] != b[2], a[3] != b[3]}
}

func (genericKernel) Less(a, b Vector) Mask {
	return Mask{a[0] < b[0], a[1] < b[1], a[2] < b[2], a[3] < b[3]}
}

func (genericKernel) LessEqual(a, b Vector) Mask {
	return Mask{a[0] <= b[0], a[1] <= b[1], a[2] <= b[2], a[3] <= b[3]}
}

func (genericKernel) Greater(a, b Vector) Mask {
	return Mask{a[0] > b[0], a[1] > b[1], a[2] > b[2], a[3] > b[3]}
}

func (genericKernel) GreaterEqual(a, b Vector) Mask {
	return Mask{a[0] >= b[0], a[1] >= b[1], a[2] >= b[2], a[3] >= b[3]}
}

func (genericKernel) Select(m Mask, a, b Vector) Vector {
	var r Vector
	for i := range r {
		if m[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}
