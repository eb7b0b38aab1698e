//go:build amd64 && goexperiment.simd && !purego

package vector

import "simd/archsimd"

// simdKernel maps each primitive onto one 128-bit archsimd instruction.
type simdKernel struct{}

var _ Kernel = simdKernel{}

var (
	simdOne     = archsimd.BroadcastFloat32x4(1)
	simdZero    = archsimd.BroadcastFloat32x4(0)
	simdAbsMask = archsimd.BroadcastInt32x4(0x7FFFFFFF)
	simdSignBit = archsimd.BroadcastInt32x4(-0x80000000)
)

func load(v Vector) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v[:])
}

func store(x archsimd.Float32x4) Vector {
	var r Vector
	x.StoreSlice(r[:])
	return r
}

func toMask(m archsimd.Mask32x4) Mask {
	var lanes [4]float32
	simdOne.Merge(simdZero, m).StoreSlice(lanes[:])
	return Mask{lanes[0] != 0, lanes[1] != 0, lanes[2] != 0, lanes[3] != 0}
}

func fromMask(m Mask) archsimd.Mask32x4 {
	var lanes [4]float32
	for i, set := range m {
		if set {
			lanes[i] = 1
		}
	}
	return archsimd.LoadFloat32x4Slice(lanes[:]).Equal(simdOne)
}

func (simdKernel) Name() string { return "simd" }

func (simdKernel) Add(a, b Vector) Vector { return store(load(a).Add(load(b))) }
func (simdKernel) Sub(a, b Vector) Vector { return store(load(a).Sub(load(b))) }
func (simdKernel) Mul(a, b Vector) Vector { return store(load(a).Mul(load(b))) }
func (simdKernel) Div(a, b Vector) Vector { return store(load(a).Div(load(b))) }
func (simdKernel) Min(a, b Vector) Vector { return store(load(a).Min(load(b))) }
func (simdKernel) Max(a, b Vector) Vector { return store(load(a).Max(load(b))) }

func (simdKernel) Sqrt(a Vector) Vector  { return store(load(a).Sqrt()) }
func (simdKernel) Floor(a Vector) Vector { return store(load(a).Floor()) }

// Abs and Neg work on the sign bit so that signed zeros behave like the
// scalar operators.
func (simdKernel) Abs(a Vector) Vector {
	return store(load(a).AsInt32x4().And(simdAbsMask).AsFloat32x4())
}

func (simdKernel) Neg(a Vector) Vector {
	return store(load(a).AsInt32x4().Xor(simdSignBit).AsFloat32x4())
}

func (simdKernel) Equal(a, b Vector) Mask    { return toMask(load(a).Equal(load(b))) }
func (simdKernel) NotEqual(a, b Vector) Mask { return toMask(load(a).NotEqual(load(b))) }
func (simdKernel) Less(a, b Vector) Mask     { return toMask(load(a).Less(load(b))) }
func (simdKernel) LessEqual(a, b Vector) Mask {
	return toMask(load(a).LessEqual(load(b)))
}
func (simdKernel) Greater(a, b Vector) Mask { return toMask(load(a).Greater(load(b))) }
func (simdKernel) GreaterEqual(a, b Vector) Mask {
	return toMask(load(a).GreaterEqual(load(b)))
}

func (simdKernel) Select(m Mask, a, b Vector) Vector {
	return store(load(a).Merge(load(b), fromMask(m)))
}
