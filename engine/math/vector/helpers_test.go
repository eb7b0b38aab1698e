package vector

import (
	"math"
	"math/rand/v2"
	"testing"
)

// forEachBackend runs fn once per kernel available in this binary and
// restores the previous kernel afterwards.
func forEachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	prev := Backend()
	defer func() {
		if err := UseBackend(prev); err != nil {
			t.Fatalf("restore backend %s: %v", prev, err)
		}
	}()
	for _, level := range Backends() {
		if err := UseBackend(level); err != nil {
			t.Fatalf("UseBackend(%s): %v", level, err)
		}
		t.Run(level.String(), fn)
	}
}

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func approxVector(a, b Vector, eps float32) bool {
	for i := range a {
		if !approx(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x4d415253, 0x6b65726e))
}

func randomVector(r *rand.Rand, scale float32) Vector {
	return Vector{
		(r.Float32()*2 - 1) * scale,
		(r.Float32()*2 - 1) * scale,
		(r.Float32()*2 - 1) * scale,
		(r.Float32()*2 - 1) * scale,
	}
}

func randomUnitQuat(r *rand.Rand) Vector {
	for {
		q := randomVector(r, 1)
		if q.LengthSquared4() > 1e-3 {
			return q.Normalize4()
		}
	}
}
