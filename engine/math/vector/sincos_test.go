package vector

import (
	"math"
	"testing"
)

func TestSinCos(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		angles := []float32{0, 0.5, -0.5, 1, HalfPi, Pi, -Pi, 3, TwoPi, 7.5, -12.25, 100, -100}
		for _, a := range angles {
			sin, cos := SinCosf(a)
			wantSin := float32(math.Sin(float64(a)))
			wantCos := float32(math.Cos(float64(a)))
			if !approx(sin, wantSin, 1e-4) {
				t.Errorf("sin(%v): got %v, want %v", a, sin, wantSin)
			}
			if !approx(cos, wantCos, 1e-4) {
				t.Errorf("cos(%v): got %v, want %v", a, cos, wantCos)
			}
		}
	})
}

func TestSinCosLargeAngles(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		angles := []float32{1e3, -1e3, 1e4, -1e4, -3e4, 54321.5, 1e5, -1e5}
		for _, a := range angles {
			sin, cos := SinCosf(a)
			wantSin := float32(math.Sin(float64(a)))
			wantCos := float32(math.Cos(float64(a)))
			if !approx(sin, wantSin, 1e-4) {
				t.Errorf("sin(%v): got %v, want %v", a, sin, wantSin)
			}
			if !approx(cos, wantCos, 1e-4) {
				t.Errorf("cos(%v): got %v, want %v", a, cos, wantCos)
			}
		}
	})
}

func TestSinCosLanesAreIndependent(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		in := New(0, HalfPi, Pi, -HalfPi)
		sin, cos := SinCos(in)
		wantSin := New(0, 1, 0, -1)
		wantCos := New(1, 0, -1, 0)
		if !approxVector(sin, wantSin, 1e-5) {
			t.Errorf("sin: got %v, want %v", sin, wantSin)
		}
		if !approxVector(cos, wantCos, 1e-5) {
			t.Errorf("cos: got %v, want %v", cos, wantCos)
		}
	})
}

func TestSinCosIdentity(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := newRand()
		for i := 0; i < 2000; i++ {
			v := randomVector(r, 50)
			sin, cos := SinCos(v)
			sum := sin.Mul(sin).Add(cos.Mul(cos))
			if !approxVector(sum, One, 1e-4) {
				t.Fatalf("sin²+cos² for %v: got %v", v, sum)
			}
		}
	})
}
