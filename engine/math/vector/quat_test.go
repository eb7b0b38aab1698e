package vector

import "testing"

// hamilton is the textbook sixteen-multiply product used as a reference.
func hamilton(a, b Vector) Vector {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Vector{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

func conjugate(q Vector) Vector {
	return Vector{-q[0], -q[1], -q[2], q[3]}
}

func TestQuatMulMatchesHamilton(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := newRand()
		for i := 0; i < 1000; i++ {
			a, b := randomUnitQuat(r), randomUnitQuat(r)
			got, want := QuatMul(a, b), hamilton(a, b)
			if !approxVector(got, want, 1e-5) {
				t.Fatalf("QuatMul(%v, %v): got %v, want %v", a, b, got, want)
			}
		}
	})
}

func TestQuatMulBasis(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		i, j, k := UnitX, UnitY, UnitZ
		tests := []struct {
			name       string
			a, b, want Vector
		}{
			{"i*j", i, j, k},
			{"j*k", j, k, i},
			{"k*i", k, i, j},
			{"j*i", j, i, k.Neg()},
			{"1*i", UnitW, i, i},
			{"i*i", i, i, UnitW.Neg()},
		}
		for _, tt := range tests {
			if got := QuatMul(tt.a, tt.b); !approxVector(got, tt.want, 1e-6) {
				t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
			}
		}
	})
}

func TestQuatRotateMatchesSandwich(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := newRand()
		for i := 0; i < 1000; i++ {
			q := randomUnitQuat(r)
			v := randomVector(r, 10).WithW(0)
			got := QuatRotate(q, v)
			want := hamilton(hamilton(q, v), conjugate(q)).WithW(0)
			if !approxVector(got, want, 1e-4) {
				t.Fatalf("QuatRotate(%v, %v): got %v, want %v", q, v, got, want)
			}
		}
	})
}
