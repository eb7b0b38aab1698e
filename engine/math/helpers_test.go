package math

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/korkuveren/MARS/engine/math/vector"
)

const testEpsilon float32 = 1e-4

// forEachBackend runs fn under every vector kernel compiled into the test
// binary.
func forEachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	prev := vector.Backend()
	defer func() {
		if err := vector.UseBackend(prev); err != nil {
			t.Fatalf("restore backend %s: %v", prev, err)
		}
	}()
	for _, level := range vector.Backends() {
		if err := vector.UseBackend(level); err != nil {
			t.Fatalf("UseBackend(%s): %v", level, err)
		}
		t.Run(level.String(), fn)
	}
}

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x4d415253, 0x6d617468))
}

func randomSpatial(r *rand.Rand, scale float32) Spatial3D {
	return NewSpatial3D(
		(r.Float32()*2-1)*scale,
		(r.Float32()*2-1)*scale,
		(r.Float32()*2-1)*scale,
	)
}

func randomRotation(r *rand.Rand) Quaternion {
	for {
		axis := randomSpatial(r, 1)
		if axis.LengthSquared() > 1e-3 {
			return NewQuatFromAxisAngle(axis.Normalize(), (r.Float32()*2-1)*K_PI)
		}
	}
}

// testPoints is a small cloud with a known bounding box and sphere.
var testPoints = []Spatial3D{
	NewSpatial3D(1, 1, 1),
	NewSpatial3D(1, 0, 1),
	NewSpatial3D(0, 1, 1),
	NewSpatial3D(0, -1, -1),
	NewSpatial3D(0, 0, 0.2),
	NewSpatial3D(0.7, 0.4, 0.3),
	NewSpatial3D(0.3, -0.8, 0.4),
	NewSpatial3D(0.3, -0.8, -0.4),
}

// testTRS is a transform with an off-axis rotation and uneven scale.
func testTRS() (Spatial3D, Quaternion, Spatial3D) {
	t := NewSpatial3D(5.64635, 1.325345, 2.02523)
	axis := NewSpatial3D(1.242, 2.2432, 3.75354).Normalize()
	r := NewQuatFromAxisAngle(axis, 2.54343)
	s := NewSpatial3D(1.4215, 0.123141, 3.7423)
	return t, r, s
}

func expectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("got panic %v, want one wrapping %v", r, target)
		}
	}()
	fn()
}
