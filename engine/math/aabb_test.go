package math

import (
	"testing"
)

func unitBox() AABB {
	return NewAABB(Spatial3DZero, Spatial3DOne)
}

func TestAABBIntersects(t *testing.T) {
	box := unitBox()
	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"shifted up", box.Translate(NewSpatial3DScalar(0.5)), true},
		{"shifted down", box.Translate(NewSpatial3DScalar(-0.5)), true},
		{"touching face", box.Translate(Spatial3DFront), false},
		{"apart", box.Translate(NewSpatial3D(0, 0, 3)), false},
		{"enclosing", box.Expand(1), true},
	}
	for _, tt := range tests {
		if got := box.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(box); got != tt.want {
			t.Errorf("%s reversed: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAABBContains(t *testing.T) {
	box := unitBox()
	points := []struct {
		p    Spatial3D
		want bool
	}{
		{NewSpatial3DScalar(0.5), true},
		{NewSpatial3D(1, 0.5, 0.5), false},
		{NewSpatial3D(0.5, 0.5, -0.1), false},
	}
	for _, tt := range points {
		if got := box.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v): got %v, want %v", tt.p, got, tt.want)
		}
	}

	boxes := []struct {
		name  string
		inner AABB
		want  bool
	}{
		{"shrunk", box.ScaleFromCenter(NewSpatial3DScalar(0.5)), true},
		{"itself", box, false},
		{"sharing a face", NewAABB(NewSpatial3DScalar(0.25), NewSpatial3D(1, 0.75, 0.75)), false},
		{"larger", box.Expand(0.1), false},
	}
	for _, tt := range boxes {
		if got := box.ContainsAABB(tt.inner); got != tt.want {
			t.Errorf("ContainsAABB %s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAABBFromPoints(t *testing.T) {
	want := NewAABB(NewSpatial3D(0, -1, -1), Spatial3DOne)
	if got := NewAABBFromPoints(testPoints); !got.Compare(want) {
		t.Errorf("points: got %v, want %v", got, want)
	}

	// Each position is followed by three padding floats.
	var data []float32
	for _, p := range testPoints {
		data = append(data, p[0], p[1], p[2], 9, 9, 9)
	}
	if got := NewAABBFromFloats(data, 3); !got.Compare(want) {
		t.Errorf("strided floats: got %v, want %v", got, want)
	}
	// The last position is cut short and skipped. It lies inside the box
	// spanned by the others.
	if got := NewAABBFromFloats(data[:len(data)-4], 3); !got.Compare(want) {
		t.Errorf("truncated floats: got %v", got)
	}

	if got := NewAABBFromPoints(nil); !got.Compare(AABB{}) {
		t.Errorf("no points: got %v", got)
	}
	if got := NewAABBFromFloats([]float32{1, 2}, 0); !got.Compare(AABB{}) {
		t.Errorf("short buffer: got %v", got)
	}
}

func TestAABBShape(t *testing.T) {
	box := NewAABB(NewSpatial3D(-1, 0, 2), NewSpatial3D(3, 2, 3))
	center, extents := box.CenterAndExtents()
	if !center.Equals(NewSpatial3D(1, 1, 2.5), testEpsilon) || !center.Equals(box.Center(), testEpsilon) {
		t.Errorf("center: got %v", center)
	}
	if !extents.Equals(NewSpatial3D(2, 1, 0.5), testEpsilon) {
		t.Errorf("extents: got %v", extents)
	}
	if got := box.Volume(); got != 8 {
		t.Errorf("Volume: got %v, want 8", got)
	}

	tests := []struct {
		name string
		got  AABB
		want AABB
	}{
		{"MoveTo", box.MoveTo(Spatial3DZero), NewAABB(NewSpatial3D(-2, -1, -0.5), NewSpatial3D(2, 1, 0.5))},
		{"ScaleFromOrigin", box.ScaleFromOrigin(NewSpatial3D(2, 1, 1)), NewAABB(NewSpatial3D(-2, 0, 2), NewSpatial3D(6, 2, 3))},
		{"ExpandVector", box.ExpandVector(NewSpatial3D(1, 0, 0)), NewAABB(NewSpatial3D(-2, 0, 2), NewSpatial3D(4, 2, 3))},
		{"Overlap", box.Overlap(unitBox().ScaleFromOrigin(NewSpatial3DScalar(3))), NewAABB(NewSpatial3D(0, 0, 2), NewSpatial3D(3, 2, 3))},
		{"AddAABB", box.AddAABB(unitBox()), NewAABB(NewSpatial3D(-1, 0, 0), NewSpatial3D(3, 2, 3))},
	}
	for _, tt := range tests {
		if !tt.got.Equals(tt.want, testEpsilon) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestAABBCorners(t *testing.T) {
	box := NewAABB(NewSpatial3D(-1, -2, -3), NewSpatial3D(1, 2, 3))
	corners := box.Corners()
	if !corners[0].Equals(box.Min, 1e-6) || !corners[7].Equals(box.Max, 1e-6) {
		t.Errorf("extreme corners: got %v and %v", corners[0], corners[7])
	}
	if want := NewSpatial3D(1, -2, 3); !corners[5].Equals(want, 1e-6) {
		t.Errorf("corner 5: got %v, want %v", corners[5], want)
	}
	if got := NewAABBFromPoints(corners[:]); !got.Compare(box) {
		t.Errorf("box around corners: got %v", got)
	}
}

func TestAABBTransform(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		box := NewAABB(Spatial3DZero, NewSpatial3D(1, 2, 3))
		m := NewMatrixTranslation(NewSpatial3D(2, 1, -1)).Mul(NewMatrixScale(NewSpatial3D(0.5, 1, 1)))
		center, extents := box.Transform(m).CenterAndExtents()
		if !center.Equals(NewSpatial3D(2.25, 2, 0.5), testEpsilon) {
			t.Errorf("center: got %v", center)
		}
		if !extents.Equals(NewSpatial3D(0.25, 1, 1.5), testEpsilon) {
			t.Errorf("extents: got %v", extents)
		}

		box = NewAABB(NewSpatial3D(-1, -2, 0), NewSpatial3D(1, 2, 1))
		m = NewMatrixTransform(Spatial3DZero, NewQuatFromAxisAngle(Spatial3DUp, K_HALF_PI), Spatial3DOne)
		want := NewAABB(NewSpatial3D(-2, -1, 0), NewSpatial3D(2, 1, 1))
		if got := box.Transform(m); !got.Equals(want, testEpsilon) {
			t.Errorf("quarter turn: got %v, want %v", got, want)
		}

		// The result must still hold every transformed corner.
		m = NewMatrixTransform(NewSpatial3D(1, 2, 3), NewQuatFromAxisAngle(NewSpatial3D(1, 1, 0).Normalize(), 0.7), NewSpatial3D(1, 2, 0.5))
		got := box.Transform(m).Expand(1e-3)
		for _, c := range box.Corners() {
			if p := m.TransformPoint(c); !got.ContainsPoint(p) {
				t.Errorf("transformed corner %v escapes %v", p, got)
			}
		}
	})
}

func TestAABBIntersectRay(t *testing.T) {
	box := NewAABB(NewSpatial3DScalar(-1), Spatial3DOne)
	tests := []struct {
		name      string
		start     Spatial3D
		dir       Spatial3D
		near, far float32
		ok        bool
	}{
		{"head on", NewSpatial3D(-3, 0, 0), Spatial3DFront, 2, 4, true},
		{"diagonal", NewSpatial3DScalar(-3), NewSpatial3DScalar(1), 2, 4, true},
		{"miss", NewSpatial3D(-3, 2, 0), Spatial3DFront, 0, 0, false},
		{"past the edge", NewSpatial3D(-3, 1.01, 0), Spatial3DFront, 0, 0, false},
		{"from inside", Spatial3DZero, Spatial3DUp, -1, 1, true},
	}
	forEachBackend(t, func(t *testing.T) {
		for _, tt := range tests {
			near, far, ok := box.IntersectRay(tt.start, tt.dir)
			if ok != tt.ok || !approx(near, tt.near, testEpsilon) || !approx(far, tt.far, testEpsilon) {
				t.Errorf("%s: got (%v, %v, %v), want (%v, %v, %v)", tt.name, near, far, ok, tt.near, tt.far, tt.ok)
			}
		}

		// A ray running exactly along a face produces 0·∞ on that axis. The
		// NaN is skipped and the face counts as a hit.
		if _, _, ok := box.IntersectRay(NewSpatial3D(-3, 1, 0), Spatial3DFront); !ok {
			t.Errorf("ray along the face reported a miss")
		}
	})

	if !box.IntersectLine(NewSpatial3D(-3, 0, 0), NewSpatial3D(3, 0, 0)) {
		t.Errorf("IntersectLine through the box reported a miss")
	}
	if box.IntersectLine(NewSpatial3D(-3, 0, 0), NewSpatial3D(-1.5, 0, 0)) {
		t.Errorf("IntersectLine stopping short reported a hit")
	}
}
