package math

import (
	"testing"
)

func TestPlaneDot(t *testing.T) {
	p := NewPlane(Spatial3DRight, 0)
	if got := p.Dot(NewSpatial3D(3, 1, 2)); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
	shifted := NewPlane(Spatial3DRight, -2)
	if got := shifted.Dot(NewSpatial3D(3, 1, 2)); got != -1 {
		t.Errorf("Dot with distance: got %v, want -1", got)
	}
	if got := shifted.DotVector(NewSpatial3D(0, 4, 0).Vector4(0)); got != 4 {
		t.Errorf("DotVector ignores distance for w = 0: got %v", got)
	}
	if got := shifted.DotPlane(shifted); got != 5 {
		t.Errorf("DotPlane: got %v, want 5", got)
	}
}

func TestPlaneNormalized(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		p := NewPlane(NewSpatial3D(0, 0, 2), 4).Normalized()
		want := NewPlane(Spatial3DUp, 2)
		if !p.Equals(want, testEpsilon) {
			t.Errorf("got %v, want %v", p, want)
		}
		if !p.IsNormalized(testEpsilon) {
			t.Errorf("%v not normalized", p)
		}
		if got := p.Normal(); !got.Equals(Spatial3DUp, testEpsilon) {
			t.Errorf("Normal: got %v", got)
		}
		if got := p.Distance(); !approx(got, 2, testEpsilon) {
			t.Errorf("Distance: got %v, want 2", got)
		}
	})
}

func TestPlaneReflect(t *testing.T) {
	p := NewPlane(Spatial3DUp, 0)
	if got := p.Reflect(NewSpatial3D(1, 2, 3)); !got.Equals(NewSpatial3D(1, 2, -3), testEpsilon) {
		t.Errorf("got %v", got)
	}
	p = NewPlane(Spatial3DUp, -1)
	if got := p.Reflect(NewSpatial3D(1, 2, 3)); !got.Equals(NewSpatial3D(1, 2, -1), testEpsilon) {
		t.Errorf("offset plane: got %v", got)
	}
}

func TestPlaneIntersectRayAndLine(t *testing.T) {
	p := NewPlane(Spatial3DFront, -1)
	if got := p.IntersectLine(Spatial3DZero, NewSpatial3D(2, 0, 0)); got != 0.5 {
		t.Errorf("IntersectLine: got %v, want 0.5", got)
	}
	if got := p.IntersectRay(Spatial3DZero, Spatial3DFront); got != 1 {
		t.Errorf("IntersectRay: got %v, want 1", got)
	}
	if got := p.IntersectRay(NewSpatial3D(3, 0, 0), Spatial3DFront); got != -2 {
		t.Errorf("IntersectRay behind the start: got %v, want -2", got)
	}
}

func TestPlaneTransform(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		p := NewPlane(Spatial3DFront, -1)
		m := NewMatrixTransform(
			NewSpatial3D(0, 0, 2),
			NewQuatFromAxisAngle(Spatial3DRight, DegToRad(90)),
			NewSpatial3D(0.4, 2.3, 1.7),
		)
		got := p.Transform(m)
		if d := got.Dot(NewSpatial3D(2, 0, 0)); !approx(d, 1.6, testEpsilon) {
			t.Errorf("Dot after transform: got %v, want 1.6 (plane %v)", d, got)
		}
		if !got.IsNormalized(testEpsilon) {
			t.Errorf("transformed plane %v is not normalized", got)
		}

		// Points on the original plane stay on the transformed one.
		for _, pt := range []Spatial3D{NewSpatial3D(1, 0, 0), NewSpatial3D(1, 5, -3)} {
			if d := got.Dot(m.TransformPoint(pt)); !approx(d, 0, 1e-3) {
				t.Errorf("transformed %v is %v away from the plane", pt, d)
			}
		}
	})
}

func TestIntersectPlanes(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		got, ok := IntersectPlanes(
			NewPlane(Spatial3DFront, -1),
			NewPlane(Spatial3DRight, -2),
			NewPlane(Spatial3DUp, -3),
			K_NORMALIZE_EPSILON,
		)
		if !ok || !got.Equals(NewSpatial3D(1, 2, 3), testEpsilon) {
			t.Errorf("axis planes: got %v, %v", got, ok)
		}

		p4 := NewPlane(NewSpatial3D(0.13, 0.46, 0.89).Normalize(), -0.1)
		p5 := NewPlane(NewSpatial3D(-0.74, 2.3, -0.1).Normalize(), 2.3)
		p6 := NewPlane(NewSpatial3D(1, -2, 10).Normalize(), -23.7)
		got, ok = IntersectPlanes(p4, p5, p6, K_NORMALIZE_EPSILON)
		if !ok {
			t.Fatalf("general planes reported no intersection")
		}
		for i, p := range []Plane{p4, p5, p6} {
			if d := p.Dot(got); !approx(d, 0, 1e-3) {
				t.Errorf("point %v is %v away from plane %d", got, d, i)
			}
		}

		_, ok = IntersectPlanes(
			NewPlane(Spatial3DUp, 0),
			NewPlane(Spatial3DUp, -1),
			NewPlane(Spatial3DFront, 0),
			K_NORMALIZE_EPSILON,
		)
		if ok {
			t.Errorf("parallel planes reported an intersection")
		}
	})
}

func TestPlaneArithmetic(t *testing.T) {
	a := NewPlane(NewSpatial3D(1, 2, 3), 4)
	b := NewPlane(NewSpatial3D(-1, 0, 1), -2)
	if got := a.Add(b).Sub(b); !got.Equals(a, testEpsilon) {
		t.Errorf("Add/Sub: got %v", got)
	}
	if got := b.Abs(); !got.Compare(NewPlane(NewSpatial3D(1, 0, 1), 2)) {
		t.Errorf("Abs: got %v", got)
	}
	if got := a.Scale(2).Neg(); !got.Compare(NewPlane(NewSpatial3D(-2, -4, -6), -8)) {
		t.Errorf("Scale/Neg: got %v", got)
	}
}
