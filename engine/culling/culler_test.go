package culling

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/math"
	"github.com/korkuveren/MARS/engine/math/intersect"
	"github.com/korkuveren/MARS/engine/systems"
)

func boxBounds(min, max math.Spatial3D) Bounds {
	return NewBounds([]math.Spatial3D{min, max})
}

// testView is the clip cube moved to x in [4, 6].
func testView() math.Matrix {
	return math.NewMatrixTranslation(math.NewSpatial3D(-5, 0, 0))
}

func TestCull(t *testing.T) {
	c := NewCuller()
	inside := c.Add("inside", boxBounds(math.NewSpatial3D(4.5, -0.5, -0.5), math.NewSpatial3D(5.5, 0.5, 0.5)))
	c.Add("far away", boxBounds(math.NewSpatial3D(20, 0, 0), math.NewSpatial3D(21, 1, 1)))
	edge := c.Add("on the edge", boxBounds(math.NewSpatial3D(5.5, -0.2, -0.2), math.NewSpatial3D(6.5, 0.2, 0.2)))
	// The sphere around this slab crosses the frustum, the slab itself does not.
	c.Add("slab", boxBounds(math.NewSpatial3D(6.05, -3, -0.1), math.NewSpatial3D(6.15, 3, 0.1)))

	result := c.Cull(testView())

	want := []Visible{
		{ID: inside, Name: "inside", Classification: intersect.Inside},
		{ID: edge, Name: "on the edge", Classification: intersect.Intersecting},
	}
	if len(result.Visible) != len(want) {
		t.Fatalf("got %v, want %v", result.Visible, want)
	}
	for i := range want {
		if result.Visible[i] != want[i] {
			t.Errorf("visible %d: got %+v, want %+v", i, result.Visible[i], want[i])
		}
	}
	if result.Inside != 1 || result.Intersecting != 1 || result.Outside != 2 {
		t.Errorf("counts: got %v", result)
	}
}

func TestCullerRegistry(t *testing.T) {
	c := NewCuller()
	a := c.Add("a", boxBounds(math.Spatial3DZero, math.Spatial3DOne))
	b := c.Add("b", boxBounds(math.Spatial3DZero, math.Spatial3DOne))
	if a == b {
		t.Fatalf("Add returned the same id twice: %v", a)
	}
	if c.Len() != 2 {
		t.Errorf("Len: got %d, want 2", c.Len())
	}

	moved := boxBounds(math.NewSpatial3DScalar(4.9), math.NewSpatial3DScalar(5.1))
	if err := c.Update(b, moved); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := c.Get(b)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Box.Compare(moved.Box) || !got.Sphere.Compare(moved.Sphere) {
		t.Errorf("Get: got %+v, want %+v", got, moved)
	}

	if err := c.Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	missing := []struct {
		name string
		err  error
	}{
		{"Get", func() error { _, err := c.Get(a); return err }()},
		{"Update", c.Update(a, moved)},
		{"Remove", c.Remove(a)},
	}
	for _, tt := range missing {
		if !errors.Is(tt.err, core.ErrBoundsNotFound) {
			t.Errorf("%s on a removed id: got %v, want %v", tt.name, tt.err, core.ErrBoundsNotFound)
		}
	}

	if got := c.Cull(math.NewMatrixTranslation(math.NewSpatial3DScalar(-5))).Visible; len(got) != 1 || got[0].ID != b {
		t.Errorf("Cull after Remove: got %v", got)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear: got %d", c.Len())
	}
}

func TestCullerConcurrentAccess(t *testing.T) {
	c := NewCuller()
	view := testView()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				x := float32(w + i%3 + 3)
				id := c.Add(fmt.Sprintf("w%d-%d", w, i), boxBounds(math.NewSpatial3D(x, 0, 0), math.NewSpatial3D(x+0.5, 0.5, 0.5)))
				if i%5 == 0 {
					_ = c.Remove(id)
				}
				_ = c.Cull(view)
			}
		}(w)
	}
	wg.Wait()

	if c.Len() != 80 {
		t.Errorf("Len: got %d, want 80", c.Len())
	}
	r := c.Cull(view)
	if got := r.Inside + r.Intersecting + r.Outside; got != c.Len() {
		t.Errorf("classified %d entries, registry holds %d", got, c.Len())
	}
}

func TestCullerReplace(t *testing.T) {
	c := NewCuller()
	old := c.Add("old", boxBounds(math.Spatial3DZero, math.Spatial3DOne))

	near := boxBounds(math.NewSpatial3D(4.8, -0.1, -0.1), math.NewSpatial3D(5.2, 0.1, 0.1))
	far := boxBounds(math.NewSpatial3D(20, 0, 0), math.NewSpatial3D(21, 1, 1))
	ids := c.Replace([]Entry{{"a", near}, {"b", far}})

	if len(ids) != 2 || c.Len() != 2 {
		t.Fatalf("got ids %v, Len %d, want 2 and 2", ids, c.Len())
	}
	if _, err := c.Get(old); !errors.Is(err, core.ErrBoundsNotFound) {
		t.Errorf("old entry survived Replace: %v", err)
	}
	r := c.Cull(testView())
	if len(r.Visible) != 1 || r.Visible[0].ID != ids[0] || r.Visible[0].Name != "a" {
		t.Errorf("got %v", r.Visible)
	}
}

func TestCullerReplaceIsAtomic(t *testing.T) {
	near := boxBounds(math.NewSpatial3D(4.8, -0.1, -0.1), math.NewSpatial3D(5.2, 0.1, 0.1))
	far := boxBounds(math.NewSpatial3D(20, 0, 0), math.NewSpatial3D(21, 1, 1))
	small := []Entry{{"n0", near}, {"n1", near}, {"n2", near}}
	large := []Entry{{"f0", far}, {"f1", far}, {"f2", far}, {"f3", far}, {"f4", far}}

	c := NewCuller()
	c.Replace(small)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				c.Replace(large)
			} else {
				c.Replace(small)
			}
		}
	}()

	view := testView()
	for i := 0; i < 200; i++ {
		r := c.Cull(view)
		if !(r.Inside == 3 && r.Outside == 0) && !(r.Inside == 0 && r.Outside == 5) {
			t.Fatalf("pass %d saw a mixed registry: %v", i, r)
		}
	}
	<-done
}

func TestBoundsTransform(t *testing.T) {
	b := boxBounds(math.NewSpatial3DScalar(-1), math.Spatial3DOne)
	moved := b.Transform(math.NewMatrixTranslation(math.NewSpatial3D(5, 0, 0)))
	if want := math.NewSpatial3D(5, 0, 0); !moved.Box.Center().Equals(want, 1e-4) || !moved.Sphere.Center().Equals(want, 1e-4) {
		t.Errorf("got %v / %v, want both centered on %v", moved.Box, moved.Sphere, want)
	}
}

func TestCullParallelMatchesCull(t *testing.T) {
	js, err := systems.NewJobSystem(4, 4)
	if err != nil {
		t.Fatalf("NewJobSystem: %v", err)
	}
	defer js.Shutdown()

	c := NewCuller()
	for i := 0; i < 101; i++ {
		x := float32(i%13) - 2
		y := float32(i%7)*0.4 - 1.2
		c.Add(fmt.Sprintf("box %d", i), boxBounds(math.NewSpatial3D(x, y, -0.3), math.NewSpatial3D(x+0.6, y+0.6, 0.3)))
	}

	want := c.Cull(testView())
	for _, chunk := range []int{0, 1, 7, 500} {
		got, err := c.CullParallel(js, testView(), chunk)
		if err != nil {
			t.Fatalf("chunk %d: %v", chunk, err)
		}
		if got.String() != want.String() || len(got.Visible) != len(want.Visible) {
			t.Fatalf("chunk %d: got %v, want %v", chunk, got, want)
		}
		for i := range want.Visible {
			if got.Visible[i] != want.Visible[i] {
				t.Errorf("chunk %d, visible %d: got %+v, want %+v", chunk, i, got.Visible[i], want.Visible[i])
			}
		}
	}

	empty, err := NewCuller().CullParallel(js, testView(), 0)
	if err != nil || len(empty.Visible) != 0 {
		t.Errorf("empty culler: got %v, %v", empty, err)
	}
}

func TestCullParallelAfterShutdown(t *testing.T) {
	js, err := systems.NewJobSystem(1, 0)
	if err != nil {
		t.Fatalf("NewJobSystem: %v", err)
	}
	_ = js.Shutdown()

	c := NewCuller()
	c.Add("a", boxBounds(math.Spatial3DZero, math.Spatial3DOne))
	if _, err := c.CullParallel(js, testView(), 1); !errors.Is(err, core.ErrNotInitialized) {
		t.Errorf("got %v, want %v", err, core.ErrNotInitialized)
	}
}
