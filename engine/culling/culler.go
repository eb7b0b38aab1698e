// Package culling keeps a registry of world-space bounds and sorts them
// against a camera frustum.
package culling

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/korkuveren/MARS/engine/core"
	"github.com/korkuveren/MARS/engine/math"
	"github.com/korkuveren/MARS/engine/math/intersect"
	"github.com/korkuveren/MARS/engine/systems"
)

// BoundsID identifies a registered set of bounds.
type BoundsID uuid.UUID

func (id BoundsID) String() string { return uuid.UUID(id).String() }

// Bounds pairs a cheap sphere with a tighter box around the same geometry.
type Bounds struct {
	Sphere math.Sphere
	Box    math.AABB
}

// NewBounds fits both volumes around points.
func NewBounds(points []math.Spatial3D) Bounds {
	return Bounds{
		Sphere: math.NewSphereFromPoints(points),
		Box:    math.NewAABBFromPoints(points),
	}
}

// Transform moves both volumes by m.
func (b Bounds) Transform(m math.Matrix) Bounds {
	return Bounds{Sphere: b.Sphere.Transform(m), Box: b.Box.Transform(m)}
}

// Visible is one entry that survived a cull.
type Visible struct {
	ID             BoundsID
	Name           string
	Classification intersect.Classification
}

// Result lists the visible entries in registration order, plus a count per
// classification.
type Result struct {
	Visible      []Visible
	Inside       int
	Intersecting int
	Outside      int
}

func (r Result) String() string {
	return fmt.Sprintf("visible=%d inside=%d intersecting=%d outside=%d",
		len(r.Visible), r.Inside, r.Intersecting, r.Outside)
}

type entry struct {
	name   string
	bounds Bounds
}

// Culler is safe for concurrent use.
type Culler struct {
	mutex   sync.RWMutex
	entries map[BoundsID]*entry
	order   []BoundsID
}

func NewCuller() *Culler {
	return &Culler{entries: make(map[BoundsID]*entry)}
}

// Add registers b under a fresh id.
func (c *Culler) Add(name string, b Bounds) BoundsID {
	id := BoundsID(uuid.New())

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries[id] = &entry{name: name, bounds: b}
	c.order = append(c.order, id)
	return id
}

func (c *Culler) Update(id BoundsID, b Bounds) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return fmt.Errorf("culling: update %s: %w", id, core.ErrBoundsNotFound)
	}
	e.bounds = b
	return nil
}

func (c *Culler) Remove(id BoundsID) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.entries[id]; !ok {
		return fmt.Errorf("culling: remove %s: %w", id, core.ErrBoundsNotFound)
	}
	delete(c.entries, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Culler) Get(id BoundsID) (Bounds, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	e, ok := c.entries[id]
	if !ok {
		return Bounds{}, fmt.Errorf("culling: get %s: %w", id, core.ErrBoundsNotFound)
	}
	return e.bounds, nil
}

func (c *Culler) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Entry names a set of bounds for Replace.
type Entry struct {
	Name   string
	Bounds Bounds
}

// Replace swaps the whole registry for entries under one lock, so a
// concurrent Cull sees either the old or the new set. The returned ids
// follow the order of entries.
func (c *Culler) Replace(entries []Entry) []BoundsID {
	ids := make([]BoundsID, len(entries))
	fresh := make(map[BoundsID]*entry, len(entries))
	for i, e := range entries {
		ids[i] = BoundsID(uuid.New())
		fresh[ids[i]] = &entry{name: e.Name, bounds: e.Bounds}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = fresh
	c.order = ids
	return ids
}

// Clear drops every entry.
func (c *Culler) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[BoundsID]*entry)
	c.order = nil
}

/**
 * @brief Classifies every registered entry against the frustum of
 * viewProjection.
 *
 * The sphere test runs first. Only spheres crossing a plane are refined with
 * the box test, which may still move the entry to inside or outside.
 *
 * @param viewProjection The combined view and projection matrix.
 * @return The visible entries and the per-classification counts.
 */
func (c *Culler) Cull(viewProjection math.Matrix) Result {
	planes := viewProjection.FrustumPlanes()

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	classes := make([]intersect.Classification, len(c.order))
	c.classify(&planes, 0, len(c.order), classes)
	return c.collect(classes)
}

/**
 * @brief Like Cull, but classifies chunks of at least chunkSize entries on
 * the workers of js. The result is identical to Cull.
 *
 * @param js The job system running the chunks.
 * @param viewProjection The combined view and projection matrix.
 * @param chunkSize Entries per job. Values below 1 mean one chunk per worker.
 * @return The visible entries and the per-classification counts.
 */
func (c *Culler) CullParallel(js *systems.JobSystem, viewProjection math.Matrix, chunkSize int) (Result, error) {
	planes := viewProjection.FrustumPlanes()

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := len(c.order)
	if chunkSize < 1 {
		chunkSize = (n + js.Workers() - 1) / js.Workers()
		if chunkSize < 1 {
			chunkSize = 1
		}
	}

	classes := make([]intersect.Classification, n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		err := js.Submit(systems.JobTask{
			OnStart: func() error {
				c.classify(&planes, start, end, classes)
				return nil
			},
			OnCompletionCallback: wg.Done,
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return Result{}, fmt.Errorf("culling: submit chunk %d: %w", start/chunkSize, err)
		}
	}
	wg.Wait()
	return c.collect(classes), nil
}

// classify fills classes[start:end] for the entries at the same positions
// in c.order. The caller holds the read lock.
func (c *Culler) classify(planes *[6]math.Plane, start, end int, classes []intersect.Classification) {
	for i := start; i < end; i++ {
		e := c.entries[c.order[i]]
		class := intersect.FrustumSphere(planes, e.bounds.Sphere)
		if class == intersect.Intersecting {
			class = intersect.FrustumAABB(planes, e.bounds.Box)
		}
		classes[i] = class
	}
}

func (c *Culler) collect(classes []intersect.Classification) Result {
	result := Result{Visible: make([]Visible, 0, len(classes))}
	for i, class := range classes {
		switch class {
		case intersect.Outside:
			result.Outside++
			continue
		case intersect.Intersecting:
			result.Intersecting++
		case intersect.Inside:
			result.Inside++
		}
		id := c.order[i]
		result.Visible = append(result.Visible, Visible{ID: id, Name: c.entries[id].name, Classification: class})
	}
	return result
}
