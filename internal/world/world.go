package world

import (
	"sync"

	"mini-voxel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// World holds the voxel cell collection. Cells are kept in spawn order;
// the removal scan walks that order and despawns the first match, which
// is the whole consistency story: placement never checks occupancy, so
// a cell key may be occupied more than once.
//
// The simulation mutates the world from a single goroutine per frame.
// The mutex exists for observers (snapshotting) that read concurrently.
type World struct {
	mu    sync.RWMutex
	cells []Cell
}

func New() *World {
	return &World{
		cells: make([]Cell, 0, 256),
	}
}

// Spawn creates a cell at pos and returns it. No occupancy check.
func (w *World) Spawn(pos mgl32.Vec3) Cell {
	c := Cell{ID: uuid.New(), Position: pos}

	w.mu.Lock()
	w.cells = append(w.cells, c)
	w.mu.Unlock()

	return c
}

// RemoveAt despawns the first cell, in spawn order, whose floored
// position equals the floored target. It reports whether a cell was
// removed; a miss is an ordinary no-op.
func (w *World) RemoveAt(target mgl32.Vec3) (Cell, bool) {
	defer profiling.Track("world.RemoveAt")()
	key := CellKey(target)

	w.mu.Lock()
	defer w.mu.Unlock()

	for i, c := range w.cells {
		if CellKey(c.Position) == key {
			w.cells = append(w.cells[:i], w.cells[i+1:]...)
			return c, true
		}
	}
	return Cell{}, false
}

// CountAt returns how many cells occupy the integer cell of target.
func (w *World) CountAt(target mgl32.Vec3) int {
	key := CellKey(target)

	w.mu.RLock()
	defer w.mu.RUnlock()

	n := 0
	for _, c := range w.cells {
		if CellKey(c.Position) == key {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cell list in spawn order.
func (w *World) Cells() []Cell {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Cell, len(w.cells))
	copy(out, w.cells)
	return out
}

func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.cells)
}

// Restore replaces the cell collection, keeping the given identities.
// Used when loading a snapshot.
func (w *World) Restore(cells []Cell) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cells = make([]Cell, len(cells))
	copy(w.cells, cells)
}
