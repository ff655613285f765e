package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Cell is a unit voxel cube, the atomic entity of the world. The host
// engine mirrors each cell with a visual entity keyed by ID.
type Cell struct {
	ID       uuid.UUID
	Position mgl32.Vec3
}

// CellKey returns the integer cell the position falls into, the same
// floor used by the removal scan.
func CellKey(pos mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(pos.X()))),
		int(math.Floor(float64(pos.Y()))),
		int(math.Floor(float64(pos.Z()))),
	}
}

// Floor snaps every component of pos down to the containing integer.
func Floor(pos mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Floor(float64(pos.X()))),
		float32(math.Floor(float64(pos.Y()))),
		float32(math.Floor(float64(pos.Z()))),
	}
}
