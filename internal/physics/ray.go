package physics

import (
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RaySteps is the number of integer-unit samples taken along the view
// ray, counting both ends of the 1..RaySteps range.
const RaySteps = 9

// Sample holds the candidate cells at one ray step: Check is the cell
// the step lands in, Place the cell one step nearer the viewer.
type Sample struct {
	Check mgl32.Vec3
	Place mgl32.Vec3
}

// SampleAt computes the floored candidate cells for a given step.
func SampleAt(origin, forward mgl32.Vec3, step int) Sample {
	return Sample{
		Check: world.Floor(origin.Add(forward.Mul(float32(step)))),
		Place: world.Floor(origin.Add(forward.Mul(float32(step) - 1))),
	}
}

// Target walks the view ray step by step and turns the frame's button
// edges into at most one intent. Remove is checked before place, so it
// wins when both buttons fire in the same frame. The walk stops at the
// first step that emits, which means an edge always resolves at step 1:
// removal targets the nearest sampled cell whether or not it is
// occupied, and placement targets the cell containing the viewer's
// eye. An unoccupied removal target makes the intent a no-op at the
// consumer.
func Target(origin, forward mgl32.Vec3, removeEdge, placeEdge bool) world.Intent {
	for step := 1; step <= RaySteps; step++ {
		s := SampleAt(origin, forward, step)
		if removeEdge {
			return world.RemoveAt(s.Check)
		}
		if placeEdge {
			return world.PlaceAt(s.Place)
		}
	}
	return world.NoIntent()
}
