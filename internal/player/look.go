package player

import (
	"mini-voxel/internal/input"
)

// UpdateLook applies the frame's accumulated mouse motion to yaw and
// pitch. Moving the mouse right decreases yaw. A frame without motion
// changes nothing; several motion events in one frame arrive already
// summed in the snapshot, which is equivalent to applying them in
// order since the update is linear and the clamp runs after.
func (p *Player) UpdateLook(frame input.Frame, dt float64) {
	if frame.MouseDX == 0 && frame.MouseDY == 0 {
		return
	}

	p.Yaw -= float32(frame.MouseDX * float64(p.sensitivity) * dt)
	p.Pitch += float32(frame.MouseDY * float64(p.sensitivity) * dt)
	p.clampPitch()
}
