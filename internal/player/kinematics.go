package player

import (
	"mini-voxel/internal/input"
)

// ApplyGravity integrates the vertical state machine for one frame.
// Airborne, the vertical velocity accumulates gravity; the position
// then integrates the full velocity vector. Crossing the ground
// surface lands the viewer: position snaps to the surface, vertical
// velocity zeroes, state returns to grounded. Grounded, gravity is
// frozen until the next jump.
func (p *Player) ApplyGravity(dt float64) {
	if !p.caps.Gravity {
		return
	}

	if !p.OnGround {
		p.Velocity[1] += p.gravity * float32(dt)
	}

	p.Position = p.Position.Add(p.Velocity.Mul(float32(dt)))

	if p.Position.Y() <= p.groundLevel {
		p.Position[1] = p.groundLevel
		p.Velocity[1] = 0
		p.OnGround = true
	}
}

// Jump launches the viewer on a jump edge. It fires once per physical
// key-down and only while grounded; an airborne edge is a no-op.
func (p *Player) Jump(frame input.Frame) {
	if !p.caps.Gravity {
		return
	}

	if p.OnGround && frame.JustPressed(input.ActionJump) {
		p.Velocity[1] = p.jumpSpeed
		p.OnGround = false
	}
}
