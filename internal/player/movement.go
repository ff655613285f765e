package player

import (
	"mini-voxel/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateMovement displaces the viewer horizontally from held movement
// keys. Held directions add up, so opposite keys cancel and diagonals
// are the vector sum, normalized to unit length so diagonal movement is
// no faster than straight.
//
// Without gravity the jump key nudges the position upward directly and
// the vertical coordinate is clamped to the ground surface; with
// gravity both belong to the vertical kinematics pass.
func (p *Player) UpdateMovement(frame input.Frame, dt float64) {
	forward, right := p.Forward(), p.Right()

	var dir mgl32.Vec3
	if frame.Held(input.ActionMoveForward) {
		dir = dir.Add(forward)
	}
	if frame.Held(input.ActionMoveBackward) {
		dir = dir.Sub(forward)
	}
	if frame.Held(input.ActionMoveRight) {
		dir = dir.Add(right)
	}
	if frame.Held(input.ActionMoveLeft) {
		dir = dir.Sub(right)
	}

	dir[1] = 0
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}

	p.Position = p.Position.Add(dir.Mul(p.speed * float32(dt)))

	if !p.caps.Gravity {
		if frame.JustPressed(input.ActionJump) {
			p.Position[1] += p.jumpSpeed * float32(dt)
		}
		if p.Position[1] < p.groundLevel {
			p.Position[1] = p.groundLevel
		}
	}
}
