package player

import (
	"math"

	"mini-voxel/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Capabilities selects between the two controller variants of the
// prototype demos: the physics variant has gravity and a clamped pitch,
// the legacy variant has neither.
type Capabilities struct {
	Gravity    bool
	PitchClamp bool
}

// Player is the single viewer entity: camera and body in one. Yaw and
// pitch are kept as separate scalars rather than one rotation so pitch
// can be clamped independently. Only the vertical velocity component is
// ever non-zero; horizontal motion is applied positionally.
type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Yaw      float32 // radians around world up
	Pitch    float32 // radians, positive looks down
	OnGround bool

	caps Capabilities

	speed       float32
	jumpSpeed   float32
	gravity     float32
	sensitivity float32
	pitchLimit  float32
	groundLevel float32
}

// New spawns the viewer at the configured position, standing on ground,
// facing the configured look target.
func New(cfg *config.Config) *Player {
	p := &Player{
		Position:    vec3(cfg.World.Spawn),
		OnGround:    true,
		caps:        Capabilities{Gravity: cfg.Controller.GravityEnabled, PitchClamp: cfg.Controller.PitchClamp},
		speed:       float32(cfg.Controller.Speed),
		jumpSpeed:   float32(cfg.Controller.JumpSpeed),
		gravity:     float32(cfg.Controller.Gravity),
		sensitivity: float32(cfg.Controller.Sensitivity),
		pitchLimit:  float32(cfg.Controller.PitchLimit),
		groundLevel: float32(cfg.Controller.GroundLevel),
	}
	p.LookAt(vec3(cfg.World.SpawnLook))
	return p
}

// Orientation composes the view rotation: yaw around world up, then
// -pitch around the local x axis.
func (p *Player) Orientation() mgl32.Quat {
	yawRot := mgl32.QuatRotate(p.Yaw, mgl32.Vec3{0, 1, 0})
	pitchRot := mgl32.QuatRotate(-p.Pitch, mgl32.Vec3{1, 0, 0})
	return yawRot.Mul(pitchRot)
}

// Forward returns the unit view direction. At zero orientation the
// viewer faces -z.
func (p *Player) Forward() mgl32.Vec3 {
	return p.Orientation().Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the unit vector to the viewer's right.
func (p *Player) Right() mgl32.Vec3 {
	return p.Orientation().Rotate(mgl32.Vec3{1, 0, 0})
}

// LookAt sets yaw and pitch so Forward points from the current position
// toward target. A target at the current position leaves the
// orientation unchanged.
func (p *Player) LookAt(target mgl32.Vec3) {
	dir := target.Sub(p.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()

	p.Pitch = float32(math.Asin(float64(-dir.Y())))
	p.Yaw = float32(math.Atan2(float64(-dir.X()), float64(-dir.Z())))
	p.clampPitch()
}

func (p *Player) clampPitch() {
	if !p.caps.PitchClamp {
		return
	}
	if p.Pitch > p.pitchLimit {
		p.Pitch = p.pitchLimit
	}
	if p.Pitch < -p.pitchLimit {
		p.Pitch = -p.pitchLimit
	}
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
