package player_test

import (
	"math"
	"testing"

	"mini-voxel/internal/config"
	"mini-voxel/internal/input"
	"mini-voxel/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// frameWith builds a frame snapshot with the given keys just pressed
// and held, the way the manager would after receiving the events.
func frameWith(keys ...glfw.Key) input.Frame {
	m := input.NewManager()
	for _, k := range keys {
		m.HandleKeyEvent(k, glfw.Press)
	}
	return m.Frame()
}

// heldFrame builds a frame where the keys are held but the press edges
// already fired in an earlier frame.
func heldFrame(keys ...glfw.Key) input.Frame {
	m := input.NewManager()
	for _, k := range keys {
		m.HandleKeyEvent(k, glfw.Press)
	}
	m.PostUpdate()
	return m.Frame()
}

// motionFrame builds a frame carrying only mouse motion.
func motionFrame(dx, dy float64) input.Frame {
	m := input.NewManager()
	m.HandleMouseMotion(dx, dy)
	return m.Frame()
}

func legacyConfig() *config.Config {
	cfg := config.Default()
	cfg.Controller.GravityEnabled = false
	cfg.Controller.PitchClamp = false
	return cfg
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func TestSpawnFacesLookTarget(t *testing.T) {
	cfg := config.Default()
	p := player.New(cfg)

	// Spawn (8,5,8) looking at (8,0,7).
	want := mgl32.Vec3{0, -5, -1}.Normalize()
	if !vecNear(p.Forward(), want, 1e-5) {
		t.Errorf("Expected forward %v, got %v", want, p.Forward())
	}
	if !p.OnGround {
		t.Errorf("Expected viewer to spawn grounded")
	}
}

func TestForwardAtZeroOrientation(t *testing.T) {
	p := player.New(config.Default())
	p.Yaw, p.Pitch = 0, 0

	if !vecNear(p.Forward(), mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Expected forward (0,0,-1), got %v", p.Forward())
	}
	if !vecNear(p.Right(), mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Expected right (1,0,0), got %v", p.Right())
	}
}

func TestLookAtSelfKeepsOrientation(t *testing.T) {
	p := player.New(config.Default())
	yaw, pitch := p.Yaw, p.Pitch

	p.LookAt(p.Position)

	if p.Yaw != yaw || p.Pitch != pitch {
		t.Errorf("LookAt at own position must not change orientation")
	}
}

func TestLookAtRoundTrips(t *testing.T) {
	p := player.New(config.Default())
	target := mgl32.Vec3{12, 3, 2}

	p.LookAt(target)

	want := target.Sub(p.Position).Normalize()
	if !vecNear(p.Forward(), want, 1e-5) {
		t.Errorf("Expected forward %v after LookAt, got %v", want, p.Forward())
	}
}

func TestOrientationComposition(t *testing.T) {
	p := player.New(config.Default())
	p.Yaw = 0.3
	p.Pitch = -0.2

	q := mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(0.2, mgl32.Vec3{1, 0, 0}))
	want := q.Rotate(mgl32.Vec3{0, 0, -1})

	if !vecNear(p.Forward(), want, 1e-6) {
		t.Errorf("Expected forward %v, got %v", want, p.Forward())
	}
	// Forward stays unit length.
	if math.Abs(float64(p.Forward().Len())-1) > 1e-6 {
		t.Errorf("Expected unit forward, length %v", p.Forward().Len())
	}
}
