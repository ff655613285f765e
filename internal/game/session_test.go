package game_test

import (
	"testing"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/input"
	"mini-voxel/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func newSession(t *testing.T, cfg *config.Config) *game.Session {
	t.Helper()
	s, err := game.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestSessionStartsWithGroundGrid(t *testing.T) {
	s := newSession(t, config.Default())

	if s.World.Count() != 256 {
		t.Errorf("Expected 256 ground cells at startup, got %d", s.World.Count())
	}
	if s.Player.Position != (mgl32.Vec3{8, 5, 8}) {
		t.Errorf("Expected spawn at (8,5,8), got %v", s.Player.Position)
	}
}

func TestFrameWalksForward(t *testing.T) {
	s := newSession(t, config.Default())
	s.Player.Yaw, s.Player.Pitch = 0, 0
	start := s.Player.Position

	im := input.NewManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)

	s.Update(0.1, im)
	im.PostUpdate()

	moved := s.Player.Position.Sub(start)
	if moved.Z() >= 0 {
		t.Errorf("Expected forward walk toward -z, moved %v", moved)
	}
	if moved.Y() != 0 {
		t.Errorf("Walking must not change height, moved %v", moved)
	}
}

func TestRemoveFrameDespawnsTheFacedCell(t *testing.T) {
	s := newSession(t, config.Default())

	// Face -z from (8,5,8); the step-1 target is (8,5,7). Seed a cell
	// there.
	s.Player.Yaw, s.Player.Pitch = 0, 0
	s.World.Spawn(mgl32.Vec3{8.0, 5.5, 7.0})
	before := s.World.Count()

	im := input.NewManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)

	s.Update(0.016, im)
	im.PostUpdate()

	if s.World.Count() != before-1 {
		t.Errorf("Expected one cell removed, %d -> %d", before, s.World.Count())
	}
	if s.World.CountAt(mgl32.Vec3{8, 5, 7}) != 0 {
		t.Errorf("Expected the faced cell gone")
	}
}

func TestConsecutivePlacementsDuplicate(t *testing.T) {
	s := newSession(t, config.Default())
	before := s.World.Count()

	for i := 0; i < 2; i++ {
		im := input.NewManager()
		im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
		s.Update(0.016, im)
		im.PostUpdate()
	}

	if s.World.Count() != before+2 {
		t.Errorf("Expected 2 placements, %d -> %d", before, s.World.Count())
	}
	// The viewer pose never changed, so both cells share one target.
	if n := s.World.CountAt(mgl32.Vec3{8, 5, 8}); n != 2 {
		t.Errorf("Expected 2 overlapping cells at the target, got %d", n)
	}
}

func TestBlockEventsReachSubscribers(t *testing.T) {
	s := newSession(t, config.Default())

	var placed, removed int
	s.Bus.Subscribe(world.EventBlockPlaced, func(any) { placed++ })
	s.Bus.Subscribe(world.EventBlockRemoved, func(any) { removed++ })

	im := input.NewManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	s.Update(0.016, im)
	im.PostUpdate()

	if placed != 1 || removed != 0 {
		t.Errorf("Expected 1 placed / 0 removed, got %d / %d", placed, removed)
	}
}

func TestRemoveWinsWhenBothButtonsPressed(t *testing.T) {
	s := newSession(t, config.Default())
	before := s.World.Count()

	im := input.NewManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)

	s.Update(0.016, im)
	im.PostUpdate()

	// The remove missed (nothing at the step-1 target), and place must
	// not have fired: at most one intent per frame.
	if s.World.Count() != before {
		t.Errorf("Expected no world change, %d -> %d", before, s.World.Count())
	}
}

func TestJumpEdgeConsumedSameFrame(t *testing.T) {
	cfg := config.Default()
	s := newSession(t, cfg)
	s.Player.Position[1] = 1.0

	im := input.NewManager()
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)

	s.Update(0.016, im)
	im.PostUpdate()

	if s.Player.OnGround {
		t.Fatalf("Expected airborne after jump frame")
	}

	// Holding the key across later frames must not re-launch.
	for i := 0; i < 300; i++ {
		s.Update(0.016, im)
		im.PostUpdate()
	}
	if !s.Player.OnGround {
		t.Errorf("Expected viewer back on the ground")
	}
	if s.Player.Position.Y() != 1.0 {
		t.Errorf("Expected landing at 1.0, got %v", s.Player.Position.Y())
	}
}

func BenchmarkSessionUpdate(b *testing.B) {
	cfg := config.Default()
	s, err := game.NewSession(cfg)
	if err != nil {
		b.Fatal(err)
	}
	im := input.NewManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(0.016, im)
	}
}
