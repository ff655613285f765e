package game

import (
	"fmt"

	"mini-voxel/internal/config"
	"mini-voxel/internal/event"
	"mini-voxel/internal/input"
	"mini-voxel/internal/logger"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/terrain"
	"mini-voxel/internal/world"
)

// Session owns one simulated world and its viewer, and advances them
// one frame at a time in a fixed component order: horizontal movement,
// look, block targeting and intent application, vertical kinematics,
// jump. Everything runs synchronously on the caller's goroutine, so
// each component sees the mutations of the ones ordered before it in
// the same frame.
type Session struct {
	Player *player.Player
	World  *world.World
	Bus    *event.Bus

	frames uint64
}

// NewSession generates the starting world and spawns the viewer.
func NewSession(cfg *config.Config) (*Session, error) {
	gen, err := terrain.New(cfg.World)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	w := world.New()
	gen.Generate(w)

	s := &Session{
		Player: player.New(cfg),
		World:  w,
		Bus:    event.NewBus(),
	}

	logger.L().Info("session started",
		"generator", cfg.World.Generator,
		"cells", w.Count(),
		"gravity", cfg.Controller.GravityEnabled)
	return s, nil
}

// Update advances the simulation by one frame. The input manager's
// snapshot is taken once; the caller clears it with PostUpdate after
// all sessions sharing the manager have ticked.
func (s *Session) Update(dt float64, im *input.Manager) {
	defer profiling.Track("game.Update")()

	frame := im.Frame()

	s.Player.UpdateMovement(frame, dt)
	s.Player.UpdateLook(frame, dt)

	it := physics.Target(
		s.Player.Position,
		s.Player.Forward(),
		frame.JustPressed(input.ActionRemoveBlock),
		frame.JustPressed(input.ActionPlaceBlock),
	)
	s.apply(it)

	s.Player.ApplyGravity(dt)
	s.Player.Jump(frame)

	s.frames++
}

// Frames returns the number of frames simulated so far.
func (s *Session) Frames() uint64 {
	return s.frames
}

func (s *Session) apply(it world.Intent) {
	cell, ok := s.World.Apply(it)
	if !ok {
		if it.Kind == world.IntentRemove {
			// Nothing occupied the targeted cell; the intent is spent
			// regardless.
			logger.L().Debug("remove missed", "pos", it.Pos)
		}
		return
	}

	switch it.Kind {
	case world.IntentPlace:
		logger.L().Info("block placed", "pos", cell.Position, "id", cell.ID)
		s.Bus.Publish(world.EventBlockPlaced, cell)
	case world.IntentRemove:
		logger.L().Info("block removed", "pos", cell.Position, "id", cell.ID)
		s.Bus.Publish(world.EventBlockRemoved, cell)
	}
}
