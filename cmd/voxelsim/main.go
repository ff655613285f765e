package main

import (
	"flag"
	"os"
	"time"

	"github.com/xlab/closer"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/input"
	"mini-voxel/internal/logger"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/snapshot"
)

const slowFrameThreshold = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	duration := flag.Duration("duration", 10*time.Second, "how long to run the scripted session")
	rate := flag.Int("rate", 60, "target frames per second (0 disables pacing)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.L().Error("config load failed", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	session, err := game.NewSession(cfg)
	if err != nil {
		logger.L().Error("session setup failed", "err", err)
		os.Exit(1)
	}

	store, err := snapshot.Open(cfg.Snapshot.Path)
	if err != nil {
		logger.L().Error("snapshot store unavailable", "err", err)
		os.Exit(1)
	}
	closer.Bind(func() {
		if err := store.Save(session.World); err != nil {
			logger.L().Error("snapshot save failed", "err", err)
		} else {
			logger.L().Info("snapshot saved", "path", cfg.Snapshot.Path, "cells", session.World.Count())
		}
		store.Close()
	})

	go run(session, *duration, *rate)
	closer.Hold()
}

// run drives the session with scripted input in real time until the
// deadline, then shuts the process down.
func run(s *game.Session, duration time.Duration, rate int) {
	defer closer.Close()

	im := input.NewManager()
	pacer := game.NewFramePacer(rate)
	last := time.Now()
	deadline := last.Add(duration)

	for time.Now().Before(deadline) {
		profiling.ResetFrame()
		frameStart := time.Now()
		dt := frameStart.Sub(last).Seconds()
		last = frameStart

		script(im, s.Frames())
		s.Update(dt, im)
		im.PostUpdate()

		if d := time.Since(frameStart); d > slowFrameThreshold {
			logger.L().Warn("slow frame", "took", d, "top", profiling.TopN(5))
		}
		pacer.Wait()
	}

	logger.L().Info("session finished",
		"frames", s.Frames(),
		"cells", s.World.Count(),
		"pos", s.Player.Position)
}
