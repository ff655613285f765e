package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-voxel/internal/input"
)

// script feeds a fixed input sequence into the manager, standing in
// for the window's event callbacks: a short walk with a look sweep, a
// jump, then a block placed and removed again.
func script(im *input.Manager, frame uint64) {
	switch frame {
	case 10:
		im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	case 100:
		im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	case 120:
		im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	case 121:
		im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	case 220:
		im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	case 221:
		im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Release)
	case 260:
		im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	case 261:
		im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	}

	// A slow look sweep while walking.
	if frame >= 20 && frame < 80 {
		im.HandleMouseMotion(2.5, 0)
	}
}
