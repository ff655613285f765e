package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRemoveBlock
	ActionPlaceBlock
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys and mouse buttons to logical actions and
// tracks per-frame state: held actions, press edges, and accumulated
// mouse motion. The host engine feeds it events; the simulation reads
// an immutable Frame once per tick.
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool

	mouseDX float64
	mouseDY float64
}

// Frame is the input snapshot for one simulated frame.
type Frame struct {
	held        [ActionCount]bool
	justPressed [ActionCount]bool

	// Accumulated mouse motion since the previous frame.
	MouseDX float64
	MouseDY float64
}

// Held reports whether the action is currently held down.
func (f Frame) Held(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return f.held[a]
}

// JustPressed reports whether the action transitioned to pressed this frame.
func (f Frame) JustPressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return f.justPressed[a]
}

// NewManager creates a Manager with the default bindings of the demos.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionJump)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionRemoveBlock)
	m.BindMouseButton(glfw.MouseButtonRight, ActionPlaceBlock)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys can be
// bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// UnbindKey removes all action bindings for a key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event. Edges are detected as events
// arrive, so two presses within one frame still register.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range m.keyToActions[key] {
		if isPressed && !m.held[act] {
			m.justPressed[act] = true
		}
		m.held[act] = isPressed
	}
}

// HandleMouseButtonEvent processes a mouse button event.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	isPressed := action == glfw.Press
	for _, act := range m.mouseButtonToActions[button] {
		if isPressed && !m.held[act] {
			m.justPressed[act] = true
		}
		m.held[act] = isPressed
	}
}

// HandleMouseMotion accumulates a mouse motion delta. Several motion
// events per frame sum into the one delta the frame snapshot carries.
func (m *Manager) HandleMouseMotion(dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseDX += dx
	m.mouseDY += dy
}

// Frame returns the snapshot for the current frame.
func (m *Manager) Frame() Frame {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Frame{
		held:        m.held,
		justPressed: m.justPressed,
		MouseDX:     m.mouseDX,
		MouseDY:     m.mouseDY,
	}
}

// PostUpdate clears press edges and accumulated mouse motion. Call at
// the end of each frame, after the snapshot has been consumed.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
	}
	m.mouseDX = 0
	m.mouseDY = 0
}
