package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Event names published when an intent is applied.
const (
	EventBlockPlaced  = "block.placed"
	EventBlockRemoved = "block.removed"
)

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentPlace
	IntentRemove
)

// Intent is the at-most-one world mutation a frame's block targeting
// produces. Pos is the integer-floored target cell.
type Intent struct {
	Kind IntentKind
	Pos  mgl32.Vec3
}

func NoIntent() Intent {
	return Intent{Kind: IntentNone}
}

func PlaceAt(pos mgl32.Vec3) Intent {
	return Intent{Kind: IntentPlace, Pos: pos}
}

func RemoveAt(pos mgl32.Vec3) Intent {
	return Intent{Kind: IntentRemove, Pos: pos}
}

// placeCenterOffset lifts a placed cube so it rests on the target cell
// boundary instead of straddling it.
var placeCenterOffset = mgl32.Vec3{0, 0.5, 0}

// Apply realizes an intent against the world. Place spawns a cell at
// the floored target plus the centering offset, unconditionally.
// Remove despawns the first match at the target, if any. The returned
// cell is the one spawned or despawned; ok is false for IntentNone and
// for a remove that found nothing.
func (w *World) Apply(it Intent) (Cell, bool) {
	switch it.Kind {
	case IntentPlace:
		return w.Spawn(it.Pos.Add(placeCenterOffset)), true
	case IntentRemove:
		return w.RemoveAt(it.Pos)
	default:
		return Cell{}, false
	}
}
