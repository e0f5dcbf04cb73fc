package main

import (
	"fmt"
	"math"

	"github.com/younwookim/arena/internal/application/arena"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
)

// Policy produces the input of the next tick from the current world
type Policy func(w *arena.World) system.InputState

// policies are selectable with -policy
var policies = map[string]Policy{
	"idle":   idle,
	"turret": turret,
}

func lookupPolicy(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q", name)
	}
	return p, nil
}

// idle never touches the controls
func idle(*arena.World) system.InputState {
	return system.InputState{}
}

// turretSlot is the full-auto weapon, 1-based like the number keys
const turretSlot = 2

// turret stands still with the full-auto weapon, shoots the nearest enemy
// and starts every wave as soon as it can
func turret(w *arena.World) system.InputState {
	var in system.InputState

	switch w.State() {
	case state.StateIntermission:
		in.Confirm = true
		return in
	case state.StateWaveActive:
	default:
		return in
	}

	if w.Weapons.ActiveSlot() != turretSlot-1 {
		in.Slot = turretSlot
	}

	px, py := w.Player.Center()
	best := math.MaxFloat64
	found := false
	var tx, ty float64
	for _, a := range w.Combat.Actors() {
		body := a.Body()
		if !body.Alive {
			continue
		}
		cx, cy := body.Center()
		if d := math.Hypot(cx-px, cy-py); d < best {
			best, tx, ty, found = d, cx, cy, true
		}
	}
	if !found {
		return in
	}

	in.MouseX, in.MouseY = w.ToScreen(tx, ty)
	in.FirePressed = true
	in.FireHeld = true
	return in
}
