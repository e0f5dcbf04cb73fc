// Package game drives scenes from ebiten.Game.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/scene"
)

// Game runs one scene at a time at a fixed logical resolution
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New enters initial right away. tps <= 0 means ebiten.DefaultTPS.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		screenW: screenW,
		screenH: screenH,
		dt:      1 / float64(tps),
	}
	g.enter(initial)
	return g
}

func (g *Game) enter(s scene.Scene) {
	g.current = s
	s.OnEnter()
}

// Update runs one tick of the current scene. scene.ErrQuit ends the run
// loop cleanly.
func (g *Game) Update() error {
	g.ticks++

	next, err := g.current.Update(g.dt)
	switch {
	case errors.Is(err, scene.ErrQuit):
		g.current.OnExit()
		return ebiten.Termination
	case err != nil:
		return err
	case next != nil:
		slog.Debug("scene transition", "tick", g.ticks)
		g.current.OnExit()
		g.enter(next)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout ignores the window size; ebiten scales the fixed screen to fit
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Ticks returns how many updates have run
func (g *Game) Ticks() int { return g.ticks }

// DT returns the seconds per tick passed to scenes
func (g *Game) DT() float64 { return g.dt }
