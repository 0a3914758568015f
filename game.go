package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/screens"
	"ebiten-delve/sim"
	"ebiten-delve/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	opts    sim.Options
	log     *systems.MessageLog
	session *sim.Session
	stack   *screens.ScreenStack
}

// NewGame creates the viewer and generates its first level
func NewGame(opts sim.Options, log *systems.MessageLog) (*Game, error) {
	game := &Game{
		opts:  opts,
		log:   log,
		stack: screens.NewScreenStack(),
	}
	if err := game.generate(); err != nil {
		return nil, err
	}
	return game, nil
}

// generate builds a session for the current seed and shows the menu for it
func (g *Game) generate() error {
	session, err := sim.NewSession(g.opts)
	if err != nil {
		return err
	}
	g.session = session

	for g.stack.Len() > 0 {
		g.stack.Pop()
	}
	g.stack.Push(screens.NewStartScreen(session.Summary()))
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.stack.Update()
	switch {
	case err == nil:
		if g.stack.Len() == 0 {
			// The level screen closed, return to the menu for the same level
			g.stack.Push(screens.NewStartScreen(g.session.Summary()))
		}
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.stack.Replace(screens.NewLevelScreen(g.session, g.log))
		return nil
	case errors.Is(err, screens.ErrReroll):
		g.opts.Seed = time.Now().UnixNano()
		return g.generate()
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stack.Layout(outsideWidth, outsideHeight)
}
