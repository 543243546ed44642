package client

import (
	"errors"
	"log"

	"musou/world"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrGameOver is returned from Update once a session has ended and its
	// final frame has been shown.
	ErrGameOver = errors.New("game over")
	// ErrQuit is returned from Update when the player quits.
	ErrQuit = errors.New("quit")
)

// gameOverHold is how long the final frame stays up, in seconds.
const gameOverHold = 2

type Game struct {
	*Assets
	sim      *world.Simulation
	player   *LocalPlayer
	renderer *Renderer
	hold     int
}

func NewGame(sim *world.Simulation, player *LocalPlayer, assets *Assets) *Game {
	return &Game{
		Assets:   assets,
		sim:      sim,
		player:   player,
		renderer: NewRenderer(sim.Config().TickRate),
	}
}

func (g *Game) Update() error {
	if g.player.Quit() {
		return ErrQuit
	}
	if g.sim.GameOver() {
		if g.hold <= 0 {
			return ErrGameOver
		}
		g.hold--
		return nil
	}

	out := g.sim.Step(g.player.Input())
	if out.GameOver {
		log.Printf("game over on tick %d with score %d", out.Tick, g.sim.Score())
		g.hold = gameOverHold * g.sim.Config().TickRate
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.Assets, g.sim.History())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.sim.Config()
	return int(cfg.FieldWidth), int(cfg.FieldHeight)
}
