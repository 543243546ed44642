package main

import (
	"errors"
	"log"
	"os"

	"musou/client"
	"musou/headless"
	"musou/utils"
	"musou/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	configPath := "config.toml"
	if len(os.Args) > 1 && os.Args[1] == "headless" {
		if err := headless.Run(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := utils.ReadTOML(configPath)
	if err != nil {
		log.Fatal(err)
	}
	worldConfig := cfg.World()
	log.Printf("%+v", worldConfig)

	assets, err := client.LoadAssets()
	if err != nil {
		log.Fatal(err)
	}

	width, height := cfg.Resolution(worldConfig)
	title := cfg.UI.Title
	if title == "" {
		title = "Shin! Kokaton Musou"
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(worldConfig.TickRate)

	sim := world.NewSimulation(worldConfig)
	game := client.NewGame(sim, client.NewLocalPlayer(), assets)
	err = ebiten.RunGame(game)
	switch {
	case errors.Is(err, client.ErrGameOver), errors.Is(err, client.ErrQuit):
		log.Printf("final score %d on tick %d", sim.Score(), sim.Tick())
	case err != nil:
		log.Fatal(err)
	}
}
