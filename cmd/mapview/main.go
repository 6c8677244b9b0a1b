//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mapforge/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	m, err := cfg.Load(context.Background())
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	game, err := app.New(m, cfg.Param, cfg.Scale)
	if err != nil {
		log.Fatalf("start viewer: %v", err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mapforge: " + m.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
