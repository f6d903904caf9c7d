package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/invaders8080/arcade"
	"github.com/user-none/invaders8080/romloader"
)

func main() {
	romPath := flag.String("rom", "", "path to ROM set (directory or archive containing invaders.h/.g/.f/.e)")
	scale := flag.Int("scale", 2, "window scale factor")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	ships := flag.Int("ships", 6, "starting ships per game (3, 4, 5, or 6)")
	bonusAt1000 := flag.Bool("bonus-1000", true, "award the bonus ship at 1000 points instead of 1500")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("missing required -rom flag")
	}

	set, err := romloader.LoadSet(*romPath)
	if err != nil {
		log.Fatalf("failed to load ROM set: %v", err)
	}

	dip := arcade.DIPSwitches{ShipsPerGame: *ships, BonusAt1000: *bonusAt1000}
	m := arcade.NewMachine(arcade.WithDIPSwitches(dip))

	if err := set.Load(m); err != nil {
		log.Fatalf("failed to load ROM set into machine: %v", err)
	}

	runner := NewRunner(m, nil)

	ebiten.SetWindowSize(arcade.ScreenWidth*(*scale), arcade.ScreenHeight*(*scale))
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
