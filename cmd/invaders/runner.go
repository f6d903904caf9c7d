// Package main runs the arcade machine in an Ebiten window.
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	invaderaudio "github.com/user-none/invaders8080/audio"
	"github.com/user-none/invaders8080/arcade"
)

// keyBindings maps a host keyboard key to the arcade key it drives.
var keyBindings = map[ebiten.Key]arcade.Key{
	ebiten.Key5:         arcade.Coin,
	ebiten.Key1:         arcade.P1Start,
	ebiten.Key2:         arcade.P2Start,
	ebiten.KeyArrowLeft: arcade.P1Left,
	ebiten.KeyA:         arcade.P1Left,

	ebiten.KeyArrowRight: arcade.P1Right,
	ebiten.KeyD:          arcade.P1Right,

	ebiten.KeySpace:   arcade.P1Fire,
	ebiten.KeyControl: arcade.P1Fire,

	ebiten.KeyJ: arcade.P2Left,
	ebiten.KeyL: arcade.P2Right,
	ebiten.KeyK: arcade.P2Fire,
	ebiten.KeyT: arcade.Tilt,
}

// Runner wraps a Machine for Ebiten, polling the keyboard every frame
// and translating continuous key state into the discrete KeyDown/
// KeyUp edges the machine expects.
type Runner struct {
	machine   *arcade.Machine
	player    *invaderaudio.Player
	held      map[arcade.Key]bool
	offscreen *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

// NewRunner builds a Runner around an already ROM-loaded machine.
func NewRunner(m *arcade.Machine, set invaderaudio.SampleSet) *Runner {
	var player *invaderaudio.Player
	if set != nil {
		ctx := audio.NewContext(invaderaudio.SampleRate)
		player = invaderaudio.NewPlayer(ctx, set)
		m.Sound = player
	}

	return &Runner{
		machine: m,
		player:  player,
		held:    make(map[arcade.Key]bool),
	}
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if !ebiten.IsFocused() {
		return nil
	}

	r.pollInput()
	r.machine.Execute()
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	fb := r.machine.FrameBuffer()

	if r.offscreen == nil {
		r.offscreen = ebiten.NewImage(arcade.ScreenWidth, arcade.ScreenHeight)
	}

	pixels := make([]byte, arcade.ScreenWidth*arcade.ScreenHeight*4)
	for y := 0; y < arcade.ScreenHeight; y++ {
		for x := 0; x < arcade.ScreenWidth; x++ {
			idx := (y*arcade.ScreenWidth + x) * 4
			if arcade.Pixel(fb, x, y) {
				pixels[idx] = 255
				pixels[idx+1] = 255
				pixels[idx+2] = 255
				pixels[idx+3] = 255
			}
		}
	}
	r.offscreen.WritePixels(pixels)

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(screenW) / float64(arcade.ScreenWidth)
	scaleY := float64(screenH) / float64(arcade.ScreenHeight)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	offsetX := (float64(screenW) - float64(arcade.ScreenWidth)*scale) / 2
	offsetY := (float64(screenH) - float64(arcade.ScreenHeight)*scale) / 2

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scale, scale)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	r.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, &r.drawOpts)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (r *Runner) pollInput() {
	seen := make(map[arcade.Key]bool, len(keyBindings))
	for key, arcadeKey := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			seen[arcadeKey] = true
		}
	}

	for arcadeKey := range seen {
		if !r.held[arcadeKey] {
			r.machine.KeyDown(arcadeKey)
			r.held[arcadeKey] = true
		}
	}
	for arcadeKey := range r.held {
		if !seen[arcadeKey] {
			r.machine.KeyUp(arcadeKey)
			delete(r.held, arcadeKey)
		}
	}
}
