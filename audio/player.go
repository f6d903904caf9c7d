// Package audio turns arcade.SoundTrigger events into playback
// against an ebiten audio context: one looping player for the UFO
// siren and a pool of one-shot players for every other effect.
package audio

import (
	"bytes"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/user-none/invaders8080/arcade"
)

// SampleRate matches the rate ebiten's audio context is opened with.
const SampleRate = 44100

// SampleSet supplies raw PCM bytes (16-bit little-endian stereo) for
// each trigger. A zero-length slice for a trigger means "no sound
// available" and is silently skipped.
type SampleSet map[arcade.SoundTrigger][]byte

// Player implements arcade.SoundSink against an ebiten audio context.
type Player struct {
	ctx     *audio.Context
	samples SampleSet
	ufo     *audio.Player
	oneShot map[arcade.SoundTrigger]*audio.Player
}

// NewPlayer builds a Player bound to ctx, pre-creating the looping
// UFO player and one-shot players for every sample present in set.
// set may be nil or partially populated; missing triggers are no-ops.
func NewPlayer(ctx *audio.Context, set SampleSet) *Player {
	p := &Player{
		ctx:     ctx,
		samples: set,
		oneShot: make(map[arcade.SoundTrigger]*audio.Player),
	}

	if data, ok := set[arcade.UFOStart]; ok && len(data) > 0 {
		loop := &infiniteLoop{data: data}
		if pl, err := ctx.NewPlayer(loop); err == nil {
			pl.SetBufferSize(0)
			p.ufo = pl
		}
	}

	for trigger, data := range set {
		if trigger == arcade.UFOStart || trigger == arcade.UFOStop {
			continue
		}
		if len(data) == 0 {
			continue
		}
		if pl, err := ctx.NewPlayer(bytes.NewReader(data)); err == nil {
			p.oneShot[trigger] = pl
		}
	}

	return p
}

// Trigger plays the effect associated with t. It satisfies
// arcade.SoundSink.
func (p *Player) Trigger(t arcade.SoundTrigger) {
	if p == nil {
		return
	}

	switch t {
	case arcade.UFOStart:
		if p.ufo != nil && !p.ufo.IsPlaying() {
			p.ufo.Play()
		}
	case arcade.UFOStop:
		if p.ufo != nil {
			p.ufo.Pause()
		}
	default:
		pl, ok := p.oneShot[t]
		if !ok {
			return
		}
		pl.Rewind()
		pl.Play()
	}
}

// infiniteLoop turns a short PCM clip into an endlessly repeating
// io.Reader, the pattern ebiten examples use for sustained effects.
type infiniteLoop struct {
	data []byte
	pos  int
}

func (l *infiniteLoop) Read(b []byte) (int, error) {
	if len(l.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(b) {
		copied := copy(b[n:], l.data[l.pos:])
		n += copied
		l.pos += copied
		if l.pos >= len(l.data) {
			l.pos = 0
		}
	}
	return n, nil
}
