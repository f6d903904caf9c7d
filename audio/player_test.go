package audio

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/user-none/invaders8080/arcade"
)

func TestNilSampleSetNeverPanics(t *testing.T) {
	ctx := audio.NewContext(SampleRate)
	p := NewPlayer(ctx, nil)

	for _, tr := range []arcade.SoundTrigger{
		arcade.UFOStart, arcade.UFOStop, arcade.PlayerShoot, arcade.PlayerExplosion,
		arcade.InvaderKilled, arcade.FastInvader1, arcade.FastInvader2,
		arcade.FastInvader3, arcade.FastInvader4, arcade.UFOHit,
	} {
		p.Trigger(tr)
	}
}

func TestNilPlayerTriggerNeverPanics(t *testing.T) {
	var p *Player
	p.Trigger(arcade.PlayerShoot)
}

func TestUnknownTriggerIsIgnored(t *testing.T) {
	ctx := audio.NewContext(SampleRate)
	set := SampleSet{
		arcade.PlayerShoot: pcmTone(),
	}
	p := NewPlayer(ctx, set)

	// Triggering an effect with no sample registered must not panic
	// and must not touch any other player's state.
	p.Trigger(arcade.UFOHit)
}

func TestInfiniteLoopRepeatsData(t *testing.T) {
	loop := &infiniteLoop{data: []byte{1, 2, 3}}
	buf := make([]byte, 7)

	n, err := loop.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("Read returned %d bytes, want %d", n, len(buf))
	}

	want := []byte{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func pcmTone() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
