package arcade

import "testing"

type recordingSink struct {
	triggers []SoundTrigger
}

func (r *recordingSink) Trigger(t SoundTrigger) { r.triggers = append(r.triggers, t) }

func TestUFOIsSustainedAcrossRisingAndFallingEdges(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(WithSound(sink))

	m.handleOut3(0b0000_0001) // rising edge of bit 0: UFO starts
	m.handleOut3(0b0000_0001) // held: no repeat trigger
	m.handleOut3(0b0000_0000) // falling edge: UFO stops

	want := []SoundTrigger{UFOStart, UFOStop}
	if len(sink.triggers) != len(want) {
		t.Fatalf("triggers = %v, want %v", sink.triggers, want)
	}
	for i, tr := range want {
		if sink.triggers[i] != tr {
			t.Errorf("trigger[%d] = %v, want %v", i, sink.triggers[i], tr)
		}
	}
}

func TestOneShotSoundsFireOnlyOnRisingEdge(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(WithSound(sink))

	m.handleOut3(0b0000_0010) // rising edge bit1: player shoot
	m.handleOut3(0b0000_0010) // held: nothing new
	m.handleOut3(0b0000_0000) // falling edge: one-shots don't fire on fall

	if len(sink.triggers) != 1 || sink.triggers[0] != PlayerShoot {
		t.Fatalf("triggers = %v, want [PlayerShoot]", sink.triggers)
	}
}

func TestPort5OneShotSounds(t *testing.T) {
	sink := &recordingSink{}
	m := NewMachine(WithSound(sink))

	m.handleOut5(0b0001_0000) // bit 4: UFO hit

	if len(sink.triggers) != 1 || sink.triggers[0] != UFOHit {
		t.Fatalf("triggers = %v, want [UFOHit]", sink.triggers)
	}
}

func TestNilSoundSinkNeverPanics(t *testing.T) {
	m := NewMachine()
	for v := 0; v < 256; v++ {
		m.handleOut3(uint8(v))
		m.handleOut5(uint8(v))
	}
}
