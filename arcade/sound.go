package arcade

// SoundTrigger names one of the edge-detected sound events the OUT
// port 3/5 latches produce. UFOStart/UFOStop gate a sustained loop;
// every other trigger is a one-shot.
type SoundTrigger int

const (
	UFOStart SoundTrigger = iota
	UFOStop
	PlayerShoot
	PlayerExplosion
	InvaderKilled
	FastInvader1
	FastInvader2
	FastInvader3
	FastInvader4
	UFOHit
)

func (t SoundTrigger) String() string {
	switch t {
	case UFOStart:
		return "UFOStart"
	case UFOStop:
		return "UFOStop"
	case PlayerShoot:
		return "PlayerShoot"
	case PlayerExplosion:
		return "PlayerExplosion"
	case InvaderKilled:
		return "InvaderKilled"
	case FastInvader1:
		return "FastInvader1"
	case FastInvader2:
		return "FastInvader2"
	case FastInvader3:
		return "FastInvader3"
	case FastInvader4:
		return "FastInvader4"
	case UFOHit:
		return "UFOHit"
	default:
		return "SoundTrigger(?)"
	}
}

// SoundSink receives sound triggers as the pacing loop observes
// them. A nil sink (the default) makes every OUT a silent no-op.
type SoundSink interface {
	Trigger(SoundTrigger)
}

func (m *Machine) fire(t SoundTrigger) {
	if m.Sound != nil {
		m.Sound.Trigger(t)
	}
}

func risingEdge(prev, cur uint8, bit uint8) bool {
	return prev&(1<<bit) == 0 && cur&(1<<bit) != 0
}

func fallingEdge(prev, cur uint8, bit uint8) bool {
	return prev&(1<<bit) != 0 && cur&(1<<bit) == 0
}

// handleOut3 latches port 3 and drives UFO (sustained) plus three
// one-shot sounds from its rising/falling edges.
func (m *Machine) handleOut3(value uint8) {
	prev := m.lastOutPort3

	if risingEdge(prev, value, 0) {
		m.fire(UFOStart)
	}
	if fallingEdge(prev, value, 0) {
		m.fire(UFOStop)
	}
	if risingEdge(prev, value, 1) {
		m.fire(PlayerShoot)
	}
	if risingEdge(prev, value, 2) {
		m.fire(PlayerExplosion)
	}
	if risingEdge(prev, value, 3) {
		m.fire(InvaderKilled)
	}

	m.lastOutPort3 = value
	m.outPort3 = value
}

// handleOut5 latches port 5 and drives five one-shot sounds from its
// rising edges.
func (m *Machine) handleOut5(value uint8) {
	prev := m.lastOutPort5

	triggers := [5]SoundTrigger{FastInvader1, FastInvader2, FastInvader3, FastInvader4, UFOHit}
	for bit, t := range triggers {
		if risingEdge(prev, value, uint8(bit)) {
			m.fire(t)
		}
	}

	m.lastOutPort5 = value
	m.outPort5 = value
}
