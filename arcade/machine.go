// Package arcade wraps a cpu8080.CPU with the Midway arcade I/O
// fabric Space Invaders depends on: the shift register, the input-
// port latches driven by player keys and DIP switches, the sound
// edge-detector, the real-time pacing loop, and frame-buffer
// exposure. Everything here is single-threaded and cooperative, the
// same as the CPU core it wraps — see the package's Execute method.
package arcade

import (
	"log"
	"math"
	"time"

	"github.com/user-none/invaders8080/cpu8080"
)

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithDIPSwitches overrides the default easy-profile DIP settings.
func WithDIPSwitches(d DIPSwitches) Option {
	return func(m *Machine) { m.dip = d }
}

// WithLogger attaches a logger for memory-protection violations and
// other optionally-logged events (§7). Nil (the default) discards
// them.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.CPU.Logger = l }
}

// WithSound attaches a sink for sound-trigger edges. Nil (the
// default) makes every trigger a no-op.
func WithSound(s SoundSink) Option {
	return func(m *Machine) { m.Sound = s }
}

// WithClock overrides the pacing loop's time source. Tests use this
// to drive Execute deterministically instead of sleeping.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// Machine is the Space Invaders arcade board: a CPU plus the I/O
// fabric around it.
type Machine struct {
	CPU *cpu8080.CPU

	Sound SoundSink

	dip DIPSwitches
	now func() time.Time

	shift0, shift1, shiftOffset uint8
	outPort3, outPort5          uint8
	lastOutPort3, lastOutPort5  uint8

	nextInterrupt     uint8
	lastInterruptTime time.Time
	lastStepTime      time.Time
}

// NewMachine returns a Machine with a fresh CPU, the easy-profile
// DIP defaults, and no attached sound sink or logger.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		CPU:           cpu8080.New(),
		dip:           DefaultDIPSwitches(),
		now:           time.Now,
		nextInterrupt: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.applyDIPSwitches()
	return m
}

func (m *Machine) applyDIPSwitches() {
	m.CPU.InputPorts[0] = 0b1110
	m.CPU.InputPorts[1] = 0b1000
	m.CPU.InputPorts[2] = m.dip.encodePort2()
}

// LoadROM copies data into CPU memory starting at offset, bypassing
// the production write guard — this is the loader's job, not an
// instruction's.
func (m *Machine) LoadROM(data []byte, offset uint16) {
	copy(m.CPU.Memory[offset:], data)
}

// Execute runs one host tick of the pacing loop: it may inject a
// mid-frame interrupt, then steps the CPU enough times to cover the
// wall-clock time elapsed since the last call, dispatching any OUT
// the CPU produces along the way.
func (m *Machine) Execute() {
	now := m.now()
	if m.lastStepTime.IsZero() {
		m.lastInterruptTime = now
		m.lastStepTime = now
		return
	}

	if now.Sub(m.lastInterruptTime) >= interruptInterval {
		m.CPU.RaiseInterrupt(m.nextInterrupt)
		if m.nextInterrupt == 1 {
			m.nextInterrupt = 2
		} else {
			m.nextInterrupt = 1
		}
		m.lastInterruptTime = now
	}

	elapsed := now.Sub(m.lastStepTime)
	cyclesNeeded := int(math.Ceil(float64(elapsed) / float64(cycleTime)))

	executed := 0
	for executed < cyclesNeeded {
		// A halted CPU's Step costs 0 cycles; it idles until the next
		// interrupt, so stop stepping for this tick.
		if m.CPU.Halted {
			break
		}
		executed += int(m.CPU.Step())
		if out, ok := m.CPU.TakeOutput(); ok {
			m.dispatchOut(out.Port, out.Value)
		}
	}
	m.lastStepTime = now
}

// dispatchOut demultiplexes a CPU OUT into shift-register updates or
// sound triggers per §4.2's port table. Ports outside 2-5 are
// ignored, matching the "OUT to an unmapped port is dropped" rule.
func (m *Machine) dispatchOut(port, value uint8) {
	switch port {
	case 2:
		m.setShiftOffset(value)
	case 3:
		m.handleOut3(value)
	case 4:
		m.shiftIn(value)
	case 5:
		m.handleOut5(value)
	}
}
