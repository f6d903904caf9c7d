package arcade

import (
	"testing"
	"time"

	"github.com/user-none/invaders8080/cpu8080"
)

// Scenario D: shift register.
func TestScenarioD_ShiftRegister(t *testing.T) {
	m := NewMachine()
	m.setShiftOffset(0) // reset to a known offset before the scenario
	m.shiftIn(0xAA)
	m.shiftIn(0xBB)
	m.setShiftOffset(0x03)

	if got := m.CPU.InputPorts[3]; got != 0xDD {
		t.Fatalf("IN 3 = %#02x, want 0xDD", got)
	}
}

func TestDispatchOutIgnoresUnmappedPort(t *testing.T) {
	m := NewMachine()
	before := m.CPU.InputPorts[3]
	m.dispatchOut(0x07, 0xFF) // not one of 2,3,4,5
	if m.CPU.InputPorts[3] != before {
		t.Fatalf("unmapped OUT port mutated port-3 latch")
	}
}

// fakeClock drives Execute deterministically without real sleeps.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestExecuteInjectsAlternatingInterrupts(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMachine(WithClock(clock.now))
	m.CPU.Interrupts = cpu8080.Enabled
	// Execute injects the interrupt before stepping, so the CPU runs
	// from the vector: a JMP-to-self at each vector keeps PC on it.
	copy(m.CPU.Memory[0x0008:], []byte{0xC3, 0x08, 0x00}) // JMP 0x0008
	copy(m.CPU.Memory[0x0010:], []byte{0xC3, 0x10, 0x00}) // JMP 0x0010

	m.Execute() // primes lastStepTime/lastInterruptTime, no interrupt yet

	clock.advance(interruptInterval)
	m.Execute()
	if m.nextInterrupt != 2 {
		t.Fatalf("nextInterrupt = %d after first injection, want 2", m.nextInterrupt)
	}
	if m.CPU.PC != 0x0008 {
		t.Fatalf("PC = %#04x after vector-1 interrupt, want 0x0008", m.CPU.PC)
	}

	m.CPU.Halted = false
	m.CPU.Interrupts = cpu8080.Enabled
	clock.advance(interruptInterval)
	m.Execute()
	if m.nextInterrupt != 1 {
		t.Fatalf("nextInterrupt = %d after second injection, want 1", m.nextInterrupt)
	}
	if m.CPU.PC != 0x0010 {
		t.Fatalf("PC = %#04x after vector-2 interrupt, want 0x0010", m.CPU.PC)
	}
}

func TestExecuteStepsCyclesProportionalToElapsedTime(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewMachine(WithClock(clock.now))
	// A tight NOP loop: 00 00 C3 00 20 (JMP 0x2000), each NOP is 4
	// cycles and JMP is 10, for a 18-cycle loop body.
	prog := []byte{0x00, 0x00, 0xC3, 0x00, 0x20}
	copy(m.CPU.Memory[0x2000:], prog) // RAM region so the loop can run in production profile
	m.CPU.PC = 0x2000

	m.Execute() // prime clocks

	clock.advance(1 * time.Millisecond) // comfortably more than one loop's worth of cycles
	m.Execute()

	if m.CPU.PC < 0x2000 || m.CPU.PC > 0x2005 {
		t.Fatalf("PC = %#04x, expected to remain within the tiny loop", m.CPU.PC)
	}
}
