// Package cpu8080 implements an Intel 8080 instruction interpreter:
// 64 KiB linear memory, the seven general registers plus the M
// pseudo-register, a two-byte stack discipline, five condition
// flags, and a tri-state interrupt-enable model. It has no notion
// of arcade hardware; callers (see package arcade) drive Step and
// demultiplex the output port.
package cpu8080

import "log"

// Sign reflects bit 7 of the last flag-setting result.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Parity reflects the parity of the low 8 bits of the last
// flag-setting result.
type Parity int

const (
	Even Parity = iota
	Odd
)

// InterruptState implements the 8080's one-instruction EI latency.
type InterruptState int

const (
	Disabled InterruptState = iota
	PreEnabled
	Enabled
)

func (s InterruptState) String() string {
	switch s {
	case Disabled:
		return "Disabled"
	case PreEnabled:
		return "PreEnabled"
	case Enabled:
		return "Enabled"
	default:
		return "InterruptState(?)"
	}
}

// Output is a pending OUT instruction's port and value, consumed by
// the host via TakeOutput.
type Output struct {
	Port  uint8
	Value uint8
}

// CPU is the single aggregate of Intel 8080 state: registers, flags,
// memory, and the 256 input-port latches. It is exclusively owned by
// its host; nothing here is safe for concurrent use.
type CPU struct {
	A, B, C, D, E, H, L uint8
	SP, PC              uint16

	Z, CY, AC bool
	S         Sign
	P         Parity

	Interrupts InterruptState
	Halted     bool

	Memory     [65536]byte
	InputPorts [256]uint8

	// Diagnostic disables the ROM/RAM write guard described in
	// §4.1's memory protection rule, for CP/M-style self-test
	// harnesses that write anywhere in the address space.
	Diagnostic bool

	// Logger optionally records memory-protection violations.
	// Nil discards them.
	Logger *log.Logger

	pendingOutput *Output
}

// New returns a CPU at its reset state.
func New() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset restores registers, flags, the interrupt state, and the halt
// flag to their power-on values. Memory and input-port latches are
// left untouched — reloading a ROM is the caller's job.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.SP, c.PC = 0, 0
	c.Z, c.CY, c.AC = true, false, false
	c.S = Positive
	c.P = Even
	c.Interrupts = Disabled
	c.Halted = false
	c.pendingOutput = nil
}

// Step fetches the opcode at PC, executes it, and returns its
// nominal cycle count. A halted CPU returns 0 and changes nothing.
func (c *CPU) Step() uint8 {
	if c.Halted {
		return 0
	}

	// Interrupts armed by a prior EI become live only now, so EI's
	// own following instruction still executes with them masked.
	if c.Interrupts == PreEnabled {
		c.Interrupts = Enabled
	}
	c.pendingOutput = nil

	opcode := c.Memory[c.PC]
	c.PC++

	fn := opcodeTable[opcode]
	if fn == nil {
		panic(&UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 1})
	}
	return fn(c)
}

// RaiseInterrupt pushes PC, sets PC to 8*vector, and disarms
// interrupts — but only if interrupts are currently Enabled. It also
// clears Halted, since an interrupt is how a halted 8080 wakes up.
func (c *CPU) RaiseInterrupt(vector uint8) {
	if c.Interrupts != Enabled {
		return
	}
	c.push(uint8(c.PC>>8), uint8(c.PC))
	c.PC = 8 * uint16(vector)
	c.Interrupts = Disabled
	c.Halted = false
}

// TakeOutput returns and clears any OUT issued by the instruction
// just executed. The host must call this after every Step.
func (c *CPU) TakeOutput() (Output, bool) {
	if c.pendingOutput == nil {
		return Output{}, false
	}
	o := *c.pendingOutput
	c.pendingOutput = nil
	return o, true
}

// ReadMemory reads a single byte. Reads are unrestricted.
func (c *CPU) ReadMemory(address uint16) uint8 {
	return c.Memory[address]
}

// WriteMemory writes a single byte, honoring the Space-Invaders
// memory map's write guard unless Diagnostic is set: addresses below
// 0x2000 are ROM, addresses at or above 0x4000 are outside RAM, and
// both are silently dropped (optionally logged) rather than written.
func (c *CPU) WriteMemory(address uint16, value uint8) {
	if !c.Diagnostic {
		if address < 0x2000 {
			c.logf("write to ROM ignored at %#04x (pc=%#04x)", address, c.PC)
			return
		}
		if address >= 0x4000 {
			c.logf("write outside RAM ignored at %#04x (pc=%#04x)", address, c.PC)
			return
		}
	}
	c.Memory[address] = value
}

func (c *CPU) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c *CPU) setOutput(port, value uint8) {
	c.pendingOutput = &Output{Port: port, Value: value}
}

// UnimplementedOpcodeError is raised by Step (via panic) when the
// fetched opcode has no handler. Reaching one in a correct ROM
// means the interpreter, not the ROM, is incomplete.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return "cpu8080: unimplemented opcode " + hexByte(e.Opcode) + " at " + hexWord(e.PC)
}

func hexByte(b uint8) string {
	const digits = "0123456789ABCDEF"
	return "0x" + string(digits[b>>4]) + string(digits[b&0xF])
}

func hexWord(w uint16) string {
	return "0x" + hexByte(uint8(w>>8))[2:] + hexByte(uint8(w))[2:]
}
