package cpu8080

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// serializeVersion guards the fixed layout below against accidental
// misuse across builds. This is test/debugging tooling for the
// diagnostic harness, not a save-state feature — persisted state is
// explicitly out of scope for the emulator itself.
const serializeVersion = 1

// Serialize packs every field Step/RaiseInterrupt can observe or
// mutate into buf, in the teacher's fixed-layout, version-prefixed
// style.
func (c *CPU) Serialize() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(serializeVersion)
	buf.WriteByte(c.A)
	buf.WriteByte(c.B)
	buf.WriteByte(c.C)
	buf.WriteByte(c.D)
	buf.WriteByte(c.E)
	buf.WriteByte(c.H)
	buf.WriteByte(c.L)
	binary.Write(buf, binary.LittleEndian, c.SP)
	binary.Write(buf, binary.LittleEndian, c.PC)
	buf.WriteByte(boolByte(c.Z))
	buf.WriteByte(boolByte(c.CY))
	buf.WriteByte(boolByte(c.AC))
	buf.WriteByte(uint8(c.S))
	buf.WriteByte(uint8(c.P))
	buf.WriteByte(uint8(c.Interrupts))
	buf.WriteByte(boolByte(c.Halted))
	buf.Write(c.Memory[:])
	buf.Write(c.InputPorts[:])
	return buf.Bytes()
}

// Deserialize restores state written by Serialize.
func (c *CPU) Deserialize(data []byte) error {
	r := bytes.NewReader(data)
	version, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read version: %w", err)
	}
	if version != serializeVersion {
		return fmt.Errorf("cpu8080: unsupported serialize version %d", version)
	}

	fields := []*uint8{&c.A, &c.B, &c.C, &c.D, &c.E, &c.H, &c.L}
	for _, f := range fields {
		if *f, err = r.ReadByte(); err != nil {
			return fmt.Errorf("cpu8080: read register: %w", err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &c.SP); err != nil {
		return fmt.Errorf("cpu8080: read SP: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &c.PC); err != nil {
		return fmt.Errorf("cpu8080: read PC: %w", err)
	}

	zb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read Z: %w", err)
	}
	c.Z = zb != 0
	cyb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read CY: %w", err)
	}
	c.CY = cyb != 0
	acb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read AC: %w", err)
	}
	c.AC = acb != 0

	sb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read S: %w", err)
	}
	c.S = Sign(sb)
	pb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read P: %w", err)
	}
	c.P = Parity(pb)
	ib, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read interrupt state: %w", err)
	}
	c.Interrupts = InterruptState(ib)
	hb, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("cpu8080: read halted: %w", err)
	}
	c.Halted = hb != 0

	if _, err := r.Read(c.Memory[:]); err != nil {
		return fmt.Errorf("cpu8080: read memory: %w", err)
	}
	if _, err := r.Read(c.InputPorts[:]); err != nil {
		return fmt.Errorf("cpu8080: read input ports: %w", err)
	}
	c.pendingOutput = nil
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
