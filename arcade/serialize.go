package arcade

import (
	"bytes"
	"fmt"
)

const serializeVersion = 1

// Serialize packs the I/O-layer state that sits outside the CPU —
// shift register, sound-edge latches, interrupt phase — alongside a
// full CPU snapshot. Like cpu8080.CPU.Serialize, this is diagnostic
// tooling, not a save-state feature.
func (m *Machine) Serialize() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(serializeVersion)
	buf.WriteByte(m.shift0)
	buf.WriteByte(m.shift1)
	buf.WriteByte(m.shiftOffset)
	buf.WriteByte(m.outPort3)
	buf.WriteByte(m.outPort5)
	buf.WriteByte(m.lastOutPort3)
	buf.WriteByte(m.lastOutPort5)
	buf.WriteByte(m.nextInterrupt)
	cpuData := m.CPU.Serialize()
	buf.Write(cpuData)
	return buf.Bytes()
}

// Deserialize restores state written by Serialize. The Machine must
// already have a CPU attached.
func (m *Machine) Deserialize(data []byte) error {
	if len(data) < 9 {
		return fmt.Errorf("arcade: serialized data too short")
	}
	if data[0] != serializeVersion {
		return fmt.Errorf("arcade: unsupported serialize version %d", data[0])
	}
	m.shift0 = data[1]
	m.shift1 = data[2]
	m.shiftOffset = data[3]
	m.outPort3 = data[4]
	m.outPort5 = data[5]
	m.lastOutPort3 = data[6]
	m.lastOutPort5 = data[7]
	m.nextInterrupt = data[8]
	return m.CPU.Deserialize(data[9:])
}
