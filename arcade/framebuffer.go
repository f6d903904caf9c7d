package arcade

// FrameBufferStart and FrameBufferEnd bound the video RAM window:
// CPU memory is the entire interface between the 8080 and the
// display.
const (
	FrameBufferStart = 0x2400
	FrameBufferEnd   = 0x4000

	// ScreenWidth and ScreenHeight are the physical, post-rotation
	// screen dimensions: each of the 224 memory columns is one screen
	// column, and the 256 bits down a column are its rows.
	ScreenWidth  = 224
	ScreenHeight = 256

	bytesPerColumn = 32
)

// FrameBuffer returns the raw, unrotated video RAM window:
// memory[0x2400, 0x4000), 0x1C00 bytes, laid out column-major
// top-to-bottom with 8 vertical pixels per byte (LSB at the bottom).
func (m *Machine) FrameBuffer() []byte {
	return m.CPU.Memory[FrameBufferStart:FrameBufferEnd]
}

// Pixel reports whether the screen pixel at rotated coordinate
// (x, y) — x in [0, ScreenWidth), y in [0, ScreenHeight) — is lit.
// Memory column x becomes screen column x; within it, byte y/8 holds
// eight vertical pixels with bit 7 on top and the LSB at the bottom,
// so bit 7 of byte 0 lands at (x=0, y=0).
func Pixel(fb []byte, x, y int) bool {
	column := x
	byteIdx := y / 8
	bit := 7 - uint(y%8)
	b := fb[column*bytesPerColumn+byteIdx]
	return b&(1<<bit) != 0
}
