package arcade

import "testing"

// Scenario F: video layout.
func TestScenarioF_VideoLayout(t *testing.T) {
	m := NewMachine()
	m.CPU.Memory[FrameBufferStart] = 0x80

	fb := m.FrameBuffer()
	if len(fb) != FrameBufferEnd-FrameBufferStart {
		t.Fatalf("FrameBuffer length = %d, want %d", len(fb), FrameBufferEnd-FrameBufferStart)
	}
	if !Pixel(fb, 0, 0) {
		t.Fatal("screen (0,0) not lit after writing 0x80 to memory[0x2400]")
	}
	if Pixel(fb, 1, 0) {
		t.Fatal("screen (1,0) unexpectedly lit")
	}
}
