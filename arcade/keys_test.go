package arcade

import "testing"

func TestKeyDownUpSetsExpectedBits(t *testing.T) {
	cases := []struct {
		key  Key
		port int
		bit  uint8
	}{
		{Coin, 1, 0},
		{P2Start, 1, 1},
		{P1Start, 1, 2},
		{P1Fire, 1, 4},
		{P1Left, 1, 5},
		{P1Right, 1, 6},
		{Tilt, 2, 2},
		{P2Fire, 2, 4},
		{P2Left, 2, 5},
		{P2Right, 2, 6},
	}

	for _, tc := range cases {
		m := NewMachine()
		before := m.CPU.InputPorts[tc.port]

		m.KeyDown(tc.key)
		if m.CPU.InputPorts[tc.port]&(1<<tc.bit) == 0 {
			t.Errorf("%v: bit %d of port %d not set after KeyDown", tc.key, tc.bit, tc.port)
		}

		m.KeyUp(tc.key)
		if m.CPU.InputPorts[tc.port] != before {
			t.Errorf("%v: port %d = %#02x after KeyUp, want unchanged %#02x", tc.key, tc.port, m.CPU.InputPorts[tc.port], before)
		}
	}
}
