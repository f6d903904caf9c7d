package arcade

import "testing"

func TestDefaultDIPSwitchesEncodesEasyProfile(t *testing.T) {
	m := NewMachine()
	if got := m.CPU.InputPorts[2]; got != 0b1011 {
		t.Fatalf("port 2 = %#04b, want 0b1011 (easy profile)", got)
	}
}

func TestDIPSwitchesOptionOverridesDefault(t *testing.T) {
	m := NewMachine(WithDIPSwitches(DIPSwitches{ShipsPerGame: 3, BonusAt1000: false}))
	if got := m.CPU.InputPorts[2]; got != 0b0000 {
		t.Fatalf("port 2 = %#04b, want 0b0000", got)
	}
}
