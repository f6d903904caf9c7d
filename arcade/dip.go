package arcade

// DIPSwitches models the subset of the cabinet's DIP-switch bank
// wired into IN port 2: ships-per-game (bits 0-1) and the bonus-life
// threshold (bit 3). Bit 2 of port 2 is TILT, driven by key events
// instead, and is not part of this struct.
type DIPSwitches struct {
	// ShipsPerGame is one of 3, 4, 5, or 6.
	ShipsPerGame int
	// BonusAt1000 selects a bonus life at 1000 points when true, or
	// at 1500 points when false.
	BonusAt1000 bool
}

// DefaultDIPSwitches is the easy profile the reference machine boots
// with: 6 ships per game, bonus life every 1000 points — port 2
// defaults to 0b1011.
func DefaultDIPSwitches() DIPSwitches {
	return DIPSwitches{ShipsPerGame: 6, BonusAt1000: true}
}

func shipsBits(ships int) uint8 {
	switch ships {
	case 3:
		return 0b00
	case 4:
		return 0b01
	case 5:
		return 0b10
	default:
		return 0b11
	}
}

func (d DIPSwitches) encodePort2() uint8 {
	var v uint8
	v |= shipsBits(d.ShipsPerGame)
	if d.BonusAt1000 {
		v |= 0b1000
	}
	return v
}
