package cpu8080

// parityOf reports Even when v has an even number of set bits.
func parityOf(v uint8) Parity {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	if v&1 == 0 {
		return Even
	}
	return Odd
}

func signOf(v uint8) Sign {
	if v&0x80 != 0 {
		return Negative
	}
	return Positive
}

// setZSP sets Z, S, and P from v. Used by every flag-setting
// operation class described in §4.1.
func (c *CPU) setZSP(v uint8) {
	c.Z = v == 0
	c.S = signOf(v)
	c.P = parityOf(v)
}

// arithAdd computes A+value(+carryIn), writes the result into A, and
// sets Z, S, P, CY, AC. Used by ADD/ADC/ADI/ACI.
func (c *CPU) arithAdd(value uint8, carryIn bool) {
	before := c.A
	sum := uint16(before) + uint16(value)
	if carryIn {
		sum++
	}
	result := uint8(sum)
	c.setZSP(result)
	c.CY = sum&0x100 != 0
	c.AC = (before^value^result)&0x10 != 0
	c.A = result
}

// arithSub computes A-value(-borrowIn) and sets Z, S, P, CY, AC, but
// does not write A — callers write it back except for CMP, which
// wants the flags without the write.
func (c *CPU) arithSub(value uint8, borrowIn bool) uint8 {
	before := c.A
	diff := uint16(before) - uint16(value)
	if borrowIn {
		diff--
	}
	result := uint8(diff)
	c.setZSP(result)
	c.CY = diff&0x100 != 0
	c.AC = (before^value^result)&0x10 != 0
	return result
}

// increment/decrement implement INR/DCR on an arbitrary 8-bit target
// (register or M): same as arithmetic except CY is left untouched.
func (c *CPU) increment(get func() uint8, set func(uint8)) {
	before := get()
	result := before + 1
	c.setZSP(result)
	c.AC = (before^result)&0x10 != 0
	set(result)
}

func (c *CPU) decrement(get func() uint8, set func(uint8)) {
	before := get()
	result := before - 1
	c.setZSP(result)
	c.AC = (before^result)&0x10 != 0
	set(result)
}

// logicResult implements ANA/XRA/ORA/ANI/XRI/ORI: write result into
// A, set Z/S/P from it, clear CY and AC.
func (c *CPU) logicResult(result uint8) {
	c.A = result
	c.setZSP(result)
	c.CY = false
	c.AC = false
}

// daa is the decimal-adjust-accumulator algorithm: low-nibble
// correction first (setting AC), then high-nibble correction
// (setting CY), then Z/S/P recomputed from the adjusted A.
func (c *CPU) daa() {
	if c.A&0x0F > 9 || c.AC {
		c.A += 6
		c.AC = true
	} else {
		c.AC = false
	}
	if c.A>>4 > 9 || c.CY {
		c.A += 0x60
		c.CY = true
	} else {
		c.CY = false
	}
	c.setZSP(c.A)
}

// testCondition evaluates one of the 8 condition codes used by
// conditional JMP/CALL/RET, encoded in bits 3-5 of the opcode.
func (c *CPU) testCondition(cc uint8) bool {
	switch cc {
	case 0: // NZ
		return !c.Z
	case 1: // Z
		return c.Z
	case 2: // NC
		return !c.CY
	case 3: // C
		return c.CY
	case 4: // PO
		return c.P == Odd
	case 5: // PE
		return c.P == Even
	case 6: // P (sign positive)
		return c.S == Positive
	default: // M (sign negative)
		return c.S == Negative
	}
}
