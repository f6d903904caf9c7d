package cpu8080

// 0xC0-0xFF: conditional and unconditional RET/JMP/CALL, PUSH/POP rp,
// immediate arithmetic/logic, IN/OUT, EI/DI, PCHL/SPHL/XCHG/XTHL,
// RST 0..7.

// condRet/condJmp/condCall build the eight conditional forms of
// RET/JMP/CALL from the 3-bit condition code in opcode bits 3-5.
// Untaken conditional CALL/RET still costs less than the taken form
// per §4.1's conditional branch cycle rule; conditional JMP always
// costs 10 since PC is either set or advanced by 2 either way.

func condRet(cc uint8) opFunc {
	return func(c *CPU) uint8 {
		if c.testCondition(cc) {
			c.PC = c.pop16()
			return 11
		}
		return 5
	}
}

func condJmp(cc uint8) opFunc {
	return func(c *CPU) uint8 {
		addr := c.fetch16()
		if c.testCondition(cc) {
			c.PC = addr
		}
		return 10
	}
}

func condCall(cc uint8) opFunc {
	return func(c *CPU) uint8 {
		addr := c.fetch16()
		if c.testCondition(cc) {
			ret := c.PC
			c.push(uint8(ret>>8), uint8(ret))
			c.PC = addr
			return 17
		}
		return 11
	}
}

func opJMP(c *CPU) uint8 { c.PC = c.fetch16(); return 10 }

func opCALL(c *CPU) uint8 {
	addr := c.fetch16()
	ret := c.PC
	c.push(uint8(ret>>8), uint8(ret))
	c.PC = addr
	return 17
}

func opRET(c *CPU) uint8 { c.PC = c.pop16(); return 10 }

func opPUSH_B(c *CPU) uint8 { c.push(c.B, c.C); return 11 }
func opPUSH_D(c *CPU) uint8 { c.push(c.D, c.E); return 11 }
func opPUSH_H(c *CPU) uint8 { c.push(c.H, c.L); return 11 }

// opPUSH_PSW writes A and the documented (non-standard, but
// self-consistent) flags byte: bit0=not-Z, bit1=S, bit2=P, bit3=CY,
// bit4=AC, bits 5-7 zero.
func opPUSH_PSW(c *CPU) uint8 {
	c.push(c.A, c.packFlags())
	return 11
}

func opPOP_B(c *CPU) uint8 { c.B, c.C = c.pop(); return 10 }
func opPOP_D(c *CPU) uint8 { c.D, c.E = c.pop(); return 10 }
func opPOP_H(c *CPU) uint8 { c.H, c.L = c.pop(); return 10 }

func opPOP_PSW(c *CPU) uint8 {
	acc, flags := c.pop()
	c.A = acc
	c.unpackFlags(flags)
	return 10
}

func (c *CPU) packFlags() uint8 {
	var f uint8
	if !c.Z {
		f |= 0x01
	}
	if c.S == Negative {
		f |= 0x02
	}
	if c.P == Odd {
		f |= 0x04
	}
	if c.CY {
		f |= 0x08
	}
	if c.AC {
		f |= 0x10
	}
	return f
}

func (c *CPU) unpackFlags(f uint8) {
	c.Z = f&0x01 == 0
	if f&0x02 != 0 {
		c.S = Negative
	} else {
		c.S = Positive
	}
	if f&0x04 != 0 {
		c.P = Odd
	} else {
		c.P = Even
	}
	c.CY = f&0x08 != 0
	c.AC = f&0x10 != 0
}

func rst(n uint8) opFunc {
	return func(c *CPU) uint8 {
		ret := c.PC
		c.push(uint8(ret>>8), uint8(ret))
		c.PC = 8 * uint16(n)
		return 11
	}
}

func opADI(c *CPU) uint8 { c.arithAdd(c.fetch8(), false); return 7 }
func opACI(c *CPU) uint8 { c.arithAdd(c.fetch8(), c.CY); return 7 }
func opSUI(c *CPU) uint8 { c.A = c.arithSub(c.fetch8(), false); return 7 }
func opSBI(c *CPU) uint8 { c.A = c.arithSub(c.fetch8(), c.CY); return 7 }
func opANI(c *CPU) uint8 { c.logicResult(c.A & c.fetch8()); return 7 }
func opXRI(c *CPU) uint8 { c.logicResult(c.A ^ c.fetch8()); return 7 }
func opORI(c *CPU) uint8 { c.logicResult(c.A | c.fetch8()); return 7 }
func opCPI(c *CPU) uint8 { c.arithSub(c.fetch8(), false); return 7 }

// opIN/opOUT: an unmapped port reads as 0 (InputPorts defaults to
// zero) and an OUT to an unmapped port is simply never dispatched by
// the I/O layer, matching §7's "I/O to an unmapped port" rule.
func opIN(c *CPU) uint8 {
	port := c.fetch8()
	c.A = c.InputPorts[port]
	return 10
}

func opOUT(c *CPU) uint8 {
	port := c.fetch8()
	c.setOutput(port, c.A)
	return 10
}

// opEI always arms PreEnabled regardless of the prior state; opDI
// always disarms, per the interrupt state machine in §4.1.
func opEI(c *CPU) uint8 { c.Interrupts = PreEnabled; return 4 }
func opDI(c *CPU) uint8 { c.Interrupts = Disabled; return 4 }

func opPCHL(c *CPU) uint8 { c.PC = c.hl(); return 5 }
func opSPHL(c *CPU) uint8 { c.SP = c.hl(); return 5 }

func opXCHG(c *CPU) uint8 {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	return 5
}

func opXTHL(c *CPU) uint8 {
	lo := c.ReadMemory(c.SP)
	hi := c.ReadMemory(c.SP + 1)
	c.WriteMemory(c.SP, c.L)
	c.WriteMemory(c.SP+1, c.H)
	c.L = lo
	c.H = hi
	return 18
}
