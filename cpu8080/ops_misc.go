package cpu8080

// 0x00-0x3F: NOP, LXI rp,d16, STAX/LDAX B|D, INX/DCX rp, INR/DCR r,
// MVI r,d8, rotates, DAA, SHLD/LHLD, STA/LDA, STC, CMC, DAD rp.

func opNOP(c *CPU) uint8 { return 4 }

func opLXI_B(c *CPU) uint8  { c.setBC(c.fetch16()); return 10 }
func opLXI_D(c *CPU) uint8  { c.setDE(c.fetch16()); return 10 }
func opLXI_H(c *CPU) uint8  { c.setHL(c.fetch16()); return 10 }
func opLXI_SP(c *CPU) uint8 { c.SP = c.fetch16(); return 10 }

func opSTAX_B(c *CPU) uint8 { c.WriteMemory(c.bc(), c.A); return 7 }
func opSTAX_D(c *CPU) uint8 { c.WriteMemory(c.de(), c.A); return 7 }
func opLDAX_B(c *CPU) uint8 { c.A = c.ReadMemory(c.bc()); return 7 }
func opLDAX_D(c *CPU) uint8 { c.A = c.ReadMemory(c.de()); return 7 }

func opINX_B(c *CPU) uint8  { c.setBC(c.bc() + 1); return 5 }
func opINX_D(c *CPU) uint8  { c.setDE(c.de() + 1); return 5 }
func opINX_H(c *CPU) uint8  { c.setHL(c.hl() + 1); return 5 }
func opINX_SP(c *CPU) uint8 { c.SP++; return 5 }

func opDCX_B(c *CPU) uint8  { c.setBC(c.bc() - 1); return 5 }
func opDCX_D(c *CPU) uint8  { c.setDE(c.de() - 1); return 5 }
func opDCX_H(c *CPU) uint8  { c.setHL(c.hl() - 1); return 5 }
func opDCX_SP(c *CPU) uint8 { c.SP--; return 5 }

func opINR_B(c *CPU) uint8 { c.increment(func() uint8 { return c.B }, func(v uint8) { c.B = v }); return 5 }
func opINR_C(c *CPU) uint8 { c.increment(func() uint8 { return c.C }, func(v uint8) { c.C = v }); return 5 }
func opINR_D(c *CPU) uint8 { c.increment(func() uint8 { return c.D }, func(v uint8) { c.D = v }); return 5 }
func opINR_E(c *CPU) uint8 { c.increment(func() uint8 { return c.E }, func(v uint8) { c.E = v }); return 5 }
func opINR_H(c *CPU) uint8 { c.increment(func() uint8 { return c.H }, func(v uint8) { c.H = v }); return 5 }
func opINR_L(c *CPU) uint8 { c.increment(func() uint8 { return c.L }, func(v uint8) { c.L = v }); return 5 }
func opINR_M(c *CPU) uint8 { c.increment(c.m, c.setM); return 10 }
func opINR_A(c *CPU) uint8 { c.increment(func() uint8 { return c.A }, func(v uint8) { c.A = v }); return 5 }

func opDCR_B(c *CPU) uint8 { c.decrement(func() uint8 { return c.B }, func(v uint8) { c.B = v }); return 5 }
func opDCR_C(c *CPU) uint8 { c.decrement(func() uint8 { return c.C }, func(v uint8) { c.C = v }); return 5 }
func opDCR_D(c *CPU) uint8 { c.decrement(func() uint8 { return c.D }, func(v uint8) { c.D = v }); return 5 }
func opDCR_E(c *CPU) uint8 { c.decrement(func() uint8 { return c.E }, func(v uint8) { c.E = v }); return 5 }
func opDCR_H(c *CPU) uint8 { c.decrement(func() uint8 { return c.H }, func(v uint8) { c.H = v }); return 5 }
func opDCR_L(c *CPU) uint8 { c.decrement(func() uint8 { return c.L }, func(v uint8) { c.L = v }); return 5 }
func opDCR_M(c *CPU) uint8 { c.decrement(c.m, c.setM); return 10 }
func opDCR_A(c *CPU) uint8 { c.decrement(func() uint8 { return c.A }, func(v uint8) { c.A = v }); return 5 }

func opMVI_B(c *CPU) uint8 { c.B = c.fetch8(); return 7 }
func opMVI_C(c *CPU) uint8 { c.C = c.fetch8(); return 7 }
func opMVI_D(c *CPU) uint8 { c.D = c.fetch8(); return 7 }
func opMVI_E(c *CPU) uint8 { c.E = c.fetch8(); return 7 }
func opMVI_H(c *CPU) uint8 { c.H = c.fetch8(); return 7 }
func opMVI_L(c *CPU) uint8 { c.L = c.fetch8(); return 7 }
func opMVI_M(c *CPU) uint8 { c.setM(c.fetch8()); return 10 }
func opMVI_A(c *CPU) uint8 { c.A = c.fetch8(); return 7 }

// RLC: A rotates left circularly; CY takes the bit rotated out of 7.
func opRLC(c *CPU) uint8 {
	c.CY = c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	return 4
}

// RRC: A rotates right circularly; CY takes the bit rotated out of 0.
func opRRC(c *CPU) uint8 {
	c.CY = c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	return 4
}

// RAL: A shifts left through CY.
func opRAL(c *CPU) uint8 {
	carryIn := uint8(0)
	if c.CY {
		carryIn = 1
	}
	c.CY = c.A&0x80 != 0
	c.A = c.A<<1 | carryIn
	return 4
}

// RAR: A shifts right through CY.
func opRAR(c *CPU) uint8 {
	carryIn := uint8(0)
	if c.CY {
		carryIn = 0x80
	}
	c.CY = c.A&0x01 != 0
	c.A = c.A>>1 | carryIn
	return 4
}

func (c *CPU) dad(value uint16) {
	hl := c.hl()
	sum := uint32(hl) + uint32(value)
	c.setHL(uint16(sum))
	c.CY = sum&0x10000 != 0
}

func opDAD_B(c *CPU) uint8  { c.dad(c.bc()); return 10 }
func opDAD_D(c *CPU) uint8  { c.dad(c.de()); return 10 }
func opDAD_H(c *CPU) uint8  { c.dad(c.hl()); return 10 }
func opDAD_SP(c *CPU) uint8 { c.dad(c.SP); return 10 }

func opSHLD(c *CPU) uint8 {
	addr := c.fetch16()
	c.WriteMemory(addr, c.L)
	c.WriteMemory(addr+1, c.H)
	return 16
}

func opLHLD(c *CPU) uint8 {
	addr := c.fetch16()
	c.L = c.ReadMemory(addr)
	c.H = c.ReadMemory(addr + 1)
	return 16
}

func opSTA(c *CPU) uint8 {
	addr := c.fetch16()
	c.WriteMemory(addr, c.A)
	return 13
}

func opLDA(c *CPU) uint8 {
	addr := c.fetch16()
	c.A = c.ReadMemory(addr)
	return 13
}

func opDAA(c *CPU) uint8 { c.daa(); return 4 }
func opCMA(c *CPU) uint8 { c.A = ^c.A; return 4 }
func opSTC(c *CPU) uint8 { c.CY = true; return 4 }
func opCMC(c *CPU) uint8 { c.CY = !c.CY; return 4 }
