package cpu8080

// 0x80-0xBF: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP, one row of 8 opcodes
// per operation, columns selecting the 8-bit source register.

func opALU(c *CPU) uint8 {
	opcode := c.Memory[c.PC-1]
	op := (opcode >> 3) & 0x7
	src := opcode & 0x7
	v := c.reg(src)

	switch op {
	case 0: // ADD
		c.arithAdd(v, false)
	case 1: // ADC
		c.arithAdd(v, c.CY)
	case 2: // SUB
		c.A = c.arithSub(v, false)
	case 3: // SBB
		c.A = c.arithSub(v, c.CY)
	case 4: // ANA
		c.logicResult(c.A & v)
	case 5: // XRA
		c.logicResult(c.A ^ v)
	case 6: // ORA
		c.logicResult(c.A | v)
	case 7: // CMP
		c.arithSub(v, false)
	}

	if src == 6 {
		return 7
	}
	return 4
}
