package cpu8080

// opFunc executes one decoded instruction and returns its cycle
// cost. opcodeTable is the 256-entry jump table §9's Design Notes
// recommend: O(1) dispatch, and a missing entry is a single
// fall-through in Step rather than a giant switch.
type opFunc func(*CPU) uint8

var opcodeTable [256]opFunc

// Opcodes real 8080 silicon leaves unassigned (0x08, 0x10, 0x18,
// 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD) alias to a
// documented opcode on real hardware; Non-goals exclude undocumented
// 8080 behavior, so this interpreter treats every one of them as a
// plain NOP rather than replicating the exact alias.
func init() {
	for i := range opcodeTable {
		opcodeTable[i] = nil
	}

	// 0x00-0x3F
	opcodeTable[0x00] = opNOP
	opcodeTable[0x01] = opLXI_B
	opcodeTable[0x02] = opSTAX_B
	opcodeTable[0x03] = opINX_B
	opcodeTable[0x04] = opINR_B
	opcodeTable[0x05] = opDCR_B
	opcodeTable[0x06] = opMVI_B
	opcodeTable[0x07] = opRLC
	opcodeTable[0x08] = opNOP
	opcodeTable[0x09] = opDAD_B
	opcodeTable[0x0A] = opLDAX_B
	opcodeTable[0x0B] = opDCX_B
	opcodeTable[0x0C] = opINR_C
	opcodeTable[0x0D] = opDCR_C
	opcodeTable[0x0E] = opMVI_C
	opcodeTable[0x0F] = opRRC

	opcodeTable[0x10] = opNOP
	opcodeTable[0x11] = opLXI_D
	opcodeTable[0x12] = opSTAX_D
	opcodeTable[0x13] = opINX_D
	opcodeTable[0x14] = opINR_D
	opcodeTable[0x15] = opDCR_D
	opcodeTable[0x16] = opMVI_D
	opcodeTable[0x17] = opRAL
	opcodeTable[0x18] = opNOP
	opcodeTable[0x19] = opDAD_D
	opcodeTable[0x1A] = opLDAX_D
	opcodeTable[0x1B] = opDCX_D
	opcodeTable[0x1C] = opINR_E
	opcodeTable[0x1D] = opDCR_E
	opcodeTable[0x1E] = opMVI_E
	opcodeTable[0x1F] = opRAR

	opcodeTable[0x20] = opNOP
	opcodeTable[0x21] = opLXI_H
	opcodeTable[0x22] = opSHLD
	opcodeTable[0x23] = opINX_H
	opcodeTable[0x24] = opINR_H
	opcodeTable[0x25] = opDCR_H
	opcodeTable[0x26] = opMVI_H
	opcodeTable[0x27] = opDAA
	opcodeTable[0x28] = opNOP
	opcodeTable[0x29] = opDAD_H
	opcodeTable[0x2A] = opLHLD
	opcodeTable[0x2B] = opDCX_H
	opcodeTable[0x2C] = opINR_L
	opcodeTable[0x2D] = opDCR_L
	opcodeTable[0x2E] = opMVI_L
	opcodeTable[0x2F] = opCMA

	opcodeTable[0x30] = opNOP
	opcodeTable[0x31] = opLXI_SP
	opcodeTable[0x32] = opSTA
	opcodeTable[0x33] = opINX_SP
	opcodeTable[0x34] = opINR_M
	opcodeTable[0x35] = opDCR_M
	opcodeTable[0x36] = opMVI_M
	opcodeTable[0x37] = opSTC
	opcodeTable[0x38] = opNOP
	opcodeTable[0x39] = opDAD_SP
	opcodeTable[0x3A] = opLDA
	opcodeTable[0x3B] = opDCX_SP
	opcodeTable[0x3C] = opINR_A
	opcodeTable[0x3D] = opDCR_A
	opcodeTable[0x3E] = opMVI_A
	opcodeTable[0x3F] = opCMC

	// 0x40-0x7F: MOV dst,src — every slot is opMOV except HLT.
	for op := 0x40; op <= 0x7F; op++ {
		opcodeTable[op] = opMOV
	}
	opcodeTable[0x76] = opHLT

	// 0x80-0xBF: ALU row.
	for op := 0x80; op <= 0xBF; op++ {
		opcodeTable[op] = opALU
	}

	// 0xC0-0xFF
	opcodeTable[0xC0] = condRet(0)
	opcodeTable[0xC1] = opPOP_B
	opcodeTable[0xC2] = condJmp(0)
	opcodeTable[0xC3] = opJMP
	opcodeTable[0xC4] = condCall(0)
	opcodeTable[0xC5] = opPUSH_B
	opcodeTable[0xC6] = opADI
	opcodeTable[0xC7] = rst(0)
	opcodeTable[0xC8] = condRet(1)
	opcodeTable[0xC9] = opRET
	opcodeTable[0xCA] = condJmp(1)
	opcodeTable[0xCB] = opNOP
	opcodeTable[0xCC] = condCall(1)
	opcodeTable[0xCD] = opCALL
	opcodeTable[0xCE] = opACI
	opcodeTable[0xCF] = rst(1)

	opcodeTable[0xD0] = condRet(2)
	opcodeTable[0xD1] = opPOP_D
	opcodeTable[0xD2] = condJmp(2)
	opcodeTable[0xD3] = opOUT
	opcodeTable[0xD4] = condCall(2)
	opcodeTable[0xD5] = opPUSH_D
	opcodeTable[0xD6] = opSUI
	opcodeTable[0xD7] = rst(2)
	opcodeTable[0xD8] = condRet(3)
	opcodeTable[0xD9] = opNOP
	opcodeTable[0xDA] = condJmp(3)
	opcodeTable[0xDB] = opIN
	opcodeTable[0xDC] = condCall(3)
	opcodeTable[0xDD] = opNOP
	opcodeTable[0xDE] = opSBI
	opcodeTable[0xDF] = rst(3)

	opcodeTable[0xE0] = condRet(4)
	opcodeTable[0xE1] = opPOP_H
	opcodeTable[0xE2] = condJmp(4)
	opcodeTable[0xE3] = opXTHL
	opcodeTable[0xE4] = condCall(4)
	opcodeTable[0xE5] = opPUSH_H
	opcodeTable[0xE6] = opANI
	opcodeTable[0xE7] = rst(4)
	opcodeTable[0xE8] = condRet(5)
	opcodeTable[0xE9] = opPCHL
	opcodeTable[0xEA] = condJmp(5)
	opcodeTable[0xEB] = opXCHG
	opcodeTable[0xEC] = condCall(5)
	opcodeTable[0xED] = opNOP
	opcodeTable[0xEE] = opXRI
	opcodeTable[0xEF] = rst(5)

	opcodeTable[0xF0] = condRet(6)
	opcodeTable[0xF1] = opPOP_PSW
	opcodeTable[0xF2] = condJmp(6)
	opcodeTable[0xF3] = opDI
	opcodeTable[0xF4] = condCall(6)
	opcodeTable[0xF5] = opPUSH_PSW
	opcodeTable[0xF6] = opORI
	opcodeTable[0xF7] = rst(6)
	opcodeTable[0xF8] = condRet(7)
	opcodeTable[0xF9] = opSPHL
	opcodeTable[0xFA] = condJmp(7)
	opcodeTable[0xFB] = opEI
	opcodeTable[0xFC] = condCall(7)
	opcodeTable[0xFD] = opNOP
	opcodeTable[0xFE] = opCPI
	opcodeTable[0xFF] = rst(7)
}
