package main

import "fmt"

// mnemonics holds a one-word name for every 8080 opcode, used only to
// report which instruction the CPU was sitting on when a diagnostic
// test failed. It is not a general disassembler: operand formatting
// and instruction length are not reconstructed.
var mnemonics = [256]string{
	0x00: "NOP", 0x01: "LXI B", 0x02: "STAX B", 0x03: "INX B",
	0x04: "INR B", 0x05: "DCR B", 0x06: "MVI B", 0x07: "RLC",
	0x09: "DAD B", 0x0A: "LDAX B", 0x0B: "DCX B", 0x0C: "INR C",
	0x0D: "DCR C", 0x0E: "MVI C", 0x0F: "RRC",
	0x11: "LXI D", 0x12: "STAX D", 0x13: "INX D", 0x14: "INR D",
	0x15: "DCR D", 0x16: "MVI D", 0x17: "RAL",
	0x19: "DAD D", 0x1A: "LDAX D", 0x1B: "DCX D", 0x1C: "INR E",
	0x1D: "DCR E", 0x1E: "MVI E", 0x1F: "RAR",
	0x21: "LXI H", 0x22: "SHLD", 0x23: "INX H", 0x24: "INR H",
	0x25: "DCR H", 0x26: "MVI H", 0x27: "DAA",
	0x29: "DAD H", 0x2A: "LHLD", 0x2B: "DCX H", 0x2C: "INR L",
	0x2D: "DCR L", 0x2E: "MVI L", 0x2F: "CMA",
	0x31: "LXI SP", 0x32: "STA", 0x33: "INX SP", 0x34: "INR M",
	0x35: "DCR M", 0x36: "MVI M", 0x37: "STC",
	0x39: "DAD SP", 0x3A: "LDA", 0x3B: "DCX SP", 0x3C: "INR A",
	0x3D: "DCR A", 0x3E: "MVI A", 0x3F: "CMC",
	0x76: "HLT",
	0xC0: "RNZ", 0xC1: "POP B", 0xC2: "JNZ", 0xC3: "JMP",
	0xC4: "CNZ", 0xC5: "PUSH B", 0xC6: "ADI", 0xC7: "RST 0",
	0xC8: "RZ", 0xC9: "RET", 0xCA: "JZ", 0xCC: "CZ", 0xCD: "CALL",
	0xCE: "ACI", 0xCF: "RST 1",
	0xD0: "RNC", 0xD1: "POP D", 0xD2: "JNC", 0xD3: "OUT",
	0xD4: "CNC", 0xD5: "PUSH D", 0xD6: "SUI", 0xD7: "RST 2",
	0xD8: "RC", 0xDA: "JC", 0xDB: "IN", 0xDC: "CC",
	0xDE: "SBI", 0xDF: "RST 3",
	0xE0: "RPO", 0xE1: "POP H", 0xE2: "JPO", 0xE3: "XTHL",
	0xE4: "CPO", 0xE5: "PUSH H", 0xE6: "ANI", 0xE7: "RST 4",
	0xE8: "RPE", 0xE9: "PCHL", 0xEA: "JPE", 0xEB: "XCHG", 0xEC: "CPE",
	0xEE: "XRI", 0xEF: "RST 5",
	0xF0: "RP", 0xF1: "POP PSW", 0xF2: "JP", 0xF3: "DI",
	0xF4: "CP", 0xF5: "PUSH PSW", 0xF6: "ORI", 0xF7: "RST 6",
	0xF8: "RM", 0xFA: "JM", 0xFB: "EI", 0xFC: "CM",
	0xFE: "CPI", 0xFF: "RST 7",
}

// briefDisasm reports the opcode at the given address in "PC: MNEMONIC"
// form, falling back to a raw hex byte for the ops-row entries handled
// generically by the decode table (MOV, ALU) rather than named here.
func briefDisasm(memory *[65536]byte, pc uint16) string {
	op := memory[pc]
	if name := mnemonics[op]; name != "" {
		return fmt.Sprintf("%04X: %s", pc, name)
	}
	switch {
	case op >= 0x40 && op <= 0x7F:
		return fmt.Sprintf("%04X: MOV (opcode %#02x)", pc, op)
	case op >= 0x80 && op <= 0xBF:
		return fmt.Sprintf("%04X: ALU (opcode %#02x)", pc, op)
	default:
		return fmt.Sprintf("%04X: opcode %#02x", pc, op)
	}
}
