package cpu

// AddrMode names an MC6809E addressing mode.
type AddrMode int

const (
	Illegal AddrMode = iota
	Inherent
	Immediate  // 8-bit immediate operand
	LImmediate // 16-bit immediate operand
	Direct
	Extended
	Relative  // 8-bit signed branch offset
	LRelative // 16-bit signed branch offset
	Indexed
)

// opcodeDef is one row of the instruction table: mnemonic, addressing
// mode, base cycle count and total instruction byte count (including any
// page-select prefix byte).
type opcodeDef struct {
	mnemonic string
	mode     AddrMode
	cycles   int
	bytes    int
}

// page0 is indexed directly by the first opcode byte. Grounded on the
// MC6809E instruction table (Motorola DS9846-R2); transcribed from
// original_source/include/mc6809e.h, which lists every entry by opcode,
// mnemonic, addressing mode, base cycle count and byte count.
var page0 = [256]opcodeDef{
	0x00: {"NEG", Direct, 6, 2},
	0x03: {"COM", Direct, 6, 2},
	0x04: {"LSR", Direct, 6, 2},
	0x06: {"ROR", Direct, 6, 2},
	0x07: {"ASR", Direct, 6, 2},
	0x08: {"ASL", Direct, 6, 2},
	0x09: {"ROL", Direct, 6, 2},
	0x0A: {"DEC", Direct, 6, 2},
	0x0C: {"INC", Direct, 6, 2},
	0x0D: {"TST", Direct, 6, 2},
	0x0E: {"JMP", Direct, 3, 2},
	0x0F: {"CLR", Direct, 6, 2},

	0x12: {"NOP", Inherent, 2, 1},
	0x13: {"SYNC", Inherent, 4, 1},
	0x16: {"LBRA", LRelative, 5, 3},
	0x17: {"LBSR", LRelative, 9, 3},
	0x19: {"DAA", Inherent, 2, 1},
	0x1A: {"ORCC", Immediate, 3, 2},
	0x1C: {"ANDCC", Immediate, 3, 2},
	0x1D: {"SEX", Inherent, 2, 1},
	0x1E: {"EXG", Immediate, 8, 2},
	0x1F: {"TFR", Immediate, 6, 2},

	0x20: {"BRA", Relative, 3, 2},
	0x21: {"BRN", Relative, 3, 2},
	0x22: {"BHI", Relative, 3, 2},
	0x23: {"BLS", Relative, 3, 2},
	0x24: {"BCC", Relative, 3, 2},
	0x25: {"BCS", Relative, 3, 2},
	0x26: {"BNE", Relative, 3, 2},
	0x27: {"BEQ", Relative, 3, 2},
	0x28: {"BVC", Relative, 3, 2},
	0x29: {"BVS", Relative, 3, 2},
	0x2A: {"BPL", Relative, 3, 2},
	0x2B: {"BMI", Relative, 3, 2},
	0x2C: {"BGE", Relative, 3, 2},
	0x2D: {"BLT", Relative, 3, 2},
	0x2E: {"BGT", Relative, 3, 2},
	0x2F: {"BLE", Relative, 3, 2},

	0x30: {"LEAX", Indexed, 4, 2},
	0x31: {"LEAY", Indexed, 4, 2},
	0x32: {"LEAS", Indexed, 4, 2},
	0x33: {"LEAU", Indexed, 4, 2},
	0x34: {"PSHS", Immediate, 5, 2},
	0x35: {"PULS", Immediate, 5, 2},
	0x36: {"PSHU", Immediate, 5, 2},
	0x37: {"PULU", Immediate, 5, 2},
	0x39: {"RTS", Inherent, 5, 1},
	0x3A: {"ABX", Inherent, 3, 1},
	0x3B: {"RTI", Inherent, 6, 1},
	0x3C: {"CWAI", Immediate, 20, 2},
	0x3D: {"MUL", Inherent, 11, 1},
	0x3F: {"SWI", Inherent, 19, 1},

	0x40: {"NEGA", Inherent, 2, 1},
	0x43: {"COMA", Inherent, 2, 1},
	0x44: {"LSRA", Inherent, 2, 1},
	0x46: {"RORA", Inherent, 2, 1},
	0x47: {"ASRA", Inherent, 2, 1},
	0x48: {"ASLA", Inherent, 2, 1},
	0x49: {"ROLA", Inherent, 2, 1},
	0x4A: {"DECA", Inherent, 2, 1},
	0x4C: {"INCA", Inherent, 2, 1},
	0x4D: {"TSTA", Inherent, 2, 1},
	0x4F: {"CLRA", Inherent, 2, 1},

	0x50: {"NEGB", Inherent, 2, 1},
	0x53: {"COMB", Inherent, 2, 1},
	0x54: {"LSRB", Inherent, 2, 1},
	0x56: {"RORB", Inherent, 2, 1},
	0x57: {"ASRB", Inherent, 2, 1},
	0x58: {"ASLB", Inherent, 2, 1},
	0x59: {"ROLB", Inherent, 2, 1},
	0x5A: {"DECB", Inherent, 2, 1},
	0x5C: {"INCB", Inherent, 2, 1},
	0x5D: {"TSTB", Inherent, 2, 1},
	0x5F: {"CLRB", Inherent, 2, 1},

	0x60: {"NEG", Indexed, 6, 2},
	0x63: {"COM", Indexed, 6, 2},
	0x64: {"LSR", Indexed, 6, 2},
	0x66: {"ROR", Indexed, 6, 2},
	0x67: {"ASR", Indexed, 6, 2},
	0x68: {"ASL", Indexed, 6, 2},
	0x69: {"ROL", Indexed, 6, 2},
	0x6A: {"DEC", Indexed, 6, 2},
	0x6C: {"INC", Indexed, 6, 2},
	0x6D: {"TST", Indexed, 6, 2},
	0x6E: {"JMP", Indexed, 3, 2},
	0x6F: {"CLR", Indexed, 6, 2},

	0x70: {"NEG", Extended, 7, 3},
	0x73: {"COM", Extended, 7, 3},
	0x74: {"LSR", Extended, 7, 3},
	0x76: {"ROR", Extended, 7, 3},
	0x77: {"ASR", Extended, 7, 3},
	0x78: {"ASL", Extended, 7, 3},
	0x79: {"ROL", Extended, 7, 3},
	0x7A: {"DEC", Extended, 7, 3},
	0x7C: {"INC", Extended, 7, 3},
	0x7D: {"TST", Extended, 7, 3},
	0x7E: {"JMP", Extended, 4, 3},
	0x7F: {"CLR", Extended, 7, 3},

	0x80: {"SUBA", Immediate, 2, 2},
	0x81: {"CMPA", Immediate, 2, 2},
	0x82: {"SBCA", Immediate, 2, 2},
	0x83: {"SUBD", LImmediate, 4, 3},
	0x84: {"ANDA", Immediate, 2, 2},
	0x85: {"BITA", Immediate, 2, 2},
	0x86: {"LDA", Immediate, 2, 2},
	0x88: {"EORA", Immediate, 2, 2},
	0x89: {"ADCA", Immediate, 2, 2},
	0x8A: {"ORA", Immediate, 2, 2},
	0x8B: {"ADDA", Immediate, 2, 2},
	0x8C: {"CMPX", LImmediate, 4, 3},
	0x8D: {"BSR", Relative, 7, 2},
	0x8E: {"LDX", LImmediate, 3, 3},

	0x90: {"SUBA", Direct, 4, 2},
	0x91: {"CMPA", Direct, 4, 2},
	0x92: {"SBCA", Direct, 4, 2},
	0x93: {"SUBD", Direct, 6, 2},
	0x94: {"ANDA", Direct, 4, 2},
	0x95: {"BITA", Direct, 4, 2},
	0x96: {"LDA", Direct, 4, 2},
	0x97: {"STA", Direct, 4, 2},
	0x98: {"EORA", Direct, 4, 2},
	0x99: {"ADCA", Direct, 4, 2},
	0x9A: {"ORA", Direct, 4, 2},
	0x9B: {"ADDA", Direct, 4, 2},
	0x9C: {"CMPX", Direct, 6, 2},
	0x9D: {"JSR", Direct, 7, 2},
	0x9E: {"LDX", Direct, 5, 2},
	0x9F: {"STX", Direct, 5, 2},

	0xA0: {"SUBA", Indexed, 4, 2},
	0xA1: {"CMPA", Indexed, 4, 2},
	0xA2: {"SBCA", Indexed, 4, 2},
	0xA3: {"SUBD", Indexed, 6, 2},
	0xA4: {"ANDA", Indexed, 4, 2},
	0xA5: {"BITA", Indexed, 4, 2},
	0xA6: {"LDA", Indexed, 4, 2},
	0xA7: {"STA", Indexed, 4, 2},
	0xA8: {"EORA", Indexed, 4, 2},
	0xA9: {"ADCA", Indexed, 4, 2},
	0xAA: {"ORA", Indexed, 4, 2},
	0xAB: {"ADDA", Indexed, 4, 2},
	0xAC: {"CMPX", Indexed, 6, 2},
	0xAD: {"JSR", Indexed, 7, 2},
	0xAE: {"LDX", Indexed, 5, 2},
	0xAF: {"STX", Indexed, 5, 2},

	0xB0: {"SUBA", Extended, 5, 3},
	0xB1: {"CMPA", Extended, 5, 3},
	0xB2: {"SBCA", Extended, 5, 3},
	0xB3: {"SUBD", Extended, 7, 3},
	0xB4: {"ANDA", Extended, 5, 3},
	0xB5: {"BITA", Extended, 5, 3},
	0xB6: {"LDA", Extended, 5, 3},
	0xB7: {"STA", Extended, 5, 3},
	0xB8: {"EORA", Extended, 5, 3},
	0xB9: {"ADCA", Extended, 5, 3},
	0xBA: {"ORA", Extended, 5, 3},
	0xBB: {"ADDA", Extended, 5, 3},
	0xBC: {"CMPX", Extended, 7, 3},
	0xBD: {"JSR", Extended, 8, 3},
	0xBE: {"LDX", Extended, 6, 3},
	0xBF: {"STX", Extended, 6, 3},

	0xC0: {"SUBB", Immediate, 2, 2},
	0xC1: {"CMPB", Immediate, 2, 2},
	0xC2: {"SBCB", Immediate, 2, 2},
	0xC3: {"ADDD", LImmediate, 4, 3},
	0xC4: {"ANDB", Immediate, 2, 2},
	0xC5: {"BITB", Immediate, 2, 2},
	0xC6: {"LDB", Immediate, 2, 2},
	0xC8: {"EORB", Immediate, 2, 2},
	0xC9: {"ADCB", Immediate, 2, 2},
	0xCA: {"ORB", Immediate, 2, 2},
	0xCB: {"ADDB", Immediate, 2, 2},
	0xCC: {"LDD", LImmediate, 3, 3},
	0xCE: {"LDU", LImmediate, 3, 3},

	0xD0: {"SUBB", Direct, 4, 2},
	0xD1: {"CMPB", Direct, 4, 2},
	0xD2: {"SBCB", Direct, 4, 2},
	0xD3: {"ADDD", Direct, 6, 2},
	0xD4: {"ANDB", Direct, 4, 2},
	0xD5: {"BITB", Direct, 4, 2},
	0xD6: {"LDB", Direct, 4, 2},
	0xD7: {"STB", Direct, 4, 2},
	0xD8: {"EORB", Direct, 4, 2},
	0xD9: {"ADCB", Direct, 4, 2},
	0xDA: {"ORB", Direct, 4, 2},
	0xDB: {"ADDB", Direct, 4, 2},
	0xDC: {"LDD", Direct, 5, 2},
	0xDD: {"STD", Direct, 5, 2},
	0xDE: {"LDU", Direct, 5, 2},
	0xDF: {"STU", Direct, 5, 2},

	0xE0: {"SUBB", Indexed, 4, 2},
	0xE1: {"CMPB", Indexed, 4, 2},
	0xE2: {"SBCB", Indexed, 4, 2},
	0xE3: {"ADDD", Indexed, 6, 2},
	0xE4: {"ANDB", Indexed, 4, 2},
	0xE5: {"BITB", Indexed, 4, 2},
	0xE6: {"LDB", Indexed, 4, 2},
	0xE7: {"STB", Indexed, 4, 2},
	0xE8: {"EORB", Indexed, 4, 2},
	0xE9: {"ADCB", Indexed, 4, 2},
	0xEA: {"ORB", Indexed, 4, 2},
	0xEB: {"ADDB", Indexed, 4, 2},
	0xEC: {"LDD", Indexed, 5, 2},
	0xED: {"STD", Indexed, 5, 2},
	0xEE: {"LDU", Indexed, 5, 2},
	0xEF: {"STU", Indexed, 5, 2},

	0xF0: {"SUBB", Extended, 5, 3},
	0xF1: {"CMPB", Extended, 5, 3},
	0xF2: {"SBCB", Extended, 5, 3},
	0xF3: {"ADDD", Extended, 7, 3},
	0xF4: {"ANDB", Extended, 5, 3},
	0xF5: {"BITB", Extended, 5, 3},
	0xF6: {"LDB", Extended, 5, 3},
	0xF7: {"STB", Extended, 5, 3},
	0xF8: {"EORB", Extended, 5, 3},
	0xF9: {"ADCB", Extended, 5, 3},
	0xFA: {"ORB", Extended, 5, 3},
	0xFB: {"ADDB", Extended, 5, 3},
	0xFC: {"LDD", Extended, 6, 3},
	0xFD: {"STD", Extended, 6, 3},
	0xFE: {"LDU", Extended, 6, 3},
	0xFF: {"STU", Extended, 6, 3},
}

// page10 holds the 0x10-prefixed extended opcode page, keyed by the byte
// following the 0x10 prefix. Byte counts include the prefix.
var page10 = map[uint8]opcodeDef{
	0x21: {"LBRN", LRelative, 5, 4},
	0x22: {"LBHI", LRelative, 5, 4},
	0x23: {"LBLS", LRelative, 5, 4},
	0x24: {"LBCC", LRelative, 5, 4},
	0x25: {"LBCS", LRelative, 5, 4},
	0x26: {"LBNE", LRelative, 5, 4},
	0x27: {"LBEQ", LRelative, 5, 4},
	0x28: {"LBVC", LRelative, 5, 4},
	0x29: {"LBVS", LRelative, 5, 4},
	0x2A: {"LBPL", LRelative, 5, 4},
	0x2B: {"LBMI", LRelative, 5, 4},
	0x2C: {"LBGE", LRelative, 5, 4},
	0x2D: {"LBLT", LRelative, 5, 4},
	0x2E: {"LBGT", LRelative, 5, 4},
	0x2F: {"LBLE", LRelative, 5, 4},
	0x3F: {"SWI2", Inherent, 20, 2},
	0x83: {"CMPD", LImmediate, 5, 4},
	0x8C: {"CMPY", LImmediate, 5, 4},
	0x8E: {"LDY", LImmediate, 4, 4},
	0x93: {"CMPD", Direct, 7, 3},
	0x9C: {"CMPY", Direct, 7, 3},
	0x9E: {"LDY", Direct, 6, 3},
	0x9F: {"STY", Direct, 6, 3},
	0xA3: {"CMPD", Indexed, 7, 3},
	0xAC: {"CMPY", Indexed, 7, 3},
	0xAE: {"LDY", Indexed, 6, 3},
	0xAF: {"STY", Indexed, 6, 3},
	0xB3: {"CMPD", Extended, 8, 4},
	0xBC: {"CMPY", Extended, 8, 4},
	0xBE: {"LDY", Extended, 7, 4},
	0xBF: {"STY", Extended, 7, 4},
	0xCE: {"LDS", LImmediate, 4, 4},
	0xDE: {"LDS", Direct, 6, 3},
	0xDF: {"STS", Direct, 6, 3},
	0xEE: {"LDS", Indexed, 6, 3},
	0xEF: {"STS", Indexed, 6, 3},
	0xFE: {"LDS", Extended, 7, 4},
	0xFF: {"STS", Extended, 7, 4},
}

// page11 holds the 0x11-prefixed extended opcode page. The distilled
// source's table lists SWI3 at index 0xef, which collides with the
// CMPU/CMPS entries and does not match the documented MC6809E encoding;
// SWI3 is 0x11 0x3F on real silicon and is encoded that way here.
var page11 = map[uint8]opcodeDef{
	0x3F: {"SWI3", Inherent, 20, 2},
	0x83: {"CMPU", LImmediate, 5, 4},
	0x8C: {"CMPS", LImmediate, 5, 4},
	0x93: {"CMPU", Direct, 7, 3},
	0x9C: {"CMPS", Direct, 7, 3},
	0xA3: {"CMPU", Indexed, 7, 3},
	0xAC: {"CMPS", Indexed, 7, 3},
	0xB3: {"CMPU", Extended, 8, 4},
	0xBC: {"CMPS", Extended, 8, 4},
}
