package disasm

type addrMode int

const (
	modImp addrMode = iota
	modAcc
	modImm
	modZpg
	modZpx
	modZpy
	modAbs
	modAbx
	modAby
	modInd
	modInx
	modIny
	modRel
)

func modeSize(m addrMode) int {
	switch m {
	case modImp, modAcc:
		return 1
	case modImm, modZpg, modZpx, modZpy, modInx, modIny, modRel:
		return 2
	case modAbs, modAbx, modAby, modInd:
		return 3
	}
	return 1
}

type opInfo struct {
	mnemonic string
	mode     addrMode
}

// Documented MOS 6502 opcodes only; anything else decodes as invalid.
var opcodes = map[byte]opInfo{
	// adc
	0x69: {"adc", modImm}, 0x65: {"adc", modZpg}, 0x75: {"adc", modZpx},
	0x6d: {"adc", modAbs}, 0x7d: {"adc", modAbx}, 0x79: {"adc", modAby},
	0x61: {"adc", modInx}, 0x71: {"adc", modIny},
	// and
	0x29: {"and", modImm}, 0x25: {"and", modZpg}, 0x35: {"and", modZpx},
	0x2d: {"and", modAbs}, 0x3d: {"and", modAbx}, 0x39: {"and", modAby},
	0x21: {"and", modInx}, 0x31: {"and", modIny},
	// asl
	0x0a: {"asl", modAcc}, 0x06: {"asl", modZpg}, 0x16: {"asl", modZpx},
	0x0e: {"asl", modAbs}, 0x1e: {"asl", modAbx},
	// branches
	0x90: {"bcc", modRel}, 0xb0: {"bcs", modRel}, 0xf0: {"beq", modRel},
	0x30: {"bmi", modRel}, 0xd0: {"bne", modRel}, 0x10: {"bpl", modRel},
	0x50: {"bvc", modRel}, 0x70: {"bvs", modRel},
	// bit
	0x24: {"bit", modZpg}, 0x2c: {"bit", modAbs},
	// interrupts and returns
	0x00: {"brk", modImp}, 0x40: {"rti", modImp}, 0x60: {"rts", modImp},
	// flag ops
	0x18: {"clc", modImp}, 0xd8: {"cld", modImp}, 0x58: {"cli", modImp},
	0xb8: {"clv", modImp}, 0x38: {"sec", modImp}, 0xf8: {"sed", modImp},
	0x78: {"sei", modImp},
	// cmp
	0xc9: {"cmp", modImm}, 0xc5: {"cmp", modZpg}, 0xd5: {"cmp", modZpx},
	0xcd: {"cmp", modAbs}, 0xdd: {"cmp", modAbx}, 0xd9: {"cmp", modAby},
	0xc1: {"cmp", modInx}, 0xd1: {"cmp", modIny},
	// cpx, cpy
	0xe0: {"cpx", modImm}, 0xe4: {"cpx", modZpg}, 0xec: {"cpx", modAbs},
	0xc0: {"cpy", modImm}, 0xc4: {"cpy", modZpg}, 0xcc: {"cpy", modAbs},
	// dec, inc
	0xc6: {"dec", modZpg}, 0xd6: {"dec", modZpx}, 0xce: {"dec", modAbs},
	0xde: {"dec", modAbx},
	0xe6: {"inc", modZpg}, 0xf6: {"inc", modZpx}, 0xee: {"inc", modAbs},
	0xfe: {"inc", modAbx},
	// register inc/dec
	0xca: {"dex", modImp}, 0x88: {"dey", modImp},
	0xe8: {"inx", modImp}, 0xc8: {"iny", modImp},
	// eor
	0x49: {"eor", modImm}, 0x45: {"eor", modZpg}, 0x55: {"eor", modZpx},
	0x4d: {"eor", modAbs}, 0x5d: {"eor", modAbx}, 0x59: {"eor", modAby},
	0x41: {"eor", modInx}, 0x51: {"eor", modIny},
	// jumps
	0x4c: {"jmp", modAbs}, 0x6c: {"jmp", modInd}, 0x20: {"jsr", modAbs},
	// lda
	0xa9: {"lda", modImm}, 0xa5: {"lda", modZpg}, 0xb5: {"lda", modZpx},
	0xad: {"lda", modAbs}, 0xbd: {"lda", modAbx}, 0xb9: {"lda", modAby},
	0xa1: {"lda", modInx}, 0xb1: {"lda", modIny},
	// ldx, ldy
	0xa2: {"ldx", modImm}, 0xa6: {"ldx", modZpg}, 0xb6: {"ldx", modZpy},
	0xae: {"ldx", modAbs}, 0xbe: {"ldx", modAby},
	0xa0: {"ldy", modImm}, 0xa4: {"ldy", modZpg}, 0xb4: {"ldy", modZpx},
	0xac: {"ldy", modAbs}, 0xbc: {"ldy", modAbx},
	// lsr
	0x4a: {"lsr", modAcc}, 0x46: {"lsr", modZpg}, 0x56: {"lsr", modZpx},
	0x4e: {"lsr", modAbs}, 0x5e: {"lsr", modAbx},
	// nop
	0xea: {"nop", modImp},
	// ora
	0x09: {"ora", modImm}, 0x05: {"ora", modZpg}, 0x15: {"ora", modZpx},
	0x0d: {"ora", modAbs}, 0x1d: {"ora", modAbx}, 0x19: {"ora", modAby},
	0x01: {"ora", modInx}, 0x11: {"ora", modIny},
	// stack
	0x48: {"pha", modImp}, 0x08: {"php", modImp},
	0x68: {"pla", modImp}, 0x28: {"plp", modImp},
	// rol, ror
	0x2a: {"rol", modAcc}, 0x26: {"rol", modZpg}, 0x36: {"rol", modZpx},
	0x2e: {"rol", modAbs}, 0x3e: {"rol", modAbx},
	0x6a: {"ror", modAcc}, 0x66: {"ror", modZpg}, 0x76: {"ror", modZpx},
	0x6e: {"ror", modAbs}, 0x7e: {"ror", modAbx},
	// sbc
	0xe9: {"sbc", modImm}, 0xe5: {"sbc", modZpg}, 0xf5: {"sbc", modZpx},
	0xed: {"sbc", modAbs}, 0xfd: {"sbc", modAbx}, 0xf9: {"sbc", modAby},
	0xe1: {"sbc", modInx}, 0xf1: {"sbc", modIny},
	// sta
	0x85: {"sta", modZpg}, 0x95: {"sta", modZpx}, 0x8d: {"sta", modAbs},
	0x9d: {"sta", modAbx}, 0x99: {"sta", modAby}, 0x81: {"sta", modInx},
	0x91: {"sta", modIny},
	// stx, sty
	0x86: {"stx", modZpg}, 0x96: {"stx", modZpy}, 0x8e: {"stx", modAbs},
	0x84: {"sty", modZpg}, 0x94: {"sty", modZpx}, 0x8c: {"sty", modAbs},
	// transfers
	0xaa: {"tax", modImp}, 0xa8: {"tay", modImp}, 0xba: {"tsx", modImp},
	0x8a: {"txa", modImp}, 0x9a: {"txs", modImp}, 0x98: {"tya", modImp},
}
