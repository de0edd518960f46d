// Package disassemble renders a single documented 6502 instruction at a
// given address as human-readable text, without following control flow.
package disassemble

import (
	"fmt"

	"github.com/dogue/moscore/bus"
)

const (
	modeImplied = iota
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeRelative
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes it occupies (1-3). It always reads up to two bytes
// past pc, so callers must keep pc+2 in-bounds. Illegal/undocumented
// opcodes render as "???" and are assumed to occupy a single byte.
func Step(pc uint16, b bus.Bus) (string, int) {
	op := b.Read(pc)
	arg1 := b.Read(pc + 1)
	arg2 := b.Read(pc + 2)
	rel := pc + uint16(int16(int8(arg1))) + 2

	mnemonic, mode, ok := decode(op)
	if !ok {
		return fmt.Sprintf("%04X %02X        ???", pc, op), 1
	}

	count := 1
	var operand string
	switch mode {
	case modeImplied:
		operand = ""
	case modeImmediate:
		operand = fmt.Sprintf("#$%02X", arg1)
		count = 2
	case modeZP:
		operand = fmt.Sprintf("$%02X", arg1)
		count = 2
	case modeZPX:
		operand = fmt.Sprintf("$%02X,X", arg1)
		count = 2
	case modeZPY:
		operand = fmt.Sprintf("$%02X,Y", arg1)
		count = 2
	case modeIndirectX:
		operand = fmt.Sprintf("($%02X,X)", arg1)
		count = 2
	case modeIndirectY:
		operand = fmt.Sprintf("($%02X),Y", arg1)
		count = 2
	case modeAbsolute:
		operand = fmt.Sprintf("$%02X%02X", arg2, arg1)
		count = 3
	case modeAbsoluteX:
		operand = fmt.Sprintf("$%02X%02X,X", arg2, arg1)
		count = 3
	case modeAbsoluteY:
		operand = fmt.Sprintf("$%02X%02X,Y", arg2, arg1)
		count = 3
	case modeIndirect:
		operand = fmt.Sprintf("($%02X%02X)", arg2, arg1)
		count = 3
	case modeRelative:
		operand = fmt.Sprintf("$%02X (%04X)", arg1, rel)
		count = 2
	}

	var raw string
	switch count {
	case 1:
		raw = fmt.Sprintf("%02X      ", op)
	case 2:
		raw = fmt.Sprintf("%02X %02X   ", op, arg1)
	case 3:
		raw = fmt.Sprintf("%02X %02X %02X", op, arg1, arg2)
	}
	return fmt.Sprintf("%04X %s  %-4s %s", pc, raw, mnemonic, operand), count
}

// decode maps a documented opcode byte to its mnemonic and addressing
// mode. ok is false for any of the ~105 undocumented byte values.
func decode(op uint8) (mnemonic string, mode int, ok bool) {
	e, ok := opcodes[op]
	if !ok {
		return "", 0, false
	}
	return e.mnemonic, e.mode, true
}

type entry struct {
	mnemonic string
	mode     int
}

var opcodes = map[uint8]entry{
	0x00: {"BRK", modeImplied}, 0x01: {"ORA", modeIndirectX},
	0x05: {"ORA", modeZP}, 0x06: {"ASL", modeZP},
	0x08: {"PHP", modeImplied}, 0x09: {"ORA", modeImmediate}, 0x0A: {"ASL", modeImplied},
	0x0D: {"ORA", modeAbsolute}, 0x0E: {"ASL", modeAbsolute},
	0x10: {"BPL", modeRelative}, 0x11: {"ORA", modeIndirectY},
	0x15: {"ORA", modeZPX}, 0x16: {"ASL", modeZPX},
	0x18: {"CLC", modeImplied}, 0x19: {"ORA", modeAbsoluteY},
	0x1D: {"ORA", modeAbsoluteX}, 0x1E: {"ASL", modeAbsoluteX},
	0x20: {"JSR", modeAbsolute}, 0x21: {"AND", modeIndirectX},
	0x24: {"BIT", modeZP}, 0x25: {"AND", modeZP}, 0x26: {"ROL", modeZP},
	0x28: {"PLP", modeImplied}, 0x29: {"AND", modeImmediate}, 0x2A: {"ROL", modeImplied},
	0x2C: {"BIT", modeAbsolute}, 0x2D: {"AND", modeAbsolute}, 0x2E: {"ROL", modeAbsolute},
	0x30: {"BMI", modeRelative}, 0x31: {"AND", modeIndirectY},
	0x35: {"AND", modeZPX}, 0x36: {"ROL", modeZPX},
	0x38: {"SEC", modeImplied}, 0x39: {"AND", modeAbsoluteY},
	0x3D: {"AND", modeAbsoluteX}, 0x3E: {"ROL", modeAbsoluteX},
	0x40: {"RTI", modeImplied}, 0x41: {"EOR", modeIndirectX},
	0x45: {"EOR", modeZP}, 0x46: {"LSR", modeZP},
	0x48: {"PHA", modeImplied}, 0x49: {"EOR", modeImmediate}, 0x4A: {"LSR", modeImplied},
	0x4C: {"JMP", modeAbsolute}, 0x4D: {"EOR", modeAbsolute}, 0x4E: {"LSR", modeAbsolute},
	0x50: {"BVC", modeRelative}, 0x51: {"EOR", modeIndirectY},
	0x55: {"EOR", modeZPX}, 0x56: {"LSR", modeZPX},
	0x58: {"CLI", modeImplied}, 0x59: {"EOR", modeAbsoluteY},
	0x5D: {"EOR", modeAbsoluteX}, 0x5E: {"LSR", modeAbsoluteX},
	0x60: {"RTS", modeImplied}, 0x61: {"ADC", modeIndirectX},
	0x65: {"ADC", modeZP}, 0x66: {"ROR", modeZP},
	0x68: {"PLA", modeImplied}, 0x69: {"ADC", modeImmediate}, 0x6A: {"ROR", modeImplied},
	0x6C: {"JMP", modeIndirect}, 0x6D: {"ADC", modeAbsolute}, 0x6E: {"ROR", modeAbsolute},
	0x70: {"BVS", modeRelative}, 0x71: {"ADC", modeIndirectY},
	0x75: {"ADC", modeZPX}, 0x76: {"ROR", modeZPX},
	0x78: {"SEI", modeImplied}, 0x79: {"ADC", modeAbsoluteY},
	0x7D: {"ADC", modeAbsoluteX}, 0x7E: {"ROR", modeAbsoluteX},
	0x81: {"STA", modeIndirectX},
	0x84: {"STY", modeZP}, 0x85: {"STA", modeZP}, 0x86: {"STX", modeZP},
	0x88: {"DEY", modeImplied}, 0x8A: {"TXA", modeImplied},
	0x8C: {"STY", modeAbsolute}, 0x8D: {"STA", modeAbsolute}, 0x8E: {"STX", modeAbsolute},
	0x90: {"BCC", modeRelative}, 0x91: {"STA", modeIndirectY},
	0x94: {"STY", modeZPX}, 0x95: {"STA", modeZPX}, 0x96: {"STX", modeZPY},
	0x98: {"TYA", modeImplied}, 0x99: {"STA", modeAbsoluteY}, 0x9A: {"TXS", modeImplied},
	0x9D: {"STA", modeAbsoluteX},
	0xA0: {"LDY", modeImmediate}, 0xA1: {"LDA", modeIndirectX}, 0xA2: {"LDX", modeImmediate},
	0xA4: {"LDY", modeZP}, 0xA5: {"LDA", modeZP}, 0xA6: {"LDX", modeZP},
	0xA8: {"TAY", modeImplied}, 0xA9: {"LDA", modeImmediate}, 0xAA: {"TAX", modeImplied},
	0xAC: {"LDY", modeAbsolute}, 0xAD: {"LDA", modeAbsolute}, 0xAE: {"LDX", modeAbsolute},
	0xB0: {"BCS", modeRelative}, 0xB1: {"LDA", modeIndirectY},
	0xB4: {"LDY", modeZPX}, 0xB5: {"LDA", modeZPX}, 0xB6: {"LDX", modeZPY},
	0xB8: {"CLV", modeImplied}, 0xB9: {"LDA", modeAbsoluteY}, 0xBA: {"TSX", modeImplied},
	0xBC: {"LDY", modeAbsoluteX}, 0xBD: {"LDA", modeAbsoluteX}, 0xBE: {"LDX", modeAbsoluteY},
	0xC0: {"CPY", modeImmediate}, 0xC1: {"CMP", modeIndirectX},
	0xC4: {"CPY", modeZP}, 0xC5: {"CMP", modeZP}, 0xC6: {"DEC", modeZP},
	0xC8: {"INY", modeImplied}, 0xC9: {"CMP", modeImmediate}, 0xCA: {"DEX", modeImplied},
	0xCC: {"CPY", modeAbsolute}, 0xCD: {"CMP", modeAbsolute}, 0xCE: {"DEC", modeAbsolute},
	0xD0: {"BNE", modeRelative}, 0xD1: {"CMP", modeIndirectY},
	0xD5: {"CMP", modeZPX}, 0xD6: {"DEC", modeZPX},
	0xD8: {"CLD", modeImplied}, 0xD9: {"CMP", modeAbsoluteY},
	0xDD: {"CMP", modeAbsoluteX}, 0xDE: {"DEC", modeAbsoluteX},
	0xE0: {"CPX", modeImmediate}, 0xE1: {"SBC", modeIndirectX},
	0xE4: {"CPX", modeZP}, 0xE5: {"SBC", modeZP}, 0xE6: {"INC", modeZP},
	0xE8: {"INX", modeImplied}, 0xE9: {"SBC", modeImmediate}, 0xEA: {"NOP", modeImplied},
	0xEC: {"CPX", modeAbsolute}, 0xED: {"SBC", modeAbsolute}, 0xEE: {"INC", modeAbsolute},
	0xF0: {"BEQ", modeRelative}, 0xF1: {"SBC", modeIndirectY},
	0xF5: {"SBC", modeZPX}, 0xF6: {"INC", modeZPX},
	0xF8: {"SED", modeImplied}, 0xF9: {"SBC", modeAbsoluteY},
	0xFD: {"SBC", modeAbsoluteX}, 0xFE: {"INC", modeAbsoluteX},
}
