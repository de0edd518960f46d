package cpu

// dispatch decodes op and executes it. Only the ~151 documented NMOS
// 6502 opcodes are recognized; every other byte returns HaltOpcode, per
// the explicit Non-goal on undocumented-opcode behavior.
func (c *Chip) dispatch(op uint8) error {
	switch op {
	// ADC
	case 0x69:
		c.loadImmediate(c.iADC)
	case 0x65:
		c.loadInstruction(c.addrZP, c.iADC)
	case 0x75:
		c.loadInstruction(c.addrZPX, c.iADC)
	case 0x6D:
		c.loadInstruction(c.addrAbsolute, c.iADC)
	case 0x7D:
		c.loadInstruction(c.addrAbsoluteXLoad, c.iADC)
	case 0x79:
		c.loadInstruction(c.addrAbsoluteYLoad, c.iADC)
	case 0x61:
		c.loadInstruction(c.addrIndexedIndirect, c.iADC)
	case 0x71:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.iADC)

	// AND
	case 0x29:
		c.loadImmediate(c.iAND)
	case 0x25:
		c.loadInstruction(c.addrZP, c.iAND)
	case 0x35:
		c.loadInstruction(c.addrZPX, c.iAND)
	case 0x2D:
		c.loadInstruction(c.addrAbsolute, c.iAND)
	case 0x3D:
		c.loadInstruction(c.addrAbsoluteXLoad, c.iAND)
	case 0x39:
		c.loadInstruction(c.addrAbsoluteYLoad, c.iAND)
	case 0x21:
		c.loadInstruction(c.addrIndexedIndirect, c.iAND)
	case 0x31:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.iAND)

	// ASL
	case 0x0A:
		c.iASLAcc()
	case 0x06:
		c.rmwInstruction(c.addrZP, c.iASL)
	case 0x16:
		c.rmwInstruction(c.addrZPX, c.iASL)
	case 0x0E:
		c.rmwInstruction(c.addrAbsolute, c.iASL)
	case 0x1E:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iASL)

	// Branches
	case 0x90:
		c.iBCC()
	case 0xB0:
		c.iBCS()
	case 0xF0:
		c.iBEQ()
	case 0x30:
		c.iBMI()
	case 0xD0:
		c.iBNE()
	case 0x10:
		c.iBPL()
	case 0x50:
		c.iBVC()
	case 0x70:
		c.iBVS()

	// BIT
	case 0x24:
		c.loadInstruction(c.addrZP, c.iBIT)
	case 0x2C:
		c.loadInstruction(c.addrAbsolute, c.iBIT)

	// BRK / RTI / RTS / JMP / JSR
	case 0x00:
		c.iBRK()
	case 0x40:
		c.iRTI()
	case 0x60:
		c.iRTS()
	case 0x4C:
		c.iJMP()
	case 0x6C:
		c.iJMPIndirect()
	case 0x20:
		c.iJSR()

	// Flag instructions
	case 0x18:
		c.iCLC()
	case 0xD8:
		c.iCLD()
	case 0x58:
		c.iCLI()
	case 0xB8:
		c.iCLV()
	case 0x38:
		c.iSEC()
	case 0xF8:
		c.iSED()
	case 0x78:
		c.iSEI()

	// CMP / CPX / CPY
	case 0xC9:
		c.loadImmediate(c.compareA)
	case 0xC5:
		c.loadInstruction(c.addrZP, c.compareA)
	case 0xD5:
		c.loadInstruction(c.addrZPX, c.compareA)
	case 0xCD:
		c.loadInstruction(c.addrAbsolute, c.compareA)
	case 0xDD:
		c.loadInstruction(c.addrAbsoluteXLoad, c.compareA)
	case 0xD9:
		c.loadInstruction(c.addrAbsoluteYLoad, c.compareA)
	case 0xC1:
		c.loadInstruction(c.addrIndexedIndirect, c.compareA)
	case 0xD1:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.compareA)
	case 0xE0:
		c.loadImmediate(c.compareX)
	case 0xE4:
		c.loadInstruction(c.addrZP, c.compareX)
	case 0xEC:
		c.loadInstruction(c.addrAbsolute, c.compareX)
	case 0xC0:
		c.loadImmediate(c.compareY)
	case 0xC4:
		c.loadInstruction(c.addrZP, c.compareY)
	case 0xCC:
		c.loadInstruction(c.addrAbsolute, c.compareY)

	// DEC / DEX / DEY
	case 0xC6:
		c.rmwInstruction(c.addrZP, c.iDEC)
	case 0xD6:
		c.rmwInstruction(c.addrZPX, c.iDEC)
	case 0xCE:
		c.rmwInstruction(c.addrAbsolute, c.iDEC)
	case 0xDE:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iDEC)
	case 0xCA:
		c.iDEX()
	case 0x88:
		c.iDEY()

	// EOR
	case 0x49:
		c.loadImmediate(c.iEOR)
	case 0x45:
		c.loadInstruction(c.addrZP, c.iEOR)
	case 0x55:
		c.loadInstruction(c.addrZPX, c.iEOR)
	case 0x4D:
		c.loadInstruction(c.addrAbsolute, c.iEOR)
	case 0x5D:
		c.loadInstruction(c.addrAbsoluteXLoad, c.iEOR)
	case 0x59:
		c.loadInstruction(c.addrAbsoluteYLoad, c.iEOR)
	case 0x41:
		c.loadInstruction(c.addrIndexedIndirect, c.iEOR)
	case 0x51:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.iEOR)

	// INC / INX / INY
	case 0xE6:
		c.rmwInstruction(c.addrZP, c.iINC)
	case 0xF6:
		c.rmwInstruction(c.addrZPX, c.iINC)
	case 0xEE:
		c.rmwInstruction(c.addrAbsolute, c.iINC)
	case 0xFE:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iINC)
	case 0xE8:
		c.iINX()
	case 0xC8:
		c.iINY()

	// LDA / LDX / LDY
	case 0xA9:
		c.loadImmediate(c.loadRegisterA)
	case 0xA5:
		c.loadInstruction(c.addrZP, c.loadRegisterA)
	case 0xB5:
		c.loadInstruction(c.addrZPX, c.loadRegisterA)
	case 0xAD:
		c.loadInstruction(c.addrAbsolute, c.loadRegisterA)
	case 0xBD:
		c.loadInstruction(c.addrAbsoluteXLoad, c.loadRegisterA)
	case 0xB9:
		c.loadInstruction(c.addrAbsoluteYLoad, c.loadRegisterA)
	case 0xA1:
		c.loadInstruction(c.addrIndexedIndirect, c.loadRegisterA)
	case 0xB1:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.loadRegisterA)
	case 0xA2:
		c.loadImmediate(c.loadRegisterX)
	case 0xA6:
		c.loadInstruction(c.addrZP, c.loadRegisterX)
	case 0xB6:
		c.loadInstruction(c.addrZPY, c.loadRegisterX)
	case 0xAE:
		c.loadInstruction(c.addrAbsolute, c.loadRegisterX)
	case 0xBE:
		c.loadInstruction(c.addrAbsoluteYLoad, c.loadRegisterX)
	case 0xA0:
		c.loadImmediate(c.loadRegisterY)
	case 0xA4:
		c.loadInstruction(c.addrZP, c.loadRegisterY)
	case 0xB4:
		c.loadInstruction(c.addrZPX, c.loadRegisterY)
	case 0xAC:
		c.loadInstruction(c.addrAbsolute, c.loadRegisterY)
	case 0xBC:
		c.loadInstruction(c.addrAbsoluteXLoad, c.loadRegisterY)

	// LSR
	case 0x4A:
		c.iLSRAcc()
	case 0x46:
		c.rmwInstruction(c.addrZP, c.iLSR)
	case 0x56:
		c.rmwInstruction(c.addrZPX, c.iLSR)
	case 0x4E:
		c.rmwInstruction(c.addrAbsolute, c.iLSR)
	case 0x5E:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iLSR)

	// NOP
	case 0xEA:
		c.iNOP()

	// ORA
	case 0x09:
		c.loadImmediate(c.iORA)
	case 0x05:
		c.loadInstruction(c.addrZP, c.iORA)
	case 0x15:
		c.loadInstruction(c.addrZPX, c.iORA)
	case 0x0D:
		c.loadInstruction(c.addrAbsolute, c.iORA)
	case 0x1D:
		c.loadInstruction(c.addrAbsoluteXLoad, c.iORA)
	case 0x19:
		c.loadInstruction(c.addrAbsoluteYLoad, c.iORA)
	case 0x01:
		c.loadInstruction(c.addrIndexedIndirect, c.iORA)
	case 0x11:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.iORA)

	// Stack ops
	case 0x48:
		c.iPHA()
	case 0x08:
		c.iPHP()
	case 0x68:
		c.iPLA()
	case 0x28:
		c.iPLP()

	// ROL / ROR
	case 0x2A:
		c.iROLAcc()
	case 0x26:
		c.rmwInstruction(c.addrZP, c.iROL)
	case 0x36:
		c.rmwInstruction(c.addrZPX, c.iROL)
	case 0x2E:
		c.rmwInstruction(c.addrAbsolute, c.iROL)
	case 0x3E:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iROL)
	case 0x6A:
		c.iRORAcc()
	case 0x66:
		c.rmwInstruction(c.addrZP, c.iROR)
	case 0x76:
		c.rmwInstruction(c.addrZPX, c.iROR)
	case 0x6E:
		c.rmwInstruction(c.addrAbsolute, c.iROR)
	case 0x7E:
		c.rmwInstruction(c.addrAbsoluteXWrite, c.iROR)

	// SBC
	case 0xE9:
		c.loadImmediate(c.iSBC)
	case 0xE5:
		c.loadInstruction(c.addrZP, c.iSBC)
	case 0xF5:
		c.loadInstruction(c.addrZPX, c.iSBC)
	case 0xED:
		c.loadInstruction(c.addrAbsolute, c.iSBC)
	case 0xFD:
		c.loadInstruction(c.addrAbsoluteXLoad, c.iSBC)
	case 0xF9:
		c.loadInstruction(c.addrAbsoluteYLoad, c.iSBC)
	case 0xE1:
		c.loadInstruction(c.addrIndexedIndirect, c.iSBC)
	case 0xF1:
		c.loadInstruction(c.addrIndirectIndexedLoad, c.iSBC)

	// STA / STX / STY
	case 0x85:
		c.storeInstruction(c.addrZP, c.A)
	case 0x95:
		c.storeInstruction(c.addrZPX, c.A)
	case 0x8D:
		c.storeInstruction(c.addrAbsolute, c.A)
	case 0x9D:
		c.storeInstruction(c.addrAbsoluteXWrite, c.A)
	case 0x99:
		c.storeInstruction(c.addrAbsoluteYWrite, c.A)
	case 0x81:
		c.storeInstruction(c.addrIndexedIndirect, c.A)
	case 0x91:
		c.storeInstruction(c.addrIndirectIndexedWrite, c.A)
	case 0x86:
		c.storeInstruction(c.addrZP, c.X)
	case 0x96:
		c.storeInstruction(c.addrZPY, c.X)
	case 0x8E:
		c.storeInstruction(c.addrAbsolute, c.X)
	case 0x84:
		c.storeInstruction(c.addrZP, c.Y)
	case 0x94:
		c.storeInstruction(c.addrZPX, c.Y)
	case 0x8C:
		c.storeInstruction(c.addrAbsolute, c.Y)

	// Transfers
	case 0xAA:
		c.iTAX()
	case 0xA8:
		c.iTAY()
	case 0xBA:
		c.iTSX()
	case 0x8A:
		c.iTXA()
	case 0x9A:
		c.iTXS()
	case 0x98:
		c.iTYA()

	default:
		return HaltOpcode{op}
	}
	return nil
}
