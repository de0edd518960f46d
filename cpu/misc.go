package cpu

// iJMP implements JMP a.
func (c *Chip) iJMP() {
	c.PC = c.addrAbsolute()
}

// iJMPIndirect implements JMP (a).
func (c *Chip) iJMPIndirect() {
	c.PC = c.addrIndirect()
}

// iJSR implements JSR a: push the address of the last byte of the JSR
// instruction (PC-1, since PC already points past both operand bytes),
// then jump.
func (c *Chip) iJSR() {
	lo := c.fetchOperand()
	hi := c.fetchOperand()
	target := uint16(hi)<<8 | uint16(lo)
	ret := c.PC - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.tick()
	c.PC = target
}

// iRTS implements RTS: pull the return address pushed by JSR and resume
// just past it.
func (c *Chip) iRTS() {
	lo := c.pullFirst()
	hi := c.pullNext()
	c.tick()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
}

// iRTI implements RTI: restore P then PC from the stack, in the order
// BRK/a hardware interrupt pushed them. The Break bit of the pulled
// status byte is not restored into P.
func (c *Chip) iRTI() {
	p := c.pullFirst()
	lo := c.pullNext()
	hi := c.pullNext()
	c.FromByte(p &^ PBreak)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// iBRK implements the software interrupt: BRK consumes a padding byte
// after the opcode (real hardware increments PC twice for BRK even
// though the second byte is never used), pushes PC and P with the Break
// flag set, then jumps through the IRQ/BRK vector.
func (c *Chip) iBRK() {
	c.fetchOperand()
	ret := c.PC
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(c.AsByte() | PBreak)
	lo := c.read(IRQVector)
	hi := c.read(IRQVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.P |= PInterrupt
}

// iPHA/iPHP spend one dead cycle before the actual push, matching real
// hardware's internal addressing-mode cycle for these implied-mode
// opcodes. iPLA/iPLP pay that settle cost inside pullFirst instead.
func (c *Chip) iPHA() {
	c.tick()
	c.push(c.A)
}

func (c *Chip) iPHP() {
	c.tick()
	c.push(c.AsByte())
}

func (c *Chip) iPLA() {
	c.A = c.pullFirst()
	c.setNZ(c.A)
}

func (c *Chip) iPLP() {
	c.FromByte(c.pullFirst())
}

// Flag instructions: each is a single dead-cycle implied-mode op.
func (c *Chip) iCLC() { c.tick(); c.P &^= PCarry }
func (c *Chip) iSEC() { c.tick(); c.P |= PCarry }
func (c *Chip) iCLI() { c.tick(); c.P &^= PInterrupt }
func (c *Chip) iSEI() { c.tick(); c.P |= PInterrupt }
func (c *Chip) iCLD() { c.tick(); c.P &^= PDecimal }
func (c *Chip) iSED() { c.tick(); c.P |= PDecimal }
func (c *Chip) iCLV() { c.tick(); c.P &^= POverflow }

// iNOP implements the single-byte NOP.
func (c *Chip) iNOP() { c.tick() }

// Register transfers. TXS is the one transfer that doesn't touch N/Z;
// it moves data, not a value meant to be tested.
func (c *Chip) iTAX() { c.tick(); c.loadRegister(&c.X, c.A) }
func (c *Chip) iTAY() { c.tick(); c.loadRegister(&c.Y, c.A) }
func (c *Chip) iTXA() { c.tick(); c.loadRegister(&c.A, c.X) }
func (c *Chip) iTYA() { c.tick(); c.loadRegister(&c.A, c.Y) }
func (c *Chip) iTSX() { c.tick(); c.loadRegister(&c.X, c.S) }
func (c *Chip) iTXS() { c.tick(); c.S = c.X }

// Register increment/decrement.
func (c *Chip) iINX() { c.tick(); c.loadRegister(&c.X, c.X+1) }
func (c *Chip) iINY() { c.tick(); c.loadRegister(&c.Y, c.Y+1) }
func (c *Chip) iDEX() { c.tick(); c.loadRegister(&c.X, c.X-1) }
func (c *Chip) iDEY() { c.tick(); c.loadRegister(&c.Y, c.Y-1) }
