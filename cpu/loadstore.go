package cpu

// addrFunc computes an effective address, consuming whatever operand
// bytes and dead cycles its mode requires.
type addrFunc func() uint16

// Thin indexed-mode wrappers binding a concrete index register and the
// load-vs-store/RMW tick policy, so decode.go can pass them as a plain
// addrFunc alongside the zero-page and absolute modes.
func (c *Chip) addrAbsoluteXLoad() uint16 { return c.addrAbsoluteIndexed(c.X, false) }
func (c *Chip) addrAbsoluteYLoad() uint16 { return c.addrAbsoluteIndexed(c.Y, false) }
func (c *Chip) addrAbsoluteXWrite() uint16 { return c.addrAbsoluteIndexed(c.X, true) }
func (c *Chip) addrAbsoluteYWrite() uint16 { return c.addrAbsoluteIndexed(c.Y, true) }

func (c *Chip) addrIndirectIndexedLoad() uint16  { return c.addrIndirectIndexed(false) }
func (c *Chip) addrIndirectIndexedWrite() uint16 { return c.addrIndirectIndexed(true) }

// loadInstruction evaluates addr, reads the operand, and applies op to
// it (an ALU/register routine that sets whatever flags it needs).
func (c *Chip) loadInstruction(addrFn addrFunc, op func(uint8)) {
	addr := addrFn()
	op(c.read(addr))
}

// loadImmediate applies op directly to the fetched operand byte; #i mode
// has no effective address to dereference.
func (c *Chip) loadImmediate(op func(uint8)) {
	op(c.fetchOperand())
}

// storeInstruction evaluates addr and writes val there.
func (c *Chip) storeInstruction(addrFn addrFunc, val uint8) {
	addr := addrFn()
	c.write(addr, val)
}

// rmwInstruction evaluates addr, reads the current value, spends the
// dummy write-back cycle real 6502 RMW instructions always take, applies
// op, and writes the result back.
func (c *Chip) rmwInstruction(addrFn addrFunc, op func(uint8) uint8) {
	addr := addrFn()
	v := c.read(addr)
	c.tick()
	c.write(addr, op(v))
}

// loadRegister stores v into reg and updates N/Z from it. Used directly
// by register-to-register transfers and increment/decrement.
func (c *Chip) loadRegister(reg *uint8, v uint8) {
	*reg = v
	c.setNZ(v)
}

func (c *Chip) loadRegisterA(v uint8) { c.loadRegister(&c.A, v) }
func (c *Chip) loadRegisterX(v uint8) { c.loadRegister(&c.X, v) }
func (c *Chip) loadRegisterY(v uint8) { c.loadRegister(&c.Y, v) }
