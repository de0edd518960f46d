package cpu

// Effective-address evaluators for every addressing mode except
// Accumulator, Immediate, and Implied (those have no memory address and
// are handled directly by the instructions that use them) and Relative
// (handled in branch.go, since its dead cycles depend on whether the
// branch is taken).
//
// Each function consumes its own operand bytes via fetchOperand (which
// ticks the bus once per byte) and emits whatever additional dead cycles
// the mode requires, per the addressing-mode table in SPEC_FULL.md §4.3.

// addrZP implements zero-page mode: d.
func (c *Chip) addrZP() uint16 {
	return uint16(c.fetchOperand())
}

// addrZPX implements zero-page,X mode: d,x. The index add always costs
// one dead cycle, whether the instruction loads, stores, or read-modify-
// writes.
func (c *Chip) addrZPX() uint16 {
	zp := c.fetchOperand()
	c.tick()
	return uint16(zp + c.X)
}

// addrZPY implements zero-page,Y mode: d,y. Only used by LDX/STX in the
// documented opcode set.
func (c *Chip) addrZPY() uint16 {
	zp := c.fetchOperand()
	c.tick()
	return uint16(zp + c.Y)
}

// addrAbsolute implements absolute mode: a.
func (c *Chip) addrAbsolute() uint16 {
	lo := c.fetchOperand()
	hi := c.fetchOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// addrAbsoluteIndexed implements absolute,X and absolute,Y, parameterized
// by the index register used. alwaysExtra forces the extra tick even
// when the page wasn't crossed, which is how store and read-modify-write
// instructions behave on real hardware: the effective address commits
// before the data phase, so the cycle is spent regardless.
func (c *Chip) addrAbsoluteIndexed(index uint8, alwaysExtra bool) uint16 {
	lo := c.fetchOperand()
	hi := c.fetchOperand()
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(index)
	if alwaysExtra || (base&0xFF00) != (addr&0xFF00) {
		c.tick()
	}
	return addr
}

// addrIndexedIndirect implements (d,X) mode. The pointer lookup always
// stays within the zero page, so there's no page-crossing concept here;
// the index add still costs its usual dead cycle.
func (c *Chip) addrIndexedIndirect() uint16 {
	ptr := c.fetchOperand()
	c.tick()
	lo := c.read(uint16(ptr + c.X))
	hi := c.read(uint16(ptr + c.X + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// addrIndirectIndexed implements (d),Y mode. alwaysExtra has the same
// meaning as in addrAbsoluteIndexed: stores pay the indexing tick
// unconditionally (see SPEC_FULL.md §4.3), loads only when the page was
// actually crossed.
func (c *Chip) addrIndirectIndexed(alwaysExtra bool) uint16 {
	ptr := c.fetchOperand()
	lo := c.read(uint16(ptr))
	hi := c.read(uint16(ptr + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Y)
	if alwaysExtra || (base&0xFF00) != (addr&0xFF00) {
		c.tick()
	}
	return addr
}

// addrIndirect implements indirect mode, used only by JMP (a). Unlike
// some NMOS silicon, the high byte of the target is read from ptr+1
// without wrapping within the low page; see DESIGN.md for why the
// page-wrap quirk isn't reproduced here.
func (c *Chip) addrIndirect() uint16 {
	lo := c.fetchOperand()
	hi := c.fetchOperand()
	ptr := uint16(hi)<<8 | uint16(lo)
	tlo := c.read(ptr)
	thi := c.read(ptr + 1)
	return uint16(thi)<<8 | uint16(tlo)
}
