package cpu

// branch fetches the signed relative offset (always, regardless of
// whether it's taken) and, if taken, applies it to PC, spending one tick
// for the branch itself and a second if it crosses a page boundary.
func (c *Chip) branch(taken bool) {
	offset := int8(c.fetchOperand())
	if !taken {
		return
	}
	c.tick()
	old := c.PC
	next := uint16(int32(old) + int32(offset))
	if old&0xFF00 != next&0xFF00 {
		c.tick()
	}
	c.PC = next
}

func (c *Chip) iBCC() { c.branch(!c.Carry()) }
func (c *Chip) iBCS() { c.branch(c.Carry()) }
func (c *Chip) iBEQ() { c.branch(c.Zero()) }
func (c *Chip) iBNE() { c.branch(!c.Zero()) }
func (c *Chip) iBMI() { c.branch(c.Negative()) }
func (c *Chip) iBPL() { c.branch(!c.Negative()) }
func (c *Chip) iBVC() { c.branch(!c.Overflow()) }
func (c *Chip) iBVS() { c.branch(c.Overflow()) }
