package cpu

const stackPage = uint16(0x0100)

// push writes b to the current stack address and decrements S.
func (c *Chip) push(b uint8) {
	c.write(stackPage|uint16(c.S), b)
	c.S--
}

// pullFirst spends the two dead cycles real hardware pays once per
// pull-based instruction (PLA, PLP, RTS, RTI) before any byte comes off
// the stack: a throwaway read of the next instruction byte, then the S
// increment itself. It returns the first byte pulled.
func (c *Chip) pullFirst() uint8 {
	c.tick()
	c.S++
	c.tick()
	return c.read(stackPage | uint16(c.S))
}

// pullNext reads the next byte up the stack. Unlike pullFirst, it doesn't
// pay the settle cost again; real hardware only spends that once per
// instruction no matter how many bytes it pulls.
func (c *Chip) pullNext() uint8 {
	c.S++
	return c.read(stackPage | uint16(c.S))
}
