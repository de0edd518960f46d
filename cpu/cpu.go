// Package cpu implements the 6502 architecture: registers, status flags,
// addressing modes, and the documented opcode set, driven one instruction
// at a time against a caller-supplied bus.Bus.
package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dogue/moscore/bus"
)

const (
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)

	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	unusedBit  = uint8(0x20) // Bit 5; unused, always reads as 0.
	PBreak     = uint8(0x10) // Set in the copy of P that BRK pushes.
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

// Chip is a 6502 core: registers, flags, and the bus it's wired to.
type Chip struct {
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer.
	P  uint8  // Status flags.
	PC uint16 // Program counter.

	bus bus.Bus

	halted     bool
	haltOpcode uint8
}

// InvalidCPUState represents an invalid CPU state encountered internally;
// it should never occur in normal operation.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode is returned when Step/Run encounters an opcode with no
// documented behavior (illegal/undocumented opcodes are out of scope).
type HaltOpcode struct {
	Opcode uint8
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("halt: opcode 0x%02X has no documented behavior", e.Opcode)
}

// ChipDef configures a new Chip.
type ChipDef struct {
	// Bus is the memory/IO interface this core will read and write.
	Bus bus.Bus
}

// Init constructs a Chip wired to the given bus. The bus is left exactly
// as given; callers that want randomized power-on RAM should call
// PowerOn on the bus themselves (Chip.PowerOn only touches registers).
func Init(def *ChipDef) (*Chip, error) {
	if def.Bus == nil {
		return nil, InvalidCPUState{"ChipDef.Bus must not be nil"}
	}
	c := &Chip{bus: def.Bus}
	c.PowerOn()
	return c, nil
}

// PowerOn randomizes registers (matching real hardware's undefined
// power-on state) and then performs a Reset to establish PC from the
// reset vector.
func (c *Chip) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	c.A = uint8(rand.Intn(256))
	c.X = uint8(rand.Intn(256))
	c.Y = uint8(rand.Intn(256))
	c.S = uint8(rand.Intn(256))
	c.P = 0
	c.Reset()
}

// Reset clears A/X/Y, sets S to 0xFF, disables interrupts, clears halt
// state, and loads PC from the reset vector. Per DESIGN.md's Open
// Question resolution, the two reset-vector reads do not tick the bus.
func (c *Chip) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.S = 0xFF
	c.P |= PInterrupt
	c.halted = false
	c.haltOpcode = 0

	lo := c.bus.Read(ResetVector)
	hi := c.bus.Read(ResetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Halted reports whether the core has halted on an undocumented opcode.
func (c *Chip) Halted() bool {
	return c.halted
}

// HaltedOpcode returns the opcode that caused the halt, valid only when
// Halted() is true.
func (c *Chip) HaltedOpcode() uint8 {
	return c.haltOpcode
}

// Step executes exactly one instruction's worth of work, including every
// bus cycle it causes, and returns HaltOpcode if the opcode fetched has
// no documented behavior. Once halted, Step keeps returning the same
// HaltOpcode without further bus activity.
func (c *Chip) Step() error {
	if c.halted {
		return HaltOpcode{c.haltOpcode}
	}
	op := c.fetchOpcode()
	if err := c.dispatch(op); err != nil {
		c.halted = true
		c.haltOpcode = op
		return err
	}
	return nil
}

// Run steps the core until it halts, returning the terminal HaltOpcode
// error (a documented program runs forever or halts; an undocumented
// opcode is the normal way a test program signals completion).
func (c *Chip) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}

// RunN steps the core up to max times or until it halts, whichever comes
// first. It returns the HaltOpcode error if the core halted, or nil if
// the step budget was exhausted first.
func (c *Chip) RunN(max int) error {
	for i := 0; i < max; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// fetchOpcode reads the byte at PC, advances PC, ticks the bus once, and
// returns the opcode byte.
func (c *Chip) fetchOpcode() uint8 {
	op := c.bus.Read(c.PC)
	c.PC++
	c.bus.OnClock()
	return op
}

// fetchOperand reads the byte at PC, advances PC, ticks the bus once.
// Every addressing mode's operand bytes go through this helper so the
// tick accounting stays centralized.
func (c *Chip) fetchOperand() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	c.bus.OnClock()
	return v
}

// read performs a plain bus read and ticks the bus once.
func (c *Chip) read(addr uint16) uint8 {
	v := c.bus.Read(addr)
	c.bus.OnClock()
	return v
}

// write performs a plain bus write and ticks the bus once.
func (c *Chip) write(addr uint16, v uint8) {
	c.bus.Write(addr, v)
	c.bus.OnClock()
}

// tick emits a dead cycle with no bus read/write, modeling an internal
// CPU cycle real hardware still spends on the bus (index-add, ALU
// dummy write-back, etc).
func (c *Chip) tick() {
	c.bus.OnClock()
}
