// Package memory provides a flat 64KB RAM implementation of bus.Bus,
// suitable as a reference backend for the cpu package and its tests and
// tools. Memory-mapped peripherals or bank switching are the concern of
// a caller's own bus.Bus implementation; this one is deliberately plain.
package memory

import (
	"math/rand"
	"time"

	"github.com/dogue/moscore/bus"
)

// romWindow is the size of the address-space window reserved for a
// loaded ROM image, ending at 0xFFFF.
const romWindow = 0x8000

// RAM is a flat, unbanked 64KB address space.
type RAM struct {
	mem   [1 << 16]uint8
	ticks int
}

// NewRAM returns a RAM with every byte randomized, matching the teacher's
// power-on convention of not pretending real hardware starts zeroed.
func NewRAM() *RAM {
	r := &RAM{}
	r.PowerOn()
	return r
}

// PowerOn randomizes every byte of RAM.
func (r *RAM) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.mem {
		r.mem[i] = uint8(rand.Intn(256))
	}
}

// Read implements bus.Bus.
func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements bus.Bus.
func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// OnClock implements bus.Bus. It just counts ticks; Ticks() reports the
// count, so callers can check cycle counts without inspecting the CPU's
// internals.
func (r *RAM) OnClock() {
	r.ticks++
}

// Ticks returns the number of OnClock calls observed so far.
func (r *RAM) Ticks() int {
	return r.ticks
}

// LoadROM implements bus.Bus, copying prog so that its last byte lands at
// 0xFFFF (it starts at 0x10000-len(prog)); the reset/IRQ vectors are
// therefore the last six bytes of prog. Images larger than romWindow
// bytes are rejected with bus.ProgramTooLarge.
func (r *RAM) LoadROM(prog []byte) error {
	if len(prog) > romWindow {
		return bus.ProgramTooLarge{Size: len(prog), Max: romWindow}
	}
	start := 0x10000 - len(prog)
	copy(r.mem[start:], prog)
	return nil
}
