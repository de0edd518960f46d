package cpu_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/dogue/moscore/bus"
	"github.com/dogue/moscore/cpu"
)

// flatMemory is a minimal bus.Bus test harness: a flat 64K array with a
// tick counter so tests can assert on cycle counts directly, without
// reaching into the Chip's internals.
type flatMemory struct {
	mem   [0x10000]uint8
	ticks int
}

func (f *flatMemory) Read(addr uint16) uint8     { return f.mem[addr] }
func (f *flatMemory) Write(addr uint16, v uint8) { f.mem[addr] = v }
func (f *flatMemory) OnClock()                   { f.ticks++ }

func (f *flatMemory) LoadROM(prog []byte) error {
	if len(prog) > 0x8000 {
		return bus.ProgramTooLarge{Size: len(prog), Max: 0x8000}
	}
	copy(f.mem[0x10000-len(prog):], prog)
	return nil
}

// setup places program at start, points the reset vector there, and
// returns a freshly-reset Chip plus the underlying memory for assertions.
func setup(t *testing.T, program []uint8, start uint16) (*cpu.Chip, *flatMemory) {
	t.Helper()
	m := &flatMemory{}
	copy(m.mem[start:], program)
	m.mem[0xFFFC] = uint8(start)
	m.mem[0xFFFD] = uint8(start >> 8)
	c, err := cpu.Init(&cpu.ChipDef{Bus: m})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.ticks = 0
	return c, m
}

func TestLDAImmediate(t *testing.T) {
	c, m := setup(t, []uint8{0xA9, 0x05}, 0x8000)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.A != 0x05 {
		t.Errorf("A = 0x%02X, want 0x05\n%s", c.A, spew.Sdump(c))
	}
	if m.ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.ticks)
	}
}

func TestADCSetsFlags(t *testing.T) {
	c, m := setup(t, []uint8{0x69, 0x50}, 0x8000)
	c.A = 0x50
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.A != 0xA0 {
		t.Errorf("A = 0x%02X, want 0xA0", c.A)
	}
	if !c.Negative() || !c.Overflow() || c.Carry() || c.Zero() {
		t.Errorf("flags N=%v V=%v C=%v Z=%v, want N=1 V=1 C=0 Z=0",
			c.Negative(), c.Overflow(), c.Carry(), c.Zero())
	}
	if m.ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.ticks)
	}
}

func TestCMPGreaterEqual(t *testing.T) {
	c, m := setup(t, []uint8{0xC9, 0x05}, 0x8000)
	c.A = 0x0A
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if !c.Carry() || c.Zero() || c.Negative() {
		t.Errorf("flags C=%v Z=%v N=%v, want C=1 Z=0 N=0", c.Carry(), c.Zero(), c.Negative())
	}
	if m.ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.ticks)
	}
}

func TestBCCTakenAcrossPage(t *testing.T) {
	c, m := setup(t, []uint8{0x90, 0x0F}, 0x80F0)
	c.P &^= cpu.PCarry
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != 0x8101 {
		t.Errorf("PC = 0x%04X, want 0x8101", c.PC)
	}
	if m.ticks != 4 {
		t.Errorf("ticks = %d, want 4", m.ticks)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, m := setup(t, []uint8{0x20, 0x37, 0x13}, 0x8000)
	m.mem[0x1337] = 0x60 // RTS
	if err := c.Step(); err != nil {
		t.Fatalf("JSR Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != 0x1337 {
		t.Errorf("PC after JSR = 0x%04X, want 0x1337", c.PC)
	}
	if m.ticks != 6 {
		t.Errorf("ticks after JSR = %d, want 6", m.ticks)
	}
	top := m.mem[0x0100|uint16(c.S+1)]
	next := m.mem[0x0100|uint16(c.S+2)]
	if top != 0x02 || next != 0x80 {
		t.Errorf("stack after JSR: top=0x%02X next=0x%02X, want 0x02/0x80", top, next)
	}

	m.ticks = 0
	if err := c.Step(); err != nil {
		t.Fatalf("RTS Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = 0x%04X, want 0x8003", c.PC)
	}
	if m.ticks != 6 {
		t.Errorf("ticks after RTS = %d, want 6", m.ticks)
	}
}

func TestLSRAbsoluteXPageCross(t *testing.T) {
	c, m := setup(t, []uint8{0x5E, 0xFF, 0x20}, 0x8000)
	c.X = 0x01
	m.mem[0x2100] = 0b1000_1000
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if got := m.mem[0x2100]; got != 0b0100_0100 {
		t.Errorf("mem[0x2100] = 0b%08b, want 0b01000100", got)
	}
	if c.Carry() {
		t.Errorf("C = true, want false")
	}
	if m.ticks != 7 {
		t.Errorf("ticks = %d, want 7", m.ticks)
	}
}

func TestUnknownOpcodeHalts(t *testing.T) {
	c, m := setup(t, []uint8{0x02}, 0x8000) // 0x02 is undocumented, no handler
	a, x, y, p := c.A, c.X, c.Y, c.P

	err := c.Step()
	if err == nil {
		t.Fatal("Step: want HaltOpcode, got nil")
	}
	halt, ok := err.(cpu.HaltOpcode)
	if !ok {
		t.Fatalf("Step err = %v (%T), want cpu.HaltOpcode", err, err)
	}
	if halt.Opcode != 0x02 {
		t.Errorf("HaltOpcode.Opcode = 0x%02X, want 0x02", halt.Opcode)
	}
	if !c.Halted() {
		t.Error("Halted() = false, want true")
	}
	if c.A != a || c.X != x || c.Y != y || c.P != p {
		t.Errorf("registers changed across halt: A/X/Y/P = %02X/%02X/%02X/%02X, want %02X/%02X/%02X/%02X",
			c.A, c.X, c.Y, c.P, a, x, y, p)
	}

	// Stays halted and keeps returning the same error without further
	// bus activity.
	m.ticks = 0
	if err := c.Step(); err == nil {
		t.Error("second Step after halt: want error, got nil")
	}
	if m.ticks != 0 {
		t.Errorf("ticks after halted Step = %d, want 0", m.ticks)
	}
}

func TestPushPullRoundTrip(t *testing.T) {
	c, _ := setup(t, []uint8{0x48, 0x68}, 0x8000) // PHA; PLA
	c.A = 0x7E
	sBefore := c.S
	if err := c.Step(); err != nil { // PHA
		t.Fatalf("PHA Step: %v\n%s", err, spew.Sdump(c))
	}
	c.A = 0x00 // clobber so PLA has to actually restore it
	if err := c.Step(); err != nil { // PLA
		t.Fatalf("PLA Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.A != 0x7E {
		t.Errorf("A after PHA;PLA = 0x%02X, want 0x7E", c.A)
	}
	if diff := deep.Equal(sBefore, c.S); diff != nil {
		t.Errorf("S not restored after PHA;PLA: %v", diff)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, _ := setup(t, []uint8{0x08, 0x28}, 0x8000) // PHP; PLP
	c.P = cpu.PCarry | cpu.PNegative
	pBefore := c.AsByte()
	sBefore := c.S
	if err := c.Step(); err != nil { // PHP
		t.Fatalf("PHP Step: %v\n%s", err, spew.Sdump(c))
	}
	c.P = 0 // clobber so PLP has to actually restore it
	if err := c.Step(); err != nil { // PLP
		t.Fatalf("PLP Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.AsByte() != pBefore {
		t.Errorf("P after PHP;PLP = 0x%02X, want 0x%02X", c.AsByte(), pBefore)
	}
	if diff := deep.Equal(sBefore, c.S); diff != nil {
		t.Errorf("S not restored after PHP;PLP: %v", diff)
	}
}

func TestASLThenLSRIdentity(t *testing.T) {
	// ASL followed by LSR on a value with bit 7 clear restores it,
	// modulo the carry flag each leaves behind.
	program := []uint8{0x0A, 0x4A} // ASL A; LSR A
	c, _ := setup(t, program, 0x8000)
	c.A = 0x35 // bit 7 clear
	orig := c.A
	if err := c.Step(); err != nil {
		t.Fatalf("ASL Step: %v", err)
	}
	if err := c.Step(); err != nil {
		t.Fatalf("LSR Step: %v", err)
	}
	if c.A != orig {
		t.Errorf("A after ASL;LSR = 0x%02X, want 0x%02X (original)", c.A, orig)
	}
}

func TestNOPTiming(t *testing.T) {
	c, m := setup(t, []uint8{0xEA}, 0x8000)
	pcBefore := c.PC
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != pcBefore+1 {
		t.Errorf("PC = 0x%04X, want 0x%04X", c.PC, pcBefore+1)
	}
	if m.ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.ticks)
	}
}

func TestLDATableDriven(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		x, y    uint8
		setMem  func(m *flatMemory)
		want    uint8
	}{
		{"immediate", []uint8{0xA9, 0x37}, 0, 0, nil, 0x37},
		{"zeropage", []uint8{0xA5, 0x10}, 0, 0, func(m *flatMemory) { m.mem[0x10] = 0x42 }, 0x42},
		{"zeropage,x", []uint8{0xB5, 0x10}, 0x05, 0, func(m *flatMemory) { m.mem[0x15] = 0x99 }, 0x99},
		{"absolute", []uint8{0xAD, 0x00, 0x30}, 0, 0, func(m *flatMemory) { m.mem[0x3000] = 0x11 }, 0x11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, m := setup(t, tc.program, 0x8000)
			c.X, c.Y = tc.x, tc.y
			if tc.setMem != nil {
				tc.setMem(m)
			}
			if err := c.Step(); err != nil {
				t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
			}
			if c.A != tc.want {
				t.Errorf("A = 0x%02X, want 0x%02X\n%s", c.A, tc.want, spew.Sdump(c))
			}
		})
	}
}
