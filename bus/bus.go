// Package bus defines the contract a 65xx-family CPU core uses to talk to
// memory and memory-mapped peripherals.
package bus

import "fmt"

// Bus is the interface the cpu package consumes. An implementation owns
// the full 16-bit address space and any mapping of RAM/ROM/IO within it.
type Bus interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr. Implementations may treat some regions
	// (ROM) as read-only no-ops.
	Write(addr uint16, val uint8)
	// OnClock is invoked once per simulated bus cycle. Implementations
	// that model cycle-sensitive peripherals hook side effects here.
	OnClock()
	// LoadROM maps prog into the top of the address space. Returns
	// ProgramTooLarge if prog does not fit.
	LoadROM(prog []byte) error
}

// ProgramTooLarge is returned by LoadROM when the supplied image doesn't
// fit in the available ROM window.
type ProgramTooLarge struct {
	Size int
	Max  int
}

func (e ProgramTooLarge) Error() string {
	return fmt.Sprintf("program of %d bytes exceeds max ROM size of %d bytes", e.Size, e.Max)
}
