package vm

import "fmt"

// Registers is the 32-word data register file. Register 0 is hard-wired
// to 0 and register 1 to 1; writes to either are silently discarded.
type Registers struct {
	words [NumDataRegisters]uint32
	hooks *Hooks
	warn  func(string)
}

// NewRegisters returns a register file with registers 0 and 1 initialized
// to their fixed values.
func NewRegisters(hooks *Hooks, warn func(string)) *Registers {
	if warn == nil {
		warn = func(string) {}
	}
	r := &Registers{hooks: hooks, warn: warn}
	r.words[1] = 1
	return r
}

// Read returns the value of register i. i must satisfy 0 <= i < 32.
func (r *Registers) Read(i int) uint32 {
	r.hooks.onRegisterAccess(i)
	return r.words[i]
}

// Write sets register i to value. Writes to registers 0 and 1 are
// silently discarded with a diagnostic; all other indices succeed.
func (r *Registers) Write(i int, value uint32) {
	r.hooks.onRegisterAccess(i)
	if i <= 1 {
		r.warn(fmt.Sprintf("write to read-only register %d ignored", i))
		return
	}
	r.words[i] = value
}

// WriteSlice bulk-initializes registers [start, start+len(values)), honoring
// the same read-only rule per index as Write.
func (r *Registers) WriteSlice(start int, values []uint32) error {
	if start < 0 || start+len(values) > NumDataRegisters {
		return fmt.Errorf("register slice write out of range: start=%d len=%d", start, len(values))
	}
	for i, v := range values {
		r.Write(start+i, v)
	}
	return nil
}
