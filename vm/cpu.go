package vm

// CPU holds the data register file, comparison register, status register
// and program counter of the simulated machine.
type CPU struct {
	Registers  *Registers
	Comparison *ComparisonRegister
	Status     *StatusRegister
	PC         uint16
}

// NewCPU returns a freshly reset CPU wired to the given hooks.
func NewCPU(hooks *Hooks, warn func(string)) *CPU {
	return &CPU{
		Registers:  NewRegisters(hooks, warn),
		Comparison: &ComparisonRegister{},
		Status:     &StatusRegister{},
		PC:         0,
	}
}

// IncrementPC advances the program counter by one word.
func (c *CPU) IncrementPC() {
	c.PC++
}
