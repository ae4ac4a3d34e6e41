package vm

// ComparisonRegister holds 32 independent single-bit slots. Instructions
// that compare two registers write their result into a caller-chosen slot,
// leaving the other slots untouched.
type ComparisonRegister struct {
	slots [NumComparisonSlots]bool
}

// Get returns the value of comparison slot i.
func (c *ComparisonRegister) Get(i int) bool {
	return c.slots[i]
}

// Set writes value into comparison slot i.
func (c *ComparisonRegister) Set(i int, value bool) {
	c.slots[i] = value
}
