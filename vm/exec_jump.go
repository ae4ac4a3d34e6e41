package vm

// execJUMP conditionally moves the program counter. The comparison slot
// named by arg1 must equal the ON_HIGH flag bit for the jump to fire; the
// DEC flag bit selects backward (PC-amount-1) vs forward (PC+amount-1)
// motion. The -1 compensates for the unconditional PC+=1 at end of cycle.
func execJUMP(v *VM, d Decoded) error {
	flags := d.Arg2
	amount := d.Data
	onHigh := flags&FlagOnHigh != 0
	backward := flags&FlagDec != 0

	v.trace("jump control_register=%d, flags=%05b, amount=%d", d.Arg1, flags, amount)

	if v.CPU.Comparison.Get(d.Arg1) != onHigh {
		return nil
	}

	current := int64(v.CPU.PC)
	var target int64
	if backward {
		target = current - int64(amount) - 1
	} else {
		target = current + int64(amount) - 1
	}

	if target < 0 || target >= int64(v.Memory.Size()) {
		return &SegmentationFault{Address: uint32(target), Operation: "jump target"}
	}
	v.CPU.PC = uint16(target)
	return nil
}
