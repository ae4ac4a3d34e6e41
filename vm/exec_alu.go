package vm

// execADD computes reg3 <- reg1 + reg2 mod 2^32, setting OVERFLOW iff the
// unsigned sum does not fit in 32 bits.
func execADD(v *VM, d Decoded) error {
	reg3 := d.Reg3()
	a := v.CPU.Registers.Read(d.Arg1)
	b := v.CPU.Registers.Read(d.Arg2)
	v.trace("add reg_1=%d, reg_2=%d, reg_3=%d", d.Arg1, d.Arg2, reg3)

	sum := uint64(a) + uint64(b)
	overflow := sum >= (1 << 32)
	if overflow {
		v.warn("integer overflow in ADD")
	}
	v.CPU.Status.Set(StatusOverflow, overflow)
	v.CPU.Registers.Write(reg3, uint32(sum))
	return nil
}

// execSUB computes reg3 <- reg1 - reg2 mod 2^32, setting OVERFLOW iff the
// subtraction underflows (reg1 < reg2 as unsigned). Both operands are read
// before the destination is written so an in-place destination (reg3 ==
// reg1 or reg2) still reflects the original operands.
func execSUB(v *VM, d Decoded) error {
	reg3 := d.Reg3()
	a := v.CPU.Registers.Read(d.Arg1)
	b := v.CPU.Registers.Read(d.Arg2)
	v.trace("sub reg_1=%d, reg_2=%d, reg_3=%d", d.Arg1, d.Arg2, reg3)

	underflow := a < b
	if underflow {
		v.warn("integer underflow in SUB")
	}
	v.CPU.Status.Set(StatusOverflow, underflow)
	v.CPU.Registers.Write(reg3, a-b)
	return nil
}
