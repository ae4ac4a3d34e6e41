package vm

// execCOMP writes (reg1 == reg2) into comparison slot reg3, leaving other
// slots untouched.
func execCOMP(v *VM, d Decoded) error {
	slot := d.Reg3()
	a := v.CPU.Registers.Read(d.Arg1)
	b := v.CPU.Registers.Read(d.Arg2)
	v.trace("comp reg_1=%d, reg_2=%d, comp_reg=%d", d.Arg1, d.Arg2, slot)
	v.CPU.Comparison.Set(slot, a == b)
	return nil
}
