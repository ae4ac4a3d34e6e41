package vm

import "fmt"

// execNOP performs no state change.
func execNOP(v *VM, d Decoded) error {
	v.trace("nop")
	return nil
}

// execHALT clears the RUNNING status bit, ending the execution loop.
func execHALT(v *VM, d Decoded) error {
	v.trace("halt")
	v.CPU.Status.Set(StatusRunning, false)
	return nil
}

// execPRINT emits a formatted diagnostic of two registers and a memory
// word to v.Output.
func execPRINT(v *VM, d Decoded) error {
	r1 := v.CPU.Registers.Read(d.Arg1)
	r2 := v.CPU.Registers.Read(d.Arg2)
	addr := d.Data
	m, err := v.Memory.Read(addr)
	if err != nil {
		return err
	}
	v.trace("print reg_1=%d, reg_2=%d, address=%d", d.Arg1, d.Arg2, addr)
	fmt.Fprintf(v.Output, "print: register %d: %032b = %d, register %d: %032b = %d, address %d: %032b = %d\n",
		d.Arg1, r1, r1, d.Arg2, r2, r2, addr, m, m)
	return nil
}
