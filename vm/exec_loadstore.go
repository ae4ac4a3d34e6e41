package vm

// computeHalfValue applies the HALF_COPY merge rules: extract a
// 16-bit half from src (upper half if FlagSigSource, else lower), then
// place it into the upper or lower half of the destination (FlagSigDest),
// zeroing the untouched half if FlagOverwrite, else preserving it from
// dstOld.
func computeHalfValue(src, flags, dstOld uint32) uint32 {
	var half uint32
	if flags&FlagSigSource != 0 {
		half = src >> 16
	} else {
		half = src & 0xFFFF
	}

	if flags&FlagSigDest != 0 {
		if flags&FlagOverwrite != 0 {
			return half << 16
		}
		return (half << 16) | (dstOld & 0x0000FFFF)
	}
	if flags&FlagOverwrite != 0 {
		return half
	}
	return half | (dstOld & 0xFFFF0000)
}

// execLOAD copies a word or half-word from memory (or, under IMMEDIATE,
// from the instruction word itself) into a data register.
func execLOAD(v *VM, d Decoded) error {
	flags := d.Arg2
	reg := d.Arg1
	addr := d.Data
	immediate := flags&FlagImmediate != 0
	half := flags&FlagHalfCopy != 0

	v.trace("load reg=%d flags=%05b addr=%d", reg, flags, addr)

	var src uint32
	if immediate {
		w, err := v.Memory.Read(uint32(v.CPU.PC))
		if err != nil {
			return err
		}
		src = w
	} else {
		w, err := v.Memory.Read(addr)
		if err != nil {
			return err
		}
		src = w
	}

	if !half {
		v.CPU.Registers.Write(reg, src)
		return nil
	}

	dstOld := v.CPU.Registers.Read(reg)
	v.CPU.Registers.Write(reg, computeHalfValue(src, uint32(flags), dstOld))
	return nil
}

// execSTORE copies a word or half-word from a data register (or, under
// IMMEDIATE, from the instruction word itself) into memory. The
// destination address is bounds-checked before any mutation, regardless
// of IMMEDIATE.
func execSTORE(v *VM, d Decoded) error {
	flags := d.Arg2
	reg := d.Arg1
	addr := d.Data
	immediate := flags&FlagImmediate != 0
	half := flags&FlagHalfCopy != 0

	if addr >= uint32(v.Memory.Size()) {
		return &SegmentationFault{Address: addr, Operation: "store"}
	}

	v.trace("store reg=%d flags=%05b addr=%d", reg, flags, addr)

	var src uint32
	if immediate {
		w, err := v.Memory.Read(uint32(v.CPU.PC))
		if err != nil {
			return err
		}
		src = w
	} else {
		src = v.CPU.Registers.Read(reg)
	}

	if !half {
		return v.Memory.Write(addr, src)
	}

	dstOld, err := v.Memory.Read(addr)
	if err != nil {
		return err
	}
	return v.Memory.Write(addr, computeHalfValue(src, uint32(flags), dstOld))
}
