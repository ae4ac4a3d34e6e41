package vm

// Instruction describes one opcode's execution semantics. Dispatch is by
// table lookup on opcode, not dynamic type dispatch.
type Instruction struct {
	Opcode   uint32
	Mnemonic string
	Execute  func(v *VM, d Decoded) error
}

var instructionTable = map[uint32]*Instruction{
	OpNOP:   {Opcode: OpNOP, Mnemonic: "NOP", Execute: execNOP},
	OpHALT:  {Opcode: OpHALT, Mnemonic: "HALT", Execute: execHALT},
	OpADD:   {Opcode: OpADD, Mnemonic: "ADD", Execute: execADD},
	OpSUB:   {Opcode: OpSUB, Mnemonic: "SUB", Execute: execSUB},
	OpCOMP:  {Opcode: OpCOMP, Mnemonic: "COMP", Execute: execCOMP},
	OpLOAD:  {Opcode: OpLOAD, Mnemonic: "LOAD", Execute: execLOAD},
	OpSTORE: {Opcode: OpSTORE, Mnemonic: "STORE", Execute: execSTORE},
	OpJUMP:  {Opcode: OpJUMP, Mnemonic: "JUMP", Execute: execJUMP},
	OpPRINT: {Opcode: OpPRINT, Mnemonic: "PRINT", Execute: execPRINT},
}

// MnemonicForOpcode returns the mnemonic registered for opcode, if any.
func MnemonicForOpcode(opcode uint32) (string, bool) {
	inst, ok := instructionTable[opcode]
	if !ok {
		return "", false
	}
	return inst.Mnemonic, true
}
