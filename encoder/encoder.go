// Package encoder implements pass 2 of the assembler: turning one
// tokenized instruction line into a 32-bit machine-code word, using a
// per-mnemonic encoding table and shared argument-parsing rules.
package encoder

import (
	"fmt"
	"strconv"

	"github.com/kestrelvm/kestrel/vm"
)

// EncodeFunc builds a machine-code word from an instruction's argument
// tokens, the instruction's own line index (for label-distance
// resolution), and the label table built in pass 1.
type EncodeFunc func(args []string, lineIndex int, labels map[string]int) (uint32, error)

// Encoder pairs a mnemonic with its opcode and argument encoder.
type Encoder struct {
	Mnemonic string
	Opcode   uint32
	Encode   EncodeFunc
}

var encoderTable = map[string]*Encoder{
	"NOP":   {Mnemonic: "NOP", Opcode: vm.OpNOP, Encode: encodeNOP},
	"HALT":  {Mnemonic: "HALT", Opcode: vm.OpHALT, Encode: encodeHALT},
	"ADD":   {Mnemonic: "ADD", Opcode: vm.OpADD, Encode: encodeReg3("ADD", vm.OpADD)},
	"SUB":   {Mnemonic: "SUB", Opcode: vm.OpSUB, Encode: encodeReg3("SUB", vm.OpSUB)},
	"COMP":  {Mnemonic: "COMP", Opcode: vm.OpCOMP, Encode: encodeReg3("COMP", vm.OpCOMP)},
	"LOAD":  {Mnemonic: "LOAD", Opcode: vm.OpLOAD, Encode: encodeLoad},
	"STORE": {Mnemonic: "STORE", Opcode: vm.OpSTORE, Encode: encodeStore},
	"JUMP":  {Mnemonic: "JUMP", Opcode: vm.OpJUMP, Encode: encodeJump},
	"PRINT": {Mnemonic: "PRINT", Opcode: vm.OpPRINT, Encode: encodePrint},
}

// Lookup returns the encoder registered for mnemonic, if any.
func Lookup(mnemonic string) (*Encoder, bool) {
	e, ok := encoderTable[mnemonic]
	return e, ok
}

// copyFlags is the LOAD/STORE flag-token table used in assembly source.
var copyFlags = map[string]uint32{
	"HALF": vm.FlagHalfCopy, "FULL": 0,
	"FRM_SIG": vm.FlagSigSource, "FROM_LOW": 0,
	"TO_SIG": vm.FlagSigDest, "TO_LOW": 0,
	"OVERWRITE": vm.FlagOverwrite, "NO_OVERWRITE": 0,
	"IMMEDIATE": vm.FlagImmediate, "NORMAL": 0,
}

// jumpFlags is the JUMP flag-token table.
var jumpFlags = map[string]uint32{
	"ON_HIGH": vm.FlagOnHigh, "ON_LOW": 0,
	"DEC": vm.FlagDec, "INC": 0,
}

func makeInsData(opcode, arg1, arg2, data uint32) uint32 {
	return (opcode << vm.OpcodeShift) | (arg1 << vm.Arg1Shift) | (arg2 << vm.Arg2Shift) | data
}

func makeInsReg(opcode, arg1, arg2, arg3 uint32) uint32 {
	return (opcode << vm.OpcodeShift) | (arg1 << vm.Arg1Shift) | (arg2 << vm.Arg2Shift) | (arg3 << vm.Reg3Shift)
}

// parseArg parses a bare decimal integer or a `B`-prefixed binary literal,
// and validates it falls in [0, rangeMax).
func parseArg(s string, rangeMax int) (uint32, error) {
	var val int64
	var err error
	if len(s) >= 2 && s[0] == 'B' {
		val, err = strconv.ParseInt(s[1:], 2, 64)
	} else {
		val, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to parse argument %q: %w", s, err)
	}
	if val < 0 || val >= int64(rangeMax) {
		return 0, fmt.Errorf("argument %d is out of range (min 0, max %d)", val, rangeMax)
	}
	return uint32(val), nil
}

func requireArgs(args []string, min, max int) error {
	n := len(args)
	if n < min {
		return fmt.Errorf("instruction requires at least %d arguments, but only given %d", min, n)
	}
	if max >= 0 && n > max {
		return fmt.Errorf("instruction requires at most %d arguments, but only given %d", max, n)
	}
	return nil
}

func encodeNOP(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 0, 0); err != nil {
		return 0, err
	}
	return makeInsData(vm.OpNOP, 0, 0, 0), nil
}

func encodeHALT(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 0, 0); err != nil {
		return 0, err
	}
	return makeInsData(vm.OpHALT, 0, 0, 0), nil
}

// encodeReg3 builds the three-register ALU/COMP encoder for a mnemonic.
func encodeReg3(name string, opcode uint32) EncodeFunc {
	return func(args []string, lineIndex int, labels map[string]int) (uint32, error) {
		if err := requireArgs(args, 3, 3); err != nil {
			return 0, err
		}
		r1, err := parseArg(args[0], vm.NumDataRegisters)
		if err != nil {
			return 0, err
		}
		r2, err := parseArg(args[1], vm.NumDataRegisters)
		if err != nil {
			return 0, err
		}
		r3, err := parseArg(args[2], vm.NumDataRegisters)
		if err != nil {
			return 0, err
		}
		return makeInsReg(opcode, r1, r2, r3), nil
	}
}

func parseCopyFlags(flagArgs []string) (uint32, error) {
	var flags uint32
	for _, tok := range flagArgs {
		bit, ok := copyFlags[tok]
		if !ok {
			return 0, fmt.Errorf("unknown flag %q", tok)
		}
		flags ^= bit
	}
	return flags, nil
}

func encodeLoad(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 2, -1); err != nil {
		return 0, err
	}
	address, err := parseArg(args[0], vm.MaxMemoryWords)
	if err != nil {
		return 0, err
	}
	reg, err := parseArg(args[1], vm.NumDataRegisters)
	if err != nil {
		return 0, err
	}
	flags, err := parseCopyFlags(args[2:])
	if err != nil {
		return 0, err
	}
	return makeInsData(vm.OpLOAD, reg, flags, address), nil
}

func encodeStore(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 2, -1); err != nil {
		return 0, err
	}
	reg, err := parseArg(args[0], vm.NumDataRegisters)
	if err != nil {
		return 0, err
	}
	address, err := parseArg(args[1], vm.MaxMemoryWords)
	if err != nil {
		return 0, err
	}
	flags, err := parseCopyFlags(args[2:])
	if err != nil {
		return 0, err
	}
	return makeInsData(vm.OpSTORE, reg, flags, address), nil
}

func encodeJump(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 2, -1); err != nil {
		return 0, err
	}
	compReg, err := parseArg(args[0], vm.NumDataRegisters)
	if err != nil {
		return 0, err
	}

	var flags uint32
	for _, tok := range args[2:] {
		bit, ok := jumpFlags[tok]
		if !ok {
			return 0, fmt.Errorf("unknown flag %q", tok)
		}
		flags ^= bit
	}

	amountTok := args[1]
	var amount uint32
	if len(amountTok) >= 2 && amountTok[0] == '[' && amountTok[len(amountTok)-1] == ']' {
		name := amountTok[1 : len(amountTok)-1]
		target, ok := labels[name]
		if !ok {
			return 0, fmt.Errorf("undefined label %q", name)
		}
		distance := target - lineIndex
		if distance < 0 {
			distance = -distance
		}
		amount = uint32(distance)
	} else {
		amount, err = parseArg(amountTok, vm.MaxMemoryWords)
		if err != nil {
			return 0, err
		}
	}

	return makeInsData(vm.OpJUMP, compReg, flags, amount), nil
}

func encodePrint(args []string, lineIndex int, labels map[string]int) (uint32, error) {
	if err := requireArgs(args, 3, 3); err != nil {
		return 0, err
	}
	r1, err := parseArg(args[0], vm.NumDataRegisters)
	if err != nil {
		return 0, err
	}
	r2, err := parseArg(args[1], vm.NumDataRegisters)
	if err != nil {
		return 0, err
	}
	addr, err := parseArg(args[2], vm.MaxMemoryWords)
	if err != nil {
		return 0, err
	}
	return makeInsData(vm.OpPRINT, r1, r2, addr), nil
}
