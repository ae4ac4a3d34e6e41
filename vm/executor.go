package vm

import (
	"fmt"
	"io"
	"os"
)

// Decoded is an instruction word split into its (opcode, arg1, arg2, data)
// fields.
type Decoded struct {
	Opcode uint32
	Arg1   int
	Arg2   int
	Data   uint32
}

// Decode splits a raw 32-bit instruction word into its fields.
func Decode(word uint32) Decoded {
	return Decoded{
		Opcode: (word & OpcodeMask) >> OpcodeShift,
		Arg1:   int((word & Arg1Mask) >> Arg1Shift),
		Arg2:   int((word & Arg2Mask) >> Arg2Shift),
		Data:   word & DataMask,
	}
}

// Reg3 extracts the third register index packed into the high 5 bits of
// data by three-register ALU instructions (data >> 11).
func (d Decoded) Reg3() int {
	return int(d.Data >> Reg3Shift)
}

// VM is the complete simulated machine: CPU state plus memory, wired to
// the observation hooks and I/O sinks the instruction set writes to.
type VM struct {
	CPU    *CPU
	Memory *Memory
	Hooks  *Hooks

	// Output is the PRINT instruction's sink, treated as opaque by the
	// core. Defaults to os.Stdout.
	Output io.Writer

	// Diagnostics receives read-only-register-write and similar
	// non-fatal warnings. Defaults to os.Stderr.
	Diagnostics io.Writer

	// Debug receives per-instruction trace lines when DebugMode is set.
	// Defaults to io.Discard. Writing to it never alters observable
	// machine state.
	Debug     io.Writer
	DebugMode bool
}

// NewVM constructs a machine with the given memory size, zero-valued
// comparison and status bits, and a reset register file (register 1
// holds 1, all others 0). memorySize must satisfy
// 2 <= memorySize <= 65536.
func NewVM(memorySize int) (*VM, error) {
	hooks := &Hooks{}
	v := &VM{
		Hooks:       hooks,
		Output:      os.Stdout,
		Diagnostics: os.Stderr,
		Debug:       io.Discard,
	}
	v.CPU = NewCPU(hooks, v.warn)
	mem, err := NewMemory(memorySize, hooks)
	if err != nil {
		return nil, err
	}
	v.Memory = mem
	return v, nil
}

func (v *VM) warn(message string) {
	fmt.Fprintf(v.Diagnostics, "warning: %s\n", message)
}

func (v *VM) trace(format string, args ...any) {
	if v.DebugMode {
		fmt.Fprintf(v.Debug, format+"\n", args...)
	}
}

// SetMemoryChunk bulk-loads words starting at address, e.g. for loading a
// program or data block.
func (v *VM) SetMemoryChunk(address uint32, words []uint32) error {
	return v.Memory.WriteSliceVector(address, len(words), words)
}

// SetMemoryAddress writes a single word to main memory.
func (v *VM) SetMemoryAddress(address uint32, word uint32) error {
	return v.Memory.Write(address, word)
}

// GetMemoryAddress reads a single word from main memory.
func (v *VM) GetMemoryAddress(address uint32) (uint32, error) {
	return v.Memory.Read(address)
}

// Execute runs the fetch-decode-execute loop to HALT or fault. debugMode
// enables the per-instruction diagnostic trace without altering any
// other observable state.
func (v *VM) Execute(debugMode bool) error {
	v.DebugMode = debugMode
	v.CPU.Status.Set(StatusRunning, true)

	for v.CPU.Status.Running() {
		if err := v.step(); err != nil {
			return err
		}
	}
	return nil
}

func (v *VM) step() error {
	if uint32(v.CPU.PC) >= uint32(v.Memory.Size()) {
		return &SegmentationFault{Address: uint32(v.CPU.PC), Operation: "fetch"}
	}

	v.Hooks.beforeDecode()

	word, err := v.Memory.Read(uint32(v.CPU.PC))
	if err != nil {
		return err
	}

	d := Decode(word)
	inst, ok := instructionTable[d.Opcode]
	if !ok {
		return &DecodingError{Opcode: d.Opcode, PC: v.CPU.PC}
	}

	if err := inst.Execute(v, d); err != nil {
		return err
	}

	v.CPU.IncrementPC()
	return nil
}
