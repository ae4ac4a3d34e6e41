// Package vm implements the instruction set, register file, memory and
// cache, and fetch-decode-execute loop of the simulated 32-bit computer.
package vm

// Instruction word bit layout, high bit first:
//
//	[31..26] opcode (6)   [25..21] arg1 (5)   [20..16] arg2 (5)   [15..0] data (16)
//
// Three-register ALU instructions encode their third register in the high
// 5 bits of data (data >> 11); the low 11 bits are zero.
const (
	OpcodeShift = 26
	OpcodeBits  = 6
	OpcodeMask  = uint32(0x3F) << OpcodeShift

	Arg1Shift = 21
	Arg1Bits  = 5
	Arg1Mask  = uint32(0x1F) << Arg1Shift

	Arg2Shift = 16
	Arg2Bits  = 5
	Arg2Mask  = uint32(0x1F) << Arg2Shift

	DataShift = 0
	DataBits  = 16
	DataMask  = uint32(0xFFFF)

	// Reg3Shift is where ADD/SUB/COMP pack their third register within data.
	Reg3Shift = 11
)

// Opcode values, plain 6-bit integers at the wire level.
const (
	OpNOP   = 0b000_000
	OpHALT  = 0b000_001
	OpADD   = 0b001_001
	OpSUB   = 0b001_010
	OpCOMP  = 0b010_000
	OpLOAD  = 0b011_001
	OpSTORE = 0b011_010
	OpJUMP  = 0b100_001
	OpPRINT = 0b111_111
)

// Status register bit positions.
const (
	StatusRunning  = 0
	StatusOverflow = 1
)

// LOAD/STORE copy flag bits (arg2 of those instructions).
const (
	FlagHalfCopy  = 1 << 4 // HALF: copy 16 bits instead of 32
	FlagSigSource = 1 << 3 // FRM_SIG: source half is the upper 16 bits
	FlagSigDest   = 1 << 2 // TO_SIG: destination half is the upper 16 bits
	FlagOverwrite = 1 << 1 // OVERWRITE: zero the untouched destination half
	FlagImmediate = 1 << 0 // IMMEDIATE: source word is memory[PC]
)

// JUMP flag bits (arg2 of JUMP).
const (
	FlagOnHigh = 1 << 4 // required comp_reg bit for the jump to fire
	FlagDec    = 1 << 3 // 0: forward (PC+amount-1), 1: backward (PC-amount-1)
)

// EmptySentinel is the cache tag value meaning "slot empty". Legal guest
// addresses are 16-bit, so this 32-bit all-ones value can never collide.
const EmptySentinel = uint32(0xFFFFFFFF)

// NumDataRegisters is the size of the data register file.
const NumDataRegisters = 32

// NumComparisonSlots is the size of the comparison register.
const NumComparisonSlots = 32

// CacheSections is the fixed number of cache sections.
const CacheSections = 32

// CacheWaysPerSection is the number of lines (ways) per section.
const CacheWaysPerSection = 8

// CacheSectionIndexShift and CacheSectionIndexMask extract the section
// index from an address: (address >> 11) & 0x1F.
const (
	CacheSectionIndexShift = 11
	CacheSectionIndexMask  = 0x1F
)

// MaxMemoryWords is the largest legal memory size, in words.
const MaxMemoryWords = 1 << 16

// MinMemoryWords is the smallest legal memory size.
const MinMemoryWords = 2

// Default simulated per-event timings used by the cost metric collaborator.
const (
	InstructionTimeNS = 1
	CacheHitTimeNS    = 1
	CacheMissTimeNS   = 70
)
