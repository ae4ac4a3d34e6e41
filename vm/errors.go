package vm

import "fmt"

// SegmentationFault is returned by any memory access (instruction fetch,
// LOAD/STORE, PRINT, JUMP target) that falls outside [0, memory size).
type SegmentationFault struct {
	Address   uint32
	Operation string
}

func (e *SegmentationFault) Error() string {
	return fmt.Sprintf("segmentation fault: %s at address %d is out of range", e.Operation, e.Address)
}

// DecodingError is returned when the fetched opcode has no matching entry
// in the instruction table.
type DecodingError struct {
	Opcode uint32
	PC     uint16
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: unknown opcode 0b%06b at PC=%d", e.Opcode, e.PC)
}
