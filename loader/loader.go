// Package loader wires the parser and encoder together into a complete
// assembler, and loads the resulting machine code into a VM's memory.
package loader

import (
	"fmt"

	"github.com/kestrelvm/kestrel/encoder"
	"github.com/kestrelvm/kestrel/parser"
	"github.com/kestrelvm/kestrel/vm"
)

// Assemble runs both assembler passes over source and returns the
// resulting machine-code word sequence.
func Assemble(source string) ([]uint32, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, len(program.Lines))
	for _, line := range program.Lines {
		if len(line.Tokens) == 0 {
			continue
		}
		mnemonic := line.Tokens[0]
		enc, ok := encoder.Lookup(mnemonic)
		if !ok {
			return nil, &parser.SyntaxError{Pos: line.Pos, Text: line.Text, Msg: fmt.Sprintf("unknown mnemonic %q", mnemonic)}
		}
		word, err := enc.Encode(line.Tokens[1:], line.Index, program.Labels)
		if err != nil {
			return nil, &parser.SyntaxError{Pos: line.Pos, Text: line.Text, Msg: err.Error()}
		}
		words[line.Index] = word
	}
	return words, nil
}

// LoadProgram assembles source and writes the resulting words into the
// machine's memory starting at address.
func LoadProgram(machine *vm.VM, source string, address uint32) error {
	words, err := Assemble(source)
	if err != nil {
		return err
	}
	return machine.SetMemoryChunk(address, words)
}
