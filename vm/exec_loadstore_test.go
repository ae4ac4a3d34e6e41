package vm_test

import (
	"testing"

	"github.com/kestrelvm/kestrel/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The nine LOAD scenarios from the literal flag table: A=0x8000,
// B=0x9999, C=0xB332, D=0xCCCB, E=0xE664, F=0xFFFF, reg is the register's
// starting value (C<<16)|D, mem is (E<<16)|F at address 10. For the
// IMMEDIATE cases the source is the LOAD instruction word itself, built
// with B in its 16-bit data field, so a full copy yields that whole word.
func TestLOAD_FlagScenarios(t *testing.T) {
	const (
		a = uint32(0x8000)
		b = uint32(0x9999)
		c = uint32(0xB332)
		d = uint32(0xCCCB)
		e = uint32(0xE664)
		f = uint32(0xFFFF)
	)
	regInit := (c << 16) | d
	mem := (e << 16) | f

	cases := []struct {
		name     string
		flags    uint32
		expected uint32
	}{
		{"full copy from mem", 0b00000, mem},
		{"low->low no-overwrite", 0b10000, (c << 16) | f},
		{"low->high no-overwrite", 0b10100, (f << 16) | d},
		{"high->low no-overwrite", 0b11000, (c << 16) | e},
		{"low->low overwrite", 0b10010, 0 | f},
		{"high->high overwrite", 0b11110, (e << 16) | 0},
		{"immediate full copy", 0b00001, encodeData(vm.OpLOAD, 2, 0b00001, b)},
		{"immediate low->low overwrite", 0b10011, 0 | b},
		{"immediate low->high overwrite", 0b10111, (b << 16) | 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := vm.NewVM(64)
			require.NoError(t, err)

			loadWord := encodeData(vm.OpLOAD, 2, tc.flags, 10)
			if tc.flags&vm.FlagImmediate != 0 {
				// Under IMMEDIATE the source is memory[PC], i.e. this very
				// instruction word; its low 16 bits (the data field) carry b.
				loadWord = encodeData(vm.OpLOAD, 2, tc.flags, b)
			} else {
				require.NoError(t, m.SetMemoryAddress(10, mem))
			}
			require.NoError(t, m.SetMemoryChunk(0, []uint32{loadWord, encodeData(vm.OpHALT, 0, 0, 0)}))
			m.CPU.Registers.Write(2, regInit)

			require.NoError(t, m.Execute(false))
			assert.Equal(t, tc.expected, m.CPU.Registers.Read(2))
		})
	}
}

func TestSTORE_OutOfRangeFaultsBeforeSideEffect(t *testing.T) {
	m, err := vm.NewVM(8)
	require.NoError(t, err)
	m.CPU.Registers.Write(2, 123)
	storeWord := encodeData(vm.OpSTORE, 2, 0, 100)
	require.NoError(t, m.SetMemoryChunk(0, []uint32{storeWord}))

	err = m.Execute(false)
	var segFault *vm.SegmentationFault
	assert.ErrorAs(t, err, &segFault)
}

func TestSTORE_FullCopy(t *testing.T) {
	m, err := vm.NewVM(64)
	require.NoError(t, err)
	m.CPU.Registers.Write(2, 0xDEADBEEF)
	storeWord := encodeData(vm.OpSTORE, 2, 0, 20)
	require.NoError(t, m.SetMemoryChunk(0, []uint32{storeWord, encodeData(vm.OpHALT, 0, 0, 0)}))

	require.NoError(t, m.Execute(false))

	v, err := m.GetMemoryAddress(20)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
}

func TestLOAD_IntoReadOnlyRegisterIsNoOp(t *testing.T) {
	m, err := vm.NewVM(64)
	require.NoError(t, err)
	require.NoError(t, m.SetMemoryAddress(20, 999))
	loadWord := encodeData(vm.OpLOAD, 1, 0, 20)
	require.NoError(t, m.SetMemoryChunk(0, []uint32{loadWord, encodeData(vm.OpHALT, 0, 0, 0)}))

	require.NoError(t, m.Execute(false))
	assert.Equal(t, uint32(1), m.CPU.Registers.Read(1))
}
