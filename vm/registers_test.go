package vm_test

import (
	"testing"

	"github.com/kestrelvm/kestrel/vm"
	"github.com/stretchr/testify/assert"
)

func TestRegisters_ReadOnlyZeroAndOne(t *testing.T) {
	r := vm.NewRegisters(nil, nil)

	assert.Equal(t, uint32(0), r.Read(0))
	assert.Equal(t, uint32(1), r.Read(1))

	r.Write(0, 777)
	r.Write(1, 777)

	assert.Equal(t, uint32(0), r.Read(0), "writes to register 0 must be discarded")
	assert.Equal(t, uint32(1), r.Read(1), "writes to register 1 must be discarded")
}

func TestRegisters_WritableFromTwo(t *testing.T) {
	r := vm.NewRegisters(nil, nil)
	r.Write(2, 42)
	assert.Equal(t, uint32(42), r.Read(2))
}

func TestRegisters_WriteSliceHonorsReadOnlyRule(t *testing.T) {
	r := vm.NewRegisters(nil, nil)
	err := r.WriteSlice(0, []uint32{100, 200, 300, 400})
	assert.NoError(t, err)

	assert.Equal(t, uint32(0), r.Read(0))
	assert.Equal(t, uint32(1), r.Read(1))
	assert.Equal(t, uint32(300), r.Read(2))
	assert.Equal(t, uint32(400), r.Read(3))
}

func TestRegisters_WriteSliceOutOfRange(t *testing.T) {
	r := vm.NewRegisters(nil, nil)
	err := r.WriteSlice(30, []uint32{1, 2, 3})
	assert.Error(t, err)
}

func TestRegisters_WarnsOnReadOnlyWrite(t *testing.T) {
	var warned string
	r := vm.NewRegisters(nil, func(msg string) { warned = msg })
	r.Write(1, 5)
	assert.Contains(t, warned, "read-only register 1")
}
