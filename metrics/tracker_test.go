package metrics_test

import (
	"testing"

	"github.com/kestrelvm/kestrel/metrics"
	"github.com/kestrelvm/kestrel/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_CountsInstructionsAndCache(t *testing.T) {
	m, err := vm.NewVM(64)
	require.NoError(t, err)

	tracker := metrics.New()
	tracker.Attach(m.Hooks)

	word := (uint32(vm.OpHALT) << vm.OpcodeShift)
	require.NoError(t, m.SetMemoryChunk(0, []uint32{word}))

	require.NoError(t, m.Execute(false))

	assert.Equal(t, 1, tracker.InstructionsExecuted)
	assert.Equal(t, 1, tracker.CacheMisses, "loading the program into a cold section is a miss")
	assert.Equal(t, 1, tracker.CacheHits, "the fetch of the just-loaded word is a hit")
	assert.Equal(t, int64(vm.InstructionTimeNS+vm.CacheMissTimeNS+vm.CacheHitTimeNS), tracker.ExecutionTimeNS)
}

func TestTracker_ComposesWithExistingHooks(t *testing.T) {
	m, err := vm.NewVM(64)
	require.NoError(t, err)

	var preExisting int
	m.Hooks.BeforeDecode = func() { preExisting++ }

	tracker := metrics.New()
	tracker.Attach(m.Hooks)

	word := uint32(vm.OpHALT) << vm.OpcodeShift
	require.NoError(t, m.SetMemoryChunk(0, []uint32{word}))
	require.NoError(t, m.Execute(false))

	assert.Equal(t, 1, preExisting)
	assert.Equal(t, 1, tracker.InstructionsExecuted)
}

func TestTracker_RegisterAccessTracking(t *testing.T) {
	m, err := vm.NewVM(64)
	require.NoError(t, err)
	tracker := metrics.New()
	tracker.Attach(m.Hooks)

	m.CPU.Registers.Write(5, 1)
	m.CPU.Registers.Read(5)
	m.CPU.Registers.Read(6)

	assert.Equal(t, 2, tracker.RegisterBytesUsed()/4)
}
