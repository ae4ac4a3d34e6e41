// Package metrics implements an optional cost-metric collaborator: an
// observer wired through vm.Hooks that tallies instruction count, cache
// hits/misses, distinct memory and register touches, and
// simulated execution time, without altering core semantics.
package metrics

import (
	"fmt"

	"github.com/kestrelvm/kestrel/vm"
)

// Tracker accumulates cost metrics for one execution. It never mutates
// machine state; it only observes through the hooks it installs.
type Tracker struct {
	InstructionsExecuted int
	CacheHits            int
	CacheMisses          int
	MemoryAccesses       int
	ExecutionTimeNS      int64
	accessedMemory       map[uint32]struct{}
	accessedRegisters    map[int]struct{}
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{
		accessedMemory:    make(map[uint32]struct{}),
		accessedRegisters: make(map[int]struct{}),
	}
}

// Attach installs this tracker's observer callbacks onto hooks, composing
// with (not replacing) any callbacks already set.
func (t *Tracker) Attach(hooks *vm.Hooks) {
	prevDecode := hooks.BeforeDecode
	hooks.BeforeDecode = func() {
		if prevDecode != nil {
			prevDecode()
		}
		t.logInstruction()
	}

	prevCache := hooks.OnCacheLookup
	hooks.OnCacheLookup = func(address uint32, hit bool) {
		if prevCache != nil {
			prevCache(address, hit)
		}
		t.logCacheLookup(address, hit)
	}

	prevReg := hooks.OnRegisterAccess
	hooks.OnRegisterAccess = func(index int) {
		if prevReg != nil {
			prevReg(index)
		}
		t.logRegisterAccess(index)
	}
}

func (t *Tracker) logInstruction() {
	t.InstructionsExecuted++
	t.ExecutionTimeNS += vm.InstructionTimeNS
}

func (t *Tracker) logCacheLookup(address uint32, hit bool) {
	t.accessedMemory[address] = struct{}{}
	t.MemoryAccesses++
	if hit {
		t.CacheHits++
		t.ExecutionTimeNS += vm.CacheHitTimeNS
	} else {
		t.CacheMisses++
		t.ExecutionTimeNS += vm.CacheMissTimeNS
	}
}

func (t *Tracker) logRegisterAccess(index int) {
	t.accessedRegisters[index] = struct{}{}
}

// RAMBytesUsed returns 4 times the number of distinct memory addresses
// touched (one word is 4 bytes).
func (t *Tracker) RAMBytesUsed() int {
	return len(t.accessedMemory) * 4
}

// RegisterBytesUsed returns 4 times the number of distinct registers
// touched.
func (t *Tracker) RegisterBytesUsed() int {
	return len(t.accessedRegisters) * 4
}

// Summary renders a human-readable report in the collaborator's
// traditional format.
func (t *Tracker) Summary() string {
	hitPct, missPct := 0.0, 0.0
	if t.MemoryAccesses > 0 {
		hitPct = 100 * float64(t.CacheHits) / float64(t.MemoryAccesses)
		missPct = 100 * float64(t.CacheMisses) / float64(t.MemoryAccesses)
	}
	ram := t.RAMBytesUsed()
	regs := t.RegisterBytesUsed()
	return fmt.Sprintf(
		"Instructions executed: %d.\n"+
			"Cache hits: %d (%.1f%%)\n"+
			"Cache misses: %d (%.1f%%)\n"+
			"RAM memory used: %d bytes.\n"+
			"Data register memory used: %d bytes.\n"+
			"-----------------------------\n"+
			"Total execution time: %dns.\n"+
			"Total memory used: %d bytes.\n"+
			"-----------------------------",
		t.InstructionsExecuted, t.CacheHits, hitPct, t.CacheMisses, missPct, ram, regs, t.ExecutionTimeNS, ram+regs)
}
