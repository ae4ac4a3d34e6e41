package vm

// Hooks is the observation hook contract: a statically declared set
// of function-pointer fields the core calls unconditionally so an external
// collaborator (the cost-metric tracker; see package metrics) can observe
// execution without altering core semantics. Unset fields are no-ops.
//
// The original Python source installed hooks by monkey-patching methods at
// runtime; this is the systems-language replacement suggested by the
// design notes: a small set of function pointers, called unconditionally.
type Hooks struct {
	// BeforeDecode is called once per instruction, before decode.
	BeforeDecode func()

	// OnCacheLookup is called on every cache_lookup with the address
	// probed and whether it was a hit.
	OnCacheLookup func(address uint32, hit bool)

	// OnRegisterAccess is called on every data-register read and write
	// with the register index.
	OnRegisterAccess func(index int)
}

func (h *Hooks) beforeDecode() {
	if h != nil && h.BeforeDecode != nil {
		h.BeforeDecode()
	}
}

func (h *Hooks) onCacheLookup(address uint32, hit bool) {
	if h != nil && h.OnCacheLookup != nil {
		h.OnCacheLookup(address, hit)
	}
}

func (h *Hooks) onRegisterAccess(index int) {
	if h != nil && h.OnRegisterAccess != nil {
		h.OnRegisterAccess(index)
	}
}
