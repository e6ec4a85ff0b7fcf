package arena

// NoParentFragment is the Previous sentinel for a root fragment.
const NoParentFragment = -1

// emptySlotPrevious is the Previous sentinel marking a free fragment slot,
// distinct from NoParentFragment so a root fragment is never mistaken for a
// free slot ("A sentinel previous value denotes 'empty slot'").
const emptySlotPrevious = -2

// MaxChildrenPerFragment caps a fragment's UseCount at 127, dovetailing with
// the 7-bit use-count field of the packed representation.
const MaxChildrenPerFragment = 127

// Fragment is one node of the tail-shared trie of partial paths.
type Fragment struct {
	Station int
	UseCount int
	Previous int
}

func fragmentIsFree(f *Fragment) bool { return f.Previous == emptySlotPrevious }

func fragmentMarkFree(f *Fragment) {
	*f = Fragment{Previous: emptySlotPrevious}
}

// FragmentArena is the clock-hand slab allocator for Fragment values, with
// a reference-counting discipline on top: a fragment frees itself once its
// last owning label releases it.
type FragmentArena struct {
	*ClockArena[Fragment]
}

// DefaultFragmentArenaSize is the initial slab size.
const DefaultFragmentArenaSize = 20000

// NewFragmentArena creates a FragmentArena with initialSize slots
// (DefaultFragmentArenaSize if initialSize <= 0).
func NewFragmentArena(initialSize int) *FragmentArena {
	if initialSize <= 0 {
		initialSize = DefaultFragmentArenaSize
	}
	return &FragmentArena{ClockArena: NewClockArena[Fragment](initialSize, fragmentIsFree, fragmentMarkFree)}
}

// NewRoot creates a parentless root fragment naming stationIdx, with
// UseCount 1 (owned by whichever label names it).
func (a *FragmentArena) NewRoot(stationIdx int) int {
	idx := a.Alloc()
	*a.Get(idx) = Fragment{Station: stationIdx, Previous: NoParentFragment, UseCount: 1}
	return idx
}

// Push creates a new fragment naming stationIdx as a child of parent,
// incrementing parent's UseCount. The new fragment starts with UseCount 1
// (owned by the caller, typically a freshly admitted label). Returns an
// InvariantError if parent's UseCount would exceed MaxChildrenPerFragment.
func (a *FragmentArena) Push(stationIdx, parent int) (int, error) {
	if parent != NoParentFragment {
		p := a.Get(parent)
		if p.UseCount >= MaxChildrenPerFragment {
			return 0, NewInvariantError("fragment %d: use-count would exceed cap of %d", parent, MaxChildrenPerFragment)
		}
	}

	idx := a.Alloc()

	if parent != NoParentFragment {
		// Re-resolve after Alloc: it may have grown the slab and invalidated
		// any pointer obtained before this call.
		a.Get(parent).UseCount++
	}

	*a.Get(idx) = Fragment{Station: stationIdx, Previous: parent, UseCount: 1}
	return idx, nil
}

// Release decrements the fragment's UseCount and, on reaching zero, frees
// the slot and recurses into the parent ("freeing decrements its
// parent's use_count and may cascade"). A no-op on NoParentFragment.
func (a *FragmentArena) Release(idx int) {
	if idx == NoParentFragment {
		return
	}
	f := a.Get(idx)
	f.UseCount--
	if f.UseCount <= 0 {
		parent := f.Previous
		a.Free(idx)
		a.Release(parent)
	}
}

// Station returns the station named by fragment idx.
func (a *FragmentArena) Station(idx int) int { return a.Get(idx).Station }

// Previous returns the parent fragment index, or NoParentFragment at the root.
func (a *FragmentArena) Previous(idx int) int { return a.Get(idx).Previous }

// Reconstruct walks Previous pointers from idx back to the root, returning
// the station indices in root-to-idx order.
func (a *FragmentArena) Reconstruct(idx int) []int {
	var reversed []int
	for cur := idx; cur != NoParentFragment; cur = a.Previous(cur) {
		reversed = append(reversed, a.Station(cur))
	}
	out := make([]int, len(reversed))
	for i, s := range reversed {
		out[len(reversed)-1-i] = s
	}
	return out
}
